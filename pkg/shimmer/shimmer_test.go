package shimmer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsApplied(t *testing.T) {
	eff, err := New(Config{})
	require.NoError(t, err)

	cfg := eff.Config()
	assert.Equal(t, DefaultBand, cfg.Band)
	assert.Equal(t, DefaultFPS, cfg.FPS)
	assert.Equal(t, DefaultTiming().Duration, cfg.Timing.Duration)
	assert.Equal(t, Mask, cfg.Strategy.Mode)
	assert.True(t, eff.Active(), "zero config is an active effect")
	assert.Len(t, cfg.Gradient.Stops(), 3)
}

func TestNew_RejectsNegativeBand(t *testing.T) {
	_, err := New(Config{Band: -0.1})
	assert.ErrorIs(t, err, ErrBandSize)
}

func TestNew_RejectsNegativeFPS(t *testing.T) {
	_, err := New(Config{FPS: -1})
	assert.ErrorIs(t, err, ErrFPS)
}

func TestNew_RejectsBadTiming(t *testing.T) {
	_, err := New(Config{Timing: Timing{Duration: -time.Second}})
	assert.ErrorIs(t, err, ErrDuration)
}

func TestNew_RejectsBadBlend(t *testing.T) {
	_, err := New(Config{Strategy: Strategy{Mode: Overlay, Blend: BlendMode(9)}})
	assert.ErrorIs(t, err, ErrBlendMode)
}

func TestNew_RejectsBadColors(t *testing.T) {
	_, err := New(Config{BaseColor: "cornflower"})
	assert.ErrorIs(t, err, ErrColor)

	_, err = New(Config{BandColor: "#zzz"})
	assert.ErrorIs(t, err, ErrColor)
}

func TestNewLegacy_MapsParameters(t *testing.T) {
	eff, err := NewLegacy(2*time.Second, true, 500*time.Millisecond)
	require.NoError(t, err)

	cfg := eff.Config()
	assert.Equal(t, 2*time.Second, cfg.Timing.Duration)
	assert.Equal(t, 500*time.Millisecond, cfg.Timing.Delay)
	assert.True(t, cfg.Timing.AutoReverse)
	assert.True(t, cfg.Timing.Repeat)
}

func TestNewLegacy_RejectsZeroDuration(t *testing.T) {
	_, err := NewLegacy(0, false, 0)
	assert.ErrorIs(t, err, ErrDuration)
}

func TestLayout_TriggersOnce(t *testing.T) {
	eff, err := New(Config{})
	require.NoError(t, err)
	now := time.Now()

	assert.Equal(t, Resting, eff.State())
	assert.True(t, eff.Layout(now), "first layout pass starts the animation")
	assert.Equal(t, Running, eff.State())
	assert.False(t, eff.Layout(now.Add(time.Second)), "later layout passes are no-ops")
}

func TestLayout_DisabledDoesNotStart(t *testing.T) {
	eff, err := New(Config{Disabled: true})
	require.NoError(t, err)

	assert.False(t, eff.Layout(time.Now()))
	assert.Equal(t, Resting, eff.State())
}

func TestSetActive_HaltsAndRestarts(t *testing.T) {
	eff, err := New(Config{})
	require.NoError(t, err)
	t0 := time.Now()
	eff.Layout(t0)

	eff.SetActiveAt(false, t0.Add(time.Second))
	assert.False(t, eff.Active())
	assert.Equal(t, Resting, eff.State())

	eff.SetActiveAt(true, t0.Add(2*time.Second))
	assert.True(t, eff.Active())
	assert.Equal(t, Running, eff.State(), "reactivation after layout re-triggers the sweep")
}

func TestSetActive_BeforeLayoutStaysResting(t *testing.T) {
	eff, err := New(Config{Disabled: true})
	require.NoError(t, err)

	eff.SetActiveAt(true, time.Now())
	assert.Equal(t, Resting, eff.State(), "without a layout pass there is nothing to animate yet")
}

// Toggling active off and on must restore the original resting render.
func TestActiveRoundTripRestoresRestingState(t *testing.T) {
	eff, err := New(Config{})
	require.NoError(t, err)
	t0 := time.Now()
	content := "loading data"

	eff.Layout(t0)
	resting := eff.View(content, t0)

	eff.SetActiveAt(false, t0.Add(3*time.Second))
	eff.SetActiveAt(true, t0.Add(4*time.Second))
	restored := eff.View(content, t0.Add(4*time.Second))

	assert.Equal(t, resting, restored)
}

func TestView_DisabledReturnsContentUnmodified(t *testing.T) {
	eff, err := New(Config{Disabled: true})
	require.NoError(t, err)

	content := "hello\nworld"
	assert.Equal(t, content, eff.View(content, time.Now()))
}

func TestView_RestingUsesZeroProgress(t *testing.T) {
	eff, err := New(Config{})
	require.NoError(t, err)

	content := "steady"
	assert.Equal(t, eff.RenderAt(content, 0), eff.View(content, time.Now()))
}

func TestRenderAt_PreservesLayout(t *testing.T) {
	eff, err := New(Config{})
	require.NoError(t, err)

	content := "alpha beta\ngamma"
	out := stripANSI(eff.RenderAt(content, 0.5))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, len([]rune("alpha beta")), len([]rune(lines[0])))
	assert.Equal(t, len([]rune("gamma")), len([]rune(lines[1])))
}

func TestRenderAt_OpaqueGradientKeepsText(t *testing.T) {
	g, err := NewGradientPalette(1.0)
	require.NoError(t, err)
	eff, err := New(Config{Gradient: g})
	require.NoError(t, err)

	content := "fully visible"
	assert.Equal(t, content, stripANSI(eff.RenderAt(content, 0.5)))
}

func TestRenderAt_TransparentGradientHidesText(t *testing.T) {
	g, err := NewGradientPalette(0.0)
	require.NoError(t, err)
	eff, err := New(Config{Gradient: g})
	require.NoError(t, err)

	out := stripANSI(eff.RenderAt("secret", 0.5))
	assert.Equal(t, strings.Repeat(" ", len("secret")), out)
}

func TestRenderAt_EmptyContent(t *testing.T) {
	eff, err := New(Config{})
	require.NoError(t, err)
	assert.Equal(t, "", eff.RenderAt("", 0.5))
}

func TestRenderAt_OverlayNeverChangesRunes(t *testing.T) {
	eff, err := New(Config{Strategy: OverlayStrategy(BlendSourceAtop)})
	require.NoError(t, err)

	content := "sheen over text"
	for _, progress := range []float64{0, 0.25, 0.5, 0.75, 1} {
		assert.Equal(t, content, stripANSI(eff.RenderAt(content, progress)))
	}
}

func TestFrame_MatchesTimingCurve(t *testing.T) {
	eff, err := New(Config{})
	require.NoError(t, err)

	content := "frame capture"
	elapsed := 400 * time.Millisecond
	want := eff.RenderAt(content, eff.Config().Timing.Value(elapsed))
	assert.Equal(t, want, eff.Frame(content, elapsed))
}

func TestProgress_ZeroWhileResting(t *testing.T) {
	eff, err := New(Config{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, eff.Progress(time.Now()))
}

func TestProgress_AdvancesWhileRunning(t *testing.T) {
	eff, err := New(Config{Timing: Timing{Duration: 2 * time.Second, Repeat: true}})
	require.NoError(t, err)
	t0 := time.Now()
	eff.Layout(t0)

	assert.InDelta(t, 0.25, eff.Progress(t0.Add(500*time.Millisecond)), 1e-9)
}

// stripANSI removes color escape sequences so tests can compare visible
// text regardless of the terminal profile lipgloss detects.
func stripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
