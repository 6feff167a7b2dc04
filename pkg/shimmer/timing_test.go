package shimmer

import (
	"testing"
	"time"

	"github.com/fogleman/ease"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimingValue_HoldsDuringDelay(t *testing.T) {
	tm := Timing{Duration: time.Second, Delay: 500 * time.Millisecond, Repeat: true}

	assert.Equal(t, 0.0, tm.Value(0))
	assert.Equal(t, 0.0, tm.Value(250*time.Millisecond))
	assert.Equal(t, 0.0, tm.Value(500*time.Millisecond))
	assert.InDelta(t, 0.25, tm.Value(750*time.Millisecond), 1e-9)
}

func TestTimingValue_LinearSweep(t *testing.T) {
	tm := Timing{Duration: 2 * time.Second, Repeat: true}

	assert.InDelta(t, 0.0, tm.Value(0), 1e-9)
	assert.InDelta(t, 0.25, tm.Value(500*time.Millisecond), 1e-9)
	assert.InDelta(t, 0.5, tm.Value(time.Second), 1e-9)
	assert.InDelta(t, 0.0, tm.Value(2*time.Second), 1e-9, "repeat wraps back to the start")
	assert.InDelta(t, 0.25, tm.Value(2500*time.Millisecond), 1e-9)
}

func TestTimingValue_AutoReversePingPongs(t *testing.T) {
	tm := Timing{Duration: time.Second, AutoReverse: true, Repeat: true}

	assert.InDelta(t, 0.5, tm.Value(500*time.Millisecond), 1e-9)
	assert.InDelta(t, 1.0, tm.Value(time.Second), 1e-9)
	assert.InDelta(t, 0.5, tm.Value(1500*time.Millisecond), 1e-9, "second leg runs backward")
	assert.InDelta(t, 0.0, tm.Value(2*time.Second), 1e-9, "full bounce returns to rest")
}

func TestTimingValue_OneShotClampsAtEnd(t *testing.T) {
	tm := Timing{Duration: time.Second}

	assert.InDelta(t, 1.0, tm.Value(time.Second), 1e-9)
	assert.Equal(t, 1.0, tm.Value(5*time.Second), "one-shot sweep holds its final value")
}

func TestTimingValue_OneShotBounceEndsAtRest(t *testing.T) {
	tm := Timing{Duration: time.Second, AutoReverse: true}

	assert.Equal(t, 0.0, tm.Value(3*time.Second), "a completed bounce lands back at rest")
}

func TestTimingValue_ZeroDuration(t *testing.T) {
	var tm Timing
	assert.Equal(t, 0.0, tm.Value(time.Second))
}

func TestTimingValue_EaseApplied(t *testing.T) {
	tm := Timing{Duration: time.Second, Repeat: true, Ease: ease.InQuad}

	assert.InDelta(t, 0.25, tm.Value(500*time.Millisecond), 1e-9, "inQuad squares the leg progress")
}

func TestTimingValue_OvershootingEaseClamped(t *testing.T) {
	tm := Timing{Duration: time.Second, Repeat: true, Ease: ease.OutElastic}

	for elapsed := time.Duration(0); elapsed <= time.Second; elapsed += 50 * time.Millisecond {
		v := tm.Value(elapsed)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestTimingValidate(t *testing.T) {
	assert.ErrorIs(t, Timing{}.validate(), ErrDuration)
	assert.ErrorIs(t, Timing{Duration: -time.Second}.validate(), ErrDuration)
	assert.ErrorIs(t, Timing{Duration: time.Second, Delay: -time.Millisecond}.validate(), ErrDelay)
	assert.NoError(t, Timing{Duration: time.Second}.validate())
}

// The deprecated (duration, bounce, delay) shape must produce a curve
// equivalent to the explicit configuration it documents.
func TestLegacyTiming_EquivalentToExplicitCurve(t *testing.T) {
	legacy := LegacyTiming(2*time.Second, true, 500*time.Millisecond)
	explicit := Timing{
		Duration:    2 * time.Second,
		Delay:       500 * time.Millisecond,
		AutoReverse: true,
		Repeat:      true,
		Ease:        ease.Linear,
	}

	assert.Equal(t, explicit.Duration, legacy.Duration)
	assert.Equal(t, explicit.Delay, legacy.Delay)
	assert.Equal(t, explicit.AutoReverse, legacy.AutoReverse)
	assert.Equal(t, explicit.Repeat, legacy.Repeat)

	for elapsed := time.Duration(0); elapsed <= 10*time.Second; elapsed += 130 * time.Millisecond {
		assert.InDelta(t, explicit.Value(elapsed), legacy.Value(elapsed), 1e-9,
			"curves diverge at %v", elapsed)
	}
}

func TestEaseByName(t *testing.T) {
	fn, err := EaseByName("inOutQuad")
	require.NoError(t, err)
	assert.InDelta(t, ease.InOutQuad(0.3), fn(0.3), 1e-12)

	fn, err = EaseByName("")
	require.NoError(t, err)
	assert.Equal(t, 0.7, fn(0.7), "empty name defaults to linear")

	_, err = EaseByName("wobble")
	assert.ErrorIs(t, err, ErrUnknownEase)
}

func TestEaseByName_Spring(t *testing.T) {
	fn, err := EaseByName("spring")
	require.NoError(t, err)
	assert.Equal(t, 0.0, fn(0))
	assert.Equal(t, 1.0, fn(1))
}

func TestEaseNames_IncludesCoreSet(t *testing.T) {
	names := EaseNames()
	assert.Contains(t, names, "linear")
	assert.Contains(t, names, "spring")
	assert.Contains(t, names, "inOutCubic")
}
