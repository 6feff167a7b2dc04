package shimmer

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Config construction errors.
var (
	ErrBandSize = errors.New("shimmer: band size cannot be negative")
	ErrFPS      = errors.New("shimmer: fps must be positive")
	ErrColor    = errors.New("shimmer: color must be a hex value like #7aa2f7")
)

// Default configuration values.
const (
	DefaultBand = 0.3
	DefaultFPS  = 30

	DefaultBaseColor     = "#d8dee9"
	DefaultBandColor     = "#ffffff"
	DefaultBackdropColor = "#16161e"
)

// Config describes one shimmer effect. The zero value of most fields maps
// to a sensible default (mask strategy, left-to-right, 30 FPS, the default
// gradient and timing); the exceptions are documented per field.
type Config struct {
	// Timing is the value curve driving the sweep. Zero means DefaultTiming.
	Timing Timing
	// Gradient is the band's opacity profile. Zero means DefaultGradient.
	Gradient Gradient
	// Band is the extra margin beyond the unit interval the band extends
	// over, letting it enter and exit smoothly. Zero means DefaultBand;
	// use a small positive value like 0.01 for an effectively hard band.
	Band float64
	// Strategy is how the gradient composites with content. The zero
	// value is the mask strategy.
	Strategy Strategy
	// Direction is the reading order the sweep follows.
	Direction Direction
	// Disabled renders content unmodified and keeps the animation loop
	// off. Named negatively so the zero value of Config is an active
	// effect, matching the documented default.
	Disabled bool
	// FPS is the tick rate the Model schedules redraws at. Zero means
	// DefaultFPS.
	FPS int
	// BaseColor, BandColor, and BackdropColor are hex colors for the
	// content foreground, the band highlight, and the assumed terminal
	// background. Empty strings take the package defaults.
	BaseColor     string
	BandColor     string
	BackdropColor string
}

// DefaultConfig returns the documented default configuration.
func DefaultConfig() Config {
	return Config{
		Timing:    DefaultTiming(),
		Gradient:  DefaultGradient(),
		Band:      DefaultBand,
		Strategy:  MaskStrategy(),
		Direction: LeftToRight,
		FPS:       DefaultFPS,
	}
}

// Effect applies an animated shimmer band to text content. An effect is
// attached to exactly one piece of content at a time and exclusively owns
// its phase controller; the configuration it was built from is immutable.
type Effect struct {
	cfg        Config
	palette    Palette
	controller *PhaseController
	laidOut    bool
}

// New builds an effect from cfg, filling zero-valued fields with defaults
// and rejecting invalid configuration up front: negative band sizes,
// non-positive durations, unknown blend modes, and unparseable colors all
// fail here rather than producing undefined visuals later.
func New(cfg Config) (*Effect, error) {
	if cfg.Band < 0 {
		return nil, fmt.Errorf("%w: got %.3f", ErrBandSize, cfg.Band)
	}
	if cfg.Band == 0 {
		cfg.Band = DefaultBand
	}
	if cfg.FPS < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrFPS, cfg.FPS)
	}
	if cfg.FPS == 0 {
		cfg.FPS = DefaultFPS
	}
	if cfg.Timing.Duration == 0 {
		cfg.Timing = DefaultTiming()
	}
	if err := cfg.Timing.validate(); err != nil {
		return nil, err
	}
	if len(cfg.Gradient.stops) == 0 {
		cfg.Gradient = DefaultGradient()
	}
	if err := cfg.Strategy.validate(); err != nil {
		return nil, err
	}

	palette, err := buildPalette(cfg)
	if err != nil {
		return nil, err
	}

	return &Effect{
		cfg:        cfg,
		palette:    palette,
		controller: NewPhaseController(),
	}, nil
}

// NewLegacy builds an effect from the historical (duration, bounce, delay)
// convenience parameters with every other setting at its default. It is an
// adapter over New, not a separate code path.
func NewLegacy(duration time.Duration, bounce bool, delay time.Duration) (*Effect, error) {
	cfg := DefaultConfig()
	cfg.Timing = LegacyTiming(duration, bounce, delay)
	return New(cfg)
}

func buildPalette(cfg Config) (Palette, error) {
	base, err := hexOrDefault(cfg.BaseColor, DefaultBaseColor)
	if err != nil {
		return Palette{}, err
	}
	band, err := hexOrDefault(cfg.BandColor, DefaultBandColor)
	if err != nil {
		return Palette{}, err
	}
	backdrop, err := hexOrDefault(cfg.BackdropColor, DefaultBackdropColor)
	if err != nil {
		return Palette{}, err
	}
	return Palette{Base: base, Band: band, Backdrop: backdrop}, nil
}

func hexOrDefault(hex, def string) (colorful.Color, error) {
	if hex == "" {
		hex = def
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrColor, hex)
	}
	return c, nil
}

// Config returns the effective configuration after defaults were applied.
func (e *Effect) Config() Config {
	return e.cfg
}

// Active reports whether the effect animates when triggered.
func (e *Effect) Active() bool {
	return !e.cfg.Disabled
}

// State returns the phase controller's discrete state.
func (e *Effect) State() State {
	return e.controller.State()
}

// Layout records that the content has completed a layout pass and, when
// the effect is active, fires the controller's one-shot start transition.
// Call it once the host reports the first layout (the Model does this on
// the first tea.WindowSizeMsg). Returns whether the transition fired;
// repeated calls are no-ops while running.
func (e *Effect) Layout(now time.Time) bool {
	e.laidOut = true
	if e.cfg.Disabled {
		return false
	}
	return e.controller.TriggerLayout(now)
}

// SetActive toggles the effect using the current wall clock.
func (e *Effect) SetActive(active bool) {
	e.SetActiveAt(active, time.Now())
}

// SetActiveAt toggles the effect. Deactivating halts the animation and
// resets the controller to its resting state; activating after the content
// has laid out re-triggers the start transition, restarting the sweep from
// the beginning. Both directions are idempotent and safe to call rapidly;
// the last-applied state wins.
func (e *Effect) SetActiveAt(active bool, now time.Time) {
	e.cfg.Disabled = !active
	if !active {
		e.controller.Deactivate()
		return
	}
	if e.laidOut {
		e.controller.TriggerLayout(now)
	}
}

// Progress returns the sweep progress at the given wall-clock time: zero
// while resting, the timing curve's value of the elapsed run time while
// running.
func (e *Effect) Progress(now time.Time) float64 {
	if !e.controller.Running() {
		return e.cfg.Timing.Value(0)
	}
	return e.cfg.Timing.Value(e.controller.Elapsed(now))
}

// View renders content decorated by the effect at the given wall-clock
// time. An inactive effect returns content unmodified, so wrapping a view
// in a disabled shimmer costs nothing but the call.
func (e *Effect) View(content string, now time.Time) string {
	if e.cfg.Disabled {
		return content
	}
	return e.RenderAt(content, e.Progress(now))
}

// Frame renders content at a fixed elapsed time since the start transition,
// independent of the controller. Useful for static captures and tests.
func (e *Effect) Frame(content string, elapsed time.Duration) string {
	return e.RenderAt(content, e.cfg.Timing.Value(elapsed))
}

// RenderAt renders content with the band placed at the given progress.
// Pure with respect to the effect's state: only configuration is read.
func (e *Effect) RenderAt(content string, progress float64) string {
	lines := strings.Split(content, "\n")
	width := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	if width == 0 {
		return content
	}

	start, end := CoordinatesAt(e.cfg.Direction, clamp01(progress), e.cfg.Band)
	dx, dy := end.X-start.X, end.Y-start.Y
	lenSq := dx*dx + dy*dy

	var b strings.Builder
	for y, line := range lines {
		if y > 0 {
			b.WriteByte('\n')
		}
		e.renderLine(&b, []rune(line), y, width, len(lines), start, dx, dy, lenSq)
	}
	return b.String()
}

// renderLine composites one line cell by cell, grouping runs of cells that
// share a style so the output is not one escape sequence per rune.
func (e *Effect) renderLine(b *strings.Builder, runes []rune, y, width, height int, start Point, dx, dy, lenSq float64) {
	var run []rune
	var runStyle lipgloss.Style
	var runKey string
	runStyled := false

	flush := func() {
		if len(run) == 0 {
			return
		}
		if runStyled {
			b.WriteString(runStyle.Render(string(run)))
		} else {
			b.WriteString(string(run))
		}
		run = run[:0]
	}

	for x, r := range runes {
		u := e.bandPosition(x, y, width, height, start, dx, dy, lenSq)
		opacity := e.cfg.Gradient.OpacityAt(u)
		band := e.cfg.Gradient.ColorAt(u, e.palette.Band)
		cell := e.cfg.Strategy.Apply(r, opacity, band, e.palette)

		style, key, styled := cellStyle(cell)
		if key != runKey {
			flush()
			runKey, runStyle, runStyled = key, style, styled
		}
		run = append(run, cell.Rune)
	}
	flush()
}

// bandPosition projects a cell onto the band axis and returns its position
// in band-local coordinates: 0 at the leading edge, 1 at the trailing edge,
// outside [0, 1] beyond the band.
func (e *Effect) bandPosition(x, y, width, height int, start Point, dx, dy, lenSq float64) float64 {
	q := Point{X: unitPos(x, width), Y: unitPos(y, height)}
	if lenSq < 1e-9 {
		// Degenerate axis: the whole surface is past the band.
		if (q.X-start.X)*dx+(q.Y-start.Y)*dy >= 0 {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	return ((q.X-start.X)*dx + (q.Y-start.Y)*dy) / lenSq
}

func unitPos(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

func cellStyle(c Cell) (lipgloss.Style, string, bool) {
	if !c.HasFg && !c.HasBg {
		return lipgloss.Style{}, "", false
	}
	style := lipgloss.NewStyle()
	key := ""
	if c.HasFg {
		hex := c.Fg.Hex()
		style = style.Foreground(lipgloss.Color(hex))
		key += "f" + hex
	}
	if c.HasBg {
		hex := c.Bg.Hex()
		style = style.Background(lipgloss.Color(hex))
		key += "b" + hex
	}
	return style, key, true
}
