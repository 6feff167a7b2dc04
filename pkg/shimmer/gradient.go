package shimmer

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Gradient construction errors. All are reported at construction time;
// a Gradient value that exists is always safe to evaluate.
var (
	ErrNoStops      = errors.New("shimmer: gradient needs at least one stop")
	ErrStopOrder    = errors.New("shimmer: gradient stop positions must be non-decreasing")
	ErrOpacityRange = errors.New("shimmer: stop opacity must be within [0, 1]")
	ErrStopPosition = errors.New("shimmer: stop position must be within [0, 1]")
	ErrStopColor    = errors.New("shimmer: stop color must be a hex value like #7aa2f7")
)

// Stop is a single gradient color stop. Position is expressed in band-local
// coordinates: 0 is the leading edge of the band, 1 the trailing edge.
// Color is an optional hex value; when empty the effect's band color is used.
type Stop struct {
	Position float64
	Opacity  float64
	Color    string
}

// Gradient describes the opacity profile of the shimmer band as an ordered
// sequence of stops. The zero value is not usable; build one with
// NewGradient, NewGradientStops, or NewGradientPalette.
type Gradient struct {
	stops []Stop
}

// Default gradient opacities. The center of the band is fully lit and the
// edges stay faintly visible so masked content never disappears entirely.
const (
	DefaultEdgeOpacity   = 0.3
	DefaultCenterOpacity = 1.0
)

// NewGradient builds the canonical three-stop band: edge, center, edge.
// The edges carry edgeOpacity and the midpoint carries centerOpacity.
func NewGradient(edgeOpacity, centerOpacity float64) (Gradient, error) {
	return NewGradientStops([]Stop{
		{Position: 0, Opacity: edgeOpacity},
		{Position: 0.5, Opacity: centerOpacity},
		{Position: 1, Opacity: edgeOpacity},
	})
}

// DefaultGradient returns the standard shimmer band profile.
func DefaultGradient() Gradient {
	g, err := NewGradient(DefaultEdgeOpacity, DefaultCenterOpacity)
	if err != nil {
		// Construction from valid constants cannot fail.
		panic(err)
	}
	return g
}

// NewGradientStops builds a gradient from caller-supplied stops.
// Stops must be ordered by non-decreasing position, positions and opacities
// must be within [0, 1], and colors (when set) must parse as hex.
func NewGradientStops(stops []Stop) (Gradient, error) {
	if len(stops) == 0 {
		return Gradient{}, ErrNoStops
	}
	prev := stops[0].Position
	for i, s := range stops {
		if s.Position < 0 || s.Position > 1 {
			return Gradient{}, fmt.Errorf("%w: stop %d at %.3f", ErrStopPosition, i, s.Position)
		}
		if s.Position < prev {
			return Gradient{}, fmt.Errorf("%w: stop %d at %.3f after %.3f", ErrStopOrder, i, s.Position, prev)
		}
		if s.Opacity < 0 || s.Opacity > 1 {
			return Gradient{}, fmt.Errorf("%w: stop %d has %.3f", ErrOpacityRange, i, s.Opacity)
		}
		if s.Color != "" {
			if _, err := colorful.Hex(s.Color); err != nil {
				return Gradient{}, fmt.Errorf("%w: stop %d: %q", ErrStopColor, i, s.Color)
			}
		}
		prev = s.Position
	}
	g := Gradient{stops: make([]Stop, len(stops))}
	copy(g.stops, stops)
	return g, nil
}

// NewGradientPalette spreads the given opacities evenly across the band,
// first at position 0 and last at position 1.
func NewGradientPalette(opacities ...float64) (Gradient, error) {
	if len(opacities) == 0 {
		return Gradient{}, ErrNoStops
	}
	stops := make([]Stop, len(opacities))
	for i, o := range opacities {
		pos := 0.0
		if len(opacities) > 1 {
			pos = float64(i) / float64(len(opacities)-1)
		}
		stops[i] = Stop{Position: pos, Opacity: o}
	}
	return NewGradientStops(stops)
}

// Stops returns a copy of the band-local stops.
func (g Gradient) Stops() []Stop {
	out := make([]Stop, len(g.stops))
	copy(out, g.stops)
	return out
}

// StopsAt returns the stops projected onto the animation axis for phase p
// and band width w: the band occupies [p, p+2w] with its stops spread
// proportionally, so the canonical three-stop band lands on {p, p+w, p+2w}.
// Pure function of its inputs. A zero band width collapses every stop onto
// p, which renders as a hard-edged band.
func (g Gradient) StopsAt(phase, band float64) []Stop {
	out := make([]Stop, len(g.stops))
	for i, s := range g.stops {
		out[i] = s
		out[i].Position = phase + s.Position*2*band
	}
	return out
}

// OpacityAt evaluates the band profile at u in band-local coordinates,
// interpolating linearly between stops. Positions outside the first/last
// stop clamp to the nearest edge (pad spread).
func (g Gradient) OpacityAt(u float64) float64 {
	if len(g.stops) == 0 {
		return 0
	}
	if u <= g.stops[0].Position {
		return g.stops[0].Opacity
	}
	last := g.stops[len(g.stops)-1]
	if u >= last.Position {
		return last.Opacity
	}
	for i := 1; i < len(g.stops); i++ {
		a, b := g.stops[i-1], g.stops[i]
		if u > b.Position {
			continue
		}
		span := b.Position - a.Position
		if span == 0 {
			return b.Opacity
		}
		t := (u - a.Position) / span
		return a.Opacity + (b.Opacity-a.Opacity)*t
	}
	return last.Opacity
}

// ColorAt evaluates the band's color at u, falling back to fallback for
// stops without an explicit color. Colors blend in RGB between stops.
func (g Gradient) ColorAt(u float64, fallback colorful.Color) colorful.Color {
	if len(g.stops) == 0 {
		return fallback
	}
	if u <= g.stops[0].Position {
		return g.stopColor(0, fallback)
	}
	last := len(g.stops) - 1
	if u >= g.stops[last].Position {
		return g.stopColor(last, fallback)
	}
	for i := 1; i < len(g.stops); i++ {
		a, b := g.stops[i-1], g.stops[i]
		if u > b.Position {
			continue
		}
		span := b.Position - a.Position
		if span == 0 {
			return g.stopColor(i, fallback)
		}
		t := (u - a.Position) / span
		return g.stopColor(i-1, fallback).BlendRgb(g.stopColor(i, fallback), t)
	}
	return g.stopColor(last, fallback)
}

func (g Gradient) stopColor(i int, fallback colorful.Color) colorful.Color {
	if g.stops[i].Color == "" {
		return fallback
	}
	// Validated at construction, cannot fail here.
	c, _ := colorful.Hex(g.stops[i].Color)
	return c
}
