package shimmer

import (
	"errors"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrBlendMode rejects blend values outside the supported set.
var ErrBlendMode = errors.New("shimmer: unknown blend mode")

// Mode selects how the animated gradient combines with the wrapped content.
type Mode int

const (
	// Mask alpha-multiplies the content by the gradient: cells are faded
	// toward the backdrop by the band's opacity and fully transparent
	// cells are blanked. This is the primary skeleton-shimmer look.
	Mask Mode = iota
	// Overlay renders the gradient on top of the content with a blend
	// mode, producing a sheen without hiding anything.
	Overlay
	// Background renders the gradient behind the content: only cells the
	// content leaves blank pick up the band color.
	Background
)

// String returns the mode name for flags and theme files.
func (m Mode) String() string {
	switch m {
	case Overlay:
		return "overlay"
	case Background:
		return "background"
	default:
		return "mask"
	}
}

// BlendMode is the pixel blend used by the Overlay mode.
type BlendMode int

const (
	// BlendSourceAtop clips the gradient to cells the content occupies,
	// tinting their foreground toward the band color. The default.
	BlendSourceAtop BlendMode = iota
	// BlendScreen lightens: the inverse channels are multiplied.
	BlendScreen
	// BlendMultiply darkens: the channels are multiplied.
	BlendMultiply
)

// String returns the blend name for flags and theme files.
func (b BlendMode) String() string {
	switch b {
	case BlendScreen:
		return "screen"
	case BlendMultiply:
		return "multiply"
	default:
		return "sourceAtop"
	}
}

// Strategy is the compositing rule, chosen once at construction and
// immutable for the effect's lifetime. The zero value is the mask strategy.
type Strategy struct {
	Mode  Mode
	Blend BlendMode
}

// MaskStrategy composites by alpha-multiplying content with the gradient.
func MaskStrategy() Strategy {
	return Strategy{Mode: Mask}
}

// OverlayStrategy composites the gradient over content with the given blend.
func OverlayStrategy(blend BlendMode) Strategy {
	return Strategy{Mode: Overlay, Blend: blend}
}

// BackgroundStrategy composites the gradient behind the content.
func BackgroundStrategy() Strategy {
	return Strategy{Mode: Background}
}

func (s Strategy) validate() error {
	switch s.Blend {
	case BlendSourceAtop, BlendScreen, BlendMultiply:
		return nil
	default:
		return ErrBlendMode
	}
}

// Palette carries the three colors compositing works with: the content's
// foreground, the band highlight, and the terminal backdrop standing in for
// full transparency.
type Palette struct {
	Base     colorful.Color
	Band     colorful.Color
	Backdrop colorful.Color
}

// Cell is the composited result for one terminal cell.
type Cell struct {
	Rune  rune
	Fg    colorful.Color
	Bg    colorful.Color
	HasFg bool
	HasBg bool
}

// Apply composites a single content cell with the gradient sample at that
// cell. Pure function: (rune, opacity, band color, palette) in, cell out.
func (s Strategy) Apply(r rune, opacity float64, band colorful.Color, p Palette) Cell {
	opacity = clamp01(opacity)
	switch s.Mode {
	case Overlay:
		return s.overlayCell(r, opacity, band, p)
	case Background:
		return backgroundCell(r, opacity, band, p)
	default:
		return maskCell(r, opacity, p)
	}
}

// maskCell fades the content toward the backdrop by the band's opacity.
// A fully transparent sample blanks the cell entirely so content stays
// hidden even on terminals where the backdrop color is approximate.
func maskCell(r rune, opacity float64, p Palette) Cell {
	if r == ' ' {
		return Cell{Rune: r}
	}
	if opacity == 0 {
		return Cell{Rune: ' '}
	}
	if opacity == 1 {
		return Cell{Rune: r, Fg: p.Base, HasFg: true}
	}
	return Cell{Rune: r, Fg: blendRgb(p.Backdrop, p.Base, opacity), HasFg: true}
}

func (s Strategy) overlayCell(r rune, opacity float64, band colorful.Color, p Palette) Cell {
	// Terminal cells without content have no foreground to blend into.
	if r == ' ' {
		return Cell{Rune: r}
	}
	var lit colorful.Color
	switch s.Blend {
	case BlendScreen:
		lit = screenBlend(p.Base, band)
	case BlendMultiply:
		lit = multiplyBlend(p.Base, band)
	default:
		lit = band
	}
	return Cell{Rune: r, Fg: blendRgb(p.Base, lit, opacity), HasFg: true}
}

func backgroundCell(r rune, opacity float64, band colorful.Color, p Palette) Cell {
	if r != ' ' {
		return Cell{Rune: r, Fg: p.Base, HasFg: true}
	}
	if opacity == 0 {
		return Cell{Rune: r}
	}
	return Cell{Rune: r, Bg: blendRgb(p.Backdrop, band, opacity), HasBg: true}
}

// blendRgb interpolates in RGB, pinning the endpoints so full and zero
// opacity reproduce their colors bit-exactly.
func blendRgb(a, b colorful.Color, t float64) colorful.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a.BlendRgb(b, t)
}

func screenBlend(a, b colorful.Color) colorful.Color {
	return colorful.Color{
		R: 1 - (1-a.R)*(1-b.R),
		G: 1 - (1-a.G)*(1-b.G),
		B: 1 - (1-a.B)*(1-b.B),
	}
}

func multiplyBlend(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R * b.R, G: a.G * b.G, B: a.B * b.B}
}
