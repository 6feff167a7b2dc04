package shimmer

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func testPalette() Palette {
	base, _ := colorful.Hex("#c0c0c0")
	band, _ := colorful.Hex("#ffffff")
	backdrop, _ := colorful.Hex("#101010")
	return Palette{Base: base, Band: band, Backdrop: backdrop}
}

func TestMask_OpaqueGradientLeavesContentVisible(t *testing.T) {
	p := testPalette()
	cell := MaskStrategy().Apply('A', 1.0, p.Band, p)

	assert.Equal(t, 'A', cell.Rune)
	assert.True(t, cell.HasFg)
	assert.Equal(t, p.Base, cell.Fg, "full opacity renders the content color untouched")
}

func TestMask_TransparentGradientHidesContent(t *testing.T) {
	p := testPalette()
	cell := MaskStrategy().Apply('A', 0.0, p.Band, p)

	assert.Equal(t, ' ', cell.Rune, "zero opacity blanks the cell")
	assert.False(t, cell.HasFg)
}

func TestMask_PartialOpacityFadesTowardBackdrop(t *testing.T) {
	p := testPalette()
	cell := MaskStrategy().Apply('A', 0.5, p.Band, p)

	assert.Equal(t, 'A', cell.Rune)
	assert.True(t, cell.HasFg)
	assert.Equal(t, p.Backdrop.BlendRgb(p.Base, 0.5), cell.Fg)
}

func TestMask_SpaceStaysBlank(t *testing.T) {
	p := testPalette()
	cell := MaskStrategy().Apply(' ', 1.0, p.Band, p)

	assert.Equal(t, ' ', cell.Rune)
	assert.False(t, cell.HasFg)
	assert.False(t, cell.HasBg)
}

func TestOverlay_SourceAtopClipsToContent(t *testing.T) {
	p := testPalette()
	s := OverlayStrategy(BlendSourceAtop)

	blank := s.Apply(' ', 1.0, p.Band, p)
	assert.False(t, blank.HasFg, "gradient is clipped to cells the content occupies")
	assert.False(t, blank.HasBg)

	lit := s.Apply('A', 1.0, p.Band, p)
	assert.Equal(t, 'A', lit.Rune, "overlay never hides content")
	assert.Equal(t, p.Band, lit.Fg, "full opacity tints all the way to the band color")
}

func TestOverlay_ZeroOpacityLeavesBaseColor(t *testing.T) {
	p := testPalette()
	cell := OverlayStrategy(BlendSourceAtop).Apply('A', 0.0, p.Band, p)

	assert.Equal(t, p.Base, cell.Fg)
}

func TestOverlay_ScreenLightens(t *testing.T) {
	p := testPalette()
	halfBand, _ := colorful.Hex("#808080")
	cell := OverlayStrategy(BlendScreen).Apply('A', 1.0, halfBand, p)

	assert.GreaterOrEqual(t, cell.Fg.R, p.Base.R)
	assert.GreaterOrEqual(t, cell.Fg.G, p.Base.G)
	assert.GreaterOrEqual(t, cell.Fg.B, p.Base.B)
}

func TestOverlay_MultiplyDarkens(t *testing.T) {
	p := testPalette()
	halfBand, _ := colorful.Hex("#808080")
	cell := OverlayStrategy(BlendMultiply).Apply('A', 1.0, halfBand, p)

	assert.LessOrEqual(t, cell.Fg.R, p.Base.R)
	assert.LessOrEqual(t, cell.Fg.G, p.Base.G)
	assert.LessOrEqual(t, cell.Fg.B, p.Base.B)
}

func TestBackground_OnlyFillsBlankCells(t *testing.T) {
	p := testPalette()
	s := BackgroundStrategy()

	occupied := s.Apply('A', 1.0, p.Band, p)
	assert.Equal(t, 'A', occupied.Rune)
	assert.False(t, occupied.HasBg, "content occludes the background gradient")
	assert.Equal(t, p.Base, occupied.Fg)

	blank := s.Apply(' ', 1.0, p.Band, p)
	assert.True(t, blank.HasBg)
	assert.Equal(t, p.Band, blank.Bg)
}

func TestBackground_ZeroOpacityLeavesBlankAlone(t *testing.T) {
	p := testPalette()
	cell := BackgroundStrategy().Apply(' ', 0.0, p.Band, p)
	assert.False(t, cell.HasBg)
}

func TestStrategyApply_ClampsOpacity(t *testing.T) {
	p := testPalette()
	cell := MaskStrategy().Apply('A', 3.0, p.Band, p)
	assert.Equal(t, p.Base, cell.Fg, "opacity above 1 behaves as fully opaque")
}

func TestStrategyValidate(t *testing.T) {
	assert.NoError(t, MaskStrategy().validate())
	assert.NoError(t, OverlayStrategy(BlendScreen).validate())
	assert.ErrorIs(t, Strategy{Blend: BlendMode(99)}.validate(), ErrBlendMode)
}

func TestZeroStrategyIsMask(t *testing.T) {
	var s Strategy
	assert.Equal(t, Mask, s.Mode)
}

func TestModeAndBlendStrings(t *testing.T) {
	assert.Equal(t, "mask", Mask.String())
	assert.Equal(t, "overlay", Overlay.String())
	assert.Equal(t, "background", Background.String())
	assert.Equal(t, "sourceAtop", BlendSourceAtop.String())
	assert.Equal(t, "screen", BlendScreen.String())
	assert.Equal(t, "multiply", BlendMultiply.String())
}
