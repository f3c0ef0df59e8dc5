package render

import "github.com/gogpu/gg"

// Style controls colors and stroke widths used by Draw.
type Style struct {
	Background gg.RGBA

	// Edges are drawn twice: a wide outer stroke, then a thin inner one.
	EdgeOuter      gg.RGBA
	EdgeInner      gg.RGBA
	EdgeOuterWidth float64
	EdgeInnerWidth float64

	Anchor       gg.RGBA
	Dragged      gg.RGBA
	AnchorRadius float64

	DragLine         gg.RGBA
	DragLineCrossing gg.RGBA
	DragLineWidth    float64

	HUD gg.RGBA
}

// DefaultStyle returns white-on-gray edges and white anchors on black.
func DefaultStyle() Style {
	return Style{
		Background:       gg.Black,
		EdgeOuter:        gg.Hex("#808080"),
		EdgeInner:        gg.White,
		EdgeOuterWidth:   3,
		EdgeInnerWidth:   1,
		Anchor:           gg.White,
		Dragged:          gg.Hex("#ffd400"),
		AnchorRadius:     5,
		DragLine:         gg.Hex("#4fc3f7"),
		DragLineCrossing: gg.Hex("#ef4444"),
		DragLineWidth:    2,
		HUD:              gg.Hex("#94a3b8"),
	}
}
