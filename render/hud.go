package render

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/gg"
	"github.com/gogpu/planar"
)

const hudMargin = 8

var printer = message.NewPrinter(language.English)

// Summary describes s in one line, e.g. "1,024 anchors, 17 edges".
func Summary(s *planar.State) string {
	line := printer.Sprintf("%d anchors, %d edges", s.AnchorCount(), s.EdgeCount())
	if i, ok := s.DraggedAnchor(); ok {
		line += printer.Sprintf(", dragging %d", i)
	}
	return line
}

// DrawHUD writes lines of text in the top-left corner of img using the
// basic 7x13 bitmap font.
func DrawHUD(img draw.Image, col gg.RGBA, lines ...string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col.Color()),
		Face: face,
	}
	lineHeight := face.Metrics().Height.Ceil()
	for i, line := range lines {
		d.Dot = fixed.P(img.Bounds().Min.X+hudMargin, img.Bounds().Min.Y+hudMargin+(i+1)*lineHeight)
		d.DrawString(line)
	}
}
