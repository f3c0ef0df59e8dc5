package render

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/planar"
)

// Draw paints s onto dc: background, edges, the live drag line toward
// pointer (if a drag is in progress and pointer is not nil), then anchors.
// The drag line uses Style.DragLineCrossing when it crosses an edge.
func Draw(dc *gg.Context, s *planar.State, pointer *planar.Point, st Style) error {
	w, h := float64(dc.Width()), float64(dc.Height())
	dc.ClearWithColor(st.Background)

	anchors := s.Anchors()
	for _, e := range s.Edges() {
		a := toCanvas(anchors[e.From].Pos, w, h)
		b := toCanvas(anchors[e.To].Pos, w, h)
		if err := strokeLine(dc, a, b, st.EdgeOuter, st.EdgeOuterWidth); err != nil {
			return fmt.Errorf("render: edge outline %d-%d: %w", e.From, e.To, err)
		}
		if err := strokeLine(dc, a, b, st.EdgeInner, st.EdgeInnerWidth); err != nil {
			return fmt.Errorf("render: edge %d-%d: %w", e.From, e.To, err)
		}
	}

	dragged, dragging := s.DraggedAnchor()
	if dragging && pointer != nil {
		col := st.DragLine
		if s.IsDraggingIntersecting(*pointer) {
			col = st.DragLineCrossing
		}
		a := toCanvas(anchors[dragged].Pos, w, h)
		b := toCanvas(*pointer, w, h)
		if err := strokeLine(dc, a, b, col, st.DragLineWidth); err != nil {
			return fmt.Errorf("render: drag line: %w", err)
		}
	}

	for i, a := range anchors {
		col := st.Anchor
		if dragging && i == dragged {
			col = st.Dragged
		}
		p := toCanvas(a.Pos, w, h)
		dc.SetRGBA(col.R, col.G, col.B, col.A)
		dc.DrawCircle(p.X, p.Y, st.AnchorRadius)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("render: anchor %d: %w", i, err)
		}
	}

	planar.Logger().Debug("render: drew state",
		"anchors", len(anchors), "edges", s.EdgeCount(), "width", w, "height", h)
	return nil
}

// Snapshot renders s into a new width x height image.
func Snapshot(s *planar.State, width, height int, pointer *planar.Point, st Style) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: invalid size %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	defer dc.Close()

	if err := Draw(dc, s, pointer, st); err != nil {
		return nil, err
	}

	src := dc.Image()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Copy(dst, image.Point{}, src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// EncodePNG renders s and writes it to w as PNG.
func EncodePNG(w io.Writer, s *planar.State, width, height int, st Style) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("render: invalid size %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	defer dc.Close()

	if err := Draw(dc, s, nil, st); err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// Thumbnail scales img down so its longer side is maxSide pixels, keeping
// the aspect ratio. Images already small enough are returned unchanged.
func Thumbnail(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	longest := max(b.Dx(), b.Dy())
	if maxSide <= 0 || longest <= maxSide {
		return img
	}

	scale := float64(maxSide) / float64(longest)
	w := max(1, int(math.Round(float64(b.Dx())*scale)))
	h := max(1, int(math.Round(float64(b.Dy())*scale)))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// ToCanvas converts an editor point to pixel coordinates on a
// width x height canvas.
func ToCanvas(p planar.Point, width, height int) gg.Point {
	return toCanvas(p, float64(width), float64(height))
}

// FromCanvas converts pixel coordinates back to an editor point.
func FromCanvas(x, y float64, width, height int) planar.Point {
	return planar.Pt(float32(x-float64(width)/2), float32(float64(height)/2-y))
}

func toCanvas(p planar.Point, w, h float64) gg.Point {
	return gg.Pt(w/2+float64(p.X), h/2-float64(p.Y))
}

func strokeLine(dc *gg.Context, a, b gg.Point, col gg.RGBA, width float64) error {
	dc.SetRGBA(col.R, col.G, col.B, col.A)
	dc.SetLineWidth(width)
	dc.DrawLine(a.X, a.Y, b.X, b.Y)
	return dc.Stroke()
}
