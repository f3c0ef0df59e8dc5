package planar

// SegmentTrim is the distance cut from each end of both segments before
// Segment.Intersects tests them. Segments that share an endpoint therefore
// never report a crossing.
const SegmentTrim float32 = 2.0

// Segment is a straight line segment between two points.
type Segment struct {
	Start, End Point
}

// Seg is a convenience function to create a Segment.
func Seg(start, end Point) Segment {
	return Segment{Start: start, End: end}
}

// Length returns the distance between the segment's endpoints.
func (s Segment) Length() float32 {
	return s.Start.Distance(s.End)
}

// ShortenByFactor moves both endpoints toward each other by f times the
// segment vector.
func (s Segment) ShortenByFactor(f float32) Segment {
	v := s.End.Sub(s.Start).Mul(f)
	return Segment{
		Start: s.Start.Add(v),
		End:   s.End.Sub(v),
	}
}

// ShortenByFixedAmount trims d units from each end.
// A zero-length segment is returned unchanged.
func (s Segment) ShortenByFixedAmount(d float32) Segment {
	length := s.Length()
	if length == 0 {
		return s
	}
	return s.ShortenByFactor(d / length)
}

// Intersects reports whether s and other cross, after trimming SegmentTrim
// units from each end of both.
//
// Parallel and collinear segments never intersect, even when they overlap.
func (s Segment) Intersects(other Segment) bool {
	return s.IntersectsTrimmed(other, SegmentTrim)
}

// IntersectsTrimmed is Intersects with a caller-chosen trim distance.
//
// The solve runs in float64. A float32 solve can round the crossing point
// of a horizontal or vertical segment just outside its zero-width bounding
// box and miss a plain crossing.
func (s Segment) IntersectsTrimmed(other Segment, trim float32) bool {
	s1 := s.ShortenByFixedAmount(trim)
	s2 := other.ShortenByFixedAmount(trim)

	a1, b1, c1 := s1.line()
	a2, b2, c2 := s2.line()

	det := a1*b2 - a2*b1
	if det == 0 {
		return false
	}

	x := (b2*c1 - b1*c2) / det
	y := (a1*c2 - a2*c1) / det

	// A crossing on an axis-aligned segment lies exactly on its axis.
	x, y = s1.snap(a1, b1, x, y)
	x, y = s2.snap(a2, b2, x, y)

	return s1.boundsContain(x, y) && s2.boundsContain(x, y)
}

// line returns the implicit equation a*x + b*y = c through the segment.
func (s Segment) line() (a, b, c float64) {
	x1, y1 := float64(s.Start.X), float64(s.Start.Y)
	x2, y2 := float64(s.End.X), float64(s.End.Y)
	a = y2 - y1
	b = x1 - x2
	c = a*x1 + b*y1
	return a, b, c
}

// snap pins (x, y) onto the segment's line when that line is horizontal
// (a == 0) or vertical (b == 0).
func (s Segment) snap(a, b, x, y float64) (float64, float64) {
	if a == 0 {
		y = float64(s.Start.Y)
	}
	if b == 0 {
		x = float64(s.Start.X)
	}
	return x, y
}

// boundsContain reports whether (x, y) lies inside the segment's
// axis-aligned bounding box, bounds inclusive.
func (s Segment) boundsContain(x, y float64) bool {
	x1, y1 := float64(s.Start.X), float64(s.Start.Y)
	x2, y2 := float64(s.End.X), float64(s.End.Y)
	return x >= min(x1, x2) && x <= max(x1, x2) &&
		y >= min(y1, y2) && y <= max(y1, y2)
}
