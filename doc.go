// Package planar implements the interaction and geometry engine of a
// point-and-line editor.
//
// # Overview
//
// A State holds a list of anchors (2D points) and a list of edges between
// them. The host application feeds pointer gestures into the State:
//
//	s := planar.NewState()
//
//	// pointer-down on empty space adds an anchor
//	s.TryStartDrag(planar.Pt(0, 0))
//	s.TryStartDrag(planar.Pt(100, 0))
//
//	// drag from the first anchor to the second creates an edge
//	s.TryStartDrag(planar.Pt(1, 1))
//	e, ok := s.TryEndDrag(planar.Pt(99, 0)) // Edge{0, 1}, true
//
// Edges created by dragging obey a planarity-like rule: no self edges,
// no repeated ordered pair, and no crossing of an existing edge.
// RandomizeEdges is the exception and may produce crossings.
//
// # Geometry
//
// Segment.Intersects trims SegmentTrim units from both ends of each segment
// before solving the two line equations, so edges that fan out of the same
// anchor never count as crossing. Parallel and collinear segments are
// always reported as not intersecting, including overlapping ones.
//
// # Coordinate System
//
// Coordinates are float32 editor units with the origin at the centre of
// the canvas and Y increasing upward. Renderers map them to their own
// space (see the render sub-package).
//
// # Concurrency
//
// A State is owned by the host's event loop and must not be shared between
// goroutines. The tone sub-package holds the only value meant to cross
// goroutines, behind its own mutex.
package planar
