package planar

import (
	"log/slog"
	"math/rand/v2"
	"slices"
)

// HitRadius is the default distance under which a pointer counts as being
// on an anchor.
const HitRadius float32 = 10.0

// noDrag marks the Idle state.
const noDrag = -1

// Anchor is a graph node. Its identity is its index in the State.
type Anchor struct {
	Pos Point
}

// Edge connects two anchors by index. From is the anchor the drag started
// on. Edges render undirected but are compared as ordered pairs.
type Edge struct {
	From, To int
}

// State owns the anchors, the edges and the drag gesture of one editing
// session. It is not safe for concurrent use; the host serializes calls
// from its event loop.
//
// The zero value is not usable; create a State with NewState.
type State struct {
	anchors []Anchor
	edges   []Edge
	dragged int

	hitRadius float32
	trim      float32
	rng       *rand.Rand
	logger    *slog.Logger
}

// NewState creates an empty State in the Idle state.
func NewState(opts ...Option) *State {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s := &State{
		dragged:   noDrag,
		hitRadius: o.hitRadius,
		trim:      o.trim,
		rng:       rng,
		logger:    o.logger,
	}
	for _, p := range o.anchors {
		s.anchors = append(s.anchors, Anchor{Pos: p})
	}
	return s
}

func (s *State) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return Logger()
}

// Anchors returns a copy of the anchors in index order.
func (s *State) Anchors() []Anchor {
	return slices.Clone(s.anchors)
}

// Edges returns a copy of the edges in insertion order.
func (s *State) Edges() []Edge {
	return slices.Clone(s.edges)
}

// AnchorCount returns the number of anchors.
func (s *State) AnchorCount() int { return len(s.anchors) }

// EdgeCount returns the number of edges.
func (s *State) EdgeCount() int { return len(s.edges) }

// DraggedAnchor returns the index of the anchor being dragged, and false
// when no drag is in progress.
func (s *State) DraggedAnchor() (int, bool) {
	if s.dragged == noDrag {
		return noDrag, false
	}
	return s.dragged, true
}

// EdgeSegment returns the segment between the anchors of e.
// e must reference valid anchors.
func (s *State) EdgeSegment(e Edge) Segment {
	return Seg(s.anchors[e.From].Pos, s.anchors[e.To].Pos)
}

// HitTest returns the lowest index of an anchor closer than the hit radius
// to p.
func (s *State) HitTest(p Point) (int, bool) {
	for i, a := range s.anchors {
		if a.Pos.Distance(p) < s.hitRadius {
			return i, true
		}
	}
	return noDrag, false
}

// TryStartDrag handles a pointer-down at p. When p is on an anchor the
// drag starts from it and its index is returned. Otherwise a new anchor
// is appended at p and the result is false.
func (s *State) TryStartDrag(p Point) (int, bool) {
	if i, ok := s.HitTest(p); ok {
		s.dragged = i
		s.log().Debug("planar: drag started", "anchor", i)
		return i, true
	}

	s.anchors = append(s.anchors, Anchor{Pos: p})
	s.log().Debug("planar: anchor added", "anchor", len(s.anchors)-1, "x", p.X, "y", p.Y)
	s.checkInvariants()
	return noDrag, false
}

// TryEndDrag handles a pointer-up at p and always returns to Idle.
//
// An edge from the dragged anchor to the anchor under p is created and
// returned when the two differ, the same ordered edge does not exist yet,
// and the new edge crosses no existing edge.
func (s *State) TryEndDrag(p Point) (Edge, bool) {
	from := s.dragged
	s.dragged = noDrag
	if from == noDrag {
		return Edge{}, false
	}

	to, ok := s.HitTest(p)
	if !ok {
		s.log().Debug("planar: drag released on empty space", "anchor", from)
		return Edge{}, false
	}
	if to == from {
		s.log().Debug("planar: edge rejected", "from", from, "to", to, "reason", "self")
		return Edge{}, false
	}

	e := Edge{From: from, To: to}
	if s.hasEdge(e) {
		s.log().Debug("planar: edge rejected", "from", from, "to", to, "reason", "duplicate")
		return Edge{}, false
	}
	if s.crossesAny(s.EdgeSegment(e)) {
		s.log().Debug("planar: edge rejected", "from", from, "to", to, "reason", "crossing")
		return Edge{}, false
	}

	s.edges = append(s.edges, e)
	s.log().Debug("planar: edge created", "from", from, "to", to)
	s.checkInvariants()
	return e, true
}

// IsDraggingIntersecting reports whether the line from the dragged anchor
// to p crosses an existing edge. It is false when no drag is in progress.
func (s *State) IsDraggingIntersecting(p Point) bool {
	if s.dragged == noDrag {
		return false
	}
	return s.crossesAny(Seg(s.anchors[s.dragged].Pos, p))
}

// DragLength returns the distance from the dragged anchor to p, and false
// when no drag is in progress.
func (s *State) DragLength(p Point) (float32, bool) {
	if s.dragged == noDrag {
		return 0, false
	}
	return s.anchors[s.dragged].Pos.Distance(p), true
}

// ClearEdges removes every edge.
func (s *State) ClearEdges() {
	s.edges = s.edges[:0]
	s.log().Info("planar: edges cleared")
}

// RandomizeEdges replaces the edges with a random set. With fewer than two
// anchors it does nothing.
//
// The result always holds at least one edge, never a self edge and never
// the same ordered pair twice. Randomized edges may cross each other.
func (s *State) RandomizeEdges() {
	n := len(s.anchors)
	if n < 2 {
		return
	}

	s.edges = s.edges[:0]

	first := s.rng.IntN(n)
	second := s.rng.IntN(n)
	for second == first {
		second = s.rng.IntN(n)
	}
	s.edges = append(s.edges, Edge{From: first, To: second})

	for i := range n {
		e := Edge{From: i, To: s.rng.IntN(n)}
		if e.From != e.To && !s.hasEdge(e) {
			s.edges = append(s.edges, e)
		}
	}

	s.log().Info("planar: edges randomized", "anchors", n, "edges", len(s.edges))
	s.checkInvariants()
}

// RemoveAnchor deletes the anchor at index i together with every edge that
// touches it. Edges and the drag state referencing later anchors are
// shifted down by one. If i is the dragged anchor the drag is cancelled.
// It reports false, changing nothing, when i is out of range.
func (s *State) RemoveAnchor(i int) bool {
	if i < 0 || i >= len(s.anchors) {
		return false
	}

	before := len(s.edges)
	s.edges = slices.DeleteFunc(s.edges, func(e Edge) bool {
		return e.From == i || e.To == i
	})
	for k := range s.edges {
		if s.edges[k].From > i {
			s.edges[k].From--
		}
		if s.edges[k].To > i {
			s.edges[k].To--
		}
	}

	switch {
	case s.dragged == i:
		s.dragged = noDrag
	case s.dragged > i:
		s.dragged--
	}

	s.anchors = slices.Delete(s.anchors, i, i+1)
	s.log().Info("planar: anchor removed", "anchor", i, "edges_removed", before-len(s.edges))
	s.checkInvariants()
	return true
}

// Wiggle moves every anchor by an independent random offset in
// [-amount, amount] on each axis. Existing edges are not re-validated.
func (s *State) Wiggle(amount float32) {
	if amount <= 0 {
		return
	}
	for k := range s.anchors {
		s.anchors[k].Pos.X += (s.rng.Float32()*2 - 1) * amount
		s.anchors[k].Pos.Y += (s.rng.Float32()*2 - 1) * amount
	}
}

func (s *State) hasEdge(e Edge) bool {
	return slices.Contains(s.edges, e)
}

func (s *State) crossesAny(candidate Segment) bool {
	for _, e := range s.edges {
		if s.EdgeSegment(e).IntersectsTrimmed(candidate, s.trim) {
			return true
		}
	}
	return false
}
