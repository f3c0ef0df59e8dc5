package planar

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func newTestState(points ...Point) *State {
	return NewState(WithAnchors(points...), WithRand(rand.New(rand.NewPCG(1, 2))))
}

// connect drags from one point to another and returns the result.
func connect(s *State, from, to Point) (Edge, bool) {
	s.TryStartDrag(from)
	return s.TryEndDrag(to)
}

func TestTryStartDrag_MissAddsAnchor(t *testing.T) {
	s := NewState()

	i, ok := s.TryStartDrag(Pt(12, 34))
	if ok {
		t.Fatalf("TryStartDrag on empty space = (%d, true), want false", i)
	}
	if s.AnchorCount() != 1 {
		t.Fatalf("AnchorCount = %d, want 1", s.AnchorCount())
	}
	if got := s.Anchors()[0].Pos; got != Pt(12, 34) {
		t.Errorf("new anchor at %v, want (12, 34)", got)
	}
	if _, dragging := s.DraggedAnchor(); dragging {
		t.Error("a miss must not start a drag")
	}
}

func TestTryStartDrag_HitStartsDrag(t *testing.T) {
	s := newTestState(Pt(0, 0), Pt(100, 0))

	i, ok := s.TryStartDrag(Pt(96, 3))
	if !ok || i != 1 {
		t.Fatalf("TryStartDrag = (%d, %v), want (1, true)", i, ok)
	}
	if s.AnchorCount() != 2 {
		t.Errorf("AnchorCount = %d, want 2", s.AnchorCount())
	}
	if d, ok := s.DraggedAnchor(); !ok || d != 1 {
		t.Errorf("DraggedAnchor = (%d, %v), want (1, true)", d, ok)
	}
}

func TestTryStartDrag_HitRadiusIsExclusive(t *testing.T) {
	s := newTestState(Pt(0, 0))

	if _, ok := s.TryStartDrag(Pt(10, 0)); ok {
		t.Error("a point exactly HitRadius away must not hit")
	}
	if s.AnchorCount() != 2 {
		t.Errorf("AnchorCount = %d, want 2", s.AnchorCount())
	}
}

func TestTryStartDrag_LowestIndexWins(t *testing.T) {
	s := newTestState(Pt(0, 0), Pt(4, 0))

	if i, ok := s.TryStartDrag(Pt(2, 0)); !ok || i != 0 {
		t.Errorf("TryStartDrag between overlapping anchors = (%d, %v), want (0, true)", i, ok)
	}
}

func TestTryEndDrag_CreatesEdge(t *testing.T) {
	s := newTestState(Pt(0, 0), Pt(100, 0))

	e, ok := connect(s, Pt(1, 1), Pt(99, -1))
	if !ok || e != (Edge{From: 0, To: 1}) {
		t.Fatalf("TryEndDrag = (%v, %v), want ({0 1}, true)", e, ok)
	}
	if got := s.Edges(); !slices.Equal(got, []Edge{{0, 1}}) {
		t.Errorf("Edges = %v, want [{0 1}]", got)
	}
	if _, dragging := s.DraggedAnchor(); dragging {
		t.Error("TryEndDrag must return to Idle")
	}
}

func TestTryEndDrag_DuplicateRejected(t *testing.T) {
	s := newTestState(Pt(0, 0), Pt(100, 0))

	if _, ok := connect(s, Pt(0, 0), Pt(100, 0)); !ok {
		t.Fatal("first edge should be created")
	}
	if _, ok := connect(s, Pt(0, 0), Pt(100, 0)); ok {
		t.Error("duplicate edge should be rejected")
	}
	if s.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", s.EdgeCount())
	}
}

func TestTryEndDrag_ReverseIsDistinct(t *testing.T) {
	s := newTestState(Pt(0, 0), Pt(100, 0))

	connect(s, Pt(0, 0), Pt(100, 0))
	e, ok := connect(s, Pt(100, 0), Pt(0, 0))
	if !ok || e != (Edge{From: 1, To: 0}) {
		t.Errorf("reverse edge = (%v, %v), want ({1 0}, true)", e, ok)
	}
	if s.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d, want 2", s.EdgeCount())
	}
}

func TestTryEndDrag_SelfRejected(t *testing.T) {
	s := newTestState(Pt(0, 0), Pt(100, 0))

	if _, ok := connect(s, Pt(0, 0), Pt(3, 3)); ok {
		t.Error("edge onto the starting anchor should be rejected")
	}
	if s.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0", s.EdgeCount())
	}
	if _, dragging := s.DraggedAnchor(); dragging {
		t.Error("failed TryEndDrag must still return to Idle")
	}
}

func TestTryEndDrag_EmptySpace(t *testing.T) {
	s := newTestState(Pt(0, 0), Pt(100, 0))

	if _, ok := connect(s, Pt(0, 0), Pt(50, 50)); ok {
		t.Error("release on empty space should not create an edge")
	}
	if s.AnchorCount() != 2 {
		t.Errorf("release must not add anchors, AnchorCount = %d", s.AnchorCount())
	}
}

func TestTryEndDrag_CrossingRejected(t *testing.T) {
	s := newTestState(Pt(-50, 0), Pt(50, 0), Pt(0, -50), Pt(0, 50))

	if _, ok := connect(s, Pt(-50, 0), Pt(50, 0)); !ok {
		t.Fatal("horizontal edge should be created")
	}
	before := s.Edges()

	if _, ok := connect(s, Pt(0, -50), Pt(0, 50)); ok {
		t.Error("crossing edge should be rejected")
	}
	if got := s.Edges(); !slices.Equal(got, before) {
		t.Errorf("Edges changed to %v, want %v", got, before)
	}
}

func TestTryEndDrag_CrossingRejectedOffGrid(t *testing.T) {
	s := newTestState(Pt(-50, 7.7), Pt(50, 7.7), Pt(0.7, -42.3), Pt(0.7, 57.7))

	if _, ok := connect(s, Pt(-50, 7.7), Pt(50, 7.7)); !ok {
		t.Fatal("horizontal edge should be created")
	}
	if e, ok := connect(s, Pt(0.7, -42.3), Pt(0.7, 57.7)); ok {
		t.Errorf("crossing edge %v created, edges = %v", e, s.Edges())
	}
}

func TestTryEndDrag_SharedAnchorAllowed(t *testing.T) {
	s := newTestState(Pt(0, 0), Pt(100, 0), Pt(100, 100))

	connect(s, Pt(0, 0), Pt(100, 0))
	if _, ok := connect(s, Pt(0, 0), Pt(100, 100)); !ok {
		t.Error("edges fanning out of the same anchor should not count as crossing")
	}
	if _, ok := connect(s, Pt(100, 0), Pt(100, 100)); !ok {
		t.Error("closing the triangle should be allowed")
	}
	if s.EdgeCount() != 3 {
		t.Errorf("EdgeCount = %d, want 3", s.EdgeCount())
	}
}

func TestTryEndDrag_Idle(t *testing.T) {
	s := newTestState(Pt(0, 0), Pt(100, 0))

	if _, ok := s.TryEndDrag(Pt(100, 0)); ok {
		t.Error("TryEndDrag without a drag should fail")
	}
}

func TestIsDraggingIntersecting(t *testing.T) {
	s := newTestState(Pt(-50, 0), Pt(50, 0), Pt(0, -50))
	connect(s, Pt(-50, 0), Pt(50, 0))

	if s.IsDraggingIntersecting(Pt(0, 50)) {
		t.Error("IsDraggingIntersecting must be false while Idle")
	}

	s.TryStartDrag(Pt(0, -50))
	if !s.IsDraggingIntersecting(Pt(0, 50)) {
		t.Error("drag line across the edge should intersect")
	}
	if s.IsDraggingIntersecting(Pt(0, -20)) {
		t.Error("drag line short of the edge should not intersect")
	}
	if s.IsDraggingIntersecting(Pt(-50, 0)) {
		t.Error("drag line ending on an edge endpoint should not intersect")
	}
}

func TestDragLength(t *testing.T) {
	s := newTestState(Pt(0, 0))

	if _, ok := s.DragLength(Pt(3, 4)); ok {
		t.Error("DragLength must be false while Idle")
	}
	s.TryStartDrag(Pt(0, 0))
	if d, ok := s.DragLength(Pt(3, 4)); !ok || d != 5 {
		t.Errorf("DragLength = (%v, %v), want (5, true)", d, ok)
	}
}

func TestClearEdges(t *testing.T) {
	s := newTestState(Pt(0, 0), Pt(100, 0))
	connect(s, Pt(0, 0), Pt(100, 0))

	s.ClearEdges()
	if s.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0", s.EdgeCount())
	}
	if s.AnchorCount() != 2 {
		t.Errorf("ClearEdges changed anchors: %d", s.AnchorCount())
	}
}

func TestRandomizeEdges(t *testing.T) {
	s := newTestState(Pt(0, 0), Pt(100, 0), Pt(0, 100), Pt(100, 100), Pt(50, 200))

	for range 200 {
		s.RandomizeEdges()

		edges := s.Edges()
		if len(edges) == 0 {
			t.Fatal("RandomizeEdges produced no edges")
		}
		seen := map[Edge]bool{}
		for _, e := range edges {
			if e.From == e.To {
				t.Fatalf("self edge %v", e)
			}
			if e.From < 0 || e.From >= 5 || e.To < 0 || e.To >= 5 {
				t.Fatalf("edge %v out of range", e)
			}
			if seen[e] {
				t.Fatalf("duplicate edge %v in %v", e, edges)
			}
			seen[e] = true
		}
	}
}

func TestRandomizeEdges_TwoAnchors(t *testing.T) {
	s := newTestState(Pt(0, 0), Pt(100, 0))

	for range 50 {
		s.RandomizeEdges()
		if s.EdgeCount() == 0 || s.EdgeCount() > 2 {
			t.Fatalf("EdgeCount = %d, want 1 or 2", s.EdgeCount())
		}
	}
}

func TestRandomizeEdges_TooFewAnchors(t *testing.T) {
	s := newTestState(Pt(0, 0))
	s.RandomizeEdges()
	if s.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0", s.EdgeCount())
	}
}

func TestRemoveAnchor(t *testing.T) {
	// 0 - 1 - 2 with an extra edge 2 -> 3.
	s := newTestState(Pt(0, 0), Pt(100, 0), Pt(200, 0), Pt(200, 100))
	connect(s, Pt(0, 0), Pt(100, 0))
	connect(s, Pt(100, 0), Pt(200, 0))
	connect(s, Pt(200, 0), Pt(200, 100))

	if !s.RemoveAnchor(1) {
		t.Fatal("RemoveAnchor(1) = false")
	}
	if s.AnchorCount() != 3 {
		t.Errorf("AnchorCount = %d, want 3", s.AnchorCount())
	}
	if got := s.Edges(); !slices.Equal(got, []Edge{{1, 2}}) {
		t.Errorf("Edges = %v, want [{1 2}]", got)
	}
	if got := s.Anchors()[1].Pos; got != Pt(200, 0) {
		t.Errorf("anchor 1 = %v, want (200, 0)", got)
	}
}

func TestRemoveAnchor_OutOfRange(t *testing.T) {
	s := newTestState(Pt(0, 0), Pt(100, 0))
	connect(s, Pt(0, 0), Pt(100, 0))

	for _, i := range []int{-1, 2, 100} {
		if s.RemoveAnchor(i) {
			t.Errorf("RemoveAnchor(%d) = true, want false", i)
		}
	}
	if s.AnchorCount() != 2 || s.EdgeCount() != 1 {
		t.Errorf("state changed: anchors=%d edges=%d", s.AnchorCount(), s.EdgeCount())
	}
}

func TestRemoveAnchor_DraggedAnchor(t *testing.T) {
	s := newTestState(Pt(0, 0), Pt(100, 0), Pt(200, 0))

	s.TryStartDrag(Pt(100, 0))
	s.RemoveAnchor(1)
	if _, ok := s.DraggedAnchor(); ok {
		t.Error("removing the dragged anchor should cancel the drag")
	}

	s.TryStartDrag(Pt(200, 0))
	s.RemoveAnchor(0)
	if d, ok := s.DraggedAnchor(); !ok || d != 0 {
		t.Errorf("DraggedAnchor = (%d, %v), want (0, true)", d, ok)
	}
}

func TestWiggle(t *testing.T) {
	s := newTestState(Pt(0, 0), Pt(100, 0))
	before := s.Anchors()

	s.Wiggle(1)

	for i, a := range s.Anchors() {
		d := a.Pos.Sub(before[i].Pos)
		if d.X < -1 || d.X > 1 || d.Y < -1 || d.Y > 1 {
			t.Errorf("anchor %d moved by %v, want within 1", i, d)
		}
	}

	s.Wiggle(0)
	s.Wiggle(-3)
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := newTestState(Pt(0, 0), Pt(100, 0))
	connect(s, Pt(0, 0), Pt(100, 0))

	s.Anchors()[0].Pos = Pt(9, 9)
	s.Edges()[0] = Edge{From: 1, To: 1}

	if s.Anchors()[0].Pos != Pt(0, 0) {
		t.Error("Anchors() exposed internal storage")
	}
	if s.Edges()[0] != (Edge{From: 0, To: 1}) {
		t.Error("Edges() exposed internal storage")
	}
}
