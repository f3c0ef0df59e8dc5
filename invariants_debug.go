//go:build planardebug

package planar

import "fmt"

// checkInvariants panics when an edge or the drag state references a
// missing anchor, or when an edge is a self loop.
func (s *State) checkInvariants() {
	n := len(s.anchors)
	if s.dragged != noDrag && (s.dragged < 0 || s.dragged >= n) {
		panic(fmt.Sprintf("planar: dragged anchor %d out of range [0,%d)", s.dragged, n))
	}
	for k, e := range s.edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			panic(fmt.Sprintf("planar: edge %d (%d,%d) out of range [0,%d)", k, e.From, e.To, n))
		}
		if e.From == e.To {
			panic(fmt.Sprintf("planar: edge %d is a self loop on %d", k, e.From))
		}
	}
}
