//go:build !planardebug

package planar

// checkInvariants is compiled out unless built with -tags planardebug.
func (s *State) checkInvariants() {}
