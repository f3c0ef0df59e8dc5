// Package tone derives the drag tone frequency from a planar.State.
//
// The editor plays a sine tone whose pitch follows the drag gesture. The
// audio callback runs on its own goroutine, so the frequency and volume
// live in a Cell guarded by a mutex. A Controller writes the Cell once per
// frame from the host's event loop; the synthesizer only reads it.
package tone
