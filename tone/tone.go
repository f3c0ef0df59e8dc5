package tone

import (
	"math/rand/v2"
	"sync"

	"github.com/gogpu/planar"
)

const (
	// BaseFrequency is the tone frequency at zero drag length, in Hz.
	BaseFrequency float32 = 100

	// LengthDivisor converts drag length in units to Hz above BaseFrequency.
	LengthDivisor float32 = 3

	// Smoothing is the default divisor Controller passes to Cell.Approach.
	Smoothing float32 = 10

	// DefaultVolume is the volume of a Cell created by NewController.
	DefaultVolume float32 = 0.5
)

// Target returns the frequency for a drag of the given length. While the
// drag line crosses an edge the frequency is divided by a random factor in
// [0.25, 0.75), which makes the pitch jump upward erratically.
func Target(dragLength float32, intersecting bool, r *rand.Rand) float32 {
	freq := dragLength/LengthDivisor + BaseFrequency
	if intersecting {
		freq /= 0.25 + r.Float32()*0.5
	}
	return freq
}

// Cell holds the frequency and volume shared with the audio goroutine.
// A frequency of zero asks the synthesizer to fade out and stop.
type Cell struct {
	mu     sync.Mutex
	freq   float32
	volume float32
}

// NewCell creates a Cell. The volume is clamped to [0, 1].
func NewCell(freq, volume float32) *Cell {
	return &Cell{freq: freq, volume: clamp01(volume)}
}

// Frequency returns the current frequency in Hz.
func (c *Cell) Frequency() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.freq
}

// Volume returns the current volume in [0, 1].
func (c *Cell) Volume() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.volume
}

// SetVolume sets the volume, clamped to [0, 1].
func (c *Cell) SetVolume(v float32) {
	c.mu.Lock()
	c.volume = clamp01(v)
	c.mu.Unlock()
}

// SetFrequency replaces the frequency.
func (c *Cell) SetFrequency(f float32) {
	c.mu.Lock()
	c.freq = f
	c.mu.Unlock()
}

// Approach moves the frequency 1/divisor of the way toward target and
// returns the new value. A divisor below 1 jumps straight to target.
func (c *Cell) Approach(target, divisor float32) float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if divisor < 1 {
		divisor = 1
	}
	c.freq += (target - c.freq) / divisor
	return c.freq
}

// Stop sets the frequency to zero.
func (c *Cell) Stop() {
	c.SetFrequency(0)
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}

// Dragger is the part of planar.State the Controller reads.
type Dragger interface {
	DragLength(p planar.Point) (float32, bool)
	IsDraggingIntersecting(p planar.Point) bool
}

var _ Dragger = (*planar.State)(nil)

// Controller updates a Cell from the drag gesture, once per frame.
type Controller struct {
	cell       *Cell
	rng        *rand.Rand
	smoothing  float32
	lastLength float32
	hasLast    bool
}

// NewController creates a Controller writing to cell. A nil cell gets a
// fresh one at BaseFrequency and DefaultVolume; a nil r gets a random seed.
func NewController(cell *Cell, r *rand.Rand) *Controller {
	if cell == nil {
		cell = NewCell(BaseFrequency, DefaultVolume)
	}
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Controller{cell: cell, rng: r, smoothing: Smoothing}
}

// SetSmoothing changes the divisor passed to Cell.Approach.
func (c *Controller) SetSmoothing(divisor float32) {
	c.smoothing = divisor
}

// Cell returns the cell the Controller writes to.
func (c *Controller) Cell() *Cell { return c.cell }

// Update samples the drag at pointer. The cell only moves when both this
// frame and the previous one had a drag in progress, so the first frame
// of a gesture never makes the pitch jump. It reports whether the cell was
// updated.
func (c *Controller) Update(d Dragger, pointer planar.Point) bool {
	length, dragging := d.DragLength(pointer)
	hadLast := c.hasLast
	c.lastLength, c.hasLast = length, dragging

	if !hadLast || !dragging {
		return false
	}

	target := Target(length, d.IsDraggingIntersecting(pointer), c.rng)
	c.cell.Approach(target, c.smoothing)
	return true
}

// Reset forgets the previous frame.
func (c *Controller) Reset() {
	c.lastLength, c.hasLast = 0, false
}

// LastLength returns the drag length seen by the previous Update.
func (c *Controller) LastLength() (float32, bool) {
	return c.lastLength, c.hasLast
}
