package planar

import (
	"math"
	"math/rand/v2"
)

// MinAnchorSpacing is the smallest distance Populate keeps between anchors.
const MinAnchorSpacing float32 = 50.0

// anchorDensity is the canvas area, in square units, per candidate anchor.
const anchorDensity = 1000.0

// Populate returns random anchor positions for a width x height canvas
// centred on the origin. It draws round(width*height/1000) candidates and
// keeps each one only if it is at least MinAnchorSpacing away from every
// candidate kept before it.
func Populate(width, height float32, r *rand.Rand) []Point {
	return PopulateSpaced(width, height, MinAnchorSpacing, r)
}

// PopulateSpaced is Populate with a caller-chosen minimum spacing.
func PopulateSpaced(width, height, spacing float32, r *rand.Rand) []Point {
	if width <= 0 || height <= 0 {
		return nil
	}
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	count := int(math.Round(float64(width) * float64(height) / anchorDensity))
	left, bottom := -width/2, -height/2

	points := make([]Point, 0, count)
	for range count {
		p := Pt(left+r.Float32()*width, bottom+r.Float32()*height)
		if farFromAll(p, points, spacing) {
			points = append(points, p)
		}
	}

	Logger().Debug("planar: populated anchors", "candidates", count, "kept", len(points))
	return points
}

func farFromAll(p Point, points []Point, spacing float32) bool {
	for _, q := range points {
		if p.Distance(q) < spacing {
			return false
		}
	}
	return true
}
