package pi

import (
	"math/rand/v2"
	"time"
)

// Point is one sample from the square [-1,1) x [-1,1).
type Point struct {
	X, Y float64
}

// InUnitCircle reports whether the point lies strictly inside the unit
// circle.
func (p Point) InUnitCircle() bool {
	return p.X*p.X+p.Y*p.Y < 1
}

// newRand returns the generator for one worker. Seeding mixes the wall
// clock with the worker index so concurrent workers never share a
// stream even when they start on the same clock reading.
func newRand(worker int) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(worker)))
}

// randomPoint draws coordinates uniformly from [-1, 1).
func randomPoint(rng *rand.Rand) Point {
	return Point{
		X: 2*rng.Float64() - 1,
		Y: 2*rng.Float64() - 1,
	}
}
