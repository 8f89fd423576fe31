// Package pi estimates π by Monte Carlo sampling: draw points uniformly
// from the square [-1,1) x [-1,1), count the fraction that lands inside
// the unit circle, and scale by 4.
//
// The same workload runs in three shapes so their wall times can be
// compared. Monitor pipes every point through one shared
// queue.BlockingQueue from producers to consumers. Sequential iterates
// on a single goroutine. Parallel fans out to independent workers with
// no shared state. All three process the same number of points for a
// given Config.
package pi

import (
	"math"
	"runtime"
	"time"

	"github.com/andrewwang247/blocking-queue/internal/progress"
)

const (
	defaultPointsPerWorker = 1 << 16
	defaultWorkPerPoint    = 50 * time.Nanosecond
)

// Config controls an estimation run. The zero value is usable: Workers
// and PointsPerWorker fall back to defaults, and WorkPerPoint of zero
// adds no simulated work.
type Config struct {
	// Workers is the number of producers and the number of consumers in
	// Monitor mode. Parallel runs 2*Workers independent workers so that
	// every mode uses the same number of goroutines. Defaults to half
	// the machine's logical CPUs, minimum 1.
	Workers int

	// PointsPerWorker is the number of points each producer pushes and
	// each consumer pops in Monitor mode. Defaults to 65536. The grand
	// total for every mode is Workers*PointsPerWorker.
	PointsPerWorker int

	// WorkPerPoint is simulated work added per point. Producers pay it
	// before generating and consumers before classifying, so Monitor
	// pays it on both sides of the queue; Sequential and Parallel pay
	// it once per point. Zero adds none.
	WorkPerPoint time.Duration

	// Track, when non-nil, receives produced and consumed counts as the
	// run progresses.
	Track *progress.Tracker
}

// DefaultConfig returns the canonical experiment shape: half the CPUs
// as workers, 65536 points per worker, 50ns of simulated work per
// point.
func DefaultConfig() Config {
	return Config{
		Workers:         defaultWorkers(),
		PointsPerWorker: defaultPointsPerWorker,
		WorkPerPoint:    defaultWorkPerPoint,
	}
}

func defaultWorkers() int {
	if n := runtime.NumCPU() / 2; n > 1 {
		return n
	}
	return 1
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = defaultWorkers()
	}
	if c.PointsPerWorker <= 0 {
		c.PointsPerWorker = defaultPointsPerWorker
	}
	return c
}

// TotalPoints returns the number of points a run of this Config
// processes, identical across all three modes.
func (c Config) TotalPoints() uint64 {
	c = c.withDefaults()
	return uint64(c.Workers) * uint64(c.PointsPerWorker)
}

// Result is the outcome of one estimation run.
type Result struct {
	InCircle uint64        // points that landed inside the unit circle
	Total    uint64        // points processed
	Elapsed  time.Duration // wall time from first spawn to last join
}

// Estimate returns the π estimate 4*InCircle/Total.
func (r Result) Estimate() float64 {
	return 4 * float64(r.InCircle) / float64(r.Total)
}

// ErrorPercent returns the relative error of Estimate against math.Pi,
// in percent.
func (r Result) ErrorPercent() float64 {
	return 100 * math.Abs(r.Estimate()-math.Pi) / math.Pi
}
