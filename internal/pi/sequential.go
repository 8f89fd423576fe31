package pi

import (
	"time"

	"github.com/andrewwang247/blocking-queue/internal/spin"
)

// Sequential processes the whole workload on the calling goroutine: no
// queue, no handoff, one generator. It is the baseline the other modes
// are compared against.
func Sequential(cfg Config) Result {
	cfg = cfg.withDefaults()
	track := cfg.Track

	rng := newRand(0)
	total := cfg.TotalPoints()
	var inCircle uint64

	start := time.Now()
	for i := uint64(0); i < total; i++ {
		spin.Wait(cfg.WorkPerPoint)
		if randomPoint(rng).InUnitCircle() {
			inCircle++
		}
		if track != nil {
			track.AddProduced(1)
			track.AddConsumed(1)
		}
	}

	return Result{
		InCircle: inCircle,
		Total:    total,
		Elapsed:  time.Since(start),
	}
}
