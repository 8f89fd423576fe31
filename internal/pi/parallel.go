package pi

import (
	"sync"
	"time"

	"github.com/andrewwang247/blocking-queue/internal/spin"
)

// Parallel fans the workload out to 2*cfg.Workers independent workers
// with no shared queue and no shared counter: each worker tallies hits
// into its own slot and the slots are summed after the join. The total
// is split as evenly as possible so it always equals the other modes'.
func Parallel(cfg Config) Result {
	cfg = cfg.withDefaults()
	track := cfg.Track

	workers := 2 * cfg.Workers
	total := cfg.TotalPoints()
	counts := make([]uint64, workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	start := time.Now()
	for w := 0; w < workers; w++ {
		go func(worker int) {
			defer wg.Done()
			rng := newRand(worker)
			share := pointsFor(total, workers, worker)
			for i := uint64(0); i < share; i++ {
				spin.Wait(cfg.WorkPerPoint)
				if randomPoint(rng).InUnitCircle() {
					counts[worker]++
				}
				if track != nil {
					track.AddProduced(1)
					track.AddConsumed(1)
				}
			}
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	var inCircle uint64
	for _, c := range counts {
		inCircle += c
	}

	return Result{
		InCircle: inCircle,
		Total:    total,
		Elapsed:  elapsed,
	}
}

// pointsFor splits total across workers as evenly as possible, handing
// the remainder to the lowest-numbered workers one point each.
func pointsFor(total uint64, workers, worker int) uint64 {
	share := total / uint64(workers)
	if uint64(worker) < total%uint64(workers) {
		share++
	}
	return share
}
