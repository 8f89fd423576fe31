package pi

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/andrewwang247/blocking-queue/internal/queue"
	"github.com/andrewwang247/blocking-queue/internal/spin"
)

// Monitor runs the producer/consumer experiment over a single shared
// blocking queue. cfg.Workers producers each push cfg.PointsPerWorker
// points; the same number of consumers each pop that many and tally
// hits into one shared atomic counter. The push and pop totals match
// exactly, so every consumer drains and the run always joins.
func Monitor(cfg Config) Result {
	cfg = cfg.withDefaults()
	track := cfg.Track

	points := queue.NewBlocking[Point]()
	var inCircle atomic.Uint64

	var wg sync.WaitGroup
	wg.Add(2 * cfg.Workers)

	start := time.Now()
	for w := 0; w < cfg.Workers; w++ {
		go func(worker int) {
			defer wg.Done()
			rng := newRand(worker)
			for i := 0; i < cfg.PointsPerWorker; i++ {
				spin.Wait(cfg.WorkPerPoint)
				points.Push(randomPoint(rng))
				if track != nil {
					track.AddProduced(1)
				}
			}
		}(w)

		go func() {
			defer wg.Done()
			for i := 0; i < cfg.PointsPerWorker; i++ {
				spin.Wait(cfg.WorkPerPoint)
				if points.Pop().InUnitCircle() {
					inCircle.Add(1)
				}
				if track != nil {
					track.AddConsumed(1)
				}
			}
		}()
	}
	wg.Wait()

	return Result{
		InCircle: inCircle.Load(),
		Total:    cfg.TotalPoints(),
		Elapsed:  time.Since(start),
	}
}
