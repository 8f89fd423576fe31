// Package progress provides lightweight progress tracking for long
// benchmark runs.
//
// Tracker counts produced and consumed items with single atomic adds,
// so instrumented worker hot loops stay cheap. Reporter prints a
// snapshot line per interval from its own goroutine, keeping all I/O
// off the workers.
package progress

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"
)

// Tracker accumulates produced and consumed counts across any number of
// workers. The zero value is ready to use.
type Tracker struct {
	produced atomic.Uint64
	consumed atomic.Uint64
}

// AddProduced records n produced items.
func (t *Tracker) AddProduced(n uint64) {
	t.produced.Add(n)
}

// AddConsumed records n consumed items.
func (t *Tracker) AddConsumed(n uint64) {
	t.consumed.Add(n)
}

// Produced returns the produced count so far.
func (t *Tracker) Produced() uint64 {
	return t.produced.Load()
}

// Consumed returns the consumed count so far.
func (t *Tracker) Consumed() uint64 {
	return t.consumed.Load()
}

// Backlog returns produced minus consumed: the number of items sitting
// between the two sides of the pipeline. The counters are read one
// after the other, so the result is a snapshot and clamps at zero when
// consumption is observed ahead of production.
func (t *Tracker) Backlog() uint64 {
	p, c := t.produced.Load(), t.consumed.Load()
	if c >= p {
		return 0
	}
	return p - c
}

// Reporter prints Tracker snapshots at a fixed interval.
type Reporter struct {
	w     io.Writer
	every time.Duration
	track *Tracker

	stopped atomic.Bool
	quit    chan struct{}
	done    chan struct{}
}

// StartReporter launches a Reporter printing snapshots of track to w
// every interval, and returns it for the eventual Stop. track must be
// non-nil.
func StartReporter(w io.Writer, every time.Duration, track *Tracker) *Reporter {
	r := &Reporter{
		w:     w,
		every: every,
		track: track,
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go r.run()
	return r
}

// Stop halts the reporter and waits for its goroutine to exit, so no
// line is printed after Stop returns. Safe to call more than once.
func (r *Reporter) Stop() {
	if !r.stopped.Swap(true) {
		close(r.quit)
	}
	<-r.done
}

func (r *Reporter) run() {
	defer close(r.done)

	ticker := time.NewTicker(r.every)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-r.quit:
			return
		case <-ticker.C:
			r.report(time.Since(start))
		}
	}
}

func (r *Reporter) report(elapsed time.Duration) {
	fmt.Fprintf(r.w, "progress: %9v  produced %d  consumed %d  backlog %d\n",
		elapsed.Round(time.Millisecond),
		r.track.Produced(), r.track.Consumed(), r.track.Backlog())
}
