// Package spin provides a busy-wait pacer for attaching a fixed amount
// of simulated work to every item in a benchmark loop.
//
// time.Sleep cannot pace intervals in the tens of nanoseconds: parking
// the goroutine and waking it through the runtime timer heap costs
// microseconds by itself. Wait therefore spins on the runtime's
// monotonic clock for short intervals and only delegates to time.Sleep
// when the interval is long enough that parking is the cheaper choice.
package spin

import (
	"time"
	_ "unsafe" // Required for go:linkname
)

// nanotime returns the current monotonic time in nanoseconds.
// This is faster than time.Now() because it returns a single int64
// and avoids constructing a time.Time struct.
//
// Note: This uses go:linkname to access an internal runtime function.
// It may break in future Go versions, though it has been stable.
//
//go:linkname nanotime runtime.nanotime
func nanotime() int64

// sleepFloor is the interval at which Wait stops spinning and defers to
// time.Sleep: above it, burning a core costs more than the wakeup
// imprecision is worth.
const sleepFloor = time.Millisecond

// Wait blocks the caller for approximately d. Non-positive d returns
// immediately.
//
// Intervals below sleepFloor busy-spin without yielding, so each worker
// occupies its CPU for the full duration, exactly like real per-item
// work would.
func Wait(d time.Duration) {
	if d <= 0 {
		return
	}
	if d >= sleepFloor {
		time.Sleep(d)
		return
	}
	deadline := nanotime() + int64(d)
	for nanotime() < deadline {
	}
}
