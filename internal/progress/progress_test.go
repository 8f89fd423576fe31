package progress_test

import (
	"bytes"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/andrewwang247/blocking-queue/internal/progress"
)

func TestTracker_Counts(t *testing.T) {
	var track progress.Tracker

	require.Equal(t, uint64(0), track.Produced())
	require.Equal(t, uint64(0), track.Consumed())

	track.AddProduced(3)
	track.AddProduced(4)
	track.AddConsumed(5)

	require.Equal(t, uint64(7), track.Produced())
	require.Equal(t, uint64(5), track.Consumed())
}

func TestTracker_ConcurrentAdds(t *testing.T) {
	const (
		workers = 8
		each    = 1000
	)

	var track progress.Tracker
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				track.AddProduced(1)
				track.AddConsumed(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, uint64(workers*each), track.Produced())
	require.Equal(t, uint64(workers*each), track.Consumed())
}

func TestTracker_Backlog(t *testing.T) {
	var track progress.Tracker

	require.Equal(t, uint64(0), track.Backlog())

	track.AddProduced(10)
	require.Equal(t, uint64(10), track.Backlog())

	track.AddConsumed(4)
	require.Equal(t, uint64(6), track.Backlog())

	// Consumed observed ahead of produced clamps to zero rather than
	// wrapping around.
	track.AddConsumed(100)
	require.Equal(t, uint64(0), track.Backlog())
}

func TestReporter_WritesAndStops(t *testing.T) {
	var track progress.Tracker
	track.AddProduced(10)
	track.AddConsumed(5)

	var mu sync.Mutex
	var buf bytes.Buffer
	w := writerFunc(func(p []byte) (int, error) {
		mu.Lock()
		defer mu.Unlock()
		return buf.Write(p)
	})

	r := progress.StartReporter(w, 10*time.Millisecond, &track)
	time.Sleep(50 * time.Millisecond)
	r.Stop()

	mu.Lock()
	out := buf.String()
	n := buf.Len()
	mu.Unlock()

	require.Contains(t, out, "produced 10")
	require.Contains(t, out, "consumed 5")
	require.Contains(t, out, "backlog 5")

	// No further writes may land after Stop has returned.
	time.Sleep(30 * time.Millisecond)
	mu.Lock()
	after := buf.Len()
	mu.Unlock()
	require.Equal(t, n, after)
}

func TestReporter_StopIdempotent(t *testing.T) {
	var track progress.Tracker

	r := progress.StartReporter(io.Discard, time.Millisecond, &track)
	r.Stop()
	r.Stop()
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }
