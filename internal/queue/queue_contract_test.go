package queue_test

import (
	"sync"
	"testing"

	"github.com/andrewwang247/blocking-queue/internal/queue"
)

// drain runs consumers goroutines popping share elements each and
// returns every consumer's stream in arrival order.
func drain(q *queue.BlockingQueue[int], consumers, share int) [][]int {
	streams := make([][]int, consumers)
	var wg sync.WaitGroup
	for c := 0; c < consumers; c++ {
		wg.Add(1)
		go func(c int) {
			defer wg.Done()
			vals := make([]int, 0, share)
			for i := 0; i < share; i++ {
				vals = append(vals, q.Pop())
			}
			streams[c] = vals
		}(c)
	}
	wg.Wait()
	return streams
}

// TestBlocking_NoLossNoDup pushes distinct values from several
// producers and drains them with several consumers. The multiset of
// values popped must equal the multiset pushed: every value exactly
// once, none lost, none duplicated.
func TestBlocking_NoLossNoDup(t *testing.T) {
	const (
		producers   = 8
		perProducer = 1000
		consumers   = 4
		total       = producers * perProducer // divisible by consumers
	)

	q := queue.NewBlocking[int]()

	var producerWG sync.WaitGroup
	for p := 0; p < producers; p++ {
		producerWG.Add(1)
		go func(p int) {
			defer producerWG.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(p*perProducer + i)
			}
		}(p)
	}

	streams := drain(q, consumers, total/consumers)
	producerWG.Wait()

	if !q.Empty() {
		t.Errorf("expected drained queue, Len() = %d", q.Len())
	}

	seen := make(map[int]int, total)
	n := 0
	for _, vals := range streams {
		n += len(vals)
		for _, v := range vals {
			seen[v]++
		}
	}
	if n != total {
		t.Fatalf("expected %d values across consumers, got %d", total, n)
	}
	if len(seen) != total {
		t.Errorf("expected %d distinct values, got %d", total, len(seen))
	}
	for v, count := range seen {
		if count != 1 {
			t.Errorf("value %d popped %d times", v, count)
		}
	}
}

// TestBlocking_PerProducerOrder checks the FIFO guarantee from each
// producer's point of view: within any single consumer's stream, the
// values of one producer must appear in the order that producer pushed
// them. All producers funnel through the same lock, so a violation here
// means the buffer reordered elements.
func TestBlocking_PerProducerOrder(t *testing.T) {
	const (
		producers   = 4
		perProducer = 2500
		consumers   = 2
		total       = producers * perProducer
	)

	q := queue.NewBlocking[int]()

	var producerWG sync.WaitGroup
	for p := 0; p < producers; p++ {
		producerWG.Add(1)
		go func(p int) {
			defer producerWG.Done()
			// Values increase within each producer.
			for i := 0; i < perProducer; i++ {
				q.Push(p*perProducer + i)
			}
		}(p)
	}

	streams := drain(q, consumers, total/consumers)
	producerWG.Wait()

	for c, vals := range streams {
		last := make([]int, producers)
		for p := range last {
			last[p] = -1
		}
		for _, v := range vals {
			p := v / perProducer
			if v <= last[p] {
				t.Fatalf("consumer %d: producer %d order violated: %d after %d",
					c, p, v, last[p])
			}
			last[p] = v
		}
	}
}

// TestBlocking_SingleProducerSingleConsumer streams values through the
// queue with one goroutine on each side and checks strict global order.
func TestBlocking_SingleProducerSingleConsumer(t *testing.T) {
	q := queue.NewBlocking[int]()
	const count = 10000
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < count; i++ {
			q.Push(i)
		}
	}()

	for i := 0; i < count; i++ {
		if got := q.Pop(); got != i {
			t.Fatalf("FIFO violation: expected %d, got %d", i, got)
		}
	}

	<-done

	if !q.Empty() {
		t.Errorf("expected drained queue, Len() = %d", q.Len())
	}
}
