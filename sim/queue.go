package sim

import (
	"sync"
	"time"

	"github.com/ezrec/ucrtos/rtos"
)

// simQueue is a bounded FIFO with scheduler queue behavior: timed
// sends and receives, a non-consuming peek, and element hand-off by
// value. Storage is a circular buffer; waiters park on a broadcast
// channel that is closed and replaced whenever their condition may
// have changed.
type simQueue struct {
	period time.Duration // One tick, for wait conversion.

	mu       sync.Mutex
	data     []any
	readIdx  int
	writeIdx int
	size     int
	elemSize uint
	dead     bool
	notEmpty chan struct{}
	notFull  chan struct{}
}

func newSimQueue(length uint, elemSize uint, period time.Duration) *simQueue {
	return &simQueue{
		period:   period,
		data:     make([]any, length),
		elemSize: elemSize,
		notEmpty: make(chan struct{}),
		notFull:  make(chan struct{}),
	}
}

// deadline converts a tick wait to a timeout channel. Zero and
// MAX_DELAY waits have no deadline; callers handle zero by not
// parking at all.
func (q *simQueue) deadline(wait rtos.Ticks) <-chan time.Time {
	if wait == 0 || wait == rtos.MAX_DELAY {
		return nil
	}

	return time.After(time.Duration(wait) * q.period)
}

func (q *simQueue) send(v any, wait rtos.Ticks) bool {
	timeout := q.deadline(wait)

	for {
		q.mu.Lock()
		if q.dead {
			q.mu.Unlock()
			return false
		}
		if q.size < len(q.data) {
			q.data[q.writeIdx] = v
			q.writeIdx++
			if q.writeIdx == len(q.data) {
				q.writeIdx = 0
			}
			q.size++
			close(q.notEmpty)
			q.notEmpty = make(chan struct{})
			q.mu.Unlock()
			return true
		}
		ready := q.notFull
		q.mu.Unlock()

		if wait == 0 {
			return false
		}

		select {
		case <-ready:
		case <-timeout:
			return false
		}
	}
}

func (q *simQueue) receive(wait rtos.Ticks) (v any, ok bool) {
	timeout := q.deadline(wait)

	for {
		q.mu.Lock()
		if q.dead {
			q.mu.Unlock()
			return nil, false
		}
		if q.size > 0 {
			v = q.data[q.readIdx]
			q.data[q.readIdx] = nil
			q.readIdx++
			if q.readIdx == len(q.data) {
				q.readIdx = 0
			}
			q.size--
			close(q.notFull)
			q.notFull = make(chan struct{})
			q.mu.Unlock()
			return v, true
		}
		ready := q.notEmpty
		q.mu.Unlock()

		if wait == 0 {
			return nil, false
		}

		select {
		case <-ready:
		case <-timeout:
			return nil, false
		}
	}
}

func (q *simQueue) peek(wait rtos.Ticks) (v any, ok bool) {
	timeout := q.deadline(wait)

	for {
		q.mu.Lock()
		if q.dead {
			q.mu.Unlock()
			return nil, false
		}
		if q.size > 0 {
			v = q.data[q.readIdx]
			q.mu.Unlock()
			return v, true
		}
		ready := q.notEmpty
		q.mu.Unlock()

		if wait == 0 {
			return nil, false
		}

		select {
		case <-ready:
		case <-timeout:
			return nil, false
		}
	}
}

func (q *simQueue) spaces() uint {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.dead {
		return 0
	}

	return uint(len(q.data) - q.size)
}

// destroy marks the queue dead and wakes every waiter. The wait
// channels stay closed; operations check dead before touching them.
func (q *simQueue) destroy() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.dead {
		return
	}

	q.dead = true
	close(q.notEmpty)
	close(q.notFull)
}
