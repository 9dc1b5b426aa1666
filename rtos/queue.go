package rtos

import (
	"unsafe"
)

// Queue is a typed, fixed-capacity, blocking FIFO carried by the
// scheduler. Elements cross the scheduler boundary as value copies, so
// a received element never aliases the sender's.
//
// Create the queue before its consumers start; operations on an
// uncreated or destroyed queue fail with the usual false return rather
// than panicking.
type Queue[T any] struct {
	sched  Scheduler
	handle QueueHandle
	length uint
}

// NewQueue returns an uncreated queue of the given element capacity.
// Create allocates the scheduler resources.
func NewQueue[T any](s Scheduler, length uint) *Queue[T] {
	return &Queue[T]{sched: s, length: length}
}

// Create allocates the scheduler queue, sized for the element type.
// Reports success; poll ValidHandle later if needed.
func (q *Queue[T]) Create() bool {
	if q.sched == nil || q.ValidHandle() {
		return q.ValidHandle()
	}

	var zero T
	q.handle = q.sched.CreateQueue(q.length, uint(unsafe.Sizeof(zero)))

	return q.ValidHandle()
}

// Handle returns the scheduler queue handle, nil before Create.
func (q *Queue[T]) Handle() QueueHandle {
	return q.handle
}

// ValidHandle reports whether Create produced a usable handle.
func (q *Queue[T]) ValidHandle() bool {
	return q.handle != nil
}

// Capacity returns the element capacity requested at construction.
func (q *Queue[T]) Capacity() uint {
	return q.length
}

// SpacesAvailable returns the free element count, a racy snapshot.
func (q *Queue[T]) SpacesAvailable() uint {
	if !q.ValidHandle() {
		return 0
	}

	return q.sched.QueueSpaces(q.handle)
}

// Send copies v into the queue, waiting up to wait ticks for space.
// A false return is an ordinary timeout, not a fault.
func (q *Queue[T]) Send(v T, wait Ticks) bool {
	if !q.ValidHandle() {
		return false
	}

	return q.sched.QueueSend(q.handle, v, wait)
}

// Receive removes and returns the oldest element, waiting up to wait
// ticks for one to arrive.
func (q *Queue[T]) Receive(wait Ticks) (v T, ok bool) {
	if !q.ValidHandle() {
		return
	}

	elem, ok := q.sched.QueueReceive(q.handle, wait)
	if !ok {
		return
	}

	v, ok = elem.(T)

	return
}

// Peek returns the oldest element without removing it, waiting up to
// wait ticks for one to arrive.
func (q *Queue[T]) Peek(wait Ticks) (v T, ok bool) {
	if !q.ValidHandle() {
		return
	}

	elem, ok := q.sched.QueuePeek(q.handle, wait)
	if !ok {
		return
	}

	v, ok = elem.(T)

	return
}

// Destroy unregisters the queue from the scheduler. Idempotent; the
// queue fails all operations afterward.
func (q *Queue[T]) Destroy() {
	if q.ValidHandle() {
		q.sched.QueueDestroy(q.handle)
		q.handle = nil
	}
}
