// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rtos

// fakeScheduler is a deterministic Scheduler for exercising the wrapper
// contracts: task entries run synchronously inside CreateTask, queues
// are plain slices that ignore timeouts, and control calls are
// recorded. Task handles are the creation indexes.
type fakeScheduler struct {
	tasks     []string
	failTasks bool

	suspended []TaskHandle
	resumed   []TaskHandle
	delays    []Ticks

	queues     []*fakeQueue
	failQueues bool
}

type fakeQueue struct {
	capacity uint
	elemSize uint
	items    []any
	dead     bool
}

var _ Scheduler = (*fakeScheduler)(nil)

func (fs *fakeScheduler) CreateTask(name string, priority Priority, stackSize uint32, entry func()) TaskHandle {
	if fs.failTasks {
		return nil
	}

	handle := len(fs.tasks)
	fs.tasks = append(fs.tasks, name)
	entry()

	return handle
}

func (fs *fakeScheduler) TaskSuspend(h TaskHandle) {
	fs.suspended = append(fs.suspended, h)
}

func (fs *fakeScheduler) TaskResume(h TaskHandle) {
	fs.resumed = append(fs.resumed, h)
}

func (fs *fakeScheduler) TaskDelay(h TaskHandle, ticks Ticks) {
	fs.delays = append(fs.delays, ticks)
}

func (fs *fakeScheduler) CreateQueue(length uint, elemSize uint) QueueHandle {
	if fs.failQueues {
		return nil
	}

	fq := &fakeQueue{capacity: length, elemSize: elemSize}
	fs.queues = append(fs.queues, fq)

	return fq
}

func (fs *fakeScheduler) QueueSend(h QueueHandle, elem any, wait Ticks) bool {
	fq := h.(*fakeQueue)
	if fq.dead || uint(len(fq.items)) >= fq.capacity {
		return false
	}

	fq.items = append(fq.items, elem)

	return true
}

func (fs *fakeScheduler) QueueReceive(h QueueHandle, wait Ticks) (elem any, ok bool) {
	fq := h.(*fakeQueue)
	if fq.dead || len(fq.items) == 0 {
		return
	}

	elem = fq.items[0]
	fq.items = fq.items[1:]
	ok = true

	return
}

func (fs *fakeScheduler) QueuePeek(h QueueHandle, wait Ticks) (elem any, ok bool) {
	fq := h.(*fakeQueue)
	if fq.dead || len(fq.items) == 0 {
		return
	}

	return fq.items[0], true
}

func (fs *fakeScheduler) QueueSpaces(h QueueHandle) uint {
	fq := h.(*fakeQueue)
	if fq.dead {
		return 0
	}

	return fq.capacity - uint(len(fq.items))
}

func (fs *fakeScheduler) QueueDestroy(h QueueHandle) {
	h.(*fakeQueue).dead = true
}
