// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rtos

import (
	"fmt"
	"iter"
	"maps"
)

// Ticks is the scheduler's unit of time for delays and timeouts.
type Ticks uint32

// Priority orders tasks for the scheduler. Higher runs first.
type Priority uint

const (
	// MAX_DELAY waits without bound on a blocking operation.
	MAX_DELAY = Ticks(0xffffffff)

	// PRIORITY_IDLE is the scheduler's lowest priority.
	PRIORITY_IDLE = Priority(0)

	// STACK_MINIMAL is the baseline stack request, in provider units.
	STACK_MINIMAL = uint32(128)
)

// TaskHandle identifies a scheduler task. A nil handle is invalid.
type TaskHandle any

// QueueHandle identifies a scheduler queue. A nil handle is invalid.
type QueueHandle any

// Scheduler is the external tasking provider the wrapper types bind to.
type Scheduler interface {
	// CreateTask registers entry as a new task. Returns nil when task
	// slots or memory are exhausted.
	CreateTask(name string, priority Priority, stackSize uint32, entry func()) TaskHandle

	// TaskSuspend takes a task out of scheduling until resumed.
	TaskSuspend(h TaskHandle)

	// TaskResume undoes TaskSuspend.
	TaskResume(h TaskHandle)

	// TaskDelay holds the given task for at least ticks. Called by the
	// task itself as its cooperative yield.
	TaskDelay(h TaskHandle, ticks Ticks)

	// CreateQueue allocates a FIFO of length elements, elemSize bytes
	// each. Returns nil when queue slots or memory are exhausted.
	CreateQueue(length uint, elemSize uint) QueueHandle

	// QueueSend enqueues a copy of elem, waiting up to wait ticks for
	// space. Zero tries once; MAX_DELAY waits without bound.
	QueueSend(h QueueHandle, elem any, wait Ticks) bool

	// QueueReceive dequeues the oldest element, waiting up to wait.
	QueueReceive(h QueueHandle, wait Ticks) (elem any, ok bool)

	// QueuePeek reads the oldest element without removing it, waiting
	// up to wait.
	QueuePeek(h QueueHandle, wait Ticks) (elem any, ok bool)

	// QueueSpaces returns the free element count.
	QueueSpaces(h QueueHandle) uint

	// QueueDestroy unregisters the queue. The handle is dead after.
	QueueDestroy(h QueueHandle)
}

var _rtos_defines = map[string]string{
	"MAX_DELAY":     fmt.Sprintf("%d", uint32(MAX_DELAY)),
	"PRIORITY_IDLE": fmt.Sprintf("%d", uint(PRIORITY_IDLE)),
	"STACK_MINIMAL": fmt.Sprintf("%d", STACK_MINIMAL),
}

// Defines returns the package constant surface for script environments.
func Defines() iter.Seq2[string, string] {
	return maps.All(_rtos_defines)
}
