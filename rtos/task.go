package rtos

import (
	"sync/atomic"
)

// Runner is the task body. Most implementations loop forever.
type Runner interface {
	Run()
}

// Tasker is the public face of every concrete task type: Join creates
// the task's scheduler resources and starts it, reporting overall
// success. Check the type's handle validity after a false Join.
type Tasker interface {
	Join(priority Priority, stackSize uint32) bool
}

// Task wraps one scheduler task. The zero value is an unstarted task;
// concrete task types embed it and call Start from their Join.
//
// The task does not own the scheduler handle and never destroys it. A
// run body that returns simply leaves the running flag false; there is
// no supervision or restart.
type Task struct {
	sched   Scheduler
	handle  atomic.Value
	running atomic.Bool
}

// Start asks the scheduler to create a task bound to r's Run method.
// Creation success is polled through ValidHandle; the running flag
// stays false until the scheduler actually enters the body.
func (t *Task) Start(s Scheduler, name string, priority Priority, stackSize uint32, r Runner) {
	if s == nil || r == nil {
		return
	}

	t.sched = s

	handle := s.CreateTask(name, priority, stackSize, func() {
		t.running.Store(true)
		r.Run()
		t.running.Store(false)
	})
	if handle != nil {
		t.handle.Store(handle)
	}
}

// Handle returns the scheduler task handle, nil until Start succeeds.
func (t *Task) Handle() TaskHandle {
	return t.handle.Load()
}

// ValidHandle reports whether task creation produced a usable handle.
func (t *Task) ValidHandle() bool {
	return t.Handle() != nil
}

// Running reports whether the scheduler has entered the task body and
// the body has not returned.
func (t *Task) Running() bool {
	return t.running.Load()
}

// Suspend takes a task out of scheduling. A nil handle means this task.
func (t *Task) Suspend(h TaskHandle) {
	if h == nil {
		h = t.Handle()
	}

	if t.sched != nil && h != nil {
		t.sched.TaskSuspend(h)
	}
}

// Resume returns a suspended task to scheduling. A nil handle means
// this task.
func (t *Task) Resume(h TaskHandle) {
	if h == nil {
		h = t.Handle()
	}

	if t.sched != nil && h != nil {
		t.sched.TaskResume(h)
	}
}

// Sleep holds this task for at least the given ticks. The task's
// cooperative yield; suspension takes effect here.
func (t *Task) Sleep(ticks Ticks) {
	if t.sched != nil {
		t.sched.TaskDelay(t.Handle(), ticks)
	}
}
