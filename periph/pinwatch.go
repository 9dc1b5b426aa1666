package periph

import (
	"github.com/ezrec/ucrtos/irq"
	"github.com/ezrec/ucrtos/rtos"
)

const (
	PINWATCH_QUEUE = 8                      // Pending pin events per watcher
	STACK_PINWATCH = 2 * rtos.STACK_MINIMAL // Suggested Join stack size
)

// PinWatch moves pin interrupts into task context: its Isr posts the
// pin number to a queue with a zero-tick send, and its task drains the
// queue, recording the pin and notifying listeners. A full queue drops
// the event rather than stalling the interrupt.
type PinWatch struct {
	rtos.ObservedTask

	Pin uint32 // Pin behind the current notification; read it from Update.

	sched rtos.Scheduler
	pins  []uint32
	mode  irq.PinMode
	queue *rtos.Queue[uint32]
}

var _ irq.Handler = (*PinWatch)(nil)
var _ rtos.Tasker = (*PinWatch)(nil)

// NewPinWatch returns a watcher for the given pins and trigger mode.
func NewPinWatch(s rtos.Scheduler, mode irq.PinMode, pins ...uint32) (pw *PinWatch) {
	pw = &PinWatch{
		sched: s,
		pins:  pins,
		mode:  mode,
		queue: rtos.NewQueue[uint32](s, PINWATCH_QUEUE),
	}
	return pw
}

// Isr posts the pin to the drain task. Interrupt context; never waits.
func (pw *PinWatch) Isr(pin uint32) {
	pw.queue.Send(pin, 0)
}

// Join creates the event queue, claims the watched pins, and starts
// the drain task; repeat calls report the standing state. False when
// the queue, any pin, or the task failed to come up. The task is not
// started without its queue; pins claimed before a partial failure
// stay claimed. STACK_PINWATCH suits stackSize.
func (pw *PinWatch) Join(priority rtos.Priority, stackSize uint32) bool {
	claimed := true

	if !pw.ValidHandle() && pw.queue.Create() {
		for _, pin := range pw.pins {
			if !irq.Attach(pin, pw, pw.mode) {
				claimed = false
			}
		}

		pw.Start(pw.sched, "pinwatch", priority, stackSize, pw)
	}

	return claimed && pw.ValidHandle() && pw.queue.ValidHandle()
}

// Leave releases the watched pins. The drain task keeps running and
// handles any events already queued.
func (pw *PinWatch) Leave() {
	for _, pin := range pw.pins {
		irq.Detach(pin)
	}
}

// Run drains pin events, notifying listeners for each one. The task
// ends if the queue dies.
func (pw *PinWatch) Run() {
	for {
		pin, ok := pw.queue.Receive(rtos.MAX_DELAY)
		if !ok {
			return
		}

		pw.Pin = pin
		pw.Notify()
	}
}
