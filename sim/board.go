// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package sim provides a software board: a tasking provider backed by
// goroutines, interrupt pins driven from the outside, and buffered
// serial ports. It stands in for real scheduler and board support so
// the wrapper types can run, and be scripted, on a development host.
package sim

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"sync"
	"time"

	"github.com/ezrec/ucrtos/internal"
	"github.com/ezrec/ucrtos/irq"
	"github.com/ezrec/ucrtos/rtos"
	"github.com/ezrec/ucrtos/text"
)

const (
	TASK_MAX      = 32 // Task slots per board.
	QUEUE_MAX     = 32 // Queue slots per board. Slots are not recycled.
	SERIAL_PORTS  = 2  // Serial endpoints per board.
	SERIAL_BUFFER = 256

	TICK_PERIOD_DEFAULT = time.Millisecond
)

var _sim_defines = map[string]string{
	"TASK_MAX":      fmt.Sprintf("%d", TASK_MAX),
	"QUEUE_MAX":     fmt.Sprintf("%d", QUEUE_MAX),
	"SERIAL_PORTS":  fmt.Sprintf("%d", SERIAL_PORTS),
	"SERIAL_BUFFER": fmt.Sprintf("%d", SERIAL_BUFFER),
}

// simTask tracks one board task. Suspension is cooperative: the flag
// is noted immediately, and the task parks at its next delay
// checkpoint until resumed.
type simTask struct {
	name     string
	priority rtos.Priority

	mu        sync.Mutex
	suspended bool
	resumed   chan struct{}
}

func (t *simTask) suspend() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.suspended = true
}

func (t *simTask) resume() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.suspended {
		t.suspended = false
		close(t.resumed)
		t.resumed = make(chan struct{})
	}
}

// checkpoint parks the calling goroutine while the task is suspended.
func (t *simTask) checkpoint() {
	for {
		t.mu.Lock()
		if !t.suspended {
			t.mu.Unlock()
			return
		}
		ready := t.resumed
		t.mu.Unlock()

		<-ready
	}
}

// pinState is one interrupt pin: its level, and the trampoline armed
// on it. The trampoline runs in whatever goroutine drives the pin.
type pinState struct {
	level bool
	armed bool
	mode  irq.PinMode
	fire  func()
}

// Board simulates the provider surface the wrapper types bind to:
// tasks become goroutines, queues become timed FIFOs, pins fire
// interrupt trampolines from SetPin, and serial ports buffer both
// directions. Configure Verbose and TickPeriod before starting tasks.
type Board struct {
	Verbose    bool          // If set, enables verbose logging.
	TickPeriod time.Duration // Wall-clock length of one tick.

	mu     sync.Mutex
	tasks  []*simTask
	queues []*simQueue
	pins   [irq.PIN_MAX]pinState
	ports  [SERIAL_PORTS]Port
}

var _ rtos.Scheduler = (*Board)(nil)
var _ irq.Attacher = (*Board)(nil)

// NewBoard returns a board with the default tick period.
func NewBoard() (b *Board) {
	b = &Board{
		TickPeriod: TICK_PERIOD_DEFAULT,
	}
	return b
}

// Defines returns the combined constant surface for scenario scripts.
func (b *Board) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_sim_defines),
		rtos.Defines(),
		irq.Defines(),
		text.Defines(),
	)
}

// Port returns serial endpoint n, nil when out of range.
func (b *Board) Port(n int) *Port {
	if n < 0 || n >= SERIAL_PORTS {
		return nil
	}

	return &b.ports[n]
}

func (b *Board) tick() time.Duration {
	if b.TickPeriod <= 0 {
		return TICK_PERIOD_DEFAULT
	}

	return b.TickPeriod
}

// CreateTask starts entry as a goroutine. Priority is recorded but
// does not order execution here.
func (b *Board) CreateTask(name string, priority rtos.Priority, stackSize uint32, entry func()) rtos.TaskHandle {
	if entry == nil {
		return nil
	}

	b.mu.Lock()
	if len(b.tasks) >= TASK_MAX {
		b.mu.Unlock()
		if b.Verbose {
			log.Printf("sim: task %q rejected, slots full", name)
		}
		return nil
	}
	t := &simTask{
		name:     name,
		priority: priority,
		resumed:  make(chan struct{}),
	}
	b.tasks = append(b.tasks, t)
	b.mu.Unlock()

	if b.Verbose {
		log.Printf("sim: task %q created, priority %d, stack %d", name, priority, stackSize)
	}

	go entry()

	return t
}

func (b *Board) TaskSuspend(h rtos.TaskHandle) {
	if t, ok := h.(*simTask); ok {
		t.suspend()
	}
}

func (b *Board) TaskResume(h rtos.TaskHandle) {
	if t, ok := h.(*simTask); ok {
		t.resume()
	}
}

// TaskDelay sleeps the calling goroutine for the tick span, then holds
// it while its task is suspended.
func (b *Board) TaskDelay(h rtos.TaskHandle, ticks rtos.Ticks) {
	time.Sleep(time.Duration(ticks) * b.tick())

	if t, ok := h.(*simTask); ok {
		t.checkpoint()
	}
}

func (b *Board) CreateQueue(length uint, elemSize uint) rtos.QueueHandle {
	if length == 0 {
		return nil
	}

	b.mu.Lock()
	if len(b.queues) >= QUEUE_MAX {
		b.mu.Unlock()
		if b.Verbose {
			log.Printf("sim: queue rejected, slots full")
		}
		return nil
	}
	q := newSimQueue(length, elemSize, b.tick())
	b.queues = append(b.queues, q)
	b.mu.Unlock()

	if b.Verbose {
		log.Printf("sim: queue created, %d x %d bytes", length, elemSize)
	}

	return q
}

func (b *Board) QueueSend(h rtos.QueueHandle, elem any, wait rtos.Ticks) bool {
	q, ok := h.(*simQueue)
	if !ok {
		return false
	}

	return q.send(elem, wait)
}

func (b *Board) QueueReceive(h rtos.QueueHandle, wait rtos.Ticks) (elem any, ok bool) {
	q, ok := h.(*simQueue)
	if !ok {
		return nil, false
	}

	return q.receive(wait)
}

func (b *Board) QueuePeek(h rtos.QueueHandle, wait rtos.Ticks) (elem any, ok bool) {
	q, ok := h.(*simQueue)
	if !ok {
		return nil, false
	}

	return q.peek(wait)
}

func (b *Board) QueueSpaces(h rtos.QueueHandle) uint {
	q, ok := h.(*simQueue)
	if !ok {
		return 0
	}

	return q.spaces()
}

func (b *Board) QueueDestroy(h rtos.QueueHandle) {
	if q, ok := h.(*simQueue); ok {
		q.destroy()
	}
}

// AttachInterrupt arms trampoline on a pin. Out of range pins are
// ignored.
func (b *Board) AttachInterrupt(pin uint32, trampoline func(), mode irq.PinMode) {
	if pin >= irq.PIN_MAX || trampoline == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.pins[pin] = pinState{
		level: b.pins[pin].level,
		armed: true,
		mode:  mode,
		fire:  trampoline,
	}
}

// SetPin drives a pin level from the outside. When the change matches
// an armed trigger mode, the trampoline fires in the caller's
// goroutine, which is the board's interrupt context: handlers must not
// block. LOW and HIGH fire on every drive that leaves the pin at that
// level; the edge modes fire on transitions.
func (b *Board) SetPin(pin uint32, level bool) error {
	if pin >= irq.PIN_MAX {
		return ErrPinRange
	}

	b.mu.Lock()
	ps := &b.pins[pin]
	was := ps.level
	ps.level = level
	armed, mode, fire := ps.armed, ps.mode, ps.fire
	b.mu.Unlock()

	if !armed || !triggered(mode, was, level) {
		return nil
	}

	if b.Verbose {
		log.Printf("sim: pin %d %v -> %v interrupt", pin, was, level)
	}

	fire()

	return nil
}

// Pin returns the current level of a pin. Out of range reads low.
func (b *Board) Pin(pin uint32) bool {
	if pin >= irq.PIN_MAX {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return b.pins[pin].level
}

func triggered(mode irq.PinMode, was bool, level bool) bool {
	switch mode {
	case irq.PINMODE_LOW:
		return !level
	case irq.PINMODE_HIGH:
		return level
	case irq.PINMODE_RISING:
		return !was && level
	case irq.PINMODE_FALLING:
		return was && !level
	case irq.PINMODE_CHANGE:
		return was != level
	}

	return false
}
