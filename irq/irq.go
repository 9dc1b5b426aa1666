// Package irq dispatches pin-change interrupts to attached handlers.
//
// The dispatch table is process-wide state with an explicit lifecycle:
// empty at startup, mutated only through Attach and Detach, read by a
// firing trampoline. Slot access is atomic, so dispatch never tears
// against a concurrent attach or detach.
//
// The attachment provider accepts only a bare function, because
// hardware vector mechanisms carry no context argument. The package
// therefore keeps one trampoline per pin, each closing over nothing but
// its own pin number, and hands the provider that.
package irq

import (
	"fmt"
	"iter"
	"maps"
	"sync/atomic"
)

const (
	PIN_MAX = 24 // Monitored pin slots
)

// PinMode selects the pin state or transition that fires an interrupt.
type PinMode int

//go:generate go tool stringer -type=PinMode
const (
	PINMODE_LOW     = PinMode(0) // Level low
	PINMODE_CHANGE  = PinMode(1) // Any transition
	PINMODE_RISING  = PinMode(2) // Low to high transition
	PINMODE_FALLING = PinMode(3) // High to low transition
	PINMODE_HIGH    = PinMode(4) // Level high
)

// Handler receives dispatch for an attached pin. Isr runs in interrupt
// context: keep it short and hand real work to a task, typically with a
// zero-timeout queue send.
type Handler interface {
	Isr(pin uint32)
}

// Attacher is the external interrupt-attachment provider. There is no
// provider-level detach; clearing the dispatch slot is how a pin goes
// quiet, and re-arming remains the provider's business.
type Attacher interface {
	AttachInterrupt(pin uint32, trampoline func(), mode PinMode)
}

var _slot [PIN_MAX]atomic.Pointer[Handler]

var _trampoline [PIN_MAX]func()

// _attacher is wired once during board bring-up, before the first
// Attach. Attach works without one; the slot table still dispatches
// through TestIsr or a provider armed later.
var _attacher Attacher

func init() {
	for pin := range uint32(PIN_MAX) {
		_trampoline[pin] = func() {
			if h := _slot[pin].Load(); h != nil {
				(*h).Isr(pin)
			}
		}
	}
}

// SetAttacher wires the interrupt-attachment provider.
func SetAttacher(a Attacher) {
	_attacher = a
}

// Attach claims the pin's dispatch slot for h and arms the provider
// with the pin's trampoline. Returns false, mutating nothing, when the
// pin is out of range, h is nil, or the slot is already claimed.
func Attach(pin uint32, h Handler, mode PinMode) bool {
	if pin >= PIN_MAX || h == nil {
		return false
	}

	if !_slot[pin].CompareAndSwap(nil, &h) {
		return false
	}

	if _attacher != nil {
		_attacher.AttachInterrupt(pin, _trampoline[pin], mode)
	}

	return true
}

// Detach clears the pin's dispatch slot. Returns false when the pin is
// out of range or nothing was attached.
func Detach(pin uint32) bool {
	if pin >= PIN_MAX {
		return false
	}

	return _slot[pin].Swap(nil) != nil
}

// IsAttached reports whether the pin's dispatch slot is claimed.
func IsAttached(pin uint32) bool {
	return pin < PIN_MAX && _slot[pin].Load() != nil
}

// TestIsr fires the pin's trampoline from the caller's context. Debug
// aid for exercising handlers without hardware.
func TestIsr(pin uint32) {
	if pin < PIN_MAX {
		_trampoline[pin]()
	}
}

var _irq_defines = map[string]string{
	"PIN_MAX":         fmt.Sprintf("%d", PIN_MAX),
	"PINMODE_LOW":     fmt.Sprintf("%d", int(PINMODE_LOW)),
	"PINMODE_CHANGE":  fmt.Sprintf("%d", int(PINMODE_CHANGE)),
	"PINMODE_RISING":  fmt.Sprintf("%d", int(PINMODE_RISING)),
	"PINMODE_FALLING": fmt.Sprintf("%d", int(PINMODE_FALLING)),
	"PINMODE_HIGH":    fmt.Sprintf("%d", int(PINMODE_HIGH)),
}

// Defines returns the package constant surface for script environments.
func Defines() iter.Seq2[string, string] {
	return maps.All(_irq_defines)
}
