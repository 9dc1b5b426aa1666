package periph

import (
	"github.com/ezrec/ucrtos/rtos"
	"github.com/ezrec/ucrtos/text"
)

const (
	RX_DELAY_DEFAULT = rtos.Ticks(5)          // Ticks between receive polls
	STACK_UART_RX    = 3 * rtos.STACK_MINIMAL // Suggested Join stack size
)

// UARTRX reads complete text lines from a serial port in its own task,
// notifying listeners after each one.
type UARTRX struct {
	rtos.ObservedTask

	Line text.Line // Most recent complete line; read it from Update.

	sched   rtos.Scheduler
	port    Serial
	rxDelay rtos.Ticks
}

var _ text.Texter = (*UARTRX)(nil)
var _ rtos.Tasker = (*UARTRX)(nil)

// NewUARTRX returns a receiver for port. rxDelay paces the poll loop;
// zero polls without yielding.
func NewUARTRX(s rtos.Scheduler, port Serial, rxDelay rtos.Ticks) (rx *UARTRX) {
	rx = &UARTRX{
		sched:   s,
		port:    port,
		rxDelay: rxDelay,
	}
	return rx
}

// CharacterRead polls the port for one byte.
func (rx *UARTRX) CharacterRead() (c byte, ok bool) {
	if rx.port.Available() > 0 {
		c, ok = rx.port.ReadByte()
	}
	return c, ok
}

// CharacterWrite completes the Texter capability set; receive is
// simplex, so writes go nowhere.
func (rx *UARTRX) CharacterWrite(c byte) {
}

// CharacterReadDelay sleeps between polls so buffered input drains in
// bursts instead of starving other tasks.
func (rx *UARTRX) CharacterReadDelay() {
	if rx.rxDelay != 0 {
		rx.Sleep(rx.rxDelay)
	}
}

// Join starts the receive task once; repeat calls report the standing
// task. STACK_UART_RX suits stackSize.
func (rx *UARTRX) Join(priority rtos.Priority, stackSize uint32) bool {
	if !rx.ValidHandle() {
		rx.Start(rx.sched, "uartrx", priority, stackSize, rx)
	}
	return rx.ValidHandle()
}

// Run reads lines forever. Listeners see each line from their Update
// callback; reading Line outside Update races with the receive task.
func (rx *UARTRX) Run() {
	for {
		text.BlockingReadLine(rx, &rx.Line)
		rx.Notify()
	}
}
