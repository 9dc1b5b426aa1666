package periph

import (
	"github.com/ezrec/ucrtos/rtos"
	"github.com/ezrec/ucrtos/text"
)

const (
	STACK_UART_TX = 4 * rtos.STACK_MINIMAL // Suggested Join stack size
)

// UARTTX transmits queued text lines over a serial port from its own
// task. Any task may post lines; the transmit task serializes them.
type UARTTX struct {
	rtos.Task

	sched rtos.Scheduler
	port  Serial
	queue *rtos.Queue[text.Line]
}

var _ rtos.Tasker = (*UARTTX)(nil)

// NewUARTTX returns a transmitter for port with a queueLen-line
// backlog.
func NewUARTTX(s rtos.Scheduler, port Serial, queueLen uint) (tx *UARTTX) {
	tx = &UARTTX{
		sched: s,
		port:  port,
		queue: rtos.NewQueue[text.Line](s, queueLen),
	}
	return tx
}

// Transmit posts a copy of line for the transmit task, waiting without
// bound for queue space. Not for interrupt context.
func (tx *UARTTX) Transmit(line text.Line) bool {
	return tx.queue.Send(line, rtos.MAX_DELAY)
}

// TransmitString posts s as one line. Include the line ending wanted
// on the wire.
func (tx *UARTTX) TransmitString(s string) bool {
	return tx.Transmit(text.NewLineString(s))
}

// TransmitBytes posts b as one line.
func (tx *UARTTX) TransmitBytes(b []byte) bool {
	var line text.Line

	line.Set(b)

	return tx.Transmit(line)
}

// Join creates the transmit queue, then starts the task; repeat calls
// report the standing pair. The task is not started without its queue,
// so a false Join may be retried. STACK_UART_TX suits stackSize.
func (tx *UARTTX) Join(priority rtos.Priority, stackSize uint32) bool {
	if !tx.ValidHandle() && tx.queue.Create() {
		tx.Start(tx.sched, "uarttx", priority, stackSize, tx)
	}

	return tx.ValidHandle() && tx.queue.ValidHandle()
}

// Run drains the queue, pushing each line out byte by byte over
// exactly its stored length. The task ends if the queue dies.
func (tx *UARTTX) Run() {
	for {
		line, ok := tx.queue.Receive(rtos.MAX_DELAY)
		if !ok {
			return
		}

		for _, c := range line.Bytes() {
			tx.port.WriteByte(c)
		}
	}
}
