// Package periph builds line-oriented peripheral tasks from the task,
// queue, observer, and interrupt primitives: serial receive and
// transmit endpoints, and a pin watcher that moves interrupt events
// into task context.
package periph

// Serial is the character transport behind a UART task.
type Serial interface {
	// ReadByte polls for one received byte without blocking.
	ReadByte() (c byte, ok bool)
	// WriteByte emits one byte.
	WriteByte(c byte)
	// Available returns the count of received bytes waiting.
	Available() int
}
