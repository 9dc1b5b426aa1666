package periph

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ucrtos/pattern"
	"github.com/ezrec/ucrtos/rtos"
	"github.com/ezrec/ucrtos/sim"
)

// lineTap records each notification's line text.
type lineTap struct {
	rx    *UARTRX
	lines chan string
}

func (tap *lineTap) Update(sender *pattern.Observed) bool {
	tap.lines <- tap.rx.Line.String()
	return false
}

func TestUARTRX_Lines(t *testing.T) {
	assert := assert.New(t)

	b := sim.NewBoard()

	rx := NewUARTRX(b, b.Port(0), RX_DELAY_DEFAULT)
	tap := &lineTap{rx: rx, lines: make(chan string, 8)}
	assert.True(rx.AppendObserver(tap))

	assert.True(rx.Join(rtos.PRIORITY_IDLE+1, STACK_UART_RX))
	assert.True(rx.Join(rtos.PRIORITY_IDLE+1, STACK_UART_RX)) // Standing task.

	b.Port(0).Feed([]byte("HELLO\r\n"))

	select {
	case line := <-tap.lines:
		assert.Equal("HELLO\r\n", line)
	case <-time.After(time.Second):
		assert.Fail("no line notification")
	}
}

func TestUARTRX_BareCrlf(t *testing.T) {
	assert := assert.New(t)

	b := sim.NewBoard()

	rx := NewUARTRX(b, b.Port(0), RX_DELAY_DEFAULT)
	tap := &lineTap{rx: rx, lines: make(chan string, 8)}
	assert.True(rx.AppendObserver(tap))
	assert.True(rx.Join(rtos.PRIORITY_IDLE+1, STACK_UART_RX))

	// A leading bare CRLF rides along with the line that follows.
	b.Port(0).Feed([]byte("\r\nPING\r\n"))

	select {
	case line := <-tap.lines:
		assert.Equal("\r\nPING\r\n", line)
	case <-time.After(time.Second):
		assert.Fail("no line notification")
	}

	select {
	case line := <-tap.lines:
		assert.Fail("extra notification", "%q", line)
	case <-time.After(50 * time.Millisecond):
	}
}

// prefixEcho claims lines with its prefix and posts a reply; an empty
// prefix matches every line.
type prefixEcho struct {
	rx     *UARTRX
	tx     *UARTTX
	prefix string
	reply  string
	claim  bool
}

func (pe *prefixEcho) Update(sender *pattern.Observed) bool {
	if !strings.HasPrefix(pe.rx.Line.String(), pe.prefix) {
		return false
	}

	pe.tx.TransmitString(pe.reply)

	return pe.claim
}

func TestUARTRX_ListenerChain(t *testing.T) {
	assert := assert.New(t)

	b := sim.NewBoard()

	rx := NewUARTRX(b, b.Port(0), RX_DELAY_DEFAULT)
	tx := NewUARTTX(b, b.Port(0), 4)

	hello := &prefixEcho{rx: rx, tx: tx, prefix: "HELLO", reply: "HELLO OK\r\n", claim: true}
	rest := &prefixEcho{rx: rx, tx: tx, prefix: "", reply: "SEEN\r\n", claim: false}
	assert.True(rx.AppendObserver(hello))
	assert.True(rx.AppendObserver(rest))

	assert.True(tx.Join(rtos.PRIORITY_IDLE+1, STACK_UART_TX))
	assert.True(rx.Join(rtos.PRIORITY_IDLE+2, STACK_UART_RX))

	b.Port(0).Feed([]byte("HELLO one\r\n"))
	assert.True(b.Port(0).WaitTransmitted("HELLO OK\r\n", time.Second))

	b.Port(0).Feed([]byte("other\r\n"))
	assert.True(b.Port(0).WaitTransmitted("SEEN\r\n", time.Second))

	// The claimed line never reached the fallback listener.
	assert.Equal(1, strings.Count(string(b.Port(0).Transmitted()), "SEEN"))
}
