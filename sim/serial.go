package sim

import (
	"io"
	"strings"
	"sync"
	"time"
)

// Port is one simulated serial endpoint: a bounded receive buffer the
// outside feeds, and a transmit capture with an optional live tee.
// Set Tee before any task starts writing.
type Port struct {
	Tee io.Writer // Optional live copy of transmitted bytes.

	mu       sync.Mutex
	rxData   [SERIAL_BUFFER]byte
	rxRead   int
	rxWrite  int
	rxSize   int
	overruns int
	txData   []byte
}

// ReadByte pops the oldest received byte.
func (p *Port) ReadByte() (c byte, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.rxSize == 0 {
		return
	}

	c = p.rxData[p.rxRead]
	p.rxRead++
	if p.rxRead == len(p.rxData) {
		p.rxRead = 0
	}
	p.rxSize--
	ok = true

	return
}

// WriteByte captures one transmitted byte.
func (p *Port) WriteByte(c byte) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.txData = append(p.txData, c)
	if p.Tee != nil {
		p.Tee.Write([]byte{c})
	}
}

// Available returns the count of received bytes waiting.
func (p *Port) Available() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.rxSize
}

// Feed appends data to the receive buffer, returning the count of
// bytes dropped to overrun.
func (p *Port) Feed(data []byte) (dropped int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, c := range data {
		if p.rxSize == len(p.rxData) {
			dropped++
			continue
		}
		p.rxData[p.rxWrite] = c
		p.rxWrite++
		if p.rxWrite == len(p.rxData) {
			p.rxWrite = 0
		}
		p.rxSize++
	}

	p.overruns += dropped

	return
}

// Overruns returns the total receive bytes dropped so far.
func (p *Port) Overruns() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.overruns
}

// Transmitted returns a copy of every byte written so far.
func (p *Port) Transmitted() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]byte{}, p.txData...)
}

// WaitTransmitted polls until the transmit capture contains want,
// giving up after timeout.
func (p *Port) WaitTransmitted(want string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)

	for {
		if strings.Contains(string(p.Transmitted()), want) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(time.Millisecond)
	}
}
