package sim

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPort_FeedRead(t *testing.T) {
	assert := assert.New(t)

	var port Port

	assert.Equal(0, port.Feed([]byte("abc")))
	assert.Equal(3, port.Available())

	for n, want := range []byte("abc") {
		c, ok := port.ReadByte()
		assert.True(ok, fmt.Sprintf("byte %d", n))
		assert.Equal(want, c, fmt.Sprintf("byte %d", n))
	}

	_, ok := port.ReadByte()
	assert.False(ok)
	assert.Equal(0, port.Available())
}

func TestPort_Wrap(t *testing.T) {
	assert := assert.New(t)

	var port Port

	// Push the ring indexes past the wrap point.
	for n := range 3 {
		chunk := bytes.Repeat([]byte{byte('A' + n)}, 200)
		assert.Equal(0, port.Feed(chunk), fmt.Sprintf("chunk %d", n))

		for range 200 {
			c, ok := port.ReadByte()
			assert.True(ok)
			assert.Equal(byte('A'+n), c)
		}
	}
}

func TestPort_Overrun(t *testing.T) {
	assert := assert.New(t)

	var port Port

	assert.Equal(10, port.Feed(bytes.Repeat([]byte{'x'}, SERIAL_BUFFER+10)))
	assert.Equal(10, port.Overruns())
	assert.Equal(SERIAL_BUFFER, port.Available())
}

func TestPort_Transmit(t *testing.T) {
	assert := assert.New(t)

	var tee bytes.Buffer
	port := Port{Tee: &tee}

	for _, c := range []byte("OK\r\n") {
		port.WriteByte(c)
	}

	got := port.Transmitted()
	assert.Equal([]byte("OK\r\n"), got)
	assert.Equal([]byte("OK\r\n"), tee.Bytes())

	// The capture is a copy.
	got[0] = '?'
	assert.Equal([]byte("OK\r\n"), port.Transmitted())
}

func TestPort_WaitTransmitted(t *testing.T) {
	assert := assert.New(t)

	var port Port

	go func() {
		time.Sleep(5 * time.Millisecond)
		for _, c := range []byte("PING\r\n") {
			port.WriteByte(c)
		}
	}()

	assert.True(port.WaitTransmitted("PING", time.Second))
	assert.False(port.WaitTransmitted("PONG", 10*time.Millisecond))
}
