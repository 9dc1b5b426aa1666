package text

import (
	"fmt"
	"iter"
	"maps"
)

const (
	LINE_CAPACITY = 120 // Largest per-line character bound, terminator excluded
)

var _text_defines = map[string]string{
	"LINE_CAPACITY": fmt.Sprintf("%d", LINE_CAPACITY),
}

// Defines returns the package constant surface for script environments.
func Defines() iter.Seq2[string, string] {
	return maps.All(_text_defines)
}

// Line is a text line held in fixed storage with a construction-time
// character bound. Lines copy by value, so a line handed to a task
// queue never aliases the sender's buffer. The zero value is an empty
// line with the full LINE_CAPACITY bound.
//
// The storage keeps one spare byte past the bound for a terminator, so
// printable views stay delimited without the terminator ever counting
// toward the reported length.
type Line struct {
	data   [LINE_CAPACITY + 1]byte
	length int
	limit  int
}

// NewLine returns an empty line bounded to n characters. Bounds outside
// 1..LINE_CAPACITY fall back to LINE_CAPACITY.
func NewLine(n int) (line Line) {
	if n >= 1 && n <= LINE_CAPACITY {
		line.limit = n
	}

	return
}

// NewLineString returns a LINE_CAPACITY-bounded line holding s,
// truncated as Set describes.
func NewLineString(s string) (line Line) {
	line.SetString(s)

	return
}

// Bound returns the line's character bound.
func (line *Line) Bound() int {
	if line.limit == 0 {
		return LINE_CAPACITY
	}

	return line.limit
}

// Length returns the stored character count. Control characters such as
// carriage-return and line-feed count; the terminator does not.
func (line *Line) Length() int {
	return line.length
}

// Set stores src truncated to one less than the bound, keeping room for
// a terminator. A terminator is installed just past the stored
// characters unless the copied tail already ends in one; either way the
// reported length covers only the characters themselves.
func (line *Line) Set(src []byte) {
	n := line.Bound() - 1
	if len(src) < n {
		n = len(src)
	}

	copy(line.data[:n], src[:n])
	if n == 0 || line.data[n-1] != 0x00 {
		line.data[n] = 0x00
	}
	line.length = n
}

// SetString stores s, truncated like Set.
func (line *Line) SetString(s string) {
	n := line.Bound() - 1
	if len(s) < n {
		n = len(s)
	}

	copy(line.data[:n], s[:n])
	if n == 0 || line.data[n-1] != 0x00 {
		line.data[n] = 0x00
	}
	line.length = n
}

// Bytes returns the stored characters, exactly Length of them. This is
// the transmit view; it shares the line's storage.
func (line *Line) Bytes() []byte {
	return line.data[:line.length]
}

// String returns the printable view, stopping at an embedded terminator
// the way C string consumers of this layout would.
func (line *Line) String() string {
	for n := range line.length {
		if line.data[n] == 0x00 {
			return string(line.data[:n])
		}
	}

	return string(line.data[:line.length])
}
