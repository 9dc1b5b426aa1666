package text

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverse(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		in  string
		out string
	}{
		{in: "", out: ""},
		{in: "A", out: "A"},
		{in: "AB", out: "BA"},
		{in: "ABC", out: "CBA"},
		{in: "HELLO\r\n", out: "\n\rOLLEH"},
	}

	for _, test := range tests {
		b := []byte(test.in)
		got := Reverse(b)

		assert.Equal(test.out, string(got), test.in)
		// In place: the returned slice is the input storage.
		if len(b) > 0 {
			assert.Same(&b[0], &got[0])
		}
	}
}

func TestFromInt(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		n    int32
		base uint8
		out  string
	}{
		{n: 0, base: 10, out: "0"},
		{n: 7, base: 10, out: "7"},
		{n: 42, base: 10, out: "42"},
		{n: -17, base: 10, out: "-17"},
		{n: 255, base: 16, out: "ff"},
		{n: -255, base: 16, out: "-ff"},
		{n: 5, base: 2, out: "101"},
		{n: 2147483647, base: 10, out: "2147483647"},
		{n: -2147483648, base: 10, out: "-2147483648"},
		{n: 100, base: 0, out: "100"}, // bad base falls back to 10
	}

	var buf [33]byte
	for _, test := range tests {
		got := FromInt(buf[:], test.n, test.base)
		assert.Equal(test.out, string(got), "%d base %d", test.n, test.base)
	}
}

func TestFromInt_MatchesStrconv(t *testing.T) {
	assert := assert.New(t)

	values := []int32{0, 1, -1, 9, 10, 99, 4096, -4096, 65535, 1 << 30}
	var buf [33]byte

	for _, v := range values {
		for _, base := range []uint8{10, 16} {
			got := FromInt(buf[:], v, base)
			want := strconv.FormatInt(int64(v), int(base))
			assert.Equal(want, string(got), "%d base %d", v, base)
		}
	}
}

func TestFromFloat(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		n      float64
		places uint8
		out    string
	}{
		{n: 0.0, places: 0, out: "0"},
		{n: 1.999, places: 2, out: "2.00"},
		{n: 3.14159, places: 3, out: "3.142"},
		{n: -0.5, places: 1, out: "-0.5"},
		{n: -1.5, places: 0, out: "-2"},
		{n: 42.0, places: 0, out: "42"},
		{n: 0.25, places: 2, out: "0.25"},
		{n: 100.125, places: 3, out: "100.125"},
	}

	var buf [48]byte
	for _, test := range tests {
		got := FromFloat(buf[:], test.n, test.places)
		assert.Equal(test.out, string(got), "%v places %d", test.n, test.places)
	}
}
