package text

// Texter is the character capability set a concrete peripheral supplies
// to the blocking line algorithms.
type Texter interface {
	// CharacterRead polls for one byte without blocking.
	CharacterRead() (c byte, ok bool)

	// CharacterWrite emits one byte.
	CharacterWrite(c byte)

	// CharacterReadDelay yields between read polls, so polling does not
	// starve other tasks.
	CharacterReadDelay()
}

// BlockingReadLine accumulates bytes from t into line until a complete
// line arrives, then installs the terminator, records the length, and
// returns. A line is complete when the last two bytes are
// carriage-return then line-feed with at least one character before
// them; a bare CR LF pair keeps accumulating. Input past the line bound
// wraps to the start of the buffer and overwrites, with nothing
// signaled. CharacterReadDelay runs once per poll; it is the only
// suspension point.
func BlockingReadLine(t Texter, line *Line) {
	bound := line.Bound()

	last := byte(0)
	length := 0

	for {
		if c, ok := t.CharacterRead(); ok {
			if length >= bound {
				length = 0
			}
			line.data[length] = c
			length++

			if c == '\n' && last == '\r' && length > 2 {
				line.data[length] = 0x00
				line.length = length
				return
			}

			last = c
		}

		t.CharacterReadDelay()
	}
}

// BlockingWriteLine emits the line's storage through t until a
// terminator or the line bound, whichever comes first. The write path
// never yields; callers wanting pacing between characters add their own
// delay.
func BlockingWriteLine(t Texter, line *Line) {
	bound := line.Bound()

	for n := range bound {
		c := line.data[n]
		if c == 0x00 {
			break
		}
		t.CharacterWrite(c)
	}
}
