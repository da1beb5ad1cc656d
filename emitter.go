package html2md

import "bytes"

// emitter is the append-only Markdown output buffer. It tracks the last
// two emitted bytes so handlers can make spacing decisions without
// re-scanning the buffer. Whenever bytes are removed from the tail the
// lookback is re-derived from the new tail, never decremented in place:
// removed bytes can expose arbitrary earlier state.
type emitter struct {
	buf   []byte
	last  byte // last emitted byte, 0 when empty
	last2 byte // second to last emitted byte, 0 when shorter than 2
}

func (e *emitter) writeByte(b byte) {
	e.buf = append(e.buf, b)
	e.last2 = e.last
	e.last = b
}

func (e *emitter) writeString(s string) {
	if s == "" {
		return
	}
	e.buf = append(e.buf, s...)
	e.refreshLookback()
}

// shorten removes the last n bytes. Removing more than the buffer holds
// clears it.
func (e *emitter) shorten(n int) {
	if n <= 0 {
		return
	}
	if n >= len(e.buf) {
		e.buf = e.buf[:0]
	} else {
		e.buf = e.buf[:len(e.buf)-n]
	}
	e.refreshLookback()
}

func (e *emitter) refreshLookback() {
	e.last, e.last2 = 0, 0
	if n := len(e.buf); n > 0 {
		e.last = e.buf[n-1]
		if n > 1 {
			e.last2 = e.buf[n-2]
		}
	}
}

// trimRightBlanks removes trailing spaces, leaving newlines intact.
func (e *emitter) trimRightBlanks() {
	n := len(e.buf)
	for n > 0 && e.buf[n-1] == ' ' {
		n--
	}
	if n != len(e.buf) {
		e.buf = e.buf[:n]
		e.refreshLookback()
	}
}

// blank appends a single separating space unless the buffer is empty or
// already ends with a space, a newline, or an emphasis marker.
func (e *emitter) blank() {
	switch e.last {
	case 0, ' ', '\n', '*':
		return
	}
	e.writeByte(' ')
}

// replaceTrailingSpaceWithNewline turns a trailing space into a newline,
// if present.
func (e *emitter) replaceTrailingSpaceWithNewline() {
	if e.last == ' ' {
		e.shorten(1)
		e.writeByte('\n')
	}
}

// lineLen reports the length of the current (unterminated) output line.
func (e *emitter) lineLen() int {
	return len(e.buf) - bytes.LastIndexByte(e.buf, '\n') - 1
}

func (e *emitter) len() int { return len(e.buf) }

func (e *emitter) string() string { return string(e.buf) }
