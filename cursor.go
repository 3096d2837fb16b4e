package klv

/*
cursor.go implements the positioned byte handle described in §3/§4.1
of the codec design. It plays the same role the teacher package's
[Packet] (see pkt.go/ber.go: Data/Offset/SetOffset/Append) plays for
ASN.1 TLV streams, trimmed to exactly what a KLV field reader/writer
needs: bounded advance over a single contiguous buffer, no tag/length
framing of its own (the surrounding packet layer owns that).
*/

/*
Cursor is a positioned read/write handle over a contiguous byte
buffer. A zero-value Cursor is not usable; construct one with
[NewCursor] (for reading) or [NewWriteCursor] (for writing into a
preallocated buffer).
*/
type Cursor struct {
	buf []byte
	pos int
}

/*
NewCursor returns a [*Cursor] positioned at the start of buf, intended
for reads. Writes into a cursor built this way grow buf as needed.
*/
func NewCursor(buf []byte) *Cursor { return &Cursor{buf: buf} }

/*
NewWriteCursor returns a [*Cursor] wrapping a zero-length buffer with
capacity cap, intended for writes that accumulate into Bytes.
*/
func NewWriteCursor(capacity int) *Cursor { return &Cursor{buf: make([]byte, 0, capacity)} }

/*
Offset returns the current position of the receiver within its buffer.
*/
func (c *Cursor) Offset() int { return c.pos }

/*
Len returns the total length of the underlying buffer.
*/
func (c *Cursor) Len() int { return len(c.buf) }

/*
Remaining returns the number of unread bytes between the current
position and the end of the buffer.
*/
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

/*
Bytes returns the full underlying buffer, regardless of position.
*/
func (c *Cursor) Bytes() []byte { return c.buf }

/*
SetOffset repositions the receiver. It is intended for recovery paths
(e.g. resetting to a pre-call position before a blob fallback read)
and is not itself bounds-checked beyond the buffer length.
*/
func (c *Cursor) SetOffset(pos int) { c.pos = pos }

/*
Read returns exactly n bytes starting at the current position and
advances the position by n. It fails with [Truncated] if fewer than n
bytes remain.
*/
func (c *Cursor) Read(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.buf) {
		return nil, Truncated
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

/*
Write appends b to the receiver's buffer and advances the position by
len(b). maxLength bounds how many more bytes may be written from the
current position; Write fails with an error of kind KindOverflow if
len(b) exceeds it.
*/
func (c *Cursor) Write(b []byte, maxLength int) error {
	if len(b) > maxLength {
		return errorOverflow(len(b), maxLength)
	}
	c.buf = append(c.buf, b...)
	c.pos += len(b)
	return nil
}
