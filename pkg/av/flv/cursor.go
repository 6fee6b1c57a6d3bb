package flv

import (
	"github.com/gwuhaolin/livego/utils/pio"
	"github.com/pkg/errors"
)

// Cursor is a bounds-checked forward reader over an in-memory buffer.
// Position advances only when a read succeeds.
type Cursor struct {
	buf []byte
	pos int
}

func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

func (c *Cursor) Pos() int {
	return c.pos
}

func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

func (c *Cursor) ReadU8() (uint8, error) {
	if c.Remaining() < 1 {
		return 0, errors.Wrap(ErrTruncated, "read u8")
	}

	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

func (c *Cursor) ReadU24BE() (uint32, error) {
	if c.Remaining() < 3 {
		return 0, errors.Wrap(ErrTruncated, "read u24")
	}

	v := pio.U24BE(c.buf[c.pos:])
	c.pos += 3
	return v, nil
}

func (c *Cursor) ReadU32BE() (uint32, error) {
	if c.Remaining() < 4 {
		return 0, errors.Wrap(ErrTruncated, "read u32")
	}

	v := pio.U32BE(c.buf[c.pos:])
	c.pos += 4
	return v, nil
}

// ReadBytes returns a slice of the underlying buffer, no copy.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, errors.Wrapf(ErrTruncated, "read %d bytes", n)
	}

	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *Cursor) Skip(n int) error {
	if n < 0 || c.Remaining() < n {
		return errors.Wrapf(ErrTruncated, "skip %d bytes", n)
	}

	c.pos += n
	return nil
}
