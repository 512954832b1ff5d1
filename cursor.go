package peheader

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Cursor is a sequential, seekable reader over a byte source. All multi-byte
// reads are little-endian and exact: a read that cannot be fully satisfied
// fails with ErrTruncated and never returns partial data.
type Cursor struct {
	reader io.ReadSeeker
	offset int64
}

func NewCursor(reader io.ReadSeeker) *Cursor {
	return &Cursor{reader: reader}
}

// NewCursorAt wraps a reader whose underlying position is already known,
// typically the handoff offset carried by HeaderInfo.
func NewCursorAt(reader io.ReadSeeker, offset int64) *Cursor {
	return &Cursor{reader: reader, offset: offset}
}

// Offset returns the current position relative to the start of the stream.
func (c *Cursor) Offset() int64 {
	return c.offset
}

// Read implements io.Reader so struct unpackers can consume the cursor
// directly. Position tracking stays consistent with the exact-read methods.
func (c *Cursor) Read(p []byte) (int, error) {
	n, err := c.reader.Read(p)
	c.offset += int64(n)
	return n, err
}

// ReadExact reads exactly n bytes into a fresh buffer.
func (c *Cursor) ReadExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	read, err := io.ReadFull(c.reader, buf)
	c.offset += int64(read)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, errors.WithMessagef(ErrTruncated, "wanted %d bytes at offset %d", n, c.offset-int64(read))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read of %d bytes at offset %d", n, c.offset-int64(read))
	}
	return buf, nil
}

func (c *Cursor) ReadUint8() (uint8, error) {
	buf, err := c.ReadExact(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (c *Cursor) ReadUint16() (uint16, error) {
	buf, err := c.ReadExact(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf), nil
}

func (c *Cursor) ReadUint32() (uint32, error) {
	buf, err := c.ReadExact(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// SeekRelative moves the cursor by delta bytes from the current position.
// A position before the start of the stream fails with ErrSeekOutOfRange.
// Seeking past end-of-stream is not detected here; the next read fails with
// ErrTruncated instead.
func (c *Cursor) SeekRelative(delta int64) error {
	if c.offset+delta < 0 {
		return errors.WithMessagef(ErrSeekOutOfRange, "relative seek %d from offset %d", delta, c.offset)
	}
	pos, err := c.reader.Seek(delta, io.SeekCurrent)
	if err != nil {
		return errors.Wrapf(err, "relative seek %d from offset %d", delta, c.offset)
	}
	c.offset = pos
	return nil
}
