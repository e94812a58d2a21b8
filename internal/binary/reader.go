// Package binary implements the low-level wire primitives used by the
// fixedstring codec: LEB128 unsigned integers and position-tracked reads.
package binary

import (
	"errors"
	"fmt"
	"io"
)

// ErrOverflow is returned when a LEB128 value exceeds 32 bits.
var ErrOverflow = errors.New("leb128: overflow")

// Reader wraps an io.ByteReader with position tracking.
type Reader struct {
	r   io.ByteReader
	pos int
}

// NewReader creates a new Reader wrapping the given io.ByteReader.
func NewReader(r io.ByteReader) *Reader {
	return &Reader{r: r}
}

// Position returns the number of bytes consumed so far.
func (r *Reader) Position() int {
	return r.pos
}

// ReadByte reads a single byte and advances the position.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, err
	}
	r.pos++
	return b, nil
}

// ReadBytes reads exactly n bytes. A short read reports
// io.ErrUnexpectedEOF rather than io.EOF so callers can distinguish a
// truncated payload from a clean end of input.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return nil, err
		}
		buf[i] = b
	}
	return buf, nil
}

// ReadU32 reads an unsigned LEB128 encoded uint32.
func (r *Reader) ReadU32() (uint32, error) {
	var result uint32
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		// The fifth byte may only carry bits 28..31 of a uint32.
		if shift == 28 && b&0x70 != 0 {
			return 0, ErrOverflow
		}
		result |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
		if shift >= 35 {
			return 0, ErrOverflow
		}
	}
}

// ParseError records a wire-level failure with the input position and the
// field being read.
type ParseError struct {
	Err      error
	Field    string
	Position int
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s at position %d: %v", e.Field, e.Position, e.Err)
	}
	return fmt.Sprintf("at position %d: %v", e.Position, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WrapError creates a ParseError with the current position.
func (r *Reader) WrapError(field string, err error) error {
	return &ParseError{
		Position: r.pos,
		Field:    field,
		Err:      err,
	}
}
