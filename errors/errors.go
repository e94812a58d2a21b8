package errors

import "fmt"

// LengthError reports content whose byte length exceeds a string's fixed
// capacity. The attempted operation leaves the string unmodified.
type LengthError struct {
	Len int // attempted content length in bytes
	Cap int // fixed capacity of the destination
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("fixedstring: content of %d bytes exceeds capacity %d", e.Len, e.Cap)
}

// NewLength constructs a LengthError for an attempted length n against
// capacity c.
func NewLength(n, c int) *LengthError {
	return &LengthError{Len: n, Cap: c}
}

// UTF8Error reports an invalid UTF-8 sequence in attempted content.
//
// ValidUpTo is the length of the longest valid prefix; the byte at that
// offset begins the invalid sequence. ErrorLen is the byte length of the
// invalid sequence (1 to 3), or 0 when the input ends in an incomplete
// sequence that could become valid with further input.
type UTF8Error struct {
	ValidUpTo int
	ErrorLen  int
}

func (e *UTF8Error) Error() string {
	if e.ErrorLen == 0 {
		return fmt.Sprintf("fixedstring: incomplete UTF-8 sequence at offset %d", e.ValidUpTo)
	}
	return fmt.Sprintf("fixedstring: invalid UTF-8 sequence of %d bytes at offset %d", e.ErrorLen, e.ValidUpTo)
}

// NewUTF8 constructs a UTF8Error at offset validUpTo with the given
// invalid-sequence length.
func NewUTF8(validUpTo, errorLen int) *UTF8Error {
	return &UTF8Error{ValidUpTo: validUpTo, ErrorLen: errorLen}
}

// DecodeError reports a wire-format decode failure at a byte offset of the
// encoded input. The cause is a LengthError (declared length exceeds
// capacity), a UTF8Error (payload is not valid UTF-8), or an underlying
// read error such as io.ErrUnexpectedEOF.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("fixedstring: decode failed at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecode wraps err as a DecodeError at the given input offset.
func NewDecode(offset int, err error) *DecodeError {
	return &DecodeError{Offset: offset, Err: err}
}
