package fixedstring

import (
	"bytes"
	stderrors "errors"
	"fmt"

	"github.com/wippyai/fixedstring/errors"
	"github.com/wippyai/fixedstring/internal/binary"
)

// Wire format: an unsigned LEB128 length prefix followed by exactly that
// many bytes of UTF-8 payload. The encoded size varies with the content;
// it never includes capacity padding.

// EncodedSize returns the exact wire size of the receiver: the prefix
// bytes plus the content length.
func (s *String[A]) EncodedSize() int {
	return binary.U32Len(uint32(s.n)) + s.n
}

// MaxEncodedSize returns the largest wire size any String backed by A
// can produce. Callers can pre-size buffers with it without encoding.
func MaxEncodedSize[A any]() int {
	c := capOf[A]()
	return binary.U32Len(uint32(c)) + c
}

// AppendBinary appends the wire encoding to dst. It never fails; the
// error return satisfies encoding.BinaryAppender.
func (s *String[A]) AppendBinary(dst []byte) ([]byte, error) {
	dst = binary.AppendU32(dst, uint32(s.n))
	return append(dst, s.Bytes()...), nil
}

// MarshalBinary returns the wire encoding. It implements
// encoding.BinaryMarshaler.
func (s *String[A]) MarshalBinary() ([]byte, error) {
	return s.AppendBinary(make([]byte, 0, s.EncodedSize()))
}

// UnmarshalBinary decodes a wire encoding produced by MarshalBinary,
// replacing the receiver's content. It implements
// encoding.BinaryUnmarshaler.
//
// Failures are reported as *errors.DecodeError wrapping the cause: a
// LengthError when the declared length exceeds the capacity (detected
// before any payload is read), a UTF8Error when the payload is invalid,
// or an io error when data is truncated. data must contain exactly one
// encoded string; trailing bytes are an error. On failure the receiver
// is left unmodified.
func (s *String[A]) UnmarshalBinary(data []byte) error {
	r := binary.NewReader(bytes.NewReader(data))
	v, err := decode[A](r)
	if err != nil {
		return err
	}
	if r.Position() != len(data) {
		return errors.NewDecode(r.Position(),
			fmt.Errorf("%d trailing bytes after payload", len(data)-r.Position()))
	}
	*s = v
	return nil
}

// decode reads one wire-encoded string. Offsets in the returned
// DecodeError are absolute reader positions.
func decode[A any](r *binary.Reader) (String[A], error) {
	c := capOf[A]()

	prefixStart := r.Position()
	length, err := r.ReadU32()
	if err != nil {
		return String[A]{}, errors.NewDecode(r.Position(), err)
	}
	if int(length) > c {
		// Reject before touching the payload so a corrupt prefix can
		// never force an oversized read.
		return String[A]{}, errors.NewDecode(prefixStart, errors.NewLength(int(length), c))
	}

	payloadStart := r.Position()
	payload, err := r.ReadBytes(int(length))
	if err != nil {
		return String[A]{}, errors.NewDecode(r.Position(), err)
	}

	v, err := FromBytes[A](payload)
	if err != nil {
		var utf8Err *errors.UTF8Error
		if stderrors.As(err, &utf8Err) {
			return String[A]{}, errors.NewDecode(payloadStart+utf8Err.ValidUpTo, err)
		}
		return String[A]{}, errors.NewDecode(payloadStart, err)
	}
	return v, nil
}

// MarshalText returns a copy of the content. It implements
// encoding.TextMarshaler; the text form of a fixed string is simply the
// string itself.
func (s *String[A]) MarshalText() ([]byte, error) {
	return s.AppendTo(nil), nil
}

// AppendText appends the content to dst. It implements
// encoding.TextAppender.
func (s *String[A]) AppendText(dst []byte) ([]byte, error) {
	return s.AppendTo(dst), nil
}

// UnmarshalText replaces the receiver's content with text, applying the
// same checks as FromBytes. It implements encoding.TextUnmarshaler.
func (s *String[A]) UnmarshalText(text []byte) error {
	v, err := FromBytes[A](text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
