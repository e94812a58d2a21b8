package wire

import (
	stderrors "errors"
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/fixedstring"
	"github.com/wippyai/fixedstring/errors"
	"github.com/wippyai/fixedstring/internal/binary"
)

// Encoder writes wire-encoded strings to an io.Writer.
type Encoder struct {
	w io.Writer
	n int
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// BytesWritten returns the total number of bytes written so far.
func (e *Encoder) BytesWritten() int {
	return e.n
}

// EncodeString writes the wire encoding of s to the encoder's stream.
// Records are assembled in full before writing, so a failed write never
// leaves a partial prefix on the stream.
func EncodeString[A any](e *Encoder, s *fixedstring.String[A]) error {
	w := binary.NewWriter()
	w.WriteU32(uint32(s.Len()))
	w.WriteBytes(s.Bytes())

	n, err := e.w.Write(w.Bytes())
	e.n += n
	if err == nil && n != w.Len() {
		err = io.ErrShortWrite
	}
	if err != nil {
		Logger().Debug("wire: encode failed",
			zap.Int("offset", e.n),
			zap.Error(err))
		return err
	}
	return nil
}

// Decoder reads wire-encoded strings from a byte stream, tracking the
// absolute input position across values.
type Decoder struct {
	r *binary.Reader
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.ByteReader) *Decoder {
	return &Decoder{r: binary.NewReader(r)}
}

// Position returns the number of input bytes consumed so far.
func (d *Decoder) Position() int {
	return d.r.Position()
}

// DecodeString reads the next string from the stream.
//
// A clean end of input, with no bytes of a partial record consumed,
// returns io.EOF untouched so callers can terminate read loops the usual
// way. Every other failure is a *errors.DecodeError carrying the stream
// offset and wrapping the cause: LengthError for a prefix above the
// capacity (rejected before the payload is read), UTF8Error for an
// invalid payload, or a binary.ParseError naming the record field whose
// read failed.
func DecodeString[A any](d *Decoder) (fixedstring.String[A], error) {
	c := fixedstring.Cap[A]()

	prefixStart := d.r.Position()
	length, err := d.r.ReadU32()
	if err != nil {
		if stderrors.Is(err, io.EOF) && d.r.Position() == prefixStart {
			return fixedstring.String[A]{}, io.EOF
		}
		return fixedstring.String[A]{}, d.fail(d.r.Position(), d.r.WrapError("length prefix", err))
	}
	if int(length) > c {
		return fixedstring.String[A]{}, d.fail(prefixStart, errors.NewLength(int(length), c))
	}

	payloadStart := d.r.Position()
	payload, err := d.r.ReadBytes(int(length))
	if err != nil {
		return fixedstring.String[A]{}, d.fail(d.r.Position(), d.r.WrapError("payload", err))
	}

	s, err := fixedstring.FromBytes[A](payload)
	if err != nil {
		var utf8Err *errors.UTF8Error
		if stderrors.As(err, &utf8Err) {
			return fixedstring.String[A]{}, d.fail(payloadStart+utf8Err.ValidUpTo, err)
		}
		return fixedstring.String[A]{}, d.fail(payloadStart, err)
	}
	return s, nil
}

func (d *Decoder) fail(offset int, cause error) error {
	err := errors.NewDecode(offset, cause)
	Logger().Debug("wire: decode failed",
		zap.Int("offset", offset),
		zap.Error(cause))
	return err
}
