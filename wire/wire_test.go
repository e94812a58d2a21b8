package wire_test

import (
	"bytes"
	stderrors "errors"
	"io"
	"testing"

	"go.uber.org/zap"

	"github.com/wippyai/fixedstring"
	"github.com/wippyai/fixedstring/errors"
	"github.com/wippyai/fixedstring/internal/binary"
	"github.com/wippyai/fixedstring/wire"
)

func TestStreamRoundTrip(t *testing.T) {
	inputs := []string{"hello", "", "日本語", "a"}

	var buf bytes.Buffer
	e := wire.NewEncoder(&buf)
	for _, input := range inputs {
		s, err := fixedstring.New[[16]byte](input)
		if err != nil {
			t.Fatal(err)
		}
		if err := wire.EncodeString(e, &s); err != nil {
			t.Fatalf("EncodeString(%q): %v", input, err)
		}
	}
	if e.BytesWritten() != buf.Len() {
		t.Errorf("BytesWritten: got %d, want %d", e.BytesWritten(), buf.Len())
	}

	d := wire.NewDecoder(bytes.NewReader(buf.Bytes()))
	for _, want := range inputs {
		s, err := wire.DecodeString[[16]byte](d)
		if err != nil {
			t.Fatalf("DecodeString: %v", err)
		}
		if s.View() != want {
			t.Errorf("decoded: got %q, want %q", s.View(), want)
		}
	}

	if _, err := wire.DecodeString[[16]byte](d); !stderrors.Is(err, io.EOF) {
		t.Errorf("stream end: got %v, want io.EOF", err)
	}
	if d.Position() != buf.Len() {
		t.Errorf("Position: got %d, want %d", d.Position(), buf.Len())
	}
}

func TestDecodeOversizedPrefixMidStream(t *testing.T) {
	// One good record, then a record whose prefix exceeds the capacity.
	data := []byte{0x02, 'h', 'i', 0x09}
	d := wire.NewDecoder(bytes.NewReader(data))

	if _, err := wire.DecodeString[[8]byte](d); err != nil {
		t.Fatalf("first record: %v", err)
	}

	_, err := wire.DecodeString[[8]byte](d)
	var decErr *errors.DecodeError
	if !stderrors.As(err, &decErr) {
		t.Fatalf("got %T, want *errors.DecodeError", err)
	}
	var lenErr *errors.LengthError
	if !stderrors.As(err, &lenErr) {
		t.Fatalf("cause: got %v, want LengthError", decErr.Err)
	}
	if lenErr.Len != 9 || lenErr.Cap != 8 {
		t.Errorf("LengthError: got {%d %d}, want {9 8}", lenErr.Len, lenErr.Cap)
	}
	// Offset of the offending prefix within the whole stream.
	if decErr.Offset != 3 {
		t.Errorf("Offset: got %d, want 3", decErr.Offset)
	}
}

func TestDecodePrefixOverflowMidStream(t *testing.T) {
	// Second record's prefix encodes 2^32+5 in five LEB128 bytes; its low
	// 32 bits spell 5, so a wrapping decode would read the trailing
	// "hello" as a valid record.
	data := []byte{0x02, 'h', 'i', 0x85, 0x80, 0x80, 0x80, 0x10, 'h', 'e', 'l', 'l', 'o'}
	d := wire.NewDecoder(bytes.NewReader(data))

	if _, err := wire.DecodeString[[8]byte](d); err != nil {
		t.Fatalf("first record: %v", err)
	}

	_, err := wire.DecodeString[[8]byte](d)
	var decErr *errors.DecodeError
	if !stderrors.As(err, &decErr) {
		t.Fatalf("got %v (%T), want *errors.DecodeError", err, err)
	}
	if !stderrors.Is(err, binary.ErrOverflow) {
		t.Errorf("cause: got %v, want binary.ErrOverflow", decErr.Err)
	}
	var parseErr *binary.ParseError
	if !stderrors.As(err, &parseErr) {
		t.Fatal("errors.As did not find ParseError")
	}
	if parseErr.Field != "length prefix" {
		t.Errorf("Field: got %q, want %q", parseErr.Field, "length prefix")
	}
}

func TestDecodeInvalidPayloadOffset(t *testing.T) {
	data := []byte{0x02, 'o', 'k', 0x02, 'a', 0xFF}
	d := wire.NewDecoder(bytes.NewReader(data))

	if _, err := wire.DecodeString[[8]byte](d); err != nil {
		t.Fatalf("first record: %v", err)
	}

	_, err := wire.DecodeString[[8]byte](d)
	var decErr *errors.DecodeError
	if !stderrors.As(err, &decErr) {
		t.Fatalf("got %T, want *errors.DecodeError", err)
	}
	// Stream offset of the invalid byte: 3 record bytes + prefix + 'a'.
	if decErr.Offset != 5 {
		t.Errorf("Offset: got %d, want 5", decErr.Offset)
	}
}

func TestDecodeTruncatedRecord(t *testing.T) {
	data := []byte{0x05, 'h', 'i'}
	d := wire.NewDecoder(bytes.NewReader(data))

	_, err := wire.DecodeString[[8]byte](d)
	if stderrors.Is(err, io.EOF) {
		t.Fatal("partial record reported as clean EOF")
	}
	if !stderrors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("got %v, want io.ErrUnexpectedEOF cause", err)
	}
	var parseErr *binary.ParseError
	if !stderrors.As(err, &parseErr) {
		t.Fatal("errors.As did not find ParseError")
	}
	if parseErr.Field != "payload" {
		t.Errorf("Field: got %q, want %q", parseErr.Field, "payload")
	}
}

func TestEncodeMatchesMarshalBinary(t *testing.T) {
	s, err := fixedstring.New[[16]byte]("héllo")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	e := wire.NewEncoder(&buf)
	if err := wire.EncodeString(e, &s); err != nil {
		t.Fatal(err)
	}

	want, err := s.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("stream record: got %x, want %x", buf.Bytes(), want)
	}
}

func TestEncodeWriteError(t *testing.T) {
	s := fixedstring.NewUnchecked[[8]byte]("hello")
	e := wire.NewEncoder(failWriter{})

	if err := wire.EncodeString(e, &s); !stderrors.Is(err, errWrite) {
		t.Errorf("got %v, want errWrite", err)
	}
}

var errWrite = stderrors.New("write rejected")

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}

func TestSetLogger(t *testing.T) {
	wire.SetLogger(zap.NewNop())
	if wire.Logger() == nil {
		t.Fatal("Logger returned nil")
	}
}
