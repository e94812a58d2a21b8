// Package fixedstring provides a fixed-capacity, heap-free string type
// whose contents are always valid UTF-8.
//
// A String is backed by an inline byte array; the capacity is the length
// of the backing array type and is fixed at compile time:
//
//	s, err := fixedstring.New[[16]byte]("hello")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s.Len(), s.Cap()) // 5 16
//
// The zero value is the empty string. No operation allocates except the
// explicitly copying conversions (String, AppendTo, MarshalBinary).
//
// Capacity denotes bytes, not characters: a capacity of 8 holds between
// two and eight characters depending on their UTF-8 encoding.
//
// # Invariants
//
// Every value reachable through checked operations satisfies:
//
//   - the logical length never exceeds the capacity
//   - the first Len bytes of the buffer are valid UTF-8
//
// Checked constructors (New, FromBytes, FromRune) validate their input
// and return LengthError or UTF8Error from the errors subpackage.
// Unchecked constructors (NewUnchecked, FromBytesUnchecked, FromRawParts)
// skip validation; violating their documented preconditions produces a
// value on which later operations misbehave or panic.
//
// # Wire format
//
// Strings encode as a LEB128 length prefix followed by exactly Len
// payload bytes. Decoding rejects a prefix above the capacity before
// reading any payload. See MarshalBinary, UnmarshalBinary, and the wire
// subpackage for streaming over io.Reader/io.Writer.
package fixedstring
