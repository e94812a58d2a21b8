package fixedstring

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
	"unsafe"

	"github.com/wippyai/fixedstring/errors"
	"github.com/wippyai/fixedstring/internal/utf8"
)

// String is a fixed-capacity string stored inline in a byte array of
// type A. The capacity is len(A); the logical length is tracked
// separately and never exceeds it. The zero value is the empty string.
//
// A must be a byte array type such as [16]byte. Constructors panic if it
// is anything else; Go cannot express "any byte array" as a type
// constraint, so the check is dynamic.
//
// Values copy freely: assignment copies the buffer, and two copies are
// fully independent afterwards.
type String[A any] struct {
	n   int
	buf A
}

// capOf returns the capacity carried by the array type A.
func capOf[A any]() int {
	t := reflect.TypeFor[A]()
	if t.Kind() != reflect.Array || t.Elem().Kind() != reflect.Uint8 {
		panic(fmt.Sprintf("fixedstring: backing type %v is not a byte array", t))
	}
	return t.Len()
}

// Cap returns the fixed capacity of a String backed by A, in bytes.
func Cap[A any]() int {
	return capOf[A]()
}

// raw returns the full backing buffer as a byte slice. The slice aliases
// the receiver; it is never handed out beyond the logical length except
// through the explicitly unsafe accessors.
func (s *String[A]) raw() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&s.buf)), capOf[A]())
}

// New constructs a String from s, validating that it fits the capacity
// and is valid UTF-8. Go strings may hold arbitrary bytes, so the UTF-8
// check is not redundant.
func New[A any](s string) (String[A], error) {
	return FromBytes[A](stringBytes(s))
}

// NewUnchecked constructs a String from s without validation.
//
// The caller must guarantee that len(s) does not exceed the capacity and
// that s is valid UTF-8. Violating either precondition produces a value
// that breaks the package invariants: later operations may return
// corrupted text or panic.
func NewUnchecked[A any](s string) String[A] {
	return FromBytesUnchecked[A](stringBytes(s))
}

// FromBytes constructs a String from raw bytes. It is the fully checked
// entry point: the length is checked against the capacity first, then
// the bytes are validated as UTF-8.
func FromBytes[A any](b []byte) (String[A], error) {
	c := capOf[A]()
	if len(b) > c {
		return String[A]{}, errors.NewLength(len(b), c)
	}
	if validUpTo, errorLen, ok := utf8.Validate(b); !ok {
		return String[A]{}, errors.NewUTF8(validUpTo, errorLen)
	}
	var out String[A]
	copy(out.raw(), b)
	out.n = len(b)
	return out, nil
}

// FromBytesUnchecked constructs a String from b without validation.
// Same caller contract as NewUnchecked.
func FromBytesUnchecked[A any](b []byte) String[A] {
	var out String[A]
	copy(out.raw(), b)
	out.n = len(b)
	return out
}

// FromRawParts assembles a String directly from a full backing buffer
// and a logical length. Nothing is checked: the caller must guarantee
// n <= len(buf) and that buf[:n] is valid UTF-8. The parts returned by
// RawParts are always valid to pass back here.
func FromRawParts[A any](buf A, n int) String[A] {
	return String[A]{n: n, buf: buf}
}

// Len returns the logical length in bytes. This is the byte count, not
// the character count.
func (s *String[A]) Len() int {
	return s.n
}

// Cap returns the fixed capacity in bytes.
func (s *String[A]) Cap() int {
	return capOf[A]()
}

// IsEmpty reports whether the string holds no content.
func (s *String[A]) IsEmpty() bool {
	return s.n == 0
}

// View returns the content as a string without copying.
//
// The result aliases the receiver's buffer: it becomes stale if the
// receiver is mutated afterwards, and it must not outlive the receiver.
// Use String for an independent copy.
func (s *String[A]) View() string {
	if s.n == 0 {
		return ""
	}
	b := s.raw()
	return unsafe.String(&b[0], s.n)
}

// String returns an independent heap copy of the content. It implements
// fmt.Stringer.
func (s *String[A]) String() string {
	return string(s.Bytes())
}

// Bytes returns the content bytes without copying. The slice aliases the
// receiver and must be treated as read-only; use UnsafeBytes for
// intentional byte-level mutation.
func (s *String[A]) Bytes() []byte {
	return s.raw()[:s.n:s.n]
}

// UnsafeBytes returns the content bytes as a mutable view.
//
// Writes through the returned slice bypass validation: the caller must
// only store byte sequences that keep the content valid UTF-8.
func (s *String[A]) UnsafeBytes() []byte {
	return s.raw()[:s.n:s.n]
}

// AppendTo appends the content bytes to dst and returns the result.
func (s *String[A]) AppendTo(dst []byte) []byte {
	return append(dst, s.Bytes()...)
}

// RawParts returns the full backing buffer and the logical length.
// Only the first Len bytes of the buffer are guaranteed to be valid
// UTF-8; for values built through checked paths the remainder is zero.
func (s *String[A]) RawParts() (A, int) {
	return s.buf, s.n
}

// IsRuneBoundary reports whether index i falls on a UTF-8 rune boundary.
// Index 0 and index Len are always boundaries; indices outside 0..Len
// are not.
func (s *String[A]) IsRuneBoundary(i int) bool {
	if i == 0 || i == s.n {
		return true
	}
	if i < 0 || i > s.n {
		return false
	}
	return utf8.RuneStart(s.raw()[i])
}

// IsASCII reports whether every content byte is below 0x80.
func (s *String[A]) IsASCII() bool {
	for _, b := range s.Bytes() {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

// MakeASCIIUppercase converts ASCII letters to uppercase in place.
// Non-ASCII bytes are untouched; the length never changes.
func (s *String[A]) MakeASCIIUppercase() {
	b := s.raw()[:s.n]
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
}

// MakeASCIILowercase converts ASCII letters to lowercase in place.
// Non-ASCII bytes are untouched; the length never changes.
func (s *String[A]) MakeASCIILowercase() {
	b := s.raw()[:s.n]
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
}

// SplitAt splits the content at mid, returning the two halves as
// zero-copy views (see View for the aliasing rules). It panics if mid is
// not a rune boundary: a blind split there would hand out halves that
// are not themselves valid UTF-8.
func (s *String[A]) SplitAt(mid int) (string, string) {
	left, right, ok := s.SplitAtChecked(mid)
	if !ok {
		panic(fmt.Sprintf("fixedstring: split index %d is not a rune boundary", mid))
	}
	return left, right
}

// SplitAtChecked is the non-panicking form of SplitAt: ok is false when
// mid is out of range or not a rune boundary.
func (s *String[A]) SplitAtChecked(mid int) (left, right string, ok bool) {
	if !s.IsRuneBoundary(mid) {
		return "", "", false
	}
	v := s.View()
	return v[:mid], v[mid:], true
}

// UnsafeSplitAt splits the content at mid into two mutable byte views.
// It panics if mid is not a rune boundary. Writes through either half
// bypass validation; the caller must keep each half valid UTF-8.
func (s *String[A]) UnsafeSplitAt(mid int) ([]byte, []byte) {
	left, right, ok := s.UnsafeSplitAtChecked(mid)
	if !ok {
		panic(fmt.Sprintf("fixedstring: split index %d is not a rune boundary", mid))
	}
	return left, right
}

// UnsafeSplitAtChecked is the non-panicking form of UnsafeSplitAt.
func (s *String[A]) UnsafeSplitAtChecked(mid int) (left, right []byte, ok bool) {
	if !s.IsRuneBoundary(mid) {
		return nil, nil, false
	}
	b := s.raw()[:s.n]
	return b[:mid:mid], b[mid:s.n:s.n], true
}

// Equal reports whether two strings of the same capacity hold identical
// content. Unlike ==, it ignores bytes beyond the logical length.
func (s *String[A]) Equal(o *String[A]) bool {
	return s.View() == o.View()
}

// EqualString reports whether the content equals v.
func (s *String[A]) EqualString(v string) bool {
	return s.View() == v
}

// Compare orders two strings of the same capacity lexicographically by
// content bytes, returning -1, 0, or +1.
func (s *String[A]) Compare(o *String[A]) int {
	return strings.Compare(s.View(), o.View())
}

// Runes iterates over the content as (byte offset, rune) pairs.
func (s *String[A]) Runes() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		b := s.Bytes()
		for i := 0; i < len(b); {
			r, size := utf8.DecodeRune(b[i:])
			if !yield(i, r) {
				return
			}
			i += size
		}
	}
}

// stringBytes returns the bytes of s without copying. Read-only use.
func stringBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
