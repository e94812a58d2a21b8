package fixedstring

import (
	"iter"

	"github.com/wippyai/fixedstring/errors"
	"github.com/wippyai/fixedstring/internal/utf8"
)

// FromRune constructs a String holding the single rune r. It fails with
// LengthError when the encoded rune does not fit the capacity. Runes
// that are not Unicode scalar values (surrogates, out of range) encode
// as U+FFFD, matching unicode/utf8.
func FromRune[A any](r rune) (String[A], error) {
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	c := capOf[A]()
	size := utf8.RuneLen(r)
	if size > c {
		return String[A]{}, errors.NewLength(size, c)
	}
	var out String[A]
	out.n = len(utf8.AppendRune(out.raw()[:0], r))
	return out, nil
}

// Collect builds a String from a rune sequence, stopping before the
// first rune that would not fit the remaining capacity. It never fails;
// a sequence longer than the capacity is simply cut short at a rune
// boundary.
func Collect[A any](seq iter.Seq[rune]) String[A] {
	var out String[A]
	c := capOf[A]()
	for r := range seq {
		if !utf8.ValidRune(r) {
			r = utf8.RuneError
		}
		if out.n+utf8.RuneLen(r) > c {
			break
		}
		out.n = len(utf8.AppendRune(out.raw()[:out.n], r))
	}
	return out
}
