// Package utf8 implements UTF-8 validation and rune coding for the
// fixedstring package.
//
// The standard library's unicode/utf8.Valid reports only a boolean; the
// fixedstring error contract needs the offset of the first invalid byte
// and the length of the invalid sequence, so validation is implemented
// here. Error lengths follow the Unicode "maximal subpart" convention
// (U+FFFD substitution of maximal subparts): an invalid sequence is as
// long as its longest prefix that could have started a valid encoding.
package utf8

// Rune coding limits.
const (
	MaxBytes  = 4        // maximum bytes per encoded rune
	RuneError = '�' // replacement character
)

const (
	maxRune     = '\U0010FFFF'
	surrMin     = 0xD800
	surrMax     = 0xDFFF
	contMask    = 0xC0
	contPattern = 0x80
)

// RuneStart reports whether b can be the first byte of an encoded rune.
// Continuation bytes (0b10xxxxxx) are not starts.
func RuneStart(b byte) bool {
	return b&contMask != contPattern
}

// Validate checks that b is entirely valid UTF-8.
//
// On success ok is true and validUpTo == len(b). On failure validUpTo is
// the length of the longest valid prefix and errorLen is the byte length
// of the invalid sequence starting there (1 to 3), or 0 if b ends in an
// incomplete sequence that could become valid given more input.
func Validate(b []byte) (validUpTo, errorLen int, ok bool) {
	i := 0
	n := len(b)

	for i < n {
		b0 := b[i]
		if b0 < 0x80 {
			i++
			continue
		}

		var width int
		switch {
		case b0 >= 0xC2 && b0 <= 0xDF:
			width = 2
		case b0 >= 0xE0 && b0 <= 0xEF:
			width = 3
		case b0 >= 0xF0 && b0 <= 0xF4:
			width = 4
		default:
			// Stray continuation byte, overlong prefix (C0/C1), or
			// out-of-range prefix (F5..FF).
			return i, 1, false
		}

		if i+1 >= n {
			return i, 0, false
		}
		if !secondByteOK(b0, b[i+1]) {
			return i, 1, false
		}

		for k := 2; k < width; k++ {
			if i+k >= n {
				return i, 0, false
			}
			if b[i+k]&contMask != contPattern {
				return i, k, false
			}
		}

		i += width
	}

	return n, 0, true
}

// Valid reports whether b is entirely valid UTF-8.
func Valid(b []byte) bool {
	_, _, ok := Validate(b)
	return ok
}

// secondByteOK checks the restricted ranges of the second byte, which
// rule out overlong encodings, surrogates, and values above U+10FFFF.
func secondByteOK(b0, b1 byte) bool {
	switch {
	case b0 == 0xE0:
		return b1 >= 0xA0 && b1 <= 0xBF
	case b0 == 0xED:
		return b1 >= 0x80 && b1 <= 0x9F
	case b0 == 0xF0:
		return b1 >= 0x90 && b1 <= 0xBF
	case b0 == 0xF4:
		return b1 >= 0x80 && b1 <= 0x8F
	default:
		return b1&contMask == contPattern
	}
}

// ValidRune reports whether r can be legally encoded: a Unicode scalar
// value, i.e. in range and not a surrogate.
func ValidRune(r rune) bool {
	if r < 0 || r > maxRune {
		return false
	}
	return r < surrMin || r > surrMax
}

// RuneLen returns the number of bytes needed to encode r, or -1 if r is
// not a valid Unicode scalar value.
func RuneLen(r rune) int {
	switch {
	case !ValidRune(r):
		return -1
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}

// AppendRune appends the UTF-8 encoding of r to p. Invalid runes are
// encoded as RuneError, matching unicode/utf8.AppendRune.
func AppendRune(p []byte, r rune) []byte {
	if !ValidRune(r) {
		r = RuneError
	}
	switch {
	case r < 0x80:
		return append(p, byte(r))
	case r < 0x800:
		return append(p,
			0xC0|byte(r>>6),
			contPattern|byte(r)&0x3F)
	case r < 0x10000:
		return append(p,
			0xE0|byte(r>>12),
			contPattern|byte(r>>6)&0x3F,
			contPattern|byte(r)&0x3F)
	default:
		return append(p,
			0xF0|byte(r>>18),
			contPattern|byte(r>>12)&0x3F,
			contPattern|byte(r>>6)&0x3F,
			contPattern|byte(r)&0x3F)
	}
}

// DecodeRune decodes the first rune in b and returns its byte width.
// b must be non-empty, already-validated UTF-8; callers hold that
// guarantee through the fixedstring invariants.
func DecodeRune(b []byte) (rune, int) {
	b0 := b[0]
	switch {
	case b0 < 0x80:
		return rune(b0), 1
	case b0 < 0xE0:
		return rune(b0&0x1F)<<6 | rune(b[1]&0x3F), 2
	case b0 < 0xF0:
		return rune(b0&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F), 3
	default:
		return rune(b0&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F), 4
	}
}
