// Package errors provides the error types reported by the fixedstring library.
//
// Construction and decoding are the only fallible operations, and they fail
// in exactly three ways:
//
//   - LengthError: content would exceed the fixed capacity
//   - UTF8Error: content is not valid UTF-8
//   - DecodeError: a wire-format decode failed; wraps one of the above or
//     an underlying transport error, with the input offset of the failure
//
// All types implement the standard error interface and compose with
// errors.Is/As; DecodeError additionally implements Unwrap so the wrapped
// cause can be matched:
//
//	var lenErr *errors.LengthError
//	if stderrors.As(err, &lenErr) {
//	    // lenErr.Len bytes attempted, lenErr.Cap available
//	}
package errors
