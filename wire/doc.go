// Package wire streams fixed-capacity strings over io.Reader/io.Writer
// using the fixedstring wire format: a LEB128 length prefix followed by
// exactly that many bytes of UTF-8 payload.
//
// Encoder and Decoder track absolute positions across values, so failure
// offsets in a multi-value stream point into the whole stream rather than
// a single record:
//
//	d := wire.NewDecoder(bufio.NewReader(conn))
//	for {
//	    s, err := wire.DecodeString[[64]byte](d)
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err // *errors.DecodeError with stream offset
//	    }
//	    handle(s)
//	}
//
// A decoder never reads more payload bytes than the destination capacity
// allows: an oversized length prefix fails before any payload is read.
//
// EncodeString and DecodeString are free functions rather than methods
// because Go methods cannot introduce type parameters.
package wire
