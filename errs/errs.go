// Package errs defines the sentinel errors returned across colvec's
// encode and decode paths. Callers should compare with errors.Is rather
// than string matching: the decode paths return these sentinels as they
// are, while builder.Build and compress.GetCodec wrap one with additional
// context via fmt.Errorf("%w: ...").
package errs

import "errors"

var (
	// ErrMalformedHeader is returned when the 4-byte wire header carries an
	// unrecognized major/sub type code, or the buffer is too short to hold one.
	ErrMalformedHeader = errors.New("colvec: malformed header")

	// ErrTruncatedPayload is returned when a table field, vector, or
	// bit-packed region would read past the end of the supplied buffer.
	ErrTruncatedPayload = errors.New("colvec: truncated payload")

	// ErrUnsupportedNBits is returned when a SimplePrimitiveVector declares
	// an nbits value outside the fixed set {1, 8, 16, 32, 64}.
	ErrUnsupportedNBits = errors.New("colvec: unsupported nbits")

	// ErrLengthMismatch is returned when a string vector's declared length
	// differs from the number of entries its data vector holds. A codes
	// region too short for the declared length is ErrTruncatedPayload.
	ErrLengthMismatch = errors.New("colvec: length mismatch")

	// ErrTypeMismatch is returned when the column-handle registry has no
	// maker registered for the requested element type.
	ErrTypeMismatch = errors.New("colvec: no column handle maker for type")

	// ErrNotUTF8 is returned at encode time when a string column contains
	// a value that is not valid UTF-8.
	ErrNotUTF8 = errors.New("colvec: value is not valid UTF-8")

	// ErrColumnCountMismatch is returned when a row presented to the
	// builder carries a different number of columns than the schema.
	ErrColumnCountMismatch = errors.New("colvec: row column count does not match schema")

	// ErrUnknownCompression is returned by compress.GetCodec, and so by
	// string encoding, for a compression type colvec does not implement.
	// A decoded string vector whose codec slot names such a type is read
	// as uncompressed bytes.
	ErrUnknownCompression = errors.New("colvec: unknown compression type")

	// ErrStringTooLarge is returned when encoding a string longer than the
	// table layout's length-prefix field can represent.
	ErrStringTooLarge = errors.New("colvec: string exceeds maximum encodable length")
)
