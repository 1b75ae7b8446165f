package huffman

import "errors"

var (
	// ErrEmptyInput indicates that there are no symbols to encode.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrMalformedStream indicates a corrupt or truncated compressed
	// stream, or one that does not match its code table.
	ErrMalformedStream = errors.New("huffman: malformed stream")

	// ErrInvalidCodeTable indicates a caller supplied mapping that is not a
	// prefix code over single bytes.
	ErrInvalidCodeTable = errors.New("huffman: invalid code table")

	// ErrInputNotClosed is returned by the stream readers when the
	// matching writer has not been closed yet.
	ErrInputNotClosed = errors.New("huffman: input buffer not closed")
)

// ErrUnsupportedVersion indicates an unknown padding/format version.
var ErrUnsupportedVersion = errors.New("huffman: unsupported format version")
