package pattern

import "github.com/pkg/errors"

var (
	// ErrMalformedHeader is returned when an RLE input has no parsable
	// `x = <int>, y = <int>` header line.
	ErrMalformedHeader = errors.New("malformed RLE header")

	// ErrMalformedBody is returned for unrecognized RLE tags, dangling run
	// counts, and live cells that escape the declared bounding box.
	ErrMalformedBody = errors.New("malformed RLE body")

	// ErrMalformedJSON is returned for JSON syntax errors and documents
	// that do not match the pattern schema.
	ErrMalformedJSON = errors.New("malformed JSON pattern")

	// ErrInvalidCoordinate is returned when a JSON cell entry holds a
	// missing, negative, or non-integer row/col value.
	ErrInvalidCoordinate = errors.New("invalid pattern coordinate")
)
