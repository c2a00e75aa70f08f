package seed

import "github.com/pkg/errors"

var (
	// ErrMissingDimensions is returned when random seeding is requested
	// without explicit grid dimensions.
	ErrMissingDimensions = errors.New("random seeding requires explicit grid dimensions")

	// ErrInvalidProbability is returned when a density lies outside [0,1].
	ErrInvalidProbability = errors.New("density must be within [0,1]")

	// ErrFileRead is returned when a pattern file cannot be read; the
	// underlying I/O error is carried in the message.
	ErrFileRead = errors.New("pattern file read failed")

	// ErrPatternTooLarge is returned when a pattern's live cells do not
	// fit the grid even after dimension resolution.
	ErrPatternTooLarge = errors.New("pattern does not fit the resolved grid")

	// ErrInvalidSource is returned for a Source that selects no seeding
	// mode, i.e. one not built by Random, FromRLE, or FromJSON.
	ErrInvalidSource = errors.New("seed source must select exactly one mode")
)
