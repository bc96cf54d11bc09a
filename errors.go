package gradient

import "errors"

// Normalization errors.
var (
	// ErrNoColors is returned when the color list is empty.
	ErrNoColors = errors.New("gradient: no colors")

	// ErrStopCountMismatch is returned when stops are given but their count
	// differs from the color count.
	ErrStopCountMismatch = errors.New("gradient: stop count does not match color count")

	// ErrImplicitStops is returned when stops are omitted and the color count
	// is not exactly two.
	ErrImplicitStops = errors.New("gradient: implicit stops require exactly two colors")

	// ErrStopOutOfRange is returned in strict mode for a stop outside [0, 1].
	ErrStopOutOfRange = errors.New("gradient: stop out of range [0, 1]")

	// ErrStopsNotSorted is returned in strict mode for a decreasing stop.
	ErrStopsNotSorted = errors.New("gradient: stops not sorted")

	// ErrZeroWidthSegment is returned in strict mode when two adjacent
	// effective stops are equal.
	ErrZeroWidthSegment = errors.New("gradient: zero-width segment")
)

// ErrProgramMismatch is returned when a gradient is uploaded to a program
// generated for a different segment count.
var ErrProgramMismatch = errors.New("gradient: segment count does not match program")
