package ndarray

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Error classes. Callers match them with errors.Is; concrete errors wrap one of these.
var (
	// ErrShape reports incompatible broadcast shapes or a reshape that changes the element count.
	ErrShape = errors.New("shape error")

	// ErrNonContiguous reports a reshape that the existing strides cannot express without a copy.
	// It is a shape error: errors.Is(err, ErrShape) also matches.
	ErrNonContiguous = errors.WithMessage(ErrShape, "non-contiguous view")

	// ErrOutOfBounds reports an out buffer whose shape differs from the broadcast shape.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrAllNaN reports a NaN-aware arg reduction over a slice with no non-NaN entries.
	ErrAllNaN = errors.New("all-NaN slice encountered")

	// ErrRange reports random-integer bounds that are invalid for the requested dtype.
	ErrRange = errors.New("range error")

	// ErrDType reports a data type an operation does not support.
	ErrDType = errors.New("unsupported data type")

	// ErrIndex reports an axis or index outside the array bounds.
	ErrIndex = errors.New("index error")

	// ErrValue reports an invalid argument value.
	ErrValue = errors.New("value error")
)

// AllNaNError lists the slices of an arg reduction that contained only NaN.
// Slices are flat C-order positions in the reduced output shape.
type AllNaNError struct {
	Op     string
	Slices []int
}

// Error implements error.
func (e *AllNaNError) Error() string {
	parts := make([]string, len(e.Slices))
	for i, s := range e.Slices {
		parts[i] = fmt.Sprint(s)
	}
	return fmt.Sprintf("%s: %s (slices [%s])", e.Op, ErrAllNaN, strings.Join(parts, " "))
}

// Unwrap returns ErrAllNaN so errors.Is(err, ErrAllNaN) matches.
func (e *AllNaNError) Unwrap() error {
	return ErrAllNaN
}
