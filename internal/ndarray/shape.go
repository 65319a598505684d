package ndarray

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the total number of elements: 1 for a scalar, 0 if any dimension is 0.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that every dimension is non-negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return errors.Wrapf(ErrShape, "invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String renders the shape as (2, 3).
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = fmt.Sprint(d)
	}
	if len(s) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ComputeStrides calculates row-major strides, in elements, for the shape.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * max(s[i+1], 1)
	}
	return strides
}

// NormalizeAxis maps a possibly negative axis into [0, rank).
func NormalizeAxis(axis, rank int) (int, error) {
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		return 0, errors.Wrapf(ErrIndex, "axis %d is out of bounds for array of dimension %d", axis, rank)
	}
	return axis, nil
}

// BroadcastShapes implements NumPy-style broadcasting over any number of shapes.
//
// Shapes are aligned on their trailing dimension; missing leading dimensions count as 1,
// and a dimension of size 1 stretches to match the others.
//
// Examples:
//
//	(3, 1) + (3, 5)    → (3, 5)
//	(5,)   + (2, 1, 5) → (2, 1, 5)
//	(3, 4) + (3, 5)    → error
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	rank := 0
	for _, s := range shapes {
		rank = max(rank, len(s))
	}
	result := make(Shape, rank)
	for i := range result {
		result[i] = 1
	}

	for _, s := range shapes {
		pad := rank - len(s)
		for i, dim := range s {
			out := &result[pad+i]
			switch {
			case dim == *out:
			case *out == 1:
				*out = dim
			case dim == 1:
			default:
				return nil, errors.Wrapf(ErrShape, "operands could not be broadcast together with shapes %s",
					joinShapes(shapes))
			}
		}
	}
	return result, nil
}

func joinShapes(shapes []Shape) string {
	parts := make([]string, len(shapes))
	for i, s := range shapes {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}
