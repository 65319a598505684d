package random

import (
	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// RandomState is a seedable generator. Every draw advances its state, so two states
// created with the same seed produce the same streams when called in the same order.
//
// A RandomState is not safe for concurrent use; give each goroutine its own instance or
// use the package-level functions, which serialize access to a shared one.
type RandomState struct {
	mt       mt19937
	hasGauss bool
	gauss    float64
}

// NewRandomState creates a generator seeded with seed.
func NewRandomState(seed uint32) *RandomState {
	rs := &RandomState{}
	rs.Seed(seed)
	return rs
}

// Seed resets the generator to the start of the stream for seed, dropping any cached
// normal deviate.
func (rs *RandomState) Seed(seed uint32) {
	rs.mt.seed(seed)
	rs.hasGauss = false
	rs.gauss = 0
}

// Float64 returns a uniform float64 in [0, 1).
func (rs *RandomState) Float64() float64 {
	return rs.mt.float64()
}

// Uint32 returns the next raw 32-bit output of the generator.
func (rs *RandomState) Uint32() uint32 {
	return rs.mt.uint32()
}

// fill allocates a C-contiguous array of the given dtype and shape and stores draw()
// into each element in order.
func fill(dtype ndarray.DataType, size []int, draw func() float64) (*ndarray.Array, error) {
	out, err := ndarray.Empty(ndarray.Shape(size).Clone(), dtype)
	if err != nil {
		return nil, err
	}
	switch dtype {
	case ndarray.Float64:
		data := ndarray.Data[float64](out)
		for i := range data {
			data[i] = draw()
		}
	case ndarray.Float32:
		data := ndarray.Data[float32](out)
		for i := range data {
			data[i] = float32(draw())
		}
	default:
		out.Release()
		return nil, errors.Wrapf(ndarray.ErrDType, "random floats must be float32 or float64, got %s", dtype)
	}
	return out, nil
}

// RandomSample returns a float64 array of the given shape with uniform values in [0, 1).
// Without a size the result is a rank-0 array.
func (rs *RandomState) RandomSample(size ...int) (*ndarray.Array, error) {
	return fill(ndarray.Float64, size, rs.mt.float64)
}

// Rand is RandomSample.
func (rs *RandomState) Rand(size ...int) (*ndarray.Array, error) {
	return rs.RandomSample(size...)
}

// RandomSampleAs is RandomSample with a float32 or float64 result. Float32 values are
// drawn with 24 random bits from one 32-bit output each.
func (rs *RandomState) RandomSampleAs(dtype ndarray.DataType, size ...int) (*ndarray.Array, error) {
	if dtype == ndarray.Float32 {
		return fill(dtype, size, func() float64 { return float64(rs.mt.float32()) })
	}
	return fill(dtype, size, rs.mt.float64)
}

// Uniform returns values drawn uniformly from [low, high).
func (rs *RandomState) Uniform(low, high float64, size ...int) (*ndarray.Array, error) {
	span := high - low
	return fill(ndarray.Float64, size, func() float64 { return low + span*rs.mt.float64() })
}
