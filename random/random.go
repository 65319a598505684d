// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package random provides seedable random arrays whose streams match NumPy's legacy
// RandomState for the same seed.
//
// Example:
//
//	rs := random.NewRandomState(0)
//	x, _ := rs.Rand(3)                              // [0.5488135 0.71518937 0.60276338]
//	i, _ := rs.Randint(2, 5, ndarray.Int32, 10)     // values in {2, 3, 4}
//	b, _ := rs.Beta(ndarray.Scalar(2, ndarray.Float64), ndarray.Scalar(5, ndarray.Float64), 100)
//
// The package-level functions draw from a process-wide state that is safe for concurrent
// use; a RandomState is not.
package random

import (
	"github.com/born-ml/ndarray/internal/random"
	"github.com/born-ml/ndarray/ndarray"
)

// RandomState is a seedable generator with NumPy-compatible streams.
type RandomState = random.RandomState

// NewRandomState creates a generator seeded with seed.
func NewRandomState(seed uint32) *RandomState { return random.NewRandomState(seed) }

// Seed reseeds the process-wide state.
func Seed(seed uint32) { random.Seed(seed) }

// Float64 returns a uniform value in [0, 1) from the process-wide state.
func Float64() float64 { return random.Float64() }

// NormFloat64 returns a standard normal value from the process-wide state.
func NormFloat64() float64 { return random.NormFloat64() }

// Rand returns uniform float64 values in [0, 1).
func Rand(size ...int) (*ndarray.Array, error) { return random.Rand(size...) }

// RandomSample is Rand.
func RandomSample(size ...int) (*ndarray.Array, error) { return random.RandomSample(size...) }

// Randn returns standard normal float64 values.
func Randn(size ...int) (*ndarray.Array, error) { return random.Randn(size...) }

// StandardNormal is Randn.
func StandardNormal(size ...int) (*ndarray.Array, error) { return random.StandardNormal(size...) }

// Uniform returns values drawn uniformly from [low, high).
func Uniform(low, high float64, size ...int) (*ndarray.Array, error) {
	return random.Uniform(low, high, size...)
}

// Normal returns normal values with mean loc and standard deviation scale.
func Normal(loc, scale float64, size ...int) (*ndarray.Array, error) {
	return random.Normal(loc, scale, size...)
}

// Randint returns integers drawn uniformly from [low, high) as dtype.
func Randint(low, high int64, dtype ndarray.DataType, size ...int) (*ndarray.Array, error) {
	return random.Randint(low, high, dtype, size...)
}

// StandardGamma returns Gamma(shape, 1) values.
func StandardGamma(shape float64, size ...int) (*ndarray.Array, error) {
	return random.StandardGamma(shape, size...)
}

// Beta returns Beta(a, b) values in (0, 1), a and b broadcasting against each other.
func Beta(a, b *ndarray.Array, size ...int) (*ndarray.Array, error) {
	return random.Beta(a, b, size...)
}
