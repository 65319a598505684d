// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

// Backend defines the operations a compute backend provides on arrays.
//
// Implementations:
//   - backend/cpu: Pure Go, parallel over elements and reduction slices
//
// Example:
//
//	backend := cpu.New()
//	a, _ := ndarray.Arange(0, 10, 1, ndarray.Int16)
//	mask, _ := backend.Greater(a, ndarray.Scalar(2, ndarray.Int16))
//	out, _ := ndarray.Full(a.Shape(), ndarray.Float64, -1)
//	_, _ = backend.Sin(a, ndarray.Where(mask), ndarray.Out(out))
type Backend interface {
	// Name returns the backend name.
	Name() string

	// Element-wise real functions. Integer and bool inputs compute in float64.
	Sin(x *Array, opts ...OpOption) (*Array, error)
	Cos(x *Array, opts ...OpOption) (*Array, error)
	Tan(x *Array, opts ...OpOption) (*Array, error)
	Arcsin(x *Array, opts ...OpOption) (*Array, error)
	Arccos(x *Array, opts ...OpOption) (*Array, error)
	Arctan(x *Array, opts ...OpOption) (*Array, error)
	Sinh(x *Array, opts ...OpOption) (*Array, error)
	Cosh(x *Array, opts ...OpOption) (*Array, error)
	Tanh(x *Array, opts ...OpOption) (*Array, error)
	Exp(x *Array, opts ...OpOption) (*Array, error)
	Log(x *Array, opts ...OpOption) (*Array, error)
	Sqrt(x *Array, opts ...OpOption) (*Array, error)
	Deg2Rad(x *Array, opts ...OpOption) (*Array, error)
	Rad2Deg(x *Array, opts ...OpOption) (*Array, error)
	Arctan2(y, x *Array, opts ...OpOption) (*Array, error)
	Hypot(x, y *Array, opts ...OpOption) (*Array, error)

	// Comparisons (element-wise, Bool result).
	Greater(x, y *Array, opts ...OpOption) (*Array, error)      // x > y.
	GreaterEqual(x, y *Array, opts ...OpOption) (*Array, error) // x >= y.
	Less(x, y *Array, opts ...OpOption) (*Array, error)         // x < y.
	LessEqual(x, y *Array, opts ...OpOption) (*Array, error)    // x <= y.
	Equal(x, y *Array, opts ...OpOption) (*Array, error)        // x == y.
	NotEqual(x, y *Array, opts ...OpOption) (*Array, error)     // x != y.

	// Type conversion.
	Cast(x *Array, dtype DataType) (*Array, error)

	// Reductions, over all elements or along Axis(k).
	Min(x *Array, opts ...OpOption) (*Array, error)
	Amin(x *Array, opts ...OpOption) (*Array, error)
	Max(x *Array, opts ...OpOption) (*Array, error)
	Amax(x *Array, opts ...OpOption) (*Array, error)
	Argmin(x *Array, opts ...OpOption) (*Array, error)
	Argmax(x *Array, opts ...OpOption) (*Array, error)
	NanMin(x *Array, opts ...OpOption) (*Array, error)
	NanMax(x *Array, opts ...OpOption) (*Array, error)
	NanArgmin(x *Array, opts ...OpOption) (*Array, error)
	NanArgmax(x *Array, opts ...OpOption) (*Array, error)
	Sum(x *Array, opts ...OpOption) (*Array, error)
	Mean(x *Array, opts ...OpOption) (*Array, error)
	Ptp(x *Array, opts ...OpOption) (*Array, error)
	Bincount(x, weights *Array, minLength int) (*Array, error)
}
