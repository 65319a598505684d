// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Array is a strided view over a shared, reference-counted buffer.
type Array = ndarray.Array

// Element is a constraint for the Go types that map onto a DataType.
type Element = ndarray.Element

// Number is Element without bool.
type Number = ndarray.Number

// DataType represents the element type of an array.
type DataType = ndarray.DataType

// Data type constants.
const (
	Bool    DataType = ndarray.Bool
	Int8    DataType = ndarray.Int8
	Int16   DataType = ndarray.Int16
	Int32   DataType = ndarray.Int32
	Int64   DataType = ndarray.Int64
	Uint8   DataType = ndarray.Uint8
	Uint16  DataType = ndarray.Uint16
	Uint32  DataType = ndarray.Uint32
	Uint64  DataType = ndarray.Uint64
	Float32 DataType = ndarray.Float32
	Float64 DataType = ndarray.Float64
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} is a 3-D array with dimensions 2×3×4; Shape{} is a scalar.
type Shape = ndarray.Shape

// SliceSpec selects a range along one dimension with Python slice semantics.
type SliceSpec = ndarray.SliceSpec

// Iterator walks the C-order buffer positions of a strided view.
type Iterator = ndarray.Iterator

// AllNaNError lists the all-NaN slices found by NanArgmin or NanArgmax.
type AllNaNError = ndarray.AllNaNError

// Error sentinels, matched with errors.Is.
var (
	ErrShape         = ndarray.ErrShape
	ErrNonContiguous = ndarray.ErrNonContiguous
	ErrOutOfBounds   = ndarray.ErrOutOfBounds
	ErrAllNaN        = ndarray.ErrAllNaN
	ErrRange         = ndarray.ErrRange
	ErrDType         = ndarray.ErrDType
	ErrIndex         = ndarray.ErrIndex
	ErrValue         = ndarray.ErrValue
)

// S returns the slice start:stop:step.
func S(start, stop, step int) SliceSpec { return ndarray.S(start, stop, step) }

// All returns the slice ":".
func All() SliceSpec { return ndarray.All() }

// Step returns the slice "::step".
func Step(step int) SliceSpec { return ndarray.Step(step) }

// From returns the slice "start::step".
func From(start, step int) SliceSpec { return ndarray.From(start, step) }

// To returns the slice ":stop:step".
func To(stop, step int) SliceSpec { return ndarray.To(stop, step) }

// ParseDataType returns the DataType named name ("int16", "float64", ...).
func ParseDataType(name string) (DataType, error) { return ndarray.ParseDataType(name) }

// ResultType returns the dtype two or more operands promote to.
func ResultType(dtypes ...DataType) (DataType, error) { return ndarray.ResultType(dtypes...) }

// FloatResultType is ResultType for real-valued functions: integers and bool promote to Float64.
func FloatResultType(dtypes ...DataType) (DataType, error) {
	return ndarray.FloatResultType(dtypes...)
}

// BroadcastShapes returns the shape all shapes broadcast to, or an error wrapping ErrShape.
func BroadcastShapes(shapes ...Shape) (Shape, error) { return ndarray.BroadcastShapes(shapes...) }

// Empty allocates a zero-filled C-contiguous array.
func Empty(shape Shape, dtype DataType) (*Array, error) { return ndarray.Empty(shape, dtype) }

// Zeros allocates an array of zeros.
func Zeros(shape Shape, dtype DataType) (*Array, error) { return ndarray.Zeros(shape, dtype) }

// Full allocates an array with every element set to value.
func Full(shape Shape, dtype DataType, value float64) (*Array, error) {
	return ndarray.Full(shape, dtype, value)
}

// ZerosLike allocates zeros with a's shape and the given dtype.
func ZerosLike(a *Array, dtype DataType) (*Array, error) { return ndarray.ZerosLike(a, dtype) }

// FullLike allocates an array with a's shape and dtype filled with value.
func FullLike(a *Array, value float64) (*Array, error) { return ndarray.FullLike(a, value) }

// Scalar returns a rank-0 array holding v converted to dtype.
func Scalar(v float64, dtype DataType) *Array { return ndarray.Scalar(v, dtype) }

// FromSlice wraps a copy of data in an array of the given shape (1-D when shape is omitted).
func FromSlice[T Element](data []T, shape ...int) (*Array, error) {
	return ndarray.FromSlice(data, shape...)
}

// FromNested builds an array from nested Go slices such as [][]float64.
func FromNested(v any) (*Array, error) { return ndarray.FromNested(v) }

// Arange returns evenly spaced values in [start, stop).
func Arange(start, stop, step float64, dtype DataType) (*Array, error) {
	return ndarray.Arange(start, stop, step, dtype)
}

// Linspace returns num evenly spaced float64 values over [start, stop].
func Linspace(start, stop float64, num int) (*Array, error) {
	return ndarray.Linspace(start, stop, num)
}

// Assign copies src into dst, broadcasting and converting as needed.
func Assign(dst, src *Array) error { return ndarray.Assign(dst, src) }

// SharesBuffer reports whether a and b view the same buffer.
func SharesBuffer(a, b *Array) bool { return ndarray.SharesBuffer(a, b) }

// Data returns a's whole buffer as []T. T must match a.DType().
func Data[T Element](a *Array) []T { return ndarray.Data[T](a) }

// ContiguousData returns the elements of a C-contiguous view as []T without copying.
func ContiguousData[T Element](a *Array) ([]T, error) { return ndarray.ContiguousData[T](a) }
