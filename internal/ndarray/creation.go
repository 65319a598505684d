package ndarray

import (
	"math"
	"reflect"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Zeros creates an array filled with zeros.
func Zeros(shape Shape, dtype DataType) (*Array, error) {
	return Empty(shape, dtype)
}

// Full creates an array filled with value, converted to dtype.
func Full(shape Shape, dtype DataType, value float64) (*Array, error) {
	a, err := Empty(shape, dtype)
	if err != nil {
		return nil, err
	}
	store := a.FloatStorer()
	for i := 0; i < a.buf.length; i++ {
		store(i, value)
	}
	return a, nil
}

// ZerosLike creates a zero array with a's shape and the given dtype.
func ZerosLike(a *Array, dtype DataType) (*Array, error) {
	return Empty(a.shape, dtype)
}

// FullLike creates an array with a's shape and dtype, filled with value.
func FullLike(a *Array, value float64) (*Array, error) {
	return Full(a.shape, a.dtype, value)
}

// Scalar creates a rank-0 array holding v converted to dtype.
func Scalar(v float64, dtype DataType) *Array {
	a, err := Full(Shape{}, dtype, v)
	if err != nil {
		exceptions.Panicf("scalar: %+v", err)
	}
	return a
}

// FromSlice creates an array from a Go slice. The data is copied.
// Without a shape the array is 1-D.
//
// Example:
//
//	a, _ := ndarray.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
func FromSlice[T Element](data []T, shape ...int) (*Array, error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	s := Shape(shape)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.NumElements() != len(data) {
		return nil, errors.Wrapf(ErrShape, "shape %s requires %d elements, but got %d", s, s.NumElements(), len(data))
	}
	a, err := Empty(s, DataTypeOf[T]())
	if err != nil {
		return nil, err
	}
	copy(bufferSlice[T](a.buf), data)
	return a, nil
}

// FromNested creates an array from a literal nested sequence such as [][]float64{{1, 2}, {3, 4}}.
// Sub-sequences must be rectangular. Go int and uint map to Int64 and Uint64.
func FromNested(v any) (*Array, error) {
	rv := reflect.ValueOf(v)
	var shape Shape
	elem := rv
	for elem.Kind() == reflect.Slice || elem.Kind() == reflect.Array {
		shape = append(shape, elem.Len())
		if elem.Len() == 0 {
			break
		}
		elem = elem.Index(0)
	}
	kind := elem.Kind()
	if elem.Kind() == reflect.Slice || elem.Kind() == reflect.Array {
		kind = elementKind(elem.Type())
	}
	dtype, ok := kindToDataType(kind)
	if !ok {
		return nil, errors.Wrapf(ErrDType, "cannot build an array from elements of kind %s", kind)
	}

	a, err := Empty(shape, dtype)
	if err != nil {
		return nil, err
	}
	flat := make([]reflect.Value, 0, shape.NumElements())
	if err := flattenNested(rv, shape, 0, &flat); err != nil {
		return nil, err
	}
	if dtype.IsFloat() {
		store := a.FloatStorer()
		for i, x := range flat {
			store(i, x.Float())
		}
	} else {
		store := a.IntStorer()
		for i, x := range flat {
			switch {
			case x.Kind() == reflect.Bool:
				if x.Bool() {
					store(i, 1)
				}
			case x.CanUint():
				//nolint:gosec // G115: uint64 values wrap into the Uint64 buffer unchanged.
				store(i, int64(x.Uint()))
			default:
				store(i, x.Int())
			}
		}
	}
	return a, nil
}

func elementKind(t reflect.Type) reflect.Kind {
	for t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}
	return t.Kind()
}

func kindToDataType(k reflect.Kind) (DataType, bool) {
	switch k {
	case reflect.Bool:
		return Bool, true
	case reflect.Int8:
		return Int8, true
	case reflect.Int16:
		return Int16, true
	case reflect.Int32:
		return Int32, true
	case reflect.Int, reflect.Int64:
		return Int64, true
	case reflect.Uint8:
		return Uint8, true
	case reflect.Uint16:
		return Uint16, true
	case reflect.Uint32:
		return Uint32, true
	case reflect.Uint, reflect.Uint64:
		return Uint64, true
	case reflect.Float32:
		return Float32, true
	case reflect.Float64:
		return Float64, true
	}
	return 0, false
}

func flattenNested(v reflect.Value, shape Shape, depth int, flat *[]reflect.Value) error {
	if depth == len(shape) {
		if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
			return errors.Wrap(ErrShape, "nested sequence is deeper than its first element")
		}
		*flat = append(*flat, v)
		return nil
	}
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return errors.Wrapf(ErrShape, "nested sequence is ragged at depth %d", depth)
	}
	if v.Len() != shape[depth] {
		return errors.Wrapf(ErrShape, "nested sequence is ragged at depth %d: length %d, expected %d",
			depth, v.Len(), shape[depth])
	}
	for i := 0; i < v.Len(); i++ {
		if err := flattenNested(v.Index(i), shape, depth+1, flat); err != nil {
			return err
		}
	}
	return nil
}

// Arange creates a 1-D array with values start, start+step, ... up to stop (exclusive).
//
// Example:
//
//	a, _ := ndarray.Arange(0, 10, 2, ndarray.Int16) // [0 2 4 6 8]
func Arange(start, stop, step float64, dtype DataType) (*Array, error) {
	if step == 0 {
		return nil, errors.Wrap(ErrValue, "arange: step cannot be zero")
	}
	if math.IsNaN(start) || math.IsNaN(stop) || math.IsNaN(step) {
		return nil, errors.Wrap(ErrValue, "arange: arguments cannot be NaN")
	}
	n := int(math.Ceil((stop - start) / step))
	n = max(n, 0)
	a, err := Empty(Shape{n}, dtype)
	if err != nil {
		return nil, err
	}
	store := a.FloatStorer()
	for i := 0; i < n; i++ {
		store(i, start+float64(i)*step)
	}
	return a, nil
}

// Linspace creates num evenly spaced Float64 values over [start, stop], both ends included.
func Linspace(start, stop float64, num int) (*Array, error) {
	if num < 0 {
		return nil, errors.Wrapf(ErrValue, "linspace: number of samples, %d, must be non-negative", num)
	}
	a, err := Empty(Shape{num}, Float64)
	if err != nil {
		return nil, err
	}
	data := bufferSlice[float64](a.buf)
	if num == 1 {
		data[0] = start
		return a, nil
	}
	step := (stop - start) / float64(num-1)
	for i := range data {
		data[i] = start + float64(i)*step
	}
	if num > 1 {
		data[num-1] = stop
	}
	return a, nil
}
