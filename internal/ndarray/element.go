package ndarray

import (
	"math"

	"github.com/gomlx/exceptions"
	"golang.org/x/exp/constraints"
)

// Number is the constraint for the numeric element types (every Element except bool).
type Number interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// Element access tables. Every kernel that must work across the whole dtype set reads
// and writes through these closures, one switch per array instead of one per element.
// Indices are buffer positions (offset and strides already applied).

// FloatLoader returns a function reading buffer element i as float64.
func (a *Array) FloatLoader() func(i int) float64 {
	switch a.dtype {
	case Bool:
		s := bufferSlice[bool](a.buf)
		return func(i int) float64 {
			if s[i] {
				return 1
			}
			return 0
		}
	case Int8:
		return loadFloat(bufferSlice[int8](a.buf))
	case Int16:
		return loadFloat(bufferSlice[int16](a.buf))
	case Int32:
		return loadFloat(bufferSlice[int32](a.buf))
	case Int64:
		return loadFloat(bufferSlice[int64](a.buf))
	case Uint8:
		return loadFloat(bufferSlice[uint8](a.buf))
	case Uint16:
		return loadFloat(bufferSlice[uint16](a.buf))
	case Uint32:
		return loadFloat(bufferSlice[uint32](a.buf))
	case Uint64:
		return loadFloat(bufferSlice[uint64](a.buf))
	case Float32:
		return loadFloat(bufferSlice[float32](a.buf))
	case Float64:
		return loadFloat(bufferSlice[float64](a.buf))
	}
	exceptions.Panicf("FloatLoader: unsupported dtype %s", a.dtype)
	return nil
}

// FloatStorer returns a function writing a float64 into buffer element i.
//
// Conversion to integer types truncates toward zero, maps NaN to 0 and saturates
// at the type bounds. Conversion to bool is v != 0.
func (a *Array) FloatStorer() func(i int, v float64) {
	switch a.dtype {
	case Bool:
		s := bufferSlice[bool](a.buf)
		return func(i int, v float64) { s[i] = v != 0 }
	case Int8:
		return storeFloatInt(bufferSlice[int8](a.buf), math.MinInt8, math.MaxInt8)
	case Int16:
		return storeFloatInt(bufferSlice[int16](a.buf), math.MinInt16, math.MaxInt16)
	case Int32:
		return storeFloatInt(bufferSlice[int32](a.buf), math.MinInt32, math.MaxInt32)
	case Int64:
		return storeFloatInt(bufferSlice[int64](a.buf), math.MinInt64, math.MaxInt64)
	case Uint8:
		return storeFloatInt(bufferSlice[uint8](a.buf), 0, math.MaxUint8)
	case Uint16:
		return storeFloatInt(bufferSlice[uint16](a.buf), 0, math.MaxUint16)
	case Uint32:
		return storeFloatInt(bufferSlice[uint32](a.buf), 0, math.MaxUint32)
	case Uint64:
		return storeFloatInt(bufferSlice[uint64](a.buf), 0, math.MaxUint64)
	case Float32:
		s := bufferSlice[float32](a.buf)
		return func(i int, v float64) { s[i] = float32(v) }
	case Float64:
		s := bufferSlice[float64](a.buf)
		return func(i int, v float64) { s[i] = v }
	}
	exceptions.Panicf("FloatStorer: unsupported dtype %s", a.dtype)
	return nil
}

// IntLoader returns a function reading buffer element i as int64.
// Uint64 values above math.MaxInt64 wrap; floats truncate toward zero.
func (a *Array) IntLoader() func(i int) int64 {
	switch a.dtype {
	case Bool:
		s := bufferSlice[bool](a.buf)
		return func(i int) int64 {
			if s[i] {
				return 1
			}
			return 0
		}
	case Int8:
		return loadInt(bufferSlice[int8](a.buf))
	case Int16:
		return loadInt(bufferSlice[int16](a.buf))
	case Int32:
		return loadInt(bufferSlice[int32](a.buf))
	case Int64:
		return loadInt(bufferSlice[int64](a.buf))
	case Uint8:
		return loadInt(bufferSlice[uint8](a.buf))
	case Uint16:
		return loadInt(bufferSlice[uint16](a.buf))
	case Uint32:
		return loadInt(bufferSlice[uint32](a.buf))
	case Uint64:
		return loadInt(bufferSlice[uint64](a.buf))
	case Float32, Float64:
		load := a.FloatLoader()
		return func(i int) int64 {
			v := load(i)
			if v != v {
				return 0
			}
			return int64(v)
		}
	}
	exceptions.Panicf("IntLoader: unsupported dtype %s", a.dtype)
	return nil
}

// IntStorer returns a function writing an int64 into buffer element i.
// Narrower integer types wrap, as a C cast would.
func (a *Array) IntStorer() func(i int, v int64) {
	switch a.dtype {
	case Bool:
		s := bufferSlice[bool](a.buf)
		return func(i int, v int64) { s[i] = v != 0 }
	case Int8:
		return storeInt(bufferSlice[int8](a.buf))
	case Int16:
		return storeInt(bufferSlice[int16](a.buf))
	case Int32:
		return storeInt(bufferSlice[int32](a.buf))
	case Int64:
		return storeInt(bufferSlice[int64](a.buf))
	case Uint8:
		return storeInt(bufferSlice[uint8](a.buf))
	case Uint16:
		return storeInt(bufferSlice[uint16](a.buf))
	case Uint32:
		return storeInt(bufferSlice[uint32](a.buf))
	case Uint64:
		return storeInt(bufferSlice[uint64](a.buf))
	case Float32:
		s := bufferSlice[float32](a.buf)
		return func(i int, v int64) { s[i] = float32(v) }
	case Float64:
		s := bufferSlice[float64](a.buf)
		return func(i int, v int64) { s[i] = float64(v) }
	}
	exceptions.Panicf("IntStorer: unsupported dtype %s", a.dtype)
	return nil
}

func loadFloat[T Number](s []T) func(int) float64 {
	return func(i int) float64 { return float64(s[i]) }
}

func loadInt[T constraints.Integer](s []T) func(int) int64 {
	//nolint:gosec // G115: wrap-around for uint64 is the documented behavior.
	return func(i int) int64 { return int64(s[i]) }
}

func storeInt[T constraints.Integer](s []T) func(int, int64) {
	//nolint:gosec // G115: wrap-around is the documented behavior.
	return func(i int, v int64) { s[i] = T(v) }
}

func storeFloatInt[T constraints.Integer](s []T, lo, hi T) func(int, float64) {
	flo, fhi := float64(lo), float64(hi)
	return func(i int, v float64) {
		switch {
		case v != v:
			s[i] = 0
		case v <= flo:
			s[i] = lo
		case v >= fhi:
			s[i] = hi
		default:
			s[i] = T(v)
		}
	}
}
