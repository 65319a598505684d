package ndarray

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Copy returns a dense C-contiguous copy with the same dtype.
func (a *Array) Copy() *Array {
	out, err := Empty(a.shape, a.dtype)
	if err != nil {
		exceptions.Panicf("copy: %+v", err)
	}
	mustAssign(out, a)
	return out
}

// AsType returns a dense copy converted to dtype. See FloatStorer for the conversion rules.
func (a *Array) AsType(dtype DataType) (*Array, error) {
	out, err := Empty(a.shape, dtype)
	if err != nil {
		return nil, err
	}
	mustAssign(out, a)
	return out, nil
}

// Assign copies src into dst, broadcasting src to dst's shape and converting dtypes.
// dst may be any strided view; writes go through its strides.
func Assign(dst, src *Array) error {
	shape, err := BroadcastShapes(dst.shape, src.shape)
	if err != nil {
		return err
	}
	if !shape.Equal(dst.shape) {
		return errors.Wrapf(ErrShape, "could not broadcast input array from shape %s into shape %s", src.shape, dst.shape)
	}
	if SharesBuffer(dst, src) {
		src = src.Copy()
		defer src.Release()
	}
	mustAssign(dst, src)
	return nil
}

func mustAssign(dst, src *Array) {
	srcIt := BroadcastIterator(src, dst.shape)
	dstIt := NewIterator(dst.shape, dst.strides, dst.offset)
	if dst.dtype == src.dtype {
		switch dst.dtype {
		case Bool:
			assignSame[bool](dst, src, dstIt, srcIt)
		case Int8:
			assignSame[int8](dst, src, dstIt, srcIt)
		case Int16:
			assignSame[int16](dst, src, dstIt, srcIt)
		case Int32:
			assignSame[int32](dst, src, dstIt, srcIt)
		case Int64:
			assignSame[int64](dst, src, dstIt, srcIt)
		case Uint8:
			assignSame[uint8](dst, src, dstIt, srcIt)
		case Uint16:
			assignSame[uint16](dst, src, dstIt, srcIt)
		case Uint32:
			assignSame[uint32](dst, src, dstIt, srcIt)
		case Uint64:
			assignSame[uint64](dst, src, dstIt, srcIt)
		case Float32:
			assignSame[float32](dst, src, dstIt, srcIt)
		case Float64:
			assignSame[float64](dst, src, dstIt, srcIt)
		default:
			exceptions.Panicf("assign: unsupported dtype %s", dst.dtype)
		}
		return
	}

	if dst.dtype.IsFloat() || src.dtype.IsFloat() {
		load, store := src.FloatLoader(), dst.FloatStorer()
		for d, ok := dstIt.Next(); ok; d, ok = dstIt.Next() {
			s, _ := srcIt.Next()
			store(d, load(s))
		}
		return
	}
	load, store := src.IntLoader(), dst.IntStorer()
	for d, ok := dstIt.Next(); ok; d, ok = dstIt.Next() {
		s, _ := srcIt.Next()
		store(d, load(s))
	}
}

func assignSame[T Element](dst, src *Array, dstIt, srcIt *Iterator) {
	out := bufferSlice[T](dst.buf)
	in := bufferSlice[T](src.buf)
	for d, ok := dstIt.Next(); ok; d, ok = dstIt.Next() {
		s, _ := srcIt.Next()
		out[d] = in[s]
	}
}
