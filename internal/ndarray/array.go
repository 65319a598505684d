package ndarray

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Array is a strided view over a reference-counted buffer.
//
// Several arrays may alias the same buffer (slices, reshapes, transposes); a write through
// one view is visible through all of them. Each view retains the buffer, so the storage
// lives as long as any view over it.
type Array struct {
	buf     *buffer
	shape   Shape
	strides []int    // Element steps per dimension, may be negative or zero.
	offset  int      // Buffer position of the element at index (0, ..., 0).
	dtype   DataType // Always equals buf.dtype.
}

// Empty allocates a new C-contiguous array. Go zeroes memory, so the contents are zero.
func Empty(shape Shape, dtype DataType) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid shape")
	}
	if !dtype.IsValid() {
		return nil, errors.Wrapf(ErrDType, "data type %d", int(dtype))
	}
	return &Array{
		buf:     newBuffer(dtype, shape.NumElements()),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
		dtype:   dtype,
	}, nil
}

// newView creates a view over a's buffer with new geometry and retains the buffer.
func (a *Array) newView(shape Shape, strides []int, offset int) *Array {
	a.buf.addRef()
	return &Array{
		buf:     a.buf,
		shape:   shape,
		strides: strides,
		offset:  offset,
		dtype:   a.dtype,
	}
}

// Shape returns the array's shape. The returned slice must not be modified.
func (a *Array) Shape() Shape {
	return a.shape
}

// Strides returns the array's strides in elements.
func (a *Array) Strides() []int {
	return a.strides
}

// Offset returns the buffer position of the first logical element.
func (a *Array) Offset() int {
	return a.offset
}

// DType returns the element type.
func (a *Array) DType() DataType {
	return a.dtype
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int {
	return len(a.shape)
}

// NumElements returns the number of logical elements of the view.
func (a *Array) NumElements() int {
	return a.shape.NumElements()
}

// ByteSize returns the logical size of the view in bytes.
func (a *Array) ByteSize() int {
	return a.NumElements() * a.dtype.Size()
}

// BufferLen returns the number of elements of the underlying buffer.
func (a *Array) BufferLen() int {
	return a.buf.length
}

// IsContiguous reports whether the view is C-contiguous (row-major, unit inner stride).
func (a *Array) IsContiguous() bool {
	expected := 1
	for i := len(a.shape) - 1; i >= 0; i-- {
		if a.shape[i] == 1 {
			continue
		}
		if a.shape[i] == 0 {
			return true
		}
		if a.strides[i] != expected {
			return false
		}
		expected *= a.shape[i]
	}
	return true
}

// SharesBuffer reports whether a and b are views over the same buffer.
func SharesBuffer(a, b *Array) bool {
	return a != nil && b != nil && a.buf == b.buf
}

// Clone returns a new view with the same geometry; it shares and retains the buffer.
func (a *Array) Clone() *Array {
	return a.newView(a.shape.Clone(), append([]int(nil), a.strides...), a.offset)
}

// Release drops this view's reference on the buffer. The view must not be used afterwards.
func (a *Array) Release() {
	a.buf.release()
}

// IsUnique returns true if this view is the only reference to the buffer.
func (a *Array) IsUnique() bool {
	return a.buf.isUnique()
}

// Index returns the buffer position of the element at the given multi-index.
// Negative indices count from the end of the dimension.
func (a *Array) Index(idx ...int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, errors.Wrapf(ErrIndex, "got %d indices for array of dimension %d", len(idx), len(a.shape))
	}
	pos := a.offset
	for d, i := range idx {
		if i < 0 {
			i += a.shape[d]
		}
		if i < 0 || i >= a.shape[d] {
			return 0, errors.Wrapf(ErrIndex, "index %d is out of bounds for axis %d with size %d", idx[d], d, a.shape[d])
		}
		pos += i * a.strides[d]
	}
	return pos, nil
}

func (a *Array) mustIndex(idx []int) int {
	pos, err := a.Index(idx...)
	if err != nil {
		exceptions.Panicf("%+v", err)
	}
	return pos
}

// At returns the element at idx as float64. Panics on a bad index.
func (a *Array) At(idx ...int) float64 {
	return a.FloatLoader()(a.mustIndex(idx))
}

// IntAt returns the element at idx as int64. Panics on a bad index.
func (a *Array) IntAt(idx ...int) int64 {
	return a.IntLoader()(a.mustIndex(idx))
}

// BoolAt returns the element at idx as a bool (non-zero is true). Panics on a bad index.
func (a *Array) BoolAt(idx ...int) bool {
	return a.At(idx...) != 0
}

// SetAt writes v, converted to the array dtype, at idx. Panics on a bad index.
func (a *Array) SetAt(v float64, idx ...int) {
	a.FloatStorer()(a.mustIndex(idx), v)
}

// Item returns the single element of a one-element array as float64.
func (a *Array) Item() (float64, error) {
	if a.NumElements() != 1 {
		return 0, errors.Wrapf(ErrValue, "can only convert an array of size 1 to a scalar, got shape %s", a.shape)
	}
	zeros := make([]int, len(a.shape))
	return a.At(zeros...), nil
}

// Data returns the buffer as []T, starting at position 0 (not at Offset).
// Use together with Offset and Strides, or ContiguousData for dense arrays.
func Data[T Element](a *Array) []T {
	return bufferSlice[T](a.buf)
}

// ContiguousData returns the logical elements of a C-contiguous view as []T, zero-copy.
func ContiguousData[T Element](a *Array) ([]T, error) {
	if !a.IsContiguous() {
		return nil, errors.Wrapf(ErrNonContiguous, "array with shape %s and strides %v", a.shape, a.strides)
	}
	data := bufferSlice[T](a.buf)
	n := a.NumElements()
	if n == 0 {
		return []T{}, nil
	}
	return data[a.offset : a.offset+n], nil
}

// ToFloat64s copies the elements, in C order, into a new []float64.
func (a *Array) ToFloat64s() []float64 {
	out := make([]float64, 0, a.NumElements())
	load := a.FloatLoader()
	it := NewIterator(a.shape, a.strides, a.offset)
	for pos, ok := it.Next(); ok; pos, ok = it.Next() {
		out = append(out, load(pos))
	}
	return out
}

// ToInt64s copies the elements, in C order, into a new []int64.
func (a *Array) ToInt64s() []int64 {
	out := make([]int64, 0, a.NumElements())
	load := a.IntLoader()
	it := NewIterator(a.shape, a.strides, a.offset)
	for pos, ok := it.Next(); ok; pos, ok = it.Next() {
		out = append(out, load(pos))
	}
	return out
}

// ToBools copies the elements, in C order, into a new []bool (non-zero is true).
func (a *Array) ToBools() []bool {
	out := make([]bool, 0, a.NumElements())
	load := a.FloatLoader()
	it := NewIterator(a.shape, a.strides, a.offset)
	for pos, ok := it.Next(); ok; pos, ok = it.Next() {
		out = append(out, load(pos) != 0)
	}
	return out
}

// GoString is used by %#v.
func (a *Array) GoString() string {
	return fmt.Sprintf("ndarray.Array{dtype: %s, shape: %s, strides: %v, offset: %d}",
		a.dtype, a.shape, a.strides, a.offset)
}
