package ndarray

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/gomlx/exceptions"
)

// buffer is a reference-counted typed storage shared by every view over it.
// Storage is allocated in 8-byte words so any element type is aligned.
type buffer struct {
	words    []uint64
	dtype    DataType
	length   int // Number of elements.
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newBuffer creates a zero-filled buffer with refCount = 1.
func newBuffer(dtype DataType, length int) *buffer {
	if length < 0 {
		exceptions.Panicf("negative buffer length %d", length)
	}
	numBytes := length * dtype.Size()
	buf := &buffer{
		words:  make([]uint64, (numBytes+7)/8),
		dtype:  dtype,
		length: length,
	}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count (for new views).
func (b *buffer) addRef() {
	b.refCount.Add(1)
}

// release decrements the reference count and drops the storage if it reaches 0.
func (b *buffer) release() {
	if b.refCount.Add(-1) == 0 {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.words = nil
	}
}

// isUnique returns true if only one view references this buffer.
func (b *buffer) isUnique() bool {
	return b.refCount.Load() == 1
}

// bytes returns the raw storage.
func (b *buffer) bytes() []byte {
	if len(b.words) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by allocation.
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.words[0])), len(b.words)*8)
}

// bufferSlice interprets the whole buffer as []T. Panics if T does not match the buffer dtype.
func bufferSlice[T Element](b *buffer) []T {
	if dt := DataTypeOf[T](); dt != b.dtype {
		exceptions.Panicf("buffer dtype is %s, not %s", b.dtype, dt)
	}
	if b.length == 0 {
		return nil
	}
	if b.words == nil {
		exceptions.Panicf("access to released %s buffer", b.dtype)
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by length.
	return unsafe.Slice((*T)(unsafe.Pointer(&b.words[0])), b.length)
}
