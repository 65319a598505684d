package ndarray

// Iterator walks the logical C-order positions of a strided view and yields buffer positions.
// It handles negative and zero strides, so broadcast views iterate the same way.
type Iterator struct {
	shape     []int
	strides   []int
	base      int
	index     []int
	pos       int
	remaining int
}

// NewIterator creates an iterator over the view (shape, strides, offset).
func NewIterator(shape Shape, strides []int, offset int) *Iterator {
	return &Iterator{
		shape:     shape,
		strides:   strides,
		base:      offset,
		index:     make([]int, len(shape)),
		pos:       offset,
		remaining: shape.NumElements(),
	}
}

// Seek positions the iterator at the logical C-order element number flat.
func (it *Iterator) Seek(flat int) {
	total := Shape(it.shape).NumElements()
	it.remaining = total - flat
	it.pos = it.base
	for d := len(it.shape) - 1; d >= 0; d-- {
		n := it.shape[d]
		if n == 0 {
			it.remaining = 0
			return
		}
		it.index[d] = flat % n
		flat /= n
		it.pos += it.index[d] * it.strides[d]
	}
}

// Next returns the current buffer position and advances. ok is false when exhausted.
func (it *Iterator) Next() (pos int, ok bool) {
	if it.remaining <= 0 {
		return 0, false
	}
	pos = it.pos
	it.remaining--
	for d := len(it.shape) - 1; d >= 0; d-- {
		it.index[d]++
		it.pos += it.strides[d]
		if it.index[d] < it.shape[d] {
			return pos, true
		}
		it.pos -= it.index[d] * it.strides[d]
		it.index[d] = 0
	}
	return pos, true
}

// Remaining returns how many positions are left.
func (it *Iterator) Remaining() int {
	return it.remaining
}

// BroadcastStrides returns the strides that map a's view onto outShape: dimensions that
// are stretched (size 1 or missing) get stride 0.
func BroadcastStrides(a *Array, outShape Shape) []int {
	strides := make([]int, len(outShape))
	pad := len(outShape) - len(a.shape)
	for i := range outShape {
		inIdx := i - pad
		switch {
		case inIdx < 0:
			strides[i] = 0
		case a.shape[inIdx] == 1 && outShape[i] != 1:
			strides[i] = 0
		default:
			strides[i] = a.strides[inIdx]
		}
	}
	return strides
}

// BroadcastIterator iterates a over outShape, repeating stretched dimensions.
func BroadcastIterator(a *Array, outShape Shape) *Iterator {
	return NewIterator(outShape, BroadcastStrides(a, outShape), a.offset)
}
