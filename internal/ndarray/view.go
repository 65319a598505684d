package ndarray

import (
	"github.com/pkg/errors"
)

// SliceSpec selects elements along one dimension with Python slice semantics.
// A missing Start or Stop means "from the beginning/to the end" in the direction of Step.
type SliceSpec struct {
	Start, Stop       int
	Step              int
	HasStart, HasStop bool
}

// S returns the slice start:stop:step.
func S(start, stop, step int) SliceSpec {
	return SliceSpec{Start: start, Stop: stop, Step: step, HasStart: true, HasStop: true}
}

// All returns the slice ":".
func All() SliceSpec {
	return SliceSpec{Step: 1}
}

// Step returns the slice "::step".
func Step(step int) SliceSpec {
	return SliceSpec{Step: step}
}

// From returns the slice "start::step".
func From(start, step int) SliceSpec {
	return SliceSpec{Start: start, Step: step, HasStart: true}
}

// To returns the slice ":stop:step".
func To(stop, step int) SliceSpec {
	return SliceSpec{Stop: stop, Step: step, HasStop: true}
}

// resolve clamps the slice to a dimension of the given length and returns start, step
// and the number of selected elements.
func (s SliceSpec) resolve(length int) (start, step, n int, err error) {
	step = s.Step
	if step == 0 {
		return 0, 0, 0, errors.Wrap(ErrValue, "slice step cannot be zero")
	}
	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}
	clamp := func(v int) int {
		if v < 0 {
			v += length
			if v < lower {
				v = lower
			}
		} else if v > upper {
			v = upper
		}
		return v
	}

	var stop int
	switch {
	case !s.HasStart && step < 0:
		start = upper
	case !s.HasStart:
		start = lower
	default:
		start = clamp(s.Start)
	}
	switch {
	case !s.HasStop && step < 0:
		stop = lower
	case !s.HasStop:
		stop = upper
	default:
		stop = clamp(s.Stop)
	}

	if step < 0 {
		if stop < start {
			n = (start-stop-1)/(-step) + 1
		}
	} else if start < stop {
		n = (stop-start-1)/step + 1
	}
	return start, step, n, nil
}

// Slice returns a view selecting specs[d] along each dimension d. Dimensions without a
// spec are kept whole. Bounds are clamped; a slice that selects nothing yields a
// zero-size view, never an error.
func (a *Array) Slice(specs ...SliceSpec) (*Array, error) {
	if len(specs) > len(a.shape) {
		return nil, errors.Wrapf(ErrIndex, "too many indices for array: array is %d-dimensional, but %d were given",
			len(a.shape), len(specs))
	}
	shape := a.shape.Clone()
	strides := append([]int(nil), a.strides...)
	offset := a.offset
	for d, spec := range specs {
		start, step, n, err := spec.resolve(a.shape[d])
		if err != nil {
			return nil, err
		}
		if n > 0 {
			offset += start * a.strides[d]
		}
		shape[d] = n
		strides[d] = a.strides[d] * step
	}
	return a.newView(shape, strides, offset), nil
}

// resolveShape replaces a single -1 dimension with the inferred size.
func resolveShape(shape Shape, size int) (Shape, error) {
	out := shape.Clone()
	unknown := -1
	known := 1
	for i, d := range out {
		switch {
		case d == -1 && unknown >= 0:
			return nil, errors.Wrap(ErrValue, "can only specify one unknown dimension")
		case d == -1:
			unknown = i
		case d < 0:
			return nil, errors.Wrapf(ErrShape, "negative dimension %d in shape %s", d, shape)
		default:
			known *= d
		}
	}
	if unknown >= 0 {
		if known == 0 || size%known != 0 {
			return nil, errors.Wrapf(ErrShape, "cannot reshape array of size %d into shape %s", size, shape)
		}
		out[unknown] = size / known
	}
	if out.NumElements() != size {
		return nil, errors.Wrapf(ErrShape, "cannot reshape array of size %d into shape %s", size, shape)
	}
	return out, nil
}

// Reshape returns a view with the new shape. One dimension may be -1.
// The element count must not change (ErrShape). When the current strides cannot express
// the new shape without copying, Reshape fails with ErrNonContiguous.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	newShape, err := resolveShape(shape, a.NumElements())
	if err != nil {
		return nil, err
	}
	strides, ok := noCopyStrides(a.shape, a.strides, newShape)
	if !ok {
		return nil, errors.Wrapf(ErrNonContiguous, "cannot reshape view with shape %s and strides %v into %s without copying",
			a.shape, a.strides, newShape)
	}
	return a.newView(newShape, strides, a.offset), nil
}

// noCopyStrides computes strides for newShape over the same elements, grouping old and new
// dimensions with equal products and requiring each old group to be internally contiguous.
func noCopyStrides(oldShape Shape, oldStrides []int, newShape Shape) ([]int, bool) {
	if newShape.NumElements() == 0 {
		return newShape.ComputeStrides(), true
	}
	var olddims, oldstr []int
	for i, d := range oldShape {
		if d != 1 {
			olddims = append(olddims, d)
			oldstr = append(oldstr, oldStrides[i])
		}
	}
	newStrides := make([]int, len(newShape))

	oi, oj := 0, 1
	ni, nj := 0, 1
	for ni < len(newShape) && oi < len(olddims) {
		np, op := newShape[ni], olddims[oi]
		for np != op {
			if np < op {
				np *= newShape[nj]
				nj++
			} else {
				op *= olddims[oj]
				oj++
			}
		}
		for ok := oi; ok < oj-1; ok++ {
			if oldstr[ok] != olddims[ok+1]*oldstr[ok+1] {
				return nil, false
			}
		}
		newStrides[nj-1] = oldstr[oj-1]
		for nk := nj - 1; nk > ni; nk-- {
			newStrides[nk-1] = newStrides[nk] * newShape[nk]
		}
		ni = nj
		nj++
		oi = oj
		oj++
	}

	last := 1
	if ni >= 1 {
		last = newStrides[ni-1]
	}
	for nk := ni; nk < len(newShape); nk++ {
		newStrides[nk] = last
	}
	return newStrides, true
}

// Transpose permutes the dimensions. Without arguments it reverses them.
func (a *Array) Transpose(axes ...int) (*Array, error) {
	rank := len(a.shape)
	if len(axes) == 0 {
		axes = make([]int, rank)
		for i := range axes {
			axes[i] = rank - 1 - i
		}
	}
	if len(axes) != rank {
		return nil, errors.Wrapf(ErrValue, "axes don't match array: got %d axes for rank %d", len(axes), rank)
	}
	seen := make([]bool, rank)
	shape := make(Shape, rank)
	strides := make([]int, rank)
	for i, ax := range axes {
		ax, err := NormalizeAxis(ax, rank)
		if err != nil {
			return nil, err
		}
		if seen[ax] {
			return nil, errors.Wrapf(ErrValue, "repeated axis %d in transpose", ax)
		}
		seen[ax] = true
		shape[i] = a.shape[ax]
		strides[i] = a.strides[ax]
	}
	return a.newView(shape, strides, a.offset), nil
}

// SwapAxes returns a view with axis1 and axis2 interchanged.
func (a *Array) SwapAxes(axis1, axis2 int) (*Array, error) {
	rank := len(a.shape)
	ax1, err := NormalizeAxis(axis1, rank)
	if err != nil {
		return nil, err
	}
	ax2, err := NormalizeAxis(axis2, rank)
	if err != nil {
		return nil, err
	}
	axes := make([]int, rank)
	for i := range axes {
		axes[i] = i
	}
	axes[ax1], axes[ax2] = axes[ax2], axes[ax1]
	return a.Transpose(axes...)
}

// Squeeze removes size-1 dimensions: the given axes, or all of them when none are given.
func (a *Array) Squeeze(axes ...int) (*Array, error) {
	rank := len(a.shape)
	drop := make([]bool, rank)
	if len(axes) == 0 {
		for i, d := range a.shape {
			drop[i] = d == 1
		}
	}
	for _, ax := range axes {
		ax, err := NormalizeAxis(ax, rank)
		if err != nil {
			return nil, err
		}
		if a.shape[ax] != 1 {
			return nil, errors.Wrapf(ErrValue, "cannot select an axis to squeeze out which has size not equal to one (axis %d)", ax)
		}
		drop[ax] = true
	}
	var shape Shape
	var strides []int
	for i := range a.shape {
		if !drop[i] {
			shape = append(shape, a.shape[i])
			strides = append(strides, a.strides[i])
		}
	}
	if shape == nil {
		shape, strides = Shape{}, []int{}
	}
	return a.newView(shape, strides, a.offset), nil
}

// ExpandDims inserts a size-1 dimension at axis.
func (a *Array) ExpandDims(axis int) (*Array, error) {
	ax, err := NormalizeAxis(axis, len(a.shape)+1)
	if err != nil {
		return nil, err
	}
	shape := make(Shape, 0, len(a.shape)+1)
	strides := make([]int, 0, len(a.shape)+1)
	shape = append(shape, a.shape[:ax]...)
	strides = append(strides, a.strides[:ax]...)
	shape = append(shape, 1)
	strides = append(strides, 0)
	shape = append(shape, a.shape[ax:]...)
	strides = append(strides, a.strides[ax:]...)
	return a.newView(shape, strides, a.offset), nil
}

// BroadcastTo returns a read-only-by-convention view of a stretched to shape.
func (a *Array) BroadcastTo(shape Shape) (*Array, error) {
	out, err := BroadcastShapes(a.shape, shape)
	if err != nil {
		return nil, err
	}
	if !out.Equal(shape) {
		return nil, errors.Wrapf(ErrShape, "cannot broadcast array with shape %s to %s", a.shape, shape)
	}
	return a.newView(shape.Clone(), BroadcastStrides(a, shape), a.offset), nil
}

// Flatten returns a dense 1-D copy in C order.
func (a *Array) Flatten() *Array {
	out := a.Copy()
	out.shape = Shape{out.NumElements()}
	out.strides = []int{1}
	return out
}

// Ravel returns a 1-D view when the strides allow it, otherwise a dense copy.
func (a *Array) Ravel() *Array {
	if v, err := a.Reshape(-1); err == nil {
		return v
	}
	return a.Flatten()
}
