package cpu

import (
	"github.com/born-ml/ndarray/internal/ndarray"
)

// OpOption configures a single ufunc or reduction call.
type OpOption func(*opOptions)

type opOptions struct {
	where    *ndarray.Array
	out      *ndarray.Array
	axis     int
	hasAxis  bool
	keepDims bool
}

func newOpOptions(opts []OpOption) *opOptions {
	o := &opOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Where restricts a ufunc to the positions where mask is true. Other positions of the
// destination keep their previous contents. The mask must be Bool and broadcast against
// the operands.
func Where(mask *ndarray.Array) OpOption {
	return func(o *opOptions) {
		o.where = mask
	}
}

// Out makes a ufunc write into out instead of allocating a result. out's shape must equal
// the broadcast shape; values are converted into out's dtype.
func Out(out *ndarray.Array) OpOption {
	return func(o *opOptions) {
		o.out = out
	}
}

// Axis makes a reduction collapse only the given axis (negative counts from the end).
// Without it the reduction covers every element.
func Axis(axis int) OpOption {
	return func(o *opOptions) {
		o.axis = axis
		o.hasAxis = true
	}
}

// KeepDims keeps reduced dimensions in the result with size 1.
func KeepDims() OpOption {
	return func(o *opOptions) {
		o.keepDims = true
	}
}
