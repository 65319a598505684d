package cpu

import (
	"github.com/gomlx/exceptions"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// dtypeDispatcher maps each data type to the kernel instantiated for it.
// Tables are filled in init functions and read-only afterwards.
type dtypeDispatcher[F any] struct {
	name  string
	fnMap [ndarray.NumDataTypes]F
	set   [ndarray.NumDataTypes]bool
}

func newDTypeDispatcher[F any](name string) *dtypeDispatcher[F] {
	return &dtypeDispatcher[F]{name: name}
}

// register a kernel for dtype, overwriting any previous one.
func (d *dtypeDispatcher[F]) register(dtype ndarray.DataType, fn F) {
	if !dtype.IsValid() {
		exceptions.Panicf("dtype %s not supported by %s", dtype, d.name)
	}
	d.fnMap[dtype] = fn
	d.set[dtype] = true
}

// supports reports whether a kernel is registered for dtype.
func (d *dtypeDispatcher[F]) supports(dtype ndarray.DataType) bool {
	return dtype.IsValid() && d.set[dtype]
}

// get returns the kernel for dtype, panicking if there is none.
func (d *dtypeDispatcher[F]) get(dtype ndarray.DataType) F {
	if !d.supports(dtype) {
		exceptions.Panicf("dtype %s not supported by %s", dtype, d.name)
	}
	return d.fnMap[dtype]
}
