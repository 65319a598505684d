package cpu

import (
	"k8s.io/klog/v2"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// NanMin returns the minimum of x ignoring NaN. A lane made only of NaN reduces to NaN and
// a single "All-NaN slice encountered" warning is logged for the call.
// Integer inputs have no NaN, so NanMin matches Min for them.
func (cpu *CPUBackend) NanMin(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.nanValue("nanmin", dispatchNanMin, x, opts)
}

// NanMax returns the maximum of x ignoring NaN. See NanMin.
func (cpu *CPUBackend) NanMax(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.nanValue("nanmax", dispatchNanMax, x, opts)
}

// NanArgmin returns the position of the minimum ignoring NaN.
// If any lane holds only NaN the call fails with *ndarray.AllNaNError listing those lanes.
func (cpu *CPUBackend) NanArgmin(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.nanIndex("nanargmin", dispatchNanArgmin, x, opts)
}

// NanArgmax returns the position of the maximum ignoring NaN. See NanArgmin.
func (cpu *CPUBackend) NanArgmax(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.nanIndex("nanargmax", dispatchNanArgmax, x, opts)
}

func (cpu *CPUBackend) nanValue(name string, d *dtypeDispatcher[laneKernel], x *ndarray.Array, opts []OpOption) (*ndarray.Array, error) {
	result, missing, err := cpu.reduceLanes(name, d, x, sameDType, opts)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		klog.Warningf("%s: All-NaN slice encountered (%d of %d)", name, len(missing), result.NumElements())
	}
	return result, nil
}

func (cpu *CPUBackend) nanIndex(name string, d *dtypeDispatcher[laneKernel], x *ndarray.Array, opts []OpOption) (*ndarray.Array, error) {
	result, missing, err := cpu.reduceLanes(name, d, x, indexDType, opts)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		result.Release()
		return nil, &ndarray.AllNaNError{Op: name, Slices: missing}
	}
	return result, nil
}
