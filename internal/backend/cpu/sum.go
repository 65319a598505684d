package cpu

import (
	"math"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// sumDType is the accumulator dtype of Sum: floats keep their type, unsigned integers
// sum in Uint64, signed integers and bool in Int64.
func sumDType(dt ndarray.DataType) ndarray.DataType {
	switch {
	case dt.IsFloat():
		return dt
	case dt.IsUnsigned():
		return ndarray.Uint64
	default:
		return ndarray.Int64
	}
}

func meanDType(dt ndarray.DataType) ndarray.DataType {
	if dt.IsFloat() {
		return dt
	}
	return ndarray.Float64
}

// accumulate sums each lane of lp into out, which has shape lp.outer.
// Integer sums wrap on overflow.
func (cpu *CPUBackend) accumulate(lp *lanePlan, out *ndarray.Array, scale func(sum float64) float64) {
	if out.DType().IsFloat() {
		load, store := lp.src.FloatLoader(), out.FloatStorer()
		lp.forEachLane(cpu.parallel, func(i, base int) {
			var acc float64
			for j := 0; j < lp.n; j++ {
				acc += load(base + j*lp.stride)
			}
			if scale != nil {
				acc = scale(acc)
			}
			store(i, acc)
		})
		return
	}
	load, store := lp.src.IntLoader(), out.IntStorer()
	lp.forEachLane(cpu.parallel, func(i, base int) {
		var acc int64
		for j := 0; j < lp.n; j++ {
			acc += load(base + j*lp.stride)
		}
		store(i, acc)
	})
}

// Sum adds the elements of x, over everything or along Axis(k). Empty lanes sum to 0.
// Signed integers and bool accumulate in Int64, unsigned integers in Uint64.
func (cpu *CPUBackend) Sum(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	var result *ndarray.Array
	err := guard("sum", func() error {
		lp, err := newLanePlan("sum", x, newOpOptions(opts), true)
		if err != nil {
			return err
		}
		defer lp.release()
		out, err := ndarray.Empty(lp.outer, sumDType(x.DType()))
		if err != nil {
			return err
		}
		cpu.accumulate(lp, out, nil)
		result, err = lp.finish(out)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Mean averages the elements of x. Integer and bool inputs give Float64.
// The mean of an empty lane is NaN.
func (cpu *CPUBackend) Mean(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	var result *ndarray.Array
	err := guard("mean", func() error {
		lp, err := newLanePlan("mean", x, newOpOptions(opts), true)
		if err != nil {
			return err
		}
		defer lp.release()
		if lp.n == 0 && lp.outer.NumElements() > 0 {
			klog.Warningf("mean: Mean of empty slice")
		}
		out, err := ndarray.Empty(lp.outer, meanDType(x.DType()))
		if err != nil {
			return err
		}
		n := float64(lp.n)
		cpu.accumulate(lp, out, func(sum float64) float64 {
			if n == 0 {
				return math.NaN()
			}
			return sum / n
		})
		result, err = lp.finish(out)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Ptp returns the range (maximum minus minimum) of x in x's dtype. Integer results wrap
// like NumPy's; NaN propagates.
func (cpu *CPUBackend) Ptp(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	if x != nil && x.DType() == ndarray.Bool {
		return nil, errors.Wrap(ndarray.ErrDType, "ptp: bool is not supported")
	}
	hi, err := cpu.Max(x, opts...)
	if err != nil {
		return nil, errors.WithMessage(err, "ptp")
	}
	defer hi.Release()
	lo, err := cpu.Min(x, opts...)
	if err != nil {
		return nil, errors.WithMessage(err, "ptp")
	}
	defer lo.Release()

	out, err := ndarray.Empty(hi.Shape(), hi.DType())
	if err != nil {
		return nil, err
	}
	n := out.NumElements()
	if out.DType().IsFloat() {
		loadHi, loadLo, store := hi.FloatLoader(), lo.FloatLoader(), out.FloatStorer()
		for i := 0; i < n; i++ {
			store(i, loadHi(i)-loadLo(i))
		}
		return out, nil
	}
	loadHi, loadLo, store := hi.IntLoader(), lo.IntLoader(), out.IntStorer()
	for i := 0; i < n; i++ {
		store(i, loadHi(i)-loadLo(i))
	}
	return out, nil
}
