package cpu

import (
	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// Bincount counts occurrences of each non-negative integer in the 1-D array x.
//
// The result has length max(max(x)+1, minLength). Without weights it is Int64 counts;
// with weights (same shape as x) bin i is the Float64 sum of the weights at positions
// where x == i.
func (cpu *CPUBackend) Bincount(x, weights *ndarray.Array, minLength int) (*ndarray.Array, error) {
	var result *ndarray.Array
	err := guard("bincount", func() error {
		if x == nil {
			return errors.Wrap(ndarray.ErrValue, "operand is nil")
		}
		if x.Rank() != 1 {
			return errors.Wrapf(ndarray.ErrValue, "object of shape %s is not 1-D", x.Shape())
		}
		if !x.DType().IsInteger() {
			return errors.Wrapf(ndarray.ErrDType, "cannot count %s values, need an integer type", x.DType())
		}
		if minLength < 0 {
			return errors.Wrapf(ndarray.ErrValue, "minlength must be non-negative, got %d", minLength)
		}
		if weights != nil && !weights.Shape().Equal(x.Shape()) {
			return errors.Wrapf(ndarray.ErrShape, "weights shape %s does not match %s", weights.Shape(), x.Shape())
		}

		values := x.ToInt64s()
		if x.DType() == ndarray.Uint64 {
			for _, v := range values {
				if v < 0 {
					return errors.Wrapf(ndarray.ErrValue, "value %d does not fit in a bin index", uint64(v)) //nolint:gosec // G115: reinterpret for the message.
				}
			}
		}
		size := minLength
		for _, v := range values {
			if v < 0 {
				return errors.Wrapf(ndarray.ErrValue, "input must be non-negative, got %d", v)
			}
			size = max(size, int(v)+1)
		}

		if weights == nil {
			out, err := ndarray.Zeros(ndarray.Shape{size}, ndarray.Int64)
			if err != nil {
				return err
			}
			counts := ndarray.Data[int64](out)
			for _, v := range values {
				counts[v]++
			}
			result = out
			return nil
		}

		out, err := ndarray.Zeros(ndarray.Shape{size}, ndarray.Float64)
		if err != nil {
			return err
		}
		sums := ndarray.Data[float64](out)
		for i, w := range weights.ToFloat64s() {
			sums[values[i]] += w
		}
		result = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
