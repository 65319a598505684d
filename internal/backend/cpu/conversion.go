package cpu

import (
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Cast converts x to a different data type, always returning a new dense array.
//
// Float to integer conversion truncates toward zero, maps NaN to 0 and saturates at the
// target range. Integer to integer conversion wraps. Any non-zero value becomes true.
func (cpu *CPUBackend) Cast(x *ndarray.Array, dtype ndarray.DataType) (*ndarray.Array, error) {
	var result *ndarray.Array
	err := guard("cast", func() error {
		var err error
		result, err = x.AsType(dtype)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
