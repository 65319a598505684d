package ndarray

import (
	"github.com/pkg/errors"
)

// ResultType returns the common dtype of the operands.
//
// Rules: bool < integers < floats. Within a kind the wider type wins. Signed and unsigned
// integers promote to the smallest signed type holding both ranges; uint64 with any signed
// type has no such integer and promotes to Float64. Mixed float widths give the wider float.
func ResultType(dtypes ...DataType) (DataType, error) {
	if len(dtypes) == 0 {
		return 0, errors.Wrap(ErrValue, "at least one dtype is required")
	}
	result := dtypes[0]
	if !result.IsValid() {
		return 0, errors.Wrapf(ErrDType, "data type %d", int(result))
	}
	for _, dt := range dtypes[1:] {
		if !dt.IsValid() {
			return 0, errors.Wrapf(ErrDType, "data type %d", int(dt))
		}
		result = promotePair(result, dt)
	}
	return result, nil
}

// FloatResultType returns the working dtype of an inherently real-valued function
// (sin, arcsin, ...). Integer and bool inputs promote to Float64 regardless of width;
// float inputs keep the widest float among the operands.
func FloatResultType(dtypes ...DataType) (DataType, error) {
	common, err := ResultType(dtypes...)
	if err != nil {
		return 0, err
	}
	if common.IsFloat() {
		return common, nil
	}
	return Float64, nil
}

func promotePair(a, b DataType) DataType {
	if a == b {
		return a
	}
	switch {
	case a.IsFloat() || b.IsFloat():
		if a == Float64 || b == Float64 {
			return Float64
		}
		return Float32
	case a == Bool:
		return b
	case b == Bool:
		return a
	case a.IsSigned() == b.IsSigned():
		if a.Size() >= b.Size() {
			return a
		}
		return b
	}

	signed, unsigned := a, b
	if a.IsUnsigned() {
		signed, unsigned = b, a
	}
	need := max(signed.Size(), 2*unsigned.Size())
	switch {
	case need <= 1:
		return Int8
	case need <= 2:
		return Int16
	case need <= 4:
		return Int32
	case need <= 8:
		return Int64
	}
	return Float64
}
