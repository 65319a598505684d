package random

import (
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// integerRange returns the smallest and largest value of an integer dtype, the
// largest as uint64 so Uint64 fits.
func integerRange(dtype ndarray.DataType) (lo int64, hi uint64, ok bool) {
	switch dtype {
	case ndarray.Int8:
		return math.MinInt8, math.MaxInt8, true
	case ndarray.Int16:
		return math.MinInt16, math.MaxInt16, true
	case ndarray.Int32:
		return math.MinInt32, math.MaxInt32, true
	case ndarray.Int64:
		return math.MinInt64, math.MaxInt64, true
	case ndarray.Uint8:
		return 0, math.MaxUint8, true
	case ndarray.Uint16:
		return 0, math.MaxUint16, true
	case ndarray.Uint32:
		return 0, math.MaxUint32, true
	case ndarray.Uint64:
		return 0, math.MaxUint64, true
	}
	return 0, 0, false
}

// mask returns the smallest all-ones bit pattern covering v.
func mask(v uint64) uint64 {
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	return v
}

// bitBuffer hands out 8 or 16 bit pieces of one 32-bit output, low bits first.
type bitBuffer struct {
	buf uint32
	cnt int
}

func (b *bitBuffer) next(m *mt19937, bits int) uint32 {
	if b.cnt == 0 {
		b.buf = m.uint32()
		b.cnt = 32/bits - 1
	} else {
		b.buf >>= bits
		b.cnt--
	}
	return b.buf
}

// boundedSampler returns a function drawing uniformly from [0, rng] for a dtype of the
// given width in bits. Draws outside the range under the covering mask are rejected,
// so there is no modulo bias.
func (rs *RandomState) boundedSampler(rng uint64, bits int) func() uint64 {
	m := &rs.mt
	msk := mask(rng)
	switch {
	case rng == 0:
		return func() uint64 { return 0 }
	case bits == 64 && rng == math.MaxUint64:
		return m.uint64
	case bits == 64 && rng > math.MaxUint32:
		return func() uint64 {
			for {
				if v := m.uint64() & msk; v <= rng {
					return v
				}
			}
		}
	case bits >= 32 && rng == math.MaxUint32:
		return func() uint64 { return uint64(m.uint32()) }
	case bits >= 32:
		return func() uint64 {
			for {
				if v := uint64(m.uint32()) & msk; v <= rng {
					return v
				}
			}
		}
	}

	var buf bitBuffer
	full := uint64(1)<<bits - 1
	return func() uint64 {
		for {
			v := uint64(buf.next(m, bits)) & full
			if rng == full {
				return v
			}
			if v &= msk; v <= rng {
				return v
			}
		}
	}
}

// Randint returns integers drawn uniformly from [low, high) as an array of dtype.
//
// dtype must be a signed or unsigned integer type. low >= high, or bounds outside what
// dtype can represent (such as a negative low for an unsigned dtype), fail with
// ndarray.ErrRange before any draw.
//
// Example:
//
//	x, _ := rs.Randint(2, 5, ndarray.Int64, 1000) // values in {2, 3, 4}
func (rs *RandomState) Randint(low, high int64, dtype ndarray.DataType, size ...int) (*ndarray.Array, error) {
	lo, hi, ok := integerRange(dtype)
	if !ok {
		return nil, errors.Wrapf(ndarray.ErrDType, "randint: unsupported dtype %s", dtype)
	}
	if low >= high {
		return nil, errors.Wrapf(ndarray.ErrRange, "randint: low >= high (%d >= %d)", low, high)
	}
	if low < lo {
		return nil, errors.Wrapf(ndarray.ErrRange, "randint: low is out of bounds for %s (got %d)", dtype, low)
	}
	if high-1 >= 0 && uint64(high-1) > hi {
		return nil, errors.Wrapf(ndarray.ErrRange, "randint: high is out of bounds for %s (got %d)", dtype, high)
	}

	out, err := ndarray.Empty(ndarray.Shape(size).Clone(), dtype)
	if err != nil {
		return nil, err
	}
	rng := uint64(high-1) - uint64(low) //nolint:gosec // G115: two's complement difference.
	draw := rs.boundedSampler(rng, dtype.Size()*8)
	store := out.IntStorer()
	off := uint64(low) //nolint:gosec // G115: offset added modulo 2^64.
	for i := range out.NumElements() {
		store(i, int64(off+draw())) //nolint:gosec // G115: wraps into dtype.
	}
	return out, nil
}
