package cpu

import (
	"cmp"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// comparison holds the typed forms of one relational operator, so integers are
// compared exactly instead of through float64. ord maps a three-way result to the operator.
type comparison struct {
	name string
	f    func(x, y float64) bool
	i    func(x, y int64) bool
	u    func(x, y uint64) bool
	ord  func(c int) bool
}

var (
	cmpGreater      = comparison{"greater", gt[float64], gt[int64], gt[uint64], ordGT}
	cmpGreaterEqual = comparison{"greater_equal", ge[float64], ge[int64], ge[uint64], ordGE}
	cmpLess         = comparison{"less", lt[float64], lt[int64], lt[uint64], ordLT}
	cmpLessEqual    = comparison{"less_equal", le[float64], le[int64], le[uint64], ordLE}
	cmpEqual        = comparison{"equal", eq[float64], eq[int64], eq[uint64], ordEQ}
	cmpNotEqual     = comparison{"not_equal", ne[float64], ne[int64], ne[uint64], ordNE}
)

func gt[T ndarray.Number](x, y T) bool { return x > y }
func ge[T ndarray.Number](x, y T) bool { return x >= y }
func lt[T ndarray.Number](x, y T) bool { return x < y }
func le[T ndarray.Number](x, y T) bool { return x <= y }
func eq[T ndarray.Number](x, y T) bool { return x == y }
func ne[T ndarray.Number](x, y T) bool { return x != y }

func ordGT(c int) bool { return c > 0 }
func ordGE(c int) bool { return c >= 0 }
func ordLT(c int) bool { return c < 0 }
func ordLE(c int) bool { return c <= 0 }
func ordEQ(c int) bool { return c == 0 }
func ordNE(c int) bool { return c != 0 }

// compareMixed orders x and y, where xu and yu say the value holds uint64 bits.
func compareMixed(x int64, xu bool, y int64, yu bool) int {
	//nolint:gosec // G115: reinterpret non-negative or wrapped uint64 bits.
	switch {
	case xu == yu && xu:
		return cmp.Compare(uint64(x), uint64(y))
	case xu == yu:
		return cmp.Compare(x, y)
	case xu && y < 0:
		return 1
	case yu && x < 0:
		return -1
	}
	return cmp.Compare(uint64(x), uint64(y)) //nolint:gosec // G115: both non-negative here.
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (cpu *CPUBackend) compare(c comparison, x, y *ndarray.Array, opts []OpOption) (*ndarray.Array, error) {
	var result *ndarray.Array
	err := guard(c.name, func() error {
		p, err := planUfunc(c.name, 2, []*ndarray.Array{x, y}, newOpOptions(opts), ndarray.ResultType,
			func(ndarray.DataType) ndarray.DataType { return ndarray.Bool })
		if err != nil {
			return err
		}
		defer p.release()

		store := p.out.FloatStorer()
		a, b := p.inputs[0], p.inputs[1]
		unsigned := func(dt ndarray.DataType) bool { return dt.IsUnsigned() || dt == ndarray.Bool }
		switch {
		case a.DType().IsFloat() || b.DType().IsFloat():
			la, lb := a.FloatLoader(), b.FloatLoader()
			cpu.run(p, func(o int, in []int) { store(o, boolToFloat(c.f(la(in[0]), lb(in[1])))) })
		case unsigned(a.DType()) && unsigned(b.DType()):
			la, lb := a.IntLoader(), b.IntLoader()
			cpu.run(p, func(o int, in []int) {
				//nolint:gosec // G115: reinterpret the wrapped uint64 bits.
				store(o, boolToFloat(c.u(uint64(la(in[0])), uint64(lb(in[1])))))
			})
		case a.DType() == ndarray.Uint64 || b.DType() == ndarray.Uint64:
			// Signed against uint64 has no common integer type.
			la, lb := a.IntLoader(), b.IntLoader()
			au, bu := a.DType() == ndarray.Uint64, b.DType() == ndarray.Uint64
			cpu.run(p, func(o int, in []int) {
				store(o, boolToFloat(c.ord(compareMixed(la(in[0]), au, lb(in[1]), bu))))
			})
		default:
			la, lb := a.IntLoader(), b.IntLoader()
			cpu.run(p, func(o int, in []int) { store(o, boolToFloat(c.i(la(in[0]), lb(in[1])))) })
		}
		result = p.out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Greater returns the Bool mask x > y, broadcasting x and y.
//
// Example:
//
//	mask, _ := backend.Greater(a, ndarray.Scalar(2, a.DType()))
//	b, _ := backend.Sin(a, cpu.Where(mask), cpu.Out(out))
func (cpu *CPUBackend) Greater(x, y *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.compare(cmpGreater, x, y, opts)
}

// GreaterEqual returns the Bool mask x >= y.
func (cpu *CPUBackend) GreaterEqual(x, y *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.compare(cmpGreaterEqual, x, y, opts)
}

// Less returns the Bool mask x < y.
func (cpu *CPUBackend) Less(x, y *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.compare(cmpLess, x, y, opts)
}

// LessEqual returns the Bool mask x <= y.
func (cpu *CPUBackend) LessEqual(x, y *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.compare(cmpLessEqual, x, y, opts)
}

// Equal returns the Bool mask x == y. NaN is never equal to anything.
func (cpu *CPUBackend) Equal(x, y *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.compare(cmpEqual, x, y, opts)
}

// NotEqual returns the Bool mask x != y.
func (cpu *CPUBackend) NotEqual(x, y *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.compare(cmpNotEqual, x, y, opts)
}
