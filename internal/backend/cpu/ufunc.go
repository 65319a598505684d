package cpu

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
)

// elementFunc is a scalar kernel applied per element. Unary kernels ignore y.
type elementFunc func(x, y float64) float64

// ufunc describes an element-wise function over nin operands.
type ufunc struct {
	name string
	nin  int
	fn   elementFunc
}

// ufuncPlan is the resolved form of a ufunc call: broadcast shape, working dtype and
// the destination, with inputs that alias the destination already copied away.
type ufuncPlan struct {
	shape     ndarray.Shape
	work      ndarray.DataType
	inputs    []*ndarray.Array
	where     *ndarray.Array
	out       *ndarray.Array
	temporary []*ndarray.Array
}

func (p *ufuncPlan) release() {
	for _, t := range p.temporary {
		t.Release()
	}
}

// planUfunc validates operands, where and out, and allocates the result when out is absent.
// resultDType maps the working dtype to the dtype of a freshly allocated result.
func planUfunc(name string, nin int, operands []*ndarray.Array, o *opOptions,
	workDType func(...ndarray.DataType) (ndarray.DataType, error),
	resultDType func(ndarray.DataType) ndarray.DataType,
) (*ufuncPlan, error) {
	if len(operands) != nin {
		return nil, errors.Wrapf(ndarray.ErrValue, "%s takes %d operands, got %d", name, nin, len(operands))
	}
	shapes := make([]ndarray.Shape, 0, nin+1)
	dtypes := make([]ndarray.DataType, 0, nin)
	for i, x := range operands {
		if x == nil {
			return nil, errors.Wrapf(ndarray.ErrValue, "operand %d is nil", i)
		}
		shapes = append(shapes, x.Shape())
		dtypes = append(dtypes, x.DType())
	}
	if o.where != nil {
		if o.where.DType() != ndarray.Bool {
			return nil, errors.Wrapf(ndarray.ErrDType, "where mask must be bool, got %s", o.where.DType())
		}
		shapes = append(shapes, o.where.Shape())
	}
	shape, err := ndarray.BroadcastShapes(shapes...)
	if err != nil {
		return nil, err
	}
	work, err := workDType(dtypes...)
	if err != nil {
		return nil, err
	}

	p := &ufuncPlan{
		shape:  shape,
		work:   work,
		inputs: append([]*ndarray.Array(nil), operands...),
		where:  o.where,
	}
	if o.out == nil {
		p.out, err = ndarray.Empty(shape, resultDType(work))
		if err != nil {
			return nil, err
		}
		klog.V(2).Infof("%s: shape=%s work=%s result=%s", name, shape, work, p.out.DType())
		return p, nil
	}

	p.out = o.out
	if !p.out.Shape().Equal(shape) {
		return nil, errors.Wrapf(ndarray.ErrOutOfBounds,
			"non-broadcastable output operand with shape %s doesn't match the broadcast shape %s", p.out.Shape(), shape)
	}
	for d, stride := range p.out.Strides() {
		if stride == 0 && shape[d] > 1 {
			return nil, errors.Wrapf(ndarray.ErrValue, "output operand has overlapping elements along axis %d", d)
		}
	}
	for i, x := range p.inputs {
		if ndarray.SharesBuffer(x, p.out) && !sameGeometry(x, p.out, shape) {
			p.inputs[i] = x.Copy()
			p.temporary = append(p.temporary, p.inputs[i])
		}
	}
	if p.where != nil && ndarray.SharesBuffer(p.where, p.out) {
		p.where = p.where.Copy()
		p.temporary = append(p.temporary, p.where)
	}
	klog.V(2).Infof("%s: shape=%s work=%s out=%s", name, shape, work, p.out.DType())
	return p, nil
}

// sameGeometry reports whether x, broadcast to shape, reads exactly the positions out writes.
func sameGeometry(x, out *ndarray.Array, shape ndarray.Shape) bool {
	if x.Offset() != out.Offset() {
		return false
	}
	xs := ndarray.BroadcastStrides(x, shape)
	for d, s := range out.Strides() {
		if shape[d] > 1 && xs[d] != s {
			return false
		}
	}
	return true
}

// run calls body for every position selected by the where mask, in parallel chunks.
// body receives the buffer position in out and in each input; inPos is reused between calls.
func (cpu *CPUBackend) run(p *ufuncPlan, body func(outPos int, inPos []int)) {
	var mask func(int) float64
	if p.where != nil {
		mask = p.where.FloatLoader()
	}
	parallel.ForRange(p.shape.NumElements(), func(start, end int) {
		its := make([]*ndarray.Iterator, len(p.inputs))
		for i, x := range p.inputs {
			its[i] = ndarray.BroadcastIterator(x, p.shape)
			its[i].Seek(start)
		}
		outIt := ndarray.NewIterator(p.out.Shape(), p.out.Strides(), p.out.Offset())
		outIt.Seek(start)
		var maskIt *ndarray.Iterator
		if mask != nil {
			maskIt = ndarray.BroadcastIterator(p.where, p.shape)
			maskIt.Seek(start)
		}

		inPos := make([]int, len(its))
		for i := start; i < end; i++ {
			o, _ := outIt.Next()
			for k, it := range its {
				inPos[k], _ = it.Next()
			}
			if maskIt != nil {
				m, _ := maskIt.Next()
				if mask(m) == 0 {
					continue
				}
			}
			body(o, inPos)
		}
	}, cpu.parallel)
}

// applyFloat evaluates a real-valued ufunc. Operands are promoted with FloatResultType;
// float32 work is rounded to float32 before being stored.
func (cpu *CPUBackend) applyFloat(u ufunc, operands []*ndarray.Array, opts []OpOption) (*ndarray.Array, error) {
	var result *ndarray.Array
	err := guard(u.name, func() error {
		p, err := planUfunc(u.name, u.nin, operands, newOpOptions(opts), ndarray.FloatResultType,
			func(work ndarray.DataType) ndarray.DataType { return work })
		if err != nil {
			return err
		}
		defer p.release()

		loadX := p.inputs[0].FloatLoader()
		loadY := func(int) float64 { return 0 }
		if u.nin > 1 {
			loadY = p.inputs[1].FloatLoader()
		}
		store := p.out.FloatStorer()
		fn := u.fn
		if p.work == ndarray.Float32 {
			cpu.run(p, func(o int, in []int) {
				y := 0.0
				if len(in) > 1 {
					y = loadY(in[1])
				}
				store(o, float64(float32(fn(loadX(in[0]), y))))
			})
		} else {
			cpu.run(p, func(o int, in []int) {
				y := 0.0
				if len(in) > 1 {
					y = loadY(in[1])
				}
				store(o, fn(loadX(in[0]), y))
			})
		}
		result = p.out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
