package cpu

import (
	"math"
	"slices"
	"sync"

	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
)

// lanePlan splits a reduction into lanes: one 1-D slice of the source per output element.
// The output is C-contiguous with shape outer; lane i starts at the buffer position of
// the outer iterator's i-th step and has n elements, stride apart.
type lanePlan struct {
	src          *ndarray.Array
	outer        ndarray.Shape
	outerStrides []int
	offset       int
	n, stride    int
	resultShape  ndarray.Shape // outer, or with the reduced dims kept as 1 under KeepDims.
	temporary    *ndarray.Array
}

func newLanePlan(name string, x *ndarray.Array, o *opOptions, allowEmpty bool) (*lanePlan, error) {
	if x == nil {
		return nil, errors.Wrapf(ndarray.ErrValue, "%s: operand is nil", name)
	}
	shape := x.Shape()
	lp := &lanePlan{src: x, offset: x.Offset()}

	if !o.hasAxis {
		flat := x.Ravel()
		lp.src, lp.temporary = flat, flat
		lp.outer = ndarray.Shape{}
		lp.offset = flat.Offset()
		lp.n, lp.stride = flat.Shape()[0], flat.Strides()[0]
		lp.resultShape = ndarray.Shape{}
		if o.keepDims {
			lp.resultShape = make(ndarray.Shape, len(shape))
			for d := range lp.resultShape {
				lp.resultShape[d] = 1
			}
		}
	} else {
		axis, err := ndarray.NormalizeAxis(o.axis, len(shape))
		if err != nil {
			return nil, err
		}
		strides := x.Strides()
		lp.n, lp.stride = shape[axis], strides[axis]
		lp.outer = append(shape[:axis:axis].Clone(), shape[axis+1:]...)
		lp.outerStrides = append(append([]int(nil), strides[:axis]...), strides[axis+1:]...)
		lp.resultShape = lp.outer
		if o.keepDims {
			lp.resultShape = shape.Clone()
			lp.resultShape[axis] = 1
		}
	}

	if lp.n == 0 && lp.outer.NumElements() > 0 && !allowEmpty {
		lp.release()
		return nil, errors.Wrapf(ndarray.ErrValue, "zero-size array to reduction operation %s which has no identity", name)
	}
	return lp, nil
}

func (lp *lanePlan) release() {
	if lp.temporary != nil {
		lp.temporary.Release()
		lp.temporary = nil
	}
}

// forEachLane calls fn(i, base) for every output position i, in parallel chunks of lanes.
func (lp *lanePlan) forEachLane(cfg parallel.Config, fn func(i, base int)) {
	if lp.n > 1 {
		cfg.MinChunkSize = max(1, cfg.MinChunkSize/lp.n)
	}
	parallel.ForRange(lp.outer.NumElements(), func(start, end int) {
		it := ndarray.NewIterator(lp.outer, lp.outerStrides, lp.offset)
		it.Seek(start)
		for i := start; i < end; i++ {
			base, _ := it.Next()
			fn(i, base)
		}
	}, cfg)
}

// finish reshapes out to the result shape, if KeepDims asked for it.
func (lp *lanePlan) finish(out *ndarray.Array) (*ndarray.Array, error) {
	if out.Shape().Equal(lp.resultShape) {
		return out, nil
	}
	shaped, err := out.Reshape(lp.resultShape...)
	if err != nil {
		return nil, err
	}
	out.Release()
	return shaped, nil
}

// lane is one reduction slice of a typed buffer.
type lane[T ndarray.Number] struct {
	data         []T
	base, stride int
	n            int
}

func (l lane[T]) at(j int) T {
	return l.data[l.base+j*l.stride]
}

// isNaN is false for every integer type.
func isNaN[T ndarray.Number](v T) bool {
	return v != v //nolint:gocritic // NaN is the only value not equal to itself.
}

// laneKernel reduces every lane of lp into out and returns the output positions whose
// lane had no usable (non-NaN) value, in increasing order.
type laneKernel func(out *ndarray.Array, lp *lanePlan, cfg parallel.Config) []int

func valueKernel[T ndarray.Number](fn func(lane[T]) (T, bool)) laneKernel {
	return func(out *ndarray.Array, lp *lanePlan, cfg parallel.Config) []int {
		data := ndarray.Data[T](lp.src)
		res := ndarray.Data[T](out)
		var missing collector
		lp.forEachLane(cfg, func(i, base int) {
			v, ok := fn(lane[T]{data: data, base: base, stride: lp.stride, n: lp.n})
			res[i] = v
			if !ok {
				missing.add(i)
			}
		})
		return missing.sorted()
	}
}

func indexKernel[T ndarray.Number](fn func(lane[T]) (int, bool)) laneKernel {
	return func(out *ndarray.Array, lp *lanePlan, cfg parallel.Config) []int {
		data := ndarray.Data[T](lp.src)
		res := ndarray.Data[int64](out)
		var missing collector
		lp.forEachLane(cfg, func(i, base int) {
			idx, ok := fn(lane[T]{data: data, base: base, stride: lp.stride, n: lp.n})
			res[i] = int64(idx)
			if !ok {
				missing.add(i)
			}
		})
		return missing.sorted()
	}
}

// collector gathers output positions from concurrent lanes.
type collector struct {
	mu  sync.Mutex
	pos []int
}

func (c *collector) add(i int) {
	c.mu.Lock()
	c.pos = append(c.pos, i)
	c.mu.Unlock()
}

func (c *collector) sorted() []int {
	slices.Sort(c.pos)
	return c.pos
}

// NaN-propagating extremum: the first NaN in the lane is the result.
func laneExtremum[T ndarray.Number](better func(a, b T) bool) func(lane[T]) (T, bool) {
	return func(l lane[T]) (T, bool) {
		best := l.at(0)
		if isNaN(best) {
			return best, true
		}
		for j := 1; j < l.n; j++ {
			v := l.at(j)
			if isNaN(v) {
				return v, true
			}
			if better(v, best) {
				best = v
			}
		}
		return best, true
	}
}

// Arg extremum with strict comparisons. The first element seeds the candidate, so a
// leading NaN is kept and a later NaN never replaces a number.
func laneArgExtremum[T ndarray.Number](better func(a, b T) bool) func(lane[T]) (int, bool) {
	return func(l lane[T]) (int, bool) {
		best, idx := l.at(0), 0
		for j := 1; j < l.n; j++ {
			if v := l.at(j); better(v, best) {
				best, idx = v, j
			}
		}
		return idx, true
	}
}

// NaN-ignoring extremum; ok is false when the lane holds only NaN.
func laneNanExtremum[T ndarray.Number](better func(a, b T) bool) func(lane[T]) (T, bool) {
	return func(l lane[T]) (T, bool) {
		idx, ok := laneNanArgExtremum(better)(l)
		if !ok {
			return T(math.NaN()), false
		}
		return l.at(idx), true
	}
}

func laneNanArgExtremum[T ndarray.Number](better func(a, b T) bool) func(lane[T]) (int, bool) {
	return func(l lane[T]) (int, bool) {
		idx := -1
		var best T
		for j := 0; j < l.n; j++ {
			v := l.at(j)
			if isNaN(v) {
				continue
			}
			if idx < 0 || better(v, best) {
				best, idx = v, j
			}
		}
		return idx, idx >= 0
	}
}

func less[T ndarray.Number](a, b T) bool    { return a < b }
func greater[T ndarray.Number](a, b T) bool { return a > b }

var (
	dispatchMin       = newDTypeDispatcher[laneKernel]("min")
	dispatchMax       = newDTypeDispatcher[laneKernel]("max")
	dispatchArgmin    = newDTypeDispatcher[laneKernel]("argmin")
	dispatchArgmax    = newDTypeDispatcher[laneKernel]("argmax")
	dispatchNanMin    = newDTypeDispatcher[laneKernel]("nanmin")
	dispatchNanMax    = newDTypeDispatcher[laneKernel]("nanmax")
	dispatchNanArgmin = newDTypeDispatcher[laneKernel]("nanargmin")
	dispatchNanArgmax = newDTypeDispatcher[laneKernel]("nanargmax")
)

func registerExtremumKernels[T ndarray.Number](dtype ndarray.DataType) {
	dispatchMin.register(dtype, valueKernel(laneExtremum(less[T])))
	dispatchMax.register(dtype, valueKernel(laneExtremum(greater[T])))
	dispatchArgmin.register(dtype, indexKernel(laneArgExtremum(less[T])))
	dispatchArgmax.register(dtype, indexKernel(laneArgExtremum(greater[T])))
	dispatchNanMin.register(dtype, valueKernel(laneNanExtremum(less[T])))
	dispatchNanMax.register(dtype, valueKernel(laneNanExtremum(greater[T])))
	dispatchNanArgmin.register(dtype, indexKernel(laneNanArgExtremum(less[T])))
	dispatchNanArgmax.register(dtype, indexKernel(laneNanArgExtremum(greater[T])))
}

func init() {
	registerExtremumKernels[int8](ndarray.Int8)
	registerExtremumKernels[int16](ndarray.Int16)
	registerExtremumKernels[int32](ndarray.Int32)
	registerExtremumKernels[int64](ndarray.Int64)
	registerExtremumKernels[uint8](ndarray.Uint8)
	registerExtremumKernels[uint16](ndarray.Uint16)
	registerExtremumKernels[uint32](ndarray.Uint32)
	registerExtremumKernels[uint64](ndarray.Uint64)
	registerExtremumKernels[float32](ndarray.Float32)
	registerExtremumKernels[float64](ndarray.Float64)
}

// reduceLanes runs kernel over x and returns the result array together with the
// positions of lanes the kernel could not reduce.
func (cpu *CPUBackend) reduceLanes(name string, d *dtypeDispatcher[laneKernel], x *ndarray.Array,
	resultDType func(ndarray.DataType) ndarray.DataType, opts []OpOption,
) (*ndarray.Array, []int, error) {
	var (
		result  *ndarray.Array
		missing []int
	)
	err := guard(name, func() error {
		o := newOpOptions(opts)
		if o.where != nil || o.out != nil {
			return errors.Wrapf(ndarray.ErrValue, "%s does not accept where or out", name)
		}
		if x != nil && !d.supports(x.DType()) {
			return errors.Wrapf(ndarray.ErrDType, "%s does not support %s", name, x.DType())
		}
		lp, err := newLanePlan(name, x, o, false)
		if err != nil {
			return err
		}
		defer lp.release()

		out, err := ndarray.Empty(lp.outer, resultDType(x.DType()))
		if err != nil {
			return err
		}
		missing = d.get(x.DType())(out, lp, cpu.parallel)
		result, err = lp.finish(out)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return result, missing, nil
}

func sameDType(dt ndarray.DataType) ndarray.DataType { return dt }
func indexDType(ndarray.DataType) ndarray.DataType  { return ndarray.Int64 }

func (cpu *CPUBackend) reduce(name string, d *dtypeDispatcher[laneKernel], x *ndarray.Array,
	resultDType func(ndarray.DataType) ndarray.DataType, opts []OpOption,
) (*ndarray.Array, error) {
	result, _, err := cpu.reduceLanes(name, d, x, resultDType, opts)
	return result, err
}

// Min returns the minimum of x, over all elements or along Axis(k).
//
// NaN propagates: a lane containing NaN reduces to NaN. Bool arrays are not supported.
//
// Example:
//
//	a, _ := ndarray.FromNested([][]float64{{1, 5}, {3, 2}})
//	m, _ := backend.Min(a)               // 1
//	m, _ = backend.Min(a, cpu.Axis(0))   // [1 2]
//	m, _ = backend.Min(a, cpu.Axis(-1), cpu.KeepDims()) // [[1] [2]]
func (cpu *CPUBackend) Min(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.reduce("min", dispatchMin, x, sameDType, opts)
}

// Amin is an alias of Min.
func (cpu *CPUBackend) Amin(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.Min(x, opts...)
}

// Max returns the maximum of x. See Min.
func (cpu *CPUBackend) Max(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.reduce("max", dispatchMax, x, sameDType, opts)
}

// Amax is an alias of Max.
func (cpu *CPUBackend) Amax(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.Max(x, opts...)
}

// Argmin returns the Int64 position of the minimum along the lane: the index along
// Axis(k), or the flat C-order index without an axis. Ties resolve to the first occurrence.
func (cpu *CPUBackend) Argmin(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.reduce("argmin", dispatchArgmin, x, indexDType, opts)
}

// Argmax returns the Int64 position of the maximum. See Argmin.
func (cpu *CPUBackend) Argmax(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.reduce("argmax", dispatchArgmax, x, indexDType, opts)
}
