package cpu

import (
	"math"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/ndarray"
)

var allDTypes = []ndarray.DataType{
	ndarray.Bool, ndarray.Int8, ndarray.Int16, ndarray.Int32, ndarray.Int64,
	ndarray.Uint8, ndarray.Uint16, ndarray.Uint32, ndarray.Uint64,
	ndarray.Float32, ndarray.Float64,
}

func TestUfunc_SlicedViewMatchesDenseCopy(t *testing.T) {
	for name, backend := range backends() {
		for _, dt := range allDTypes {
			base := must.M1(arange(t, 0, 24, 1, ndarray.Float64).AsType(dt))
			grid := must.M1(base.Reshape(4, 6))
			views := map[string]ndarray.SliceSpec{"step 2": ndarray.Step(2), "step -3": ndarray.Step(-3)}
			for vname, spec := range views {
				t.Run(name+"/"+dt.String()+"/"+vname, func(t *testing.T) {
					flat := must.M1(base.Slice(spec))
					cols := must.M1(grid.Slice(ndarray.Step(-1), spec))
					for _, view := range []*ndarray.Array{flat, cols} {
						dense := view.Copy()
						got := must.M1(backend.Sin(view))
						want := must.M1(backend.Sin(dense))
						assert.Equal(t, want.DType(), got.DType())
						assert.Equal(t, want.Shape(), got.Shape())
						assert.Equal(t, want.ToFloat64s(), got.ToFloat64s())
					}
				})
			}
		}
	}
}

func TestSin_Int16PromotesToFloat64(t *testing.T) {
	backend := newTestBackend()
	a := arange(t, 0, 10, 1, ndarray.Int16)
	even := must.M1(a.Slice(ndarray.Step(2)))
	got := must.M1(backend.Sin(even))
	assert.Equal(t, ndarray.Float64, got.DType())
	expected := []float64{0, math.Sin(2), math.Sin(4), math.Sin(6), math.Sin(8)}
	assert.InDeltaSlice(t, expected, got.ToFloat64s(), 1e-15)
}

func TestUfunc_ResultDTypes(t *testing.T) {
	backend := newTestBackend()
	for _, dt := range allDTypes {
		x := must.M1(ndarray.Zeros(ndarray.Shape{3}, dt))
		got := must.M1(backend.Cos(x))
		if dt == ndarray.Float32 {
			assert.Equal(t, ndarray.Float32, got.DType())
		} else {
			assert.Equal(t, ndarray.Float64, got.DType(), dt.String())
		}
		assert.Equal(t, []float64{1, 1, 1}, got.ToFloat64s())
	}
}

func TestSinCosIdentity(t *testing.T) {
	backend := newTestBackend()
	x64 := must.M1(ndarray.Linspace(-20, 20, 401))
	x32 := must.M1(x64.AsType(ndarray.Float32))
	tests := []struct {
		x   *ndarray.Array
		tol float64
	}{
		{x64, 1e-12},
		{x32, 1e-6},
	}
	for _, tt := range tests {
		t.Run(tt.x.DType().String(), func(t *testing.T) {
			s := must.M1(backend.Sin(tt.x))
			c := must.M1(backend.Cos(tt.x))
			assert.Equal(t, tt.x.DType(), s.DType())
			sv, cv := s.ToFloat64s(), c.ToFloat64s()
			for i := range sv {
				assert.InDelta(t, 1.0, sv[i]*sv[i]+cv[i]*cv[i], tt.tol)
			}
		})
	}
}

func TestArcsinOfSin(t *testing.T) {
	backend := newTestBackend()
	x := must.M1(ndarray.Linspace(-math.Pi/2, math.Pi/2, 101))
	s := must.M1(backend.Sin(x))
	back := must.M1(backend.Arcsin(s))
	assert.InDeltaSlice(t, x.ToFloat64s(), back.ToFloat64s(), 1e-7)
}

func TestArcsin_OutOfDomainIsNaN(t *testing.T) {
	backend := newTestBackend()
	x := must.M1(ndarray.FromSlice([]float64{-2, -1, 0.5, 1, 3}, 5))
	got := must.M1(backend.Arcsin(x))
	v := got.ToFloat64s()
	assert.True(t, math.IsNaN(v[0]))
	assert.InDelta(t, -math.Pi/2, v[1], 1e-15)
	assert.InDelta(t, math.Asin(0.5), v[2], 1e-15)
	assert.InDelta(t, math.Pi/2, v[3], 1e-15)
	assert.True(t, math.IsNaN(v[4]))
}

func TestUnaryFunctions(t *testing.T) {
	backend := newTestBackend()
	x := must.M1(ndarray.FromSlice([]float64{0.25, 0.5, 2}, 3))
	tests := []struct {
		name string
		op   func(*ndarray.Array, ...OpOption) (*ndarray.Array, error)
		fn   func(float64) float64
	}{
		{"tan", backend.Tan, math.Tan},
		{"arccos", backend.Arccos, math.Acos},
		{"arctan", backend.Arctan, math.Atan},
		{"sinh", backend.Sinh, math.Sinh},
		{"cosh", backend.Cosh, math.Cosh},
		{"tanh", backend.Tanh, math.Tanh},
		{"exp", backend.Exp, math.Exp},
		{"log", backend.Log, math.Log},
		{"sqrt", backend.Sqrt, math.Sqrt},
		{"deg2rad", backend.Deg2Rad, func(v float64) float64 { return v * math.Pi / 180 }},
		{"rad2deg", backend.Rad2Deg, func(v float64) float64 { return v * 180 / math.Pi }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := must.M1(tt.op(x)).ToFloat64s()
			for i, v := range x.ToFloat64s() {
				want := tt.fn(v)
				if math.IsNaN(want) {
					assert.True(t, math.IsNaN(got[i]))
					continue
				}
				assert.InDelta(t, want, got[i], 1e-12*math.Max(1, math.Abs(want)))
			}
		})
	}
}

func TestBinaryBroadcast(t *testing.T) {
	backend := newTestBackend()
	y := must.M1(ndarray.FromSlice([]float64{1, -1, 0}, 3, 1))
	x := must.M1(ndarray.FromSlice([]float32{1, -1}, 2))
	got := must.M1(backend.Arctan2(y, x))
	assert.Equal(t, ndarray.Shape{3, 2}, got.Shape())
	assert.Equal(t, ndarray.Float64, got.DType())
	assert.InDeltaSlice(t, []float64{
		math.Atan2(1, 1), math.Atan2(1, -1),
		math.Atan2(-1, 1), math.Atan2(-1, -1),
		0, math.Pi,
	}, got.ToFloat64s(), 1e-15)

	h := must.M1(backend.Hypot(ndarray.Scalar(3, ndarray.Int8), must.M1(ndarray.FromSlice([]int8{4, 0}, 2))))
	assert.Equal(t, []float64{5, 3}, h.ToFloat64s())

	_, err := backend.Hypot(must.M1(ndarray.Zeros(ndarray.Shape{3}, ndarray.Float64)),
		must.M1(ndarray.Zeros(ndarray.Shape{4}, ndarray.Float64)))
	assert.ErrorIs(t, err, ndarray.ErrShape)
}

func TestWhere_AllFalseLeavesOutUnchanged(t *testing.T) {
	for name, backend := range backends() {
		t.Run(name, func(t *testing.T) {
			x := arange(t, 0, 50, 1, ndarray.Float64)
			out := must.M1(ndarray.Full(x.Shape(), ndarray.Float64, 42))
			mask := must.M1(ndarray.Zeros(x.Shape(), ndarray.Bool))
			got := must.M1(backend.Sin(x, Where(mask), Out(out)))
			assert.Same(t, out, got)
			for _, v := range out.ToFloat64s() {
				require.Equal(t, 42.0, v)
			}
		})
	}
}

func TestWhere_Partial(t *testing.T) {
	backend := newTestBackend()
	a := arange(t, 0, 6, 1, ndarray.Int32)
	mask := must.M1(backend.Greater(a, ndarray.Scalar(2, ndarray.Int32)))
	out := must.M1(ndarray.Full(a.Shape(), ndarray.Float64, -1))
	must.M1(backend.Sin(a, Where(mask), Out(out)))
	assert.InDeltaSlice(t, []float64{-1, -1, -1, math.Sin(3), math.Sin(4), math.Sin(5)}, out.ToFloat64s(), 1e-15)

	// A broadcast mask selects whole columns.
	m := must.M1(ndarray.Zeros(ndarray.Shape{2, 3}, ndarray.Float64))
	cols := must.M1(ndarray.FromSlice([]bool{true, false, true}, 3))
	fresh := must.M1(backend.Exp(m, Where(cols)))
	assert.Equal(t, []float64{1, 0, 1, 1, 0, 1}, fresh.ToFloat64s())
}

func TestWhere_MustBeBool(t *testing.T) {
	backend := newTestBackend()
	x := arange(t, 0, 3, 1, ndarray.Float64)
	_, err := backend.Sin(x, Where(must.M1(ndarray.Zeros(ndarray.Shape{3}, ndarray.Int8))))
	assert.ErrorIs(t, err, ndarray.ErrDType)
	_, err = backend.Sin(x, Where(must.M1(ndarray.Zeros(ndarray.Shape{4}, ndarray.Bool))))
	assert.ErrorIs(t, err, ndarray.ErrShape)
}

func TestOut_ConvertsIntoOutDType(t *testing.T) {
	backend := newTestBackend()
	x := must.M1(ndarray.FromSlice([]float64{0.5, 1, -1, 100}, 4))
	out := must.M1(ndarray.Zeros(ndarray.Shape{4}, ndarray.Int8))
	got := must.M1(backend.Rad2Deg(x, Out(out)))
	assert.Same(t, out, got)
	assert.Equal(t, ndarray.Int8, got.DType())
	// 28.6, 57.3, -57.3 truncate toward zero; 5729.6 saturates.
	assert.Equal(t, []int64{28, 57, -57, 127}, got.ToInt64s())

	nan := must.M1(ndarray.Full(ndarray.Shape{}, ndarray.Int32, 9))
	must.M1(backend.Arcsin(ndarray.Scalar(2, ndarray.Float64), Out(nan)))
	assert.Equal(t, []int64{0}, nan.ToInt64s())
}

func TestOut_ShapeMismatch(t *testing.T) {
	backend := newTestBackend()
	x := arange(t, 0, 6, 1, ndarray.Float64)
	out := must.M1(ndarray.Zeros(ndarray.Shape{2, 3}, ndarray.Float64))
	_, err := backend.Sin(x, Out(out))
	assert.ErrorIs(t, err, ndarray.ErrOutOfBounds)

	// out may not be smaller and broadcast up either.
	small := must.M1(ndarray.Zeros(ndarray.Shape{1}, ndarray.Float64))
	_, err = backend.Sin(x, Out(small))
	assert.ErrorIs(t, err, ndarray.ErrOutOfBounds)

	// A broadcast view would write one element several times.
	wide := must.M1(small.BroadcastTo(ndarray.Shape{6}))
	_, err = backend.Sin(x, Out(wide))
	assert.ErrorIs(t, err, ndarray.ErrValue)
}

func TestOut_StridedAndAliased(t *testing.T) {
	backend := newTestBackend()

	// In place.
	x := arange(t, 0, 8, 1, ndarray.Float64)
	must.M1(backend.Sin(x, Out(x)))
	for i, v := range x.ToFloat64s() {
		assert.InDelta(t, math.Sin(float64(i)), v, 1e-15)
	}

	// Reading a reversed view of the buffer being written.
	y := arange(t, 0, 8, 1, ndarray.Float64)
	rev := must.M1(y.Slice(ndarray.Step(-1)))
	must.M1(backend.Deg2Rad(rev, Out(y)))
	for i, v := range y.ToFloat64s() {
		assert.InDelta(t, float64(7-i)*math.Pi/180, v, 1e-15)
	}

	// Writing into every other element of a larger buffer.
	z := must.M1(ndarray.Full(ndarray.Shape{8}, ndarray.Float32, -1))
	odd := must.M1(z.Slice(ndarray.From(1, 2)))
	must.M1(backend.Cos(must.M1(ndarray.Zeros(ndarray.Shape{4}, ndarray.Int64)), Out(odd)))
	assert.Equal(t, []float64{-1, 1, -1, 1, -1, 1, -1, 1}, z.ToFloat64s())
}

func TestUfunc_NilOperand(t *testing.T) {
	backend := newTestBackend()
	_, err := backend.Sin(nil)
	assert.ErrorIs(t, err, ndarray.ErrValue)
}
