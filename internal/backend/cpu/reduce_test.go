package cpu

import (
	"math"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/ndarray"
)

var nan = math.NaN()

func item(t *testing.T, a *ndarray.Array) float64 {
	t.Helper()
	v, err := a.Item()
	require.NoError(t, err)
	return v
}

func TestNanMin_MixedNaN(t *testing.T) {
	for name, backend := range backends() {
		t.Run(name, func(t *testing.T) {
			a := must.M1(ndarray.FromNested([][]float64{{1, 2}, {3, nan}}))

			all := must.M1(backend.NanMin(a))
			assert.Equal(t, 0, all.Rank())
			assert.Equal(t, 1.0, item(t, all))

			cols := must.M1(backend.NanMin(a, Axis(0)))
			assert.Equal(t, []float64{1, 2}, cols.ToFloat64s())

			rows := must.M1(backend.NanMin(a, Axis(1)))
			assert.Equal(t, []float64{1, 3}, rows.ToFloat64s())

			maxRows := must.M1(backend.NanMax(a, Axis(-1)))
			assert.Equal(t, []float64{2, 3}, maxRows.ToFloat64s())
		})
	}
}

func TestNanReductions_AllNaN(t *testing.T) {
	backend := newTestBackend()
	a := must.M1(ndarray.Full(ndarray.Shape{2, 3}, ndarray.Float64, nan))

	m := must.M1(backend.NanMin(a))
	assert.True(t, math.IsNaN(item(t, m)))

	rows := must.M1(backend.NanMax(a, Axis(1)))
	for _, v := range rows.ToFloat64s() {
		assert.True(t, math.IsNaN(v))
	}

	_, err := backend.NanArgmin(a, Axis(1))
	require.ErrorIs(t, err, ndarray.ErrAllNaN)
	var allNaN *ndarray.AllNaNError
	require.True(t, errors.As(err, &allNaN))
	assert.Equal(t, []int{0, 1}, allNaN.Slices)
	assert.Equal(t, "nanargmin", allNaN.Op)

	// Only the all-NaN lane is reported, but the whole call fails.
	b := must.M1(ndarray.FromNested([][]float64{{nan, 1, 0}, {nan, nan, nan}, {2, nan, 5}}))
	_, err = backend.NanArgmax(b, Axis(1))
	require.True(t, errors.As(err, &allNaN))
	assert.Equal(t, []int{1}, allNaN.Slices)

	idx := must.M1(backend.NanArgmax(b, Axis(0)))
	assert.Equal(t, []int64{2, 0, 2}, idx.ToInt64s())
}

func TestNanMin_Infinities(t *testing.T) {
	backend := newTestBackend()
	a := must.M1(ndarray.FromSlice([]float64{1, 2, nan, math.Inf(-1)}, 4))
	assert.Equal(t, math.Inf(-1), item(t, must.M1(backend.NanMin(a))))
	assert.Equal(t, int64(3), int64(item(t, must.M1(backend.NanArgmin(a)))))

	b := must.M1(ndarray.FromSlice([]float64{1, 2, nan, math.Inf(1)}, 4))
	assert.Equal(t, 1.0, item(t, must.M1(backend.NanMin(b))))
	assert.Equal(t, math.Inf(1), item(t, must.M1(backend.NanMax(b))))
	assert.Equal(t, 0.0, item(t, must.M1(backend.NanArgmin(b))))
}

func TestMinMax_NaNPropagates(t *testing.T) {
	backend := newTestBackend()
	a := must.M1(ndarray.FromNested([][]float64{{1, nan, 0}, {4, 5, 6}}))
	assert.True(t, math.IsNaN(item(t, must.M1(backend.Min(a)))))
	assert.True(t, math.IsNaN(item(t, must.M1(backend.Max(a)))))

	rows := must.M1(backend.Amin(a, Axis(1))).ToFloat64s()
	assert.True(t, math.IsNaN(rows[0]))
	assert.Equal(t, 4.0, rows[1])

	cols := must.M1(backend.Amax(a, Axis(0))).ToFloat64s()
	assert.Equal(t, 4.0, cols[0])
	assert.True(t, math.IsNaN(cols[1]))
	assert.Equal(t, 6.0, cols[2])
}

func TestArgminArgmax_NaN(t *testing.T) {
	backend := newTestBackend()
	tests := []struct {
		name           string
		values         []float64
		argmin, argmax int64
	}{
		{"leading NaN wins", []float64{nan, 1, 0}, 0, 0},
		{"inner NaN skipped", []float64{1, nan, 0}, 2, 0},
		{"inner NaN never chosen", []float64{1, nan, 2}, 0, 2},
		{"ties take first", []float64{3, 1, 3, 1}, 1, 0},
		{"infinities", []float64{math.Inf(1), 0, math.Inf(-1)}, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := must.M1(ndarray.FromSlice(tt.values, len(tt.values)))
			assert.Equal(t, []int64{tt.argmin}, must.M1(backend.Argmin(a)).ToInt64s())
			assert.Equal(t, []int64{tt.argmax}, must.M1(backend.Argmax(a)).ToInt64s())
		})
	}
}

func TestArgmax_FlatIndexAndAxis(t *testing.T) {
	backend := newTestBackend()
	a := must.M1(ndarray.FromNested([][]int32{{1, 9, 3}, {7, 2, 9}}))

	flat := must.M1(backend.Argmax(a))
	assert.Equal(t, ndarray.Int64, flat.DType())
	assert.Equal(t, 0, flat.Rank())
	assert.Equal(t, []int64{1}, flat.ToInt64s())

	assert.Equal(t, []int64{1, 0, 1}, must.M1(backend.Argmax(a, Axis(0))).ToInt64s())
	assert.Equal(t, []int64{1, 2}, must.M1(backend.Argmax(a, Axis(1))).ToInt64s())
	assert.Equal(t, []int64{0, 1}, must.M1(backend.Argmin(a, Axis(1))).ToInt64s())

	// A transposed, reversed view reduces over its logical layout.
	v := must.M1(must.M1(a.Transpose()).Slice(ndarray.Step(-1)))
	// v = [[3 9] [9 2] [1 7]]
	assert.Equal(t, []int64{1, 0, 1}, must.M1(backend.Argmax(v, Axis(1))).ToInt64s())
	assert.Equal(t, []int64{1}, must.M1(backend.Argmax(v)).ToInt64s())
}

func TestReduce_KeepDims(t *testing.T) {
	backend := newTestBackend()
	a := must.M1(arange(t, 0, 24, 1, ndarray.Float32).Reshape(2, 3, 4))

	m := must.M1(backend.Max(a, Axis(1), KeepDims()))
	assert.Equal(t, ndarray.Shape{2, 1, 4}, m.Shape())
	assert.Equal(t, ndarray.Float32, m.DType())
	assert.Equal(t, []float64{8, 9, 10, 11, 20, 21, 22, 23}, m.ToFloat64s())

	all := must.M1(backend.Min(a, KeepDims()))
	assert.Equal(t, ndarray.Shape{1, 1, 1}, all.Shape())
	assert.Equal(t, []float64{0}, all.ToFloat64s())

	idx := must.M1(backend.Argmin(a, Axis(-1), KeepDims()))
	assert.Equal(t, ndarray.Shape{2, 3, 1}, idx.Shape())
}

func TestReduce_IntegerTypes(t *testing.T) {
	backend := newTestBackend()
	i8 := must.M1(ndarray.FromSlice([]int8{-128, 5, 127, -3}, 4))
	assert.Equal(t, ndarray.Int8, must.M1(backend.Min(i8)).DType())
	assert.Equal(t, []int64{-128}, must.M1(backend.Min(i8)).ToInt64s())
	assert.Equal(t, []int64{127}, must.M1(backend.NanMax(i8)).ToInt64s())
	assert.Equal(t, []int64{2}, must.M1(backend.NanArgmax(i8)).ToInt64s())

	u := must.M1(ndarray.FromSlice([]uint64{1, math.MaxUint64, math.MaxUint64 - 1}, 3))
	top := must.M1(backend.Max(u))
	assert.Equal(t, uint64(math.MaxUint64), ndarray.Data[uint64](top)[0])
	assert.Equal(t, []int64{1}, must.M1(backend.Argmax(u)).ToInt64s())
}

func TestReduce_Errors(t *testing.T) {
	backend := newTestBackend()
	b := must.M1(ndarray.FromSlice([]bool{true, false}, 2))
	_, err := backend.Min(b)
	assert.ErrorIs(t, err, ndarray.ErrDType)

	empty := must.M1(ndarray.Zeros(ndarray.Shape{0, 3}, ndarray.Float64))
	_, err = backend.Max(empty)
	assert.ErrorIs(t, err, ndarray.ErrValue)
	_, err = backend.Argmin(empty, Axis(0))
	assert.ErrorIs(t, err, ndarray.ErrValue)

	// No lanes at all is fine.
	none := must.M1(backend.Min(empty, Axis(1)))
	assert.Equal(t, ndarray.Shape{0}, none.Shape())

	a := arange(t, 0, 4, 1, ndarray.Float64)
	_, err = backend.Max(a, Axis(1))
	assert.ErrorIs(t, err, ndarray.ErrIndex)
	_, err = backend.Max(a, Out(a))
	assert.ErrorIs(t, err, ndarray.ErrValue)
}

func TestReduce_LargeParallel(t *testing.T) {
	for name, backend := range backends() {
		t.Run(name, func(t *testing.T) {
			a := must.M1(arange(t, 0, 3000, 1, ndarray.Float64).Reshape(300, 10))
			data := ndarray.Data[float64](a)
			data[1234] = -5
			data[77] = nan

			argmin := must.M1(backend.NanArgmin(a, Axis(1))).ToInt64s()
			require.Len(t, argmin, 300)
			assert.Equal(t, int64(4), argmin[123])
			assert.Equal(t, int64(0), argmin[7])

			mins := must.M1(backend.Min(a, Axis(1))).ToFloat64s()
			assert.True(t, math.IsNaN(mins[7]))
			assert.Equal(t, -5.0, mins[123])
			assert.Equal(t, 2990.0, mins[299])
		})
	}
}
