package ndarray

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arange(t *testing.T, n int, dtype DataType) *Array {
	t.Helper()
	a, err := Arange(0, float64(n), 1, dtype)
	require.NoError(t, err)
	return a
}

func TestSlice(t *testing.T) {
	a := arange(t, 10, Int64)

	tests := []struct {
		name     string
		spec     SliceSpec
		expected []int64
	}{
		{"all", All(), []int64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"step 2", Step(2), []int64{0, 2, 4, 6, 8}},
		{"step 3", Step(3), []int64{0, 3, 6, 9}},
		{"reverse", Step(-1), []int64{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}},
		{"reverse step 3", Step(-3), []int64{9, 6, 3, 0}},
		{"range", S(2, 7, 1), []int64{2, 3, 4, 5, 6}},
		{"negative bounds", S(-3, -1, 1), []int64{7, 8}},
		{"negative step bounds", S(7, 2, -2), []int64{7, 5, 3}},
		{"from", From(6, 1), []int64{6, 7, 8, 9}},
		{"from reversed", From(3, -1), []int64{3, 2, 1, 0}},
		{"to", To(3, 1), []int64{0, 1, 2}},
		{"to reversed", To(6, -1), []int64{9, 8, 7}},
		{"clamped", S(-100, 100, 4), []int64{0, 4, 8}},
		{"empty", S(5, 2, 1), []int64{}},
		{"empty reversed", S(2, 5, -1), []int64{}},
		{"out of range", S(20, 30, 1), []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := a.Slice(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, Shape{len(tt.expected)}, v.Shape())
			assert.Equal(t, tt.expected, v.ToInt64s())
			assert.True(t, SharesBuffer(a, v))
		})
	}
}

func TestSlice_Errors(t *testing.T) {
	a := arange(t, 6, Float64)
	_, err := a.Slice(Step(0))
	assert.ErrorIs(t, err, ErrValue)
	_, err = a.Slice(All(), All())
	assert.ErrorIs(t, err, ErrIndex)
}

func TestSlice_2D(t *testing.T) {
	a := must.M1(arange(t, 12, Int32).Reshape(3, 4))
	v := must.M1(a.Slice(Step(-1), Step(2)))
	assert.Equal(t, Shape{3, 2}, v.Shape())
	assert.Equal(t, []int{-4, 2}, v.Strides())
	assert.Equal(t, 8, v.Offset())
	assert.Equal(t, []int64{8, 10, 4, 6, 0, 2}, v.ToInt64s())

	// Writes through a view are visible in the base array.
	v.SetAt(-1, 0, 0)
	assert.Equal(t, -1.0, a.At(2, 0))
}

func TestSlice_OfSlice(t *testing.T) {
	a := arange(t, 20, Int16)
	v := must.M1(a.Slice(Step(-2)))      // 19 17 ... 1
	w := must.M1(v.Slice(S(1, 8, 3)))    // 17 11 5
	assert.Equal(t, []int64{17, 11, 5}, w.ToInt64s())
	assert.Equal(t, []int{-6}, w.Strides())
}

func TestReshape(t *testing.T) {
	a := arange(t, 24, Float32)

	b := must.M1(a.Reshape(2, 3, 4))
	assert.Equal(t, Shape{2, 3, 4}, b.Shape())
	assert.Equal(t, []int{12, 4, 1}, b.Strides())
	assert.True(t, SharesBuffer(a, b))
	assert.Equal(t, 23.0, b.At(1, 2, 3))

	c := must.M1(b.Reshape(-1, 6))
	assert.Equal(t, Shape{4, 6}, c.Shape())

	_, err := a.Reshape(5, 5)
	assert.ErrorIs(t, err, ErrShape)
	_, err = a.Reshape(-1, -1)
	assert.ErrorIs(t, err, ErrValue)
	_, err = a.Reshape(7, -1)
	assert.ErrorIs(t, err, ErrShape)
}

func TestReshape_StridedView(t *testing.T) {
	a := arange(t, 24, Int64)
	even := must.M1(a.Slice(Step(2))) // 12 elements, stride 2

	// A uniformly strided 1-D view splits without copying.
	v := must.M1(even.Reshape(3, 4))
	assert.Equal(t, []int{8, 2}, v.Strides())
	assert.Equal(t, int64(22), v.IntAt(2, 3))

	rev := must.M1(a.Slice(Step(-1)))
	r := must.M1(rev.Reshape(2, 12))
	assert.Equal(t, []int{-12, -1}, r.Strides())
	assert.Equal(t, int64(23), r.IntAt(0, 0))

	// A transposed matrix cannot be flattened without a copy.
	m := must.M1(a.Reshape(4, 6))
	mt := must.M1(m.Transpose())
	_, err := mt.Reshape(24)
	assert.ErrorIs(t, err, ErrNonContiguous)
	assert.ErrorIs(t, err, ErrShape, "non-contiguous reshape is a shape error")

	flat := mt.Ravel()
	assert.False(t, SharesBuffer(flat, a))
	assert.Equal(t, int64(6), flat.IntAt(1))
}

func TestTransposeAndSwapAxes(t *testing.T) {
	a := must.M1(arange(t, 6, Float64).Reshape(2, 3))
	at := must.M1(a.Transpose())
	assert.Equal(t, Shape{3, 2}, at.Shape())
	assert.Equal(t, []float64{0, 3, 1, 4, 2, 5}, at.ToFloat64s())
	assert.False(t, at.IsContiguous())

	s := must.M1(a.SwapAxes(0, -1))
	assert.Equal(t, at.ToFloat64s(), s.ToFloat64s())

	_, err := a.Transpose(0, 0)
	assert.ErrorIs(t, err, ErrValue)
	_, err = a.Transpose(0)
	assert.ErrorIs(t, err, ErrValue)
	_, err = a.Transpose(0, 2)
	assert.ErrorIs(t, err, ErrIndex)
}

func TestSqueezeExpandBroadcast(t *testing.T) {
	a := must.M1(arange(t, 3, Int8).Reshape(1, 3, 1))
	s := must.M1(a.Squeeze())
	assert.Equal(t, Shape{3}, s.Shape())
	s0 := must.M1(a.Squeeze(0))
	assert.Equal(t, Shape{3, 1}, s0.Shape())
	_, err := a.Squeeze(1)
	assert.ErrorIs(t, err, ErrValue)

	e := must.M1(s.ExpandDims(0))
	assert.Equal(t, Shape{1, 3}, e.Shape())
	e = must.M1(s.ExpandDims(-1))
	assert.Equal(t, Shape{3, 1}, e.Shape())

	b := must.M1(e.BroadcastTo(Shape{3, 4}))
	assert.Equal(t, []int{1, 0}, b.Strides())
	assert.Equal(t, []int64{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2}, b.ToInt64s())
	_, err = e.BroadcastTo(Shape{2, 4})
	assert.ErrorIs(t, err, ErrShape)
}

func TestCopyAndAssign(t *testing.T) {
	a := arange(t, 6, Float64)
	rev := must.M1(a.Slice(Step(-1)))
	c := rev.Copy()
	assert.True(t, c.IsContiguous())
	assert.False(t, SharesBuffer(a, c))
	assert.Equal(t, []float64{5, 4, 3, 2, 1, 0}, c.ToFloat64s())

	// Assigning a view of the destination's own buffer goes through a temporary copy.
	require.NoError(t, Assign(a, rev))
	assert.Equal(t, []float64{5, 4, 3, 2, 1, 0}, a.ToFloat64s())

	m := must.M1(Zeros(Shape{2, 3}, Int32))
	row := must.M1(FromSlice([]float64{1.9, -2.9, 3}, 3))
	require.NoError(t, Assign(m, row))
	assert.Equal(t, []int64{1, -2, 3, 1, -2, 3}, m.ToInt64s())

	err := Assign(row, m)
	assert.ErrorIs(t, err, ErrShape)
}

func TestAsType(t *testing.T) {
	a := must.M1(FromSlice([]float64{-1.5, 0, 2.7, 300, 1e20}, 5))
	i8 := must.M1(a.AsType(Int8))
	assert.Equal(t, []int64{-1, 0, 2, 127, 127}, i8.ToInt64s())
	u8 := must.M1(a.AsType(Uint8))
	assert.Equal(t, []int64{0, 0, 2, 255, 255}, u8.ToInt64s())
	b := must.M1(a.AsType(Bool))
	assert.Equal(t, []bool{true, false, true, true, true}, b.ToBools())

	wide := must.M1(FromSlice([]int64{255, 256, -1}, 3))
	n := must.M1(wide.AsType(Uint8))
	assert.Equal(t, []int64{255, 0, 255}, n.ToInt64s())
}
