package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	assert.Equal(t, 1, Shape{}.NumElements())
	assert.Equal(t, 0, Shape{3, 0, 2}.NumElements())
	assert.Equal(t, 24, Shape{2, 3, 4}.NumElements())
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, "(2, 3)", Shape{2, 3}.String())
	assert.Equal(t, "(5,)", Shape{5}.String())
	assert.Equal(t, "()", Shape{}.String())
	assert.ErrorIs(t, Shape{2, -1}.Validate(), ErrShape)
	assert.True(t, Shape{1, 2}.Equal(Shape{1, 2}))
	assert.False(t, Shape{1, 2}.Equal(Shape{2, 1}))
}

func TestNormalizeAxis(t *testing.T) {
	ax, err := NormalizeAxis(-1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, ax)
	_, err = NormalizeAxis(3, 3)
	assert.ErrorIs(t, err, ErrIndex)
	_, err = NormalizeAxis(-4, 3)
	assert.ErrorIs(t, err, ErrIndex)
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name     string
		shapes   []Shape
		expected Shape
		err      bool
	}{
		{"same", []Shape{{2, 3}, {2, 3}}, Shape{2, 3}, false},
		{"stretch ones", []Shape{{3, 1}, {1, 5}}, Shape{3, 5}, false},
		{"pad leading", []Shape{{5}, {2, 1, 5}}, Shape{2, 1, 5}, false},
		{"scalar", []Shape{{}, {4, 4}}, Shape{4, 4}, false},
		{"three operands", []Shape{{4, 1, 1}, {3, 1}, {2}}, Shape{4, 3, 2}, false},
		{"zero size", []Shape{{0, 1}, {1, 3}}, Shape{0, 3}, false},
		{"incompatible", []Shape{{3, 4}, {3, 5}}, nil, true},
		{"incompatible third", []Shape{{2, 1}, {1, 3}, {4}}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BroadcastShapes(tt.shapes...)
			if tt.err {
				assert.ErrorIs(t, err, ErrShape)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResultType(t *testing.T) {
	tests := []struct {
		a, b     DataType
		expected DataType
	}{
		{Int16, Int16, Int16},
		{Bool, Int8, Int8},
		{Bool, Bool, Bool},
		{Int8, Int32, Int32},
		{Uint8, Uint32, Uint32},
		{Int8, Uint8, Int16},
		{Int16, Uint8, Int16},
		{Int32, Uint16, Int32},
		{Int32, Uint32, Int64},
		{Int64, Uint64, Float64},
		{Int8, Uint64, Float64},
		{Int64, Float32, Float32},
		{Float32, Float64, Float64},
		{Uint64, Float32, Float32},
	}
	for _, tt := range tests {
		t.Run(tt.a.String()+"+"+tt.b.String(), func(t *testing.T) {
			got, err := ResultType(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			got, err = ResultType(tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got, "promotion must be symmetric")
		})
	}

	_, err := ResultType()
	assert.ErrorIs(t, err, ErrValue)
	_, err = ResultType(Int8, DataType(99))
	assert.ErrorIs(t, err, ErrDType)
}

func TestFloatResultType(t *testing.T) {
	for _, dt := range []DataType{Bool, Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64} {
		got, err := FloatResultType(dt)
		require.NoError(t, err)
		assert.Equal(t, Float64, got, dt.String())
	}
	got, err := FloatResultType(Float32)
	require.NoError(t, err)
	assert.Equal(t, Float32, got)
	got, err = FloatResultType(Float32, Float64)
	require.NoError(t, err)
	assert.Equal(t, Float64, got)
}

func TestDataType(t *testing.T) {
	assert.Equal(t, 2, Int16.Size())
	assert.Equal(t, 8, Uint64.Size())
	assert.Equal(t, 1, Bool.Size())
	assert.Equal(t, "float32", Float32.String())
	assert.True(t, Uint16.IsUnsigned())
	assert.False(t, Uint16.IsSigned())
	assert.True(t, Int8.IsInteger())
	assert.False(t, Bool.IsInteger())
	assert.Equal(t, Int16, DataTypeOf[int16]())

	dt, err := ParseDataType(" Int64 ")
	require.NoError(t, err)
	assert.Equal(t, Int64, dt)
	_, err = ParseDataType("complex128")
	assert.ErrorIs(t, err, ErrDType)
}
