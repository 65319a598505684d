package ndarray

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// String renders the array in NumPy style, followed by its dtype, shape and logical size:
//
//	[[0 0.841471] [0.909297 0.14112]] float64(2, 2) 32 B
func (a *Array) String() string {
	var sb strings.Builder
	a.writeValues(&sb)
	//nolint:gosec // G115: ByteSize is non-negative.
	fmt.Fprintf(&sb, " %s%s %s", a.dtype, a.shape, humanize.Bytes(uint64(a.ByteSize())))
	return sb.String()
}

func (a *Array) writeValues(sb *strings.Builder) {
	var format func(pos int) string
	switch {
	case a.dtype == Bool:
		load := a.FloatLoader()
		format = func(pos int) string { return strconv.FormatBool(load(pos) != 0) }
	case a.dtype.IsFloat():
		load := a.FloatLoader()
		format = func(pos int) string { return strconv.FormatFloat(load(pos), 'g', 6, 64) }
	case a.dtype == Uint64:
		load := a.IntLoader()
		//nolint:gosec // G115: reinterpret the wrapped bits back as uint64.
		format = func(pos int) string { return strconv.FormatUint(uint64(load(pos)), 10) }
	default:
		load := a.IntLoader()
		format = func(pos int) string { return strconv.FormatInt(load(pos), 10) }
	}

	if len(a.shape) == 0 {
		sb.WriteString(format(a.offset))
		return
	}
	var rec func(dim, pos int)
	rec = func(dim, pos int) {
		sb.WriteByte('[')
		for i := 0; i < a.shape[dim]; i++ {
			if i > 0 {
				sb.WriteByte(' ')
			}
			p := pos + i*a.strides[dim]
			if dim == len(a.shape)-1 {
				sb.WriteString(format(p))
			} else {
				rec(dim+1, p)
			}
		}
		sb.WriteByte(']')
	}
	rec(0, a.offset)
}
