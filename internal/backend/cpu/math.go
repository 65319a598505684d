package cpu

import (
	"math"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// Real-valued ufuncs. Domain errors are not special-cased: arcsin(2) is NaN, as math.Asin defines.
var (
	ufuncSin     = unary("sin", math.Sin)
	ufuncCos     = unary("cos", math.Cos)
	ufuncTan     = unary("tan", math.Tan)
	ufuncArcsin  = unary("arcsin", math.Asin)
	ufuncArccos  = unary("arccos", math.Acos)
	ufuncArctan  = unary("arctan", math.Atan)
	ufuncSinh    = unary("sinh", math.Sinh)
	ufuncCosh    = unary("cosh", math.Cosh)
	ufuncTanh    = unary("tanh", math.Tanh)
	ufuncExp     = unary("exp", math.Exp)
	ufuncLog     = unary("log", math.Log)
	ufuncSqrt    = unary("sqrt", math.Sqrt)
	ufuncDeg2Rad = unary("deg2rad", func(x float64) float64 { return x * (math.Pi / 180) })
	ufuncRad2Deg = unary("rad2deg", func(x float64) float64 { return x * (180 / math.Pi) })
	ufuncArctan2 = ufunc{name: "arctan2", nin: 2, fn: math.Atan2}
	ufuncHypot   = ufunc{name: "hypot", nin: 2, fn: math.Hypot}
)

func unary(name string, fn func(float64) float64) ufunc {
	return ufunc{name: name, nin: 1, fn: func(x, _ float64) float64 { return fn(x) }}
}

// Sin computes the element-wise sine.
//
// Integer and bool inputs are computed in float64; float32 inputs stay float32.
// Options: Where(mask) restricts the written positions, Out(out) writes into out.
//
// Example:
//
//	a, _ := ndarray.Arange(0, 10, 1, ndarray.Int16)
//	a, _ = a.Slice(ndarray.Step(2))
//	b, _ := backend.Sin(a) // float64: [0 0.909297 -0.756802 -0.279415 0.989358]
func (cpu *CPUBackend) Sin(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.applyFloat(ufuncSin, []*ndarray.Array{x}, opts)
}

// Cos computes the element-wise cosine. See Sin for promotion and options.
func (cpu *CPUBackend) Cos(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.applyFloat(ufuncCos, []*ndarray.Array{x}, opts)
}

// Tan computes the element-wise tangent.
func (cpu *CPUBackend) Tan(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.applyFloat(ufuncTan, []*ndarray.Array{x}, opts)
}

// Arcsin computes the element-wise inverse sine. Values outside [-1, 1] give NaN.
func (cpu *CPUBackend) Arcsin(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.applyFloat(ufuncArcsin, []*ndarray.Array{x}, opts)
}

// Arccos computes the element-wise inverse cosine. Values outside [-1, 1] give NaN.
func (cpu *CPUBackend) Arccos(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.applyFloat(ufuncArccos, []*ndarray.Array{x}, opts)
}

// Arctan computes the element-wise inverse tangent.
func (cpu *CPUBackend) Arctan(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.applyFloat(ufuncArctan, []*ndarray.Array{x}, opts)
}

// Sinh computes the element-wise hyperbolic sine.
func (cpu *CPUBackend) Sinh(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.applyFloat(ufuncSinh, []*ndarray.Array{x}, opts)
}

// Cosh computes the element-wise hyperbolic cosine.
func (cpu *CPUBackend) Cosh(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.applyFloat(ufuncCosh, []*ndarray.Array{x}, opts)
}

// Tanh computes the element-wise hyperbolic tangent.
func (cpu *CPUBackend) Tanh(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.applyFloat(ufuncTanh, []*ndarray.Array{x}, opts)
}

// Exp computes the element-wise exponential.
func (cpu *CPUBackend) Exp(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.applyFloat(ufuncExp, []*ndarray.Array{x}, opts)
}

// Log computes the element-wise natural logarithm. Negative inputs give NaN, zero gives -Inf.
func (cpu *CPUBackend) Log(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.applyFloat(ufuncLog, []*ndarray.Array{x}, opts)
}

// Sqrt computes the element-wise square root. Negative inputs give NaN.
func (cpu *CPUBackend) Sqrt(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.applyFloat(ufuncSqrt, []*ndarray.Array{x}, opts)
}

// Deg2Rad converts degrees to radians.
func (cpu *CPUBackend) Deg2Rad(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.applyFloat(ufuncDeg2Rad, []*ndarray.Array{x}, opts)
}

// Rad2Deg converts radians to degrees.
func (cpu *CPUBackend) Rad2Deg(x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.applyFloat(ufuncRad2Deg, []*ndarray.Array{x}, opts)
}

// Arctan2 computes the element-wise arc tangent of y/x using the signs of both to pick
// the quadrant. y and x broadcast against each other.
func (cpu *CPUBackend) Arctan2(y, x *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.applyFloat(ufuncArctan2, []*ndarray.Array{y, x}, opts)
}

// Hypot computes sqrt(x*x + y*y) element-wise with broadcasting.
func (cpu *CPUBackend) Hypot(x, y *ndarray.Array, opts ...OpOption) (*ndarray.Array, error) {
	return cpu.applyFloat(ufuncHypot, []*ndarray.Array{x, y}, opts)
}
