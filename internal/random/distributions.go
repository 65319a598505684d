package random

import (
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// NormFloat64 returns a standard normal deviate.
//
// The polar Box-Muller transform yields two deviates per accepted pair; the second is
// cached and returned by the next call.
func (rs *RandomState) NormFloat64() float64 {
	if rs.hasGauss {
		rs.hasGauss = false
		v := rs.gauss
		rs.gauss = 0
		return v
	}
	var x1, x2, r2 float64
	for {
		x1 = 2*rs.mt.float64() - 1
		x2 = 2*rs.mt.float64() - 1
		r2 = x1*x1 + x2*x2
		if r2 < 1 && r2 != 0 {
			break
		}
	}
	f := math.Sqrt(-2 * math.Log(r2) / r2)
	rs.gauss = f * x1
	rs.hasGauss = true
	return f * x2
}

// StandardNormal returns a float64 array of standard normal deviates.
func (rs *RandomState) StandardNormal(size ...int) (*ndarray.Array, error) {
	return fill(ndarray.Float64, size, rs.NormFloat64)
}

// Randn is StandardNormal.
func (rs *RandomState) Randn(size ...int) (*ndarray.Array, error) {
	return rs.StandardNormal(size...)
}

// StandardNormalAs is StandardNormal with a float32 or float64 result.
func (rs *RandomState) StandardNormalAs(dtype ndarray.DataType, size ...int) (*ndarray.Array, error) {
	return fill(dtype, size, rs.NormFloat64)
}

// Normal returns deviates of the normal distribution with mean loc and standard
// deviation scale. scale must be non-negative.
func (rs *RandomState) Normal(loc, scale float64, size ...int) (*ndarray.Array, error) {
	if scale < 0 || math.IsNaN(scale) {
		return nil, errors.Wrapf(ndarray.ErrValue, "normal: scale < 0 (got %g)", scale)
	}
	return fill(ndarray.Float64, size, func() float64 { return loc + scale*rs.NormFloat64() })
}

func (rs *RandomState) standardExponential() float64 {
	return -math.Log(1 - rs.mt.float64())
}

// gamma draws from Gamma(shape, 1): Marsaglia and Tsang for shape > 1, a rejection
// scheme on an exponential envelope for shape < 1.
func (rs *RandomState) gamma(shape float64) float64 {
	switch {
	case shape == 1:
		return rs.standardExponential()
	case shape == 0:
		return 0
	case shape < 1:
		for {
			u := rs.mt.float64()
			v := rs.standardExponential()
			if u <= 1-shape {
				x := math.Pow(u, 1/shape)
				if x <= v {
					return x
				}
			} else {
				y := -math.Log((1 - u) / shape)
				x := math.Pow(1-shape+shape*y, 1/shape)
				if x <= v+y {
					return x
				}
			}
		}
	}

	b := shape - 1.0/3.0
	c := 1 / math.Sqrt(9*b)
	for {
		var x, v float64
		for {
			x = rs.NormFloat64()
			v = 1 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := rs.mt.float64()
		if u < 1-0.0331*(x*x)*(x*x) {
			return b * v
		}
		if math.Log(u) < 0.5*x*x+b*(1-v+math.Log(v)) {
			return b * v
		}
	}
}

// StandardGamma returns deviates of Gamma(shape, 1). shape must be non-negative.
func (rs *RandomState) StandardGamma(shape float64, size ...int) (*ndarray.Array, error) {
	if shape < 0 || math.IsNaN(shape) {
		return nil, errors.Wrapf(ndarray.ErrValue, "standard_gamma: shape < 0 (got %g)", shape)
	}
	return fill(ndarray.Float64, size, func() float64 { return rs.gamma(shape) })
}

// beta draws one Beta(a, b) deviate: Johnk's algorithm when both parameters are at
// most 1, otherwise the ratio Ga/(Ga+Gb) of two gamma deviates.
func (rs *RandomState) beta(a, b float64) float64 {
	if a <= 1 && b <= 1 {
		for {
			u := rs.mt.float64()
			v := rs.mt.float64()
			x := math.Pow(u, 1/a)
			y := math.Pow(v, 1/b)
			if x+y > 1 {
				continue
			}
			if x+y > 0 {
				return x / (x + y)
			}
			// Both powers underflowed: finish in log space.
			logX := math.Log(u) / a
			logY := math.Log(v) / b
			logM := max(logX, logY)
			logX -= logM
			logY -= logM
			return math.Exp(logX - math.Log(math.Exp(logX)+math.Exp(logY)))
		}
	}
	ga := rs.gamma(a)
	gb := rs.gamma(b)
	return ga / (ga + gb)
}

// openUnit moves 0 and 1 to the nearest representable values inside (0, 1).
func openUnit(v float64) float64 {
	switch {
	case v <= 0:
		return math.SmallestNonzeroFloat64
	case v >= 1:
		return math.Nextafter(1, 0)
	}
	return v
}

// Beta returns Beta(a, b) deviates, one per element of the broadcast of a and b.
//
// a and b hold positive, finite shape parameters. Without a size the result takes the broadcast
// shape of a and b; with one, a and b must broadcast to it. Every value lies in (0, 1).
//
// Example:
//
//	a, _ := ndarray.Arange(1, 11, 1, ndarray.Float64)
//	x, _ := rs.Beta(a, a, 1000, 10) // shape (1000, 10)
func (rs *RandomState) Beta(a, b *ndarray.Array, size ...int) (*ndarray.Array, error) {
	if a == nil || b == nil {
		return nil, errors.Wrap(ndarray.ErrValue, "beta: nil parameter")
	}
	shape, err := ndarray.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return nil, errors.WithMessage(err, "beta")
	}
	if len(size) > 0 {
		target := ndarray.Shape(size).Clone()
		full, err := ndarray.BroadcastShapes(shape, target)
		if err != nil || !full.Equal(target) {
			return nil, errors.Wrapf(ndarray.ErrShape, "beta: parameters of shape %s do not broadcast to size %s",
				shape, target)
		}
		shape = target
	}
	for i, p := range []*ndarray.Array{a, b} {
		for _, v := range p.ToFloat64s() {
			if !(v > 0) {
				return nil, errors.Wrapf(ndarray.ErrValue, "beta: %c <= 0 (got %g)", "ab"[i], v)
			}
			if math.IsInf(v, 1) {
				return nil, errors.Wrapf(ndarray.ErrValue, "beta: %c is not finite", "ab"[i])
			}
		}
	}

	out, err := ndarray.Empty(shape, ndarray.Float64)
	if err != nil {
		return nil, err
	}
	data := ndarray.Data[float64](out)
	loadA, loadB := a.FloatLoader(), b.FloatLoader()
	itA := ndarray.BroadcastIterator(a, shape)
	itB := ndarray.BroadcastIterator(b, shape)
	for i := range data {
		pa, _ := itA.Next()
		pb, _ := itB.Next()
		data[i] = openUnit(rs.beta(loadA(pa), loadB(pb)))
	}
	return out, nil
}
