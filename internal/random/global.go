package random

import (
	"sync"
	"time"

	"k8s.io/klog/v2"

	"github.com/born-ml/ndarray/internal/ndarray"
)

var (
	globalOnce  sync.Once
	globalMu    sync.Mutex
	globalState *RandomState
)

// withGlobal runs fn on the process-wide state, creating it on first use seeded from the
// clock. Calls are serialized.
func withGlobal[T any](fn func(rs *RandomState) T) T {
	globalOnce.Do(func() {
		seed := uint32(time.Now().UnixNano()) //nolint:gosec // G115: only the low bits matter.
		globalState = NewRandomState(seed)
		klog.V(1).Infof("random: global state seeded from clock")
	})
	globalMu.Lock()
	defer globalMu.Unlock()
	return fn(globalState)
}

type result struct {
	a   *ndarray.Array
	err error
}

func global(fn func(rs *RandomState) (*ndarray.Array, error)) (*ndarray.Array, error) {
	r := withGlobal(func(rs *RandomState) result {
		a, err := fn(rs)
		return result{a, err}
	})
	return r.a, r.err
}

// Seed reseeds the process-wide state.
func Seed(seed uint32) {
	withGlobal(func(rs *RandomState) struct{} {
		rs.Seed(seed)
		return struct{}{}
	})
}

// Float64 draws a uniform float64 in [0, 1) from the process-wide state.
func Float64() float64 {
	return withGlobal((*RandomState).Float64)
}

// NormFloat64 draws a standard normal deviate from the process-wide state.
func NormFloat64() float64 {
	return withGlobal((*RandomState).NormFloat64)
}

// Rand is RandomState.Rand on the process-wide state.
func Rand(size ...int) (*ndarray.Array, error) {
	return global(func(rs *RandomState) (*ndarray.Array, error) { return rs.Rand(size...) })
}

// RandomSample is RandomState.RandomSample on the process-wide state.
func RandomSample(size ...int) (*ndarray.Array, error) {
	return global(func(rs *RandomState) (*ndarray.Array, error) { return rs.RandomSample(size...) })
}

// Randn is RandomState.Randn on the process-wide state.
func Randn(size ...int) (*ndarray.Array, error) {
	return global(func(rs *RandomState) (*ndarray.Array, error) { return rs.Randn(size...) })
}

// StandardNormal is RandomState.StandardNormal on the process-wide state.
func StandardNormal(size ...int) (*ndarray.Array, error) {
	return global(func(rs *RandomState) (*ndarray.Array, error) { return rs.StandardNormal(size...) })
}

// Uniform is RandomState.Uniform on the process-wide state.
func Uniform(low, high float64, size ...int) (*ndarray.Array, error) {
	return global(func(rs *RandomState) (*ndarray.Array, error) { return rs.Uniform(low, high, size...) })
}

// Normal is RandomState.Normal on the process-wide state.
func Normal(loc, scale float64, size ...int) (*ndarray.Array, error) {
	return global(func(rs *RandomState) (*ndarray.Array, error) { return rs.Normal(loc, scale, size...) })
}

// Randint is RandomState.Randint on the process-wide state.
func Randint(low, high int64, dtype ndarray.DataType, size ...int) (*ndarray.Array, error) {
	return global(func(rs *RandomState) (*ndarray.Array, error) { return rs.Randint(low, high, dtype, size...) })
}

// StandardGamma is RandomState.StandardGamma on the process-wide state.
func StandardGamma(shape float64, size ...int) (*ndarray.Array, error) {
	return global(func(rs *RandomState) (*ndarray.Array, error) { return rs.StandardGamma(shape, size...) })
}

// Beta is RandomState.Beta on the process-wide state.
func Beta(a, b *ndarray.Array, size ...int) (*ndarray.Array, error) {
	return global(func(rs *RandomState) (*ndarray.Array, error) { return rs.Beta(a, b, size...) })
}
