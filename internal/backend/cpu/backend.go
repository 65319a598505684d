// Package cpu implements the array engine on the CPU: element-wise ufuncs with
// broadcasting, where masks and out buffers, and axis-aware reductions.
package cpu

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/internal/parallel"
)

// CPUBackend executes array operations on the CPU.
// It holds no mutable state after construction and is safe for concurrent use.
type CPUBackend struct {
	parallel parallel.Config
}

// Option configures a CPUBackend.
type Option func(*CPUBackend)

// WithParallelConfig sets how element loops and axis reductions are split across goroutines.
func WithParallelConfig(cfg parallel.Config) Option {
	return func(cpu *CPUBackend) {
		cpu.parallel = cfg
	}
}

// New creates a new CPU backend. Parallelism defaults to parallel.ConfigFromEnv().
func New(opts ...Option) *CPUBackend {
	cpu := &CPUBackend{
		parallel: parallel.ConfigFromEnv(),
	}
	for _, opt := range opts {
		opt(cpu)
	}
	return cpu
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// ParallelConfig returns the backend's parallel configuration.
func (cpu *CPUBackend) ParallelConfig() parallel.Config {
	return cpu.parallel
}

// guard runs fn, converting panics raised by kernels into errors, and prefixes the
// operation name to any error.
func guard(op string, fn func() error) (err error) {
	if caught := exceptions.TryCatch[error](func() { err = fn() }); caught != nil {
		err = caught
	}
	if err != nil {
		err = errors.WithMessage(err, op)
	}
	return err
}
