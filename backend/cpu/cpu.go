// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/ndarray"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Option configures a Backend.
type Option = internalcpu.Option

// ParallelConfig controls how loops are split across goroutines.
type ParallelConfig = parallel.Config

// Compile-time check that Backend implements ndarray.Backend.
var _ ndarray.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/ndarray/backend/cpu"
//	    "github.com/born-ml/ndarray/ndarray"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x, _ := ndarray.Linspace(0, 1, 5)
//	    y, _ := backend.Sin(x)
//	}
func New(opts ...Option) *Backend {
	return internalcpu.New(opts...)
}

// WithParallelConfig sets the parallel configuration of the backend.
func WithParallelConfig(cfg ParallelConfig) Option {
	return internalcpu.WithParallelConfig(cfg)
}

// DefaultParallelConfig returns the configuration used when NDARRAY_NUM_WORKERS and
// NDARRAY_MIN_CHUNK are unset.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}
