// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for array operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - All eleven data types, with NumPy-compatible promotion and broadcasting
//   - Where masks and out buffers for element-wise functions
//   - Axis reductions, NaN-aware variants included
//
// # Basic Usage
//
//	backend := cpu.New()
//	a, _ := ndarray.FromNested([][]float64{{1, math.NaN()}, {3, 2}})
//	m, _ := backend.NanMin(a, ndarray.Axis(1)) // [1 2]
//
// # Configuration
//
// Element loops and reduction slices are split across goroutines. The defaults come
// from the environment:
//   - NDARRAY_NUM_WORKERS: number of goroutines (1 disables parallelism)
//   - NDARRAY_MIN_CHUNK: minimum elements per goroutine
//
// Use WithParallelConfig to override them per backend.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. It holds no mutable state after New.
package cpu
