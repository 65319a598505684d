// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides the public API of the n-dimensional array engine.
//
// # Overview
//
// An Array is a strided view (shape, strides, offset) over a reference-counted buffer:
//   - Slicing with negative and stepped ranges, transposes and reshapes are views
//   - Eleven data types with NumPy-style promotion and broadcasting
//   - Element-wise functions with where masks and out buffers (see Backend)
//   - Axis reductions with NaN-aware variants
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ndarray/backend/cpu"
//	    "github.com/born-ml/ndarray/ndarray"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    a, _ := ndarray.Arange(0, 10, 1, ndarray.Int16)
//	    even, _ := a.Slice(ndarray.Step(2))      // view: [0 2 4 6 8]
//	    rev, _ := a.Slice(ndarray.Step(-1))      // view: [9 8 ... 0]
//	    s, _ := backend.Sin(even)                // float64 result
//	    i, _ := backend.Argmax(rev)              // 0
//	}
//
// # Errors
//
// Failures are returned as errors wrapping one of the Err* sentinels; match them with
// errors.Is. Structural checks (shapes, dtypes, axes) run before any element is touched.
//
// # Thread Safety
//
// Arrays may be read concurrently. Concurrent writes to overlapping views must be
// serialized by the caller.
package ndarray
