// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/backend/cpu"
)

// OpOption configures a single element-wise or reduction call.
type OpOption = cpu.OpOption

// Where restricts an element-wise call to the positions where the Bool mask is true.
func Where(mask *Array) OpOption { return cpu.Where(mask) }

// Out makes an element-wise call write into out instead of allocating a result.
func Out(out *Array) OpOption { return cpu.Out(out) }

// Axis makes a reduction collapse only the given axis.
func Axis(axis int) OpOption { return cpu.Axis(axis) }

// KeepDims keeps reduced dimensions with size 1.
func KeepDims() OpOption { return cpu.KeepDims() }
