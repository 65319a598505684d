// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package random_test

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"

	"github.com/born-ml/ndarray/ndarray"
	"github.com/born-ml/ndarray/random"
)

func TestSeededState(t *testing.T) {
	rs := random.NewRandomState(0)
	x := must.M1(rs.Rand(2, 2))
	assert.Equal(t, ndarray.Shape{2, 2}, x.Shape())
	assert.InDelta(t, 0.5488135039273248, x.At(0, 0), 1e-15)
}

func TestPackageFunctions(t *testing.T) {
	random.Seed(0)
	x := must.M1(random.Randint(0, 10, ndarray.Int64, 5))
	assert.Equal(t, []int64{5, 0, 3, 3, 7}, x.ToInt64s())

	b := must.M1(random.Beta(ndarray.Scalar(0.5, ndarray.Float64), ndarray.Scalar(0.5, ndarray.Float64), 3))
	for _, v := range b.ToFloat64s() {
		assert.True(t, v > 0 && v < 1)
	}
}
