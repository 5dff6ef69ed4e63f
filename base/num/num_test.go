// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 3}, ToFloat64s([]int32{1, 2, 3}))
	assert.Equal(t, 4.0, ToFloat64(int32(4)))
}

func TestIsNaN(t *testing.T) {
	assert.True(t, IsNaN(math.NaN()))
	assert.True(t, IsNaN(float32(math.NaN())))
	assert.False(t, IsNaN(int64(1)))
}
