// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshutil

import (
	"testing"

	"github.com/g3n/sceneindex/math32"
	"github.com/stretchr/testify/assert"
)

func TestExpandVec3WithIndices(t *testing.T) {
	values := []math32.Vector3{
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 0},
	}
	indices := []int32{0, 1, 1, 0}
	slots := []int32{0, 1, 2, 3}

	got := ExpandVec3(values, indices, slots)

	assert.Equal(t, values[0], got[0])
	assert.Equal(t, values[1], got[1])
	assert.Equal(t, values[1], got[2])
	assert.Equal(t, values[0], got[3])
}

func TestExpandVec3WithoutIndices(t *testing.T) {
	values := []math32.Vector3{
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	slots := []int32{0, 1, 2}

	got := ExpandVec3(values, nil, slots)

	assert.Equal(t, values, got)
}

func TestPointsFromIndices(t *testing.T) {
	points := []math32.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	pointIdx := []int32{0, 1, 2}

	got := PointsFromIndices(points, pointIdx)

	assert.Equal(t, points, got)
}
