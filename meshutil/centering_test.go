// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshutil

import (
	"testing"

	"github.com/g3n/sceneindex/math32"
	"github.com/stretchr/testify/assert"
)

func TestShouldCenterSkeletonBoundIsAlways(t *testing.T) {
	min := math32.Vector3{X: 100, Y: 100, Z: 0}
	max := math32.Vector3{X: 120, Y: 120, Z: 1}
	assert.True(t, ShouldCenter("polySurfaceShape1", true, min, max))
}

func TestShouldCenterSkeletonBoundNearOriginStillCenters(t *testing.T) {
	min := math32.Vector3{X: -1, Y: -1, Z: 0}
	max := math32.Vector3{X: 1, Y: 1, Z: 1}
	assert.True(t, ShouldCenter("Character_body", true, min, max))
}

func TestShouldCenterGenericNameOffPivot(t *testing.T) {
	min := math32.Vector3{X: 100, Y: 100, Z: 0}
	max := math32.Vector3{X: 120, Y: 120, Z: 1}
	assert.True(t, ShouldCenter("polySurfaceShape1", false, min, max))
}

func TestShouldCenterNonGenericNameSkipped(t *testing.T) {
	min := math32.Vector3{X: 100, Y: 100, Z: 0}
	max := math32.Vector3{X: 120, Y: 120, Z: 1}
	assert.False(t, ShouldCenter("Character_body", false, min, max))
}

func TestShouldCenterNearOriginSkipped(t *testing.T) {
	min := math32.Vector3{X: -1, Y: -1, Z: 0}
	max := math32.Vector3{X: 1, Y: 1, Z: 1}
	assert.False(t, ShouldCenter("geoShape", false, min, max))
}

func TestCenterXYPreservesZ(t *testing.T) {
	points := []math32.Vector3{
		{X: 100, Y: 100, Z: 5},
		{X: 120, Y: 120, Z: 7},
	}
	min := math32.Vector3{X: 100, Y: 100, Z: 0}
	max := math32.Vector3{X: 120, Y: 120, Z: 7}

	centered, removed := CenterXY(points, min, max)

	assert.Equal(t, float32(110), removed.X)
	assert.Equal(t, float32(110), removed.Y)
	assert.Equal(t, float32(0), removed.Z)
	assert.Equal(t, float32(-10), centered[0].X)
	assert.Equal(t, float32(-10), centered[0].Y)
	assert.Equal(t, float32(5), centered[0].Z)
	assert.Equal(t, float32(10), centered[1].X)
	assert.Equal(t, float32(7), centered[1].Z)
}
