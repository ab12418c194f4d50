// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import (
	"testing"

	"github.com/g3n/sceneindex/math32"
	"github.com/stretchr/testify/assert"
)

func TestPointMapping(t *testing.T) {
	got := Point(math32.Vector3{X: 10, Y: 20, Z: 30})
	assert.Equal(t, math32.Vector3{X: 20, Y: -10, Z: 30}, got)
}

func TestPointInvolution(t *testing.T) {
	orig := math32.Vector3{X: 1, Y: 2, Z: 3}
	got := InversePoint(Point(orig))
	assert.InDelta(t, orig.X, got.X, 1e-5)
	assert.InDelta(t, orig.Y, got.Y, 1e-5)
	assert.InDelta(t, orig.Z, got.Z, 1e-5)
}

func TestScaleHasNoSignFlip(t *testing.T) {
	got := Scale(math32.Vector3{X: 2, Y: 3, Z: 4})
	assert.Equal(t, math32.Vector3{X: 3, Y: 2, Z: 4}, got)
}

func TestQuaternionInvolution(t *testing.T) {
	orig := math32.Quaternion{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9}
	got := InverseQuaternion(Quaternion(orig))
	assert.InDelta(t, orig.X, got.X, 1e-5)
	assert.InDelta(t, orig.Y, got.Y, 1e-5)
	assert.InDelta(t, orig.Z, got.Z, 1e-5)
	assert.InDelta(t, orig.W, got.W, 1e-5)
}

func TestExtentRecomputesMinMax(t *testing.T) {
	min := math32.Vector3{X: -1, Y: -1, Z: -1}
	max := math32.Vector3{X: 1, Y: 1, Z: 1}
	gotMin, gotMax := Extent(min, max)
	assert.Equal(t, math32.Vector3{X: -1, Y: -1, Z: -1}, gotMin)
	assert.Equal(t, math32.Vector3{X: 1, Y: 1, Z: 1}, gotMax)
}
