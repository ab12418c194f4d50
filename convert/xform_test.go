// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import (
	"testing"

	"github.com/g3n/sceneindex/math32"
	"github.com/g3n/sceneindex/usd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalTransformTranslateThenConvert(t *testing.T) {
	src := `def Xform "a" {
  double3 xformOp:translate = (10, 20, 30)
  uniform token[] xformOpOrder = ["xformOp:translate"]
}
`
	stage := usd.Parse([]byte(src), "root.usda")
	prim := stage.Roots[0]

	local := LocalTransform(prim)
	var pos math32.Vector3
	var rot math32.Quaternion
	var scale math32.Vector3
	local.Decompose(&pos, &rot, &scale)

	assert.Equal(t, float32(10), pos.X)
	assert.Equal(t, float32(20), pos.Y)
	assert.Equal(t, float32(30), pos.Z)

	worldPos := Point(pos)
	assert.InDelta(t, float32(20), worldPos.X, 1e-4)
	assert.InDelta(t, float32(-10), worldPos.Y, 1e-4)
	assert.InDelta(t, float32(30), worldPos.Z, 1e-4)
}

func TestLocalTransformAbsentOrderIsIdentity(t *testing.T) {
	src := `def Xform "a" {
  double3 xformOp:translate = (10, 20, 30)
}
`
	stage := usd.Parse([]byte(src), "root.usda")
	prim := stage.Roots[0]
	local := LocalTransform(prim)

	identity := math32.NewMatrix4()
	assert.Equal(t, *identity, *local)
}

func TestLocalTransformBareMatrixTransform(t *testing.T) {
	src := `def Xform "a" {
  matrix4d xformOp:transform = ( (1,0,0,5), (0,1,0,6), (0,0,1,7), (0,0,0,1) )
}
`
	stage := usd.Parse([]byte(src), "root.usda")
	prim := stage.Roots[0]
	local := LocalTransform(prim)

	var pos math32.Vector3
	var rot math32.Quaternion
	var scale math32.Vector3
	local.Decompose(&pos, &rot, &scale)
	require.InDelta(t, 5, pos.X, 1e-4)
	require.InDelta(t, 6, pos.Y, 1e-4)
	require.InDelta(t, 7, pos.Z, 1e-4)
}
