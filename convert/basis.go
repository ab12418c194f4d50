// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import "github.com/g3n/sceneindex/math32"

// Basis converts a source-frame rotation matrix to target coordinates by
// remapping its basis vectors componentwise, renormalizing, and
// rebuilding a rotation from a forward (row 1) and up (row 2) vector, as
// specified in §4.3.
func Basis(m *math32.Matrix4) *math32.Matrix4 {
	var xAxis, yAxis, zAxis math32.Vector3
	m.ExtractBasis(&xAxis, &yAxis, &zAxis)

	forward := Point(yAxis)
	forward.Normalize()
	up := Point(zAxis)
	up.Normalize()

	return RotationFromBasis(forward, up)
}

// RotationFromBasis builds a rotation matrix from a forward direction and
// an up hint, using the teacher's own LookAt construction: the rotation
// places the origin at the eye, looking toward forward, oriented by up.
func RotationFromBasis(forward, up math32.Vector3) *math32.Matrix4 {
	eye := math32.Vector3{}
	target := forward
	m := math32.NewMatrix4()
	m.LookAt(&eye, &target, &up)
	return m
}
