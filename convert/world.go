// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import "github.com/g3n/sceneindex/math32"

// ToTarget converts a local transform expressed in source coordinates
// into the equivalent transform in target coordinates, by decomposing
// it into translation/rotation/scale, converting each component with
// the mapping of §4.3, and recomposing.
func ToTarget(local *math32.Matrix4) *math32.Matrix4 {
	var pos, scale math32.Vector3
	var rot math32.Quaternion
	local.Decompose(&pos, &rot, &scale)

	targetPos := Point(pos)
	targetRot := Quaternion(rot)
	targetScale := Scale(scale)

	out := math32.NewMatrix4()
	out.Compose(&targetPos, &targetRot, &targetScale)
	return out
}
