// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import (
	"testing"

	"github.com/g3n/sceneindex/math32"
	"github.com/stretchr/testify/assert"
)

func TestToTargetTranslationOnly(t *testing.T) {
	local := math32.NewMatrix4().MakeTranslation(10, 20, 30)
	target := ToTarget(local)

	var pos math32.Vector3
	var rot math32.Quaternion
	var scale math32.Vector3
	target.Decompose(&pos, &rot, &scale)

	assert.InDelta(t, 20, pos.X, 1e-4)
	assert.InDelta(t, -10, pos.Y, 1e-4)
	assert.InDelta(t, 30, pos.Z, 1e-4)
}
