// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import (
	"strings"

	"github.com/g3n/sceneindex/math32"
	"github.com/g3n/sceneindex/usd"
)

// LocalTransform composes prim's local transform, in source coordinates,
// from the ops named in its xformOpOrder attribute (§4.3). Absent
// xformOpOrder, the result is identity unless a bare "xformOp:transform"
// attribute is present, in which case that matrix is used directly.
func LocalTransform(prim *usd.Prim) *math32.Matrix4 {
	order, hasOrder := opOrder(prim)
	if !hasOrder {
		if v, ok := prim.Attr("xformOp:transform"); ok {
			if m, ok := v.AsMatrix4(); ok {
				return &m
			}
		}
		return math32.NewMatrix4()
	}

	acc := math32.NewMatrix4()
	for _, opName := range order {
		opMat := opMatrix(prim, opName)
		acc.Multiply(opMat)
	}
	return acc
}

func opOrder(prim *usd.Prim) ([]string, bool) {
	v, ok := prim.Attr("xformOpOrder")
	if !ok {
		return nil, false
	}
	names, ok := v.AsStringArray()
	if !ok || len(names) == 0 {
		return nil, false
	}
	return names, true
}

func opMatrix(prim *usd.Prim, opName string) *math32.Matrix4 {
	v, ok := prim.Attr(opName)
	if !ok {
		return math32.NewMatrix4()
	}
	switch {
	case strings.HasPrefix(opName, "xformOp:translate"):
		t, ok := v.AsVec3()
		if !ok {
			return math32.NewMatrix4()
		}
		return math32.NewMatrix4().MakeTranslation(t.X, t.Y, t.Z)
	case strings.HasPrefix(opName, "xformOp:scale"):
		s, ok := v.AsVec3()
		if !ok {
			return math32.NewMatrix4()
		}
		return math32.NewMatrix4().MakeScale(s.X, s.Y, s.Z)
	case strings.HasPrefix(opName, "xformOp:rotateXYZ"):
		e, ok := v.AsVec3()
		if !ok {
			return math32.NewMatrix4()
		}
		euler := math32.Vector3{
			X: math32.DegToRad(e.X),
			Y: math32.DegToRad(e.Y),
			Z: math32.DegToRad(e.Z),
		}
		return math32.NewMatrix4().MakeRotationFromEuler(&euler)
	case strings.HasPrefix(opName, "xformOp:rotateX"):
		d, ok := v.AsF32()
		if !ok {
			return math32.NewMatrix4()
		}
		return math32.NewMatrix4().MakeRotationX(math32.DegToRad(d))
	case strings.HasPrefix(opName, "xformOp:rotateY"):
		d, ok := v.AsF32()
		if !ok {
			return math32.NewMatrix4()
		}
		return math32.NewMatrix4().MakeRotationY(math32.DegToRad(d))
	case strings.HasPrefix(opName, "xformOp:rotateZ"):
		d, ok := v.AsF32()
		if !ok {
			return math32.NewMatrix4()
		}
		return math32.NewMatrix4().MakeRotationZ(math32.DegToRad(d))
	case strings.HasPrefix(opName, "xformOp:orient"):
		q4, ok := v.AsVec4()
		if !ok {
			return math32.NewMatrix4()
		}
		q := math32.NewQuaternion(q4.X, q4.Y, q4.Z, q4.W)
		return math32.NewMatrix4().MakeRotationFromQuaternion(q)
	case strings.HasPrefix(opName, "xformOp:transform"):
		m, ok := v.AsMatrix4()
		if !ok {
			return math32.NewMatrix4()
		}
		return &m
	default:
		return math32.NewMatrix4()
	}
}
