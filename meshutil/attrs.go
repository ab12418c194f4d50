// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshutil

import "github.com/g3n/sceneindex/math32"

// ExpandVec3 dereferences a primvar stored as (values, indices) into a
// dense per-face-vertex array ordered by faceVertexSlots, the slot
// numbers Triangulate returned. When indices is empty, values is assumed
// to already be one entry per face-vertex and is looked up directly by
// slot.
func ExpandVec3(values []math32.Vector3, indices []int32, faceVertexSlots []int32) []math32.Vector3 {
	out := make([]math32.Vector3, len(faceVertexSlots))
	for i, slot := range faceVertexSlots {
		if len(indices) > 0 {
			idx := int(indices[slot])
			if idx >= 0 && idx < len(values) {
				out[i] = values[idx]
			}
			continue
		}
		s := int(slot)
		if s >= 0 && s < len(values) {
			out[i] = values[s]
		}
	}
	return out
}

// ExpandVec2 is ExpandVec3's counterpart for 2-component primvars such as
// "st".
func ExpandVec2(values []math32.Vector2, indices []int32, faceVertexSlots []int32) []math32.Vector2 {
	out := make([]math32.Vector2, len(faceVertexSlots))
	for i, slot := range faceVertexSlots {
		if len(indices) > 0 {
			idx := int(indices[slot])
			if idx >= 0 && idx < len(values) {
				out[i] = values[idx]
			}
			continue
		}
		s := int(slot)
		if s >= 0 && s < len(values) {
			out[i] = values[s]
		}
	}
	return out
}

// PointsFromIndices gathers the triangle point positions from a point
// array, given the point indices Triangulate returned.
func PointsFromIndices(points []math32.Vector3, pointIndices []int32) []math32.Vector3 {
	out := make([]math32.Vector3, len(pointIndices))
	for i, idx := range pointIndices {
		if int(idx) >= 0 && int(idx) < len(points) {
			out[i] = points[idx]
		}
	}
	return out
}
