// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshutil implements the per-mesh geometry helpers of §4.5:
// fan triangulation of arbitrary polygon faces, per-face-vertex
// attribute expansion, flat-normal synthesis, and the bind-pose
// centering heuristic.
package meshutil

// Triangulate fan-triangulates every face described by counts (vertex
// count per face) against indices (the flat faceVertexIndices array),
// using each face's first vertex as the fan pivot. Faces with fewer than
// 3 vertices are skipped. It returns, in parallel, the point index of
// each emitted triangle vertex and the face-vertex slot (the absolute
// offset into indices) that vertex came from, for re-indexing
// per-face-vertex attributes afterward.
func Triangulate(counts, indices []int32) (pointIndices, faceVertexSlots []int32) {
	offset := 0
	for _, c := range counts {
		n := int(c)
		if offset+n > len(indices) {
			break
		}
		if n < 3 {
			offset += n
			continue
		}
		for k := 1; k < n-1; k++ {
			pointIndices = append(pointIndices,
				indices[offset], indices[offset+k], indices[offset+k+1])
			faceVertexSlots = append(faceVertexSlots,
				int32(offset), int32(offset+k), int32(offset+k+1))
		}
		offset += n
	}
	return pointIndices, faceVertexSlots
}
