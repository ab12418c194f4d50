// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshutil

import "github.com/g3n/sceneindex/math32"

// FlatNormals synthesizes one normal per face, from the cross product of
// the face's first two edges, normalized and repeated across every
// face-vertex of that face (§4.5). Degenerate faces (a zero-length cross
// product, or fewer than 3 vertices) fall back to +Z. The result is
// ordered per face-vertex slot, the same indexing Triangulate produces.
func FlatNormals(points []math32.Vector3, counts, indices []int32) []math32.Vector3 {
	fallback := math32.Vector3{X: 0, Y: 0, Z: 1}
	out := make([]math32.Vector3, len(indices))

	offset := 0
	for _, c := range counts {
		n := int(c)
		if offset+n > len(indices) {
			break
		}
		normal := fallback
		if n >= 3 {
			p0 := pointAt(points, indices, offset)
			p1 := pointAt(points, indices, offset+1)
			p2 := pointAt(points, indices, offset+2)

			e0 := p1.Clone().Sub(&p0)
			e1 := p2.Clone().Sub(&p0)
			cross := e0.Clone().Cross(e1)
			if cross.Length() > 1e-12 {
				cross.Normalize()
				normal = *cross
			}
		}
		for k := 0; k < n; k++ {
			out[offset+k] = normal
		}
		offset += n
	}
	return out
}

func pointAt(points []math32.Vector3, indices []int32, slot int) math32.Vector3 {
	if slot < 0 || slot >= len(indices) {
		return math32.Vector3{}
	}
	idx := int(indices[slot])
	if idx < 0 || idx >= len(points) {
		return math32.Vector3{}
	}
	return points[idx]
}
