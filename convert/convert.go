// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package convert implements the source-to-target coordinate basis
// conversion described in §4.3: source frame is X-right, Y-forward,
// Z-up; target frame is X-forward, Y-right, Z-up. The single mapping
// used everywhere is (x, y, z)_source -> (y, -x, z)_target, the unique
// signed permutation mapping source-Y to target-X that preserves
// right-handedness.
package convert

import "github.com/g3n/sceneindex/math32"

// Point converts a position, point, or normal from source to target
// coordinates.
func Point(v math32.Vector3) math32.Vector3 {
	return math32.Vector3{X: v.Y, Y: -v.X, Z: v.Z}
}

// InversePoint is the inverse of Point: target to source.
func InversePoint(v math32.Vector3) math32.Vector3 {
	return math32.Vector3{X: -v.Y, Y: v.X, Z: v.Z}
}

// Scale converts a scale (magnitude) vector. Scale factors carry no
// handedness, so the mapping only permutes components, with no sign
// flip; Scale is its own inverse.
func Scale(v math32.Vector3) math32.Vector3 {
	return math32.Vector3{X: v.Y, Y: v.X, Z: v.Z}
}

// Quaternion converts a rotation quaternion's components directly, per
// the derived rule in §4.3. This is distinct from, and cheaper than,
// reconstructing a rotation from remapped basis vectors (see Basis); it
// is the rule the index reader applies to a version-1 (source-frame)
// quaternion on load.
func Quaternion(q math32.Quaternion) math32.Quaternion {
	return math32.Quaternion{X: q.Y, Y: -q.X, Z: q.Z, W: q.W}
}

// InverseQuaternion is the inverse of Quaternion: target to source.
func InverseQuaternion(q math32.Quaternion) math32.Quaternion {
	return math32.Quaternion{X: -q.Y, Y: q.X, Z: q.Z, W: q.W}
}

// Extent converts the two corners of an axis-aligned box from source to
// target coordinates. Because the mapping permutes axes, the remapped
// corners are not necessarily the new min/max; RecomputeAABB restores
// that property.
func Extent(min, max math32.Vector3) (math32.Vector3, math32.Vector3) {
	return RecomputeAABB(Point(min), Point(max))
}

// RecomputeAABB returns the axis-aligned min and max of two corner
// points, in case a transform has permuted or flipped axes.
func RecomputeAABB(a, b math32.Vector3) (math32.Vector3, math32.Vector3) {
	min := math32.Vector3{X: minF(a.X, b.X), Y: minF(a.Y, b.Y), Z: minF(a.Z, b.Z)}
	max := math32.Vector3{X: maxF(a.X, b.X), Y: maxF(a.Y, b.Y), Z: maxF(a.Z, b.Z)}
	return min, max
}

func minF(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
