// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshutil

import (
	"regexp"

	"github.com/g3n/sceneindex/math32"
)

// centeredNamePattern matches the generic mesh names emitted by DCC tools
// that tend to carry an off-origin pivot baked into their points, rather
// than a meaningful local transform.
var centeredNamePattern = regexp.MustCompile(`(?i)^(polySurface|pPlane|geo)Shape\d*$`)

// extentThreshold is, in source-frame units, how far a mesh's XY extent
// center may sit from the origin before it is considered off-pivot.
const extentThreshold = 10.0

// ShouldCenter reports whether a mesh's bind pose should be recentered
// on X/Y before being written out, per the heuristic in §4.5: a
// skeleton-bound mesh is always centered (its bind pose is meaningless
// without recentering), otherwise a generically-named mesh whose XY
// extent center sits far from the origin is centered.
func ShouldCenter(name string, hasSkeleton bool, min, max math32.Vector3) bool {
	if hasSkeleton {
		return true
	}
	if !centeredNamePattern.MatchString(name) {
		return false
	}
	cx := (min.X + max.X) / 2
	cy := (min.Y + max.Y) / 2
	return cx > extentThreshold || cx < -extentThreshold ||
		cy > extentThreshold || cy < -extentThreshold
}

// CenterXY subtracts the XY extent center from every point, leaving Z
// untouched, and returns the recentered points together with the
// translation that was removed (so callers can fold it back into the
// prim's world transform).
func CenterXY(points []math32.Vector3, min, max math32.Vector3) (centered []math32.Vector3, removed math32.Vector3) {
	removed = math32.Vector3{
		X: (min.X + max.X) / 2,
		Y: (min.Y + max.Y) / 2,
		Z: 0,
	}
	centered = make([]math32.Vector3, len(points))
	for i, p := range points {
		centered[i] = math32.Vector3{X: p.X - removed.X, Y: p.Y - removed.Y, Z: p.Z}
	}
	return centered, removed
}
