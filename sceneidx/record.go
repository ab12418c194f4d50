// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sceneidx implements the scene-index binary format: a
// streaming shard writer that buffers mesh records and spills them to
// temp shards, finalization that merges shards into one binary index
// (§6), and a reader that loads that index back into typed records and
// answers grouping/instancing queries (§4.7).
package sceneidx

import "github.com/g3n/sceneindex/math32"

// MeshRecord is the tuple the composition engine emits for every
// renderable mesh it discovers (§3). Position, Rotation and Scale are
// always in the target frame.
type MeshRecord struct {
	SourcePath string
	Name       string
	PrimPath   string

	Position math32.Vector3
	Rotation math32.Quaternion
	Scale    math32.Vector3

	HasSkeleton bool

	HasExtent bool
	ExtentMin math32.Vector3
	ExtentMax math32.Vector3
}

const (
	flagHasSkeleton byte = 1 << 0
	flagHasExtent   byte = 1 << 1
)
