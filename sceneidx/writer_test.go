// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneidx

import (
	"testing"

	"github.com/g3n/sceneindex/math32"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []MeshRecord {
	return []MeshRecord{
		{
			SourcePath: "b.usda",
			Name:       "mesh1",
			PrimPath:   "/a/mesh1",
			Position:   math32.Vector3{X: 1, Y: 2, Z: 3},
			Rotation:   math32.Quaternion{X: 0, Y: 0, Z: 0, W: 1},
			Scale:      math32.Vector3{X: 1, Y: 1, Z: 1},
		},
		{
			SourcePath:  "a.usda",
			Name:        "mesh2",
			PrimPath:    "/b/mesh2",
			Position:    math32.Vector3{X: 4, Y: 5, Z: 6},
			Rotation:    math32.Quaternion{X: 0, Y: 0, Z: 0, W: 1},
			Scale:       math32.Vector3{X: 2, Y: 2, Z: 2},
			HasSkeleton: true,
			HasExtent:   true,
			ExtentMin:   math32.Vector3{X: -1, Y: -1, Z: -1},
			ExtentMax:   math32.Vector3{X: 1, Y: 1, Z: 1},
		},
	}
}

func TestWriterFinalizeRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, "/tmp", "/out/index.bin", 100)

	for _, rec := range sampleRecords() {
		ok, err := w.Add(rec)
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.NoError(t, w.Finalize())

	reader, err := ReadIndex(fs, "/out/index.bin")
	require.NoError(t, err)

	assert.EqualValues(t, CurrentVersion, reader.Version)
	assert.Equal(t, []string{"a.usda", "b.usda"}, reader.SourcePaths)
	require.Len(t, reader.Records, 2)

	// Record order is encounter order, not source-path order: the
	// source-paths table is sorted independently and is only an
	// indirection (§4.6/§4.7).
	assert.Equal(t, "mesh1", reader.Records[0].Name)
	assert.Equal(t, "b.usda", reader.Records[0].SourcePath)

	assert.Equal(t, "mesh2", reader.Records[1].Name)
	assert.Equal(t, "a.usda", reader.Records[1].SourcePath)
	assert.True(t, reader.Records[1].HasSkeleton)
	assert.True(t, reader.Records[1].HasExtent)
}

func TestWriterFlushThresholdDoesNotChangeFinalBytes(t *testing.T) {
	records := sampleRecords()

	fsOne := afero.NewMemMapFs()
	wOne := NewWriter(fsOne, "/tmp", "/out/index.bin", 1)
	for _, rec := range records {
		_, err := wOne.Add(rec)
		require.NoError(t, err)
	}
	require.NoError(t, wOne.Finalize())

	fsMany := afero.NewMemMapFs()
	wMany := NewWriter(fsMany, "/tmp", "/out/index.bin", 1000000)
	for _, rec := range records {
		_, err := wMany.Add(rec)
		require.NoError(t, err)
	}
	require.NoError(t, wMany.Finalize())

	bytesOne, err := afero.ReadFile(fsOne, "/out/index.bin")
	require.NoError(t, err)
	bytesMany, err := afero.ReadFile(fsMany, "/out/index.bin")
	require.NoError(t, err)
	assert.Equal(t, bytesOne, bytesMany)
}

func TestWriterPreservesHasSkeletonAcrossShardSpill(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, "/tmp", "/out/index.bin", 1)
	_, err := w.Add(sampleRecords()[1])
	require.NoError(t, err)
	require.NoError(t, w.Finalize())

	reader, err := ReadIndex(fs, "/out/index.bin")
	require.NoError(t, err)
	require.Len(t, reader.Records, 1)
	assert.True(t, reader.Records[0].HasSkeleton)
}

func TestWriterRemovesShardsAfterFinalize(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, "/tmp", "/out/index.bin", 1)
	for _, rec := range sampleRecords() {
		_, err := w.Add(rec)
		require.NoError(t, err)
	}
	require.NoError(t, w.Finalize())

	entries, err := afero.ReadDir(fs, "/tmp")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
