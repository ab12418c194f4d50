// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneidx

import (
	"bufio"
	"fmt"

	"github.com/g3n/sceneindex/convert"
	"github.com/g3n/sceneindex/math32"
	"github.com/spf13/afero"
)

// Record is a decoded mesh-index entry with its source path already
// resolved through the index's source-paths table (§4.7).
type Record struct {
	SourcePath string
	Name       string
	PrimPath   string

	Position math32.Vector3
	Rotation math32.Quaternion
	Scale    math32.Vector3

	HasSkeleton bool
	HasExtent   bool
	ExtentMin   math32.Vector3
	ExtentMax   math32.Vector3
}

// Reader holds a fully decoded index.
type Reader struct {
	Version     uint64
	SourcePaths []string
	Records     []Record
}

// ReadIndex loads and decodes the binary index at path. Index-format
// mismatches (bad magic, unsupported version) are fatal, per §7.
func ReadIndex(fs afero.Fs, path string) (*Reader, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sceneidx: opening index: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	magicBuf := make([]byte, 4)
	if _, err := readFull(r, magicBuf); err != nil {
		return nil, fmt.Errorf("sceneidx: reading magic: %w", err)
	}
	if string(magicBuf) != magic {
		return nil, fmt.Errorf("sceneidx: bad magic %q", magicBuf)
	}

	version, err := readUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("sceneidx: reading version: %w", err)
	}
	if version != 1 && version != 2 {
		return nil, fmt.Errorf("sceneidx: unsupported version %d", version)
	}

	sourceCount, err := readUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("sceneidx: reading source count: %w", err)
	}
	sourcePaths := make([]string, sourceCount)
	for i := range sourcePaths {
		sourcePaths[i], err = readString7(r)
		if err != nil {
			return nil, fmt.Errorf("sceneidx: reading source path %d: %w", i, err)
		}
	}

	meshCount, err := readUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("sceneidx: reading mesh count: %w", err)
	}
	records := make([]Record, meshCount)
	for i := range records {
		rec, err := readIndexRecord(r, sourcePaths, version)
		if err != nil {
			return nil, fmt.Errorf("sceneidx: reading mesh record %d: %w", i, err)
		}
		records[i] = rec
	}

	return &Reader{Version: version, SourcePaths: sourcePaths, Records: records}, nil
}

func readIndexRecord(r *bufio.Reader, sourcePaths []string, version uint64) (Record, error) {
	var rec Record
	var err error

	sourceIdx, err := readUvarint(r)
	if err != nil {
		return rec, err
	}
	if int(sourceIdx) >= len(sourcePaths) {
		return rec, fmt.Errorf("source index %d out of range", sourceIdx)
	}
	rec.SourcePath = sourcePaths[sourceIdx]

	if rec.Name, err = readString7(r); err != nil {
		return rec, err
	}
	if rec.PrimPath, err = readString7(r); err != nil {
		return rec, err
	}

	var pos, scale math32.Vector3
	var rot math32.Quaternion
	for _, f := range []*float32{&pos.X, &pos.Y, &pos.Z} {
		if *f, err = readF32(r); err != nil {
			return rec, err
		}
	}
	for _, f := range []*float32{&rot.X, &rot.Y, &rot.Z, &rot.W} {
		if *f, err = readF32(r); err != nil {
			return rec, err
		}
	}
	for _, f := range []*float32{&scale.X, &scale.Y, &scale.Z} {
		if *f, err = readF32(r); err != nil {
			return rec, err
		}
	}

	flags, err := r.ReadByte()
	if err != nil {
		return rec, err
	}
	rec.HasSkeleton = flags&flagHasSkeleton != 0
	rec.HasExtent = flags&flagHasExtent != 0

	var extentMin, extentMax math32.Vector3
	if rec.HasExtent {
		for _, f := range []*float32{&extentMin.X, &extentMin.Y, &extentMin.Z, &extentMax.X, &extentMax.Y, &extentMax.Z} {
			if *f, err = readF32(r); err != nil {
				return rec, err
			}
		}
	}

	if version == 1 {
		pos = convert.Point(pos)
		scale = convert.Scale(scale)
		rot = convert.Quaternion(rot)
		if rec.HasExtent {
			extentMin, extentMax = convert.Extent(extentMin, extentMax)
		}
	}

	rec.Position, rec.Rotation, rec.Scale = pos, rot, scale
	rec.ExtentMin, rec.ExtentMax = extentMin, extentMax
	return rec, nil
}

func readFull(r *bufio.Reader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// GroupBySourceFile maps each source path to its records, in index
// order (§4.7).
func (r *Reader) GroupBySourceFile() map[string][]Record {
	groups := make(map[string][]Record)
	for _, rec := range r.Records {
		groups[rec.SourcePath] = append(groups[rec.SourcePath], rec)
	}
	return groups
}

// WorldTransform is the placement of one occurrence of a geometry
// instance.
type WorldTransform struct {
	Position math32.Vector3
	Rotation math32.Quaternion
	Scale    math32.Vector3
}

// GeometryInstances maps "source_path|mesh_name" to the world
// transforms of every occurrence of that mesh (§4.7).
func (r *Reader) GeometryInstances() map[string][]WorldTransform {
	instances := make(map[string][]WorldTransform)
	for _, rec := range r.Records {
		key := rec.SourcePath + "|" + rec.Name
		instances[key] = append(instances[key], WorldTransform{
			Position: rec.Position,
			Rotation: rec.Rotation,
			Scale:    rec.Scale,
		})
	}
	return instances
}
