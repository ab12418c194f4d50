// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneidx

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// Shards are a transient, internal format distinct from the final
// index: record count and string lengths are plain Int32, not varint,
// since they are never persisted past finalization (§4.6).

func writeShardString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, int32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readShardString(r *bufio.Reader) (string, error) {
	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("sceneidx: reading shard string of length %d: %w", n, err)
	}
	return string(buf), nil
}

func writeShard(w io.Writer, records []MeshRecord) error {
	if err := binary.Write(w, binary.LittleEndian, int32(len(records))); err != nil {
		return err
	}
	for _, rec := range records {
		if err := writeShardRecord(w, rec); err != nil {
			return err
		}
	}
	return nil
}

func writeShardRecord(w io.Writer, rec MeshRecord) error {
	if err := writeShardString(w, rec.SourcePath); err != nil {
		return err
	}
	if err := writeShardString(w, rec.Name); err != nil {
		return err
	}
	if err := writeShardString(w, rec.PrimPath); err != nil {
		return err
	}
	for _, v := range []float32{rec.Position.X, rec.Position.Y, rec.Position.Z} {
		if err := writeF32(w, v); err != nil {
			return err
		}
	}
	for _, v := range []float32{rec.Rotation.X, rec.Rotation.Y, rec.Rotation.Z, rec.Rotation.W} {
		if err := writeF32(w, v); err != nil {
			return err
		}
	}
	for _, v := range []float32{rec.Scale.X, rec.Scale.Y, rec.Scale.Z} {
		if err := writeF32(w, v); err != nil {
			return err
		}
	}
	if err := binary.Write(w, binary.LittleEndian, rec.HasSkeleton); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, rec.HasExtent); err != nil {
		return err
	}
	if rec.HasExtent {
		vals := []float32{
			rec.ExtentMin.X, rec.ExtentMin.Y, rec.ExtentMin.Z,
			rec.ExtentMax.X, rec.ExtentMax.Y, rec.ExtentMax.Z,
		}
		for _, v := range vals {
			if err := writeF32(w, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func readShard(r *bufio.Reader) ([]MeshRecord, error) {
	var count int32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, err
	}
	records := make([]MeshRecord, 0, count)
	for i := int32(0); i < count; i++ {
		rec, err := readShardRecord(r)
		if err != nil {
			return nil, fmt.Errorf("sceneidx: reading shard record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func readShardRecord(r *bufio.Reader) (MeshRecord, error) {
	var rec MeshRecord
	var err error
	if rec.SourcePath, err = readShardString(r); err != nil {
		return rec, err
	}
	if rec.Name, err = readShardString(r); err != nil {
		return rec, err
	}
	if rec.PrimPath, err = readShardString(r); err != nil {
		return rec, err
	}
	if rec.Position.X, err = readF32(r); err != nil {
		return rec, err
	}
	if rec.Position.Y, err = readF32(r); err != nil {
		return rec, err
	}
	if rec.Position.Z, err = readF32(r); err != nil {
		return rec, err
	}
	if rec.Rotation.X, err = readF32(r); err != nil {
		return rec, err
	}
	if rec.Rotation.Y, err = readF32(r); err != nil {
		return rec, err
	}
	if rec.Rotation.Z, err = readF32(r); err != nil {
		return rec, err
	}
	if rec.Rotation.W, err = readF32(r); err != nil {
		return rec, err
	}
	if rec.Scale.X, err = readF32(r); err != nil {
		return rec, err
	}
	if rec.Scale.Y, err = readF32(r); err != nil {
		return rec, err
	}
	if rec.Scale.Z, err = readF32(r); err != nil {
		return rec, err
	}
	if err := binary.Read(r, binary.LittleEndian, &rec.HasSkeleton); err != nil {
		return rec, err
	}
	if err := binary.Read(r, binary.LittleEndian, &rec.HasExtent); err != nil {
		return rec, err
	}
	if rec.HasExtent {
		fields := []*float32{
			&rec.ExtentMin.X, &rec.ExtentMin.Y, &rec.ExtentMin.Z,
			&rec.ExtentMax.X, &rec.ExtentMax.Y, &rec.ExtentMax.Z,
		}
		for _, f := range fields {
			if *f, err = readF32(r); err != nil {
				return rec, err
			}
		}
	}
	return rec, nil
}
