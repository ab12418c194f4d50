// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneidx

import (
	"bufio"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// CurrentVersion is the index version writers always emit (§6).
const CurrentVersion = 2

// magic is the four-byte file identifier at offset 0.
const magic = "USDI"

// Writer buffers mesh records and spills them to numbered shard files
// once the buffer reaches FlushEveryN, then merges the shards into a
// single binary index at Finalize (§4.6).
type Writer struct {
	fs         afero.Fs
	outputPath string
	shardDir   string

	flushEveryN int
	buf         []MeshRecord
	shardPaths  []string
	shardCount  int
	afterFlush  func()

	log *logrus.Entry
}

// SetAfterFlush registers fn to run after every successful shard spill,
// so a caller can shrink its own working set (e.g. a stage cache) in
// step with the writer's memory bound.
func (w *Writer) SetAfterFlush(fn func()) {
	w.afterFlush = fn
}

// NewWriter creates a writer that spills shards under tempDir (in a
// uniquely-named subdirectory, so concurrent writer instances sharing a
// temp directory never collide) and writes the finalized index to
// outputPath.
func NewWriter(fs afero.Fs, tempDir, outputPath string, flushEveryN int) *Writer {
	if flushEveryN <= 0 {
		flushEveryN = 1
	}
	return &Writer{
		fs:          fs,
		outputPath:  outputPath,
		shardDir:    filepath.Join(tempDir, "sceneidx-"+uuid.NewString()),
		flushEveryN: flushEveryN,
		log:         logrus.WithField("component", "sceneidx.Writer"),
	}
}

// Add buffers rec, spilling a shard if the buffer has reached
// FlushEveryN. It returns false if the spill failed and the caller
// should halt emission; a non-spilling Add always returns true.
func (w *Writer) Add(rec MeshRecord) (bool, error) {
	w.buf = append(w.buf, rec)
	if len(w.buf) < w.flushEveryN {
		return true, nil
	}
	return w.Flush()
}

// Flush spills any buffered records into a new shard file, regardless
// of whether the threshold has been reached. It is a no-op if the
// buffer is empty.
func (w *Writer) Flush() (bool, error) {
	if len(w.buf) == 0 {
		return true, nil
	}
	if err := w.fs.MkdirAll(w.shardDir, 0o755); err != nil {
		return false, fmt.Errorf("sceneidx: creating shard directory: %w", err)
	}
	path := filepath.Join(w.shardDir, fmt.Sprintf("shard-%06d.bin", w.shardCount))
	f, err := w.fs.Create(path)
	if err != nil {
		w.log.WithError(err).Warn("failed to create shard file")
		return false, fmt.Errorf("sceneidx: creating shard file: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := writeShard(bw, w.buf); err != nil {
		w.log.WithError(err).Warn("failed to write shard")
		return false, fmt.Errorf("sceneidx: writing shard: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return false, fmt.Errorf("sceneidx: flushing shard: %w", err)
	}

	w.shardPaths = append(w.shardPaths, path)
	w.shardCount++
	w.buf = w.buf[:0]
	if w.afterFlush != nil {
		w.afterFlush()
	}
	return true, nil
}

// Finalize spills any remaining buffered records, merges every shard in
// creation order into the final binary index, and removes the shard
// directory on success. On failure the shards are left in place for
// diagnosis.
func (w *Writer) Finalize() error {
	if ok, err := w.Flush(); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("sceneidx: final flush halted")
	}

	var all []MeshRecord
	for _, path := range w.shardPaths {
		f, err := w.fs.Open(path)
		if err != nil {
			return fmt.Errorf("sceneidx: opening shard %s: %w", path, err)
		}
		records, err := readShard(bufio.NewReader(f))
		f.Close()
		if err != nil {
			return fmt.Errorf("sceneidx: reading shard %s: %w", path, err)
		}
		all = append(all, records...)
	}

	sourcePaths, indexOf := buildSourceTable(all)

	out, err := w.fs.Create(w.outputPath)
	if err != nil {
		return fmt.Errorf("sceneidx: creating output index: %w", err)
	}
	defer out.Close()

	bw := bufio.NewWriter(out)
	if err := writeIndex(bw, sourcePaths, indexOf, all); err != nil {
		return fmt.Errorf("sceneidx: writing index: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	if err := w.fs.RemoveAll(w.shardDir); err != nil {
		w.log.WithError(err).Warn("failed to remove shard directory after finalize")
	}
	w.shardPaths = nil
	return nil
}

// buildSourceTable collects the distinct source paths referenced by
// records, sorts them lexicographically, and returns the table together
// with a lookup from path to its dense index (§4.6, invariant 3).
func buildSourceTable(records []MeshRecord) ([]string, map[string]int) {
	seen := make(map[string]struct{})
	for _, rec := range records {
		seen[rec.SourcePath] = struct{}{}
	}
	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	indexOf := make(map[string]int, len(paths))
	for i, p := range paths {
		indexOf[p] = i
	}
	return paths, indexOf
}

func writeIndex(w *bufio.Writer, sourcePaths []string, indexOf map[string]int, records []MeshRecord) error {
	if _, err := w.WriteString(magic); err != nil {
		return err
	}
	if err := writeUvarint(w, CurrentVersion); err != nil {
		return err
	}
	if err := writeUvarint(w, uint64(len(sourcePaths))); err != nil {
		return err
	}
	for _, p := range sourcePaths {
		if err := writeString7(w, p); err != nil {
			return err
		}
	}
	if err := writeUvarint(w, uint64(len(records))); err != nil {
		return err
	}
	for _, rec := range records {
		if err := writeIndexRecord(w, indexOf[rec.SourcePath], rec); err != nil {
			return err
		}
	}
	return nil
}

func writeIndexRecord(w *bufio.Writer, sourceIndex int, rec MeshRecord) error {
	if err := writeUvarint(w, uint64(sourceIndex)); err != nil {
		return err
	}
	if err := writeString7(w, rec.Name); err != nil {
		return err
	}
	if err := writeString7(w, rec.PrimPath); err != nil {
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
	flags := byte(0)
	if rec.HasSkeleton {
		flags |= flagHasSkeleton
	}
	if rec.HasExtent {
		flags |= flagHasExtent
	}
	if err := w.WriteByte(flags); err != nil {
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
