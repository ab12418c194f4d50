// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compose implements the composition/traversal engine of §4.4:
// a depth-first walk from a root stage that resolves sub-layers,
// references, payloads and variant selections, accumulates world
// transforms through the coordinate converter, and streams discovered
// meshes to a sceneidx.Writer in bounded memory.
package compose

import (
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/g3n/sceneindex/convert"
	"github.com/g3n/sceneindex/math32"
	"github.com/g3n/sceneindex/sceneidx"
	"github.com/g3n/sceneindex/usd"
)

// defaultMaxDepth is the recursion limit of §4.4.
const defaultMaxDepth = 32

// Options configures one traversal.
type Options struct {
	// MaxDepth bounds recursion into children and composition arcs.
	// Zero means DefaultOptions' value (32) is used.
	MaxDepth int

	// SkipFiles excludes meshes whose source file's 1-based discovery
	// index does not exceed this value (§4.4.3).
	SkipFiles int

	// MaxFiles, if non-nil, refuses to load any new source file once the
	// distinct-file count would exceed it — including zero, which
	// refuses even the root stage (§4.4.3, invariant 11).
	MaxFiles *int

	// FlushEveryN is the writer's buffered-record flush threshold.
	FlushEveryN int
}

// DefaultOptions returns the spec's defaults: max depth 32, no file
// skipping, no file cap, flushing every 1000 meshes.
func DefaultOptions() Options {
	return Options{MaxDepth: defaultMaxDepth, FlushEveryN: 1000}
}

// Engine owns the state of a single traversal: the stage cache,
// skeleton bindings discovered along the way, and the list of skinned
// meshes deferred until after the walk (§4.4, step 4).
type Engine struct {
	fs     afero.Fs
	writer *sceneidx.Writer
	opts   Options

	cache           *stageCache
	discovered      map[string]int // absolute path -> 1-based discovery index
	discoveredOrder []string
	activeStack     map[string]bool // paths currently on the recursion stack, for cycle detection

	skeletons map[string]*usd.Prim // "sourcePath|primPath" -> Skeleton prim
	pending   []sceneidx.MeshRecord

	halted bool
	log    *logrus.Entry
}

// NewEngine creates an Engine that reads scene files through fs and
// streams mesh records to writer.
func NewEngine(fs afero.Fs, writer *sceneidx.Writer, opts Options) *Engine {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = defaultMaxDepth
	}
	e := &Engine{
		fs:         fs,
		writer:     writer,
		opts:       opts,
		cache:      newStageCache(),
		discovered: make(map[string]int),
		activeStack: make(map[string]bool),
		skeletons:  make(map[string]*usd.Prim),
		log:        logrus.WithField("component", "compose.Engine"),
	}
	writer.SetAfterFlush(e.cache.trimToRecent)
	return e
}

// Run walks rootPath and every stage it reaches via sub-layers,
// references, and payloads, streaming discovered meshes to the engine's
// writer. It returns nil even when the traversal halted early (a flush
// failure is reported through the writer at Finalize time).
func (e *Engine) Run(rootPath string) error {
	stage, ok := e.loadStage(rootPath)
	if !ok || stage == nil {
		return nil
	}

	identity := math32.NewMatrix4()
	for _, sub := range stage.SubLayers {
		if e.halted {
			break
		}
		e.loadReference(usd.Arc{AssetPath: sub}, identity, rootPath, 0)
	}

	e.walkRoots(stage, rootPath, identity, 0, false)

	e.promotePending()
	return nil
}

// walkRoots processes every root prim of stage (loaded from path) under
// transform, guarding against re-entering a file that is already on the
// active recursion stack (the cycle breaker of invariant 10).
func (e *Engine) walkRoots(stage *usd.Stage, path string, transform *math32.Matrix4, depth int, skipLocalTransform bool) {
	if e.activeStack[path] {
		return
	}
	e.activeStack[path] = true
	defer delete(e.activeStack, path)

	for _, root := range stage.Roots {
		if e.halted {
			return
		}
		e.processPrim(root, transform, path, depth, skipLocalTransform)
	}
}

// processPrim is process-prim of §4.4.
func (e *Engine) processPrim(prim *usd.Prim, parentTransform *math32.Matrix4, sourcePath string, depth int, skipLocalTransform bool) {
	if e.halted || depth > e.opts.MaxDepth {
		return
	}

	var local *math32.Matrix4
	if skipLocalTransform {
		local = math32.NewMatrix4()
	} else {
		local = convert.ToTarget(convert.LocalTransform(prim))
	}
	world := math32.NewMatrix4().MultiplyMatrices(parentTransform, local)

	for _, arc := range prim.Arcs {
		if e.halted {
			return
		}
		if arc.Kind == usd.ArcInherit {
			continue // Open Question 1: inherits is ignored entirely
		}
		e.loadReference(arc, world, sourcePath, depth+1)
	}

	for _, vsName := range prim.VariantSetNames() {
		if e.halted {
			return
		}
		e.processVariantSet(prim, vsName, world, sourcePath, depth)
	}

	if prim.IsSkeleton() {
		e.skeletons[sourcePath+"|"+prim.Path] = prim
	}

	if prim.IsMesh() && e.passesMeshGate(prim, sourcePath) {
		rec := e.buildMeshRecord(prim, world, sourcePath)
		if e.hasSkeletonBinding(prim) {
			e.pending = append(e.pending, rec)
		} else {
			e.emit(rec)
		}
	}

	for _, child := range prim.Children {
		if e.halted {
			return
		}
		e.processPrim(child, world, sourcePath, depth+1, false)
	}
}

func (e *Engine) processVariantSet(prim *usd.Prim, vsName string, world *math32.Matrix4, sourcePath string, depth int) {
	vs, ok := prim.VariantSets[vsName]
	if !ok || len(vs.Order) == 0 {
		return
	}
	selected, ok := prim.VariantSelections[vsName]
	if !ok || selected == "" {
		selected = vs.Order[0]
	}
	variant, ok := vs.Variants[selected]
	if !ok {
		return
	}

	for _, arc := range variant.Arcs {
		if e.halted {
			return
		}
		if arc.Kind == usd.ArcInherit {
			continue
		}
		e.loadReference(arc, world, sourcePath, depth+1)
	}
	for _, child := range variant.Children {
		if e.halted {
			return
		}
		e.processPrim(child, world, sourcePath, depth+1, false)
	}
}

// loadReference is load-reference of §4.4. currentSourcePath is the full
// path of the stage the arc was found in (or, for a sub-layer arc, the
// root stage's path); the reference resolves relative to its directory.
func (e *Engine) loadReference(arc usd.Arc, parentTransform *math32.Matrix4, currentSourcePath string, depth int) {
	if depth > e.opts.MaxDepth {
		return
	}

	assetPath := strings.TrimPrefix(arc.AssetPath, "./")
	assetPath = rewriteBinarySuffix(assetPath)
	abs := filepath.Clean(filepath.Join(filepath.Dir(currentSourcePath), assetPath))

	if shouldSkip(abs) {
		return
	}

	stage, ok := e.loadStage(abs)
	if !ok || stage == nil {
		return
	}

	skipLocal := isGeometryFile(abs)

	if arc.PrimPath != "" {
		if e.activeStack[abs] {
			return // cycle: this file is already being recursed into
		}
		e.activeStack[abs] = true
		defer delete(e.activeStack, abs)
		if prim, found := stage.PrimAt(arc.PrimPath); found {
			e.processPrim(prim, parentTransform, abs, depth, skipLocal)
		}
		return
	}

	e.walkRoots(stage, abs, parentTransform, depth, skipLocal)
}

// loadStage loads and memoizes the stage at abs, enforcing the
// max_files gate on newly discovered files (§4.4.3). I/O errors are
// logged and treated as an empty stage, per §7.
func (e *Engine) loadStage(abs string) (*usd.Stage, bool) {
	if stage, ok := e.cache.get(abs); ok {
		return stage, true
	}

	_, already := e.discovered[abs]
	if !already {
		nextCount := len(e.discoveredOrder) + 1
		if e.opts.MaxFiles != nil && nextCount > *e.opts.MaxFiles {
			return nil, false
		}
	}

	data, err := afero.ReadFile(e.fs, abs)
	if err != nil {
		e.log.WithError(err).WithField("path", abs).Warn("failed to load stage")
		return nil, false
	}
	stage := usd.Parse(data, abs)

	if !already {
		e.discovered[abs] = len(e.discoveredOrder) + 1
		e.discoveredOrder = append(e.discoveredOrder, abs)
	}
	e.cache.put(abs, stage)
	return stage, true
}

func (e *Engine) passesMeshGate(prim *usd.Prim, sourcePath string) bool {
	idx, ok := e.discovered[sourcePath]
	if !ok || idx <= e.opts.SkipFiles {
		return false
	}
	if purpose, ok := prim.Attr("purpose"); ok {
		if tok, ok := purpose.AsToken(); ok && tok == "guide" {
			return false
		}
	}
	pointsVal, ok := prim.Attr("points")
	if !ok {
		return false
	}
	points, ok := pointsVal.AsVec3Array()
	if !ok || len(points) == 0 {
		return false
	}
	indicesVal, ok := prim.Attr("faceVertexIndices")
	if !ok {
		return false
	}
	indices, ok := indicesVal.AsI32Array()
	return ok && len(indices) > 0
}

func (e *Engine) hasSkeletonBinding(prim *usd.Prim) bool {
	rel, ok := prim.Relationship("skel:skeleton")
	if !ok || len(rel.Targets) == 0 {
		return false
	}
	v, ok := prim.Attr("primvars:skel:jointIndices")
	if !ok {
		return false
	}
	indices, ok := v.AsI32Array()
	return ok && len(indices) > 0
}

func (e *Engine) buildMeshRecord(prim *usd.Prim, world *math32.Matrix4, sourcePath string) sceneidx.MeshRecord {
	var pos, scale math32.Vector3
	var rot math32.Quaternion
	world.Decompose(&pos, &rot, &scale)

	rec := sceneidx.MeshRecord{
		SourcePath:  sourcePath,
		Name:        prim.Name,
		PrimPath:    prim.Path,
		Position:    pos,
		Rotation:    rot,
		Scale:       scale,
		HasSkeleton: e.hasSkeletonBinding(prim),
	}

	if v, ok := prim.Attr("extent"); ok {
		if bounds, ok := v.AsVec3Array(); ok && len(bounds) == 2 {
			min, max := convert.Extent(bounds[0], bounds[1])
			rec.HasExtent = true
			rec.ExtentMin = min
			rec.ExtentMax = max
		}
	}
	return rec
}

func (e *Engine) emit(rec sceneidx.MeshRecord) {
	ok, err := e.writer.Add(rec)
	if err != nil {
		e.log.WithError(err).Warn("failed to buffer mesh record")
		e.halted = true
		return
	}
	if !ok {
		e.halted = true
	}
}

// promotePending appends the bind-pose records of every skinned mesh
// seen during the walk (§4.4, step 4). Resolving the bind pose against
// its cached skeleton is left undone here: the mesh is recorded with
// its accumulated world transform and the has-skeleton flag set.
func (e *Engine) promotePending() {
	for _, rec := range e.pending {
		if e.halted {
			return
		}
		e.emit(rec)
	}
	e.pending = nil
}
