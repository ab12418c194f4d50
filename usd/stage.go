// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usd

// UpAxis is the stage's declared up axis.
type UpAxis int

// Recognized up axes. Y is the default when a stage omits upAxis.
const (
	UpAxisY UpAxis = iota
	UpAxisZ
)

// Stage is the in-memory contents of one parsed source file.
type Stage struct {
	Path string // originating file path, as resolved by the caller

	Doc           string
	DefaultPrim   string
	UpAxis        UpAxis
	MetersPerUnit float64

	TimeCodesPerSecond float64
	FramesPerSecond    float64
	StartTimeCode      float64
	EndTimeCode        float64

	SubLayers []string

	Roots []*Prim
	prims map[string]*Prim // absolute path -> prim, every reachable prim registered
}

// NewStage creates an empty Stage for path with the spec-mandated
// defaults: upAxis Y, metersPerUnit 0.01.
func NewStage(path string) *Stage {
	return &Stage{
		Path:          path,
		UpAxis:        UpAxisY,
		MetersPerUnit: 0.01,
		prims:         make(map[string]*Prim),
	}
}

// Register records prim under its absolute path so PrimAt can find it.
// The parser calls this for every prim it builds, including nested
// variant prims, maintaining the invariant that every prim reachable from
// a root is registered under its own path.
func (s *Stage) Register(prim *Prim) {
	s.prims[prim.Path] = prim
}

// PrimAt returns the prim registered under the given absolute path, and
// whether one was found.
func (s *Stage) PrimAt(path string) (*Prim, bool) {
	p, ok := s.prims[path]
	return p, ok
}

// DefaultPrimOrFirstRoot returns the stage's declared default prim if one
// exists and is registered, otherwise the first root prim, otherwise nil.
func (s *Stage) DefaultPrimOrFirstRoot() *Prim {
	if s.DefaultPrim != "" {
		if p, ok := s.prims["/"+s.DefaultPrim]; ok {
			return p
		}
	}
	if len(s.Roots) > 0 {
		return s.Roots[0]
	}
	return nil
}
