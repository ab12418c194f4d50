// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinimalMesh(t *testing.T) {
	src := `#usda 1.0
def Mesh "m" {
  point3f[] points = [(1,2,3)]
  int[] faceVertexCounts = [3]
  int[] faceVertexIndices = [0,0,0]
}
`
	stage := Parse([]byte(src), "root.usda")
	require.Len(t, stage.Roots, 1)
	m := stage.Roots[0]
	assert.Equal(t, "m", m.Name)
	assert.Equal(t, "/m", m.Path)
	assert.Equal(t, "Mesh", m.TypeName)

	pts, ok := m.Attr("points")
	require.True(t, ok)
	arr, ok := pts.AsVec3Array()
	require.True(t, ok)
	require.Len(t, arr, 1)
	assert.Equal(t, float32(1), arr[0].X)
	assert.Equal(t, float32(2), arr[0].Y)
	assert.Equal(t, float32(3), arr[0].Z)

	counts, ok := m.Attr("faceVertexCounts")
	require.True(t, ok)
	ci, ok := counts.AsI32Array()
	require.True(t, ok)
	assert.Equal(t, []int32{3}, ci)

	idx, ok := m.Attr("faceVertexIndices")
	require.True(t, ok)
	ii, ok := idx.AsI32Array()
	require.True(t, ok)
	assert.Equal(t, []int32{0, 0, 0}, ii)

	got, ok := stage.PrimAt("/m")
	require.True(t, ok)
	assert.Same(t, m, got)
}

func TestParseStageMetadataAndSubLayers(t *testing.T) {
	src := `(
  defaultPrim = "World"
  upAxis = "Z"
  metersPerUnit = 1
  subLayers = [@a.usda@, @b.usda@]
)
def Xform "World" {
}
`
	stage := Parse([]byte(src), "root.usda")
	assert.Equal(t, "World", stage.DefaultPrim)
	assert.Equal(t, UpAxisZ, stage.UpAxis)
	assert.Equal(t, 1.0, stage.MetersPerUnit)
	assert.Equal(t, []string{"a.usda", "b.usda"}, stage.SubLayers)
}

func TestParseReferenceWithPrimPath(t *testing.T) {
	src := `def Xform "a" (
  references = @child.usda@</a/b>
) {
}
`
	stage := Parse([]byte(src), "root.usda")
	require.Len(t, stage.Roots, 1)
	require.Len(t, stage.Roots[0].Arcs, 1)
	arc := stage.Roots[0].Arcs[0]
	assert.Equal(t, ArcReference, arc.Kind)
	assert.Equal(t, "child.usda", arc.AssetPath)
	assert.Equal(t, "/a/b", arc.PrimPath)
}

func TestParseVariantSetFallback(t *testing.T) {
	src := `def Xform "a" {
  variantSet "lod" = {
    "lod0" {
      def Xform "hi" {}
    }
    "lod1" {
      def Xform "lo" {}
    }
  }
}
`
	stage := Parse([]byte(src), "root.usda")
	a := stage.Roots[0]
	names := a.VariantSetNames()
	require.Equal(t, []string{"lod"}, names)
	vs := a.VariantSets["lod"]
	assert.Equal(t, []string{"lod0", "lod1"}, vs.Order)
	assert.Len(t, vs.Variants["lod0"].Children, 1)
	assert.Equal(t, "hi", vs.Variants["lod0"].Children[0].Name)
}

func TestParseUnknownTypeSkipped(t *testing.T) {
	src := `def Mesh "m" {
  weirdType foo = (1, 2, 3, 4, 5)
  int bar = 7
}
`
	stage := Parse([]byte(src), "root.usda")
	m := stage.Roots[0]
	_, ok := m.Attr("foo")
	assert.False(t, ok)
	v, ok := m.Attr("bar")
	require.True(t, ok)
	n, _ := v.AsI32()
	assert.Equal(t, int32(7), n)
}

func TestParseRelationshipAndXformOpOrder(t *testing.T) {
	src := `def Mesh "m" {
  rel skel:skeleton = </Root/Skel>
  double3 xformOp:translate = (10, 20, 30)
  uniform token[] xformOpOrder = ["xformOp:translate"]
}
`
	stage := Parse([]byte(src), "root.usda")
	m := stage.Roots[0]
	rel, ok := m.Relationship("skel:skeleton")
	require.True(t, ok)
	assert.Equal(t, []string{"/Root/Skel"}, rel.Targets)

	order, ok := m.Attr("xformOpOrder")
	require.True(t, ok)
	toks, ok := order.AsStringArray()
	require.True(t, ok)
	assert.Equal(t, []string{"xformOp:translate"}, toks)

	tr, ok := m.Attr("xformOp:translate")
	require.True(t, ok)
	v3, ok := tr.AsVec3()
	require.True(t, ok)
	assert.Equal(t, float32(10), v3.X)
	assert.Equal(t, float32(20), v3.Y)
	assert.Equal(t, float32(30), v3.Z)
}
