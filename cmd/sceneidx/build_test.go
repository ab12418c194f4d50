// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(root *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestBuildThenInspectRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rootPath := filepath.Join(dir, "root.usda")
	require.NoError(t, os.WriteFile(rootPath, []byte(`#usda 1.0
def Mesh "m" {
  point3f[] points = [(1,2,3)]
  int[] faceVertexCounts = [3]
  int[] faceVertexIndices = [0,0,0]
}
`), 0o644))

	outPath := filepath.Join(dir, "scene.idx")
	_, err := executeCommand(rootCmd, "build", rootPath, "-o", outPath, "--temp-dir", dir)
	require.NoError(t, err)

	_, err = os.Stat(outPath)
	require.NoError(t, err)

	out, err := executeCommand(rootCmd, "inspect", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "mesh records: 1")
	assert.Contains(t, out, "/m")
}

func TestInspectInstances(t *testing.T) {
	dir := t.TempDir()
	rootPath := filepath.Join(dir, "root.usda")
	require.NoError(t, os.WriteFile(rootPath, []byte(`#usda 1.0
def Xform "a" (
  references = @./prop.usda@
) {
  double3 xformOp:translate = (1, 0, 0)
  uniform token[] xformOpOrder = ["xformOp:translate"]
}
def Xform "b" (
  references = @./prop.usda@
) {
  double3 xformOp:translate = (2, 0, 0)
  uniform token[] xformOpOrder = ["xformOp:translate"]
}
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prop.usda"), []byte(`#usda 1.0
def Mesh "m" {
  point3f[] points = [(0,0,0)]
  int[] faceVertexCounts = [3]
  int[] faceVertexIndices = [0,0,0]
}
`), 0o644))

	outPath := filepath.Join(dir, "scene.idx")
	_, err := executeCommand(rootCmd, "build", rootPath, "-o", outPath, "--temp-dir", dir)
	require.NoError(t, err)

	out, err := executeCommand(rootCmd, "inspect", outPath, "--instances")
	require.NoError(t, err)
	assert.Contains(t, out, "|m (2 instance(s))")
}

func TestBuildMaxFilesZero(t *testing.T) {
	dir := t.TempDir()
	rootPath := filepath.Join(dir, "root.usda")
	require.NoError(t, os.WriteFile(rootPath, []byte(`#usda 1.0
def Mesh "m" {
  point3f[] points = [(0,0,0)]
  int[] faceVertexCounts = [3]
  int[] faceVertexIndices = [0,0,0]
}
`), 0o644))

	outPath := filepath.Join(dir, "scene.idx")
	_, err := executeCommand(rootCmd, "build", rootPath, "-o", outPath, "--temp-dir", dir, "--max-files", "0")
	require.NoError(t, err)

	out, err := executeCommand(rootCmd, "inspect", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "mesh records: 0")
}
