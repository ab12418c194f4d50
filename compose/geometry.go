// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import (
	"path/filepath"
	"strings"
)

// binaryToTextSuffixes maps a binary scene-file suffix to its textual
// counterpart (§4.4, §6); the binary-to-text converter itself is an
// external collaborator, out of scope here.
var binaryToTextSuffixes = map[string]string{
	".usdc": ".usda",
	".usd":  ".usda",
}

// rewriteBinarySuffix rewrites a binary file suffix to its textual form,
// keeping the base name unchanged. Paths already using a recognized
// text suffix are returned as-is.
func rewriteBinarySuffix(path string) string {
	ext := filepath.Ext(path)
	if textExt, ok := binaryToTextSuffixes[ext]; ok {
		return strings.TrimSuffix(path, ext) + textExt
	}
	return path
}

// isGeometryFile reports whether path's base name carries the
// ".geo.<ext>" suffix marking it as a geometry file whose root-prim
// local transform is an authoring-origin offset, not scene placement
// (§4.4, scenario f).
func isGeometryFile(path string) bool {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	withoutExt := strings.TrimSuffix(base, ext)
	return strings.HasSuffix(withoutExt, ".geo")
}
