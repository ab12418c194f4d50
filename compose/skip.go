// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import "strings"

// skipSubstrings are matched case-insensitively against a path to
// exclude helper and non-geometry sub-scenes (§4.4.1). The list matches
// substrings deliberately: "_lighting" excludes a lighting helper scene
// without excluding a material variant that merely contains "light".
var skipSubstrings = []string{
	"/breadcrumbs/", "/endpoints/", "/audio/", "/lighting/", "/ui/",
	"/vfx/", "/fx/",
	"breadcrumb", "endpoint", "_audio", "_sound", "_fx", "_vfx", "_lighting",
}

// shouldSkip reports whether path matches the skip-pattern filter.
func shouldSkip(path string) bool {
	lower := strings.ToLower(path)
	for _, s := range skipSubstrings {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}
