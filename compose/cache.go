// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/g3n/sceneindex/usd"
)

// maxCachedStages is how many parsed stages are kept in memory after a
// writer flush (§4.4.2, §5): enough to serve a reasonably deep working
// set without letting a traversal of thousands of files hold every
// stage live at once.
const maxCachedStages = 20

// stageCache memoizes parsed stages by absolute source path, bounded to
// maxCachedStages entries once trimmed. It is never shared across
// traversals.
type stageCache struct {
	entries *lru.Cache[string, *usd.Stage]
}

func newStageCache() *stageCache {
	// A generous initial size avoids evicting stages mid-traversal;
	// trimToRecent is what actually enforces the post-flush bound.
	c, _ := lru.New[string, *usd.Stage](4096)
	return &stageCache{entries: c}
}

func (c *stageCache) get(path string) (*usd.Stage, bool) {
	return c.entries.Get(path)
}

func (c *stageCache) put(path string, stage *usd.Stage) {
	c.entries.Add(path, stage)
}

// trimToRecent shrinks the cache to its maxCachedStages most-recently
// used entries, freeing memory after a writer flush.
func (c *stageCache) trimToRecent() {
	for c.entries.Len() > maxCachedStages {
		c.entries.RemoveOldest()
	}
}
