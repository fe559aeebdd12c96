// Copyright 2025 Binaek Sarkar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"context"
	"time"

	"github.com/parajudica/parajudica/graph"
	"github.com/parajudica/parajudica/perch"
)

// PerchCache is Cache backed by the teacher's bounded, singleflight,
// per-key-TTL LRU — the same library the teacher uses to memoize
// compiled scripts, repurposed here to memoize whole run results.
type PerchCache struct {
	p   *perch.Perch[[]graph.Triple]
	ttl time.Duration
}

// NewPerchCache builds a PerchCache holding up to capacity results,
// each valid for ttl.
func NewPerchCache(capacity int, ttl time.Duration) *PerchCache {
	return &PerchCache{p: perch.New[[]graph.Triple](capacity), ttl: ttl}
}

func (c *PerchCache) Peek(key string) ([]graph.Triple, bool) {
	return c.p.Peek(key)
}

func (c *PerchCache) Store(ctx context.Context, key string, triples []graph.Triple) {
	// perch.Get's fast path returns an existing fresh entry without
	// invoking the loader at all, so a plain Get-with-loader call
	// wouldn't overwrite a live key. Delete first to force the loader
	// to run and install the new value.
	c.p.Delete(key)
	_, _ = c.p.Get(ctx, key, c.ttl, func(context.Context, string) ([]graph.Triple, error) {
		return triples, nil
	})
}

func (c *PerchCache) Invalidate(key string) {
	c.p.Delete(key)
}
