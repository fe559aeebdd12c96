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

// Package cache memoizes a full engine run keyed by the content of its
// inputs, the way the teacher's runtime memoizes compiled scripts with
// perch.Perch in runtime/executor.go.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/parajudica/parajudica/graph"
)

// Cache stores a completed run's resulting triples under a content key.
type Cache interface {
	// Peek returns a cached result without computing anything.
	Peek(key string) ([]graph.Triple, bool)
	// Store records triples as the result for key.
	Store(ctx context.Context, key string, triples []graph.Triple)
	// Invalidate drops any cached result for key (rm-cache support).
	Invalidate(key string)
}

// Key hashes the concatenation of every input section — framework
// names, data file contents, query list — into the cache key for one
// run. Section boundaries are folded into the hash via a length-prefix
// so ["ab", "c"] and ["a", "bc"] never collide.
func Key(sections ...[]byte) string {
	h := sha256.New()
	for _, s := range sections {
		var lenBuf [8]byte
		n := len(s)
		for i := 0; i < 8; i++ {
			lenBuf[i] = byte(n >> (8 * i))
		}
		h.Write(lenBuf[:])
		h.Write(s)
	}
	return hex.EncodeToString(h.Sum(nil))
}
