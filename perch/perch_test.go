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

package perch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestGetCachesAcrossCalls covers cache.PerchCache.Store's use of Get:
// the loader runs once, and a second Get within the TTL window returns
// the cached value without invoking it again.
func TestGetCachesAcrossCalls(t *testing.T) {
	p := New[string](4)
	calls := 0
	loader := func(context.Context, string) (string, error) {
		calls++
		return "run-result", nil
	}

	v, err := p.Get(context.Background(), "key", time.Minute, loader)
	require.NoError(t, err)
	require.Equal(t, "run-result", v)

	v, err = p.Get(context.Background(), "key", time.Minute, loader)
	require.NoError(t, err)
	require.Equal(t, "run-result", v)
	require.Equal(t, 1, calls)
}

// TestPeekReflectsGetButNeverLoads covers cache.PerchCache.Peek: it
// reports a miss until something has actually populated the key via
// Get, and never calls a loader itself.
func TestPeekReflectsGetButNeverLoads(t *testing.T) {
	p := New[string](4)

	_, ok := p.Peek("key")
	require.False(t, ok)

	_, err := p.Get(context.Background(), "key", time.Minute, func(context.Context, string) (string, error) {
		return "value", nil
	})
	require.NoError(t, err)

	v, ok := p.Peek("key")
	require.True(t, ok)
	require.Equal(t, "value", v)
}

// TestDeleteForcesReload covers cache.PerchCache.Store's delete-then-Get
// pattern for overwriting a live key: after Delete, Get runs the loader
// again instead of returning the old value.
func TestDeleteForcesReload(t *testing.T) {
	p := New[string](4)
	_, err := p.Get(context.Background(), "key", time.Minute, func(context.Context, string) (string, error) {
		return "first", nil
	})
	require.NoError(t, err)

	p.Delete("key")
	_, ok := p.Peek("key")
	require.False(t, ok)

	v, err := p.Get(context.Background(), "key", time.Minute, func(context.Context, string) (string, error) {
		return "second", nil
	})
	require.NoError(t, err)
	require.Equal(t, "second", v)
}

// TestGetExpiresAfterTTL covers the TTL behavior cache.PerchCache relies
// on to make a cached run result eventually stale.
func TestGetExpiresAfterTTL(t *testing.T) {
	p := New[string](4)
	_, err := p.Get(context.Background(), "key", time.Millisecond, func(context.Context, string) (string, error) {
		return "value", nil
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	_, ok := p.Peek("key")
	require.False(t, ok)
}
