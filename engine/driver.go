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

// Package engine is the Fixed-Point Driver (spec §4.4): the seminaive
// round loop that repeatedly fires every compiled rule and the
// K-Anonymity Analyzer against the current store, inserting newly
// derived triples until a round produces nothing new.
package engine

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/jackc/puddle/v2"
	"github.com/parajudica/parajudica/graph"
	"github.com/parajudica/parajudica/kanon"
	"github.com/parajudica/parajudica/rules"
)

// Result is what a Driver.Run call returns.
type Result struct {
	Store     *graph.Store
	Rounds    int
	Cancelled bool
}

// Driver runs the fixed-point loop over a Graph Store.
type Driver struct {
	store    *graph.Store
	rules    []rules.CompiledRule
	analyzer *kanon.Analyzer
	pool     int32 // worker pool size; 0 means GOMAXPROCS
}

// New builds a Driver over an already-loaded store (initial assertions
// must be inserted by the caller before Run).
func New(store *graph.Store, compiled []rules.CompiledRule, analyzer *kanon.Analyzer) *Driver {
	return &Driver{store: store, rules: compiled, analyzer: analyzer}
}

// WithPoolSize overrides the rule-evaluation worker pool size used for
// within-round parallel firing (spec §5, "permissible, not required").
// size<=0 falls back to GOMAXPROCS.
func (d *Driver) WithPoolSize(size int) *Driver {
	d.pool = int32(size)
	return d
}

// Run executes the seminaive fixed-point loop (spec §4.4). Cancellation
// is checked at the start of each round; a cancelled run returns the
// partial, monotone-consistent store with Cancelled=true and a nil
// error — a cancelled run is not a failure (spec §5).
func (d *Driver) Run(ctx context.Context) (Result, error) {
	size := d.pool
	if size <= 0 {
		size = int32(runtime.GOMAXPROCS(0))
	}
	pool, err := newWorkerPool(size)
	if err != nil {
		return Result{}, err
	}
	defer pool.Close()

	delta := d.store.DeltaSince(graph.Epoch{Seq: 0})
	round := 0
	for {
		if ctx.Err() != nil {
			slog.DebugContext(ctx, "fixed-point run cancelled", slog.Int("round", round))
			return Result{Store: d.store, Rounds: round, Cancelled: true}, nil
		}
		round++

		candidates := d.rulesForDelta(delta)
		emitted := d.fireRound(ctx, pool, candidates, delta)
		emitted = append(emitted, d.analyzer.Analyze(d.store)...)

		added := d.store.InsertAll(emitted)
		slog.DebugContext(ctx, "fixed-point round complete",
			slog.Int("round", round),
			slog.Int("rules_fired", len(candidates)),
			slog.Int("new_triples", len(added)))

		if len(added) == 0 {
			break
		}
		delta = added
	}
	return Result{Store: d.store, Rounds: round, Cancelled: false}, nil
}

// rulesForDelta implements the coarse-grained seminaive optimization
// from spec §4.2: a rule only needs to re-run if at least one predicate
// it depends on appeared in the previous round's delta.
func (d *Driver) rulesForDelta(delta []graph.Triple) []rules.CompiledRule {
	present := make(map[string]struct{}, len(delta))
	for _, t := range delta {
		present[string(t.Predicate)] = struct{}{}
	}
	out := make([]rules.CompiledRule, 0, len(d.rules))
	for _, r := range d.rules {
		for _, p := range r.DependsOn() {
			if _, ok := present[string(p)]; ok {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// fireRound evaluates candidates concurrently, each rule borrowing a
// pooled worker for the duration of its firing, and merges every
// emitted triple into one slice under a single writer (spec §5
// "Parallel evaluation of rules within a round is permissible if all
// writes are buffered and merged at round end").
func (d *Driver) fireRound(ctx context.Context, pool *puddle.Pool[*worker], candidates []rules.CompiledRule, delta []graph.Triple) []graph.Triple {
	if len(candidates) == 0 {
		return nil
	}
	var mu sync.Mutex
	var merged []graph.Triple
	var wg sync.WaitGroup

	for _, r := range candidates {
		r := r
		res, err := pool.Acquire(ctx)
		if err != nil {
			// Pool acquisition only fails if ctx is already done; the
			// next round-top check picks that up. Skip this rule for
			// this round rather than abort the whole driver.
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer res.Release()
			w := res.Value()
			w.scratch = w.scratch[:0]
			w.scratch = append(w.scratch, r.Fire(d.store, delta)...)

			mu.Lock()
			merged = append(merged, w.scratch...)
			mu.Unlock()
		}()
	}
	wg.Wait()
	return merged
}
