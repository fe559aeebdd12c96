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

package rules

import (
	"github.com/parajudica/parajudica/graph"
	"github.com/parajudica/parajudica/model"
)

// implicationRule compiles both Implication and ConditionalImplication
// definitions — the latter is the former plus one extra binding filter
// (spec §4.2).
type implicationRule struct {
	def       Definition
	condition *Condition
}

func (r *implicationRule) ID() model.RuleID { return r.def.ID }

func (r *implicationRule) Kind() Kind {
	if r.condition != nil {
		return ConditionalImplication
	}
	return Implication
}

func (r *implicationRule) DependsOn() []model.Predicate {
	seen := map[model.Predicate]struct{}{}
	var out []model.Predicate
	add := func(p model.Predicate) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	for _, p := range r.def.Body {
		if !p.Predicate.IsVar() {
			add(model.Predicate(p.Predicate.Value()))
		}
	}
	if r.condition != nil {
		for _, p := range r.condition.DependsOn {
			add(p)
		}
	}
	return out
}

func (r *implicationRule) Fire(store *graph.Store, delta []graph.Triple) []graph.Triple {
	bindings := joinPatterns(store, r.def.Body)
	if r.condition != nil {
		filtered := bindings[:0]
		for _, b := range bindings {
			container, ok := b[r.condition.Of]
			if !ok {
				continue
			}
			if r.condition.Check(store, container) {
				filtered = append(filtered, b)
			}
		}
		bindings = filtered
	}

	var out []graph.Triple
	for _, b := range bindings {
		for _, h := range r.def.Head {
			t, ok := instantiate(h, b)
			if ok {
				out = append(out, t)
			}
		}
	}
	return out
}

// joinPatterns evaluates a conjunction of patterns against the store as
// a left-to-right nested-loop join. Correct for the engine's scale
// (small, closed-vocabulary bundles); order of pattern evaluation does
// not affect the result set, only how much intermediate work is done
// (spec §4.4 "Round ordering between rule kinds" makes the analogous
// point about rule firing order).
func joinPatterns(store *graph.Store, patterns []graph.Pattern) []graph.Binding {
	if len(patterns) == 0 {
		return nil
	}
	bindings := store.Match(patterns[0])
	for _, p := range patterns[1:] {
		if len(bindings) == 0 {
			return nil
		}
		cand := store.Match(p)
		var next []graph.Binding
		for _, b := range bindings {
			for _, c := range cand {
				if merged, ok := mergeBindings(b, c); ok {
					next = append(next, merged)
				}
			}
		}
		bindings = next
	}
	return bindings
}

func mergeBindings(a, b graph.Binding) (graph.Binding, bool) {
	out := make(graph.Binding, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if existing, ok := out[k]; ok && existing != v {
			return nil, false
		}
		out[k] = v
	}
	return out, true
}

// instantiate substitutes a binding into a head template, producing a
// concrete triple. ok is false if the template references a variable
// the binding never bound (a malformed rule — Compile cannot catch
// this statically since it would require body/head variable-closure
// analysis the engine does not do; it simply drops the unbindable
// firing rather than emitting a partial triple).
func instantiate(h HeadTemplate, b graph.Binding) (graph.Triple, bool) {
	subj, ok := resolve(h.Subject, b)
	if !ok {
		return graph.Triple{}, false
	}
	obj, ok := resolve(h.Object, b)
	if !ok {
		return graph.Triple{}, false
	}
	scope, ok := resolve(h.Scope, b)
	if !ok {
		scope = ""
	}
	return graph.Triple{
		Subject:   subj,
		Predicate: h.Predicate,
		Object:    obj,
		Scope:     model.ScopeID(scope),
	}, true
}

func resolve(t graph.Term, b graph.Binding) (string, bool) {
	if !t.IsVar() {
		return t.Value(), true
	}
	v, ok := b[t.Name()]
	return v, ok
}
