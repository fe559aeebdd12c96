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

// propagationRule compiles a Propagation definition: "propagate Label
// across Axis" (spec §4.2). Propagation is scope-local — a label only
// spreads between containers that share at least one scope.
type propagationRule struct {
	def Definition
}

func (r *propagationRule) ID() model.RuleID { return r.def.ID }
func (r *propagationRule) Kind() Kind       { return Propagation }

func (r *propagationRule) DependsOn() []model.Predicate {
	switch r.def.Axis {
	case model.AxisJoinable:
		return []model.Predicate{model.PredHasLabel, model.PredJoinableWith, model.PredScopeMember}
	default:
		return []model.Predicate{model.PredHasLabel, model.PredHasChild, model.PredScopeMember}
	}
}

func (r *propagationRule) Fire(store *graph.Store, delta []graph.Triple) []graph.Triple {
	switch r.def.Axis {
	case model.AxisInward:
		return r.fireInward(store)
	case model.AxisOutward:
		return r.fireOutward(store)
	case model.AxisPeer:
		return r.firePeer(store)
	case model.AxisJoinable:
		return r.fireJoinable(store)
	default:
		return nil
	}
}

func inScope(store *graph.Store, scope model.ScopeID, container string) bool {
	if scope == "" {
		return false
	}
	b := store.Match(graph.Pattern{
		Subject:   graph.Lit(string(scope)),
		Predicate: graph.Lit(string(model.PredScopeMember)),
		Object:    graph.Lit(container),
		Scope:     graph.Any(),
	})
	return len(b) > 0
}

func labelHolders(store *graph.Store, label model.LabelID) []graph.Binding {
	return store.Match(graph.Pattern{
		Subject:   graph.Bind("holder"),
		Predicate: graph.Lit(string(model.PredHasLabel)),
		Object:    graph.Lit(string(label)),
		Scope:     graph.Bind("scope"),
	})
}

func emitLabel(container string, label model.LabelID, scope model.ScopeID) graph.Triple {
	return graph.Triple{
		Subject:   container,
		Predicate: model.PredHasLabel,
		Object:    string(label),
		Scope:     scope,
	}
}

func (r *propagationRule) fireInward(store *graph.Store) []graph.Triple {
	var out []graph.Triple
	for _, hb := range labelHolders(store, r.def.Label) {
		parent, scope := hb["holder"], model.ScopeID(hb["scope"])
		children := store.Match(graph.Pattern{
			Subject:   graph.Lit(parent),
			Predicate: graph.Lit(string(model.PredHasChild)),
			Object:    graph.Bind("child"),
			Scope:     graph.Any(),
		})
		for _, cb := range children {
			child := cb["child"]
			if inScope(store, scope, child) {
				out = append(out, emitLabel(child, r.def.Label, scope))
			}
		}
	}
	return out
}

func (r *propagationRule) fireOutward(store *graph.Store) []graph.Triple {
	var out []graph.Triple
	for _, hb := range labelHolders(store, r.def.Label) {
		child, scope := hb["holder"], model.ScopeID(hb["scope"])
		parents := store.Match(graph.Pattern{
			Subject:   graph.Bind("parent"),
			Predicate: graph.Lit(string(model.PredHasChild)),
			Object:    graph.Lit(child),
			Scope:     graph.Any(),
		})
		for _, pb := range parents {
			parent := pb["parent"]
			if inScope(store, scope, parent) {
				out = append(out, emitLabel(parent, r.def.Label, scope))
			}
		}
	}
	return out
}

func (r *propagationRule) firePeer(store *graph.Store) []graph.Triple {
	var out []graph.Triple
	for _, hb := range labelHolders(store, r.def.Label) {
		sibling, scope := hb["holder"], model.ScopeID(hb["scope"])
		parents := store.Match(graph.Pattern{
			Subject:   graph.Bind("parent"),
			Predicate: graph.Lit(string(model.PredHasChild)),
			Object:    graph.Lit(sibling),
			Scope:     graph.Any(),
		})
		for _, pb := range parents {
			parent := pb["parent"]
			peers := store.Match(graph.Pattern{
				Subject:   graph.Lit(parent),
				Predicate: graph.Lit(string(model.PredHasChild)),
				Object:    graph.Bind("peer"),
				Scope:     graph.Any(),
			})
			for _, peb := range peers {
				peer := peb["peer"]
				if peer == sibling {
					continue
				}
				if inScope(store, scope, peer) {
					out = append(out, emitLabel(peer, r.def.Label, scope))
				}
			}
		}
	}
	return out
}

func (r *propagationRule) fireJoinable(store *graph.Store) []graph.Triple {
	var out []graph.Triple
	for _, hb := range labelHolders(store, r.def.Label) {
		holder, scope := hb["holder"], model.ScopeID(hb["scope"])
		joined := store.Match(graph.Pattern{
			Subject:   graph.Bind("other"),
			Predicate: graph.Lit(string(model.PredJoinableWith)),
			Object:    graph.Lit(holder),
			Scope:     graph.Any(),
		})
		for _, jb := range joined {
			other := jb["other"]
			if inScope(store, scope, other) {
				out = append(out, emitLabel(other, r.def.Label, scope))
			}
		}
	}
	return out
}
