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

// Package rules is the Rule Compiler (spec §4.2): it turns declarative
// rule Definitions into a closed tagged-variant CompiledRule with a
// uniform Fire method, validating label ownership and vocabulary
// closure at load time rather than at fixed-point time (spec §4.4
// "Failure semantics").
package rules

import (
	"github.com/parajudica/parajudica/graph"
	"github.com/parajudica/parajudica/model"
)

// Kind is the closed tagged-variant set of rule kinds (spec §9 "Dynamic
// dispatch / rule polymorphism" — a sum type with a uniform Fire, no
// open extension at runtime).
type Kind int

const (
	Implication Kind = iota
	ConditionalImplication
	Propagation
)

func (k Kind) String() string {
	switch k {
	case Implication:
		return "Implication"
	case ConditionalImplication:
		return "ConditionalImplication"
	case Propagation:
		return "Propagation"
	default:
		return "Unknown"
	}
}

// HeadTemplate produces one output triple from a successful body
// binding. Subject/Object/Scope terms are typically graph.Bind(name)
// referencing a body variable; Predicate and, usually, Object are
// literal (a rule mints a specific, known label or facet).
type HeadTemplate struct {
	Subject   graph.Term
	Predicate model.Predicate
	Object    graph.Term
	Scope     graph.Term // graph.Lit("") for a global (unscoped) head triple
}

// Condition is the extra predicate a ConditionalImplication checks
// beyond its Body conjunction: a check over the bound container's
// children (spec §4.2, e.g. "some field of container has facet
// MomentData").
type Condition struct {
	// Of names the Body binding that identifies the container the
	// condition is evaluated against.
	Of graph.Var
	// Check reports whether the condition holds for the given bound
	// container identity, against the current store.
	Check func(store *graph.Store, container string) bool
	// Describe names the condition for diagnostics; never parsed.
	Describe string
	// DependsOn lists the predicates Check reads, so the driver's
	// per-round rule-skip optimization stays accurate even though
	// Check itself is an opaque function.
	DependsOn []model.Predicate
}

// Definition is the declarative, pre-compilation form of a rule: what a
// framework bundle (or the loader, eventually) produces.
type Definition struct {
	ID        model.RuleID
	Framework model.FrameworkID
	Kind      Kind

	// Implication / ConditionalImplication:
	Body      []graph.Pattern
	Head      []HeadTemplate
	Condition *Condition // only set for ConditionalImplication

	// Propagation:
	Label model.LabelID
	Axis  model.Axis
}

// CompiledRule is the uniform executable form every rule kind compiles
// to (spec §4.2 "Compilation output").
type CompiledRule interface {
	ID() model.RuleID
	Kind() Kind
	// DependsOn lists the predicates this rule's body reads. The
	// Fixed-Point Driver skips a rule in a round whose dependencies
	// are disjoint from that round's delta (spec §4.2 "efficiency").
	DependsOn() []model.Predicate
	// Fire evaluates the rule against the full store, returning every
	// triple it would emit (before dedup against the store — the
	// driver handles that). delta is the round's newly-added triples;
	// implementations may use it to prune candidate bindings.
	Fire(store *graph.Store, delta []graph.Triple) []graph.Triple
}
