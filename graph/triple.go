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

// Package graph is the triple store the rest of Parajudica reads from
// and writes to: an in-memory, scope-tagged set of (subject, predicate,
// object) assertions, with pattern matching and seminaive delta support
// (spec §4.1).
//
// The store owns every triple exclusively; rules hold no state between
// rounds (spec §3 "Ownership").
package graph

import (
	"fmt"

	"github.com/parajudica/parajudica/model"
)

// Triple is a single assertion. Scope is "" for global facts
// (containment, joinable edges, facet assertions, scope membership);
// only hasLabel triples carry a non-empty Scope, per the scope-isolation
// invariant (spec §3).
type Triple struct {
	Subject   string
	Predicate model.Predicate
	Object    string
	Scope     model.ScopeID
}

// key is the idempotency key used for O(1) duplicate detection on
// insert (spec §4.1 "must be O(1) detectable").
func (t Triple) key() string {
	return fmt.Sprintf("%s\x00%s\x00%s\x00%s", t.Subject, t.Predicate, t.Object, t.Scope)
}

func (t Triple) String() string {
	if t.Scope == "" {
		return fmt.Sprintf("(%s %s %s)", t.Subject, t.Predicate, t.Object)
	}
	return fmt.Sprintf("(%s %s %s)@%s", t.Subject, t.Predicate, t.Object, t.Scope)
}

// Var marks a pattern position as a variable to bind, rather than a
// literal to match exactly.
type Var string

// Pattern is a Triple whose positions are each either a concrete value
// or a Var. A Var value is written with a "?" prefix when expressed as
// a plain string (Term.String, query.ParseLine), but the constructors
// below (Lit, Bind, Any) are the supported way to build a Term.
type Pattern struct {
	Subject   Term
	Predicate Term
	Object    Term
	Scope     Term // matches model.ScopeID; Any() matches every scope
}

// Term is either a literal value or a variable binding slot.
type Term struct {
	isVar bool
	name  Var
	value string
}

// Lit builds a literal pattern term.
func Lit(v string) Term { return Term{value: v} }

// Bind builds a variable pattern term with the given binding name.
func Bind(name Var) Term { return Term{isVar: true, name: name} }

// Any is a variable term whose binding is discarded — use it for
// "match anything here without caring what" (e.g. scope position of a
// global-fact pattern).
func Any() Term { return Term{isVar: true, name: "_"} }

func (t Term) String() string {
	if t.isVar {
		return "?" + string(t.name)
	}
	return t.value
}

// IsVar reports whether this term is a variable binding slot rather
// than a literal value.
func (t Term) IsVar() bool { return t.isVar }

// Value returns the literal value of this term. Meaningless if IsVar
// is true.
func (t Term) Value() string { return t.value }

// Name returns the binding name of this term. Meaningless if IsVar is
// false.
func (t Term) Name() Var { return t.name }
