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

// Package model holds the entity and vocabulary types shared by every
// other Parajudica package: opaque identities, the closed predicate and
// facet vocabularies, and the plain data structs for Container, Scope,
// Framework and KAnonymityResult (spec §3).
//
// Containers are referenced everywhere by identity, never by pointer —
// the actual relationships between them live as triples in the graph
// store, so there is no cyclic object graph to manage here.
package model

import "fmt"

// ContainerID identifies a Database, Table, or Field. Opaque handle.
type ContainerID string

func (c ContainerID) String() string { return string(c) }

// ScopeID identifies a governance scope.
type ScopeID string

func (s ScopeID) String() string { return string(s) }

// FacetID identifies a loader-asserted intrinsic property.
type FacetID string

// FrameworkID identifies a rule framework and its label namespace.
type FrameworkID string

// LabelID identifies a framework-owned classification. Namespaced as
// "<Framework>:<Name>" so ownership is a prefix check, not a side table.
type LabelID string

// NewLabelID builds a namespaced label identity.
func NewLabelID(fw FrameworkID, name string) LabelID {
	return LabelID(fmt.Sprintf("%s:%s", fw, name))
}

// Framework reports the owning framework encoded in the label's namespace.
func (l LabelID) Framework() FrameworkID {
	for i := 0; i < len(l); i++ {
		if l[i] == ':' {
			return FrameworkID(l[:i])
		}
	}
	return ""
}

// Name reports the label's name without its namespace prefix.
func (l LabelID) Name() string {
	for i := 0; i < len(l); i++ {
		if l[i] == ':' {
			return string(l[i+1:])
		}
	}
	return string(l)
}

// RuleID identifies a compiled rule, used for diagnostics and for
// Skolemization of derived nodes (the rule that fired is part of a
// derivation's determining inputs).
type RuleID string

// ContainerKind is the closed vocabulary of container kinds.
type ContainerKind string

const (
	KindDatabase ContainerKind = "Database"
	KindTable    ContainerKind = "Table"
	KindField    ContainerKind = "Field"
)
