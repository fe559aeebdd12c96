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

package graph

import (
	"sync"

	"github.com/binaek/gocoll/collection"
	"github.com/google/uuid"
	"github.com/parajudica/parajudica/model"
)

// Epoch is a snapshot token. ID is a display/debugging identity; Seq is
// the monotonic insertion count it was taken at, which is what
// delta_since actually compares against (spec §4.1).
type Epoch struct {
	ID  uuid.UUID
	Seq uint64
}

// Store is the in-memory triple store (spec §4.1).
type Store struct {
	mu sync.RWMutex

	// all known triples, insertion order preserved for delta_since.
	order []Triple
	// idempotency index: triple key -> index into order (0-based).
	seen map[string]int
	// predicate index for fast pattern matching when a pattern pins
	// its predicate position, which every compiled rule body does.
	byPredicate map[model.Predicate]*collection.Set[int]
}

// NewStore creates an empty Graph Store.
func NewStore() *Store {
	return &Store{
		seen:        make(map[string]int),
		byPredicate: make(map[model.Predicate]*collection.Set[int]),
	}
}

// Insert adds a triple. Idempotent: inserting an existing triple is a
// no-op and reports ok=false so callers (the Fixed-Point Driver) can
// tell whether the store actually grew.
func (s *Store) Insert(t Triple) (ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(t)
}

func (s *Store) insertLocked(t Triple) bool {
	k := t.key()
	if _, dup := s.seen[k]; dup {
		return false
	}
	idx := len(s.order)
	s.order = append(s.order, t)
	s.seen[k] = idx

	set, ok := s.byPredicate[t.Predicate]
	if !ok {
		set = collection.NewSet[int]()
		s.byPredicate[t.Predicate] = set
	}
	set.Add(idx)
	return true
}

// InsertAll inserts a batch of triples and returns only the ones that
// were actually new (spec §4.4 step 2c, "new <- new \ store").
func (s *Store) InsertAll(ts []Triple) []Triple {
	s.mu.Lock()
	defer s.mu.Unlock()
	added := make([]Triple, 0, len(ts))
	for _, t := range ts {
		if s.insertLocked(t) {
			added = append(added, t)
		}
	}
	return added
}

// Size returns the number of distinct triples currently stored.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Snapshot returns an Epoch marking the current store size.
func (s *Store) Snapshot() Epoch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Epoch{ID: uuid.New(), Seq: uint64(len(s.order))}
}

// DeltaSince returns every triple inserted after the given Epoch.
func (s *Store) DeltaSince(e Epoch) []Triple {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if int(e.Seq) >= len(s.order) {
		return nil
	}
	out := make([]Triple, len(s.order)-int(e.Seq))
	copy(out, s.order[e.Seq:])
	return out
}

// Binding maps a pattern's variable names to the literal values matched.
type Binding map[Var]string

// Match returns every binding that satisfies pattern against the
// current store. Order is not guaranteed (spec §4.1) — callers (rules)
// must not depend on it.
func (s *Store) Match(p Pattern) []Binding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matchLocked(p, s.candidateIndices(p))
}

// candidateIndices narrows the scan to triples sharing the pattern's
// predicate when the predicate is a literal — every compiled rule body
// pins its predicate, so this turns most matches into an O(|predicate
// class|) scan instead of O(|store|).
func (s *Store) candidateIndices(p Pattern) []int {
	if !p.Predicate.isVar {
		set, ok := s.byPredicate[model.Predicate(p.Predicate.value)]
		if !ok {
			return nil
		}
		return set.Elements()
	}
	all := make([]int, len(s.order))
	for i := range s.order {
		all[i] = i
	}
	return all
}

func (s *Store) matchLocked(p Pattern, candidates []int) []Binding {
	var out []Binding
	for _, idx := range candidates {
		if idx < 0 || idx >= len(s.order) {
			continue
		}
		if b, ok := matchOne(p, s.order[idx]); ok {
			out = append(out, b)
		}
	}
	return out
}

// MatchIn restricts the match to a caller-supplied candidate set of
// triples instead of the whole store. Nothing in this module calls it:
// compiled rules re-match against the full store every firing.
func MatchIn(p Pattern, candidates []Triple) []Binding {
	var out []Binding
	for _, t := range candidates {
		if b, ok := matchOne(p, t); ok {
			out = append(out, b)
		}
	}
	return out
}

func matchOne(p Pattern, t Triple) (Binding, bool) {
	b := Binding{}
	if !unify(p.Subject, t.Subject, b) {
		return nil, false
	}
	if !unify(p.Predicate, string(t.Predicate), b) {
		return nil, false
	}
	if !unify(p.Object, t.Object, b) {
		return nil, false
	}
	if !unify(p.Scope, string(t.Scope), b) {
		return nil, false
	}
	return b, true
}

func unify(term Term, value string, b Binding) bool {
	if !term.isVar {
		return term.value == value
	}
	if term.name == "_" {
		return true
	}
	if existing, ok := b[term.name]; ok {
		return existing == value
	}
	b[term.name] = value
	return true
}
