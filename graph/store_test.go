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
	"testing"

	"github.com/parajudica/parajudica/model"
	"github.com/stretchr/testify/require"
)

func TestInsertIsIdempotent(t *testing.T) {
	s := NewStore()
	t1 := Triple{Subject: "A", Predicate: model.PredHasChild, Object: "B"}
	require.True(t, s.Insert(t1), "first insert of a new triple should report ok=true")
	require.False(t, s.Insert(t1), "re-inserting an existing triple should report ok=false")
	require.Equal(t, 1, s.Size())
}

func TestDeltaSinceOnlyReturnsLaterInserts(t *testing.T) {
	s := NewStore()
	s.Insert(Triple{Subject: "A", Predicate: model.PredHasChild, Object: "B"})
	epoch := s.Snapshot()
	s.Insert(Triple{Subject: "B", Predicate: model.PredHasChild, Object: "C"})

	delta := s.DeltaSince(epoch)
	require.Len(t, delta, 1)
	require.Equal(t, "C", delta[0].Object)
	require.Len(t, s.DeltaSince(Epoch{Seq: 0}), 2, "delta since the zero epoch should return every triple")
}

func TestMatchBindsSharedVariablesConsistently(t *testing.T) {
	s := NewStore()
	s.Insert(Triple{Subject: "A", Predicate: model.PredHasChild, Object: "B"})
	s.Insert(Triple{Subject: "A", Predicate: model.PredHasChild, Object: "C"})
	s.Insert(Triple{Subject: "X", Predicate: model.PredHasChild, Object: "A"})

	bindings := s.Match(Pattern{
		Subject:   Bind("parent"),
		Predicate: Lit(string(model.PredHasChild)),
		Object:    Bind("child"),
		Scope:     Any(),
	})
	require.Len(t, bindings, 3)

	self := s.Match(Pattern{
		Subject:   Bind("n"),
		Predicate: Lit(string(model.PredHasChild)),
		Object:    Bind("n"),
		Scope:     Any(),
	})
	require.Empty(t, self, "a repeated variable should only bind to a self-loop, and none exists here")
}

func TestScopeIsolation(t *testing.T) {
	s := NewStore()
	s.Insert(Triple{Subject: "T", Predicate: model.PredHasLabel, Object: "L", Scope: "ScopeA"})

	hits := s.Match(Pattern{
		Subject:   Lit("T"),
		Predicate: Lit(string(model.PredHasLabel)),
		Object:    Lit("L"),
		Scope:     Lit("ScopeB"),
	})
	require.Empty(t, hits, "a label held in ScopeA must not match a ScopeB query")

	hits = s.Match(Pattern{
		Subject:   Lit("T"),
		Predicate: Lit(string(model.PredHasLabel)),
		Object:    Lit("L"),
		Scope:     Lit("ScopeA"),
	})
	require.Len(t, hits, 1, "expected the label to be visible in its own scope")
}
