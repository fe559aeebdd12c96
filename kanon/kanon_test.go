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

package kanon

import (
	"strconv"
	"testing"

	"github.com/parajudica/parajudica/graph"
	"github.com/parajudica/parajudica/model"
	"github.com/stretchr/testify/require"
)

// buildTable wires a Table with one quasi-identifier field and a
// declared k, optionally marking the field UniqueIdentifier as well
// (Italy's singling-out trigger).
func buildTable(declaredK int, unique bool) *graph.Store {
	store := graph.NewStore()
	store.InsertAll([]graph.Triple{
		{Subject: "AggregatedHealth", Predicate: model.PredKind, Object: string(model.KindTable)},
		{Subject: "AggregatedHealth", Predicate: model.PredHasChild, Object: "ZipCode"},
		{Subject: "ZipCode", Predicate: model.PredHasFacet, Object: string(model.FacetIndirectID)},
		{Subject: "AggregatedHealth", Predicate: model.PredDeclaredK, Object: strconv.Itoa(declaredK)},
		{Subject: "Cohort", Predicate: model.PredScopeMember, Object: "AggregatedHealth"},
	})
	if unique {
		store.Insert(graph.Triple{Subject: "ZipCode", Predicate: model.PredHasFacet, Object: string(model.FacetUniqueID)})
	}
	return store
}

func thresholds() []Threshold {
	return []Threshold{
		{Framework: "HIPAA", MinK: 3, RiskLabel: "HIPAA:HighReidentificationRisk", AcceptableLabel: "HIPAA:AcceptableDeidentification"},
		{Framework: "EMA", MinK: 12, RiskLabel: "EMA:HighReidentificationRisk", AcceptableLabel: "EMA:AcceptableDeidentification"},
		{Framework: "Italy", MinK: 2, SingleOut: HasUniqueIdentifierField, RiskLabel: "Italy:HighReidentificationRisk", AcceptableLabel: "Italy:AcceptableDeidentification"},
	}
}

func hasLabel(triples []graph.Triple, subject, label string) bool {
	for _, tr := range triples {
		if tr.Subject == subject && tr.Predicate == model.PredHasLabel && tr.Object == label {
			return true
		}
	}
	return false
}

// TestKAnonymityThresholdsDivergeByFramework covers scenario 4: the same
// declared k=3 clears HIPAA's bar, fails EMA's much stricter one, and
// passes or fails Italy's depending only on whether a field singles rows
// out on its own.
func TestKAnonymityThresholdsDivergeByFramework(t *testing.T) {
	store := buildTable(3, false)
	analyzer := NewAnalyzer(thresholds(), nil)
	out := analyzer.Analyze(store)

	require.False(t, hasLabel(out, "AggregatedHealth", "HIPAA:HighReidentificationRisk"), "k=3 meets HIPAA's MinK of 3, should not be flagged as high risk")
	require.True(t, hasLabel(out, "AggregatedHealth", "HIPAA:AcceptableDeidentification"), "k=3 should clear HIPAA's bar as acceptable")
	require.True(t, hasLabel(out, "AggregatedHealth", "EMA:HighReidentificationRisk"), "k=3 falls well short of EMA's MinK of 12, should be flagged as high risk")
	require.True(t, hasLabel(out, "AggregatedHealth", "Italy:AcceptableDeidentification"), "k=3 clears Italy's MinK of 2 and no field singles out a row, should be acceptable")
}

// TestItalySingleOutOverridesK covers the same scenario's other half:
// Italy's singling-out check fires regardless of k once a field is
// marked UniqueIdentifier, even though the same k would otherwise pass.
func TestItalySingleOutOverridesK(t *testing.T) {
	store := buildTable(50, true)
	analyzer := NewAnalyzer(thresholds(), nil)
	out := analyzer.Analyze(store)

	require.True(t, hasLabel(out, "AggregatedHealth", "Italy:HighReidentificationRisk"), "a UniqueIdentifier field should trip Italy's singling-out rule regardless of k=50")
	require.False(t, hasLabel(out, "AggregatedHealth", "HIPAA:HighReidentificationRisk"), "HIPAA has no SingleOut predicate — k=50 should clear its MinK of 3 untouched by Italy's rule")
}

// TestNoQuasiIdentifierFieldsMeansKUndefined covers spec §4.5 step 2: a
// table with no IndirectIdentifier field has no defined k and the
// analyzer emits nothing for it.
func TestNoQuasiIdentifierFieldsMeansKUndefined(t *testing.T) {
	store := graph.NewStore()
	store.InsertAll([]graph.Triple{
		{Subject: "Plain", Predicate: model.PredKind, Object: string(model.KindTable)},
		{Subject: "Cohort", Predicate: model.PredScopeMember, Object: "Plain"},
	})
	out := NewAnalyzer(thresholds(), nil).Analyze(store)
	require.Empty(t, out, "expected no k-anonymity output for a table with no quasi-identifier fields")
}
