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

package engine_test

import (
	"context"
	"testing"

	"github.com/parajudica/parajudica/engine"
	"github.com/parajudica/parajudica/framework"
	"github.com/parajudica/parajudica/graph"
	"github.com/parajudica/parajudica/kanon"
	"github.com/parajudica/parajudica/model"
	"github.com/stretchr/testify/require"
)

// inwardOutwardFixture gives both axes something to do: Parent is its
// own PHI source (healthcare+individual+identifier), Child is reached
// only via Inward, and GrandParent is reached only via Outward.
const inwardOutwardFixture = `
GrandParent kind Table
GrandParent hasChild Parent
Parent kind Table
Parent hasChild Child
Parent hasFacet Healthcare
Parent hasFacet Individual
Parent hasFacet DirectIdentifier
Child kind Table

Scope1 scopeMember GrandParent
Scope1 scopeMember Parent
Scope1 scopeMember Child
`

// TestAxisOrderIrrelevantAtFixpoint covers the first algebraic law: the
// driver re-fires every candidate rule every round rather than threading
// state through a fixed order, so reversing the compiled rule slice
// (which reverses the order Inward, Outward, Peer, and Joinable
// propagation are fired in within each round) must not change the
// fixpoint.
func TestAxisOrderIrrelevantAtFixpoint(t *testing.T) {
	run := func(reversed bool) *graph.Store {
		store := buildStore(t, inwardOutwardFixture)
		compiled, thresholds, err := framework.CompileAll([]model.FrameworkID{framework.HIPAAFramework})
		require.NoError(t, err, "compiling HIPAA")
		if reversed {
			for i, j := 0, len(compiled)-1; i < j; i, j = i+1, j-1 {
				compiled[i], compiled[j] = compiled[j], compiled[i]
			}
		}
		result, err := engine.New(store, compiled, kanon.NewAnalyzer(thresholds, nil)).Run(context.Background())
		require.NoError(t, err)
		return result.Store
	}

	a := run(false)
	b := run(true)

	for _, container := range []string{"GrandParent", "Parent", "Child"} {
		wantA := hasLabel(a, container, framework.PHI, "Scope1")
		wantB := hasLabel(b, container, framework.PHI, "Scope1")
		require.Equal(t, wantA, wantB, "%s's PHI membership differs by run — axis firing order must not affect the fixpoint", container)
	}
	require.True(t, hasLabel(a, "Parent", framework.PHI, "Scope1"), "Parent is PHI-eligible on its own facets in both runs")
	require.True(t, hasLabel(a, "Child", framework.PHI, "Scope1"), "Child should inherit PHI via Inward propagation from Parent")
	require.True(t, hasLabel(a, "GrandParent", framework.PHI, "Scope1"), "GrandParent should inherit PHI via Outward propagation from Parent")
}

// TestCompositionalityAcrossFrameworks covers the second algebraic law:
// adding a framework that emits labels in its own namespace never
// changes another framework's labels on the same store.
func TestCompositionalityAcrossFrameworks(t *testing.T) {
	hipaaOnly := buildStore(t, contextDependenceFixture)
	hipaaCompiled, hipaaThresholds, err := framework.CompileAll([]model.FrameworkID{framework.HIPAAFramework})
	require.NoError(t, err, "compiling HIPAA alone")
	hipaaResult, err := engine.New(hipaaOnly, hipaaCompiled, kanon.NewAnalyzer(hipaaThresholds, nil)).Run(context.Background())
	require.NoError(t, err, "HIPAA-only run failed")

	both := buildStore(t, contextDependenceFixture)
	bothResult := runHIPAAAndGDPR(t, both)

	for _, container := range []string{"PatientInfo", "ProvidersInfo"} {
		for _, scope := range []model.ScopeID{"HR", "Research"} {
			require.Equal(t, hasLabel(hipaaResult.Store, container, framework.PHI, scope), hasLabel(bothResult.Store, container, framework.PHI, scope),
				"adding GDPR changed HIPAA's PHI label on %s@%s — frameworks must compose without interference", container, scope)
		}
	}
}
