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
	"strings"
	"testing"

	"github.com/parajudica/parajudica/engine"
	"github.com/parajudica/parajudica/graph"
	"github.com/parajudica/parajudica/kanon"
	"github.com/parajudica/parajudica/loader"
	"github.com/parajudica/parajudica/model"
	"github.com/parajudica/parajudica/rules"
	"github.com/stretchr/testify/require"
)

// TestPeerAxisPropagatesBetweenSiblingsOnly exercises the Peer axis in
// isolation — no Inward, Outward, or Joinable rule is registered, so any
// propagation observed can only be explained by Peer (spec.md §9's Open
// Question: Peer is supported but the bundled scenarios never need it
// on its own).
func TestPeerAxisPropagatesBetweenSiblingsOnly(t *testing.T) {
	fixture := `
Parent kind Table
Parent hasChild Sib1
Parent hasChild Sib2
Parent hasChild Sib3

Scope1 scopeMember Parent
Scope1 scopeMember Sib1
Scope1 scopeMember Sib2
Scope1 scopeMember Sib3
`
	triples, err := (loader.LineLoader{}).Load(context.Background(), strings.NewReader(fixture))
	require.NoError(t, err, "fixture failed to parse")
	store := graph.NewStore()
	store.InsertAll(triples)

	const marker model.LabelID = "Test:Marker"
	store.Insert(graph.Triple{Subject: "Sib1", Predicate: model.PredHasLabel, Object: string(marker), Scope: "Scope1"})

	peerOnly := rules.Definition{
		ID:        "test:peer-only",
		Framework: "Test",
		Kind:      rules.Propagation,
		Label:     marker,
		Axis:      model.AxisPeer,
	}
	compiled, err := rules.Compile(peerOnly)
	require.NoError(t, err, "compiling peer-only rule")

	result, err := engine.New(store, []rules.CompiledRule{compiled}, kanon.NewAnalyzer(nil, nil)).Run(context.Background())
	require.NoError(t, err)

	for _, sibling := range []string{"Sib2", "Sib3"} {
		require.True(t, hasLabel(result.Store, sibling, marker, "Scope1"), "%s should receive the marker label from its sibling via the Peer axis", sibling)
	}
	require.False(t, hasLabel(result.Store, "Parent", marker, "Scope1"), "Peer propagation must not reach the parent — that would be Outward")
}
