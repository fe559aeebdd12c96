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

package dag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type strNode string

func (s strNode) String() string { return string(s) }

// TestAddEdgeRejectsSelfLoop covers the one cycle check AddEdge performs
// on its own — loader.ValidateContainment relies on self-loops being
// rejected immediately rather than surviving into DetectFirstCycle.
func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	g := New[strNode]()
	g.AddNode("Table")
	require.ErrorIs(t, g.AddEdge("Table", "Table"), ErrSelfLoop)
}

// TestDetectFirstCycleFindsNoCycleInAForest mirrors the containment
// shape loader.ValidateContainment expects to see on every valid
// fixture: parents pointing at children, no path back.
func TestDetectFirstCycleFindsNoCycleInAForest(t *testing.T) {
	g := New[strNode]()
	for _, n := range []strNode{"Database", "Table", "Field"} {
		g.AddNode(n)
	}
	require.NoError(t, g.AddEdge("Database", "Table"))
	require.NoError(t, g.AddEdge("Table", "Field"))

	require.Empty(t, g.DetectFirstCycle())
}

// TestDetectFirstCycleFindsACycle covers the failure loader.ValidateContainment
// is guarding against: a Table claiming one of its own descendants as a
// parent.
func TestDetectFirstCycleFindsACycle(t *testing.T) {
	g := New[strNode]()
	for _, n := range []strNode{"A", "B", "C"} {
		g.AddNode(n)
	}
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("C", "A"))

	cycle := g.DetectFirstCycle()
	require.NotEmpty(t, cycle)
}
