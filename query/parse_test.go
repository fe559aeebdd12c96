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

package query

import (
	"testing"

	"github.com/parajudica/parajudica/graph"
	"github.com/stretchr/testify/require"
)

func TestParseLineBindsVariablesInFirstAppearanceOrder(t *testing.T) {
	q, err := ParseLine("?table hasLabel ?label @?scope")
	require.NoError(t, err)
	require.Equal(t, []graph.Var{"table", "label", "scope"}, q.Columns)
}

func TestParseLineWithNoScopeMatchesAnyScope(t *testing.T) {
	q, err := ParseLine("PatientInfo hasFacet ?facet")
	require.NoError(t, err)
	require.True(t, q.Pattern.Scope.IsVar(), "an unscoped query line should match any scope")
	require.Equal(t, "_", q.Pattern.Scope.Name())
}

func TestParseLineRepeatedVariableIsNotDuplicatedAsAColumn(t *testing.T) {
	q, err := ParseLine("?x hasChild ?x")
	require.NoError(t, err)
	require.Len(t, q.Columns, 1, "a variable used twice should still contribute one column")
}

func TestParseLineRejectsWrongArity(t *testing.T) {
	_, err := ParseLine("onlyTwo fields")
	require.Error(t, err)
}
