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

package loader

import (
	"context"
	"strings"
	"testing"

	"github.com/parajudica/parajudica/model"
	"github.com/stretchr/testify/require"
)

func TestLineLoaderParsesGlobalAndScopedTriples(t *testing.T) {
	input := `
# a comment, and a blank line follow

Patients kind Table
Patients hasChild PatientName
PatientName hasFacet DirectIdentifier
Patients hasLabel HIPAA:PHI @Research
`
	triples, err := (LineLoader{}).Load(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, triples, 4)

	last := triples[3]
	require.Equal(t, model.ScopeID("Research"), last.Scope)
	require.Equal(t, model.ScopeID(""), triples[0].Scope, "a line with no @scope suffix should parse to the empty scope")
}

func TestLineLoaderSymmetrizesJoinableWith(t *testing.T) {
	triples, err := (LineLoader{}).Load(context.Background(), strings.NewReader("ProvidersInfo joinableWith PatientEncounters"))
	require.NoError(t, err)
	require.Len(t, triples, 2, "expected the loader to assert both directions")

	require.Equal(t, "ProvidersInfo", triples[0].Subject)
	require.Equal(t, "PatientEncounters", triples[0].Object)
	require.Equal(t, "PatientEncounters", triples[1].Subject)
	require.Equal(t, "ProvidersInfo", triples[1].Object)
}

func TestLineLoaderRejectsMalformedLine(t *testing.T) {
	_, err := (LineLoader{}).Load(context.Background(), strings.NewReader("Patients kind"))
	require.Error(t, err, "expected an error for a line missing its object")
}
