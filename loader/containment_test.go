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
	"testing"

	"github.com/parajudica/parajudica/graph"
	"github.com/parajudica/parajudica/model"
	"github.com/stretchr/testify/require"
)

func TestValidateContainmentAcceptsAForest(t *testing.T) {
	triples := []graph.Triple{
		{Subject: "Database", Predicate: model.PredHasChild, Object: "Patients"},
		{Subject: "Patients", Predicate: model.PredHasChild, Object: "PatientName"},
		{Subject: "Patients", Predicate: model.PredHasChild, Object: "PatientDOB"},
	}
	require.NoError(t, ValidateContainment(triples), "a valid containment forest must not error")
}

func TestValidateContainmentRejectsACycle(t *testing.T) {
	triples := []graph.Triple{
		{Subject: "A", Predicate: model.PredHasChild, Object: "B"},
		{Subject: "B", Predicate: model.PredHasChild, Object: "C"},
		{Subject: "C", Predicate: model.PredHasChild, Object: "A"},
	}
	require.Error(t, ValidateContainment(triples), "a containment cycle must be rejected at load time")
}
