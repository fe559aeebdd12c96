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
	"github.com/fatih/structs"
	"github.com/parajudica/parajudica/graph"
	"github.com/parajudica/parajudica/model"
)

// FixtureTriples turns a tagged Go struct into the kind/hasFacet triples
// for one container — a convenience for building test fixtures without
// hand-writing every graph.Triple literal. Each exported bool field
// whose value is true contributes a hasFacet triple named by its
// `structs` tag (or field name, if untagged); false fields are omitted
// entirely rather than asserted as a negative fact, matching the
// open-world convention the rest of the engine uses (spec §3 "absence
// of a triple is not itself meaningful, but nothing relies on negation
// either").
//
//	type patientInfo struct {
//		Healthcare bool `structs:"Healthcare"`
//		Individual bool `structs:"Individual"`
//	}
//	loader.FixtureTriples("PatientInfo", model.KindTable, patientInfo{Healthcare: true, Individual: true})
func FixtureTriples(subject model.ContainerID, kind model.ContainerKind, v any) []graph.Triple {
	out := []graph.Triple{
		{Subject: string(subject), Predicate: model.PredKind, Object: string(kind)},
	}
	for name, val := range structs.Map(v) {
		b, ok := val.(bool)
		if !ok || !b {
			continue
		}
		out = append(out, graph.Triple{
			Subject:   string(subject),
			Predicate: model.PredHasFacet,
			Object:    name,
		})
	}
	return out
}
