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

package framework

import (
	"github.com/parajudica/parajudica/graph"
	"github.com/parajudica/parajudica/model"
	"github.com/parajudica/parajudica/rules"
)

// BaseFramework owns no labels of its own; it only establishes the
// structural facet-inheritance rules every other bundle builds on
// (spec §3's "Facet rows may also be derived downward by propagation",
// modeled here as ordinary Implication rules over hasFacet heads rather
// than the dedicated Propagation rule kind, which spec §4.2 reserves
// for hasLabel).
const BaseFramework model.FrameworkID = "Base"

// Base is always loaded regardless of which frameworks a caller
// requests (spec §6).
var Base = Bundle{
	Framework: BaseFramework,
	Requires:  ">=1.0.0",
	Defs:      baseDefs,
}

func baseDefs() []rules.Definition {
	inheritFacet := func(id string, facet model.FacetID) rules.Definition {
		return rules.Definition{
			ID:        model.RuleID(id),
			Framework: BaseFramework,
			Kind:      rules.Implication,
			Body: []graph.Pattern{
				{Subject: graph.Bind("parent"), Predicate: graph.Lit(string(model.PredHasChild)), Object: graph.Bind("child"), Scope: graph.Any()},
				{Subject: graph.Bind("parent"), Predicate: graph.Lit(string(model.PredHasFacet)), Object: graph.Lit(string(facet)), Scope: graph.Any()},
			},
			Head: []rules.HeadTemplate{
				{Subject: graph.Bind("child"), Predicate: model.PredHasFacet, Object: graph.Lit(string(facet)), Scope: graph.Lit("")},
			},
		}
	}

	return []rules.Definition{
		inheritFacet("base:inherit-healthcare", model.FacetHealthcare),
		inheritFacet("base:inherit-individual", model.FacetIndividual),
		inheritFacet("base:inherit-sensitive", model.FacetSensitive),
	}
}
