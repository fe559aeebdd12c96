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

// GDPRFramework models the EU General Data Protection Regulation's two
// tiers: ordinary PersonalData (Art. 4) and the narrower
// SpecialCategoryData (Art. 9) for health, genetic, biometric, and
// racial/ethnic origin data.
const GDPRFramework model.FrameworkID = "GDPR"

var (
	GDPRPersonalData        = model.NewLabelID(GDPRFramework, "PersonalData")
	GDPRSpecialCategoryData = model.NewLabelID(GDPRFramework, "SpecialCategoryData")
)

var GDPR = Bundle{
	Framework: GDPRFramework,
	Requires:  ">=1.0.0",
	Defs:      gdprDefs,
}

func gdprDefs() []rules.Definition {
	mintScoped := func(id string, facets []model.FacetID, label model.LabelID) rules.Definition {
		body := []graph.Pattern{
			{Subject: graph.Bind("scope"), Predicate: graph.Lit(string(model.PredScopeMember)), Object: graph.Bind("c"), Scope: graph.Any()},
		}
		for _, f := range facets {
			body = append(body, graph.Pattern{Subject: graph.Bind("c"), Predicate: graph.Lit(string(model.PredHasFacet)), Object: graph.Lit(string(f)), Scope: graph.Any()})
		}
		return rules.Definition{
			ID:        model.RuleID(id),
			Framework: GDPRFramework,
			Kind:      rules.Implication,
			Body:      body,
			Head: []rules.HeadTemplate{
				{Subject: graph.Bind("c"), Predicate: model.PredHasLabel, Object: graph.Lit(string(label)), Scope: graph.Bind("scope")},
			},
		}
	}

	defs := []rules.Definition{
		mintScoped("gdpr:personal-data", []model.FacetID{model.FacetIndividual}, GDPRPersonalData),
		mintScoped("gdpr:special-category:health", []model.FacetID{model.FacetIndividual, model.FacetHealthcare}, GDPRSpecialCategoryData),
		mintScoped("gdpr:special-category:genetic", []model.FacetID{model.FacetIndividual, model.FacetGenetic}, GDPRSpecialCategoryData),
		mintScoped("gdpr:special-category:biometric", []model.FacetID{model.FacetIndividual, model.FacetBiometric}, GDPRSpecialCategoryData),
		mintScoped("gdpr:special-category:racial", []model.FacetID{model.FacetIndividual, model.FacetRacialData}, GDPRSpecialCategoryData),
	}

	// PersonalData propagates Inward and Outward through the
	// containment forest but deliberately not Joinable: under GDPR,
	// merely being joinable with personal data doesn't itself make a
	// container personal data (spec §9 Open Question — resolved per
	// bundle rather than hardcoded into the engine).
	for _, axis := range []model.Axis{model.AxisInward, model.AxisOutward} {
		defs = append(defs, rules.Definition{
			ID:        model.RuleID("gdpr:personal-data-propagate-" + string(axis)),
			Framework: GDPRFramework,
			Kind:      rules.Propagation,
			Label:     GDPRPersonalData,
			Axis:      axis,
		})
	}
	for _, axis := range []model.Axis{model.AxisInward, model.AxisPeer} {
		defs = append(defs, rules.Definition{
			ID:        model.RuleID("gdpr:special-category-propagate-" + string(axis)),
			Framework: GDPRFramework,
			Kind:      rules.Propagation,
			Label:     GDPRSpecialCategoryData,
			Axis:      axis,
		})
	}

	return defs
}
