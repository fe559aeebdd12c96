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
	"github.com/parajudica/parajudica/kanon"
	"github.com/parajudica/parajudica/model"
	"github.com/parajudica/parajudica/rules"
)

// ItalyFramework models the Italian Garante's singling-out guidance: a
// table can fail anonymity review regardless of its k value if any
// field alone uniquely identifies a row (spec §9 Open Question,
// resolved via kanon.Threshold.SingleOut rather than hardcoded into the
// analyzer).
const ItalyFramework model.FrameworkID = "Italy"

var ItalyPersonalData = model.NewLabelID(ItalyFramework, "PersonalData")

var (
	ItalyHighReidentificationRisk   = model.NewLabelID(ItalyFramework, "HighReidentificationRisk")
	ItalyAcceptableDeidentification = model.NewLabelID(ItalyFramework, "AcceptableDeidentification")
)

var Italy = Bundle{
	Framework: ItalyFramework,
	Requires:  ">=1.0.0",
	Thresholds: []KAnonThreshold{
		{MinK: 2, SingleOut: kanon.HasUniqueIdentifierField, RiskLabel: string(ItalyHighReidentificationRisk), AcceptableLabel: string(ItalyAcceptableDeidentification)},
	},
	Defs: italyDefs,
}

func italyDefs() []rules.Definition {
	return []rules.Definition{
		{
			ID:        "italy:personal-data",
			Framework: ItalyFramework,
			Kind:      rules.Implication,
			Body: []graph.Pattern{
				{Subject: graph.Bind("scope"), Predicate: graph.Lit(string(model.PredScopeMember)), Object: graph.Bind("c"), Scope: graph.Any()},
				{Subject: graph.Bind("c"), Predicate: graph.Lit(string(model.PredHasFacet)), Object: graph.Lit(string(model.FacetIndividual)), Scope: graph.Any()},
			},
			Head: []rules.HeadTemplate{
				{Subject: graph.Bind("c"), Predicate: model.PredHasLabel, Object: graph.Lit(string(ItalyPersonalData)), Scope: graph.Bind("scope")},
			},
		},
		{
			ID:        "italy:personal-data-propagate-inward",
			Framework: ItalyFramework,
			Kind:      rules.Propagation,
			Label:     ItalyPersonalData,
			Axis:      model.AxisInward,
		},
	}
}
