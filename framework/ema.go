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

// EMAFramework models the European Medicines Agency's Policy 0070 on
// publication of clinical trial data: trial records must clear a
// stricter anonymity bar than ordinary personal data before release.
const EMAFramework model.FrameworkID = "EMA"

var EMAClinicalTrialData = model.NewLabelID(EMAFramework, "ClinicalTrialData")

var (
	EMAHighReidentificationRisk      = model.NewLabelID(EMAFramework, "HighReidentificationRisk")
	EMAAcceptableDeidentification    = model.NewLabelID(EMAFramework, "AcceptableDeidentification")
)

var EMA = Bundle{
	Framework: EMAFramework,
	Requires:  ">=1.0.0",
	Thresholds: []KAnonThreshold{
		// Policy 0070 anonymization reports are held to a materially
		// stricter bar than Safe Harbor: a larger minimum equivalence
		// class before publication is considered acceptable.
		{MinK: 12, RiskLabel: string(EMAHighReidentificationRisk), AcceptableLabel: string(EMAAcceptableDeidentification)},
	},
	Defs: emaDefs,
}

func emaDefs() []rules.Definition {
	defs := []rules.Definition{
		{
			ID:        "ema:clinical-trial-data",
			Framework: EMAFramework,
			Kind:      rules.Implication,
			Body: []graph.Pattern{
				{Subject: graph.Bind("scope"), Predicate: graph.Lit(string(model.PredScopeMember)), Object: graph.Bind("c"), Scope: graph.Any()},
				{Subject: graph.Bind("c"), Predicate: graph.Lit(string(model.PredHasFacet)), Object: graph.Lit(string(model.FacetClinicalRec)), Scope: graph.Any()},
			},
			Head: []rules.HeadTemplate{
				{Subject: graph.Bind("c"), Predicate: model.PredHasLabel, Object: graph.Lit(string(EMAClinicalTrialData)), Scope: graph.Bind("scope")},
			},
		},
	}

	defs = append(defs, rules.Definition{
		ID:        "ema:clinical-trial-data-propagate-inward",
		Framework: EMAFramework,
		Kind:      rules.Propagation,
		Label:     EMAClinicalTrialData,
		Axis:      model.AxisInward,
	})

	return defs
}
