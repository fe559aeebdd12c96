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

// HIPAAFramework models the US Health Insurance Portability and
// Accountability Act's Safe Harbor de-identification method
// (45 CFR §164.514(b)(2)): any of 18 named identifier types makes a
// container a SafeHarborIdentifier, which chains to HIPAAIdentifier,
// which in turn gates PHI on healthcare+individual data (spec §9
// "All-18 removal" scenario).
const HIPAAFramework model.FrameworkID = "HIPAA"

// PHI is the label a covered entity's tooling would key enforcement
// off of: individually identifiable health information.
var PHI = model.NewLabelID(HIPAAFramework, "PHI")

// HIPAAHighReidentificationRisk and HIPAAAcceptableDeidentification are HIPAA's
// k-anonymity outcome labels (spec §4.5 steps 5–6).
var (
	HIPAAHighReidentificationRisk  = model.NewLabelID(HIPAAFramework, "HighReidentificationRisk")
	HIPAAAcceptableDeidentification = model.NewLabelID(HIPAAFramework, "AcceptableDeidentification")
)

var HIPAA = Bundle{
	Framework: HIPAAFramework,
	Requires:  ">=1.0.0",
	Thresholds: []KAnonThreshold{
		{MinK: 3, RiskLabel: string(HIPAAHighReidentificationRisk), AcceptableLabel: string(HIPAAAcceptableDeidentification)},
	},
	Defs: hipaaDefs,
}

func hipaaDefs() []rules.Definition {
	defs := make([]rules.Definition, 0, len(model.AllSafeHarborIdentifiers)+7)

	// Any one of the 18 Safe Harbor identifier types makes a container
	// a SafeHarborIdentifier (disjunction expressed as 18 independent
	// Implication rules, since a rule body is a conjunction — spec §4.2).
	for _, facet := range model.AllSafeHarborIdentifiers {
		defs = append(defs, rules.Definition{
			ID:        model.RuleID("hipaa:safe-harbor:" + string(facet)),
			Framework: HIPAAFramework,
			Kind:      rules.Implication,
			Body: []graph.Pattern{
				{Subject: graph.Bind("c"), Predicate: graph.Lit(string(model.PredHasFacet)), Object: graph.Lit(string(facet)), Scope: graph.Any()},
			},
			Head: []rules.HeadTemplate{
				{Subject: graph.Bind("c"), Predicate: model.PredHasFacet, Object: graph.Lit(string(model.FacetSafeHarbor)), Scope: graph.Lit("")},
			},
		})
	}

	// A generic DirectIdentifier facet (used across frameworks) also
	// satisfies Safe Harbor: any field that directly identifies a
	// person is, by definition, one of the 18 identifier types even if
	// the loader never named which one.
	defs = append(defs, rules.Definition{
		ID:        "hipaa:direct-identifier-is-safe-harbor",
		Framework: HIPAAFramework,
		Kind:      rules.Implication,
		Body: []graph.Pattern{
			{Subject: graph.Bind("c"), Predicate: graph.Lit(string(model.PredHasFacet)), Object: graph.Lit(string(model.FacetDirectID)), Scope: graph.Any()},
		},
		Head: []rules.HeadTemplate{
			{Subject: graph.Bind("c"), Predicate: model.PredHasFacet, Object: graph.Lit(string(model.FacetSafeHarbor)), Scope: graph.Lit("")},
		},
	})

	defs = append(defs, rules.Definition{
		ID:        "hipaa:safe-harbor-is-identifier",
		Framework: HIPAAFramework,
		Kind:      rules.Implication,
		Body: []graph.Pattern{
			{Subject: graph.Bind("c"), Predicate: graph.Lit(string(model.PredHasFacet)), Object: graph.Lit(string(model.FacetSafeHarbor)), Scope: graph.Any()},
		},
		Head: []rules.HeadTemplate{
			{Subject: graph.Bind("c"), Predicate: model.PredHasFacet, Object: graph.Lit(string(model.FacetHIPAAIdent)), Scope: graph.Lit("")},
		},
	})

	// PHI: a healthcare table about individuals becomes PHI once it (or
	// one of its own fields) carries a HIPAAIdentifier — the
	// ConditionalImplication's child-inspecting Condition from spec §4.2.
	defs = append(defs, rules.Definition{
		ID:        "hipaa:phi",
		Framework: HIPAAFramework,
		Kind:      rules.ConditionalImplication,
		Body: []graph.Pattern{
			{Subject: graph.Bind("scope"), Predicate: graph.Lit(string(model.PredScopeMember)), Object: graph.Bind("c"), Scope: graph.Any()},
			{Subject: graph.Bind("c"), Predicate: graph.Lit(string(model.PredHasFacet)), Object: graph.Lit(string(model.FacetHealthcare)), Scope: graph.Any()},
			{Subject: graph.Bind("c"), Predicate: graph.Lit(string(model.PredHasFacet)), Object: graph.Lit(string(model.FacetIndividual)), Scope: graph.Any()},
		},
		Condition: &rules.Condition{
			Of:        "c",
			Check:     selfOrChildHasFacet(model.FacetHIPAAIdent),
			Describe:  "self or some field carries HIPAAIdentifier",
			DependsOn: []model.Predicate{model.PredHasFacet, model.PredHasChild},
		},
		Head: []rules.HeadTemplate{
			{Subject: graph.Bind("c"), Predicate: model.PredHasLabel, Object: graph.Lit(string(PHI)), Scope: graph.Bind("scope")},
		},
	})

	// PHI uses all four propagation axes (spec §4.2's Axis enumeration;
	// HIPAA is the bundle that exercises every one of them).
	for _, axis := range []model.Axis{model.AxisInward, model.AxisOutward, model.AxisPeer, model.AxisJoinable} {
		defs = append(defs, rules.Definition{
			ID:        model.RuleID("hipaa:phi-propagate-" + string(axis)),
			Framework: HIPAAFramework,
			Kind:      rules.Propagation,
			Label:     PHI,
			Axis:      axis,
		})
	}

	return defs
}

// selfOrChildHasFacet builds a Condition.Check closure that reports
// true if the bound container itself, or any of its hasChild children,
// carries facet.
func selfOrChildHasFacet(facet model.FacetID) func(store *graph.Store, container string) bool {
	return func(store *graph.Store, container string) bool {
		if len(store.Match(graph.Pattern{
			Subject:   graph.Lit(container),
			Predicate: graph.Lit(string(model.PredHasFacet)),
			Object:    graph.Lit(string(facet)),
			Scope:     graph.Any(),
		})) > 0 {
			return true
		}
		children := store.Match(graph.Pattern{
			Subject:   graph.Lit(container),
			Predicate: graph.Lit(string(model.PredHasChild)),
			Object:    graph.Bind("child"),
			Scope:     graph.Any(),
		})
		for _, b := range children {
			if len(store.Match(graph.Pattern{
				Subject:   graph.Lit(b["child"]),
				Predicate: graph.Lit(string(model.PredHasFacet)),
				Object:    graph.Lit(string(facet)),
				Scope:     graph.Any(),
			})) > 0 {
				return true
			}
		}
		return false
	}
}
