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

// Package kanon is the K-Anonymity Analyzer (spec §4.5): for every
// Table visible in some Scope, it computes the anonymity set size k
// from quasi-identifier fields and emits HighReidentificationRisk /
// AcceptableDeidentification labels per framework-specific thresholds.
//
// Analyze is a single-shot pure pass, not a state machine (spec §4.5
// "State machine: None") — it is safe to call once per fixed-point
// round because its output depends only on facets and declared k,
// both of which are themselves stable within a run once derived.
package kanon

import (
	"sort"
	"strconv"
	"strings"

	"github.com/parajudica/parajudica/graph"
	"github.com/parajudica/parajudica/model"
	"github.com/parajudica/parajudica/skolem"
)

// Threshold registers one framework's k-anonymity policy (spec §4.5
// steps 5–6).
type Threshold struct {
	Framework model.FrameworkID
	// MinK is the smallest k considered acceptable; k < MinK triggers
	// HighReidentificationRisk.
	MinK int
	// SingleOut, if non-nil, overrides the MinK check: when it reports
	// true for a table, HighReidentificationRisk fires regardless of k
	// (spec §9 Italy "singling-out" open question — parameterized
	// rather than hardcoded).
	SingleOut func(store *graph.Store, table model.ContainerID) bool
	// RiskLabel and AcceptableLabel are this framework's label
	// identities for the two outcomes.
	RiskLabel       model.LabelID
	AcceptableLabel model.LabelID
}

// Sample is a data sample used to compute k when no declaredK triple
// exists for a table (spec §4.5 step 3). Rows map field id to value;
// every row is expected to carry every quasi-identifier field.
type Sample struct {
	Table model.ContainerID
	Rows  []map[model.ContainerID]string
}

// Analyzer runs the analysis for a fixed registry of framework
// thresholds and data samples.
type Analyzer struct {
	thresholds []Threshold
	samples    map[model.ContainerID]Sample
}

// NewAnalyzer builds an Analyzer. samples may be nil or incomplete —
// tables with an explicit declaredK triple never need a sample.
func NewAnalyzer(thresholds []Threshold, samples []Sample) *Analyzer {
	byTable := make(map[model.ContainerID]Sample, len(samples))
	for _, s := range samples {
		byTable[s.Table] = s
	}
	return &Analyzer{thresholds: thresholds, samples: byTable}
}

// Analyze scans every Table the store knows about and returns the
// triples the procedure in spec §4.5 derives: the KAnonymityAnalysis
// result node per (Table, Scope), and any triggered framework labels.
func (a *Analyzer) Analyze(store *graph.Store) []graph.Triple {
	var out []graph.Triple
	for _, table := range tablesInStore(store) {
		qids := quasiIdentifierFields(store, table)
		if len(qids) == 0 {
			continue // k undefined, spec §4.5 step 2
		}
		for _, scope := range scopesOf(store, table) {
			k, ok := a.computeK(store, table, qids)
			if !ok {
				continue
			}
			out = append(out, a.emitForTable(store, table, scope, k)...)
		}
	}
	return out
}

func (a *Analyzer) computeK(store *graph.Store, table model.ContainerID, qids []model.ContainerID) (int, bool) {
	if decl := declaredK(store, table); decl != nil {
		return *decl, true
	}
	sample, ok := a.samples[table]
	if !ok {
		return 0, false
	}
	return computeKFromSample(sample, qids), true
}

func (a *Analyzer) emitForTable(store *graph.Store, table model.ContainerID, scope model.ScopeID, k int) []graph.Triple {
	node := skolem.Node(skolem.Inputs{
		Rule:      "kanon:analysis",
		Scope:     scope,
		Container: table,
		Aux:       []any{k},
	})
	out := []graph.Triple{
		{Subject: string(node), Predicate: model.PredKAnonResultFor, Object: string(table)},
		{Subject: string(node), Predicate: model.PredKAnonResultScope, Object: string(scope)},
		{Subject: string(node), Predicate: model.PredKAnonResultK, Object: strconv.Itoa(k)},
	}
	for _, th := range a.thresholds {
		risk := false
		if th.SingleOut != nil && th.SingleOut(store, table) {
			risk = true
		} else if k < th.MinK {
			risk = true
		}
		if risk {
			if th.RiskLabel != "" {
				out = append(out, graph.Triple{Subject: string(table), Predicate: model.PredHasLabel, Object: string(th.RiskLabel), Scope: scope})
			}
			continue
		}
		if th.AcceptableLabel != "" {
			out = append(out, graph.Triple{Subject: string(table), Predicate: model.PredHasLabel, Object: string(th.AcceptableLabel), Scope: scope})
		}
	}
	return out
}

func computeKFromSample(sample Sample, qids []model.ContainerID) int {
	groups := map[string]int{}
	sorted := append([]model.ContainerID(nil), qids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	for _, row := range sample.Rows {
		parts := make([]string, len(sorted))
		for i, f := range sorted {
			parts[i] = row[f]
		}
		key := strings.Join(parts, "\x00")
		groups[key]++
	}
	if len(groups) == 0 {
		return 0
	}
	min := -1
	for _, n := range groups {
		if min == -1 || n < min {
			min = n
		}
	}
	return min
}

func declaredK(store *graph.Store, table model.ContainerID) *int {
	b := store.Match(graph.Pattern{
		Subject:   graph.Lit(string(table)),
		Predicate: graph.Lit(string(model.PredDeclaredK)),
		Object:    graph.Bind("k"),
		Scope:     graph.Any(),
	})
	if len(b) == 0 {
		return nil
	}
	n, err := strconv.Atoi(b[0]["k"])
	if err != nil {
		return nil
	}
	return &n
}

func tablesInStore(store *graph.Store) []model.ContainerID {
	b := store.Match(graph.Pattern{
		Subject:   graph.Bind("c"),
		Predicate: graph.Lit(string(model.PredKind)),
		Object:    graph.Lit(string(model.KindTable)),
		Scope:     graph.Any(),
	})
	seen := map[model.ContainerID]struct{}{}
	var out []model.ContainerID
	for _, bind := range b {
		id := model.ContainerID(bind["c"])
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

func scopesOf(store *graph.Store, container model.ContainerID) []model.ScopeID {
	b := store.Match(graph.Pattern{
		Subject:   graph.Bind("scope"),
		Predicate: graph.Lit(string(model.PredScopeMember)),
		Object:    graph.Lit(string(container)),
		Scope:     graph.Any(),
	})
	var out []model.ScopeID
	for _, bind := range b {
		out = append(out, model.ScopeID(bind["scope"]))
	}
	return out
}

// quasiIdentifierFields returns every field of table whose facets
// include IndirectIdentifier, excluding any also carrying
// InternalIdentifier (spec §4.5 step 1).
func quasiIdentifierFields(store *graph.Store, table model.ContainerID) []model.ContainerID {
	children := store.Match(graph.Pattern{
		Subject:   graph.Lit(string(table)),
		Predicate: graph.Lit(string(model.PredHasChild)),
		Object:    graph.Bind("field"),
		Scope:     graph.Any(),
	})
	var out []model.ContainerID
	for _, cb := range children {
		field := model.ContainerID(cb["field"])
		if hasFacet(store, field, model.FacetIndirectID) && !hasFacet(store, field, model.FacetInternalID) {
			out = append(out, field)
		}
	}
	return out
}

func hasFacet(store *graph.Store, container model.ContainerID, facet model.FacetID) bool {
	b := store.Match(graph.Pattern{
		Subject:   graph.Lit(string(container)),
		Predicate: graph.Lit(string(model.PredHasFacet)),
		Object:    graph.Lit(string(facet)),
		Scope:     graph.Any(),
	})
	return len(b) > 0
}

// HasUniqueIdentifierField is the default Italy singling-out predicate
// (spec §9): true if any field of the table carries UniqueIdentifier.
func HasUniqueIdentifierField(store *graph.Store, table model.ContainerID) bool {
	children := store.Match(graph.Pattern{
		Subject:   graph.Lit(string(table)),
		Predicate: graph.Lit(string(model.PredHasChild)),
		Object:    graph.Bind("field"),
		Scope:     graph.Any(),
	})
	for _, cb := range children {
		if hasFacet(store, model.ContainerID(cb["field"]), model.FacetUniqueID) {
			return true
		}
	}
	return false
}
