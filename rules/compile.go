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

package rules

import (
	"github.com/parajudica/parajudica/model"
	"github.com/parajudica/parajudica/xerr"
)

// Compile validates a Definition and returns its executable form. A
// malformed definition is a configuration error (spec §4.4 "Failure
// semantics" — surfaced at load time, never at fixed-point time).
func Compile(def Definition) (CompiledRule, error) {
	if err := validateVocabulary(def); err != nil {
		return nil, err
	}
	if err := validateOwnership(def); err != nil {
		return nil, err
	}

	switch def.Kind {
	case Implication:
		return &implicationRule{def: def}, nil
	case ConditionalImplication:
		if def.Condition == nil {
			return nil, xerr.ErrConfig("rule %s: ConditionalImplication requires a Condition", def.ID)
		}
		return &implicationRule{def: def, condition: def.Condition}, nil
	case Propagation:
		if def.Label == "" {
			return nil, xerr.ErrConfig("rule %s: Propagation requires a Label", def.ID)
		}
		switch def.Axis {
		case model.AxisInward, model.AxisOutward, model.AxisPeer, model.AxisJoinable:
		default:
			return nil, xerr.ErrConfig("rule %s: unknown propagation axis %q", def.ID, def.Axis)
		}
		return &propagationRule{def: def}, nil
	default:
		return nil, xerr.ErrConfig("rule %s: unknown rule kind", def.ID)
	}
}

// CompileAll compiles every definition, stopping at the first error so
// a misconfigured bundle never partially loads (spec §7 "fail fast").
func CompileAll(defs []Definition) ([]CompiledRule, error) {
	out := make([]CompiledRule, 0, len(defs))
	for _, d := range defs {
		r, err := Compile(d)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func validateVocabulary(def Definition) error {
	for _, p := range def.Body {
		if !p.Predicate.IsVar() {
			pred := model.Predicate(p.Predicate.Value())
			if !model.IsKnownPredicate(pred) {
				return xerr.ErrUnknownVocabulary("predicate", string(pred))
			}
			if pred == model.PredHasFacet && !p.Object.IsVar() {
				if !model.IsKnownFacet(model.FacetID(p.Object.Value())) {
					return xerr.ErrUnknownVocabulary("facet", p.Object.Value())
				}
			}
		}
	}
	for _, h := range def.Head {
		if !model.IsKnownPredicate(h.Predicate) {
			return xerr.ErrUnknownVocabulary("predicate", string(h.Predicate))
		}
		if h.Predicate == model.PredHasFacet && !h.Object.IsVar() {
			if !model.IsKnownFacet(model.FacetID(h.Object.Value())) {
				return xerr.ErrUnknownVocabulary("facet", h.Object.Value())
			}
		}
	}
	return nil
}

func validateOwnership(def Definition) error {
	for _, h := range def.Head {
		if h.Predicate != model.PredHasLabel {
			continue
		}
		if h.Object.IsVar() {
			// Variable-bound label objects cannot be statically
			// checked; every bundled rule in this engine mints a
			// literal, known label, so this path is unreached by the
			// shipped rule sets but kept permissive for callers who
			// build their own Definitions with a fixed vocabulary
			// they validate elsewhere.
			continue
		}
		label := model.LabelID(h.Object.Value())
		if label.Framework() != def.Framework {
			return xerr.ErrLabelOwnership(string(def.Framework), string(label))
		}
	}
	if def.Kind == Propagation && def.Label.Framework() != def.Framework {
		return xerr.ErrLabelOwnership(string(def.Framework), string(def.Label))
	}
	return nil
}
