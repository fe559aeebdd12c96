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

// Package skolem assigns stable, content-derived identifiers to
// anonymous nodes a rule firing needs to invent (spec §4.3) — in this
// engine, exclusively KAnonymityResult nodes. Hashing the same
// determining inputs twice yields the same identifier, so re-deriving a
// semantic result collapses on re-insertion instead of minting a
// duplicate node (spec §3 "Identity stability").
package skolem

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/parajudica/parajudica/model"
)

// Inputs are the determining inputs of a derivation: the rule that
// fired, the scope and container it fired for, and any auxiliary values
// that distinguish this derivation from another with the same rule,
// scope and container (e.g. a k value).
type Inputs struct {
	Rule      model.RuleID
	Scope     model.ScopeID
	Container model.ContainerID
	Aux       []any
}

// Node computes a deterministic ContainerID for the given derivation
// inputs, grounded the same way the teacher's call-memoization key is
// computed in runtime/eval_call.go: hashstructure.Hash over the
// ordered argument tuple, FormatV2.
func Node(in Inputs) model.ContainerID {
	sum, err := hashstructure.Hash(in, hashstructure.FormatV2, nil)
	if err != nil {
		// Inputs is a plain value struct of strings plus an Aux slice of
		// plain values (the analyzer passes an int k) — hashstructure
		// only fails on unsupported types (channels, funcs), which no
		// caller puts in Inputs. A failure here means a caller changed
		// Inputs' shape without updating this package.
		panic(fmt.Sprintf("skolem: unhashable derivation inputs: %v", err))
	}
	return model.ContainerID(fmt.Sprintf("skolem:%x", sum))
}
