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
	"github.com/parajudica/parajudica/dag"
	"github.com/parajudica/parajudica/graph"
	"github.com/parajudica/parajudica/model"
	"github.com/parajudica/parajudica/xerr"
)

// ValidateContainment checks that the hasChild edges among the given
// triples form a containment forest, not a cycle. A cyclic
// Database/Table/Field containment graph would make Inward/Outward/Peer
// propagation non-terminating, so this is checked once at load time
// rather than discovered as a hang during the fixed-point run
// (spec §7 "failures surfaced at load time").
func ValidateContainment(triples []graph.Triple) error {
	g := dag.New[model.ContainerID]()
	seen := map[model.ContainerID]struct{}{}
	for _, t := range triples {
		if t.Predicate != model.PredHasChild {
			continue
		}
		parent, child := model.ContainerID(t.Subject), model.ContainerID(t.Object)
		for _, n := range []model.ContainerID{parent, child} {
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				g.AddNode(n)
			}
		}
		if err := g.AddEdge(parent, child); err != nil {
			return xerr.ErrInvariant("containment edge %s -> %s: %v", parent, child, err)
		}
	}
	if cycle := g.DetectFirstCycle(); len(cycle) > 0 {
		return xerr.ErrInvariant("containment graph has a cycle: %v", cycle)
	}
	return nil
}
