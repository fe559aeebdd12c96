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

package model

// Container is a database, table, or field. Containment and joinable
// edges live as triples in the graph store; Container itself only
// carries the attributes the loader asserted at construction time.
type Container struct {
	ID     ContainerID
	Kind   ContainerKind
	Parent ContainerID // "" if root
}

// Scope is a named governance context. Membership is recorded as
// scopeMember triples, not as a field here, so a Scope value stays
// immutable once loaded.
type Scope struct {
	ID ScopeID
}

// Axis is one of the four propagation directions a label may declare
// (spec §4.2).
type Axis string

const (
	AxisInward   Axis = "Inward"
	AxisOutward  Axis = "Outward"
	AxisPeer     Axis = "Peer"
	AxisJoinable Axis = "Joinable"
)

// Framework is a named rule bundle that owns a label namespace.
type Framework struct {
	ID FrameworkID
}

// KAnonymityResult is the Skolemized per-(Container, Scope) record
// produced by the K-Anonymity Analyzer (spec §3, §4.5).
type KAnonymityResult struct {
	Node      ContainerID // Skolemized identity of this result node
	Container ContainerID
	Scope     ScopeID
	K         int
}
