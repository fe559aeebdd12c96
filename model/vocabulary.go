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

// Predicate is a member of the closed predicate vocabulary a rule body
// or head may reference. The Rule Compiler rejects any other string at
// load time (spec §7 "rule references an unknown vocabulary term").
type Predicate string

const (
	// PredKind: (Container, kind, ContainerKind) — loader-asserted.
	PredKind Predicate = "kind"
	// PredHasFacet: (Container, hasFacet, FacetID) — loader-asserted,
	// or derived by Implication rules (e.g. Base's parent-to-child
	// facet inheritance).
	PredHasFacet Predicate = "hasFacet"
	// PredHasLabel: (Container, hasLabel, LabelID), scope-tagged —
	// derived only, never loader-asserted.
	PredHasLabel Predicate = "hasLabel"
	// PredHasChild: (Parent, hasChild, Child) — loader-asserted,
	// containment forest edge.
	PredHasChild Predicate = "hasChild"
	// PredJoinableWith: (A, joinableWith, B) — loader-asserted,
	// symmetric; the loader inserts both directions.
	PredJoinableWith Predicate = "joinableWith"
	// PredScopeMember: (Scope, scopeMember, Container) — loader-asserted.
	PredScopeMember Predicate = "scopeMember"
	// PredDeclaredK: (Table, declaredK, "<int>") — loader-asserted,
	// authoring-time explicit k value.
	PredDeclaredK Predicate = "declaredK"
	// PredKAnonResultFor: (KAnonymityResult node, kAnonResultFor, Table)
	// — Skolemized, derived by the K-Anonymity Analyzer.
	PredKAnonResultFor Predicate = "kAnonResultFor"
	// PredKAnonResultScope: (KAnonymityResult node, kAnonResultScope, Scope)
	PredKAnonResultScope Predicate = "kAnonResultScope"
	// PredKAnonResultK: (KAnonymityResult node, kAnonResultK, "<int>")
	PredKAnonResultK Predicate = "kAnonResultK"
)

// ClosedPredicates lists every predicate the engine understands.
var ClosedPredicates = map[Predicate]struct{}{
	PredKind:             {},
	PredHasFacet:         {},
	PredHasLabel:         {},
	PredHasChild:         {},
	PredJoinableWith:     {},
	PredScopeMember:      {},
	PredDeclaredK:        {},
	PredKAnonResultFor:   {},
	PredKAnonResultScope: {},
	PredKAnonResultK:     {},
}

// IsKnownPredicate reports whether p is in the closed vocabulary.
func IsKnownPredicate(p Predicate) bool {
	_, ok := ClosedPredicates[p]
	return ok
}

// Facet vocabulary used by the bundled Base/HIPAA/GDPR/EMA/Italy rule
// sets (spec §3, §9). Framework bundles may reference additional facets
// the Rule Compiler does not know about; those are rejected at load
// time unless registered via RegisterFacet.
const (
	FacetIndividual  FacetID = "Individual"
	FacetHealthcare  FacetID = "Healthcare"
	FacetMomentData  FacetID = "MomentData"
	FacetOpenGroup   FacetID = "OpenGroup"
	FacetDirectID    FacetID = "DirectIdentifier"
	FacetSensitive   FacetID = "SensitiveHealthData"
	FacetGenetic     FacetID = "GeneticData"
	FacetBiometric   FacetID = "BiometricData"
	FacetRacialData  FacetID = "RacialOrEthnicData"
	FacetIndirectID  FacetID = "IndirectIdentifier"
	FacetInternalID  FacetID = "InternalIdentifier"
	FacetUniqueID    FacetID = "UniqueIdentifier"
	FacetSafeHarbor  FacetID = "SafeHarborIdentifier"
	FacetHIPAAIdent  FacetID = "HIPAAIdentifier"
	FacetPseudonym   FacetID = "PseudonymizedData"
	FacetClinicalRec FacetID = "ClinicalTrialRecord"
)

// Safe-Harbor 18-identifier facets (HIPAA §164.514(b)(2)). Each is its
// own closed-vocabulary facet rather than one generic "PII" facet
// because the HIPAA SafeHarborIdentifier rule fires on the presence of
// any one of them (spec §9, All-18 removal scenario).
const (
	SafeHarborName               FacetID = "SafeHarbor:Name"
	SafeHarborGeography          FacetID = "SafeHarbor:Geography"
	SafeHarborDates              FacetID = "SafeHarbor:Dates"
	SafeHarborPhone              FacetID = "SafeHarbor:Phone"
	SafeHarborFax                FacetID = "SafeHarbor:Fax"
	SafeHarborEmail              FacetID = "SafeHarbor:Email"
	SafeHarborSSN                FacetID = "SafeHarbor:SSN"
	SafeHarborMRN                FacetID = "SafeHarbor:MRN"
	SafeHarborHealthPlan         FacetID = "SafeHarbor:HealthPlanBeneficiary"
	SafeHarborAccount            FacetID = "SafeHarbor:Account"
	SafeHarborCertificate        FacetID = "SafeHarbor:CertificateLicense"
	SafeHarborVehicle            FacetID = "SafeHarbor:VehicleID"
	SafeHarborDevice             FacetID = "SafeHarbor:DeviceID"
	SafeHarborURL                FacetID = "SafeHarbor:URL"
	SafeHarborIP                 FacetID = "SafeHarbor:IPAddress"
	SafeHarborBiometricIdent     FacetID = "SafeHarbor:BiometricIdentifier"
	SafeHarborPhoto              FacetID = "SafeHarbor:FullFacePhoto"
	SafeHarborOtherUniqueIdent   FacetID = "SafeHarbor:OtherUniqueIdentifyingNumber"
)

// AllSafeHarborIdentifiers lists the 18 HIPAA Safe-Harbor facets.
var AllSafeHarborIdentifiers = []FacetID{
	SafeHarborName, SafeHarborGeography, SafeHarborDates, SafeHarborPhone,
	SafeHarborFax, SafeHarborEmail, SafeHarborSSN, SafeHarborMRN,
	SafeHarborHealthPlan, SafeHarborAccount, SafeHarborCertificate,
	SafeHarborVehicle, SafeHarborDevice, SafeHarborURL, SafeHarborIP,
	SafeHarborBiometricIdent, SafeHarborPhoto, SafeHarborOtherUniqueIdent,
}

// ClosedFacets is the full set of facets the bundled rule sets know
// about. A framework bundle may register additional facets of its own
// at load time via RegisterFacet; anything else is a configuration
// error (spec §7).
var ClosedFacets = func() map[FacetID]struct{} {
	m := map[FacetID]struct{}{
		FacetIndividual: {}, FacetHealthcare: {}, FacetMomentData: {},
		FacetOpenGroup: {}, FacetDirectID: {}, FacetSensitive: {},
		FacetGenetic: {}, FacetBiometric: {}, FacetRacialData: {},
		FacetIndirectID: {}, FacetInternalID: {}, FacetUniqueID: {},
		FacetSafeHarbor: {}, FacetHIPAAIdent: {}, FacetPseudonym: {},
		FacetClinicalRec: {},
	}
	for _, f := range AllSafeHarborIdentifiers {
		m[f] = struct{}{}
	}
	return m
}()

// RegisterFacet adds a facet to the closed vocabulary, keeping it
// closed-but-extensible at load time rather than closed-forever.
// rules.Compile and framework.Compile do not call it: a new facet is
// accepted only if it was registered before compilation.
func RegisterFacet(f FacetID) {
	ClosedFacets[f] = struct{}{}
}

// IsKnownFacet reports whether f is in the closed vocabulary.
func IsKnownFacet(f FacetID) bool {
	_, ok := ClosedFacets[f]
	return ok
}
