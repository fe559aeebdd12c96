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

// Package xerr is Parajudica's error taxonomy (spec §7): configuration
// errors (load phase), resource errors (out-of-memory, cache I/O), and
// invariant errors (a containment cycle or other inference-phase
// structural violation, which spec §7 says must be reported like a
// configuration error, not silently degrade the result).
package xerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConfigError is a load-phase failure: missing file, malformed triple
// syntax, a rule referencing an unknown vocabulary term, or a
// label-ownership violation.
type ConfigError struct{ reason string }

func (e ConfigError) Error() string { return "configuration error: " + e.reason }

// ErrConfig wraps a load-phase failure with the offending detail.
func ErrConfig(format string, args ...any) error {
	return errors.WithStack(ConfigError{reason: fmt.Sprintf(format, args...)})
}

// ResourceError is out-of-memory or a cache-write I/O failure (spec §7).
// The store is left in its last-committed-round state.
type ResourceError struct{ reason string }

func (e ResourceError) Error() string { return "resource error: " + e.reason }

// ErrResource wraps a resource-exhaustion or I/O failure.
func ErrResource(format string, args ...any) error {
	return errors.WithStack(ResourceError{reason: fmt.Sprintf(format, args...)})
}

// InvariantError is an inference-phase structural violation: a
// containment cycle, a non-symmetric joinable edge, or similar. Treated
// as a configuration error per spec §7 — it aborts the run rather than
// producing a degraded result.
type InvariantError struct{ reason string }

func (e InvariantError) Error() string { return "invariant violated: " + e.reason }

// ErrInvariant wraps an inference-phase invariant violation.
func ErrInvariant(format string, args ...any) error {
	return errors.WithStack(InvariantError{reason: fmt.Sprintf(format, args...)})
}

// LabelOwnershipError is a ConfigError specialization: a framework's
// rule minted a label outside its own namespace.
type LabelOwnershipError struct {
	Framework string
	Label     string
}

func (e LabelOwnershipError) Error() string {
	return fmt.Sprintf("configuration error: framework %q cannot mint label %q (outside its namespace)", e.Framework, e.Label)
}

// ErrLabelOwnership reports a framework minting outside its namespace.
func ErrLabelOwnership(framework, label string) error {
	return errors.WithStack(LabelOwnershipError{Framework: framework, Label: label})
}

// UnknownVocabularyError is a ConfigError specialization: a rule body or
// head referenced a predicate or facet outside the closed vocabulary.
type UnknownVocabularyError struct {
	Kind string // "predicate" or "facet"
	Term string
}

func (e UnknownVocabularyError) Error() string {
	return fmt.Sprintf("configuration error: unknown %s %q", e.Kind, e.Term)
}

// ErrUnknownVocabulary reports an out-of-vocabulary predicate or facet.
func ErrUnknownVocabulary(kind, term string) error {
	return errors.WithStack(UnknownVocabularyError{Kind: kind, Term: term})
}
