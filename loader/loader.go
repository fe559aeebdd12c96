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

// Package loader turns external input into graph.Triple values the
// store can ingest. It owns no state of its own — a Loader call is a
// pure translation from bytes to triples (spec §6).
package loader

import (
	"context"
	"io"

	"github.com/parajudica/parajudica/graph"
)

// Loader translates an input stream into triples. Implementations
// report a parse or I/O failure as an error rather than a panic — a
// malformed input file is a configuration error, not an engine bug
// (spec §7).
type Loader interface {
	Load(ctx context.Context, r io.Reader) ([]graph.Triple, error)
}
