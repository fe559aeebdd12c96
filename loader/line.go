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
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/parajudica/parajudica/graph"
	"github.com/parajudica/parajudica/model"
	"github.com/parajudica/parajudica/xerr"
)

// LineLoader reads the minimal fixture syntax used by this engine's
// tests and examples: one triple per line,
//
//	subject predicate object
//	subject predicate object @scope
//
// Blank lines and lines starting with "#" are ignored. A joinableWith
// line is symmetric — the loader inserts both directions, so a fixture
// only needs to declare it once. This is intentionally not a
// Turtle/N-Triples parser — spec.md §1 explicitly keeps a real RDF
// serialization out of scope; LineLoader exists only to get fixture
// data into a graph.Store without hand-building graph.Triple literals
// in every test.
type LineLoader struct{}

func (LineLoader) Load(ctx context.Context, r io.Reader) ([]graph.Triple, error) {
	var out []graph.Triple
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t, err := parseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		out = append(out, t)
		if t.Predicate == model.PredJoinableWith {
			out = append(out, graph.Triple{
				Subject:   t.Object,
				Predicate: model.PredJoinableWith,
				Object:    t.Subject,
				Scope:     t.Scope,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, xerr.ErrResource("reading triple input: %v", err)
	}
	return out, nil
}

func parseLine(line string) (graph.Triple, error) {
	var scope model.ScopeID
	if i := strings.LastIndex(line, "@"); i >= 0 && i > 0 && line[i-1] == ' ' {
		scope = model.ScopeID(strings.TrimSpace(line[i+1:]))
		line = strings.TrimSpace(line[:i])
	}
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return graph.Triple{}, xerr.ErrConfig("expected \"subject predicate object [@scope]\", got %q", line)
	}
	return graph.Triple{
		Subject:   fields[0],
		Predicate: model.Predicate(fields[1]),
		Object:    fields[2],
		Scope:     scope,
	}, nil
}
