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

package query

import (
	"strings"

	"github.com/parajudica/parajudica/graph"
	"github.com/parajudica/parajudica/model"
	"github.com/parajudica/parajudica/xerr"
)

// ParseLine parses one query line in the same family of syntax as
// loader.LineLoader: "subject predicate object [@scope]", except any
// token starting with "?" is a variable rather than a literal. Columns
// are every distinct variable, in first-appearance order.
//
//	?table hasLabel HIPAA:PHI @?scope
//	PatientInfo hasFacet ?facet
func ParseLine(line string) (Query, error) {
	line = strings.TrimSpace(line)
	var scopeTok string
	hasScope := false
	if i := strings.LastIndex(line, "@"); i > 0 && line[i-1] == ' ' {
		scopeTok = strings.TrimSpace(line[i+1:])
		line = strings.TrimSpace(line[:i])
		hasScope = true
	}
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Query{}, xerr.ErrConfig("expected \"subject predicate object [@scope]\", got %q", line)
	}

	var columns []graph.Var
	seen := map[graph.Var]struct{}{}
	term := func(tok string) graph.Term {
		if strings.HasPrefix(tok, "?") {
			name := graph.Var(strings.TrimPrefix(tok, "?"))
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				columns = append(columns, name)
			}
			return graph.Bind(name)
		}
		return graph.Lit(tok)
	}

	subject := term(fields[0])
	object := term(fields[2])
	scope := graph.Any()
	if hasScope {
		scope = term(scopeTok)
	}

	pattern := graph.Pattern{
		Subject:   subject,
		Predicate: graph.Lit(string(model.Predicate(fields[1]))),
		Object:    object,
		Scope:     scope,
	}
	return Query{Pattern: pattern, Columns: columns}, nil
}
