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

// Package query is the Query Surface (spec §4.6): pattern queries
// executed over the final fixed-point store, returning tabular answers.
package query

import (
	"github.com/binaek/gocoll/collection"
	"github.com/parajudica/parajudica/graph"
)

// Row is one answer row, keyed by the query pattern's variable names.
type Row map[graph.Var]string

// Query is a single triple pattern plus the variable names, in display
// order, that make up its output columns.
type Query struct {
	Pattern graph.Pattern
	Columns []graph.Var
}

// Run executes q against store and returns its rows. A query returning
// zero rows is not an error (spec §7 "Semantic no-result outcomes").
func Run(store *graph.Store, q Query) []Row {
	bindings := store.Match(q.Pattern)
	return collection.Map(
		collection.From(bindings...),
		func(b graph.Binding) Row {
			row := make(Row, len(q.Columns))
			for _, col := range q.Columns {
				row[col] = b[col]
			}
			return row
		},
	).Elements()
}
