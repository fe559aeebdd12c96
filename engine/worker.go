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

package engine

import (
	"context"

	"github.com/jackc/puddle/v2"
	"github.com/parajudica/parajudica/graph"
)

// worker is the pooled resource rule evaluation borrows for the
// duration of one rule firing. It exists so repeated firings reuse the
// same scratch buffer instead of allocating a fresh one per rule —
// grounded on the teacher's runtime/executor.go pooling reusable
// *JSInstance values via puddle rather than constructing one per call.
type worker struct {
	scratch []graph.Triple
}

func newWorkerPool(size int32) (*puddle.Pool[*worker], error) {
	constructor := func(context.Context) (*worker, error) {
		return &worker{scratch: make([]graph.Triple, 0, 64)}, nil
	}
	destructor := func(*worker) {}
	return puddle.NewPool(&puddle.Config[*worker]{
		Constructor: constructor,
		Destructor:  destructor,
		MaxSize:     size,
	})
}
