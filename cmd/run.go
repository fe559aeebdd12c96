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

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/binaek/cling"
	"github.com/parajudica/parajudica/cache"
	"github.com/parajudica/parajudica/config"
	"github.com/parajudica/parajudica/engine"
	"github.com/parajudica/parajudica/framework"
	"github.com/parajudica/parajudica/graph"
	"github.com/parajudica/parajudica/kanon"
	"github.com/parajudica/parajudica/loader"
	"github.com/parajudica/parajudica/model"
	"github.com/parajudica/parajudica/query"
)

func addRunCmd(cli *cling.CLI) {
	cli.WithCommand(
		cling.NewCommand("run", runCmd).
			WithFlag(cling.
				NewStringCmdInput("manifest").
				WithDefault("parajudica.toml").
				WithDescription("Manifest file describing frameworks, data, and queries to run").
				AsFlag(),
			),
	)
}

type runCmdArgs struct {
	Manifest string `cling-name:"manifest"`
}

// sharedCache is process-wide so repeated "run" invocations within one
// CLI session (unusual, but cheap to support) reuse the same bounded
// cache rather than each allocating its own.
var sharedCache = cache.NewPerchCache(32, 10*time.Minute)

func runCmd(ctx context.Context, args []string) error {
	input := runCmdArgs{}
	if err := cling.Hydrate(ctx, args, &input); err != nil {
		return err
	}

	f, err := os.Open(input.Manifest)
	if err != nil {
		return err
	}
	defer f.Close()

	manifest, err := config.Parse(f)
	if err != nil {
		return err
	}
	if err := manifest.Validate(); err != nil {
		return err
	}

	store, rounds, err := runManifest(ctx, manifest)
	if err != nil {
		return err
	}

	if rounds < 0 {
		fmt.Printf("served from cache, %d triples\n", store.Size())
	} else {
		fmt.Printf("converged after %d round(s), %d triples\n", rounds, store.Size())
	}

	for _, q := range manifest.Queries {
		parsed, err := query.ParseLine(q)
		if err != nil {
			return err
		}
		rows := query.Run(store, parsed)
		printRows(parsed, rows)
	}
	return nil
}

// runManifest executes one manifest: either serving a cached result or
// loading data fresh, compiling the requested framework bundles, and
// running the fixed-point driver to convergence.
func runManifest(ctx context.Context, manifest config.Manifest) (*graph.Store, int, error) {
	sections := make([][]byte, 0, len(manifest.Frameworks)+len(manifest.Data)+len(manifest.Queries))
	for _, fw := range manifest.Frameworks {
		sections = append(sections, []byte(fw))
	}
	dataBytes := make([][]byte, len(manifest.Data))
	for i, path := range manifest.Data {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, 0, err
		}
		dataBytes[i] = b
		sections = append(sections, b)
	}
	for _, q := range manifest.Queries {
		sections = append(sections, []byte(q))
	}
	key := cache.Key(sections...)

	if manifest.Cache && !manifest.RMCache {
		if cached, ok := sharedCache.Peek(key); ok {
			store := graph.NewStore()
			store.InsertAll(cached)
			return store, -1, nil
		}
	}

	store := graph.NewStore()
	for _, b := range dataBytes {
		triples, err := (loader.LineLoader{}).Load(ctx, bytes.NewReader(b))
		if err != nil {
			return nil, 0, err
		}
		if err := loader.ValidateContainment(triples); err != nil {
			return nil, 0, err
		}
		store.InsertAll(triples)
	}

	requested := make([]model.FrameworkID, len(manifest.Frameworks))
	for i, fw := range manifest.Frameworks {
		requested[i] = model.FrameworkID(fw)
	}
	compiled, thresholds, err := framework.CompileAll(requested)
	if err != nil {
		return nil, 0, err
	}

	analyzer := kanon.NewAnalyzer(thresholds, nil)
	driver := engine.New(store, compiled, analyzer)
	result, err := driver.Run(ctx)
	if err != nil {
		return nil, 0, err
	}

	if manifest.Cache {
		sharedCache.Store(ctx, key, result.Store.DeltaSince(graph.Epoch{Seq: 0}))
	}
	return result.Store, result.Rounds, nil
}

func printRows(q query.Query, rows []query.Row) {
	if len(rows) == 0 {
		fmt.Println("(no rows)")
		return
	}
	for _, row := range rows {
		line := ""
		for i, col := range q.Columns {
			if i > 0 {
				line += "  "
			}
			line += string(col) + "=" + row[col]
		}
		fmt.Println(line)
	}
}
