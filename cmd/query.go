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
	"context"
	"os"

	"github.com/binaek/cling"
	"github.com/parajudica/parajudica/config"
	"github.com/parajudica/parajudica/query"
)

func addQueryCmd(cli *cling.CLI) {
	cli.WithCommand(
		cling.NewCommand("query", queryCmd).
			WithArgument(cling.NewStringCmdInput("pattern").
				WithDescription("Triple pattern: \"subject predicate object [@scope]\", ? marks a variable").
				AsArgument(),
			).
			WithFlag(cling.
				NewStringCmdInput("manifest").
				WithDefault("parajudica.toml").
				WithDescription("Manifest file describing frameworks and data to run before querying").
				AsFlag(),
			),
	)
}

type queryCmdArgs struct {
	Pattern  string `cling-name:"pattern"`
	Manifest string `cling-name:"manifest"`
}

func queryCmd(ctx context.Context, args []string) error {
	input := queryCmdArgs{}
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

	store, _, err := runManifest(ctx, manifest)
	if err != nil {
		return err
	}

	parsed, err := query.ParseLine(input.Pattern)
	if err != nil {
		return err
	}
	printRows(parsed, query.Run(store, parsed))
	return nil
}
