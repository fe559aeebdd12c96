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

// Package config loads the TOML manifest that drives a single engine
// run (spec §6): which framework bundles to apply, which data files to
// read, which query patterns to run, and the cache policy.
package config

import (
	"io"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
	"github.com/parajudica/parajudica/framework"
	"github.com/parajudica/parajudica/xerr"
)

// Manifest is the parsed form of a run's TOML configuration file.
type Manifest struct {
	Frameworks []string `toml:"frameworks"`
	Data       []string `toml:"data"`
	Queries    []string `toml:"queries"`
	Cache      bool     `toml:"cache"`
	RMCache    bool     `toml:"rm_cache"`
	Verbose    int      `toml:"verbose"`
	// Engine is a semver constraint this manifest was authored against,
	// checked the way the teacher's builtin_semver.go checks a script's
	// declared engine requirement.
	Engine string `toml:"engine"`
}

// Parse decodes a TOML manifest from r.
func Parse(r io.Reader) (Manifest, error) {
	var m Manifest
	dec := toml.NewDecoder(r)
	if err := dec.Decode(&m); err != nil {
		return Manifest{}, xerr.ErrConfig("parsing manifest: %v", err)
	}
	return m, nil
}

// Validate checks the manifest's engine-version constraint, if any,
// and rejects an empty Data list — a run with nothing to load is
// always a configuration mistake, never a valid empty result.
func (m Manifest) Validate() error {
	if m.Engine != "" {
		constraint, err := semver.NewConstraint(m.Engine)
		if err != nil {
			return xerr.ErrConfig("manifest engine constraint %q: %v", m.Engine, err)
		}
		v, err := semver.NewVersion(framework.EngineVersion)
		if err != nil {
			return xerr.ErrConfig("internal: invalid engine version %q: %v", framework.EngineVersion, err)
		}
		if !constraint.Check(v) {
			return xerr.ErrConfig("manifest requires engine %s, running %s", m.Engine, framework.EngineVersion)
		}
	}
	if len(m.Data) == 0 {
		return xerr.ErrConfig("manifest declares no data files")
	}
	return nil
}
