// Copyright 2024-2026 The typedesc Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FixtureManifest is a YAML-driven list of named types the dump tool can
// encode on demand, mirroring the teacher's YAML-driven test manifests
// (internal/testdata, now removed from this tree) one level up: fixtures
// here describe *type shapes*, not protobuf test messages.
type FixtureManifest struct {
	Fixtures []Fixture `yaml:"fixtures"`
}

// Fixture is one named entry of a manifest. Kind selects how the remaining
// fields are interpreted:
//
//   - "scalar": Base names a well-known scalar (std::str, std::int64,
//     std::bool, std::float64, std::uuid).
//   - "tuple": Elements names other fixtures, in order. Names, if non-empty,
//     makes it a named tuple.
//   - "array": Elements must have exactly one entry.
type Fixture struct {
	Name     string   `yaml:"name"`
	Kind     string   `yaml:"kind"`
	Base     string   `yaml:"base,omitempty"`
	Elements []string `yaml:"elements,omitempty"`
	Names    []string `yaml:"names,omitempty"`
}

func loadManifest(path string) (*FixtureManifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m FixtureManifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}
