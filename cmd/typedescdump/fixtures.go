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

	"github.com/google/uuid"

	"github.com/wireproto/typedesc"
)

var wellKnownScalars = map[string]*fixtureScalar{
	"std::str":    {id: typedesc.StdStrID, name: "std::str"},
	"std::uuid":   {id: typedesc.StdUUIDID, name: "std::uuid"},
	"std::int64":  {id: uuid.MustParse("00000000-0000-0000-0000-000000000105"), name: "std::int64"},
	"std::bool":   {id: uuid.MustParse("00000000-0000-0000-0000-000000000109"), name: "std::bool"},
	"std::float64": {id: uuid.MustParse("00000000-0000-0000-0000-000000000107"), name: "std::float64"},
}

// fixtureScalar is a non-derived base scalar: its own topmost concrete base.
// The dump tool only needs to round-trip well-known scalars by name, so it
// never needs the derived/enum branches the real schema layer would exercise.
type fixtureScalar struct {
	id   uuid.UUID
	name string
}

func (s *fixtureScalar) Kind() typedesc.Kind                          { return typedesc.KindScalar }
func (s *fixtureScalar) ID() uuid.UUID                                { return s.id }
func (s *fixtureScalar) SchemaName() string                           { return "scalar" }
func (s *fixtureScalar) MaterialType(sc typedesc.Schema) (typedesc.Schema, typedesc.Type) {
	return sc, s
}
func (s *fixtureScalar) TopmostConcreteBase(sc typedesc.Schema) typedesc.Type { return s }
func (s *fixtureScalar) EnumValues(sc typedesc.Schema) []string               { return nil }
func (s *fixtureScalar) DisplayName(sc typedesc.Schema) string                { return s.name }

var _ typedesc.ScalarType = (*fixtureScalar)(nil)

type fixtureTuple struct {
	elems []typedesc.Type
	named bool
	names []string
}

func (t *fixtureTuple) Kind() typedesc.Kind                          { return typedesc.KindTuple }
func (t *fixtureTuple) ID() uuid.UUID                                { return uuid.Nil }
func (t *fixtureTuple) SchemaName() string                           { return "tuple" }
func (t *fixtureTuple) MaterialType(sc typedesc.Schema) (typedesc.Schema, typedesc.Type) {
	return sc, t
}
func (t *fixtureTuple) Subtypes(sc typedesc.Schema) []typedesc.Type { return t.elems }
func (t *fixtureTuple) IsNamed(sc typedesc.Schema) bool             { return t.named }
func (t *fixtureTuple) ElementNames(sc typedesc.Schema) []string    { return t.names }

var _ typedesc.TupleType = (*fixtureTuple)(nil)

type fixtureArray struct {
	elem typedesc.Type
}

func (a *fixtureArray) Kind() typedesc.Kind                          { return typedesc.KindArray }
func (a *fixtureArray) ID() uuid.UUID                                { return uuid.Nil }
func (a *fixtureArray) SchemaName() string                           { return "array" }
func (a *fixtureArray) MaterialType(sc typedesc.Schema) (typedesc.Schema, typedesc.Type) {
	return sc, a
}
func (a *fixtureArray) Subtypes(sc typedesc.Schema) []typedesc.Type { return []typedesc.Type{a.elem} }

var _ typedesc.ArrayType = (*fixtureArray)(nil)

// fixtureSchema resolves fixture names against both the well-known scalar
// table and the fixtures defined earlier in the same manifest. Forward
// references (a fixture naming one later in the file) are not supported;
// write manifests leaf-first.
type fixtureSchema struct {
	byName map[string]typedesc.Type
}

func newFixtureSchema() *fixtureSchema {
	s := &fixtureSchema{byName: make(map[string]typedesc.Type, len(wellKnownScalars))}
	for name, sc := range wellKnownScalars {
		s.byName[name] = sc
	}
	return s
}

func (s *fixtureSchema) Get(name string) (typedesc.Type, bool) {
	t, ok := s.byName[name]
	return t, ok
}

// buildSchema populates a fixtureSchema from a manifest, in file order.
func buildSchema(m *FixtureManifest) (*fixtureSchema, []string, error) {
	s := newFixtureSchema()
	order := make([]string, 0, len(m.Fixtures))

	for _, f := range m.Fixtures {
		if f.Name == "" {
			return nil, nil, fmt.Errorf("fixture with empty name")
		}

		switch f.Kind {
		case "scalar":
			t, ok := s.Get(f.Base)
			if !ok {
				return nil, nil, fmt.Errorf("fixture %q: unknown base scalar %q", f.Name, f.Base)
			}
			s.byName[f.Name] = t

		case "tuple":
			elems := make([]typedesc.Type, 0, len(f.Elements))
			for _, ref := range f.Elements {
				t, ok := s.Get(ref)
				if !ok {
					return nil, nil, fmt.Errorf("fixture %q: unknown element %q", f.Name, ref)
				}
				elems = append(elems, t)
			}
			s.byName[f.Name] = &fixtureTuple{elems: elems, named: len(f.Names) > 0, names: f.Names}

		case "array":
			if len(f.Elements) != 1 {
				return nil, nil, fmt.Errorf("fixture %q: array must name exactly one element", f.Name)
			}
			t, ok := s.Get(f.Elements[0])
			if !ok {
				return nil, nil, fmt.Errorf("fixture %q: unknown element %q", f.Name, f.Elements[0])
			}
			s.byName[f.Name] = &fixtureArray{elem: t}

		default:
			return nil, nil, fmt.Errorf("fixture %q: unknown kind %q", f.Name, f.Kind)
		}

		order = append(order, f.Name)
	}

	return s, order, nil
}
