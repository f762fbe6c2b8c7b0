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

package typedesc

import "github.com/google/uuid"

// testSchema is a minimal in-memory [Schema] sufficient to exercise every
// dispatch branch in [Encoder]. It is not part of the public API: a real
// deployment gets its Schema from a catalog/introspection package, which
// SPEC_FULL.md §6 treats as an external collaborator.
type testSchema struct {
	byName map[string]Type
}

func newTestSchema() *testSchema {
	s := &testSchema{byName: map[string]Type{}}
	s.byName["std::uuid"] = &baseScalar{id: StdUUIDID, name: "std::uuid"}
	s.byName["std::str"] = &baseScalar{id: StdStrID, name: "std::str"}
	s.byName["std::int64"] = &baseScalar{id: uuid.MustParse("00000000-0000-0000-0000-000000000105"), name: "std::int64"}
	s.byName["std::bool"] = &baseScalar{id: uuid.MustParse("00000000-0000-0000-0000-000000000109"), name: "std::bool"}
	return s
}

func (s *testSchema) Get(name string) (Type, bool) {
	t, ok := s.byName[name]
	return t, ok
}

// baseScalar is a concrete, non-derived, non-enum scalar: its own
// TopmostConcreteBase and its id never change through MaterialType.
type baseScalar struct {
	id   uuid.UUID
	name string
}

func (b *baseScalar) Kind() Kind                                { return KindScalar }
func (b *baseScalar) ID() uuid.UUID                             { return b.id }
func (b *baseScalar) SchemaName() string                        { return "scalar" }
func (b *baseScalar) MaterialType(s Schema) (Schema, Type)       { return s, b }
func (b *baseScalar) TopmostConcreteBase(s Schema) Type          { return b }
func (b *baseScalar) EnumValues(s Schema) []string               { return nil }
func (b *baseScalar) DisplayName(s Schema) string                { return b.name }

var _ ScalarType = (*baseScalar)(nil)

// derivedScalar is a scalar whose base is some other scalar (e.g. a custom
// domain type atop std::str).
type derivedScalar struct {
	id   uuid.UUID
	name string
	base Type
}

func (d *derivedScalar) Kind() Kind                          { return KindScalar }
func (d *derivedScalar) ID() uuid.UUID                       { return d.id }
func (d *derivedScalar) SchemaName() string                  { return "scalar" }
func (d *derivedScalar) MaterialType(s Schema) (Schema, Type) { return s, d }
func (d *derivedScalar) TopmostConcreteBase(s Schema) Type    { return d.base }
func (d *derivedScalar) EnumValues(s Schema) []string         { return nil }
func (d *derivedScalar) DisplayName(s Schema) string          { return d.name }

var _ ScalarType = (*derivedScalar)(nil)

// enumScalar is a scalar with a closed set of labels.
type enumScalar struct {
	id     uuid.UUID
	name   string
	labels []string
}

func (e *enumScalar) Kind() Kind                          { return KindScalar }
func (e *enumScalar) ID() uuid.UUID                       { return e.id }
func (e *enumScalar) SchemaName() string                  { return "scalar" }
func (e *enumScalar) MaterialType(s Schema) (Schema, Type) { return s, e }
func (e *enumScalar) TopmostConcreteBase(s Schema) Type    { return e }
func (e *enumScalar) EnumValues(s Schema) []string         { return e.labels }
func (e *enumScalar) DisplayName(s Schema) string          { return e.name }

var _ ScalarType = (*enumScalar)(nil)

type tupleType struct {
	subtypes []Type
	named    bool
	names    []string
}

func (t *tupleType) Kind() Kind                          { return KindTuple }
func (t *tupleType) ID() uuid.UUID                       { return uuid.Nil }
func (t *tupleType) SchemaName() string                  { return "tuple" }
func (t *tupleType) MaterialType(s Schema) (Schema, Type) { return s, t }
func (t *tupleType) Subtypes(s Schema) []Type             { return t.subtypes }
func (t *tupleType) IsNamed(s Schema) bool                { return t.named }
func (t *tupleType) ElementNames(s Schema) []string       { return t.names }

var _ TupleType = (*tupleType)(nil)

type arrayType struct {
	elem Type
}

func (a *arrayType) Kind() Kind                          { return KindArray }
func (a *arrayType) ID() uuid.UUID                       { return uuid.Nil }
func (a *arrayType) SchemaName() string                  { return "array" }
func (a *arrayType) MaterialType(s Schema) (Schema, Type) { return s, a }
func (a *arrayType) Subtypes(s Schema) []Type             { return []Type{a.elem} }

var _ ArrayType = (*arrayType)(nil)

type otherCollection struct{}

func (otherCollection) Kind() Kind                          { return KindOtherCollection }
func (otherCollection) ID() uuid.UUID                       { return uuid.Nil }
func (otherCollection) SchemaName() string                  { return "range" }
func (otherCollection) MaterialType(s Schema) (Schema, Type) { return s, otherCollection{} }

var _ Type = otherCollection{}

type objectType struct {
	id   uuid.UUID
	rptr Pointer
}

func (o *objectType) Kind() Kind                          { return KindObject }
func (o *objectType) ID() uuid.UUID                       { return o.id }
func (o *objectType) SchemaName() string                  { return "object" }
func (o *objectType) MaterialType(s Schema) (Schema, Type) { return s, o }
func (o *objectType) Rptr(s Schema) (Pointer, bool)        { return o.rptr, o.rptr != nil }

var _ ObjectType = (*objectType)(nil)

type pointer struct {
	name       string
	target     Type
	singular   bool
	isProperty bool
	required   bool
	multi      bool
	isLink     bool
}

func (p *pointer) ShortName(s Schema) string { return p.name }
func (p *pointer) Singular(s Schema) bool    { return p.singular }
func (p *pointer) IsProperty(s Schema) bool  { return p.isProperty }
func (p *pointer) Required(s Schema) bool    { return p.required }
func (p *pointer) Multi(s Schema) bool       { return p.multi }
func (p *pointer) Target(s Schema) Type      { return p.target }
func (p *pointer) IsLink() bool              { return p.isLink }

var _ Pointer = (*pointer)(nil)
