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

// Kind discriminates the dispatch branch a [Type] falls into. The original
// Python implementation used runtime class checks (isinstance) against the schema object
// model to do this; §9 suggests re-expressing that as a tagged sum, which is
// what Kind is for.
type Kind int

const (
	KindScalar Kind = iota
	KindObject
	KindTuple
	KindArray
	KindOtherCollection
)

// Schema is a read-only handle that [Type.MaterialType] resolution may refine
// into a different Schema for subsequent lookups within the same call. The
// core codec treats it as an opaque token to thread through recursive calls;
// only the schema layer interprets it.
type Schema interface {
	// Get resolves a well-known type by fully qualified name, e.g.
	// "std::uuid". Used to substitute a link target with the uuid scalar
	// when FollowLinks is false.
	Get(name string) (Type, bool)
}

// Type is the narrow read-only view of a schema type the encoder needs. See
// SPEC_FULL.md §6.
type Type interface {
	// Kind discriminates which of the typed accessors below is valid.
	Kind() Kind

	// ID is the type's stable identifier. For object types and base
	// scalars this is the wire content id directly.
	ID() uuid.UUID

	// SchemaName is the short kind name ("tuple", "array", ...), used in
	// [SchemaError] messages and in the collection canonical string.
	SchemaName() string

	// MaterialType resolves a view to its underlying concrete type. It may
	// return a refined Schema that supersedes the caller's for subsequent
	// lookups in the same call; see [Schema].
	MaterialType(s Schema) (Schema, Type)
}

// TupleType is implemented by types with KindTuple.
type TupleType interface {
	Type
	Subtypes(s Schema) []Type
	IsNamed(s Schema) bool
	ElementNames(s Schema) []string
}

// ArrayType is implemented by types with KindArray.
type ArrayType interface {
	Type
	// Subtypes returns exactly one element: the array's element type.
	Subtypes(s Schema) []Type
}

// ObjectType is implemented by types with KindObject.
type ObjectType interface {
	Type
	// Rptr returns the pointer this object type is the target of, if any
	// (used to discover link properties attached to it), and whether one
	// exists.
	Rptr(s Schema) (Pointer, bool)
}

// ScalarType is implemented by types with KindScalar.
type ScalarType interface {
	Type
	TopmostConcreteBase(s Schema) Type
	EnumValues(s Schema) []string
	DisplayName(s Schema) string
}

// Pointer is a property or link as it appears in a [ViewShapes] projection.
type Pointer interface {
	// ShortName is the pointer's unqualified name, e.g. "id" or "title".
	ShortName(s Schema) string
	// Singular reports whether this pointer holds at most one value
	// (false for multi pointers).
	Singular(s Schema) bool
	// IsProperty reports whether this pointer is a plain property (true)
	// as opposed to a link (false).
	IsProperty(s Schema) bool
	// Required reports whether the pointer is required.
	Required(s Schema) bool
	// Multi reports whether the pointer's cardinality is multi.
	Multi(s Schema) bool
	// Target is the pointer's target type.
	Target(s Schema) Type
	// IsLink discriminates a link from a plain property; a link property
	// (a property carried by a link) still answers IsProperty() == true
	// but is reached via the owning object's reverse pointer, not here.
	IsLink() bool
}

// ShapeMetadata carries per-object-type flags for a projected shape.
type ShapeMetadata struct {
	// HasImplicitID is true when the shape's "id" field (if present) was
	// synthesized by the server rather than requested explicitly.
	HasImplicitID bool
}

// ViewShapes maps a projection source to the ordered list of pointers that
// define its shape for one query. Most keys are [ObjectType] values (an
// object's own projected fields); a pointer's reverse-pointer carrier can
// also be a key (to surface link properties), which is why the key type is
// `any` rather than [ObjectType] - mirroring the schema layer's own
// `view_shapes.get(t_rptr)` lookup alongside `view_shapes.get(object_type)`.
type ViewShapes map[any][]Pointer

// ViewShapesMetadata carries [ShapeMetadata] per projected object type.
type ViewShapesMetadata map[ObjectType]ShapeMetadata
