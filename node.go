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

// Node is the sum type returned by [Parse]. Every variant carries the
// frame's content id; use a type switch to discriminate (mirroring the tag
// byte each variant was parsed from).
type Node interface {
	// ContentID is the 16-byte id this frame was addressed by.
	ContentID() uuid.UUID
	node()
}

type base struct{ id uuid.UUID }

func (b base) ContentID() uuid.UUID { return b.id }
func (base) node()                  {}

// SetNode is a set-of-T wrapper (tag 0x00).
type SetNode struct {
	base
	Subtype Node
}

// ShapeField is one field of a [ShapeNode], in declaration order.
type ShapeField struct {
	Name        string
	Type        Node
	Flags       PointerFlags
	Cardinality Cardinality
	// HasCardinality is false when the descriptor was produced for a
	// protocol version below [ShapeCardinalityVersion], in which case the
	// wire form never carried a cardinality byte at all.
	HasCardinality bool
}

// ShapeNode is a projected object shape (tag 0x01). Fields preserve their
// wire order.
type ShapeNode struct {
	base
	Fields []ShapeField
}

// Field looks up a field by name.
func (s *ShapeNode) Field(name string) (ShapeField, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return ShapeField{}, false
}

// BaseScalarNode is a concrete base scalar with no further structure (tag
// 0x02).
type BaseScalarNode struct {
	base
}

// ScalarNode is a derived scalar built atop a base scalar (tag 0x03).
type ScalarNode struct {
	base
	Subtype Node
}

// TupleNode is an unnamed tuple (tag 0x04).
type TupleNode struct {
	base
	Fields []Node
}

// NamedTupleNode is a named tuple (tag 0x05). Fields preserve wire order.
type NamedTupleNode struct {
	base
	Names  []string
	Fields []Node
}

// Field looks up a named-tuple field by name.
func (n *NamedTupleNode) Field(name string) (Node, bool) {
	for i, nm := range n.Names {
		if nm == name {
			return n.Fields[i], true
		}
	}
	return nil, false
}

// ArrayNode is a one-dimensional array (tag 0x06). DimLen is the dimension
// bound as encoded on the wire. The encoder only ever produces DimLen == -1
// (unbound); [Parse] rejects more than one dimension but reports whatever
// bound the single dimension carries.
type ArrayNode struct {
	base
	Subtype Node
	DimLen  int32
}

// EnumNode is an enum scalar (tag 0x07).
type EnumNode struct {
	base
	Labels []string
}

var (
	_ Node = (*SetNode)(nil)
	_ Node = (*ShapeNode)(nil)
	_ Node = (*BaseScalarNode)(nil)
	_ Node = (*ScalarNode)(nil)
	_ Node = (*TupleNode)(nil)
	_ Node = (*NamedTupleNode)(nil)
	_ Node = (*ArrayNode)(nil)
	_ Node = (*EnumNode)(nil)
)
