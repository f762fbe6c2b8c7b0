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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_RoundTrip_BaseScalar(t *testing.T) {
	schema := newTestSchema()
	str, _ := schema.Get("std::str")

	out, id, err := NewEncoder(schema).Describe(str, nil, nil, protoV12)
	require.NoError(t, err)

	n, err := Parse(out, protoV12)
	require.NoError(t, err)
	require.Equal(t, id, n.ContentID())
	require.IsType(t, &BaseScalarNode{}, n)
}

func TestParse_RoundTrip_Array(t *testing.T) {
	schema := newTestSchema()
	int64T, _ := schema.Get("std::int64")
	arr := &arrayType{elem: int64T}

	out, id, err := NewEncoder(schema).Describe(arr, nil, nil, protoV12)
	require.NoError(t, err)

	n, err := Parse(out, protoV12)
	require.NoError(t, err)
	require.Equal(t, id, n.ContentID())
	an, ok := n.(*ArrayNode)
	require.True(t, ok)
	require.Equal(t, int32(-1), an.DimLen)
	require.IsType(t, &BaseScalarNode{}, an.Subtype)
}

func TestParse_RoundTrip_Tuple(t *testing.T) {
	schema := newTestSchema()
	str, _ := schema.Get("std::str")
	i64, _ := schema.Get("std::int64")
	tup := &tupleType{subtypes: []Type{str, i64}}

	out, id, err := NewEncoder(schema).Describe(tup, nil, nil, protoV12)
	require.NoError(t, err)

	n, err := Parse(out, protoV12)
	require.NoError(t, err)
	require.Equal(t, id, n.ContentID())
	tn, ok := n.(*TupleNode)
	require.True(t, ok)
	require.Len(t, tn.Fields, 2)
}

func TestParse_RoundTrip_NamedTuple(t *testing.T) {
	schema := newTestSchema()
	str, _ := schema.Get("std::str")
	i64, _ := schema.Get("std::int64")
	tup := &tupleType{subtypes: []Type{str, i64}, named: true, names: []string{"a", "b"}}

	out, _, err := NewEncoder(schema).Describe(tup, nil, nil, protoV12)
	require.NoError(t, err)

	n, err := Parse(out, protoV12)
	require.NoError(t, err)
	nt, ok := n.(*NamedTupleNode)
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, nt.Names)
	field, ok := nt.Field("b")
	require.True(t, ok)
	require.IsType(t, &BaseScalarNode{}, field)
}

func TestParse_RoundTrip_Enum(t *testing.T) {
	schema := newTestSchema()
	e := &enumScalar{id: uuidv5("enum-test-2"), name: "my::status", labels: []string{"open", "closed"}}

	out, id, err := NewEncoder(schema).Describe(e, nil, nil, protoV12)
	require.NoError(t, err)

	n, err := Parse(out, protoV12)
	require.NoError(t, err)
	require.Equal(t, id, n.ContentID())
	en, ok := n.(*EnumNode)
	require.True(t, ok)
	require.Equal(t, []string{"open", "closed"}, en.Labels)
}

func TestParse_RoundTrip_Shape(t *testing.T) {
	schema := newTestSchema()
	strT, _ := schema.Get("std::str")
	obj := &objectType{id: uuidv5("object::RoundTrip")}
	ptrs := []Pointer{&pointer{name: "name", target: strT, singular: true, isProperty: true, required: true}}
	shapes := ViewShapes{obj: ptrs}

	out, id, err := NewEncoder(schema).Describe(obj, shapes, nil, protoV12)
	require.NoError(t, err)

	n, err := Parse(out, protoV12)
	require.NoError(t, err)
	require.Equal(t, id, n.ContentID())
	sn, ok := n.(*ShapeNode)
	require.True(t, ok)
	require.Len(t, sn.Fields, 1)
	require.True(t, sn.Fields[0].HasCardinality)
	require.Equal(t, CardinalityOne, sn.Fields[0].Cardinality)

	f, ok := sn.Field("name")
	require.True(t, ok)
	require.Equal(t, "name", f.Name)
}

func TestParse_ShapeCardinalityGate_PreV11(t *testing.T) {
	schema := newTestSchema()
	strT, _ := schema.Get("std::str")
	obj := &objectType{id: uuidv5("object::Old")}
	ptrs := []Pointer{&pointer{name: "name", target: strT, singular: true, isProperty: true, required: true}}
	shapes := ViewShapes{obj: ptrs}

	oldV := Version{0, 10}
	out, _, err := NewEncoder(schema).Describe(obj, shapes, nil, oldV)
	require.NoError(t, err)

	n, err := Parse(out, oldV)
	require.NoError(t, err)
	sn, ok := n.(*ShapeNode)
	require.True(t, ok)
	require.False(t, sn.Fields[0].HasCardinality)
}

func TestParse_SkipsAnnotations(t *testing.T) {
	schema := newTestSchema()
	derived := &derivedScalar{id: uuidv5("derived::Skip"), name: "my::skip", base: mustGet(schema, "std::str")}

	out, id, err := NewEncoder(schema).Describe(derived, nil, nil, protoV12, WithInlineTypenames(true))
	require.NoError(t, err)

	n, err := Parse(out, protoV12)
	require.NoError(t, err)
	require.Equal(t, id, n.ContentID())
	require.IsType(t, &ScalarNode{}, n)
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse(nil, protoV12)
	require.ErrorIs(t, err, errEmptyDescriptor)
}

func TestParse_TruncatedInput(t *testing.T) {
	schema := newTestSchema()
	str, _ := schema.Get("std::str")
	out, _, err := NewEncoder(schema).Describe(str, nil, nil, protoV12)
	require.NoError(t, err)

	_, err = Parse(out[:5], protoV12)
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParse_UnknownTag(t *testing.T) {
	// Tag 0x42 followed by a full 16-byte (zero) id, so the failure is the
	// tag itself and not a truncated frame.
	_, err := Parse(append([]byte{0x42}, make([]byte, 16)...), protoV12)
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, parseErr, errUnknownPositionTag)
}

func TestParse_MultiDimArrayNotImplemented(t *testing.T) {
	schema := newTestSchema()
	str, _ := schema.Get("std::str")
	out, _, err := NewEncoder(schema).Describe(str, nil, nil, protoV12)
	require.NoError(t, err)

	// Hand-craft an array frame with dims=2 referencing position 0.
	id := uuidv5("array::multidim")
	frame := append([]byte{}, out...)
	frame = append(frame, byte(tagArray))
	frame = append(frame, idBytes(id)...)
	frame = append(frame, 0, 0) // subtype position
	frame = append(frame, 0, 2) // dims=2
	frame = append(frame, 0, 0, 0, 1)

	_, err = Parse(frame, protoV12)
	require.Error(t, err)
	var parseErr *ParseError
	var niErr *NotImplementedError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorAs(t, err, &niErr)
}
