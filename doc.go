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

// Package typedesc implements a position-indexed binary codec for schema
// type descriptors: a compact wire representation of a query's result shape
// or parameter list, built from a sequence of frames that reference each
// other by zero-based emission order rather than by pointer or by name.
//
// [Encoder.Describe] walks a [Type] (and, for shapes, its projected
// [ViewShapes]) and produces the encoded bytes together with the content id
// of the root frame. [DescribeParams] does the same for a flat parameter
// list, wrapping it in a single virtual shape frame whose id is derived from
// the assembled bytes themselves (a two-pass hash-then-patch: the bytes are
// hashed with the frame's id field zeroed, and the resulting id is then
// written into that field).
//
// [Parse] decodes a descriptor back into a [Node] tree. Every concrete node
// type - [SetNode], [ShapeNode], [BaseScalarNode], [ScalarNode], [TupleNode],
// [NamedTupleNode], [ArrayNode], [EnumNode] - carries the content id it was
// addressed by; annotation frames are skipped and never surface in the tree.
//
// # Support status
//
// This package targets the subset of descriptor shapes in active use:
// scalars (base, derived, enum), tuples (named and unnamed), one-dimensional
// unbound arrays, and object shapes including implicit fields and link
// properties. Multi-dimensional arrays, compressed frames, and schema
// migration/evolution are out of scope; see [ArrayNode] and
// [NotImplementedError].
//
// Protocol version gates two wire details: shape field flags widen from a
// single byte to a u32-flags/u8-cardinality pair at [ShapeCardinalityVersion],
// and [DescribeParams] requires at least [ParamCardinalityVersion].
package typedesc
