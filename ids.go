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

// These are the four fixed ids §6 requires the implementation to know. In a
// full deployment they are handed down by the schema/catalog layer; this
// package bakes them in as constants, the way the schema layer's own
// well-known-type registry would.
var (
	// TypeIDNamespace is the fixed namespace UUID used to derive content ids
	// for every composite type that isn't a base scalar or an object type.
	TypeIDNamespace = uuid.MustParse("1d1c79c2-9948-11ec-9a21-97e3b98d14da")

	// EmptyTupleID is the well-known content id of the empty tuple. It is
	// never computed via [TypeIDNamespace]; it is returned directly.
	EmptyTupleID = uuid.MustParse("00000000-0000-0000-0000-0000000000ff")

	// StdUUIDID is the type id of std::uuid, used to validate implicit id
	// fields and to substitute for link targets when FollowLinks is false.
	StdUUIDID = uuid.MustParse("00000000-0000-0000-0000-000000000100")

	// StdStrID is the type id of std::str, used to validate __tname__ and
	// as the constant result of [DescribeJSON].
	StdStrID = uuid.MustParse("00000000-0000-0000-0000-000000000101")

	// NullTypeID is the all-zero id returned alongside an empty byte string
	// for a parameter-less [DescribeParams] call, and used as the
	// placeholder patched in place during two-pass id derivation.
	NullTypeID = uuid.Nil
)

// emptyTupleDescriptor is the fixed 19-byte wire form of the empty tuple:
// tag(1) + id(16) + N=0(2).
func emptyTupleDescriptor() []byte {
	out := make([]byte, 0, 19)
	out = append(out, byte(tagTuple))
	idb, _ := EmptyTupleID.MarshalBinary()
	out = append(out, idb...)
	out = append(out, 0, 0)
	return out
}

// uuidv5 derives a content id from s within [TypeIDNamespace], matching the
// spec's "uuidv5(NAMESPACE, canonical_string)" rule.
func uuidv5(s string) uuid.UUID {
	return uuid.NewSHA1(TypeIDNamespace, []byte(s))
}

// uuidv5Bytes is the byte-oriented sibling of [uuidv5], used by
// [DescribeParams]'s two-pass id derivation, which hashes raw wire bytes
// rather than a canonical string.
func uuidv5Bytes(b []byte) uuid.UUID {
	return uuid.NewSHA1(TypeIDNamespace, b)
}
