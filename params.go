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
	"github.com/google/uuid"

	"github.com/wireproto/typedesc/internal/wire"
)

// Param is one entry of a query's parameter list, as passed to
// [DescribeParams].
type Param struct {
	Name     string
	Type     Type
	Required bool
}

// DescribeParams builds the single virtual shape frame describing a
// query's parameter list. It requires a protocol version that carries
// parameter cardinality; see [ParamCardinalityVersion].
//
// If params is empty, it returns the sentinel (nil, [NullTypeID]) per §4.1
// invariant 4; no schema is consulted and no Encoder is needed.
//
// Otherwise each parameter's type is encoded into a private buffer exactly
// as [Encoder.Describe] would, then the bundle is assembled as
//
//	<encoded children> || 0x01 <placeholder id> <u16 N> <per-param records> || <annotations>
//
// hashed with the id field zeroed, and the computed id is patched into the
// 16 placeholder bytes in place - a pure function of the bundle's contents
// (§4.1 "two-pass id derivation").
func DescribeParams(schema Schema, params []Param, pv Version) ([]byte, uuid.UUID, error) {
	if !pv.AtLeast(ParamCardinalityVersion) {
		return nil, uuid.Nil, &InternalError{Msg: "DescribeParams requires protocol version >= " + ParamCardinalityVersion.String()}
	}

	if len(params) == 0 {
		return nil, NullTypeID, nil
	}

	e := NewEncoder(schema)
	e.pv = pv

	type record struct {
		name string
		card Cardinality
		pos  int
	}
	records := make([]record, len(params))

	for i, p := range params {
		typeID, err := e.describeType(p.Type, nil, nil, true, "")
		if err != nil {
			return nil, uuid.Nil, err
		}

		card := CardinalityAtMostOne
		if p.Required {
			card = CardinalityOne
		}
		records[i] = record{name: p.Name, card: card, pos: e.pos[typeID]}
	}

	childrenEncoded := e.buf.Bytes()

	var full wire.Buffer
	full.Raw(childrenEncoded)

	idOffset := full.Len() + 1 // skip the tag byte that follows
	full.Byte(byte(tagShape))
	full.Raw(idBytes(uuid.Nil)) // placeholder, patched below
	full.U16(uint16(len(params)))
	for _, r := range records {
		full.U32(0) // flags
		full.Byte(byte(r.card))
		full.String(r.name)
		full.U16(uint16(r.pos))
	}
	full.Raw(e.anno.Bytes())

	paramsID := uuidv5Bytes(full.Bytes())
	paramsIDBytes, _ := paramsID.MarshalBinary()
	full.PatchRaw(idOffset, paramsIDBytes)

	return full.Bytes(), paramsID, nil
}
