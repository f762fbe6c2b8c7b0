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

func TestDescribeParams_Empty(t *testing.T) {
	schema := newTestSchema()
	out, id, err := DescribeParams(schema, nil, protoV12)
	require.NoError(t, err)
	require.Nil(t, out)
	require.Equal(t, NullTypeID, id)
}

func TestDescribeParams_RequiresVersionGate(t *testing.T) {
	schema := newTestSchema()
	strT, _ := schema.Get("std::str")
	params := []Param{{Name: "p1", Type: strT, Required: true}}

	_, _, err := DescribeParams(schema, params, Version{0, 11})
	require.Error(t, err)
	var internalErr *InternalError
	require.ErrorAs(t, err, &internalErr)
}

func TestDescribeParams_SingleParam(t *testing.T) {
	schema := newTestSchema()
	strT, _ := schema.Get("std::str")
	params := []Param{{Name: "p1", Type: strT, Required: true}}

	out, id, err := DescribeParams(schema, params, protoV12)
	require.NoError(t, err)
	require.NotEqual(t, NullTypeID, id)

	n, err := Parse(out, protoV12)
	require.NoError(t, err)
	require.Equal(t, id, n.ContentID())

	sn, ok := n.(*ShapeNode)
	require.True(t, ok)
	require.Len(t, sn.Fields, 1)
	require.Equal(t, "p1", sn.Fields[0].Name)
	require.Equal(t, CardinalityOne, sn.Fields[0].Cardinality)
}

func TestDescribeParams_IDIsHashOfZeroedBundle(t *testing.T) {
	schema := newTestSchema()
	strT, _ := schema.Get("std::str")
	params := []Param{{Name: "p1", Type: strT, Required: false}}

	out, id, err := DescribeParams(schema, params, protoV12)
	require.NoError(t, err)

	// The shape tag+id sits right after the single child scalar frame (17
	// bytes). Re-zero the id field and re-hash; must reproduce the same id.
	childFrameLen := 17
	zeroed := append([]byte{}, out...)
	for i := 0; i < 16; i++ {
		zeroed[childFrameLen+1+i] = 0
	}
	recomputed := uuidv5Bytes(zeroed)
	require.Equal(t, id, recomputed)
}

func TestDescribeParams_Deterministic(t *testing.T) {
	schema := newTestSchema()
	strT, _ := schema.Get("std::str")
	params := []Param{{Name: "p1", Type: strT, Required: true}, {Name: "p2", Type: strT, Required: false}}

	out1, id1, err := DescribeParams(schema, params, protoV12)
	require.NoError(t, err)
	out2, id2, err := DescribeParams(schema, params, protoV12)
	require.NoError(t, err)

	require.Equal(t, id1, id2)
	require.Equal(t, out1, out2)
}
