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
	"strings"

	"github.com/google/uuid"
)

// collectionTypeID derives the content id for a tuple, named tuple, or
// array from its child ids and (if named) element names, per §4.1's
// "Collection" canonical-string rule:
//
//	"{kind}\x00{child_id_0}:{child_id_1}:..."
//
// with "\x00{name_0}:{name_1}:..." appended when names is non-empty.
func collectionTypeID(kind string, children []uuid.UUID, names []string) uuid.UUID {
	if kind == "tuple" && len(children) == 0 {
		return EmptyTupleID
	}

	var b strings.Builder
	b.WriteString(kind)
	b.WriteByte(0)
	for i, c := range children {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(c.String())
	}
	if len(names) > 0 {
		b.WriteByte(0)
		for i, n := range names {
			if i > 0 {
				b.WriteByte(':')
			}
			b.WriteString(n)
		}
	}
	return uuidv5(b.String())
}

// objectTypeID derives the content id for a shape from the base type's id,
// its field ids and names, and the three parallel flag lists, per §4.1's
// "Object shape" canonical-string rule:
//
//	"{base_type_uuid}\x00{child_ids}\x00{element_names}{has_implicit_fields!r};{link_props_list!r};{links_list!r}"
//
// The "\x00{element_names}" segment is only appended when names is
// non-empty. The three trailing reprs must match the source's Python list-repr
// exactly (§9): "[" + ", "-joined "True"/"False" + "]". Any deviation
// changes every derived id for every shape in the system.
func objectTypeID(baseTypeID uuid.UUID, children []uuid.UUID, names []string, hasImplicitFields bool, linkProps, links []bool) uuid.UUID {
	var b strings.Builder
	b.WriteString(baseTypeID.String())
	b.WriteByte(0)
	for i, c := range children {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(c.String())
	}
	if len(names) > 0 {
		b.WriteByte(0)
		for i, n := range names {
			if i > 0 {
				b.WriteByte(':')
			}
			b.WriteString(n)
		}
	}
	b.WriteString(pyBoolRepr(hasImplicitFields))
	b.WriteByte(';')
	b.WriteString(pyBoolListRepr(linkProps))
	b.WriteByte(';')
	b.WriteString(pyBoolListRepr(links))
	return uuidv5(b.String())
}

// setTypeID derives the content id for a set-of-T wrapper, per §4.1's "Set"
// canonical-string rule: "set-of::{child_uuid_string}".
func setTypeID(child uuid.UUID) uuid.UUID {
	return uuidv5("set-of::" + child.String())
}

// pyBoolRepr renders a single bool the way Python's repr(bool) does.
func pyBoolRepr(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

// pyBoolListRepr renders []bool the way Python's repr([bool, ...]) does:
// "[False, True, False]". An empty slice reprs as "[]".
func pyBoolListRepr(vs []bool) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range vs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(pyBoolRepr(v))
	}
	b.WriteByte(']')
	return b.String()
}
