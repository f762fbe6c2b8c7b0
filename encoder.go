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
	"github.com/tiendc/go-deepcopy"

	"github.com/wireproto/typedesc/internal/wire"
	"github.com/wireproto/typedesc/internal/xlog"
)

// DescribeOption configures a single [Encoder.Describe] call. This mirrors
// the teacher's CompileOption: a small closure wrapping the mutable state,
// rather than a struct of optional fields, so call sites read as
// `e.Describe(t, shapes, meta, v, WithFollowLinks(false))`.
type DescribeOption struct{ apply func(*describeConfig) }

type describeConfig struct {
	followLinks     bool
	inlineTypenames bool
	nameFilter      string
	logger          xlog.Logger
}

// WithFollowLinks controls whether a singular link's target is described in
// full (the default) or substituted with the std::uuid scalar. A multi
// link combined with FollowLinks(false) is an [InternalError]: the shape
// cannot omit a multi link's body. It applies only when the described type
// itself is an object, and only to that object's own pointers; every nested
// type is described with links followed.
func WithFollowLinks(follow bool) DescribeOption {
	return DescribeOption{func(c *describeConfig) { c.followLinks = follow }}
}

// WithInlineTypenames adds an annotation frame carrying the display name of
// every distinct derived scalar and enum (base scalars get none). The
// annotations are appended after all primary frames, in first-emission
// order.
func WithInlineTypenames(inline bool) DescribeOption {
	return DescribeOption{func(c *describeConfig) { c.inlineTypenames = inline }}
}

// WithNameFilter restricts a shape's fields to pointers whose short name
// starts with prefix, stripping the prefix from the emitted field name. Like
// [WithFollowLinks], it applies only to the own pointers of an object that
// is the described type itself; link properties and nested shapes are not
// filtered.
func WithNameFilter(prefix string) DescribeOption {
	return DescribeOption{func(c *describeConfig) { c.nameFilter = prefix }}
}

// WithLogger installs a trace logger for this call. The default is
// [xlog.Discard].
func WithLogger(l xlog.Logger) DescribeOption {
	return DescribeOption{func(c *describeConfig) { c.logger = l }}
}

func (c *describeConfig) Logger() xlog.Logger {
	if c.logger == nil {
		return xlog.Discard
	}
	return c.logger
}

// Encoder walks a [Type] and produces its wire descriptor. One Encoder is
// scoped to exactly one [Encoder.Describe] (or [DescribeParams]) call; the
// zero value is not usable, construct with [NewEncoder].
//
// Encoder state is never shared across goroutines; see SPEC_FULL.md §5.
type Encoder struct {
	schema Schema

	buf  wire.Buffer
	anno wire.Buffer

	// pos maps a content id to its zero-based slot in the emission order.
	// This is the encoder's deduplication key and position map, directly
	// analogous to the teacher compiler's `symbols map[any]int`.
	pos map[uuid.UUID]int

	pv     Version
	cfg    describeConfig
	logger xlog.Logger
}

// NewEncoder constructs an Encoder bound to schema. schema may be refined
// during encoding (see [Schema], [Type.MaterialType]); the caller's handle
// is never mutated.
func NewEncoder(schema Schema) *Encoder {
	return &Encoder{schema: schema, pos: make(map[uuid.UUID]int), logger: xlog.Discard}
}

// Describe encodes typ into a descriptor, returning the encoded bytes and
// typ's content id (the id of the root - last - frame). viewShapes and
// viewShapesMetadata are copied defensively before the walk begins (the
// viewShapes map and its pointer slices one level deep, the metadata values
// deep-copied), so the caller's maps are never mutated even though the walk
// may resolve view types to material types (§3 "Encoder state" / §6
// "material_type").
func (e *Encoder) Describe(typ Type, viewShapes ViewShapes, viewShapesMetadata ViewShapesMetadata, pv Version, opts ...DescribeOption) ([]byte, uuid.UUID, error) {
	cfg := describeConfig{followLinks: true}
	for _, o := range opts {
		o.apply(&cfg)
	}
	e.cfg = cfg
	e.logger = cfg.Logger()
	e.pv = pv

	shapes := cloneViewShapes(viewShapes)
	meta := cloneViewShapesMetadata(viewShapesMetadata)

	id, err := e.describeType(typ, shapes, meta, cfg.followLinks, cfg.nameFilter)
	if err != nil {
		return nil, uuid.Nil, err
	}

	out := make([]byte, 0, e.buf.Len()+e.anno.Len())
	out = append(out, e.buf.Bytes()...)
	out = append(out, e.anno.Bytes()...)
	return out, id, nil
}

// register records id's position if this is its first emission; it is a
// no-op (and the caller must not emit a frame) if id was already present.
func (e *Encoder) register(id uuid.UUID) (pos int, alreadyEmitted bool) {
	if p, ok := e.pos[id]; ok {
		return p, true
	}
	p := len(e.pos)
	e.pos[id] = p
	return p, false
}

func idBytes(id uuid.UUID) []byte {
	b, _ := id.MarshalBinary()
	return b
}

// describeSet recurses with the fixed defaults (follow_links=true, no name
// filter): a set's element type is never the outermost call, and sertypes.py
// never threads follow_links/name_filter past the first level (only the
// single call made directly from describe() carries the caller's values).
func (e *Encoder) describeSet(t Type, shapes ViewShapes, meta ViewShapesMetadata) (uuid.UUID, error) {
	childID, err := e.describeType(t, shapes, meta, true, "")
	if err != nil {
		return uuid.Nil, err
	}

	setID := setTypeID(childID)
	if _, ok := e.pos[setID]; ok {
		return setID, nil
	}

	e.buf.Byte(byte(tagSet))
	e.buf.Raw(idBytes(setID))
	e.buf.U16(uint16(e.pos[childID]))

	e.register(setID)
	e.logger.Debugf("typedesc: emit set %s -> %s", setID, childID)
	return setID, nil
}

func (e *Encoder) describeType(t Type, shapes ViewShapes, meta ViewShapesMetadata, followLinks bool, nameFilter string) (uuid.UUID, error) {
	switch t.Kind() {
	case KindTuple:
		return e.describeTuple(t.(TupleType), shapes, meta)
	case KindArray:
		return e.describeArray(t.(ArrayType), shapes, meta)
	case KindObject:
		return e.describeObject(t.(ObjectType), shapes, meta, followLinks, nameFilter)
	case KindScalar:
		return e.describeScalar(t.(ScalarType), shapes, meta)
	case KindOtherCollection:
		return uuid.Nil, &SchemaError{Type: t.SchemaName(), Msg: "unsupported collection type"}
	default:
		return uuid.Nil, &InternalError{Msg: "cannot describe type of unknown kind"}
	}
}

// describeTuple, like every non-Object branch, recurses into its elements
// with the fixed defaults rather than forwarding an enclosing call's
// followLinks/nameFilter: sertypes.py's Tuple branch calls _describe_type on
// each subtype with no follow_links/name_filter arguments, so only the
// outermost Object in a walk ever observes the caller's values.
func (e *Encoder) describeTuple(t TupleType, shapes ViewShapes, meta ViewShapesMetadata) (uuid.UUID, error) {
	subs := t.Subtypes(e.schema)
	childIDs := make([]uuid.UUID, len(subs))
	for i, st := range subs {
		id, err := e.describeType(st, shapes, meta, true, "")
		if err != nil {
			return uuid.Nil, err
		}
		childIDs[i] = id
	}

	named := t.IsNamed(e.schema)
	var names []string
	if named {
		names = t.ElementNames(e.schema)
	}

	typeID := collectionTypeID(t.SchemaName(), childIDs, names)
	if _, ok := e.pos[typeID]; ok {
		return typeID, nil
	}

	if named {
		e.buf.Byte(byte(tagNamedTuple))
		e.buf.Raw(idBytes(typeID))
		e.buf.U16(uint16(len(childIDs)))
		for i, childID := range childIDs {
			e.buf.String(names[i])
			e.buf.U16(uint16(e.pos[childID]))
		}
	} else {
		e.buf.Byte(byte(tagTuple))
		e.buf.Raw(idBytes(typeID))
		e.buf.U16(uint16(len(childIDs)))
		for _, childID := range childIDs {
			e.buf.U16(uint16(e.pos[childID]))
		}
	}

	e.register(typeID)
	e.logger.Debugf("typedesc: emit tuple %s (named=%v, n=%d)", typeID, named, len(childIDs))
	return typeID, nil
}

func (e *Encoder) describeArray(t ArrayType, shapes ViewShapes, meta ViewShapesMetadata) (uuid.UUID, error) {
	subs := t.Subtypes(e.schema)
	if len(subs) != 1 {
		return uuid.Nil, &InternalError{Msg: "array type must have exactly one subtype"}
	}

	subID, err := e.describeType(subs[0], shapes, meta, true, "")
	if err != nil {
		return uuid.Nil, err
	}

	typeID := collectionTypeID(t.SchemaName(), []uuid.UUID{subID}, nil)
	if _, ok := e.pos[typeID]; ok {
		return typeID, nil
	}

	e.buf.Byte(byte(tagArray))
	e.buf.Raw(idBytes(typeID))
	e.buf.U16(uint16(e.pos[subID]))
	e.buf.U16(1)
	e.buf.I32(-1)

	e.register(typeID)
	e.logger.Debugf("typedesc: emit array %s -> %s", typeID, subID)
	return typeID, nil
}

func (e *Encoder) describeObject(t ObjectType, shapes ViewShapes, meta ViewShapesMetadata, followLinks bool, nameFilter string) (uuid.UUID, error) {
	newSchema, mt := t.MaterialType(e.schema)
	e.schema = newSchema
	baseTypeID := mt.ID()

	var (
		childIDs  []uuid.UUID
		names     []string
		linkProps []bool
		links     []bool
		cards     []Cardinality
	)

	shapeMeta, hasMeta := meta[t]
	implicitID := hasMeta && shapeMeta.HasImplicitID

	for _, ptr := range shapes[t] {
		name := ptr.ShortName(e.schema)
		if nameFilter != "" {
			if len(name) < len(nameFilter) || name[:len(nameFilter)] != nameFilter {
				continue
			}
			name = name[len(nameFilter):]
		}

		var subID uuid.UUID
		var err error
		if ptr.Singular(e.schema) {
			if ptr.IsLink() && !followLinks {
				uuidType, ok := e.schema.Get("std::uuid")
				if !ok {
					return uuid.Nil, &InternalError{Msg: "schema has no std::uuid type"}
				}
				// Link-id substitution recurses with the fixed defaults,
				// same as every other child of an Object: followLinks only
				// ever governs this object's own pointers, never a nested
				// one (sertypes.py never forwards it past one level).
				subID, err = e.describeType(uuidType, shapes, meta, true, "")
			} else {
				subID, err = e.describeType(ptr.Target(e.schema), shapes, meta, true, "")
			}
		} else {
			if ptr.IsLink() && !followLinks {
				return uuid.Nil, &InternalError{Msg: "cannot describe multi links when FollowLinks is false"}
			}
			subID, err = e.describeSet(ptr.Target(e.schema), shapes, meta)
		}
		if err != nil {
			return uuid.Nil, err
		}

		childIDs = append(childIDs, subID)
		names = append(names, name)
		linkProps = append(linkProps, false)
		links = append(links, !ptr.IsProperty(e.schema))
		cards = append(cards, CardinalityOf(ptr.Required(e.schema), ptr.Multi(e.schema)))
	}

	if rptr, ok := t.Rptr(e.schema); ok {
		if rptrPtrs, ok := shapes[rptr]; ok {
			for _, ptr := range rptrPtrs {
				var subID uuid.UUID
				var err error
				if ptr.Singular(e.schema) {
					subID, err = e.describeType(ptr.Target(e.schema), shapes, meta, true, "")
				} else {
					subID, err = e.describeSet(ptr.Target(e.schema), shapes, meta)
				}
				if err != nil {
					return uuid.Nil, err
				}

				childIDs = append(childIDs, subID)
				names = append(names, ptr.ShortName(e.schema))
				linkProps = append(linkProps, true)
				links = append(links, false)
				cards = append(cards, CardinalityOf(ptr.Required(e.schema), ptr.Multi(e.schema)))
			}
		}
	}

	typeID := objectTypeID(baseTypeID, childIDs, names, implicitID, linkProps, links)
	if _, ok := e.pos[typeID]; ok {
		return typeID, nil
	}

	e.buf.Byte(byte(tagShape))
	e.buf.Raw(idBytes(typeID))
	e.buf.U16(uint16(len(childIDs)))

	for i, childID := range childIDs {
		name := names[i]

		flags := PointerFlags(0)
		if linkProps[i] {
			flags |= FlagLinkProp
		}
		switch {
		case (implicitID && name == "id") || name == "__tid__":
			if childID != StdUUIDID {
				return uuid.Nil, &InternalError{Msg: "'" + name + "' is expected to be a std::uuid singleton"}
			}
			flags |= FlagImplicit
		case name == "__tname__":
			if childID != StdStrID {
				return uuid.Nil, &InternalError{Msg: "'" + name + "' is expected to be a std::str singleton"}
			}
			flags |= FlagImplicit
		}
		if links[i] {
			flags |= FlagLink
		}

		if e.pv.AtLeast(ShapeCardinalityVersion) {
			e.buf.U32(uint32(flags))
			e.buf.Byte(byte(cards[i]))
		} else {
			e.buf.Byte(byte(flags))
		}

		e.buf.String(name)
		e.buf.U16(uint16(e.pos[childID]))
	}

	e.register(typeID)
	e.logger.Debugf("typedesc: emit shape %s (n=%d)", typeID, len(childIDs))
	return typeID, nil
}

func (e *Encoder) describeScalar(t ScalarType, shapes ViewShapes, meta ViewShapesMetadata) (uuid.UUID, error) {
	newSchema, mtType := t.MaterialType(e.schema)
	e.schema = newSchema
	mt := mtType.(ScalarType)
	typeID := mt.ID()

	if _, ok := e.pos[typeID]; ok {
		return typeID, nil
	}

	base := mt.TopmostConcreteBase(e.schema)
	enumValues := mt.EnumValues(e.schema)

	switch {
	case len(enumValues) > 0:
		e.buf.Byte(byte(tagEnum))
		e.buf.Raw(idBytes(typeID))
		e.buf.U16(uint16(len(enumValues)))
		for _, v := range enumValues {
			e.buf.String(v)
		}
		if e.cfg.inlineTypenames {
			e.addAnnotation(typeID, mt.DisplayName(e.schema))
		}

	case base.ID() == typeID:
		e.buf.Byte(byte(tagBaseScalar))
		e.buf.Raw(idBytes(typeID))

	default:
		baseID, err := e.describeType(base, shapes, meta, true, "")
		if err != nil {
			return uuid.Nil, err
		}
		e.buf.Byte(byte(tagScalar))
		e.buf.Raw(idBytes(typeID))
		e.buf.U16(uint16(e.pos[baseID]))
		if e.cfg.inlineTypenames {
			e.addAnnotation(typeID, mt.DisplayName(e.schema))
		}
	}

	e.register(typeID)
	e.logger.Debugf("typedesc: emit scalar %s", typeID)
	return typeID, nil
}

func (e *Encoder) addAnnotation(typeID uuid.UUID, displayName string) {
	e.anno.Byte(byte(tagAnnoTypeName))
	e.anno.Raw(idBytes(typeID))
	e.anno.String(displayName)
}

func cloneViewShapes(in ViewShapes) ViewShapes {
	if in == nil {
		return nil
	}
	out := make(ViewShapes, len(in))
	for k, v := range in {
		cp := make([]Pointer, len(v))
		copy(cp, v)
		out[k] = cp
	}
	return out
}

func cloneViewShapesMetadata(in ViewShapesMetadata) ViewShapesMetadata {
	if in == nil {
		return nil
	}
	out := make(ViewShapesMetadata, len(in))
	for k, v := range in {
		var cp ShapeMetadata
		if err := deepcopy.Copy(&cp, v); err != nil {
			cp = v
		}
		out[k] = cp
	}
	return out
}
