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
	"github.com/wireproto/typedesc/internal/xlog"
)

// ParseOption configures a single [Parse] call.
type ParseOption struct{ apply func(*parseConfig) }

type parseConfig struct {
	logger xlog.Logger
}

// WithParseLogger installs a trace logger for this [Parse] call.
func WithParseLogger(l xlog.Logger) ParseOption {
	return ParseOption{func(c *parseConfig) { c.logger = l }}
}

// Parse decodes a descriptor produced by [Encoder.Describe] (or
// [DescribeParams]) back into its [Node] tree, returning the root - the
// last frame in the stream. Annotation frames (tag >= 0x80) are skipped and
// never appear in the returned tree.
func Parse(data []byte, pv Version, opts ...ParseOption) (Node, error) {
	cfg := parseConfig{}
	for _, o := range opts {
		o.apply(&cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = xlog.Discard
	}

	r := wire.NewReader(data)
	var codecs []Node

	for !r.Done() {
		n, err := parseOne(r, codecs, pv)
		if err != nil {
			return nil, err
		}
		if n != nil {
			codecs = append(codecs, n)
			logger.Debugf("typedesc: parsed frame %d: %T", len(codecs)-1, n)
		}
	}

	if len(codecs) == 0 {
		return nil, errEmptyDescriptor
	}
	return codecs[len(codecs)-1], nil
}

func parseOne(r *wire.Reader, codecs []Node, pv Version) (Node, error) {
	startOffset := r.Offset()
	t, err := r.Byte()
	if err != nil {
		return nil, &ParseError{Offset: startOffset, Err: err}
	}

	if tag(t).isAnnotation() {
		if _, err := r.Raw(16); err != nil {
			return nil, &ParseError{Offset: r.Offset(), Err: err}
		}
		n, err := r.U32()
		if err != nil {
			return nil, &ParseError{Offset: r.Offset(), Err: err}
		}
		if _, err := r.Raw(int(n)); err != nil {
			return nil, &ParseError{Offset: r.Offset(), Err: err}
		}
		return nil, nil
	}

	idRaw, err := r.Raw(16)
	if err != nil {
		return nil, &ParseError{Offset: r.Offset(), Err: err}
	}
	id, err := uuid.FromBytes(idRaw)
	if err != nil {
		return nil, &ParseError{Offset: r.Offset(), Err: err}
	}
	b := base{id: id}

	resolve := func(pos uint16) (Node, error) {
		if int(pos) >= len(codecs) {
			return nil, &ParseError{Offset: r.Offset(), Err: errUnknownPositionTag}
		}
		return codecs[pos], nil
	}

	switch tag(t) {
	case tagSet:
		pos, err := r.U16()
		if err != nil {
			return nil, &ParseError{Offset: r.Offset(), Err: err}
		}
		sub, err := resolve(pos)
		if err != nil {
			return nil, err
		}
		return &SetNode{base: b, Subtype: sub}, nil

	case tagShape:
		n, err := r.U16()
		if err != nil {
			return nil, &ParseError{Offset: r.Offset(), Err: err}
		}
		fields := make([]ShapeField, 0, n)
		for i := uint16(0); i < n; i++ {
			var flags PointerFlags
			var card Cardinality
			hasCard := pv.AtLeast(ShapeCardinalityVersion)
			if hasCard {
				f, err := r.U32()
				if err != nil {
					return nil, &ParseError{Offset: r.Offset(), Err: err}
				}
				flags = PointerFlags(f)
				cb, err := r.Byte()
				if err != nil {
					return nil, &ParseError{Offset: r.Offset(), Err: err}
				}
				card = Cardinality(cb)
			} else {
				fb, err := r.Byte()
				if err != nil {
					return nil, &ParseError{Offset: r.Offset(), Err: err}
				}
				flags = PointerFlags(fb)
			}

			name, err := r.String()
			if err != nil {
				return nil, &ParseError{Offset: r.Offset(), Err: err}
			}
			pos, err := r.U16()
			if err != nil {
				return nil, &ParseError{Offset: r.Offset(), Err: err}
			}
			sub, err := resolve(pos)
			if err != nil {
				return nil, err
			}
			fields = append(fields, ShapeField{
				Name: name, Type: sub, Flags: flags,
				Cardinality: card, HasCardinality: hasCard,
			})
		}
		return &ShapeNode{base: b, Fields: fields}, nil

	case tagBaseScalar:
		return &BaseScalarNode{base: b}, nil

	case tagScalar:
		pos, err := r.U16()
		if err != nil {
			return nil, &ParseError{Offset: r.Offset(), Err: err}
		}
		sub, err := resolve(pos)
		if err != nil {
			return nil, err
		}
		return &ScalarNode{base: b, Subtype: sub}, nil

	case tagTuple:
		n, err := r.U16()
		if err != nil {
			return nil, &ParseError{Offset: r.Offset(), Err: err}
		}
		fields := make([]Node, 0, n)
		for i := uint16(0); i < n; i++ {
			pos, err := r.U16()
			if err != nil {
				return nil, &ParseError{Offset: r.Offset(), Err: err}
			}
			sub, err := resolve(pos)
			if err != nil {
				return nil, err
			}
			fields = append(fields, sub)
		}
		return &TupleNode{base: b, Fields: fields}, nil

	case tagNamedTuple:
		n, err := r.U16()
		if err != nil {
			return nil, &ParseError{Offset: r.Offset(), Err: err}
		}
		names := make([]string, 0, n)
		fields := make([]Node, 0, n)
		for i := uint16(0); i < n; i++ {
			name, err := r.String()
			if err != nil {
				return nil, &ParseError{Offset: r.Offset(), Err: err}
			}
			pos, err := r.U16()
			if err != nil {
				return nil, &ParseError{Offset: r.Offset(), Err: err}
			}
			sub, err := resolve(pos)
			if err != nil {
				return nil, err
			}
			names = append(names, name)
			fields = append(fields, sub)
		}
		return &NamedTupleNode{base: b, Names: names, Fields: fields}, nil

	case tagEnum:
		n, err := r.U16()
		if err != nil {
			return nil, &ParseError{Offset: r.Offset(), Err: err}
		}
		labels := make([]string, 0, n)
		for i := uint16(0); i < n; i++ {
			s, err := r.String()
			if err != nil {
				return nil, &ParseError{Offset: r.Offset(), Err: err}
			}
			labels = append(labels, s)
		}
		return &EnumNode{base: b, Labels: labels}, nil

	case tagArray:
		pos, err := r.U16()
		if err != nil {
			return nil, &ParseError{Offset: r.Offset(), Err: err}
		}
		dims, err := r.U16()
		if err != nil {
			return nil, &ParseError{Offset: r.Offset(), Err: err}
		}
		if dims != 1 {
			return nil, &ParseError{Offset: r.Offset(), Err: &NotImplementedError{Msg: "cannot handle arrays with more than one dimension"}}
		}
		dimLen, err := r.I32()
		if err != nil {
			return nil, &ParseError{Offset: r.Offset(), Err: err}
		}
		sub, err := resolve(pos)
		if err != nil {
			return nil, err
		}
		return &ArrayNode{base: b, Subtype: sub, DimLen: dimLen}, nil

	default:
		return nil, &ParseError{Offset: startOffset, Err: errUnknownPositionTag}
	}
}
