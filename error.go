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
	"errors"
	"fmt"
)

// SchemaError is returned when the walked type contains a kind the encoder
// does not support (e.g. a collection type other than tuple/array/shape).
// It is caller-fixable: the query should be rejected, not retried.
type SchemaError struct {
	// Type is the schema_name of the offending type, if known.
	Type string
	Msg  string
}

func (e *SchemaError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("typedesc: schema error: %s: %s", e.Type, e.Msg)
	}
	return fmt.Sprintf("typedesc: schema error: %s", e.Msg)
}

// InternalError signals a contract violation between the codec and its
// schema-introspection caller: an implicit field with the wrong declared
// type, a multi-link shape built with FollowLinks disabled, an unrecognized
// type kind reaching the dispatcher, or a parse that produced no frames.
// These are not caller-fixable at query time; they indicate a bug in the
// schema layer or the codec itself.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("typedesc: internal error: %s", e.Msg)
}

// ParseError is returned by [Parse] when a descriptor is malformed:
// truncated input, an out-of-range position reference, or an unrecognized
// tag byte below the annotation range.
type ParseError struct {
	// Offset is the byte offset at which decoding failed.
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("typedesc: parse error at offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NotImplementedError is returned for descriptor shapes this package
// deliberately does not support, such as multi-dimensional arrays (see
// SPEC_FULL.md Non-goals).
type NotImplementedError struct {
	Msg string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("typedesc: not implemented: %s", e.Msg)
}

var (
	errUnknownPositionTag = errors.New("unrecognized descriptor tag or out-of-range position")
	errEmptyDescriptor    = &InternalError{Msg: "could not parse type descriptor: empty input"}
)
