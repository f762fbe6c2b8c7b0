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

// Package xlog is the ambient tracing hook used by the encoder and decoder.
//
// The teacher package gated equivalent tracing behind a debug build tag
// (internal/dbg's Enabled constant). A type-descriptor codec is meant to be
// embedded in a long-running server process, where callers need to turn
// tracing on and off at runtime rather than at compile time, so this package
// expresses the same "pretty-print lazily, only if anyone is listening" idea
// as a small injectable interface instead.
package xlog

import "fmt"

// Logger receives trace events from the typedesc encoder and decoder. Arguments are
// formatted lazily: implementations that discard the event never pay the
// formatting cost.
type Logger interface {
	Debugf(format string, args ...any)
}

// Discard is a [Logger] that drops every event. It is the default logger
// used when none is configured.
var Discard Logger = discard{}

type discard struct{}

func (discard) Debugf(string, ...any) {}

// Func adapts a plain function into a [Logger].
type Func func(format string, args ...any)

// Debugf implements [Logger].
func (f Func) Debugf(format string, args ...any) { f(format, args...) }

// Fprintf lazily formats a message the way the teacher's internal/dbg.Fprintf
// formatter did, for logger implementations that want to defer formatting
// further still (e.g. because they sample events).
func Fprintf(format string, args ...any) fmt.Stringer {
	return lazy{format, args}
}

type lazy struct {
	format string
	args   []any
}

func (l lazy) String() string { return fmt.Sprintf(l.format, l.args...) }
