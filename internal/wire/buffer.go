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

// Package wire holds the low-level big-endian byte-buffer helpers shared by
// the encoder and decoder. The accumulation pattern (append-only []byte,
// reused across frames) mirrors the teacher's Buffer type; unlike the
// teacher, there is no pool, since §5 of the spec scopes a buffer to exactly
// one encode/decode call and release happens by letting the buffer be
// garbage collected with its owner.
package wire

import (
	"encoding/binary"
	"fmt"
)

// Buffer accumulates big-endian encoded bytes during descriptor emission.
type Buffer struct {
	B []byte
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.B) }

// Bytes returns the accumulated bytes.
func (b *Buffer) Bytes() []byte { return b.B }

// Byte appends a single byte.
func (b *Buffer) Byte(v byte) { b.B = append(b.B, v) }

// Raw appends raw bytes verbatim (e.g. a 16-byte content id).
func (b *Buffer) Raw(p []byte) { b.B = append(b.B, p...) }

// U16 appends a big-endian uint16.
func (b *Buffer) U16(v uint16) {
	b.B = binary.BigEndian.AppendUint16(b.B, v)
}

// U32 appends a big-endian uint32.
func (b *Buffer) U32(v uint32) {
	b.B = binary.BigEndian.AppendUint32(b.B, v)
}

// I32 appends a big-endian int32.
func (b *Buffer) I32(v int32) {
	b.U32(uint32(v))
}

// String appends a u32 length prefix followed by the UTF-8 bytes of s.
func (b *Buffer) String(s string) {
	if len(s) > 0xFFFFFFFF {
		panic(fmt.Sprintf("wire: string too long to encode: %d bytes", len(s)))
	}
	b.U32(uint32(len(s)))
	b.B = append(b.B, s...)
}

// PatchRaw overwrites the 16 bytes at offset with p. Used by the two-pass
// parameter-descriptor id derivation (hash with a zeroed id, then patch the
// real id in).
func (b *Buffer) PatchRaw(offset int, p []byte) {
	if len(p) != 16 || offset < 0 || offset+16 > len(b.B) {
		panic("wire: PatchRaw out of range")
	}
	copy(b.B[offset:offset+16], p)
}
