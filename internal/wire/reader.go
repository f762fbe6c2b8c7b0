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

package wire

import (
	"encoding/binary"
	"fmt"
)

// Reader is a cursor over a descriptor byte stream. Every read is bounds
// checked; a short read returns an error instead of panicking, so a
// truncated descriptor is reported as a [typedesc] ParseError rather than
// crashing the process.
type Reader struct {
	buf []byte
	off int
}

// NewReader wraps buf for sequential reads.
func NewReader(buf []byte) *Reader { return &Reader{buf: buf} }

// Offset returns the current read offset, for error reporting.
func (r *Reader) Offset() int { return r.off }

// Done reports whether the reader has consumed the entire input.
func (r *Reader) Done() bool { return r.off >= len(r.buf) }

// Byte reads a single byte.
func (r *Reader) Byte() (byte, error) {
	if r.off+1 > len(r.buf) {
		return 0, fmt.Errorf("%w: at offset %d", errShortRead, r.off)
	}
	v := r.buf[r.off]
	r.off++
	return v, nil
}

// Raw reads n raw bytes.
func (r *Reader) Raw(n int) ([]byte, error) {
	if r.off+n > len(r.buf) {
		return nil, fmt.Errorf("%w: at offset %d", errShortRead, r.off)
	}
	v := r.buf[r.off : r.off+n]
	r.off += n
	return v, nil
}

// U16 reads a big-endian uint16.
func (r *Reader) U16() (uint16, error) {
	b, err := r.Raw(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// U32 reads a big-endian uint32.
func (r *Reader) U32() (uint32, error) {
	b, err := r.Raw(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// I32 reads a big-endian int32.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// String reads a u32 length prefix followed by that many UTF-8 bytes.
func (r *Reader) String() (string, error) {
	n, err := r.U32()
	if err != nil {
		return "", err
	}
	b, err := r.Raw(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

var errShortRead = fmt.Errorf("truncated descriptor")

// ErrShortRead is the sentinel wrapped by every bounds-check failure; use
// errors.Is(err, wire.ErrShortRead) to detect truncation.
var ErrShortRead = errShortRead
