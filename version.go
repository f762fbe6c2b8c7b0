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

import "fmt"

// Version is a (major, minor) protocol version. The codec's wire layout
// varies with it in exactly two places: shape-field flag width (see
// [ShapeCardinalityVersion]) and whether query-parameter descriptors carry
// cardinality at all (see [ParamCardinalityVersion]).
//
// The original implementation this package's behavior is grounded on
// compared raw (int, int) tuples inline at each call site; that is the kind
// of "semantic leak" this package's own canonical-string scheme is warned
// about elsewhere (see SPEC_FULL.md §9), so the gates are named constants
// here instead.
type Version struct {
	Major, Minor int
}

// Compare returns -1, 0, or 1 as v is less than, equal to, or greater than
// other.
func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		if v.Major < other.Major {
			return -1
		}
		return 1
	case v.Minor != other.Minor:
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether v >= other.
func (v Version) AtLeast(other Version) bool { return v.Compare(other) >= 0 }

func (v Version) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

// ShapeCardinalityVersion is the protocol version at which shape fields
// widened their flags from a single byte to a u32, gaining a trailing u8
// cardinality byte.
var ShapeCardinalityVersion = Version{0, 11}

// ParamCardinalityVersion is the minimum protocol version [DescribeParams]
// supports; earlier versions never carried per-parameter cardinality.
var ParamCardinalityVersion = Version{0, 12}
