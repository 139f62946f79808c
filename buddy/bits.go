// Copyright 2024 CloudWeGo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package buddy

import "math/bits"

// trailingZeros returns the number of trailing zero bits of w, counted
// within W's actual width (wordBits[W]()) when w is zero.
func trailingZeros[W Word](w W) int {
	if w == 0 {
		return wordBits[W]()
	}
	return bits.TrailingZeros64(uint64(w))
}

// leadingZeros returns the number of leading zero bits of w relative to
// W's actual width, not uint64's.
func leadingZeros[W Word](w W) int {
	wb := wordBits[W]()
	if w == 0 {
		return wb
	}
	return bits.LeadingZeros64(uint64(w)) - (64 - wb)
}

// fullMask returns a W with every bit set.
func fullMask[W Word]() W {
	return ^W(0)
}

// popcount returns the number of set bits in w.
func popcount[W Word](w W) int {
	return bits.OnesCount64(uint64(w))
}
