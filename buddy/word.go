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

import "unsafe"

// Word is the set of unsigned integer types that may back a bitmap.
// The width chosen for a given Allocator instantiation is fixed at
// compile time; bitmaps built over different widths are not
// ABI-compatible with each other.
type Word interface {
	~uint16 | ~uint32 | ~uint64
}

// wordBits returns the bit width of W, e.g. 32 for uint32.
func wordBits[W Word]() int {
	var w W
	return int(unsafe.Sizeof(w)) * 8
}
