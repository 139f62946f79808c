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

// sizeClass is one entry of the pool descriptor table: everything the
// engine needs to know about blocks of one power-of-two size. A
// sizeClass with size 0 is the sentinel that terminates the table; its
// wordOff marks the end of the bitmap, one past the last real class's
// words, and it is never otherwise consulted.
type sizeClass struct {
	size     int // S_k in bytes
	wordOff  int // offset, in bitmap words, of this class's bit array
	avail    int // floor(region / size), the number of real blocks
	fbcou    int // live count of currently free blocks in this class
	alloccou int // live allocations currently charged to this class
}

// buildClasses lays out the pool descriptor table for a region of
// regionLen bytes with the given minimum block size and word width. It
// returns the table (sentinel included) and the total number of bitmap
// words the table's classes require.
func buildClasses[W Word](regionLen, minSize int) ([]sizeClass, int) {
	wb := wordBits[W]()

	var classes []sizeClass
	cursor := 0
	for size := minSize; 2*size <= regionLen; size *= 2 {
		avail := regionLen / size
		classes = append(classes, sizeClass{
			size:    size,
			wordOff: cursor,
			avail:   avail,
			// fbcou is overwritten once New has finished building the
			// bitmap; the zero value here is never read.
		})
		cursor += (avail + wb - 1) / wb
	}
	// Sentinel: size 0 terminates class lookups. Its wordOff doubles as
	// the bitmap's total word count, closing off the last real class's
	// word range.
	classes = append(classes, sizeClass{wordOff: cursor})
	return classes, cursor
}
