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

// Package regionpool pools the backing []byte regions that independent
// buddy.Allocator instances are built over. Acquiring memory for a
// region is out of scope for the buddy engine itself; regionpool is one
// way callers that cycle through many short-lived allocators (one per
// request, one per test case) can avoid repeatedly paying make([]byte)
// and GC cost for the same handful of region sizes.
//
// A region obtained from Get must not be reused for a new Allocator
// until the previous Allocator over it is no longer reachable and Put
// has been called; regionpool does not track what an Allocator has
// written into the region, it only recycles the backing array.
package regionpool

import (
	"math/bits"
	"sync"

	"github.com/bytedance/gopkg/lang/dirtmake"
)

const (
	minRegionSize = 4 << 10   // 4KB
	maxRegionSize = 128 << 20 // 128MB; Get panics above this
)

type bucket struct {
	sync.Pool
	size int
}

var buckets []*bucket

// size2idx maps bits.Len(size) to the index of buckets holding regions
// of at least that size.
var size2idx [64]int

func init() {
	i := 0
	for sz := minRegionSize; sz <= maxRegionSize; sz <<= 1 {
		b := &bucket{size: sz}
		b.New = func() interface{} {
			// Regions are handed to a fresh Allocator, which keeps its
			// bitmap outside the region and never reads the region's
			// bytes, so there is no correctness reason to zero this memory.
			buf := dirtmake.Bytes(b.size, b.size)
			return &buf
		}
		buckets = append(buckets, b)
		size2idx[bits.Len(uint(b.size))] = i
		i++
	}
}

func bucketIndex(size int) int {
	if size <= minRegionSize {
		return 0
	}
	i := size2idx[bits.Len(uint(size))]
	if uint(size)&(uint(size)-1) == 0 {
		return i
	}
	return i + 1
}

// Get returns a []byte of at least size bytes, its length exactly
// size. Get panics if size exceeds maxRegionSize; regionpool is meant
// for the modest, repeatedly-reused region sizes a test harness or a
// per-request allocator would use, not for carving arena-scale memory.
func Get(size int) []byte {
	if size <= 0 {
		return nil
	}
	if size > maxRegionSize {
		panic("regionpool: requested size exceeds maxRegionSize")
	}
	i := bucketIndex(size)
	b := buckets[i]
	buf := b.Get().(*[]byte)
	return (*buf)[:size]
}

// Put returns region to the pool for reuse. region must have been
// obtained from Get and must not be touched again by the caller
// afterward. Put silently ignores a region whose capacity does not
// match one of the pool's buckets, since that means it was not
// allocated by Get.
func Put(region []byte) {
	c := cap(region)
	if c < minRegionSize || uint(c)&uint(c-1) != 0 {
		return
	}
	i := size2idx[bits.Len(uint(c))]
	if i >= len(buckets) || buckets[i].size != c {
		return
	}
	full := region[:c]
	buckets[i].Put(&full)
}
