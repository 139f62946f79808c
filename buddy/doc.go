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

// Package buddy implements a binary-buddy memory allocator over a single
// caller-owned byte region, for callers that cannot depend on a host
// allocator (embedded targets, a pre-reserved shared-memory segment, a
// test harness that wants deterministic memory behavior).
//
// The region is split into power-of-two size classes. Each class is
// tracked by a flat bitmap (bit=1 reserved or non-existent, bit=0 free)
// and a pool descriptor carrying the class's capacity and two running
// counters: fbcou, a live free-block count used to skip a class with
// nothing free without touching its bitmap words, and alloccou, the
// number of live allocations charged to that class. Allocation finds
// the smallest class that fits, splitting a larger block down when the
// exact class has nothing free; freeing walks back up, coalescing
// adjacent free siblings as far as they merge.
//
// The bitmap word width is a compile-time choice expressed as the
// generic parameter W (uint16, uint32 or uint64); an Allocator built over
// one width is not interchangeable with one built over another.
package buddy
