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

import "errors"

var (
	// ErrInvalidMinSize is returned by New when minSize is not a power of
	// two greater than zero.
	ErrInvalidMinSize = errors.New("buddy: minSize must be a power of two greater than zero")

	// ErrRegionTooSmall is returned by New when the region is shorter than
	// two minSize blocks, or when the allocator's own bookkeeping does not
	// fit in it.
	ErrRegionTooSmall = errors.New("buddy: region too small to hold bookkeeping and one block")

	// ErrTooLarge is returned by Alloc/AllocLow when the requested size
	// exceeds the largest size class the allocator built.
	ErrTooLarge = errors.New("buddy: requested size exceeds the largest size class")

	// ErrExhausted is returned by Alloc/AllocLow when no class at or
	// above the requested size currently has a free block.
	ErrExhausted = errors.New("buddy: no free block available for this size")
)

// errNotOwned is panicked by Free when given a slice this Allocator did
// not produce; it is a programmer error, not a runtime condition callers
// are expected to recover from.
const errNotOwned = "buddy: Free called with a slice not returned by Alloc/AllocLow on this allocator"
