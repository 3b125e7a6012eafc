// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fast implements a read-only, statically built, cache-aligned
// multi-level search structure over sorted unsigned integer key/value
// arrays, answering bracketing lookups: given a query k, the value
// paired with the largest stored key <= k and the value paired with the
// smallest stored key > k.
//
// The tree is immutable once built; there is no update path. A Tree's
// layers are plain Go slices backed by 128-byte-aligned storage so that
// a page (K keys followed by K values or child offsets) never straddles
// more cache lines than necessary, and so the vecscan-based lookup path
// produces bit-identical results to the scalar path at every dispatch
// tier.
package fast

// Key is the constraint for the unsigned integer types a Tree can be
// built over.
type Key interface {
	~uint32 | ~uint64
}

// cacheLine is the assumed CPU cache line size in bytes.
const cacheLine = 64

// pageKeys returns K, the number of keys (and the number of values or
// child offsets) per page for type T.
func pageKeys[T Key]() int {
	var zero T
	return cacheLine / sizeOfT(zero)
}

// pageSize returns 2K, the total number of T-sized entries per page.
func pageSize[T Key]() int {
	return 2 * pageKeys[T]()
}

// maxOf returns the maximum representable value of T, used as key-side
// padding so no valid query ever compares less-than-or-equal to a
// padding slot.
func maxOf[T Key]() T {
	var zero T
	return zero - 1
}

// Tree is an immutable, cache-aligned multi-level search structure.
//
// Tree instances must be created with Build; the zero value is not
// usable.
type Tree[T Key] struct {
	leafLayer      []T
	internalLayers [][]T

	minKey, maxKey T
	minVal, maxVal T
}

// MinKey returns the smallest key the tree was built with.
func (t *Tree[T]) MinKey() T { return t.minKey }

// MaxKey returns the largest key the tree was built with.
func (t *Tree[T]) MaxKey() T { return t.maxKey }

// MinVal returns the value paired with MinKey.
func (t *Tree[T]) MinVal() T { return t.minVal }

// MaxVal returns the value paired with MaxKey.
func (t *Tree[T]) MaxVal() T { return t.maxVal }

// NumInternalLayers returns the number of internal (non-leaf) layers,
// with layer 0 the root.
func (t *Tree[T]) NumInternalLayers() int { return len(t.internalLayers) }

// Depth returns the number of layers a lookup traverses, root to leaf:
// one for the leaf layer plus one per internal layer.
func (t *Tree[T]) Depth() int { return len(t.internalLayers) + 1 }

// SizeBytes returns the total size in bytes of the tree's aligned
// storage: the leaf layer plus every internal layer.
func (t *Tree[T]) SizeBytes() int {
	var zero T
	elemSize := sizeOfT(zero)
	total := len(t.leafLayer)
	for _, layer := range t.internalLayers {
		total += len(layer)
	}
	return total * elemSize
}
