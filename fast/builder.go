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

package fast

import "fmt"

// Build constructs a Tree from equal-length, non-empty, sorted
// (non-decreasing), duplicate-free key and value arrays.
//
// Duplicate keys are rejected with ErrDomainViolation: the bracketing
// semantics of a query equal to a repeated key are not uniquely defined
// by the scalar lookup algorithm, so Build requires strictly increasing
// keys rather than adopting an implicit last-seen-per-page tie policy.
func Build[T Key](keys, values []T) (*Tree[T], error) {
	if len(keys) == 0 || len(keys) != len(values) {
		return nil, fmt.Errorf("%w: keys and values must be equal-length and non-empty", ErrDomainViolation)
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] < keys[i-1] {
			return nil, fmt.Errorf("%w: keys must be sorted non-decreasing", ErrDomainViolation)
		}
		if keys[i] == keys[i-1] {
			return nil, fmt.Errorf("%w: duplicate key %v", ErrDomainViolation, keys[i])
		}
	}

	leaf := layoutLeaf(keys, values)

	var internal [][]T
	cur := leaf
	for len(cur) > pageSize[T]() {
		next, err := layoutInternal(cur)
		if err != nil {
			return nil, err
		}
		internal = append(internal, next)
		cur = next
	}

	// internal was built leaf-upward (closest-to-leaf first); reverse so
	// index 0 is the root.
	for i, j := 0, len(internal)-1; i < j; i, j = i+1, j-1 {
		internal[i], internal[j] = internal[j], internal[i]
	}

	alignedLeaf := newAlignedLayer[T](len(leaf))
	copy(alignedLeaf, leaf)

	alignedInternal := make([][]T, len(internal))
	for i, layer := range internal {
		a := newAlignedLayer[T](len(layer))
		copy(a, layer)
		alignedInternal[i] = a
	}

	return &Tree[T]{
		leafLayer:      alignedLeaf,
		internalLayers: alignedInternal,
		minKey:         keys[0],
		maxKey:         keys[len(keys)-1],
		minVal:         values[0],
		maxVal:         values[len(values)-1],
	}, nil
}

// layoutLeaf interleaves keys and values into pages of K keys followed
// by K values, padding short tails with MAX(T) on the key side and 0 on
// the value side.
func layoutLeaf[T Key](keys, values []T) []T {
	k := pageKeys[T]()
	numPages := (len(keys) + k - 1) / k
	out := make([]T, numPages*2*k)

	for p := 0; p < numPages; p++ {
		start := p * k
		end := min(start+k, len(keys))
		keyBase := p * 2 * k
		valBase := keyBase + k

		for i := 0; i < k; i++ {
			if start+i < end {
				out[keyBase+i] = keys[start+i]
				out[valBase+i] = values[start+i]
			} else {
				out[keyBase+i] = maxOf[T]()
				out[valBase+i] = 0
			}
		}
	}
	return out
}

// layoutInternal scans the pages of prev and produces the next layer
// up: per page, last_key = page's final key, child_index = the page's
// start offset within prev. The result has the same key/child-offset
// page shape as a leaf layer.
func layoutInternal[T Key](prev []T) ([]T, error) {
	k := pageKeys[T]()
	numPrevPages := len(prev) / (2 * k)

	lastKeys := make([]T, numPrevPages)
	childOffsets := make([]T, numPrevPages)
	for p := 0; p < numPrevPages; p++ {
		pageStart := p * 2 * k
		lastKeys[p] = prev[pageStart+k-1]

		offset := pageStart
		var zero T
		if sizeOfT(zero) == 4 && uint64(offset) > uint64(^uint32(0)) {
			return nil, fmt.Errorf("%w: child offset %d exceeds u32 range", ErrOverflow, offset)
		}
		childOffsets[p] = T(offset)
	}

	return layoutLeaf(lastKeys, childOffsets), nil
}
