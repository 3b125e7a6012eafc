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

// Lookup performs a portable, scalar bracketing search: for query key,
// it returns (vLo, vHi) where vLo is the value of the largest stored
// key <= key and vHi is the value of the smallest stored key > key.
//
// For key < MinKey, it returns (0, MinVal). For key >= MaxKey, it
// returns (MaxVal, MAX(T)).
func (t *Tree[T]) Lookup(key T) (T, T) {
	if key < t.minKey {
		return 0, t.minVal
	}
	if key >= t.maxKey {
		return t.maxVal, maxOf[T]()
	}

	k := pageKeys[T]()
	idx := 0
	for _, layer := range t.internalLayers {
		gt := countLessThan(layer[idx:idx+k], key)
		if gt >= k {
			panic(ErrMalformedTree)
		}
		idx = int(layer[idx+k+gt])
	}

	ge := countLessEqual(t.leafLayer[idx:idx+k], key)
	switch {
	case ge == 0:
		return t.leafLayer[idx-1], t.leafLayer[idx+k]
	case ge == k:
		return t.leafLayer[idx+2*k-1], t.leafLayer[idx+2*k+k]
	default:
		return t.leafLayer[idx+k+ge-1], t.leafLayer[idx+k+ge]
	}
}

func countLessThan[T Key](run []T, query T) int {
	n := 0
	for _, v := range run {
		if v < query {
			n++
		}
	}
	return n
}

func countLessEqual[T Key](run []T, query T) int {
	n := 0
	for _, v := range run {
		if v <= query {
			n++
		}
	}
	return n
}
