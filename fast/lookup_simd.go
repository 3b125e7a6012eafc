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

import "github.com/go-rmi/fastindex/vecscan"

// LookupSIMD is the data-parallel counterpart to Lookup: it walks the
// same tree, using vecscan to compare each key run against the query
// in vecscan.MaxLanes[T]()-sized vector chunks instead of
// element-by-element. It always produces the same result as Lookup for
// the same tree and query — the accelerator contract is "bit-identical
// to scalar", never "faster but approximate".
//
// Like Lookup, it handles the full key range: for key < MinKey it
// returns (0, MinVal) and for key >= MaxKey it returns (MaxVal, MAX(T)),
// before touching tree storage.
func (t *Tree[T]) LookupSIMD(key T) (T, T) {
	if key < t.minKey {
		return 0, t.minVal
	}
	if key >= t.maxKey {
		return t.maxVal, maxOf[T]()
	}

	k := pageKeys[T]()
	idx := 0
	for _, layer := range t.internalLayers {
		gt := vecCountLessThan(layer[idx:idx+k], key)
		if gt >= k {
			panic(ErrMalformedTree)
		}
		idx = int(layer[idx+k+gt])
	}

	ge := vecCountLessEqual(t.leafLayer[idx:idx+k], key)
	switch {
	case ge == 0:
		return t.leafLayer[idx-1], t.leafLayer[idx+k]
	case ge == k:
		return t.leafLayer[idx+2*k-1], t.leafLayer[idx+2*k+k]
	default:
		return t.leafLayer[idx+k+ge-1], t.leafLayer[idx+k+ge]
	}
}

// vecCountLessThan counts entries of run strictly less than query,
// processing run in vecscan.MaxLanes[T]()-sized chunks.
func vecCountLessThan[T Key](run []T, query T) int {
	count := 0
	for off := 0; off < len(run); {
		chunk := run[off:]
		v := vecscan.Load(chunk)
		if v.NumLanes() == 0 {
			break
		}
		count += vecscan.LessThan(v, query).CountTrue()
		off += v.NumLanes()
	}
	return count
}

// vecCountLessEqual counts entries of run less than or equal to query,
// processing run in vecscan.MaxLanes[T]()-sized chunks.
func vecCountLessEqual[T Key](run []T, query T) int {
	count := 0
	for off := 0; off < len(run); {
		chunk := run[off:]
		v := vecscan.Load(chunk)
		if v.NumLanes() == 0 {
			break
		}
		count += vecscan.LessEqual(v, query).CountTrue()
		off += v.NumLanes()
	}
	return count
}
