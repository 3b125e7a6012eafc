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

import "unsafe"

// cacheLinePairBytes is CACHE_LINE_PAIR * sizeof(T) for T = u64, the
// widest key type; u32 layers land on the same 128-byte boundary since
// 128 is a multiple of both 4 and 8.
const cacheLinePairBytes = 128

func sizeOfT[T Key](zero T) int {
	return int(unsafe.Sizeof(zero))
}

// newAlignedLayer returns a slice of n T values backed by storage whose
// first element starts on a cacheLinePairBytes boundary, by over
// allocating and slicing forward to the next aligned offset.
func newAlignedLayer[T Key](n int) []T {
	var zero T
	elemSize := sizeOfT(zero)
	extra := cacheLinePairBytes / elemSize

	buf := make([]T, n+extra)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	misalign := addr % cacheLinePairBytes
	if misalign == 0 {
		return buf[:n]
	}
	offset := (cacheLinePairBytes - int(misalign)) / elemSize
	return buf[offset : offset+n]
}
