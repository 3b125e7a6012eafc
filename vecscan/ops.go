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

package vecscan

import "unsafe"

// This file provides the pure-Go (scalar) implementations of every
// vecscan operation. They are always correct regardless of
// CurrentLevel; a hardware-dispatched FAST build would swap these for
// archsimd-backed versions behind the same signatures without changing
// any caller.

func sizeOf[T Key](zero T) int {
	return int(unsafe.Sizeof(zero))
}

// Load reads up to MaxLanes[T]() keys from src into a Vec.
func Load[T Key](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// LessThan compares each lane of v against query, producing a Mask
// whose active lanes are the keys strictly less than query.
func LessThan[T Key](v Vec[T], query T) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, k := range v.data {
		bits[i] = k < query
	}
	return Mask[T]{bits: bits}
}

// LessEqual compares each lane of v against query, producing a Mask
// whose active lanes are the keys less than or equal to query.
func LessEqual[T Key](v Vec[T], query T) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, k := range v.data {
		bits[i] = k <= query
	}
	return Mask[T]{bits: bits}
}
