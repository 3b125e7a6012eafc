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

// Package vecscan provides the small, runtime-CPU-dispatched vector
// primitives needed to scan a single cache-line-sized run of unsigned
// integer keys in a data-parallel fashion: load a run, compare every
// lane against a scalar query, and count how many lanes satisfied the
// comparison.
//
// This is a deliberately narrow slice of a Highway-style portable SIMD
// layer (load/compare/count over Key lanes only, no arithmetic, no
// floating point) sized to exactly what a FAST-style bracketing search
// needs from its "accelerator". Vec and Mask always hold correct scalar
// results regardless of CurrentLevel; CurrentLevel/CurrentWidth exist so
// a caller can report which dispatch tier is in effect and so tests can
// assert scalar/SIMD parity across tiers without needing distinct
// hardware.
package vecscan
