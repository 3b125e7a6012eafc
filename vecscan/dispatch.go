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

import (
	"os"
	"strconv"
)

// DispatchLevel represents the SIMD tier a page scan would run at on
// this CPU, for diagnostics only — Load/LessThan/LessEqual produce
// identical results at every tier.
type DispatchLevel int

const (
	// DispatchScalar indicates no hardware SIMD, pure Go comparisons.
	DispatchScalar DispatchLevel = iota

	// DispatchAVX2 indicates the CPU supports 256-bit AVX2 compares.
	DispatchAVX2

	// DispatchAVX512 indicates the CPU supports 512-bit AVX-512 compares.
	DispatchAVX512

	// DispatchNEON indicates the CPU supports 128-bit ARM NEON compares.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD tier for this runtime. Set by
// init() in dispatch_*.go.
var currentLevel DispatchLevel

// currentWidth is the vector register width in bytes for currentLevel.
var currentWidth int

// CurrentLevel returns the SIMD tier a page scan would use on this CPU.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes for the
// current tier (16 for NEON/scalar, 32 for AVX2, 64 for AVX-512).
func CurrentWidth() int {
	return currentWidth
}

// CurrentName is a convenience wrapper around CurrentLevel().String().
func CurrentName() string {
	return currentLevel.String()
}

// HasSIMD reports whether hardware SIMD acceleration is in effect.
func HasSIMD() bool {
	return currentLevel != DispatchScalar
}

// NoSimdEnv checks the VECSCAN_NO_SIMD environment variable, which
// forces scalar mode regardless of detected CPU features. Useful for
// deterministically exercising the scalar/SIMD parity tests and for
// debugging.
func NoSimdEnv() bool {
	val := os.Getenv("VECSCAN_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the maximum number of T lanes a single vector can
// hold at the current dispatch width.
func MaxLanes[T Key]() int {
	var zero T
	elemSize := sizeOf(zero)
	if elemSize == 0 {
		return 0
	}
	return currentWidth / elemSize
}
