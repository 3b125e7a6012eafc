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

// Package plr performs online piecewise linear regression (PLR) over a
// stream of (x, y) points, emitting linear segments whose predictions
// stay within a caller-supplied error bound gamma.
//
// Two regressors are provided: Greedy runs in constant time and space
// per point but may emit more segments than strictly necessary; Optimal
// always emits the minimum possible number of segments at the cost of
// amortized linear memory and per-point convex-hull maintenance. Spline
// produces knot points for a piecewise-linear interpolation instead of
// explicit segments.
//
// Each regressor is single-threaded and exclusively owned by its
// caller; independent regressors may run concurrently across
// goroutines since none share mutable state.
package plr
