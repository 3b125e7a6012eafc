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

package plr

import (
	"math"
	"testing"
)

type xy struct{ x, y float64 }

// sinData is 1000 points of (i/1000*7, sin(i/1000*7)): smooth but
// curved enough to force many segments at a tight gamma.
func sinData() []xy {
	data := make([]xy, 0, 1000)
	for i := 0; i < 1000; i++ {
		x := float64(i) / 1000.0 * 7.0
		data = append(data, xy{x: x, y: math.Sin(x)})
	}
	return data
}

// linearData is y = slope*x + intercept over 10 closely spaced points;
// any gamma should yield a single segment.
func linearData(slope, intercept float64) []xy {
	data := make([]xy, 0, 10)
	for i := 0; i < 10; i++ {
		x := float64(i) / 1000.0
		data = append(data, xy{x: x, y: x*slope + intercept})
	}
	return data
}

// precisionData is a perfectly linear stream at x magnitudes near 2^60,
// where naive binary64 slope arithmetic cancels catastrophically; it
// exercises the 128-bit precision fallback.
func precisionData() []xy {
	data := make([]xy, 0, 1000)
	for i := 0; i < 1000; i++ {
		x := (float64(i) / 1000.0) * math.Pow(2, 60)
		data = append(data, xy{x: x, y: float64(i)})
	}
	return data
}

// osmScaleData is a large, monotone, real-world-shaped (noisy,
// clustered) key stream in the spirit of OSM location keys, used only
// to smoke-test both regressors at scale, not to assert an exact
// segment count.
func osmScaleData() []xy {
	data := make([]xy, 0, 5000)
	x := 0.0
	for i := 0; i < 5000; i++ {
		x += 1.0 + math.Mod(math.Abs(math.Sin(float64(i))*97), 5)
		y := x*0.37 + 12 + math.Sin(float64(i)/13.0)*3
		data = append(data, xy{x: x, y: y})
	}
	return data
}

func verifyGamma(t *testing.T, gamma float64, data []xy, segments []Segment) {
	t.Helper()
	si := 0
	for _, pt := range data {
		for si < len(segments) && segments[si].Stop <= pt.x {
			si++
		}
		if si >= len(segments) {
			t.Fatalf("no segment covers x=%v", pt.x)
		}
		seg := segments[si]
		if pt.x < seg.Start || pt.x > seg.Stop {
			t.Fatalf("segment [%v, %v) does not cover x=%v", seg.Start, seg.Stop, pt.x)
		}
		pred := seg.Predict(pt.x)
		if math.Abs(pred-pt.y) > gamma {
			t.Fatalf("prediction %v not within gamma (%v) of true value %v at x=%v", pred, gamma, pt.y, pt.x)
		}
	}
}

// splineInterpolate evaluates the piecewise-linear function through
// knots at pt, using the first bracketing pair of knots.
func splineInterpolate(pt float64, knots []Knot) float64 {
	upperIdx := len(knots) - 1
	for i, k := range knots {
		if k.X >= pt {
			upperIdx = i
			break
		}
	}
	if upperIdx == 0 {
		upperIdx = 1
	}
	lowerIdx := upperIdx - 1

	lo := NewPoint(knots[lowerIdx].X, knots[lowerIdx].Y)
	hi := NewPoint(knots[upperIdx].X, knots[upperIdx].Y)
	return lo.LineTo(hi).At(pt).Y
}

func verifyGammaSplines(t *testing.T, gamma float64, data []xy, knots []Knot) {
	t.Helper()
	for _, pt := range data {
		pred := splineInterpolate(pt.x, knots)
		if math.Abs(pred-pt.y) > gamma {
			t.Fatalf("spline prediction %v not within gamma (%v) of true value %v at x=%v", pred, gamma, pt.y, pt.x)
		}
	}
}
