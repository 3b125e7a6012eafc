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
	"math/big"
)

// extendedPrec is the working precision, in bits, used for the
// catastrophic-cancellation fallbacks in LineThrough, Intersection, and
// AverageSlope. 128 bits comfortably covers binary64's 52-bit mantissa
// with room to spare, matching the "at least 128 bits" the algorithm
// requires to round back to a non-NaN binary64 result.
const extendedPrec = 128

// float64Epsilon is the granularity of 1.0 in binary64 and doubles as
// both the absolute and relative tolerance for RelativeEqual.
const float64Epsilon = 2.220446049250313e-16

// RelativeEqual reports whether a and b are equal up to binary64 rounding
// error, using an absolute check for values near zero and a relative
// check (scaled by the larger magnitude) otherwise. Segment arithmetic
// uses this to decide when two slopes are "the same" and must be
// resolved with extended precision instead of naive subtraction.
func RelativeEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if diff <= float64Epsilon {
		return true
	}
	largest := math.Max(math.Abs(a), math.Abs(b))
	return diff <= largest*float64Epsilon
}

// Point is an immutable (x, y) pair of double-precision reals.
type Point struct {
	X, Y float64
}

// NewPoint constructs a Point from its coordinates.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// UpperBound returns the point shifted up by gamma: (x, y+gamma). It
// returns ErrPrecisionExhausted if gamma is too small relative to y to be
// representable as a distinct binary64 value.
func (p Point) UpperBound(gamma float64) (Point, error) {
	shifted := p.Y + gamma
	if RelativeEqual(p.Y, shifted) {
		return Point{}, ErrPrecisionExhausted
	}
	return Point{X: p.X, Y: shifted}, nil
}

// LowerBound returns the point shifted down by gamma: (x, y-gamma). It
// returns ErrPrecisionExhausted if gamma is too small relative to y to be
// representable as a distinct binary64 value.
func (p Point) LowerBound(gamma float64) (Point, error) {
	shifted := p.Y - gamma
	if RelativeEqual(p.Y, shifted) {
		return Point{}, ErrPrecisionExhausted
	}
	return Point{X: p.X, Y: shifted}, nil
}

// SlopeTo returns the slope of the line from p to other. When the two
// x coordinates are relatively equal (common at very large or very
// small magnitudes), the subtraction is performed in 128-bit precision
// to avoid catastrophic cancellation producing NaN or a wildly
// inaccurate slope.
func (p Point) SlopeTo(other Point) float64 {
	if RelativeEqual(p.X, other.X) {
		x1 := new(big.Float).SetPrec(extendedPrec).SetFloat64(p.X)
		y1 := new(big.Float).SetPrec(extendedPrec).SetFloat64(p.Y)
		x2 := new(big.Float).SetPrec(extendedPrec).SetFloat64(other.X)
		y2 := new(big.Float).SetPrec(extendedPrec).SetFloat64(other.Y)

		num := new(big.Float).SetPrec(extendedPrec).Sub(y1, y2)
		den := new(big.Float).SetPrec(extendedPrec).Sub(x1, x2)
		res := new(big.Float).SetPrec(extendedPrec).Quo(num, den)
		f, _ := res.Float64()
		return f
	}

	return (p.Y - other.Y) / (p.X - other.X)
}

// LineTo returns the Line through p and other.
func (p Point) LineTo(other Point) Line {
	a := p.SlopeTo(other)
	b := -a*p.X + p.Y
	return Line{a: a, b: b}
}

// Above reports whether p lies strictly above l at p.X.
func (p Point) Above(l Line) bool {
	return p.Y > l.At(p.X).Y
}

// Below reports whether p lies strictly below l at p.X.
func (p Point) Below(l Line) bool {
	return p.Y < l.At(p.X).Y
}

// Line is the immutable line y = a*x + b.
type Line struct {
	a, b float64
}

// NewLine constructs a Line directly from a slope and intercept.
func NewLine(slope, intercept float64) Line {
	return Line{a: slope, b: intercept}
}

// Slope returns the line's slope.
func (l Line) Slope() float64 {
	return l.a
}

// Intercept returns the line's y-intercept.
func (l Line) Intercept() float64 {
	return l.b
}

// At evaluates the line at x, returning the point (x, a*x+b).
func (l Line) At(x float64) Point {
	return Point{X: x, Y: l.a*x + l.b}
}

// Intersection returns the point at which l1 and l2 cross. When the two
// slopes are relatively equal, the computation is carried out in
// 128-bit precision before rounding back to binary64, since the naive
// formula divides by a near-zero denominator in that case.
func Intersection(l1, l2 Line) Point {
	a, c := l1.a, l1.b
	b, d := l2.a, l2.b

	if RelativeEqual(a, b) {
		af := new(big.Float).SetPrec(extendedPrec).SetFloat64(a)
		bf := new(big.Float).SetPrec(extendedPrec).SetFloat64(b)
		cf := new(big.Float).SetPrec(extendedPrec).SetFloat64(c)
		df := new(big.Float).SetPrec(extendedPrec).SetFloat64(d)

		denom := new(big.Float).SetPrec(extendedPrec).Sub(af, bf)

		xNum := new(big.Float).SetPrec(extendedPrec).Sub(df, cf)
		xVal := new(big.Float).SetPrec(extendedPrec).Quo(xNum, denom)

		ad := new(big.Float).SetPrec(extendedPrec).Mul(af, df)
		bc := new(big.Float).SetPrec(extendedPrec).Mul(bf, cf)
		yNum := new(big.Float).SetPrec(extendedPrec).Sub(ad, bc)
		yVal := new(big.Float).SetPrec(extendedPrec).Quo(yNum, denom)

		x, _ := xVal.Float64()
		y, _ := yVal.Float64()
		return Point{X: x, Y: y}
	}

	denom := a - b
	x := (d - c) / denom
	y := (a*d - b*c) / denom
	return Point{X: x, Y: y}
}

// AverageSlope returns the average of l1's and l2's slopes. When the
// slopes are relatively equal, the average is computed in 128-bit
// precision to avoid losing the distinction between two nearly-equal
// large magnitudes; otherwise it adds min+max (rather than a+b) to
// mitigate cancellation error.
func AverageSlope(l1, l2 Line) float64 {
	if RelativeEqual(l1.a, l2.a) {
		a1 := new(big.Float).SetPrec(extendedPrec).SetFloat64(l1.a)
		a2 := new(big.Float).SetPrec(extendedPrec).SetFloat64(l2.a)
		sum := new(big.Float).SetPrec(extendedPrec).Add(a1, a2)
		avg := new(big.Float).SetPrec(extendedPrec).Quo(sum, big.NewFloat(2.0))
		f, _ := avg.Float64()
		return f
	}

	return (math.Min(l1.a, l2.a) + math.Max(l1.a, l2.a)) / 2.0
}

// Segment is a half-open interval [Start, Stop) on x together with the
// slope/intercept that predict y as Slope*x + Intercept for any x in
// that interval. Stop may be +Inf for the final segment of a stream.
type Segment struct {
	Start, Stop      float64
	Slope, Intercept float64
}

// Predict evaluates the segment's linear model at x.
func (s Segment) Predict(x float64) float64 {
	return s.Slope*x + s.Intercept
}

// Contains reports whether x falls within the segment's half-open
// interval.
func (s Segment) Contains(x float64) bool {
	return x >= s.Start && x < s.Stop
}
