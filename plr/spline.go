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

import "math"

// Knot is a control point (X, Y) anchoring a piecewise-linear spline
// interpolation.
type Knot struct {
	X, Y float64
}

// Spline is an online greedy spline-knot extractor: it maintains a
// slope corridor around the last committed knot and widens or narrows
// it as points arrive, emitting a new knot only when the corridor can
// no longer accommodate the stream.
//
// The first point passed to NewSpline is not replayed by Process but
// must still be treated as the spline's first knot by the caller (see
// Build, which does this bookkeeping automatically).
type Spline struct {
	err     float64
	pt1     Point
	pt2     Point
	hasPt2  bool
	lastX   float64
	slopeLB float64
	slopeUB float64
}

// NewSpline constructs a Spline regressor whose first knot is (x, y)
// and whose maximum interpolation error is err. err must be strictly
// positive.
func NewSpline(x, y, err float64) (*Spline, error) {
	if err <= 0 {
		return nil, ErrDomainViolation
	}
	return &Spline{
		err:     err,
		pt1:     NewPoint(x, y),
		lastX:   x,
		slopeLB: math.Inf(-1),
		slopeUB: math.Inf(1),
	}, nil
}

// Process consumes a single (x, y) point, which must have a strictly
// greater x than the point passed to NewSpline and every previously
// processed point (ErrDomainViolation is returned otherwise). It returns
// a new Knot when the corridor can no longer accommodate the point, or
// ok == false if the point was absorbed into the corridor.
func (s *Spline) Process(x, y float64) (Knot, bool, error) {
	if x <= s.lastX {
		return Knot{}, false, ErrDomainViolation
	}
	s.lastX = x
	pt := NewPoint(x, y)

	if !s.hasPt2 {
		upper, err := pt.UpperBound(s.err)
		if err != nil {
			return Knot{}, false, err
		}
		lower, err := pt.LowerBound(s.err)
		if err != nil {
			return Knot{}, false, err
		}
		s.pt2 = pt
		s.hasPt2 = true
		s.slopeUB = s.pt1.LineTo(upper).Slope()
		s.slopeLB = s.pt1.LineTo(lower).Slope()
		return Knot{}, false, nil
	}

	if x <= s.pt2.X {
		return Knot{}, false, ErrDomainViolation
	}

	upper, err := pt.UpperBound(s.err)
	if err != nil {
		return Knot{}, false, err
	}
	lower, err := pt.LowerBound(s.err)
	if err != nil {
		return Knot{}, false, err
	}

	potentialUpper := s.pt1.LineTo(upper).Slope()
	potentialMid := s.pt1.LineTo(pt).Slope()
	potentialLower := s.pt1.LineTo(lower).Slope()

	if potentialMid >= s.slopeUB || potentialMid <= s.slopeLB {
		knot := Knot{X: s.pt2.X, Y: s.pt2.Y}
		s.pt1 = s.pt2
		s.slopeLB = math.Inf(-1)
		s.slopeUB = math.Inf(1)
		s.hasPt2 = false
		return knot, true, nil
	}

	s.pt2 = pt
	s.slopeLB = math.Max(s.slopeLB, potentialLower)
	s.slopeUB = math.Min(s.slopeUB, potentialUpper)
	return Knot{}, false, nil
}

// Finish returns the final knot of the spline: the staged point if one
// is pending, otherwise the last committed point.
func (s *Spline) Finish() Knot {
	if s.hasPt2 {
		return Knot{X: s.pt2.X, Y: s.pt2.Y}
	}
	return Knot{X: s.pt1.X, Y: s.pt1.Y}
}

// Build learns a spline regression over data (sorted, strictly
// increasing x) with the given error bound, returning every knot from
// data[0] through the final Finish knot. data must contain at least
// two points.
func Build(data []Knot, err float64) ([]Knot, error) {
	if len(data) < 2 {
		return nil, ErrDomainViolation
	}
	if len(data) == 2 {
		return []Knot{data[0], data[1]}, nil
	}

	sp, buildErr := NewSpline(data[0].X, data[0].Y, err)
	if buildErr != nil {
		return nil, buildErr
	}

	knots := make([]Knot, 0, len(data)/4+2)
	knots = append(knots, data[0])

	for _, pt := range data[1:] {
		knot, ok, procErr := sp.Process(pt.X, pt.Y)
		if procErr != nil {
			return nil, procErr
		}
		if ok {
			knots = append(knots, knot)
		}
	}
	knots = append(knots, sp.Finish())
	return knots, nil
}
