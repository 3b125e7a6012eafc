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

type optimalState int

const (
	optimalNeed2 optimalState = iota
	optimalNeed1
	optimalReady
)

// Optimal performs an online piecewise linear regression that always
// emits the minimum possible number of segments for the given gamma.
// Each call to Process does amortized linear work (bounded by the
// current segment's convex hull size, not the cumulative stream
// length); for constant per-point work, see Greedy.
//
// An Optimal value is exclusively owned by its caller; call Process
// for each point in x order and Finish once to flush the final
// segment. Behavior for a non-monotone x stream is defined per point
// (every emitted segment still satisfies the gamma bound) but segments
// may overlap in x; callers relying on Segment.Contains for indexing
// must supply sorted x.
type Optimal struct {
	state     optimalState
	gamma     float64
	s0, s1    Point
	rhoLo     Line
	rhoHi     Line
	upperHull *hull
	lowerHull *hull
}

// NewOptimal constructs an Optimal regressor with maximum error gamma.
// gamma must be strictly positive.
func NewOptimal(gamma float64) (*Optimal, error) {
	if gamma <= 0 {
		return nil, ErrDomainViolation
	}
	return &Optimal{state: optimalNeed2, gamma: gamma}, nil
}

func (o *Optimal) setup() error {
	s0Lower, err := o.s0.LowerBound(o.gamma)
	if err != nil {
		return err
	}
	s1Upper, err := o.s1.UpperBound(o.gamma)
	if err != nil {
		return err
	}
	o.rhoHi = s0Lower.LineTo(s1Upper)

	s0Upper, err := o.s0.UpperBound(o.gamma)
	if err != nil {
		return err
	}
	s1Lower, err := o.s1.LowerBound(o.gamma)
	if err != nil {
		return err
	}
	o.rhoLo = s0Upper.LineTo(s1Lower)

	o.upperHull = newUpperHull()
	o.upperHull.push(s0Upper)
	o.upperHull.push(s1Upper)

	o.lowerHull = newLowerHull()
	o.lowerHull.push(s0Lower)
	o.lowerHull.push(s1Lower)

	return nil
}

func (o *Optimal) currentSegment(end float64) Segment {
	sInt := Intersection(o.rhoLo, o.rhoHi)
	slope := AverageSlope(o.rhoLo, o.rhoHi)
	intercept := -slope*sInt.X + sInt.Y
	return Segment{
		Start:     o.s0.X,
		Stop:      end,
		Slope:     slope,
		Intercept: intercept,
	}
}

func (o *Optimal) processPt(pt Point) (Segment, bool, error) {
	if !(pt.Above(o.rhoLo) && pt.Below(o.rhoHi)) {
		seg := o.currentSegment(pt.X)
		o.s0 = pt
		o.state = optimalNeed1
		return seg, true, nil
	}

	upper, err := pt.UpperBound(o.gamma)
	if err != nil {
		return Segment{}, false, err
	}
	lower, err := pt.LowerBound(o.gamma)
	if err != nil {
		return Segment{}, false, err
	}

	if upper.Below(o.rhoHi) {
		items := o.lowerHull.items()
		bestIdx := 0
		bestSlope := math.Inf(1)
		for idx, q := range items {
			s := q.LineTo(upper).Slope()
			if s < bestSlope {
				bestSlope = s
				bestIdx = idx
			}
		}
		o.rhoHi = upper.LineTo(items[bestIdx])
		o.lowerHull.removeFront(bestIdx)
		o.lowerHull.push(lower)
	}

	if lower.Above(o.rhoLo) {
		items := o.upperHull.items()
		bestIdx := 0
		bestSlope := math.Inf(-1)
		for idx, q := range items {
			s := q.LineTo(lower).Slope()
			if s > bestSlope {
				bestSlope = s
				bestIdx = idx
			}
		}
		o.rhoLo = lower.LineTo(items[bestIdx])
		o.upperHull.removeFront(bestIdx)
		o.upperHull.push(upper)
	}

	return Segment{}, false, nil
}

// Process consumes a single (x, y) point. It returns a Segment when the
// current segment cannot be extended to cover the point (in which case
// the segment just completed is returned), or ok == false if the point
// was absorbed into the segment being built.
func (o *Optimal) Process(x, y float64) (Segment, bool, error) {
	pt := NewPoint(x, y)

	switch o.state {
	case optimalNeed2:
		o.s0 = pt
		o.state = optimalNeed1
		return Segment{}, false, nil
	case optimalNeed1:
		o.s1 = pt
		if err := o.setup(); err != nil {
			return Segment{}, false, err
		}
		o.state = optimalReady
		return Segment{}, false, nil
	default: // optimalReady
		return o.processPt(pt)
	}
}

// Finish flushes any buffered points, returning a final Segment whose
// Stop is +Inf, or ok == false if no point was ever processed.
func (o *Optimal) Finish() (Segment, bool) {
	switch o.state {
	case optimalNeed2:
		return Segment{}, false
	case optimalNeed1:
		return Segment{
			Start:     o.s0.X,
			Stop:      math.Inf(1),
			Slope:     0,
			Intercept: o.s0.Y,
		}, true
	default: // optimalReady
		return o.currentSegment(math.Inf(1)), true
	}
}
