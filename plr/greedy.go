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

type greedyState int

const (
	greedyNeed2 greedyState = iota
	greedyNeed1
	greedyReady
)

// Greedy performs an online piecewise linear regression using constant
// time and space per point. Because it greedily extends the current
// segment as far as the cone of feasible slopes allows, it may emit
// more segments than the minimum; for the minimum segment count, see
// Optimal.
//
// A Greedy value is exclusively owned by its caller; call Process for
// each point in x order and Finish once to flush the final segment.
// Behavior for a non-monotone x stream is defined per point (every
// emitted segment still satisfies the gamma bound) but segments may
// overlap in x; callers relying on Segment.Contains for indexing must
// supply sorted x.
type Greedy struct {
	state  greedyState
	gamma  float64
	s0, s1 Point
	sInt   Point
	rhoLo  Line
	rhoHi  Line
}

// NewGreedy constructs a Greedy regressor with maximum error gamma.
// gamma must be strictly positive.
func NewGreedy(gamma float64) (*Greedy, error) {
	if gamma <= 0 {
		return nil, ErrDomainViolation
	}
	return &Greedy{state: greedyNeed2, gamma: gamma}, nil
}

func (g *Greedy) setup() error {
	// rhoHi bounds the steepest feasible line: lower(s0) to upper(s1).
	s0Lower, err := g.s0.LowerBound(g.gamma)
	if err != nil {
		return err
	}
	s1Upper, err := g.s1.UpperBound(g.gamma)
	if err != nil {
		return err
	}
	g.rhoHi = s0Lower.LineTo(s1Upper)

	// rhoLo bounds the shallowest feasible line: upper(s0) to lower(s1).
	s0Upper, err := g.s0.UpperBound(g.gamma)
	if err != nil {
		return err
	}
	s1Lower, err := g.s1.LowerBound(g.gamma)
	if err != nil {
		return err
	}
	g.rhoLo = s0Upper.LineTo(s1Lower)

	g.sInt = Intersection(g.rhoLo, g.rhoHi)
	return nil
}

func (g *Greedy) currentSegment(end float64) Segment {
	slope := AverageSlope(g.rhoLo, g.rhoHi)
	intercept := -slope*g.sInt.X + g.sInt.Y
	return Segment{
		Start:     g.s0.X,
		Stop:      end,
		Slope:     slope,
		Intercept: intercept,
	}
}

func (g *Greedy) processPt(pt Point) (Segment, bool, error) {
	if !(pt.Above(g.rhoLo) && pt.Below(g.rhoHi)) {
		seg := g.currentSegment(pt.X)
		g.s0 = pt
		g.state = greedyNeed1
		return seg, true, nil
	}

	upper, err := pt.UpperBound(g.gamma)
	if err != nil {
		return Segment{}, false, err
	}
	lower, err := pt.LowerBound(g.gamma)
	if err != nil {
		return Segment{}, false, err
	}

	if upper.Below(g.rhoHi) {
		g.rhoHi = g.sInt.LineTo(upper)
	}
	if lower.Above(g.rhoLo) {
		g.rhoLo = g.sInt.LineTo(lower)
	}
	return Segment{}, false, nil
}

// Process consumes a single (x, y) point. It returns a Segment when the
// current segment cannot be extended to cover the point (in which case
// the segment just completed is returned), or ok == false if the point
// was absorbed into the segment being built.
func (g *Greedy) Process(x, y float64) (Segment, bool, error) {
	pt := NewPoint(x, y)

	switch g.state {
	case greedyNeed2:
		g.s0 = pt
		g.state = greedyNeed1
		return Segment{}, false, nil
	case greedyNeed1:
		g.s1 = pt
		if err := g.setup(); err != nil {
			return Segment{}, false, err
		}
		g.state = greedyReady
		return Segment{}, false, nil
	default: // greedyReady
		seg, ok, err := g.processPt(pt)
		if err != nil {
			return Segment{}, false, err
		}
		return seg, ok, nil
	}
}

// Finish flushes any buffered points, returning a final Segment whose
// Stop is +Inf, or ok == false if no point was ever processed.
func (g *Greedy) Finish() (Segment, bool) {
	switch g.state {
	case greedyNeed2:
		return Segment{}, false
	case greedyNeed1:
		return Segment{
			Start:     g.s0.X,
			Stop:      math.Inf(1),
			Slope:     0,
			Intercept: g.s0.Y,
		}, true
	default: // greedyReady
		return g.currentSegment(math.Inf(1)), true
	}
}
