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
	"testing"

	"github.com/stretchr/testify/require"
)

func toKnots(data []xy) []Knot {
	knots := make([]Knot, len(data))
	for i, pt := range data {
		knots[i] = Knot{X: pt.x, Y: pt.y}
	}
	return knots
}

func TestSplineSin(t *testing.T) {
	data := sinData()
	knots, err := Build(toKnots(data), 0.0005)
	require.NoError(t, err)
	require.Less(t, len(knots), 500)
	verifyGammaSplines(t, 0.0005, data, knots)
}

func TestSplineLinear(t *testing.T) {
	data := linearData(10.0, 25.0)
	knots, err := Build(toKnots(data), 0.0005)
	require.NoError(t, err)
	require.Equal(t, 2, len(knots))
	verifyGammaSplines(t, 0.0005, data, knots)
}

func TestSplinePrecision(t *testing.T) {
	data := precisionData()
	knots, err := Build(toKnots(data), 0.0005)
	require.NoError(t, err)
	require.Equal(t, 2, len(knots))
	verifyGammaSplines(t, 0.0005, data, knots)
}

func TestSplineOSMScale(t *testing.T) {
	data := osmScaleData()
	knots, err := Build(toKnots(data), 64.0)
	require.NoError(t, err)
	verifyGammaSplines(t, 64.0, data, knots)
}

func TestSplineRejectsTooFewPoints(t *testing.T) {
	_, err := Build([]Knot{{X: 1, Y: 1}}, 1.0)
	require.ErrorIs(t, err, ErrDomainViolation)
}

func TestSplineRejectsNonIncreasingX(t *testing.T) {
	sp, err := NewSpline(0, 0, 1.0)
	require.NoError(t, err)

	_, _, err = sp.Process(1, 1)
	require.NoError(t, err)

	_, _, err = sp.Process(1, 2)
	require.ErrorIs(t, err, ErrDomainViolation)
}

func TestSplineFirstKnotNotReplayed(t *testing.T) {
	sp, err := NewSpline(0, 0, 1.0)
	require.NoError(t, err)

	knot, ok, err := sp.Process(1, 1)
	require.NoError(t, err)
	require.False(t, ok)
	require.Zero(t, knot)
}
