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

func runGreedy(t *testing.T, gamma float64, data []xy) []Segment {
	t.Helper()
	g, err := NewGreedy(gamma)
	require.NoError(t, err)

	var segments []Segment
	for _, pt := range data {
		seg, ok, err := g.Process(pt.x, pt.y)
		require.NoError(t, err)
		if ok {
			segments = append(segments, seg)
		}
	}
	if seg, ok := g.Finish(); ok {
		segments = append(segments, seg)
	}
	return segments
}

func TestGreedySin(t *testing.T) {
	data := sinData()
	segments := runGreedy(t, 0.0005, data)
	require.LessOrEqual(t, len(segments), 100)
	verifyGamma(t, 0.0005, data, segments)
}

func TestGreedyLinear(t *testing.T) {
	data := linearData(10.0, 25.0)
	segments := runGreedy(t, 0.00005, data)
	require.Equal(t, 1, len(segments))
	verifyGamma(t, 0.00005, data, segments)
}

func TestGreedyPrecision(t *testing.T) {
	data := precisionData()
	segments := runGreedy(t, 0.00005, data)
	require.Equal(t, 1, len(segments))
	verifyGamma(t, 0.00005, data, segments)
}

func TestGreedyOSMScale(t *testing.T) {
	data := osmScaleData()
	segments := runGreedy(t, 64.0, data)
	verifyGamma(t, 64.0, data, segments)
}

func TestGreedyCoverage(t *testing.T) {
	data := sinData()
	segments := runGreedy(t, 0.0005, data)
	require.NotEmpty(t, segments)

	for i := 1; i < len(segments); i++ {
		require.Equal(t, segments[i-1].Stop, segments[i].Start, "segments must be contiguous")
	}
	require.True(t, segments[len(segments)-1].Stop > data[len(data)-1].x)
}

func TestGreedyRejectsNonPositiveGamma(t *testing.T) {
	_, err := NewGreedy(0)
	require.ErrorIs(t, err, ErrDomainViolation)

	_, err = NewGreedy(-1)
	require.ErrorIs(t, err, ErrDomainViolation)
}

func TestGreedyFinishEmpty(t *testing.T) {
	g, err := NewGreedy(1.0)
	require.NoError(t, err)
	_, ok := g.Finish()
	require.False(t, ok)
}

func TestGreedyFinishSinglePoint(t *testing.T) {
	g, err := NewGreedy(1.0)
	require.NoError(t, err)
	_, ok, err := g.Process(1.0, 5.0)
	require.NoError(t, err)
	require.False(t, ok)

	seg, ok := g.Finish()
	require.True(t, ok)
	require.Equal(t, 1.0, seg.Start)
	require.Equal(t, 0.0, seg.Slope)
	require.Equal(t, 5.0, seg.Intercept)
}
