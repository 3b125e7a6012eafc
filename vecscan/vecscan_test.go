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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadCapsAtMaxLanes(t *testing.T) {
	src := make([]uint64, 64)
	v := Load(src)
	require.Equal(t, MaxLanes[uint64](), v.NumLanes())

	short := []uint64{1, 2, 3}
	v = Load(short)
	require.Equal(t, 3, v.NumLanes())

	v = Load([]uint64{})
	require.Equal(t, 0, v.NumLanes())
}

func TestLessThanCount(t *testing.T) {
	cases := []struct {
		name  string
		data  []uint64
		query uint64
		want  int
	}{
		{"none", []uint64{5, 6, 7, 8}, 5, 0},
		{"some", []uint64{5, 6, 7, 8}, 7, 2},
		{"all", []uint64{5, 6, 7, 8}, 100, 4},
		{"padding ignored", []uint64{5, ^uint64(0), ^uint64(0)}, 10, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := Load(tc.data)
			require.Equal(t, tc.want, LessThan(v, tc.query).CountTrue())
		})
	}
}

func TestLessEqualCount(t *testing.T) {
	cases := []struct {
		name  string
		data  []uint64
		query uint64
		want  int
	}{
		{"boundary included", []uint64{5, 6, 7, 8}, 7, 3},
		{"below all", []uint64{5, 6, 7, 8}, 4, 0},
		{"padding ignored", []uint64{5, ^uint64(0)}, 10, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := Load(tc.data)
			require.Equal(t, tc.want, LessEqual(v, tc.query).CountTrue())
		})
	}
}

func TestLessThanU32(t *testing.T) {
	v := Load([]uint32{1, 2, 3, ^uint32(0)})
	require.Equal(t, 2, LessThan(v, 3).CountTrue())
	require.Equal(t, 3, LessEqual(v, 3).CountTrue())
}

func TestMaxLanesMatchesWidth(t *testing.T) {
	require.Equal(t, CurrentWidth()/8, MaxLanes[uint64]())
	require.Equal(t, CurrentWidth()/4, MaxLanes[uint32]())
}

func TestDispatchLevelString(t *testing.T) {
	require.Equal(t, "scalar", DispatchScalar.String())
	require.Equal(t, "avx2", DispatchAVX2.String())
	require.Equal(t, "avx512", DispatchAVX512.String())
	require.Equal(t, "neon", DispatchNEON.String())
}
