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

// hull is an ordered, double-ended sequence of points forming either an
// upper or a lower convex hull of gamma-shifted points. It supports
// append-right (with retraction of points that break convexity),
// bulk pop-left, and indexed iteration. A hull is owned by the segment
// currently being built; Optimal discards and recreates it whenever a
// new segment starts.
type hull struct {
	upper bool
	data  []Point
}

func newUpperHull() *hull {
	return &hull{upper: true}
}

func newLowerHull() *hull {
	return &hull{upper: false}
}

// removeFront discards the first n points in the hull.
func (h *hull) removeFront(n int) {
	h.data = h.data[n:]
}

// push appends pt to the hull, then retracts points from the tail that
// would make the hull non-convex: for an upper hull, the penultimate
// point must not lie above the line through its neighbors; for a lower
// hull, it must not lie below.
func (h *hull) push(pt Point) {
	h.data = append(h.data, pt)

	for len(h.data) > 2 {
		n := len(h.data)
		pt1 := h.data[n-1]
		pt2 := h.data[n-2]
		pt3 := h.data[n-3]

		line := pt1.LineTo(pt3)

		breaksConvexity := (h.upper && pt2.Above(line)) || (!h.upper && pt2.Below(line))
		if !breaksConvexity {
			break
		}

		h.data = append(h.data[:n-2], h.data[n-1])
	}
}

// items returns the hull's points in front-to-back order. The returned
// slice aliases the hull's internal storage and must not be retained
// past the next push/removeFront call.
func (h *hull) items() []Point {
	return h.data
}
