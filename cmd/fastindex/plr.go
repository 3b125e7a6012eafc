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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-rmi/fastindex/plr"
)

var (
	plrGamma   float64
	plrInput   string
	plrVariant string
)

var plrCmd = &cobra.Command{
	Use:   "plr",
	Short: "extract segments or knots from a sorted x,y point stream",
	Long: `plr reads a two-column "x,y" CSV stream (sorted non-decreasing by
x) from --input (or stdin) and emits the segments or knots produced by
the chosen variant, one per line.`,
	RunE: runPLR,
}

func init() {
	plrCmd.Flags().Float64Var(&plrGamma, "gamma", 0.01, "error bound")
	plrCmd.Flags().StringVar(&plrInput, "input", "", "path to a csv file of x,y points (default stdin)")
	plrCmd.Flags().StringVar(&plrVariant, "variant", "greedy", "greedy|optimal|spline")
}

func runPLR(cmd *cobra.Command, args []string) error {
	points, err := readPoints(plrInput)
	if err != nil {
		return err
	}

	switch plrVariant {
	case "greedy":
		return runGreedyCmd(points)
	case "optimal":
		return runOptimalCmd(points)
	case "spline":
		return runSplineCmd(points)
	default:
		return fmt.Errorf("unknown variant %q: want greedy, optimal, or spline", plrVariant)
	}
}

func runGreedyCmd(points [][2]float64) error {
	g, err := plr.NewGreedy(plrGamma)
	if err != nil {
		return err
	}
	for _, p := range points {
		seg, ok, err := g.Process(p[0], p[1])
		if err != nil {
			return err
		}
		if ok {
			printSegment(seg)
		}
	}
	if seg, ok := g.Finish(); ok {
		printSegment(seg)
	}
	return nil
}

func runOptimalCmd(points [][2]float64) error {
	o, err := plr.NewOptimal(plrGamma)
	if err != nil {
		return err
	}
	for _, p := range points {
		seg, ok, err := o.Process(p[0], p[1])
		if err != nil {
			return err
		}
		if ok {
			printSegment(seg)
		}
	}
	if seg, ok := o.Finish(); ok {
		printSegment(seg)
	}
	return nil
}

func runSplineCmd(points [][2]float64) error {
	knots := make([]plr.Knot, len(points))
	for i, p := range points {
		knots[i] = plr.Knot{X: p[0], Y: p[1]}
	}
	result, err := plr.Build(knots, plrGamma)
	if err != nil {
		return err
	}
	for _, k := range result {
		fmt.Printf("%g,%g\n", k.X, k.Y)
	}
	return nil
}

func printSegment(seg plr.Segment) {
	fmt.Printf("%g,%g,%g,%g\n", seg.Start, seg.Stop, seg.Slope, seg.Intercept)
}

func readPoints(path string) ([][2]float64, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	var points [][2]float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed line %q: want x,y", line)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing x in %q: %w", line, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing y in %q: %w", line, err)
		}
		points = append(points, [2]float64{x, y})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}
