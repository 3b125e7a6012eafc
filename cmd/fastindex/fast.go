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

	"github.com/go-rmi/fastindex/fast"
	"github.com/go-rmi/fastindex/vecscan"
)

var (
	fastInput   string
	fastQuery   uint64
	fastUseSIMD bool
)

var fastCmd = &cobra.Command{
	Use:   "fast",
	Short: "build a FAST tree from key,value pairs and run a bracketing lookup",
	Long: `fast reads a two-column "key,value" CSV stream (sorted
non-decreasing, unique keys, u64) from --input (or stdin), builds a
cache-aligned FAST tree, and prints the bracketing lookup for --query.`,
	RunE: runFast,
}

func init() {
	fastCmd.Flags().StringVar(&fastInput, "input", "", "path to a csv file of key,value pairs (default stdin)")
	fastCmd.Flags().Uint64Var(&fastQuery, "query", 0, "key to look up")
	fastCmd.Flags().BoolVar(&fastUseSIMD, "simd", false, "use the vector-accelerated lookup path")
}

func runFast(cmd *cobra.Command, args []string) error {
	keys, values, err := readKeyValues(fastInput)
	if err != nil {
		return err
	}

	tree, err := fast.Build(keys, values)
	if err != nil {
		return err
	}

	var lo, hi uint64
	if fastUseSIMD {
		lo, hi = tree.LookupSIMD(fastQuery)
	} else {
		lo, hi = tree.Lookup(fastQuery)
	}

	fmt.Printf("dispatch=%s lookup(%d)=(%d,%d)\n", vecscan.CurrentName(), fastQuery, lo, hi)
	return nil
}

func readKeyValues(path string) ([]uint64, []uint64, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	var keys, values []uint64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ",", 2)
		if len(parts) != 2 {
			return nil, nil, fmt.Errorf("malformed line %q: want key,value", line)
		}
		k, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing key in %q: %w", line, err)
		}
		v, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing value in %q: %w", line, err)
		}
		keys = append(keys, k)
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return keys, values, nil
}
