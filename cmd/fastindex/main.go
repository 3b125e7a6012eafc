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

// Command fastindex drives the PLR and FAST cores from the shell, for
// quick inspection of segment counts and bracketing lookups without
// writing a Go program against the libraries directly.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fastindex",
	Short: "PLR and FAST learned-index cores",
	Long: `fastindex exercises the PLR (piecewise linear regression) and
FAST (cache-aligned bracketing search) cores from the command line.

Use 'fastindex [command] --help' for more information about a command.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(plrCmd)
	rootCmd.AddCommand(fastCmd)
}
