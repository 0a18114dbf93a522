// SPDX-License-Identifier: MIT

// Command linalg computes determinants, inverses and products of dense
// matrices stored as YAML files.
package main

import (
	"os"

	"github.com/katalvlaran/linalg/cmd/linalg/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
