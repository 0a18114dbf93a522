// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/linalg/matrix"
)

// Config holds defaults for every flag that may also be set from a TOML file.
// Flags given on the command line always win.
//
//	log_level = "info"
//	format    = "yaml"
//
//	[determinant]
//	method = "cofactor"
//	pivot  = "largest"
//
//	[inverse]
//	tolerance = 1e-12
type Config struct {
	LogLevel    LogLevel          `toml:"log_level"`
	Format      string            `toml:"format"`
	Determinant DeterminantConfig `toml:"determinant"`
	Inverse     InverseConfig     `toml:"inverse"`
}

// DeterminantConfig holds the [determinant] defaults for --method and --pivot.
type DeterminantConfig struct {
	Method string `toml:"method"`
	Pivot  string `toml:"pivot"`
}

// InverseConfig holds the [inverse] defaults for --tolerance.
type InverseConfig struct {
	Tolerance float64 `toml:"tolerance"`
}

// DefaultConfig mirrors the library defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: LogLevelWarn,
		Format:   formatText,
		Determinant: DeterminantConfig{
			Method: matrix.DefaultAlgorithm.String(),
			Pivot:  matrix.DefaultPivoting.String(),
		},
		Inverse: InverseConfig{Tolerance: matrix.DefaultSingularTolerance},
	}
}

// LoadConfig decodes a TOML file over DefaultConfig. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	path = os.ExpandEnv(path)

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}
