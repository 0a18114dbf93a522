// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"

	stdinPath = "-"
	zstSuffix = ".zst"
	matrixKey = "matrix"
)

var errStdinRepeated = errors.New(`"-" (stdin) may be given only once`)

// stdinOnce is a cobra.PositionalArgs rejecting more than one "-" argument.
func stdinOnce(_ *cobra.Command, args []string) error {
	var seen bool
	for _, arg := range args {
		if arg != stdinPath {
			continue
		}
		if seen {
			return errStdinRepeated
		}
		seen = true
	}

	return nil
}

// readMatrix loads one matrix from path ("-" reads stdin).
func readMatrix(path string, stdin io.Reader) (*matrix.Dense, error) {
	raw, err := readSource(path, stdin)
	if err != nil {
		return nil, err
	}

	var doc any
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%s: decode yaml: %w", path, err)
	}
	if wrapped, ok := doc.(map[string]any); ok {
		inner, found := wrapped[matrixKey]
		if !found {
			return nil, fmt.Errorf("%s: mapping without %q key: %w", path, matrixKey, matrix.ErrInvalidArgument)
		}
		doc = inner
	}

	m, err := matrix.FromAny(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

func readSource(path string, stdin io.Reader) ([]byte, error) {
	var (
		raw []byte
		err error
	)
	if path == stdinPath {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !strings.HasSuffix(path, zstSuffix) {
		return raw, nil
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	out, err := dec.DecodeAll(raw, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}

	return out, nil
}

// writeMatrixFile stores m as YAML, zstd-compressed when path ends in ".zst".
func writeMatrixFile(path string, m *matrix.Dense) error {
	var buf bytes.Buffer
	if err := encodeYAML(&buf, m.ToSlices()); err != nil {
		return err
	}
	data := buf.Bytes()

	if strings.HasSuffix(path, zstSuffix) {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return err
		}
		data = enc.EncodeAll(data, nil)
		if err = enc.Close(); err != nil {
			return err
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func writeMatrix(w io.Writer, m *matrix.Dense, format string) error {
	if format == formatYAML {
		return encodeYAML(w, m.ToSlices())
	}
	_, err := fmt.Fprintln(w, m)

	return err
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
