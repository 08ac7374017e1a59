// File: path.go
// Role: output file naming per configuration.

package render

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPrefix is the file-name stem of degree-distribution figures.
const DefaultPrefix = "degree_distribution_configuration_"

// PathPolicy maps a configuration number to an output file.
type PathPolicy struct {
	// Dir receives the figures.
	Dir string
	// Prefix precedes the 1-based configuration number; empty means DefaultPrefix.
	Prefix string
	// CreateDirs makes Resolve create a missing Dir. When false a missing
	// directory surfaces as an I/O error at render time.
	CreateDirs bool
}

// Path returns <Dir>/<Prefix><i+1>.png for the zero-based configuration i.
func (p PathPolicy) Path(i int) string {
	prefix := p.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return filepath.Join(p.Dir, fmt.Sprintf("%s%d.png", prefix, i+1))
}

// Resolve returns Path(i), creating the directory first when CreateDirs is set.
// Errors from MkdirAll are wrapped with the directory.
func (p PathPolicy) Resolve(i int) (string, error) {
	if p.CreateDirs && p.Dir != "" {
		if err := os.MkdirAll(p.Dir, 0o755); err != nil {
			return "", fmt.Errorf("render: create %s: %w", p.Dir, err)
		}
	}

	return p.Path(i), nil
}
