// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"fmt"
	"os"
	"strings"
)

type (
	// Requirement is one entry of the requirements manifest.
	Requirement struct {
		// Name is the bare distribution name, stripped of version
		// constraints, extras, and environment markers.
		Name string

		// Raw is the original specifier line, preserved for the bulk
		// install and for diagnostics.
		Raw string

		// Line is the 1-based line number in the manifest.
		Line int
	}

	// Manifest is the parsed requirements file.
	Manifest struct {
		// Path is the manifest file location.
		Path string

		// Requirements are the parsed entries, in file order.
		Requirements []Requirement
	}
)

// ReadManifest parses the requirements file at path. A missing file is
// reported via os.IsNotExist on the returned error; callers treat that case
// as a warning, not a failure.
func ReadManifest(path string) (*Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read requirements file %s: %w", path, err)
	}
	return &Manifest{
		Path:         path,
		Requirements: ParseRequirements(content),
	}, nil
}

// ParseRequirements parses requirements.txt content. Blank lines, comment
// lines (leading #), and pip option lines (leading -) are skipped; every
// other line is reduced to a bare distribution name.
func ParseRequirements(content []byte) []Requirement {
	var reqs []Requirement

	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		// Option lines like "-r other.txt" or "--index-url ..." carry no
		// distribution name to check.
		if strings.HasPrefix(trimmed, "-") {
			continue
		}

		name := bareName(trimmed)
		if name == "" {
			continue
		}
		reqs = append(reqs, Requirement{
			Name: name,
			Raw:  trimmed,
			Line: i + 1,
		})
	}

	return reqs
}

// bareName reduces a PEP 508 requirement specifier to the distribution
// name: "numpy>=1.20" -> "numpy", "uvicorn[standard]" -> "uvicorn",
// "tomli; python_version < '3.11'" -> "tomli".
func bareName(spec string) string {
	// Inline comment.
	if idx := strings.Index(spec, " #"); idx >= 0 {
		spec = spec[:idx]
	}
	// Environment marker.
	if idx := strings.IndexByte(spec, ';'); idx >= 0 {
		spec = spec[:idx]
	}
	// Extras.
	if idx := strings.IndexByte(spec, '['); idx >= 0 {
		spec = spec[:idx]
	}
	// Version constraint operators: ==, >=, <=, ~=, !=, ===, >, <.
	if idx := strings.IndexAny(spec, "=<>!~"); idx >= 0 {
		spec = spec[:idx]
	}
	// "name @ url" direct references.
	if idx := strings.Index(spec, " @"); idx >= 0 {
		spec = spec[:idx]
	}
	return strings.TrimSpace(spec)
}
