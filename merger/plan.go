package merger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	yaml "go.yaml.in/yaml/v4"

	"github.com/jmattsson/arxtools/arxerrors"
)

// PackagePlan describes one root package to copy.
type PackagePlan struct {
	// Name is the local name of the root package
	Name string `yaml:"name"`
	// Mode pins the clash handling mode for the whole package subtree.
	// When empty, the graceful list decides per nested package.
	Mode Mode `yaml:"mode,omitempty"`
	// Graceful lists the nested package names whose clashes are handled
	// gracefully. Empty means graceful for all.
	Graceful []string `yaml:"graceful,omitempty"`
}

// Plan is a merge plan: the root packages to copy per source document, plus
// the packages whose absence from a source is tolerated.
type Plan struct {
	Packages        []PackagePlan `yaml:"packages"`
	TolerateMissing []string      `yaml:"tolerate_missing,omitempty"`
}

// Tolerates reports whether the plan tolerates name being absent from a
// source document.
func (p *Plan) Tolerates(name string) bool {
	for _, n := range p.TolerateMissing {
		if n == name {
			return true
		}
	}
	return false
}

// Validate checks plan consistency: every package needs a non-empty,
// unique name and a known (or empty) mode.
func (p *Plan) Validate() error {
	if len(p.Packages) == 0 {
		return &arxerrors.PlanError{
			Option:  "packages",
			Message: "plan names no packages to copy",
		}
	}
	seen := make(map[string]bool, len(p.Packages))
	for i, pkg := range p.Packages {
		if pkg.Name == "" {
			return &arxerrors.PlanError{
				Option:  "packages",
				Message: fmt.Sprintf("package %d has no name", i),
			}
		}
		if seen[pkg.Name] {
			return &arxerrors.PlanError{
				Option:  "packages",
				Value:   pkg.Name,
				Message: "duplicate package name",
			}
		}
		seen[pkg.Name] = true
		if pkg.Mode != "" && !IsValidMode(string(pkg.Mode)) {
			return &arxerrors.PlanError{
				Option:  "mode",
				Value:   string(pkg.Mode),
				Message: fmt.Sprintf("unknown merge mode for package %s, valid modes: %v", pkg.Name, ValidModes()),
			}
		}
	}
	return nil
}

// ParsePlan decodes and validates a YAML merge plan. Unknown fields are
// rejected: a typo in a plan must not silently change what gets merged.
func ParsePlan(data []byte) (*Plan, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var plan Plan
	if err := dec.Decode(&plan); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &arxerrors.PlanError{
				Option:  "plan",
				Message: "plan document is empty",
			}
		}
		return nil, &arxerrors.PlanError{
			Option:  "plan",
			Message: "cannot decode plan",
			Cause:   err,
		}
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// LoadPlan reads and parses a YAML merge plan from path.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &arxerrors.PlanError{
			Option:  "plan",
			Value:   path,
			Message: "cannot read plan file",
			Cause:   err,
		}
	}
	return ParsePlan(data)
}
