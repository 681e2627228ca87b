package params

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	ScenarioFile  = "scenario.yaml"
	ConstantsFile = "constants.yaml"
)

// Load reads a scenario from a YAML file. Keys absent from the file keep
// their Defaults() values.
func Load(path string) (ParameterSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ParameterSet{}, fmt.Errorf("reading scenario file: %w", err)
	}
	return Parse(data)
}

// Parse decodes scenario YAML over the default parameter set.
func Parse(data []byte) (ParameterSet, error) {
	p := Defaults()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return ParameterSet{}, fmt.Errorf("parsing scenario YAML: %w", err)
	}
	p.Normalize()
	return p, nil
}

// LoadConstants reads constant overrides from a YAML file over
// DefaultConstants().
func LoadConstants(path string) (Constants, error) {
	c := DefaultConstants()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading constants file: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing constants YAML: %w", err)
	}
	return c, nil
}

// LoadProject loads scenario.yaml and, when present, constants.yaml from
// the given directory.
func LoadProject(projectDir string) (ParameterSet, Constants, error) {
	p, err := Load(filepath.Join(projectDir, ScenarioFile))
	if err != nil {
		return ParameterSet{}, Constants{}, err
	}

	c, err := LoadConstants(filepath.Join(projectDir, ConstantsFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ParameterSet{}, Constants{}, err
	}
	return p, c, nil
}

// Normalize fills fields whose zero value is not meaningful. Loaders call
// it; callers that decode a ParameterSet themselves should too.
func (p *ParameterSet) Normalize() {
	if p.Orbital.Sizing == "" {
		p.Orbital.Sizing = SizingReplace
	}
	if p.Thermal.OrbitSamples <= 0 {
		p.Thermal.OrbitSamples = DefaultOrbitSamples
	}
}
