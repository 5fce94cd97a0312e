package input

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed samples.yaml
var defaultSamples []byte

// SampleFile is the top-level structure of a samples YAML document.
type SampleFile struct {
	Samples []Sample `yaml:"samples"`
}

// Sample is one known input/answer pair.
type Sample struct {
	// Name is an optional label; defaults to "<puzzle> part <part>".
	Name   string `yaml:"name,omitempty"`
	Puzzle string `yaml:"puzzle"`
	Part   int    `yaml:"part"`
	Want   uint64 `yaml:"want"`
	Input  string `yaml:"input"`
}

// Label returns the sample name or a generated one.
func (s Sample) Label() string {
	if s.Name != "" {
		return s.Name
	}

	return fmt.Sprintf("%s part %d", s.Puzzle, s.Part)
}

// LoadSamples loads and parses a YAML samples file from the given path.
func LoadSamples(path string) (*SampleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read samples file %s: %w", path, err)
	}

	return ParseSamples(data)
}

// DefaultSamples returns the embedded sample set.
func DefaultSamples() (*SampleFile, error) {
	return ParseSamples(defaultSamples)
}

// ParseSamples parses YAML data into a SampleFile.
func ParseSamples(data []byte) (*SampleFile, error) {
	var sf SampleFile

	err := yaml.Unmarshal(data, &sf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse samples YAML: %w", err)
	}

	for i, s := range sf.Samples {
		if s.Puzzle == "" {
			return nil, fmt.Errorf("sample %d: puzzle is required", i)
		}

		if s.Part != 1 && s.Part != 2 {
			return nil, fmt.Errorf("sample %d (%s): part must be 1 or 2, got %d", i, s.Puzzle, s.Part)
		}
	}

	return &sf, nil
}
