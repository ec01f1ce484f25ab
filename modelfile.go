package viterbi

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// A ModelFile is the YAML representation of a model with
// string-labelled states and observation symbols.
type ModelFile struct {
	States      []string                      `yaml:"states"`
	Start       map[string]float64            `yaml:"start"`
	Transitions map[string]map[string]float64 `yaml:"transitions"`
	Emissions   map[string]map[string]float64 `yaml:"emissions"`
}

// Model converts the file representation to a Model.
func (f *ModelFile) Model() *Model {
	m := &Model{
		Start:       map[State]float64{},
		Transitions: map[State]map[State]float64{},
		Emissions:   map[State]map[Obs]float64{},
	}
	for _, state := range f.States {
		m.States = append(m.States, state)
	}
	for state, prob := range f.Start {
		m.Start[state] = prob
	}
	for state, row := range f.Transitions {
		dest := map[State]float64{}
		for to, prob := range row {
			dest[to] = prob
		}
		m.Transitions[state] = dest
	}
	for state, row := range f.Emissions {
		dest := map[Obs]float64{}
		for obs, prob := range row {
			dest[obs] = prob
		}
		m.Emissions[state] = dest
	}
	return m
}

// ParseModelYAML decodes a YAML model payload.
//
// Only well-formedness is checked here; structural
// consistency against an observation sequence is the
// decoder's job.
func ParseModelYAML(data []byte) (*Model, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("model: payload is empty")
	}
	var f ModelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("model: decode: %w", err)
	}
	if len(f.States) == 0 {
		return nil, fmt.Errorf("model: no states")
	}
	return f.Model(), nil
}

// LoadModelFile reads a YAML model from disk.
func LoadModelFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("model: read %s: %w", path, err)
	}
	m, err := ParseModelYAML(data)
	if err != nil {
		return nil, fmt.Errorf("model: %s: %w", path, err)
	}
	return m, nil
}
