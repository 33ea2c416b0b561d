// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lanetsp/matrix"
)

// Scenario is a distance matrix tagged with an id, in the form read and
// written by the CLI.
//
//	id: 7
//	matrix:
//	  - [0, 10, 15]
//	  - [10, 0, 35]
//	  - [15, 35, 0]
type Scenario struct {
	ID     uint32     `yaml:"id"`
	Matrix [][]uint32 `yaml:"matrix"`
}

// NewScenario captures d under id.
func NewScenario(id uint32, d *matrix.Distance) Scenario {
	return Scenario{ID: id, Matrix: d.Rows()}
}

// ScenarioFor generates the canonical matrix of remote scenario (nodes, id):
// symmetric, weights in [MinScenarioWeight, MaxScenarioWeight], seeded by
// ScenarioSeed.
func ScenarioFor(nodes int, id uint32) (Scenario, error) {
	d, err := Random(nodes,
		WithSeed(ScenarioSeed(nodes, id)),
		WithWeightFn(ScenarioWeightFn),
		WithSymmetric(true),
	)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: nodes=%d id=%d: %w", methodScenario, nodes, id, err)
	}

	return NewScenario(id, d), nil
}

// Distance converts the scenario to a matrix.
func (s Scenario) Distance() (*matrix.Distance, error) {
	d, err := matrix.FromRows(s.Matrix)
	if err != nil {
		return nil, fmt.Errorf("%s %d: %v: %w", methodScenario, s.ID, err, ErrBadScenario)
	}

	return d, nil
}

// ReadScenario decodes one YAML scenario document from r and validates its shape.
func ReadScenario(r io.Reader) (Scenario, error) {
	var s Scenario
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return Scenario{}, fmt.Errorf("ReadScenario: %v: %w", err, ErrBadScenario)
	}
	if _, err := s.Distance(); err != nil {
		return Scenario{}, fmt.Errorf("ReadScenario: %w", err)
	}

	return s, nil
}

// LoadScenario reads a scenario file.
func LoadScenario(path string) (Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("LoadScenario: %w", err)
	}
	defer f.Close()

	return ReadScenario(f)
}

// WriteScenario encodes s as YAML with each matrix row on one line.
func WriteScenario(w io.Writer, s Scenario) error {
	rows := make([]*yaml.Node, len(s.Matrix))
	for i, row := range s.Matrix {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range row {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(v)})
		}
		rows[i] = seq
	}
	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "id"},
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(s.ID)},
			{Kind: yaml.ScalarNode, Value: "matrix"},
			{Kind: yaml.SequenceNode, Content: rows},
		},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("WriteScenario: %w", err)
	}

	return enc.Close()
}
