package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDataset loads a dataset file from the given path.
// A missing problem type defaults to level; a nil follows list is normalised
// to empty.
func LoadDataset(path string) (*DatasetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file %s: %w", path, err)
	}

	df, err := ParseDataset(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset file %s: %w", path, err)
	}
	return df, nil
}

// ParseDataset decodes a YAML dataset document.
func ParseDataset(data []byte) (*DatasetFile, error) {
	var df DatasetFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, err
	}

	if df.Problem == "" {
		df.Problem = ProblemLevel
	}
	if !df.Problem.Valid() {
		return nil, fmt.Errorf("unknown problem %q (want %s or %s)", df.Problem, ProblemMutual, ProblemLevel)
	}

	seen := make(map[int]bool, len(df.Users))
	for i := range df.Users {
		if seen[df.Users[i].ID] {
			return nil, fmt.Errorf("duplicate user id %d", df.Users[i].ID)
		}
		seen[df.Users[i].ID] = true
		if df.Users[i].Follows == nil {
			df.Users[i].Follows = []int{}
		}
	}

	return &df, nil
}

// SaveDataset writes a dataset file to the given path.
func SaveDataset(path string, df *DatasetFile) error {
	data, err := MarshalDataset(df)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write dataset file %s: %w", path, err)
	}
	return nil
}

// MarshalDataset encodes a dataset as YAML. Follows lists are written in
// flow style to keep small graphs readable.
func MarshalDataset(df *DatasetFile) ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(df); err != nil {
		return nil, fmt.Errorf("failed to encode dataset: %w", err)
	}
	flowFollows(&node)

	data, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("failed to encode dataset: %w", err)
	}
	return data, nil
}

// flowFollows switches every "follows" sequence under n to flow style.
func flowFollows(n *yaml.Node) {
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Value == "follows" && n.Content[i+1].Kind == yaml.SequenceNode {
				n.Content[i+1].Style = yaml.FlowStyle
			}
		}
	}
	for _, c := range n.Content {
		flowFollows(c)
	}
}
