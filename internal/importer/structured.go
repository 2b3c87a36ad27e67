package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// document is the envelope form: {"recipes": [...]}.
type document struct {
	Recipes []entry `json:"recipes" yaml:"recipes"`
}

type entry struct {
	Name         string   `json:"name" yaml:"name"`
	Ingredients  textList `json:"ingredients" yaml:"ingredients"`
	Instructions textList `json:"instructions" yaml:"instructions"`
}

// textList accepts either a single string or a list of strings.
type textList []string

func (l *textList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.New("expected a string or a list of strings")
	}
	*l = textList{s}
	return nil
}

func (l *textList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*l = textList{value.Value}
		return nil
	}
	var list []string
	if err := value.Decode(&list); err != nil {
		return errors.New("expected a string or a list of strings")
	}
	*l = list
	return nil
}

// readJSON accepts a top-level array or a {"recipes": [...]} object. Comments
// and trailing commas are allowed.
func readJSON(r io.Reader) ([]record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read json: %w", err)
	}
	stripped := bytes.TrimSpace(jsonc.ToJSON(data))

	var entries []entry
	if len(stripped) > 0 && stripped[0] == '[' {
		err = json.Unmarshal(stripped, &entries)
	} else {
		var doc document
		err = json.Unmarshal(stripped, &doc)
		entries = doc.Recipes
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse json: %w", err)
	}
	return toRecords(entries), nil
}

// readYAML accepts a top-level sequence or a mapping with a recipes key.
func readYAML(r io.Reader) ([]record, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	var entries []entry
	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind == yaml.SequenceNode {
		if err := node.Decode(&entries); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	} else {
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
		entries = doc.Recipes
	}
	return toRecords(entries), nil
}

func toRecords(entries []entry) []record {
	records := make([]record, 0, len(entries))
	for i, e := range entries {
		records = append(records, record{
			Row:          i + 1,
			Name:         e.Name,
			Ingredients:  e.Ingredients,
			Instructions: e.Instructions,
		})
	}
	return records
}
