// Package testoracle loads golden lexing fixtures in either of the two
// formats this repo's tests are authored in: the JSON array-of-pairs shape
// from spec.md §6 ("[input, expected_tokens, input, expected_tokens, ...]")
// and a YAML fixture shape (mirroring lukeod/gosmi's YAML-driven test
// fixtures) for fixtures that are easier to hand-author with comments.
package testoracle

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Case is one (input, expected tokens) pair.
type Case struct {
	Input    string `yaml:"input"`
	Expected []any  `yaml:"expected"`
}

// LoadJSON decodes the spec.md §6 format: a flat JSON array alternating
// input strings and expected token lists.
func LoadJSON(data []byte) ([]Case, error) {
	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("testoracle: decode JSON oracle: %w", err)
	}
	if len(items)%2 != 0 {
		return nil, fmt.Errorf("testoracle: JSON oracle has odd element count %d", len(items))
	}
	cases := make([]Case, 0, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		input, ok := items[i].(string)
		if !ok {
			return nil, fmt.Errorf("testoracle: element %d is not a string input", i)
		}
		expected, ok := items[i+1].([]any)
		if !ok {
			return nil, fmt.Errorf("testoracle: element %d is not a token list", i+1)
		}
		cases = append(cases, Case{Input: input, Expected: expected})
	}
	return cases, nil
}

// LoadYAML decodes a list of {input, expected} fixtures.
func LoadYAML(data []byte) ([]Case, error) {
	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("testoracle: decode YAML oracle: %w", err)
	}
	return cases, nil
}
