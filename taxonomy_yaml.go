package gazeseg

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseCodeTaxonomy reads a native-code to canonical-label table from
// YAML, e.g.:
//
//	FIXA: Fixation
//	SACC: Saccade
//
// Lets callers substitute an alternate vocabulary without touching the
// built-in tables.
func ParseCodeTaxonomy(name string, r io.Reader) (*CodeTaxonomy, error) {
	var entries map[string]string
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy %q: %w", name, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("taxonomy %q is empty", name)
	}
	return NewCodeTaxonomy(name, entries), nil
}

// ParseIDTaxonomy reads a native-id to canonical-label table from YAML,
// e.g.:
//
//	1: Fixation
//	2: Saccade
func ParseIDTaxonomy(name string, r io.Reader) (*IDTaxonomy, error) {
	var entries map[int]string
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy %q: %w", name, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("taxonomy %q is empty", name)
	}
	return NewIDTaxonomy(name, entries), nil
}
