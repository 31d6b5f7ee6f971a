package attributes

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IsZero reports whether the set is empty. yaml.v3 consults it for
// omitempty; Set has no exported fields to inspect.
func (s Set) IsZero() bool {
	return len(s.values) == 0
}

// MarshalYAML encodes the set as a mapping; yaml.v3 sorts the keys.
func (s Set) MarshalYAML() (interface{}, error) {
	return s.Map(), nil
}

// UnmarshalYAML decodes a mapping of scalars. Non-string scalars keep their
// source text, so `size: 10, 20` and `size: "10, 20"` are equivalent.
func (s *Set) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("attributes: expected mapping, got %s", kindName(node.Kind))
	}
	m := make(map[string]string, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("attributes: value of %q at line %d is not a scalar", key.Value, value.Line)
		}
		if value.Tag == "!!null" {
			m[key.Value] = ""
			continue
		}
		m[key.Value] = value.Value
	}
	s.values = m
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
