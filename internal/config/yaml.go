package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// The `displays` key supports either:
//
//	displays:
//	  LVDS1:
//	    mode: 1920x1080
//
// or a sequence of such mappings, each compiled into its own
// arrangement command:
//
//	displays:
//	  - LVDS1: {mode: 1920x1080}
//	  - HDMI1: {mode: 1920x1080}
func (d *DisplayGroups) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		*d = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*d = nil
			return nil
		}
		return fmt.Errorf("displays must be a mapping or a list of mappings")
	case yaml.MappingNode:
		var group DisplayGroup
		if err := value.Decode(&group); err != nil {
			return err
		}
		*d = DisplayGroups{group}
		return nil
	case yaml.SequenceNode:
		out := make(DisplayGroups, 0, len(value.Content))
		for _, item := range value.Content {
			var group DisplayGroup
			if err := item.Decode(&group); err != nil {
				return err
			}
			out = append(out, group)
		}
		*d = out
		return nil
	default:
		return fmt.Errorf("displays must be a mapping or a list of mappings")
	}
}

// A display group is a mapping of output names to option mappings.
// Mapping order is significant (it becomes command token order), so the
// decode walks the yaml nodes directly instead of going through a map.
func (g *DisplayGroup) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("display group must be a mapping of output names")
	}
	out := make(DisplayGroup, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valNode := value.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("output names must be strings")
		}
		oc := OutputConfig{Name: keyNode.Value}
		// A null output value means "use defaults with no overrides".
		if !isNullNode(valNode) {
			if err := valNode.Decode(&oc.Options); err != nil {
				return fmt.Errorf("output %q: %w", keyNode.Value, err)
			}
		}
		out = append(out, oc)
	}
	*g = out
	return nil
}

// Options decode from a mapping of flag names to scalar values. A null
// value marks an argument-less flag and survives into the merge.
func (o *Options) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		*o = nil
		return nil
	case yaml.MappingNode:
	default:
		return fmt.Errorf("output options must be a mapping")
	}
	out := make(Options, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valNode := value.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("option names must be strings")
		}
		opt := Option{Name: keyNode.Value}
		switch {
		case isNullNode(valNode):
			// Argument-less flag.
		case valNode.Kind == yaml.ScalarNode:
			v := valNode.Value
			opt.Value = &v
		default:
			return fmt.Errorf("option %q must be a scalar or null", keyNode.Value)
		}
		out = append(out, opt)
	}
	*o = out
	return nil
}

func isNullNode(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}
