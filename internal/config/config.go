package config

import (
	"fmt"
	"sort"
	"strings"
)

// Option is a single display-tool flag taken from the configuration
// document. A nil Value means the flag takes no argument (YAML null).
type Option struct {
	Name  string
	Value *string
}

// Options is an ordered set of flags for one output. Order follows the
// configuration document and is preserved through merging and into the
// compiled command line.
type Options []Option

// Lookup returns the option with the given name, if present.
func (o Options) Lookup(name string) (Option, bool) {
	for _, opt := range o {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}

// Overlay returns a copy of o with every option from overlay applied.
// An overlaid key replaces the existing entry in place (including
// replacing a concrete value with null); new keys are appended in the
// overlay's own order. No recursive merge.
func (o Options) Overlay(overlay Options) Options {
	out := make(Options, len(o))
	copy(out, o)
	for _, opt := range overlay {
		replaced := false
		for i := range out {
			if out[i].Name == opt.Name {
				out[i] = opt
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, opt)
		}
	}
	return out
}

// OutputConfig pairs a physical output name with its declared options.
type OutputConfig struct {
	Name    string
	Options Options
}

// DisplayGroup is one ordered mapping of outputs to options. Each group
// compiles into a single arrangement command.
type DisplayGroup []OutputConfig

// DisplayGroups is the normalized form of the `displays` key, which
// accepts either a single mapping or a sequence of mappings.
type DisplayGroups []DisplayGroup

// Setup is one named, complete display configuration.
type Setup struct {
	DPI          *int              `yaml:"dpi"`
	Displays     DisplayGroups     `yaml:"displays"`
	Pre          string            `yaml:"pre"`
	Post         string            `yaml:"post"`
	I3Workspaces map[string]string `yaml:"i3workspaces"`
}

// OptionsFor returns the options this setup declares for the given
// output, searching its display groups in order.
func (s *Setup) OptionsFor(output string) (Options, bool) {
	if s == nil {
		return nil, false
	}
	for _, group := range s.Displays {
		for _, oc := range group {
			if oc.Name == output {
				return oc.Options, true
			}
		}
	}
	return nil, false
}

// Workspaces returns the workspace bindings in deterministic order.
func (s *Setup) Workspaces() []WorkspaceBinding {
	if s == nil || len(s.I3Workspaces) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.I3Workspaces))
	for name := range s.I3Workspaces {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]WorkspaceBinding, 0, len(names))
	for _, name := range names {
		out = append(out, WorkspaceBinding{Workspace: name, Output: s.I3Workspaces[name]})
	}
	return out
}

// WorkspaceBinding assigns a workspace to an output.
type WorkspaceBinding struct {
	Workspace string
	Output    string
}

// Config is the validated in-memory form of the configuration document.
// It is loaded once per invocation and read-only thereafter.
type Config struct {
	DefaultSetup *Setup           `yaml:"default_setup"`
	Setups       map[string]Setup `yaml:"setups"`
}

// Setup looks up a named profile.
func (c *Config) Setup(name string) (Setup, bool) {
	s, ok := c.Setups[name]
	return s, ok
}

// ProfileNames returns the configured profile names, sorted.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Setups))
	for name := range c.Setups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidationError reports an invalid configuration value with its
// document path.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate performs structural checks beyond what the strict decode
// already guarantees.
func (c *Config) Validate() error {
	if c.DefaultSetup != nil {
		if err := validateSetup("default_setup", c.DefaultSetup); err != nil {
			return err
		}
	}
	for name, setup := range c.Setups {
		if strings.TrimSpace(name) == "" {
			return &ValidationError{Path: "setups", Err: fmt.Errorf("profile name must not be empty")}
		}
		setup := setup
		if err := validateSetup("setups."+name, &setup); err != nil {
			return err
		}
	}
	return nil
}

func validateSetup(path string, s *Setup) error {
	if s.DPI != nil && *s.DPI <= 0 {
		return &ValidationError{Path: path + ".dpi", Err: fmt.Errorf("dpi must be > 0, got %d", *s.DPI)}
	}
	for i, group := range s.Displays {
		for _, oc := range group {
			if strings.TrimSpace(oc.Name) == "" {
				return &ValidationError{Path: fmt.Sprintf("%s.displays[%d]", path, i), Err: fmt.Errorf("output name must not be empty")}
			}
			for _, opt := range oc.Options {
				if strings.TrimSpace(opt.Name) == "" {
					return &ValidationError{Path: fmt.Sprintf("%s.displays[%d].%s", path, i, oc.Name), Err: fmt.Errorf("option name must not be empty")}
				}
			}
		}
	}
	for ws, output := range s.I3Workspaces {
		if strings.TrimSpace(ws) == "" {
			return &ValidationError{Path: path + ".i3workspaces", Err: fmt.Errorf("workspace name must not be empty")}
		}
		if strings.TrimSpace(output) == "" {
			return &ValidationError{Path: path + ".i3workspaces." + ws, Err: fmt.Errorf("output name must not be empty")}
		}
	}
	return nil
}
