package profile

import (
	"github.com/kenoh/screensetup/internal/config"
)

// Built-in option defaults applied to every output before any
// configured layer.
func builtinDefaults() config.Options {
	mode := "1920x1080"
	panning := "0x0"
	return config.Options{
		{Name: "mode", Value: &mode},
		{Name: "panning", Value: &panning},
	}
}

// MergeOptions resolves the final option set for one output by layering
// built-in defaults, the default setup's options for that output, and
// the active profile's options for that output. Later layers win per
// key; null values survive the merge (they compile to argument-less
// flags). The merge is shallow and pure.
func MergeOptions(profileOpts, defaultOpts config.Options) config.Options {
	return builtinDefaults().Overlay(defaultOpts).Overlay(profileOpts)
}
