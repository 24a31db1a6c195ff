package profile

import (
	"strconv"

	"github.com/kenoh/screensetup/internal/config"
)

const xrandrCommand = "xrandr"

// ResolvedOutput is an output with its fully merged option set, ready
// to compile. Computed fresh per activation and discarded afterwards.
type ResolvedOutput struct {
	Name    string
	Options config.Options
}

// ResolveGroup merges every output of one display group against the
// default setup's options for that output.
func ResolveGroup(group config.DisplayGroup, defaults *config.Setup) []ResolvedOutput {
	out := make([]ResolvedOutput, 0, len(group))
	for _, oc := range group {
		defaultOpts, _ := defaults.OptionsFor(oc.Name)
		out = append(out, ResolvedOutput{
			Name:    oc.Name,
			Options: MergeOptions(oc.Options, defaultOpts),
		})
	}
	return out
}

// CompileOutput produces the argument block for a single output:
// `--output NAME`, each option as `--name [value]` (the value is
// omitted for argument-less flags, never the flag itself), and
// `--dpi N` when dpi is supplied (> 0).
func CompileOutput(name string, opts config.Options, dpi int) []string {
	args := []string{"--output", name}
	for _, opt := range opts {
		args = append(args, "--"+opt.Name)
		if opt.Value != nil {
			args = append(args, *opt.Value)
		}
	}
	if dpi > 0 {
		args = append(args, "--dpi", strconv.Itoa(dpi))
	}
	return args
}

// CompileGroup produces the full argument sequence for one display
// group: first an explicit `--output NAME --off` for every connected
// output the group does not mention, then the per-output blocks in
// declaration order.
func CompileGroup(resolved []ResolvedOutput, connected []string, dpi int) []string {
	mentioned := make(map[string]bool, len(resolved))
	for _, ro := range resolved {
		mentioned[ro.Name] = true
	}

	var args []string
	for _, name := range connected {
		if mentioned[name] {
			continue
		}
		args = append(args, "--output", name, "--off")
	}
	for _, ro := range resolved {
		args = append(args, CompileOutput(ro.Name, ro.Options, dpi)...)
	}
	return args
}
