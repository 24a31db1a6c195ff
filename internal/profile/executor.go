// Package profile resolves a named display profile against the
// configuration and drives the resulting pipeline: pre hook, display
// arrangement, workspace binding, DPI propagation, post hook. The
// pipeline is strictly sequential; whether steps are performed or only
// reported is decided by the injected runner.
package profile

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kenoh/screensetup/internal/config"
	"github.com/kenoh/screensetup/internal/logging"
	"github.com/kenoh/screensetup/internal/runner"
)

const i3Command = "i3-msg"

// OutputLister enumerates currently connected physical outputs.
type OutputLister interface {
	ConnectedOutputs() ([]string, error)
}

// Executor activates profiles from a loaded configuration.
type Executor struct {
	cfg     *config.Config
	outputs OutputLister
	run     runner.Runner
	dpi     *DPIApplier
	log     zerolog.Logger
}

// NewExecutor wires an executor. home anchors the xsettingsd file and
// the user init script.
func NewExecutor(cfg *config.Config, outputs OutputLister, run runner.Runner, home string) *Executor {
	return &Executor{
		cfg:     cfg,
		outputs: outputs,
		run:     run,
		dpi:     NewDPIApplier(run, home),
		log:     logging.GetLogger("executor"),
	}
}

// Apply activates the named profile. An unknown profile aborts before
// any side effect; arrangement and workspace failures are logged and
// the pipeline continues; an invalid DPI or a failed settings write is
// fatal.
func (e *Executor) Apply(name string) error {
	setup, ok := e.cfg.Setup(name)
	if !ok {
		return &UnknownProfileError{Name: name, Known: e.cfg.ProfileNames()}
	}

	dpi := DefaultDPI
	if setup.DPI != nil {
		dpi = *setup.DPI
	}
	e.log.Info().Str("profile", name).Int("dpi", dpi).Msg("activating profile")

	if setup.Pre != "" {
		if err := e.run.RunShell(setup.Pre); err != nil {
			e.log.Warn().Err(err).Msg("pre hook failed")
		}
	}

	for i, group := range setup.Displays {
		e.arrange(i, group, dpi)
	}

	for _, b := range setup.Workspaces() {
		msg := fmt.Sprintf("workspace %s; move workspace to output %s", b.Workspace, b.Output)
		if err := e.run.Run(i3Command, msg); err != nil {
			e.log.Warn().Err(err).Str("workspace", b.Workspace).Str("output", b.Output).Msg("workspace binding failed")
		}
	}

	if err := e.dpi.Apply(dpi); err != nil {
		return err
	}

	if setup.Post != "" {
		if err := e.run.RunShell(setup.Post); err != nil {
			e.log.Warn().Err(err).Msg("post hook failed")
		}
	}

	return nil
}

// arrange compiles and runs the arrangement command for one display
// group. A non-zero exit is logged and non-fatal.
func (e *Executor) arrange(index int, group config.DisplayGroup, dpi int) {
	connected, err := e.outputs.ConnectedOutputs()
	if err != nil {
		e.log.Warn().Err(err).Msg("failed to enumerate connected outputs; unmentioned outputs stay untouched")
		connected = nil
	}

	resolved := ResolveGroup(group, e.cfg.DefaultSetup)
	args := CompileGroup(resolved, connected, dpi)
	argv := append([]string{xrandrCommand}, args...)

	if err := e.run.Run(argv...); err != nil {
		e.log.Error().Err(err).Int("group", index).Msg("display arrangement failed")
	}
}
