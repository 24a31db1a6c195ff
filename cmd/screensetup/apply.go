package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kenoh/screensetup/internal/profile"
	"github.com/kenoh/screensetup/internal/runner"
	"github.com/kenoh/screensetup/internal/x11"
)

var dryRun bool

var applyCmd = &cobra.Command{
	Use:   "apply <profile>",
	Short: "Activate a display profile",
	Long: `Activate the named profile: run its pre hook, arrange outputs per
display group (turning off connected outputs the profile does not
mention), bind i3 workspaces, propagate the DPI and run the post hook.

With --dry-run the full plan is printed and nothing is executed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		var run runner.Runner
		if dryRun {
			run = runner.NewDryRunner(os.Stdout)
		} else {
			run = runner.NewExecRunner()
		}

		outputs, cleanup := connectOutputs()
		defer cleanup()

		return profile.NewExecutor(cfg, outputs, run, home).Apply(args[0])
	},
}

func init() {
	applyCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the plan without executing anything")
}

// connectOutputs opens an X connection for output enumeration. When no
// X session is reachable the executor degrades to arranging without
// off-commands, so the failure is not fatal here.
func connectOutputs() (profile.OutputLister, func()) {
	conn, err := x11.NewConnection()
	if err != nil {
		log.Warn().Err(err).Msg("failed to connect to X11; connected outputs unknown")
		return unavailableOutputs{err: err}, func() {}
	}
	return conn, conn.Close
}

type unavailableOutputs struct {
	err error
}

func (u unavailableOutputs) ConnectedOutputs() ([]string, error) {
	return nil, u.err
}
