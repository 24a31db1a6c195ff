package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kenoh/screensetup/internal/config"
	"github.com/kenoh/screensetup/internal/logging"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	verbosity  int
	configPath string

	rootCmd = &cobra.Command{
		Use:   "screensetup",
		Short: "Declarative multi-monitor display profile switcher",
		Long: `screensetup activates named display profiles from a YAML document:
it arranges outputs via xrandr, binds i3 workspaces to outputs,
propagates DPI through xsettingsd and xrdb, and runs user hooks
around the whole pipeline.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default "+config.DefaultConfigPath()+")")

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(outputsCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return config.LoadFromPath(path)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("screensetup %s\n", Version)
	},
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Run: func(cmd *cobra.Command, args []string) {
		path := configPath
		if path == "" {
			path = config.DefaultConfigPath()
		}
		fmt.Println(path)
	},
}
