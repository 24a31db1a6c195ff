package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kenoh/screensetup/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve profile tools over the Model Context Protocol (stdio)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		outputs, cleanup := connectOutputs()
		defer cleanup()

		return mcp.NewServer(cfg, outputs, home).Run(cmd.Context())
	},
}
