package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kenoh/screensetup/internal/profile"
	"github.com/kenoh/screensetup/internal/x11"
)

var (
	profileStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	detailStyle  = lipgloss.NewStyle().Faint(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured display profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		names := cfg.ProfileNames()
		if len(names) == 0 {
			fmt.Println("no profiles configured")
			return nil
		}
		for _, name := range names {
			setup, _ := cfg.Setup(name)

			dpi := profile.DefaultDPI
			if setup.DPI != nil {
				dpi = *setup.DPI
			}
			var outputs []string
			for _, group := range setup.Displays {
				for _, oc := range group {
					outputs = append(outputs, oc.Name)
				}
			}
			detail := fmt.Sprintf("dpi %d", dpi)
			if len(outputs) > 0 {
				detail += ", outputs " + strings.Join(outputs, " ")
			}
			if n := len(setup.I3Workspaces); n > 0 {
				detail += fmt.Sprintf(", %d workspace bindings", n)
			}
			fmt.Printf("%s  %s\n", profileStyle.Render(name), detailStyle.Render(detail))
		}
		return nil
	},
}

var outputsCmd = &cobra.Command{
	Use:   "outputs",
	Short: "Show currently connected outputs",
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := x11.NewConnection()
		if err != nil {
			return fmt.Errorf("failed to connect to X11: %w", err)
		}
		defer conn.Close()

		outputs, err := conn.ConnectedOutputs()
		if err != nil {
			return err
		}
		for _, name := range outputs {
			fmt.Println(name)
		}
		return nil
	},
}
