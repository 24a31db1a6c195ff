// Package mcp exposes profile listing and activation over the Model
// Context Protocol so desktop agents can switch display layouts.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kenoh/screensetup/internal/config"
	"github.com/kenoh/screensetup/internal/profile"
)

const (
	ServerName    = "screensetup"
	ServerVersion = "0.1.0"
)

// Server is the MCP server for profile activation.
type Server struct {
	mcpServer *mcpsdk.Server
	cfg       *config.Config
	outputs   profile.OutputLister
	home      string
}

// NewServer creates an MCP server over a loaded configuration. home
// anchors the DPI settings paths, as for the CLI.
func NewServer(cfg *config.Config, outputs profile.OutputLister, home string) *Server {
	s := &Server{
		cfg:     cfg,
		outputs: outputs,
		home:    home,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_profiles",
		Description: "List the configured display profiles with a short summary of each (DPI, outputs, workspace bindings).",
	}, s.handleListProfiles)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "show_profile",
		Description: "Show one profile with its per-output option set fully resolved (built-in defaults, default setup and profile overrides merged).",
	}, s.handleShowProfile)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "apply_profile",
		Description: "Activate a display profile: run its hooks, arrange outputs, bind workspaces and propagate DPI. With dry_run the full plan is returned instead of executed.",
	}, s.handleApplyProfile)
}
