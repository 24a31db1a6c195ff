package mcp

import (
	"context"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kenoh/screensetup/internal/profile"
	"github.com/kenoh/screensetup/internal/runner"
)

func (s *Server) handleListProfiles(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListProfilesInput) (*mcpsdk.CallToolResult, ListProfilesOutput, error) {
	out := ListProfilesOutput{Profiles: []ProfileSummary{}}
	for _, name := range s.cfg.ProfileNames() {
		setup, _ := s.cfg.Setup(name)
		summary := ProfileSummary{
			Name:       name,
			DPI:        profile.DefaultDPI,
			Workspaces: len(setup.I3Workspaces),
			HasPre:     setup.Pre != "",
			HasPost:    setup.Post != "",
		}
		if setup.DPI != nil {
			summary.DPI = *setup.DPI
		}
		for _, group := range setup.Displays {
			for _, oc := range group {
				summary.Outputs = append(summary.Outputs, oc.Name)
			}
		}
		out.Profiles = append(out.Profiles, summary)
	}
	return nil, out, nil
}

func (s *Server) handleShowProfile(_ context.Context, _ *mcpsdk.CallToolRequest, args ShowProfileInput) (*mcpsdk.CallToolResult, ShowProfileOutput, error) {
	setup, ok := s.cfg.Setup(args.Profile)
	if !ok {
		return nil, ShowProfileOutput{}, &profile.UnknownProfileError{Name: args.Profile, Known: s.cfg.ProfileNames()}
	}

	out := ShowProfileOutput{Profile: args.Profile, DPI: profile.DefaultDPI}
	if setup.DPI != nil {
		out.DPI = *setup.DPI
	}
	for _, group := range setup.Displays {
		views := make([]OutputView, 0, len(group))
		for _, ro := range profile.ResolveGroup(group, s.cfg.DefaultSetup) {
			view := OutputView{Name: ro.Name, Options: []string{}}
			for _, opt := range ro.Options {
				token := "--" + opt.Name
				if opt.Value != nil {
					token += " " + *opt.Value
				}
				view.Options = append(view.Options, token)
			}
			views = append(views, view)
		}
		out.Groups = append(out.Groups, views)
	}
	return nil, out, nil
}

func (s *Server) handleApplyProfile(_ context.Context, _ *mcpsdk.CallToolRequest, args ApplyProfileInput) (*mcpsdk.CallToolResult, ApplyProfileOutput, error) {
	if args.DryRun {
		dry := runner.NewDryRunner(nil)
		exec := profile.NewExecutor(s.cfg, s.outputs, dry, s.home)
		if err := exec.Apply(args.Profile); err != nil {
			return nil, ApplyProfileOutput{}, err
		}
		plan := make([]string, 0, len(dry.Steps()))
		for _, step := range dry.Steps() {
			plan = append(plan, strings.TrimRight(step.String(), "\n"))
		}
		return nil, ApplyProfileOutput{Applied: false, Plan: plan}, nil
	}

	exec := profile.NewExecutor(s.cfg, s.outputs, runner.NewExecRunner(), s.home)
	if err := exec.Apply(args.Profile); err != nil {
		return nil, ApplyProfileOutput{}, err
	}
	return nil, ApplyProfileOutput{Applied: true}, nil
}
