package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenoh/screensetup/internal/config"
	"github.com/kenoh/screensetup/internal/profile"
)

type fakeOutputs struct {
	names []string
}

func (f fakeOutputs) ConnectedOutputs() ([]string, error) {
	return f.names, nil
}

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

func testServer() *Server {
	cfg := &config.Config{
		Setups: map[string]config.Setup{
			"desktop": {
				DPI: intptr(192),
				Displays: config.DisplayGroups{{
					{Name: "HDMI1", Options: config.Options{
						{Name: "mode", Value: strptr("2560x1440")},
					}},
				}},
				I3Workspaces: map[string]string{"1": "HDMI1"},
			},
		},
	}
	return NewServer(cfg, fakeOutputs{names: []string{"HDMI1", "LVDS1"}}, "/home/test")
}

func TestHandleListProfiles(t *testing.T) {
	s := testServer()

	_, out, err := s.handleListProfiles(context.Background(), nil, ListProfilesInput{})
	require.NoError(t, err)
	require.Len(t, out.Profiles, 1)

	p := out.Profiles[0]
	assert.Equal(t, "desktop", p.Name)
	assert.Equal(t, 192, p.DPI)
	assert.Equal(t, []string{"HDMI1"}, p.Outputs)
	assert.Equal(t, 1, p.Workspaces)
}

func TestHandleShowProfile(t *testing.T) {
	s := testServer()

	_, out, err := s.handleShowProfile(context.Background(), nil, ShowProfileInput{Profile: "desktop"})
	require.NoError(t, err)
	assert.Equal(t, 192, out.DPI)
	require.Len(t, out.Groups, 1)
	require.Len(t, out.Groups[0], 1)
	assert.Equal(t, "HDMI1", out.Groups[0][0].Name)
	assert.Contains(t, out.Groups[0][0].Options, "--mode 2560x1440")
	assert.Contains(t, out.Groups[0][0].Options, "--panning 0x0")
}

func TestHandleShowProfile_Unknown(t *testing.T) {
	s := testServer()

	_, _, err := s.handleShowProfile(context.Background(), nil, ShowProfileInput{Profile: "nope"})
	var unknown *profile.UnknownProfileError
	require.ErrorAs(t, err, &unknown)
}

func TestHandleApplyProfile_DryRunReturnsPlan(t *testing.T) {
	s := testServer()

	_, out, err := s.handleApplyProfile(context.Background(), nil, ApplyProfileInput{Profile: "desktop", DryRun: true})
	require.NoError(t, err)
	assert.False(t, out.Applied)
	require.NotEmpty(t, out.Plan)

	plan := strings.Join(out.Plan, "\n")
	assert.Contains(t, plan, "run: xrandr --output LVDS1 --off")
	assert.Contains(t, plan, "--output HDMI1 --mode 2560x1440")
	assert.Contains(t, plan, "workspace 1; move workspace to output HDMI1")
	assert.Contains(t, plan, "write /home/test/.xsettingsd:")
}
