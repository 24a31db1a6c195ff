package mcp

// ListProfilesInput has no arguments.
type ListProfilesInput struct{}

// ProfileSummary is one row of list_profiles output.
type ProfileSummary struct {
	Name       string   `json:"name"`
	DPI        int      `json:"dpi"`
	Outputs    []string `json:"outputs,omitempty"`
	Workspaces int      `json:"workspaces,omitempty"`
	HasPre     bool     `json:"has_pre,omitempty"`
	HasPost    bool     `json:"has_post,omitempty"`
}

type ListProfilesOutput struct {
	Profiles []ProfileSummary `json:"profiles"`
}

type ShowProfileInput struct {
	Profile string `json:"profile" jsonschema:"required,The profile name from the configuration's setups mapping"`
}

// OutputView is one output with its merged option tokens.
type OutputView struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

type ShowProfileOutput struct {
	Profile string         `json:"profile"`
	DPI     int            `json:"dpi"`
	Groups  [][]OutputView `json:"groups"`
}

type ApplyProfileInput struct {
	Profile string `json:"profile" jsonschema:"required,The profile name to activate"`
	DryRun  bool   `json:"dry_run,omitempty" jsonschema:"Compute and return the execution plan without performing any side effect"`
}

type ApplyProfileOutput struct {
	Applied bool     `json:"applied"`
	Plan    []string `json:"plan,omitempty"`
}
