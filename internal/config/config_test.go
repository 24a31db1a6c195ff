package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func strptr(s string) *string { return &s }

func TestLoadFromPath_SingleMappingNormalizesToOneGroup(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"setups:",
		"  desktop:",
		"    displays:",
		"      LVDS1:",
		"        mode: 1920x1080",
		"      HDMI1:",
		"        mode: 1920x1080",
		"        right-of: LVDS1",
		"",
	}, "\n"))

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	setup, ok := cfg.Setup("desktop")
	if !ok {
		t.Fatalf("expected profile desktop")
	}
	if len(setup.Displays) != 1 {
		t.Fatalf("expected 1 display group, got %d", len(setup.Displays))
	}
	group := setup.Displays[0]
	if len(group) != 2 || group[0].Name != "LVDS1" || group[1].Name != "HDMI1" {
		t.Fatalf("expected outputs in declaration order, got %+v", group)
	}
	want := Options{
		{Name: "mode", Value: strptr("1920x1080")},
		{Name: "right-of", Value: strptr("LVDS1")},
	}
	if !reflect.DeepEqual(group[1].Options, want) {
		t.Fatalf("expected ordered options %+v, got %+v", want, group[1].Options)
	}
}

func TestLoadFromPath_DisplaysSequenceKeepsGroups(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"setups:",
		"  multi:",
		"    displays:",
		"      - LVDS1: {mode: 1366x768}",
		"      - VGA1: {mode: 1920x1080}",
		"",
	}, "\n"))

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	setup, _ := cfg.Setup("multi")
	if len(setup.Displays) != 2 {
		t.Fatalf("expected 2 display groups, got %d", len(setup.Displays))
	}
	if setup.Displays[0][0].Name != "LVDS1" || setup.Displays[1][0].Name != "VGA1" {
		t.Fatalf("unexpected groups: %+v", setup.Displays)
	}
}

func TestLoadFromPath_NullsSurviveDecode(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"setups:",
		"  laptop:",
		"    displays:",
		"      LVDS1:", // null output: defaults with no overrides
		"      HDMI1:",
		"        primary:", // argument-less flag
		"        panning:",
		"",
	}, "\n"))

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	setup, _ := cfg.Setup("laptop")
	group := setup.Displays[0]
	if group[0].Name != "LVDS1" || group[0].Options != nil {
		t.Fatalf("expected LVDS1 with nil options, got %+v", group[0])
	}
	primary, ok := group[1].Options.Lookup("primary")
	if !ok || primary.Value != nil {
		t.Fatalf("expected null-valued primary option, got %+v", group[1].Options)
	}
}

func TestLoadFromPath_FullDocument(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"default_setup:",
		"  displays:",
		"    LVDS1:",
		"      mode: 1366x768",
		"setups:",
		"  docked:",
		"    dpi: 192",
		"    pre: 'notify-send docking'",
		"    post: 'nitrogen --restore'",
		"    displays:",
		"      HDMI1: {mode: 2560x1440}",
		"    i3workspaces:",
		"      '1': HDMI1",
		"      '2': HDMI1",
		"",
	}, "\n"))

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultSetup == nil {
		t.Fatalf("expected default_setup")
	}
	opts, ok := cfg.DefaultSetup.OptionsFor("LVDS1")
	if !ok || len(opts) != 1 || opts[0].Name != "mode" {
		t.Fatalf("unexpected default_setup options: %+v", opts)
	}
	setup, _ := cfg.Setup("docked")
	if setup.DPI == nil || *setup.DPI != 192 {
		t.Fatalf("expected dpi 192, got %+v", setup.DPI)
	}
	if setup.Pre != "notify-send docking" || setup.Post != "nitrogen --restore" {
		t.Fatalf("unexpected hooks: %+v", setup)
	}
	bindings := setup.Workspaces()
	if len(bindings) != 2 || bindings[0].Workspace != "1" || bindings[1].Workspace != "2" {
		t.Fatalf("expected sorted workspace bindings, got %+v", bindings)
	}
}

func TestLoadFromPath_MissingSetupsNormalizesToEmpty(t *testing.T) {
	path := writeConfig(t, "# empty\n")
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Setups == nil || len(cfg.Setups) != 0 {
		t.Fatalf("expected empty setups map, got %+v", cfg.Setups)
	}
}

func TestLoadFromPath_StrictUnknownKeyErrors(t *testing.T) {
	path := writeConfig(t, "unknown_key: 1\n")
	if _, err := LoadFromPath(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestLoadFromPath_InvalidDPIRejected(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"setups:",
		"  bad:",
		"    dpi: 0",
		"",
	}, "\n"))
	_, err := LoadFromPath(path)
	if err == nil || !strings.Contains(err.Error(), "dpi") {
		t.Fatalf("expected dpi validation error, got %v", err)
	}
}

func TestLoadFromPath_MissingFileErrors(t *testing.T) {
	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestOptions_OverlayReplacesInPlaceAndAppends(t *testing.T) {
	base := Options{
		{Name: "mode", Value: strptr("1920x1080")},
		{Name: "panning", Value: strptr("0x0")},
	}
	overlay := Options{
		{Name: "panning"}, // null replaces concrete value
		{Name: "right-of", Value: strptr("LVDS1")},
	}

	got := base.Overlay(overlay)
	want := Options{
		{Name: "mode", Value: strptr("1920x1080")},
		{Name: "panning"},
		{Name: "right-of", Value: strptr("LVDS1")},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("overlay mismatch:\n got %+v\nwant %+v", got, want)
	}

	// The receiver must not be mutated.
	if base[1].Value == nil {
		t.Fatalf("overlay mutated its receiver")
	}
}
