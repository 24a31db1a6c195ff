package profile

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/kenoh/screensetup/internal/logging"
	"github.com/kenoh/screensetup/internal/runner"
)

const (
	// DefaultDPI is used when a profile does not set one.
	DefaultDPI = 96

	xsettingsdCommand = "xsettingsd"
)

// ScalingFactor is the integer window scaling factor for a DPI value,
// DPI/96 rounded to nearest. A result of zero marks an invalid DPI.
func ScalingFactor(dpi int) int {
	return int(math.Round(float64(dpi) / 96.0))
}

// SettingsBody renders the xsettingsd document for a DPI value. The
// unscaled DPI uses integer division after scaling-factor rounding.
func SettingsBody(dpi int) (string, error) {
	scale := ScalingFactor(dpi)
	if scale == 0 {
		return "", &InvalidDPIError{DPI: dpi}
	}
	fixed := dpi * 1024
	unscaled := fixed / scale

	body := fmt.Sprintf(`Xft/DPI %d
Xft/Antialias 1
Xft/Hinting 1
Xft/HintStyle "hintslight"
Xft/RGBA "rgb"
Gdk/WindowScalingFactor %d
Gdk/UnscaledDPI %d
`, fixed, scale, unscaled)
	return body, nil
}

// DPIApplier writes the xsettingsd configuration and propagates a DPI
// value system-wide.
type DPIApplier struct {
	run        runner.Runner
	log        zerolog.Logger
	settings   string
	initScript string
}

// NewDPIApplier builds an applier rooted at the given home directory.
func NewDPIApplier(run runner.Runner, home string) *DPIApplier {
	return &DPIApplier{
		run:        run,
		log:        logging.GetLogger("dpi"),
		settings:   filepath.Join(home, ".xsettingsd"),
		initScript: filepath.Join(home, ".config", "screensetup", "init"),
	}
}

// Apply writes the settings file and runs the follow-up actions. The
// file write is a hard prerequisite and fails the pipeline; each
// follow-up (daemon reload, resource merge, window-manager restart,
// init script) is independent and best-effort.
func (a *DPIApplier) Apply(dpi int) error {
	body, err := SettingsBody(dpi)
	if err != nil {
		return err
	}
	if err := a.run.WriteFile(a.settings, []byte(body)); err != nil {
		return fmt.Errorf("write %s: %w", a.settings, err)
	}

	if err := a.run.Run("pkill", "-HUP", "-x", xsettingsdCommand); err != nil {
		a.log.Info().Err(err).Msg("no running xsettingsd to reload, spawning one")
		if err := a.run.Spawn(xsettingsdCommand); err != nil {
			a.log.Warn().Err(err).Msg("failed to spawn xsettingsd")
		}
	}

	if err := a.run.RunInput(fmt.Sprintf("Xft.dpi: %d\n", dpi), "xrdb", "-merge"); err != nil {
		a.log.Warn().Err(err).Msg("xrdb merge failed")
	}

	if err := a.run.Run("i3-msg", "restart"); err != nil {
		a.log.Warn().Err(err).Msg("i3 restart failed")
	}

	if err := a.run.Run(a.initScript); err != nil {
		a.log.Warn().Err(err).Str("script", a.initScript).Msg("init script failed")
	}

	return nil
}
