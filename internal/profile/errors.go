package profile

import (
	"fmt"
	"strings"
)

// UnknownProfileError is returned when the requested profile is not in
// the configuration. It aborts the pipeline before any side effect.
type UnknownProfileError struct {
	Name  string
	Known []string
}

func (e *UnknownProfileError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown profile %q (no profiles configured)", e.Name)
	}
	return fmt.Sprintf("unknown profile %q; known profiles: %s", e.Name, strings.Join(e.Known, ", "))
}

// InvalidDPIError is returned when a DPI value yields a zero window
// scaling factor, which cannot be written safely.
type InvalidDPIError struct {
	DPI int
}

func (e *InvalidDPIError) Error() string {
	return fmt.Sprintf("invalid dpi %d: window scaling factor rounds to zero", e.DPI)
}
