package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
)

// ConnectedOutputs returns the names of all physically connected
// outputs using XRandR, whether or not they are currently active.
func (c *Connection) ConnectedOutputs() ([]string, error) {
	// Initialize RandR if not already done
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var outputs []string
	for _, output := range resources.Outputs {
		info, err := randr.GetOutputInfo(c.XUtil.Conn(), output, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if info.Connection != randr.ConnectionConnected {
			continue
		}
		outputs = append(outputs, string(info.Name))
	}

	return outputs, nil
}
