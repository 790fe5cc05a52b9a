package uart

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// devicePattern matches device names that expose a real UART, virtual
// terminals and pseudo-terminals excluded.
var devicePattern = regexp.MustCompile(`^tty(USB|ACM|AMA|SAC|THS|mxc|O|S)\d+$`)

// excludePattern catches names devicePattern would otherwise let through.
var excludePattern = regexp.MustCompile(`^(tty\d+|console|ptmx|pty.*|pts/.*)$`)

// ListPorts returns the serial devices available under /dev, sorted.
func ListPorts() ([]string, error) {
	entries, err := os.ReadDir("/dev")
	if err != nil {
		return nil, err
	}

	var ports []string
	for _, entry := range entries {
		name := entry.Name()
		if excludePattern.MatchString(name) || !devicePattern.MatchString(name) {
			continue
		}
		path := filepath.Join("/dev", name)
		if isCharacterDevice(path) {
			ports = append(ports, path)
		}
	}

	sort.Strings(ports)
	return ports, nil
}

// isCharacterDevice checks if the given path is a character device
func isCharacterDevice(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// PortInfo describes a discovered serial device.
type PortInfo struct {
	Name        string
	Path        string
	Description string
}

// GetPortInfo returns information about a specific device node.
func GetPortInfo(portPath string) (*PortInfo, error) {
	if !isCharacterDevice(portPath) {
		return nil, ErrDeviceNotFound
	}

	name := filepath.Base(portPath)
	return &PortInfo{
		Name:        name,
		Path:        portPath,
		Description: portDescription(name),
	}, nil
}

// portDescription provides human-readable descriptions for port types
func portDescription(name string) string {
	switch {
	case strings.HasPrefix(name, "ttyUSB"):
		return "USB Serial Port"
	case strings.HasPrefix(name, "ttyACM"):
		return "USB CDC/ACM Device"
	case strings.HasPrefix(name, "ttyAMA"):
		return "ARM Serial Port"
	case strings.HasPrefix(name, "ttymxc"):
		return "i.MX Serial Port"
	case strings.HasPrefix(name, "ttySAC"):
		return "Samsung Serial Port"
	case strings.HasPrefix(name, "ttyTHS"):
		return "Tegra Serial Port"
	case strings.HasPrefix(name, "ttyO"):
		return "OMAP Serial Port"
	case strings.HasPrefix(name, "ttyS"):
		return "Standard Serial Port"
	default:
		return "Serial Port"
	}
}
