package uart

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestListPorts(t *testing.T) {
	ports, err := ListPorts()
	if err != nil {
		t.Fatalf("ListPorts failed: %v", err)
	}

	for _, port := range ports {
		if !strings.HasPrefix(port, "/dev/") {
			t.Errorf("Port path doesn't start with /dev/: %s", port)
		}
		if !isCharacterDevice(port) {
			t.Errorf("Port is not a character device: %s", port)
		}
	}

	for i := 1; i < len(ports); i++ {
		if ports[i-1] > ports[i] {
			t.Errorf("Ports are not sorted: %s > %s", ports[i-1], ports[i])
		}
	}
}

func TestIsCharacterDevice(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/dev/null", true},
		{"/dev/zero", true},
		{"/tmp", false},
		{"/nonexistent", false},
	}

	for _, test := range tests {
		if got := isCharacterDevice(test.path); got != test.expected {
			t.Errorf("isCharacterDevice(%s) = %v, expected %v", test.path, got, test.expected)
		}
	}
}

func TestDevicePatterns(t *testing.T) {
	tests := []struct {
		name    string
		matches bool
	}{
		{"ttyUSB0", true},
		{"ttyUSB12", true},
		{"ttyACM0", true},
		{"ttyS0", true},
		{"ttyAMA0", true},
		{"ttymxc2", true},
		{"ttyO1", true},
		{"ttySAC3", true},
		{"ttyTHS1", true},
		{"tty1", false},     // virtual terminal
		{"console", false},  // console
		{"ptmx", false},     // pty multiplexer
		{"ptyp0", false},    // pseudo-terminal
		{"random", false},   // not a serial device
		{"ttyUSB", false},   // no index
		{"ttyUSB0x", false}, // trailing garbage
	}

	for _, test := range tests {
		matched := devicePattern.MatchString(test.name) && !excludePattern.MatchString(test.name)
		if matched != test.matches {
			t.Errorf("Device %s: expected match=%v, got %v", test.name, test.matches, matched)
		}
	}
}

func TestGetPortInfo(t *testing.T) {
	info, err := GetPortInfo("/dev/null")
	if err != nil {
		t.Fatalf("GetPortInfo failed for /dev/null: %v", err)
	}
	if info.Name != "null" {
		t.Errorf("Expected name 'null', got '%s'", info.Name)
	}
	if info.Path != "/dev/null" {
		t.Errorf("Expected path '/dev/null', got '%s'", info.Path)
	}
	if info.Description == "" {
		t.Error("Description should not be empty")
	}

	_, err = GetPortInfo("/dev/nonexistent")
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Expected ErrDeviceNotFound, got %v", err)
	}
}

func TestPortDescription(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"ttyUSB0", "USB Serial Port"},
		{"ttyACM0", "USB CDC/ACM Device"},
		{"ttyS0", "Standard Serial Port"},
		{"ttyAMA0", "ARM Serial Port"},
		{"ttymxc0", "i.MX Serial Port"},
		{"ttyO0", "OMAP Serial Port"},
		{"ttySAC0", "Samsung Serial Port"},
		{"ttyTHS0", "Tegra Serial Port"},
		{"unknown", "Serial Port"},
	}

	for _, test := range tests {
		if got := portDescription(test.name); got != test.expected {
			t.Errorf("portDescription(%s) = %s, expected %s", test.name, got, test.expected)
		}
	}
}

// TestListPortsIntegration logs what the running system actually exposes
func TestListPortsIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ports, err := ListPorts()
	if err != nil {
		t.Fatalf("ListPorts failed: %v", err)
	}

	t.Logf("Found %d serial ports:", len(ports))
	for i, port := range ports {
		info, err := GetPortInfo(port)
		if err != nil {
			t.Logf("  %d. %s (error getting info: %v)", i+1, port, err)
			continue
		}
		t.Logf("  %d. %s (%s)", i+1, port, info.Description)

		stat, err := os.Stat(port)
		if err != nil {
			t.Errorf("Cannot stat port %s: %v", port, err)
			continue
		}
		if stat.Mode()&os.ModeCharDevice == 0 {
			t.Errorf("Port %s is not a character device", port)
		}
	}
}
