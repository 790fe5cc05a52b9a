package uart

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.BaudRate != 9600 {
		t.Errorf("Expected BaudRate 9600, got %d", config.BaudRate)
	}
	if config.DataBits != 8 {
		t.Errorf("Expected DataBits 8, got %d", config.DataBits)
	}
	if config.StopBits != 1 {
		t.Errorf("Expected StopBits 1, got %d", config.StopBits)
	}
	if config.Parity != ParityNone {
		t.Errorf("Expected Parity None, got %v", config.Parity)
	}
	if config.HardwareFlowControl {
		t.Error("Expected hardware flow control disabled")
	}
	if config.SoftwareFlowControl {
		t.Error("Expected software flow control disabled")
	}
}

func TestFunctionalOptions(t *testing.T) {
	config := DefaultConfig()

	if err := WithBaudRate(115200)(&config); err != nil {
		t.Errorf("WithBaudRate failed: %v", err)
	}
	if config.BaudRate != 115200 {
		t.Errorf("Expected BaudRate 115200, got %d", config.BaudRate)
	}

	if err := WithDataBits(7)(&config); err != nil {
		t.Errorf("WithDataBits failed: %v", err)
	}
	if config.DataBits != 7 {
		t.Errorf("Expected DataBits 7, got %d", config.DataBits)
	}

	if err := WithStopBits(2)(&config); err != nil {
		t.Errorf("WithStopBits failed: %v", err)
	}
	if config.StopBits != 2 {
		t.Errorf("Expected StopBits 2, got %d", config.StopBits)
	}

	if err := WithParity(ParityEven)(&config); err != nil {
		t.Errorf("WithParity failed: %v", err)
	}
	if config.Parity != ParityEven {
		t.Errorf("Expected Parity Even, got %v", config.Parity)
	}

	if err := WithHardwareFlowControl(true)(&config); err != nil {
		t.Errorf("WithHardwareFlowControl failed: %v", err)
	}
	if !config.HardwareFlowControl {
		t.Error("Expected hardware flow control enabled")
	}

	if err := WithSoftwareFlowControl(true)(&config); err != nil {
		t.Errorf("WithSoftwareFlowControl failed: %v", err)
	}
	if !config.SoftwareFlowControl {
		t.Error("Expected software flow control enabled")
	}
}

func TestInvalidOptions(t *testing.T) {
	tests := []struct {
		name     string
		option   Option
		sentinel error
	}{
		{"baud 123456", WithBaudRate(123456), ErrInvalidBaudRate},
		{"data bits 9", WithDataBits(9), ErrInvalidDataBits},
		{"stop bits 3", WithStopBits(3), ErrInvalidStopBits},
		{"parity 9", WithParity(Parity(9)), ErrInvalidParity},
		{"timeout 300", WithReadTimeout(300), ErrInvalidReadTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			err := tt.option(&config)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("Expected %v, got %v", tt.sentinel, err)
			}
			if config != DefaultConfig() {
				t.Error("Rejected option must not modify the configuration")
			}
		})
	}
}

func TestWithReadTimeout(t *testing.T) {
	tests := []struct {
		name    string
		tenths  int
		wantErr bool
	}{
		{"0 (non-blocking)", 0, false},
		{"25 (2.5s)", 25, false},
		{"255 (max)", 255, false},
		{"256 (exceeds max)", 256, true},
		{"-1 (negative)", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			err := WithReadTimeout(tt.tenths)(&config)
			if (err != nil) != tt.wantErr {
				t.Errorf("WithReadTimeout(%d) error = %v, wantErr %v", tt.tenths, err, tt.wantErr)
			}
			if err == nil && config.ReadTimeoutTenths != tt.tenths {
				t.Errorf("ReadTimeoutTenths = %d, want %d", config.ReadTimeoutTenths, tt.tenths)
			}
		})
	}
}

func TestParityString(t *testing.T) {
	tests := []struct {
		parity Parity
		want   string
	}{
		{ParityNone, "N"},
		{ParityEven, "E"},
		{ParityOdd, "O"},
		{Parity(9), "?"},
	}

	for _, tt := range tests {
		if got := tt.parity.String(); got != tt.want {
			t.Errorf("Parity(%d).String() = %s, want %s", tt.parity, got, tt.want)
		}
	}
}
