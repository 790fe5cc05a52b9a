package uart

import (
	"errors"
	"testing"

	"golang.org/x/sys/unix"
)

func TestBaudConstant(t *testing.T) {
	tests := []struct {
		rate     int
		hasError bool
	}{
		{0, false},
		{50, false},
		{9600, false},
		{115200, false},
		{4000000, false},
		{1234, true},
		{-9600, true},
		{128000, true}, // windows-only rate, not in the supported set
	}

	for _, test := range tests {
		result, err := baudConstant(test.rate)
		if test.hasError {
			if err == nil {
				t.Errorf("Expected error for baud rate %d", test.rate)
			}
			if !errors.Is(err, ErrInvalidBaudRate) {
				t.Errorf("Expected ErrInvalidBaudRate for %d, got %v", test.rate, err)
			}
		} else {
			if err != nil {
				t.Errorf("Unexpected error for baud rate %d: %v", test.rate, err)
			}
			if test.rate != 0 && result == 0 {
				t.Errorf("Got zero constant for valid baud rate %d", test.rate)
			}
		}
	}
}

func TestSupportedBaudRates(t *testing.T) {
	rates := SupportedBaudRates()
	if len(rates) != 31 {
		t.Errorf("Expected 31 supported rates, got %d", len(rates))
	}
	for i := 1; i < len(rates); i++ {
		if rates[i-1] >= rates[i] {
			t.Errorf("Rates not strictly ascending: %d >= %d", rates[i-1], rates[i])
		}
	}
	if rates[0] != 0 || rates[len(rates)-1] != 4000000 {
		t.Errorf("Expected range [0, 4000000], got [%d, %d]", rates[0], rates[len(rates)-1])
	}
}

func TestDeriveTermiosSpeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaudRate = 115200

	tio, err := deriveTermios(cfg)
	if err != nil {
		t.Fatalf("deriveTermios failed: %v", err)
	}

	if tio.Ispeed != unix.B115200 {
		t.Errorf("Ispeed = %#x, want B115200", tio.Ispeed)
	}
	if tio.Ospeed != unix.B115200 {
		t.Errorf("Ospeed = %#x, want B115200", tio.Ospeed)
	}
	if tio.Cflag&unix.CBAUD != unix.B115200 {
		t.Errorf("Cflag CBAUD field = %#x, want B115200", tio.Cflag&unix.CBAUD)
	}
}

func TestDeriveTermiosDataBits(t *testing.T) {
	tests := []struct {
		bits int
		want uint32
	}{
		{5, unix.CS5},
		{6, unix.CS6},
		{7, unix.CS7},
		{8, unix.CS8},
	}

	for _, test := range tests {
		cfg := DefaultConfig()
		cfg.DataBits = test.bits

		tio, err := deriveTermios(cfg)
		if err != nil {
			t.Fatalf("deriveTermios(%d data bits) failed: %v", test.bits, err)
		}
		if got := tio.Cflag & unix.CSIZE; got != test.want {
			t.Errorf("CSIZE field for %d data bits = %#x, want %#x", test.bits, got, test.want)
		}
	}
}

func TestDeriveTermiosStopBits(t *testing.T) {
	cfg := DefaultConfig()

	tio, err := deriveTermios(cfg)
	if err != nil {
		t.Fatalf("deriveTermios failed: %v", err)
	}
	if tio.Cflag&unix.CSTOPB != 0 {
		t.Error("CSTOPB must be clear for 1 stop bit")
	}

	cfg.StopBits = 2
	tio, err = deriveTermios(cfg)
	if err != nil {
		t.Fatalf("deriveTermios failed: %v", err)
	}
	if tio.Cflag&unix.CSTOPB == 0 {
		t.Error("CSTOPB must be set for 2 stop bits")
	}
}

// Odd parity must OR in PARODD. The AND variant seen in some
// implementations collapses odd into even; this test pins the chosen
// behavior.
func TestDeriveTermiosParity(t *testing.T) {
	tests := []struct {
		name       string
		parity     Parity
		wantEnable bool
		wantOdd    bool
	}{
		{"none", ParityNone, false, false},
		{"even", ParityEven, true, false},
		{"odd", ParityOdd, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Parity = tt.parity

			tio, err := deriveTermios(cfg)
			if err != nil {
				t.Fatalf("deriveTermios failed: %v", err)
			}

			if got := tio.Cflag&unix.PARENB != 0; got != tt.wantEnable {
				t.Errorf("PARENB = %v, want %v", got, tt.wantEnable)
			}
			if got := tio.Cflag&unix.PARODD != 0; got != tt.wantOdd {
				t.Errorf("PARODD = %v, want %v", got, tt.wantOdd)
			}
		})
	}
}

func TestDeriveTermiosFlowControl(t *testing.T) {
	cfg := DefaultConfig()

	tio, err := deriveTermios(cfg)
	if err != nil {
		t.Fatalf("deriveTermios failed: %v", err)
	}
	if tio.Cflag&unix.CRTSCTS != 0 {
		t.Error("CRTSCTS must be clear by default")
	}
	if tio.Iflag&(unix.IXON|unix.IXOFF) != 0 {
		t.Error("IXON/IXOFF must be clear by default")
	}

	cfg.HardwareFlowControl = true
	cfg.SoftwareFlowControl = true
	tio, err = deriveTermios(cfg)
	if err != nil {
		t.Fatalf("deriveTermios failed: %v", err)
	}
	if tio.Cflag&unix.CRTSCTS == 0 {
		t.Error("CRTSCTS must be set with hardware flow control")
	}
	if tio.Iflag&unix.IXON == 0 || tio.Iflag&unix.IXOFF == 0 {
		t.Error("IXON and IXOFF must be set with software flow control")
	}
}

func TestDeriveTermiosRawMode(t *testing.T) {
	tio, err := deriveTermios(DefaultConfig())
	if err != nil {
		t.Fatalf("deriveTermios failed: %v", err)
	}

	if tio.Cflag&unix.CREAD == 0 || tio.Cflag&unix.CLOCAL == 0 {
		t.Error("CREAD and CLOCAL must always be set")
	}
	if tio.Oflag != 0 {
		t.Errorf("Oflag = %#x, want 0 (raw mode)", tio.Oflag)
	}
	if tio.Lflag != 0 {
		t.Errorf("Lflag = %#x, want 0 (raw mode)", tio.Lflag)
	}
	if tio.Cc[unix.VMIN] != 0 {
		t.Errorf("VMIN = %d, want 0", tio.Cc[unix.VMIN])
	}
	if tio.Cc[unix.VTIME] != 25 {
		t.Errorf("VTIME = %d, want 25 (default)", tio.Cc[unix.VTIME])
	}
}

// deriveTermios is pure: the same configuration always yields the same
// structure, so revalidation on open can never drift.
func TestDeriveTermiosDeterministic(t *testing.T) {
	cfg := Config{
		BaudRate:            230400,
		DataBits:            7,
		StopBits:            2,
		Parity:              ParityOdd,
		HardwareFlowControl: true,
		SoftwareFlowControl: true,
		ReadTimeoutTenths:   10,
	}

	a, err := deriveTermios(cfg)
	if err != nil {
		t.Fatalf("deriveTermios failed: %v", err)
	}
	b, err := deriveTermios(cfg)
	if err != nil {
		t.Fatalf("deriveTermios failed: %v", err)
	}
	if a != b {
		t.Error("deriveTermios is not deterministic")
	}
}

func TestDeriveTermiosRejectsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		sentinel error
	}{
		{"bad baud", func(c *Config) { c.BaudRate = 7 }, ErrInvalidBaudRate},
		{"bad data bits", func(c *Config) { c.DataBits = 9 }, ErrInvalidDataBits},
		{"bad stop bits", func(c *Config) { c.StopBits = 3 }, ErrInvalidStopBits},
		{"bad parity", func(c *Config) { c.Parity = Parity(9) }, ErrInvalidParity},
		{"bad timeout", func(c *Config) { c.ReadTimeoutTenths = 300 }, ErrInvalidReadTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if _, err := deriveTermios(cfg); !errors.Is(err, tt.sentinel) {
				t.Errorf("Expected %v, got %v", tt.sentinel, err)
			}
		})
	}
}
