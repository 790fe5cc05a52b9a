package uart

import "fmt"

// Parity represents the parity mode
type Parity int

const (
	ParityNone Parity = iota
	ParityEven
	ParityOdd
)

func (p Parity) String() string {
	switch p {
	case ParityNone:
		return "N"
	case ParityEven:
		return "E"
	case ParityOdd:
		return "O"
	default:
		return "?"
	}
}

// Config holds the semantic configuration of a serial endpoint. The
// bit-level terminal attributes are always derived from it wholesale, see
// deriveTermios.
type Config struct {
	BaudRate            int
	DataBits            int
	StopBits            int
	Parity              Parity
	HardwareFlowControl bool // RTS/CTS lines
	SoftwareFlowControl bool // in-band XON/XOFF
	ReadTimeoutTenths   int  // VTIME setting in tenths of seconds (0-255)
}

// Describe returns the conventional short form, e.g. "9600 8N1".
func (c Config) Describe() string {
	return fmt.Sprintf("%d %d%s%d", c.BaudRate, c.DataBits, c.Parity, c.StopBits)
}

// Option is a functional option for configuring an endpoint at construction
type Option func(*Config) error

// DefaultConfig returns the construction defaults: 9600 baud, 8N1, no flow
// control.
func DefaultConfig() Config {
	return Config{
		BaudRate:          9600,
		DataBits:          8,
		StopBits:          1,
		Parity:            ParityNone,
		ReadTimeoutTenths: 25, // 2.5 seconds
	}
}

// WithBaudRate sets the baud rate
func WithBaudRate(rate int) Option {
	return func(c *Config) error {
		if _, err := baudConstant(rate); err != nil {
			return invalidParam("baud rate", rate, ErrInvalidBaudRate)
		}
		c.BaudRate = rate
		return nil
	}
}

// WithDataBits sets the number of data bits (5, 6, 7, or 8)
func WithDataBits(bits int) Option {
	return func(c *Config) error {
		if bits < 5 || bits > 8 {
			return invalidParam("data bits", bits, ErrInvalidDataBits)
		}
		c.DataBits = bits
		return nil
	}
}

// WithStopBits sets the number of stop bits (1 or 2)
func WithStopBits(bits int) Option {
	return func(c *Config) error {
		if bits != 1 && bits != 2 {
			return invalidParam("stop bits", bits, ErrInvalidStopBits)
		}
		c.StopBits = bits
		return nil
	}
}

// WithParity sets the parity mode
func WithParity(parity Parity) Option {
	return func(c *Config) error {
		switch parity {
		case ParityNone, ParityEven, ParityOdd:
			c.Parity = parity
			return nil
		default:
			return invalidParam("parity", parity, ErrInvalidParity)
		}
	}
}

// WithHardwareFlowControl enables or disables RTS/CTS flow control
func WithHardwareFlowControl(enabled bool) Option {
	return func(c *Config) error {
		c.HardwareFlowControl = enabled
		return nil
	}
}

// WithSoftwareFlowControl enables or disables XON/XOFF flow control
func WithSoftwareFlowControl(enabled bool) Option {
	return func(c *Config) error {
		c.SoftwareFlowControl = enabled
		return nil
	}
}

// WithReadTimeout sets the read timeout in tenths of seconds (VTIME)
func WithReadTimeout(tenths int) Option {
	return func(c *Config) error {
		if tenths < 0 || tenths > 255 {
			return invalidParam("read timeout", tenths, ErrInvalidReadTimeout)
		}
		c.ReadTimeoutTenths = tenths
		return nil
	}
}
