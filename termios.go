package uart

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// baudRates is the fixed set of supported line speeds mapped to their
// termios speed constants. Any other integer is rejected.
var baudRates = map[int]uint32{
	0:       unix.B0,
	50:      unix.B50,
	75:      unix.B75,
	110:     unix.B110,
	134:     unix.B134,
	150:     unix.B150,
	200:     unix.B200,
	300:     unix.B300,
	600:     unix.B600,
	1200:    unix.B1200,
	1800:    unix.B1800,
	2400:    unix.B2400,
	4800:    unix.B4800,
	9600:    unix.B9600,
	19200:   unix.B19200,
	38400:   unix.B38400,
	57600:   unix.B57600,
	115200:  unix.B115200,
	230400:  unix.B230400,
	460800:  unix.B460800,
	500000:  unix.B500000,
	576000:  unix.B576000,
	921600:  unix.B921600,
	1000000: unix.B1000000,
	1152000: unix.B1152000,
	1500000: unix.B1500000,
	2000000: unix.B2000000,
	2500000: unix.B2500000,
	3000000: unix.B3000000,
	3500000: unix.B3500000,
	4000000: unix.B4000000,
}

// baudConstant converts an integer baud rate to the unix constant
func baudConstant(rate int) (uint32, error) {
	b, ok := baudRates[rate]
	if !ok {
		return 0, ErrInvalidBaudRate
	}
	return b, nil
}

// SupportedBaudRates returns the supported baud rates in ascending order.
func SupportedBaudRates() []int {
	rates := make([]int, 0, len(baudRates))
	for r := range baudRates {
		rates = append(rates, r)
	}
	for i := 1; i < len(rates); i++ {
		for j := i; j > 0 && rates[j-1] > rates[j]; j-- {
			rates[j-1], rates[j] = rates[j], rates[j-1]
		}
	}
	return rates
}

// deriveTermios computes the complete terminal attribute structure for a
// configuration. It is a pure function recomputed wholesale on every
// configuration change, so the cached attributes can never drift from the
// semantic configuration.
//
// The line is always set up raw: no input, output or local processing.
func deriveTermios(cfg Config) (unix.Termios, error) {
	var tio unix.Termios

	baud, err := baudConstant(cfg.BaudRate)
	if err != nil {
		return tio, invalidParam("baud rate", cfg.BaudRate, ErrInvalidBaudRate)
	}

	tio.Cflag = unix.CREAD | unix.CLOCAL

	switch cfg.DataBits {
	case 5:
		tio.Cflag |= unix.CS5
	case 6:
		tio.Cflag |= unix.CS6
	case 7:
		tio.Cflag |= unix.CS7
	case 8:
		tio.Cflag |= unix.CS8
	default:
		return unix.Termios{}, invalidParam("data bits", cfg.DataBits, ErrInvalidDataBits)
	}

	switch cfg.StopBits {
	case 1:
		// one stop bit is the flag's zero value
	case 2:
		tio.Cflag |= unix.CSTOPB
	default:
		return unix.Termios{}, invalidParam("stop bits", cfg.StopBits, ErrInvalidStopBits)
	}

	// Odd parity is PARENB|PARODD. Some implementations mask PARODD with
	// AND and silently collapse odd into even; that is a defect, not a
	// behavior to reproduce.
	switch cfg.Parity {
	case ParityNone:
	case ParityEven:
		tio.Cflag |= unix.PARENB
	case ParityOdd:
		tio.Cflag |= unix.PARENB | unix.PARODD
	default:
		return unix.Termios{}, invalidParam("parity", cfg.Parity, ErrInvalidParity)
	}

	if cfg.HardwareFlowControl {
		tio.Cflag |= unix.CRTSCTS
	}
	if cfg.SoftwareFlowControl {
		tio.Iflag |= unix.IXON | unix.IXOFF
	}

	if cfg.ReadTimeoutTenths < 0 || cfg.ReadTimeoutTenths > 255 {
		return unix.Termios{}, invalidParam("read timeout", cfg.ReadTimeoutTenths, ErrInvalidReadTimeout)
	}
	tio.Cc[unix.VMIN] = 0
	tio.Cc[unix.VTIME] = uint8(cfg.ReadTimeoutTenths)

	// Speed lives both in the CBAUD field and the speed members
	tio.Cflag = (tio.Cflag &^ unix.CBAUD) | baud
	tio.Ispeed = baud
	tio.Ospeed = baud

	return tio, nil
}

// wrapOpenError maps open(2) errnos to the package error taxonomy.
func wrapOpenError(path string, err error) error {
	switch {
	case err == unix.ENOENT:
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, path)
	case err == unix.EACCES:
		return fmt.Errorf("%w: %s", ErrPermissionDenied, path)
	case err == unix.EBUSY:
		return fmt.Errorf("%w: %s", ErrDeviceInUse, path)
	default:
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
}
