package uart

import (
	"errors"
	"fmt"
)

// Predefined error types for robust error handling
var (
	// ErrInvalidParameter is the base of the configuration error family.
	// Every setter rejection wraps it, so callers can branch on the whole
	// class or on the specific parameter sentinel below.
	ErrInvalidParameter = errors.New("invalid parameter")

	ErrInvalidBaudRate    = fmt.Errorf("%w: unsupported baud rate", ErrInvalidParameter)
	ErrInvalidDataBits    = fmt.Errorf("%w: data bits must be 5, 6, 7 or 8", ErrInvalidParameter)
	ErrInvalidStopBits    = fmt.Errorf("%w: stop bits must be 1 or 2", ErrInvalidParameter)
	ErrInvalidParity      = fmt.Errorf("%w: unknown parity mode", ErrInvalidParameter)
	ErrInvalidReadTimeout = fmt.Errorf("%w: read timeout must be 0-255 tenths of a second", ErrInvalidParameter)

	// ErrApplyAttributes means the kernel rejected a derived attribute
	// structure (TCSETS failed).
	ErrApplyAttributes = errors.New("failed to apply terminal attributes")

	// ErrNotOpen is returned by operations that need a live descriptor.
	ErrNotOpen = errors.New("endpoint is not open")

	// Open-time errno taxonomy
	ErrDeviceNotFound   = errors.New("serial device not found")
	ErrPermissionDenied = errors.New("permission denied accessing serial device")
	ErrDeviceInUse      = errors.New("serial device already in use")
)

// ParameterError reports a rejected configuration value. It wraps the
// per-parameter sentinel, so errors.Is works against both the sentinel and
// ErrInvalidParameter.
type ParameterError struct {
	Param string
	Value any
	Err   error
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%v (%s=%v)", e.Err, e.Param, e.Value)
}

func (e *ParameterError) Unwrap() error {
	return e.Err
}

func invalidParam(param string, value any, sentinel error) error {
	return &ParameterError{Param: param, Value: value, Err: sentinel}
}
