package uart

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// State is the lifecycle state of an endpoint.
type State int

const (
	// StateClosed is the initial state; also reached by Close.
	StateClosed State = iota
	// StateConfigured means the configuration changed since the endpoint
	// was last opened. The kernel-side attributes can no longer be assumed
	// to match until the caller reopens.
	StateConfigured
	// StateOpen means the device is open and the derived attributes were
	// handed to the kernel (see LastApplyError for the one exception).
	StateOpen
	// StateFailed marks a failed open attempt. Retryable: calling Open
	// again is allowed from any state.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateConfigured:
		return "configured"
	case StateOpen:
		return "open"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Endpoint owns a single serial device: the device path, the semantic
// configuration, the terminal attributes derived from it, and the OS file
// descriptor.
//
// An Endpoint is not safe for concurrent use; it is a single-owner resource
// and callers needing sharing must synchronize externally.
type Endpoint struct {
	path   string
	config Config
	tty    unix.Termios
	fd     int
	state  State

	// lastApplyErr records an attribute-apply failure during Open. By
	// contract an apply failure does not prevent the endpoint from being
	// marked open, so the device can be open at the OS level while its
	// attributes do not match the configuration. The asymmetry is
	// deliberate; use Attributes() to inspect what the kernel actually
	// holds.
	lastApplyErr error
}

// NewEndpoint creates an endpoint for the device at path with the defaults
// 9600 8N1 and no flow control, adjusted by opts. It performs no OS call;
// the device is not touched until Open.
func NewEndpoint(path string, opts ...Option) (*Endpoint, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	tty, err := deriveTermios(cfg)
	if err != nil {
		return nil, err
	}
	return &Endpoint{
		path:   path,
		config: cfg,
		tty:    tty,
		fd:     -1,
		state:  StateClosed,
	}, nil
}

// reconfigure swaps in an already-validated configuration and re-derives
// the attribute structure wholesale. Every successful change leaves
// StateConfigured, even when the new value equals the old one: the kernel
// cannot be assumed to match without a reapply.
func (e *Endpoint) reconfigure(cfg Config) error {
	tty, err := deriveTermios(cfg)
	if err != nil {
		return err
	}
	e.config = cfg
	e.tty = tty
	e.state = StateConfigured
	return nil
}

// SetBaudRate sets the line speed. The rate must be a member of the
// supported set (see SupportedBaudRates); on rejection the previous value
// is retained.
func (e *Endpoint) SetBaudRate(rate int) error {
	if _, err := baudConstant(rate); err != nil {
		return invalidParam("baud rate", rate, ErrInvalidBaudRate)
	}
	cfg := e.config
	cfg.BaudRate = rate
	return e.reconfigure(cfg)
}

// SetDataBits sets the character size (5, 6, 7 or 8).
func (e *Endpoint) SetDataBits(bits int) error {
	if bits < 5 || bits > 8 {
		return invalidParam("data bits", bits, ErrInvalidDataBits)
	}
	cfg := e.config
	cfg.DataBits = bits
	return e.reconfigure(cfg)
}

// SetStopBits sets the stop-bit count (1 or 2).
func (e *Endpoint) SetStopBits(bits int) error {
	if bits != 1 && bits != 2 {
		return invalidParam("stop bits", bits, ErrInvalidStopBits)
	}
	cfg := e.config
	cfg.StopBits = bits
	return e.reconfigure(cfg)
}

// SetParity sets the parity mode.
func (e *Endpoint) SetParity(parity Parity) error {
	switch parity {
	case ParityNone, ParityEven, ParityOdd:
	default:
		return invalidParam("parity", parity, ErrInvalidParity)
	}
	cfg := e.config
	cfg.Parity = parity
	return e.reconfigure(cfg)
}

// SetHardwareFlowControl toggles RTS/CTS flow control.
func (e *Endpoint) SetHardwareFlowControl(enabled bool) error {
	cfg := e.config
	cfg.HardwareFlowControl = enabled
	return e.reconfigure(cfg)
}

// SetSoftwareFlowControl toggles XON/XOFF flow control.
func (e *Endpoint) SetSoftwareFlowControl(enabled bool) error {
	cfg := e.config
	cfg.SoftwareFlowControl = enabled
	return e.reconfigure(cfg)
}

// SetReadTimeout sets the read timeout in tenths of seconds (VTIME).
func (e *Endpoint) SetReadTimeout(tenths int) error {
	if tenths < 0 || tenths > 255 {
		return invalidParam("read timeout", tenths, ErrInvalidReadTimeout)
	}
	cfg := e.config
	cfg.ReadTimeoutTenths = tenths
	return e.reconfigure(cfg)
}

// revalidate re-invokes every setter with its currently stored value. This
// re-derives the attribute structure deterministically and surfaces any
// configuration drift before the device is touched.
func (e *Endpoint) revalidate() error {
	cfg := e.config
	if err := e.SetBaudRate(cfg.BaudRate); err != nil {
		return err
	}
	if err := e.SetDataBits(cfg.DataBits); err != nil {
		return err
	}
	if err := e.SetStopBits(cfg.StopBits); err != nil {
		return err
	}
	if err := e.SetParity(cfg.Parity); err != nil {
		return err
	}
	if err := e.SetHardwareFlowControl(cfg.HardwareFlowControl); err != nil {
		return err
	}
	if err := e.SetSoftwareFlowControl(cfg.SoftwareFlowControl); err != nil {
		return err
	}
	return e.SetReadTimeout(cfg.ReadTimeoutTenths)
}

// Apply commits the derived attribute structure to the kernel for the open
// descriptor. It does not change the endpoint state; readiness is
// established only by the Open sequence.
func (e *Endpoint) Apply() error {
	if e.fd < 0 {
		return ErrNotOpen
	}
	if err := unix.IoctlSetTermios(e.fd, unix.TCSETS, &e.tty); err != nil {
		return fmt.Errorf("%w: %v", ErrApplyAttributes, err)
	}
	return nil
}

// Open validates the configuration, opens the device and applies the
// derived attributes. The OS is never contacted until the revalidation
// passes.
//
// An attribute-apply failure is recorded (LastApplyError) but by contract
// does not prevent the endpoint from being marked open.
func (e *Endpoint) Open() error {
	if err := e.revalidate(); err != nil {
		_ = e.Close()
		e.state = StateFailed
		return err
	}

	// Never reuse a stale descriptor across open attempts
	if e.fd >= 0 {
		_ = e.Close()
	}

	fd, err := unix.Open(e.path, unix.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		e.state = StateFailed
		return wrapOpenError(e.path, err)
	}
	e.fd = fd

	e.lastApplyErr = nil
	if err := e.Apply(); err != nil {
		e.lastApplyErr = err
	}

	e.state = StateOpen
	return nil
}

// Close releases the device descriptor. It is idempotent: closing a closed
// endpoint is a no-op. The descriptor is presumed invalid after any close
// attempt, so it is marked unset even when the OS reports a failure, and a
// second Close never double-closes.
func (e *Endpoint) Close() error {
	if e.fd < 0 {
		e.state = StateClosed
		return nil
	}
	fd := e.fd
	e.fd = -1
	e.state = StateClosed
	if err := unix.Close(fd); err != nil {
		return fmt.Errorf("failed to close %s: %w", e.path, err)
	}
	return nil
}

// Path returns the immutable device path.
func (e *Endpoint) Path() string { return e.path }

// Config returns a copy of the current semantic configuration.
func (e *Endpoint) Config() Config { return e.config }

// Fd returns the OS file descriptor, or -1 when unset.
func (e *Endpoint) Fd() int { return e.fd }

// State returns the lifecycle state.
func (e *Endpoint) State() State { return e.state }

// IsOpen reports whether the endpoint is open AND the applied attributes
// were derived from the current configuration. Any setter call after Open
// makes this false until the endpoint is reopened, even though the OS
// descriptor stays open until Close.
func (e *Endpoint) IsOpen() bool { return e.state == StateOpen }

// LastApplyError returns the attribute-apply failure recorded by the most
// recent Open, or nil.
func (e *Endpoint) LastApplyError() error { return e.lastApplyErr }

// Attributes reads the terminal attribute structure back from the kernel.
// It can diverge from the derived configuration when Apply failed or a
// setter was called after Open; that divergence is a diagnostic surface,
// not a bug.
func (e *Endpoint) Attributes() (*unix.Termios, error) {
	if e.fd < 0 {
		return nil, ErrNotOpen
	}
	tio, err := unix.IoctlGetTermios(e.fd, unix.TCGETS)
	if err != nil {
		return nil, fmt.Errorf("failed to get termios: %w", err)
	}
	return tio, nil
}

// VerifyAttributes reports whether the kernel-side attributes match the
// structure derived from the current configuration. False after a failed
// Apply or a setter call since the last Open.
func (e *Endpoint) VerifyAttributes() (bool, error) {
	tio, err := e.Attributes()
	if err != nil {
		return false, err
	}
	cflagMask := uint32(unix.CBAUD | unix.CSIZE | unix.CSTOPB | unix.PARENB | unix.PARODD | unix.CRTSCTS)
	iflagMask := uint32(unix.IXON | unix.IXOFF)
	switch {
	case tio.Cflag&cflagMask != e.tty.Cflag&cflagMask:
		return false, nil
	case tio.Iflag&iflagMask != e.tty.Iflag&iflagMask:
		return false, nil
	case tio.Ispeed != e.tty.Ispeed || tio.Ospeed != e.tty.Ospeed:
		return false, nil
	}
	return true, nil
}
