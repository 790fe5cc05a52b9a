package uart

import "golang.org/x/sys/unix"

// ModemSignals represents modem control signal states
type ModemSignals struct {
	CTS bool // Clear To Send
	DSR bool // Data Set Ready
	RI  bool // Ring Indicator
	DCD bool // Data Carrier Detect
	RTS bool // Request To Send
	DTR bool // Data Terminal Ready
}

// Signals returns the current state of the modem control lines. Useful for
// diagnosing hardware flow control wiring.
func (e *Endpoint) Signals() (ModemSignals, error) {
	if e.fd < 0 {
		return ModemSignals{}, ErrNotOpen
	}
	status, err := unix.IoctlGetInt(e.fd, unix.TIOCMGET)
	if err != nil {
		return ModemSignals{}, err
	}
	return ModemSignals{
		CTS: status&unix.TIOCM_CTS != 0,
		DSR: status&unix.TIOCM_DSR != 0,
		RI:  status&unix.TIOCM_RI != 0,
		DCD: status&unix.TIOCM_CAR != 0,
		RTS: status&unix.TIOCM_RTS != 0,
		DTR: status&unix.TIOCM_DTR != 0,
	}, nil
}

// SetRTS sets the RTS line state.
func (e *Endpoint) SetRTS(state bool) error {
	if e.fd < 0 {
		return ErrNotOpen
	}
	return setModemBit(e.fd, unix.TIOCM_RTS, state)
}

// SetDTR sets the DTR line state.
func (e *Endpoint) SetDTR(state bool) error {
	if e.fd < 0 {
		return ErrNotOpen
	}
	return setModemBit(e.fd, unix.TIOCM_DTR, state)
}

func setModemBit(fd, bit int, state bool) error {
	if state {
		return unix.IoctlSetInt(fd, unix.TIOCMBIS, bit)
	}
	return unix.IoctlSetInt(fd, unix.TIOCMBIC, bit)
}
