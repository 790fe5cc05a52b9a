// Package uart manages the configuration and lifecycle of serial (UART)
// endpoints on Linux.
//
// The package translates semantic parameters (baud rate, parity, stop bits,
// data bits, flow control) into the termios attribute structure, and drives
// a device from unopened to ready for I/O through an explicit state machine
// (Closed, Configured, Open, Failed).
//
// # Basic Usage
//
// Construct an endpoint (no OS call is made), then open it:
//
//	ep, err := uart.NewEndpoint("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := ep.Open(); err != nil {
//	    log.Fatal(err)
//	}
//	defer ep.Close()
//
//	n, err := ep.Write([]byte("AT\r\n"))
//	buf := make([]byte, 256)
//	n, err = ep.Read(buf)
//
// # Configuration
//
// Defaults are 9600 baud, 8 data bits, no parity, 1 stop bit, no flow
// control. Override at construction with functional options:
//
//	ep, err := uart.NewEndpoint("/dev/ttyUSB0",
//	    uart.WithBaudRate(115200),
//	    uart.WithParity(uart.ParityEven),
//	    uart.WithHardwareFlowControl(true),
//	)
//
// or reconfigure later with the setters:
//
//	err = ep.SetBaudRate(19200)
//
// Every successful setter call invalidates an open endpoint: IsOpen()
// reports false until the endpoint is reopened, even though the descriptor
// stays open until Close. Invalid values are rejected with the prior value
// retained:
//
//	if err := ep.SetBaudRate(1234); errors.Is(err, uart.ErrInvalidBaudRate) {
//	    // configuration unchanged
//	}
//
// # Attribute application
//
// Open validates the configuration, opens the device and applies the
// derived attributes. If the kernel rejects the attributes the endpoint is
// still marked open; the failure is retrievable via LastApplyError and the
// kernel-side structure via Attributes. This asymmetry is a deliberate
// contract, kept so callers can observe the divergence instead of being
// failed closed.
//
// # Error Handling
//
// Use errors.Is against the package sentinels:
//
//	var (
//	    ErrInvalidParameter // any rejected configuration value
//	    ErrInvalidBaudRate  // ... and per-parameter sentinels
//	    ErrApplyAttributes  // kernel rejected the attribute structure
//	    ErrNotOpen          // operation needs an open descriptor
//	    ErrDeviceNotFound
//	    ErrPermissionDenied
//	    ErrDeviceInUse
//	)
//
// # Concurrency
//
// An Endpoint is a single-owner, fully synchronous resource. No internal
// locking is performed; wrap calls with your own synchronization if an
// endpoint must be shared.
package uart
