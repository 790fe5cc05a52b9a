package uart

import (
	"context"

	"golang.org/x/sys/unix"
)

// Read reads from the open endpoint. Blocking behavior follows the
// configured read timeout (VTIME); there is no internal cancellation.
func (e *Endpoint) Read(buf []byte) (int, error) {
	if !e.IsOpen() {
		return 0, ErrNotOpen
	}
	return unix.Read(e.fd, buf)
}

// Write writes to the open endpoint.
func (e *Endpoint) Write(data []byte) (int, error) {
	if !e.IsOpen() {
		return 0, ErrNotOpen
	}
	return unix.Write(e.fd, data)
}

type ioResult struct {
	n   int
	err error
}

// ReadContext reads with context cancellation support. The underlying read
// is not interruptible; on cancellation the syscall is abandoned and its
// result discarded.
func (e *Endpoint) ReadContext(ctx context.Context, buf []byte) (int, error) {
	if !e.IsOpen() {
		return 0, ErrNotOpen
	}

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	fd := e.fd
	resultCh := make(chan ioResult, 1)
	go func() {
		n, err := unix.Read(fd, buf)
		resultCh <- ioResult{n: n, err: err}
	}()

	select {
	case result := <-resultCh:
		return result.n, result.err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// WriteContext writes with context cancellation support.
func (e *Endpoint) WriteContext(ctx context.Context, data []byte) (int, error) {
	if !e.IsOpen() {
		return 0, ErrNotOpen
	}

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	fd := e.fd
	resultCh := make(chan ioResult, 1)
	go func() {
		n, err := unix.Write(fd, data)
		resultCh <- ioResult{n: n, err: err}
	}()

	select {
	case result := <-resultCh:
		return result.n, result.err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Drain waits until all output written to the endpoint has been transmitted
func (e *Endpoint) Drain() error {
	if !e.IsOpen() {
		return ErrNotOpen
	}
	return unix.IoctlSetInt(e.fd, unix.TCSBRK, 1)
}

// FlushInput discards any unread input data
func (e *Endpoint) FlushInput() error {
	if !e.IsOpen() {
		return ErrNotOpen
	}
	return unix.IoctlSetInt(e.fd, unix.TCFLSH, unix.TCIFLUSH)
}

// FlushOutput discards any unwritten output data
func (e *Endpoint) FlushOutput() error {
	if !e.IsOpen() {
		return ErrNotOpen
	}
	return unix.IoctlSetInt(e.fd, unix.TCFLSH, unix.TCOFLUSH)
}
