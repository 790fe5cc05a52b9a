package uart

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestContextIORejectedWhenNotOpen(t *testing.T) {
	ep, err := NewEndpoint("/dev/ttyUSB0")
	if err != nil {
		t.Fatalf("NewEndpoint failed: %v", err)
	}

	ctx := context.Background()
	buf := make([]byte, 8)
	if _, err := ep.ReadContext(ctx, buf); !errors.Is(err, ErrNotOpen) {
		t.Errorf("ReadContext: expected ErrNotOpen, got %v", err)
	}
	if _, err := ep.WriteContext(ctx, []byte("x")); !errors.Is(err, ErrNotOpen) {
		t.Errorf("WriteContext: expected ErrNotOpen, got %v", err)
	}
	if err := ep.FlushInput(); !errors.Is(err, ErrNotOpen) {
		t.Errorf("FlushInput: expected ErrNotOpen, got %v", err)
	}
	if err := ep.FlushOutput(); !errors.Is(err, ErrNotOpen) {
		t.Errorf("FlushOutput: expected ErrNotOpen, got %v", err)
	}
	if err := ep.SetRTS(true); !errors.Is(err, ErrNotOpen) {
		t.Errorf("SetRTS: expected ErrNotOpen, got %v", err)
	}
	if err := ep.SetDTR(true); !errors.Is(err, ErrNotOpen) {
		t.Errorf("SetDTR: expected ErrNotOpen, got %v", err)
	}
}

func TestReadContextAlreadyCancelled(t *testing.T) {
	ep := ptmxOrSkip(t)

	if err := ep.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer ep.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	buf := make([]byte, 8)
	if _, err := ep.ReadContext(ctx, buf); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestReadContextDeadline(t *testing.T) {
	ep := ptmxOrSkip(t)

	if err := ep.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer ep.Close()

	// Nothing is connected to the pty slave, so the read blocks until the
	// deadline fires.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	buf := make([]byte, 8)
	_, err := ep.ReadContext(ctx, buf)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected context.DeadlineExceeded, got %v", err)
	}
}

func TestWriteContextOnPty(t *testing.T) {
	ep := ptmxOrSkip(t)

	if err := ep.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer ep.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	n, err := ep.WriteContext(ctx, []byte("ping"))
	if err != nil {
		t.Fatalf("WriteContext failed: %v", err)
	}
	if n != 4 {
		t.Errorf("WriteContext returned %d, want 4", n)
	}
}
