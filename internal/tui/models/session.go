package models

import (
	"context"
	"sync"

	"github.com/allbin/go-uart"
	"github.com/allbin/go-uart/internal/tui/components"
)

// InputMode represents the current input mode (vim-like)
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeInsert
)

func (m InputMode) String() string {
	switch m {
	case InputModeInsert:
		return "INSERT"
	default:
		return "NORMAL"
	}
}

// StatusMsg reports the outcome of opening the endpoint.
type StatusMsg struct {
	Connected bool
	ApplyErr  error
	Error     error
}

// Session holds the shared state of an interactive terminal session:
// the endpoint, captured traffic, and the current input mode.
type Session struct {
	endpoint *uart.Endpoint

	connected bool
	frames    []components.FrameMsg
	err       error

	inputMode InputMode

	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.RWMutex
}

func NewSession(endpoint *uart.Endpoint) *Session {
	ctx, cancel := context.WithCancel(context.Background())

	return &Session{
		endpoint:  endpoint,
		frames:    make([]components.FrameMsg, 0),
		inputMode: InputModeNormal,
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (s *Session) Endpoint() *uart.Endpoint {
	return s.endpoint
}

func (s *Session) IsConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

func (s *Session) SetConnected(connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = connected
}

func (s *Session) Error() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Session) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *Session) Frames() []components.FrameMsg {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frames
}

func (s *Session) AddFrame(msg components.FrameMsg) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, msg)
}

func (s *Session) ClearFrames() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = s.frames[:0]
}

func (s *Session) InputMode() InputMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputMode
}

func (s *Session) SetInputMode(mode InputMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputMode = mode
}

func (s *Session) IsInInsertMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputMode == InputModeInsert
}

func (s *Session) Context() context.Context {
	return s.ctx
}

func (s *Session) Cancel() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Cleanup stops the read loop and closes the endpoint.
func (s *Session) Cleanup() {
	if s.cancel != nil {
		s.cancel()
	}

	s.mu.Lock()
	if s.endpoint != nil {
		s.endpoint.Close()
	}
	s.connected = false
	s.mu.Unlock()
}
