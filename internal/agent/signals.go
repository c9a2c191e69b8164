package agent

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// SignalController latches SIGINT/SIGTERM so the runner can stop between
// rounds instead of mid-keystroke.
type SignalController struct {
	ch        chan os.Signal
	mu        sync.Mutex
	triggered bool
	closeOnce sync.Once
}

func NewSignalController() *SignalController {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	return &SignalController{ch: ch}
}

// Trigger marks the game as interrupted without a real signal.
func (s *SignalController) Trigger() {
	s.mu.Lock()
	s.triggered = true
	s.mu.Unlock()
}

func (s *SignalController) Interrupted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.triggered {
		return true
	}
	select {
	case <-s.ch:
		s.triggered = true
	default:
	}
	return s.triggered
}

func (s *SignalController) Close() {
	s.closeOnce.Do(func() {
		signal.Stop(s.ch)
	})
}
