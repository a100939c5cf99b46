package app

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// TerminalError reports a failure while talking to the terminal device
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string {
	if e.Err == nil {
		return "terminal " + e.Op
	}
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}

// Session owns the terminal while the UI runs: raw mode, alternate screen
// and mouse capture are applied by OpenSession and undone by Close.
type Session struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	closeOnce sync.Once
}

// OpenSession takes over the terminal behind screen
func OpenSession(screen tcell.Screen) (*Session, error) {
	if err := screen.Init(); err != nil {
		return nil, &TerminalError{Op: "init", Err: err}
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	s := &Session{
		screen: screen,
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
	}
	go screen.ChannelEvents(s.events, s.quit)
	return s, nil
}

func (s *Session) Screen() tcell.Screen {
	return s.screen
}

// Events delivers terminal input. It is closed once the session is closed.
func (s *Session) Events() <-chan tcell.Event {
	return s.events
}

// Close restores the terminal. Only the first call has an effect.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
		s.screen.DisableMouse()
		// Fini leaves the alternate screen, exits raw mode and shows the cursor
		s.screen.Fini()
	})
}
