package app

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestSession_CloseRunsTeardownOnce(t *testing.T) {
	screen := newRecordingScreen()
	session, err := OpenSession(screen)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	session.Close()
	session.Close()

	if got := screen.finis.Load(); got != 1 {
		t.Errorf("Expected Fini once, got %d", got)
	}
	if got := screen.mouseDisabled.Load(); got != 1 {
		t.Errorf("Expected mouse capture disabled once, got %d", got)
	}
}

func TestSession_ForwardsEvents(t *testing.T) {
	screen := newRecordingScreen(runeKey('x'))
	session, err := OpenSession(screen)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer session.Close()

	select {
	case ev := <-session.Events():
		keyEvent, ok := ev.(*tcell.EventKey)
		if !ok || keyEvent.Rune() != 'x' {
			t.Errorf("Expected key 'x', got %#v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected injected key to be forwarded")
	}
}

func TestSession_EventsClosedAfterClose(t *testing.T) {
	session, err := OpenSession(newRecordingScreen())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	session.Close()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-session.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("Expected event channel to be closed")
		}
	}
}

func TestOpenSession_InitFailure(t *testing.T) {
	screen := newRecordingScreen()
	screen.initErr = errNoTTY

	session, err := OpenSession(screen)
	if session != nil {
		t.Error("Expected no session")
	}
	var terminalErr *TerminalError
	if !errors.As(err, &terminalErr) || !errors.Is(err, errNoTTY) {
		t.Fatalf("Expected *TerminalError wrapping the init failure, got %v", err)
	}
	if got := screen.finis.Load(); got != 0 {
		t.Errorf("Expected no teardown for a terminal that was never set up, got %d", got)
	}
}
