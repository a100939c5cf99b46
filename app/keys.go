package app

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/gdamore/tcell/v2"
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionPrevious
	actionNext
	actionUnselect
)

// actionFor maps a key press to what the list or loop should do
func actionFor(event *tcell.EventKey) action {
	switch event.Key() {
	case tcell.KeyUp:
		return actionPrevious
	case tcell.KeyDown:
		return actionNext
	case tcell.KeyLeft:
		return actionUnselect
	case tcell.KeyCtrlC:
		// Raw mode delivers Ctrl+C as a key instead of SIGINT
		return actionQuit
	case tcell.KeyRune:
		if event.Rune() == 'q' {
			return actionQuit
		}
	}
	return actionNone
}

func hotkeyText() string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "↓\tNext repository")
	fmt.Fprintln(w, "↑\tPrevious repository")
	fmt.Fprintln(w, "←\tClear selection")
	fmt.Fprintln(w, "q\tExit application")
	w.Flush()
	return buf.String()
}
