package app

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// Options configures one interactive session
type Options struct {
	Title    string
	Summary  Summary
	TickRate time.Duration
	// OnTick runs once per tick on the UI goroutine
	OnTick func()
}

// Run takes over the terminal, shows items until the user quits, and restores
// the terminal on every exit path
func Run(screen tcell.Screen, items []string, opts Options) error {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}

	session, err := OpenSession(screen)
	if err != nil {
		return err
	}
	defer session.Close()

	// Anything written to the terminal now would tear the frame
	output := log.Writer()
	if output != nil && isTerminalWriter(output) {
		log.SetOutput(io.Discard)
		defer log.SetOutput(output)
	}

	log.Printf("Showing %d repositories", len(items))
	list := NewSelectableList(items)
	view := NewView(opts.Title, opts.Summary, list)

	return NewLoop(session.Screen(), session.Events(), list, view, opts.TickRate).
		OnTick(opts.OnTick).
		Run()
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
