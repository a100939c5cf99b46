package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultTickRate is the interval between two tick callbacks
const DefaultTickRate = 500 * time.Millisecond

// Loop redraws the view, waits for input for at most the rest of the
// current tick, and fires the tick callback once per elapsed tick.
type Loop struct {
	screen   tcell.Screen
	events   <-chan tcell.Event
	list     *SelectableList
	view     *View
	tickRate time.Duration
	onTick   func()
	now      func() time.Time
}

func NewLoop(screen tcell.Screen, events <-chan tcell.Event, list *SelectableList, view *View, tickRate time.Duration) *Loop {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Loop{
		screen:   screen,
		events:   events,
		list:     list,
		view:     view,
		tickRate: tickRate,
		onTick:   func() {},
		now:      time.Now,
	}
}

// OnTick sets the callback invoked on every tick
func (l *Loop) OnTick(fn func()) *Loop {
	if fn == nil {
		fn = func() {}
	}
	l.onTick = fn
	return l
}

// Run blocks until the quit key is pressed or drawing or input fails
func (l *Loop) Run() error {
	lastTick := l.now()
	timer := time.NewTimer(l.tickRate)
	defer timer.Stop()

	for {
		if err := l.draw(); err != nil {
			return err
		}

		remaining := max(0, l.tickRate-l.now().Sub(lastTick))
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(remaining)

		select {
		case event, ok := <-l.events:
			if !ok {
				return &TerminalError{Op: "input closed"}
			}
			if l.handle(event) == actionQuit {
				return nil
			}
		case <-timer.C:
		}

		if l.now().Sub(lastTick) >= l.tickRate {
			l.onTick()
			lastTick = l.now()
		}
	}
}

func (l *Loop) handle(event tcell.Event) action {
	switch event := event.(type) {
	case *tcell.EventKey:
		a := actionFor(event)
		switch a {
		case actionPrevious:
			l.list.Previous()
		case actionNext:
			l.list.Next()
		case actionUnselect:
			l.list.Unselect()
		}
		return a
	case *tcell.EventResize:
		l.screen.Sync()
	}
	return actionNone
}

// draw turns a panic inside a primitive into an error so the caller can
// still restore the terminal
func (l *Loop) draw() (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("render failed: %v", p)
		}
	}()
	l.view.Draw(l.screen)
	return nil
}
