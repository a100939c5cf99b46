package app

import (
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gdamore/tcell/v2"
)

type keyPress struct {
	key tcell.Key
	r   rune
}

func runeKey(r rune) keyPress {
	return keyPress{key: tcell.KeyRune, r: r}
}

func specialKey(k tcell.Key) keyPress {
	return keyPress{key: k}
}

// recordingScreen counts teardown calls and can queue key presses that are
// delivered as soon as the screen is initialised
type recordingScreen struct {
	tcell.SimulationScreen
	pending []keyPress
	initErr error

	finis         atomic.Int32
	mouseDisabled atomic.Int32
}

func newRecordingScreen(keys ...keyPress) *recordingScreen {
	return &recordingScreen{
		SimulationScreen: tcell.NewSimulationScreen("UTF-8"),
		pending:          keys,
	}
}

func (s *recordingScreen) Init() error {
	if s.initErr != nil {
		return s.initErr
	}
	if err := s.SimulationScreen.Init(); err != nil {
		return err
	}
	for _, k := range s.pending {
		s.InjectKey(k.key, k.r, tcell.ModNone)
	}
	return nil
}

func (s *recordingScreen) DisableMouse() {
	s.mouseDisabled.Add(1)
	s.SimulationScreen.DisableMouse()
}

func (s *recordingScreen) Fini() {
	s.finis.Add(1)
	s.SimulationScreen.Fini()
}

var errNoTTY = errors.New("open /dev/tty: no such device or address")

// newTestScreen returns an initialised 80x25 simulation screen
func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

// screenLines returns the visible text of the screen, one string per row
func screenLines(screen tcell.SimulationScreen) []string {
	cells, width, height := screen.GetContents()
	lines := make([]string, height)
	for y := 0; y < height; y++ {
		var line strings.Builder
		for x := 0; x < width; x++ {
			cell := cells[y*width+x]
			if len(cell.Runes) == 0 {
				line.WriteRune(' ')
				continue
			}
			line.WriteRune(cell.Runes[0])
		}
		lines[y] = line.String()
	}
	return lines
}

func findLine(lines []string, substr string) int {
	for i, line := range lines {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}
