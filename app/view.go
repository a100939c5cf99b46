package app

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	viewMargin      = 1
	selectionMarker = ">> "
	emptyListText   = "No repositories found"
)

var highlightStyle = tcell.StyleDefault.
	Foreground(tcell.ColorBlack).
	Background(tcell.ColorLimeGreen)

// Summary is the static content of the left pane
type Summary struct {
	Organization string
	Project      string
	Visibility   string
	Description  string
}

func (s Summary) text() string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	var keyColor = "[blue]"
	var valueColor = "[white]"

	if s.Organization != "" {
		fmt.Fprintf(w, "%sOrganization%s\t%s\n", keyColor, valueColor, tview.Escape(s.Organization))
	}
	if s.Project != "" {
		fmt.Fprintf(w, "%sProject%s\t%s\n", keyColor, valueColor, tview.Escape(s.Project))
	}
	if s.Visibility != "" {
		fmt.Fprintf(w, "%sVisibility%s\t%s\n", keyColor, valueColor, cases.Title(language.English).String(s.Visibility))
	}
	w.Flush()

	var text strings.Builder
	text.WriteString(buf.String())
	if s.Description != "" {
		text.WriteString("\n" + tview.Escape(s.Description) + "\n")
	}
	text.WriteString("\n[::b]Hotkeys[::-]\n\n")
	text.WriteString(hotkeyText())
	return text.String()
}

// View lays out the summary pane and the repository list side by side
type View struct {
	root    *tview.Flex
	summary *tview.TextView
	list    *listPane
}

// NewView builds the two panes. The list pane reads list on every draw.
func NewView(title string, summary Summary, list *SelectableList) *View {
	summaryView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true).
		SetText(summary.text())
	summaryView.SetBorder(true)

	listView := newListPane(list)
	listView.SetBorder(true).SetTitle(title)

	root := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(summaryView, 0, 1, false).
		AddItem(listView, 0, 1, true)

	return &View{
		root:    root,
		summary: summaryView,
		list:    listView,
	}
}

// Draw renders a full frame and flushes it to the terminal
func (v *View) Draw(screen tcell.Screen) {
	width, height := screen.Size()
	screen.Clear()
	v.root.SetRect(viewMargin, viewMargin, max(0, width-2*viewMargin), max(0, height-2*viewMargin))
	v.root.Draw(screen)
	screen.Show()
}

// listPane draws a SelectableList inside a bordered box, scrolling so the
// selected row stays visible
type listPane struct {
	*tview.Box
	list   *SelectableList
	offset int
}

func newListPane(list *SelectableList) *listPane {
	return &listPane{
		Box:  tview.NewBox(),
		list: list,
	}
}

func (p *listPane) Draw(screen tcell.Screen) {
	p.Box.DrawForSubclass(screen, p)
	x, y, width, height := p.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	items := p.list.Items()
	if len(items) == 0 {
		tview.Print(screen, emptyListText, x, y, width, tview.AlignCenter, tcell.ColorGray)
		return
	}

	selected, hasSelection := p.list.Selected()
	p.scrollTo(selected, hasSelection, height, len(items))

	padding := strings.Repeat(" ", len(selectionMarker))
	for row := 0; row < height && p.offset+row < len(items); row++ {
		index := p.offset + row
		line := tview.Escape(items[index])
		color := tview.Styles.PrimaryTextColor
		if hasSelection {
			if index == selected {
				for col := x; col < x+width; col++ {
					screen.SetContent(col, y+row, ' ', nil, highlightStyle)
				}
				line = selectionMarker + line
				color, _, _ = highlightStyle.Decompose()
			} else {
				line = padding + line
			}
		}
		tview.Print(screen, line, x, y+row, width, tview.AlignLeft, color)
	}
}

func (p *listPane) scrollTo(selected int, hasSelection bool, height, count int) {
	if hasSelection {
		if selected < p.offset {
			p.offset = selected
		} else if selected >= p.offset+height {
			p.offset = selected - height + 1
		}
	}
	if p.offset > count-height {
		p.offset = count - height
	}
	if p.offset < 0 {
		p.offset = 0
	}
}
