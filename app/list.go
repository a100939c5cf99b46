package app

// SelectableList is an ordered set of labels with at most one highlighted
// entry. Navigation wraps around at both ends.
type SelectableList struct {
	items []string
	// selected is -1 when nothing is highlighted
	selected int
}

// NewSelectableList copies items into a list with nothing selected
func NewSelectableList(items []string) *SelectableList {
	owned := make([]string, len(items))
	copy(owned, items)
	return &SelectableList{items: owned, selected: -1}
}

// Next moves the selection forward, wrapping from the last item to the first
func (l *SelectableList) Next() {
	if len(l.items) == 0 {
		return
	}
	switch {
	case l.selected < 0:
		l.selected = 0
	case l.selected >= len(l.items)-1:
		l.selected = 0
	default:
		l.selected++
	}
}

// Previous moves the selection backward, wrapping from the first item to the last
func (l *SelectableList) Previous() {
	if len(l.items) == 0 {
		return
	}
	switch {
	case l.selected < 0:
		l.selected = 0
	case l.selected == 0:
		l.selected = len(l.items) - 1
	default:
		l.selected--
	}
}

// Unselect clears the selection
func (l *SelectableList) Unselect() {
	l.selected = -1
}

// Selected returns the highlighted index and whether there is one
func (l *SelectableList) Selected() (int, bool) {
	return l.selected, l.selected >= 0
}

func (l *SelectableList) Items() []string {
	return l.items
}

func (l *SelectableList) Len() int {
	return len(l.items)
}
