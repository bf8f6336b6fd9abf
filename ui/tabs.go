package ui

import (
	"fmt"
	"strings"

	"github.com/campaul/takkun/document"
	"github.com/campaul/takkun/internal/grapheme"
	"github.com/campaul/takkun/terminal"
)

// Tabs multiplexes children, one per open document. The child list is
// never empty: closing the last tab replaces it with a blank one.
type Tabs struct {
	children []Component
	selected int
}

func NewTabs(child Component) *Tabs {
	return &Tabs{children: []Component{child}}
}

func (t *Tabs) current() Component {
	return t.children[t.selected]
}

func (t *Tabs) Update(e terminal.Event, width int) (bool, error) {
	switch e.Kind {
	case terminal.KindNext:
		t.selected = (t.selected + 1) % len(t.children)
	case terminal.KindPrev:
		t.selected = (t.selected + len(t.children) - 1) % len(t.children)
	case terminal.KindNew:
		t.children = append(t.children, nil)
		copy(t.children[t.selected+2:], t.children[t.selected+1:])
		t.children[t.selected+1] = NewTextArea(document.Blank())
		t.selected++
	case terminal.KindClose:
		t.children = append(t.children[:t.selected], t.children[t.selected+1:]...)
		if len(t.children) == 0 {
			t.children = append(t.children, NewTextArea(document.Blank()))
		}
		t.selected = (t.selected + len(t.children) - 1) % len(t.children)
	default:
		return t.current().Update(e, width)
	}

	return true, nil
}

func (t *Tabs) Render(width, height int) Window {
	if height <= 0 {
		return Window{}
	}

	child := t.current().Render(width, height-1)

	text := fmt.Sprintf("%s (%d/%d)", t.Document().Name(), t.selected+1, len(t.children))
	side := maxInt(width-grapheme.StringWidth(text), 0) / 2
	header := strings.Repeat(" ", side) + text + strings.Repeat(" ", side)
	if grapheme.StringWidth(header) < width {
		header += " "
	}

	lines := append([]string{headerStyle.Render(header)}, child.Lines...)
	return Window{Lines: lines, CursorX: child.CursorX, CursorY: child.CursorY + 1}
}

func (t *Tabs) Document() *document.Document {
	return t.current().Document()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
