package ui

import (
	"github.com/campaul/takkun/document"
	"github.com/campaul/takkun/terminal"
)

// Find wraps a child with an incremental search prompt. While the
// prompt is open it captures all input for the search string.
type Find struct {
	child  Component
	search string
	active bool
}

func NewFind(child Component) *Find {
	return &Find{child: child}
}

func (f *Find) Update(e terminal.Event, width int) (bool, error) {
	if e.Kind == terminal.KindFind {
		f.search = ""
		f.active = true
		return true, nil
	}

	if f.active {
		switch e.Kind {
		case terminal.KindInput:
			f.search += e.Text
		case terminal.KindEnter:
			if f.search != "" {
				f.Document().FindNext(f.search)
			}
		case terminal.KindEscape:
			f.search = ""
			f.active = false
		default:
			return false, nil
		}
		return true, nil
	}

	return f.child.Update(e, width)
}

func (f *Find) Render(width, height int) Window {
	if !f.active {
		return f.child.Render(width, height)
	}
	if height <= 0 {
		return Window{}
	}

	w := f.child.Render(width, height-1)
	w.Lines = append(w.Lines, promptStyle.Render(" FIND: "+f.search+" "))
	return w
}

func (f *Find) Document() *document.Document {
	return f.child.Document()
}
