package ui

import (
	"fmt"
	"strings"

	"github.com/campaul/takkun/document"
	"github.com/campaul/takkun/internal/grapheme"
	"github.com/campaul/takkun/terminal"
)

// Status wraps the whole stack. It turns child errors and Error events
// into a dismissable banner and always draws the bottom bar with the
// document cursor position.
type Status struct {
	child  Component
	errMsg string
	errSet bool
}

func NewStatus(child Component) *Status {
	return &Status{child: child}
}

func (s *Status) Update(e terminal.Event, width int) (bool, error) {
	if e.Kind == terminal.KindError {
		s.errMsg, s.errSet = e.Text, true
		return true, nil
	}

	if s.errSet {
		if e.Kind == terminal.KindEscape {
			s.errMsg, s.errSet = "", false
			return true, nil
		}
		return false, nil
	}

	dirty, err := s.child.Update(e, width)
	if err != nil {
		s.errMsg, s.errSet = err.Error(), true
		return true, nil
	}
	return dirty, nil
}

func (s *Status) Render(width, height int) Window {
	if height <= 0 {
		return Window{}
	}

	w := s.child.Render(width, height-1)

	status := ""
	footStyle := barStyle
	if s.errSet {
		status = "ERROR: " + s.errMsg
		footStyle = alertStyle
	}

	cur := s.Document().Cursor()
	position := fmt.Sprintf("%d:%d", cur.Y+1, cur.X+1)
	pad := maxInt(width-grapheme.StringWidth(status)-grapheme.StringWidth(position)-2, 0)

	footer := " " + status + strings.Repeat(" ", pad) + position + " "
	w.Lines = append(w.Lines, footStyle.Render(footer))
	return w
}

func (s *Status) Document() *document.Document {
	return s.child.Document()
}
