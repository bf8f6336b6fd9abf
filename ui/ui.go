package ui

import (
	"github.com/campaul/takkun/document"
	"github.com/campaul/takkun/terminal"
)

// Window is a rendered frame fragment: styled lines and the cursor
// position within them, both relative to the fragment's top left.
type Window struct {
	Lines   []string
	CursorX int
	CursorY int
}

// Component is one layer of the editor's UI stack.
//
// Update reports whether the event changed visible state; false with a
// nil error means the caller may skip the next draw. A wrapper that
// recognizes an event handles it and must not forward it; anything else
// goes to the child verbatim.
//
// Render returns exactly height lines for any height >= 0. An active
// wrapper reserves one of those lines for its banner and renders the
// child one line shorter.
type Component interface {
	Update(e terminal.Event, width int) (bool, error)
	Render(width, height int) Window
	Document() *document.Document
}
