package ui

import (
	"github.com/campaul/takkun/document"
	"github.com/campaul/takkun/terminal"
)

// TextArea is the leaf component. It owns a document and renders it
// through a soft-wrapping viewport that follows the cursor.
type TextArea struct {
	doc          *document.Document
	windowOffset int
	layout       layoutCache
}

type layoutKey struct {
	version uint64
	width   int
}

// layoutCache memoizes the wrapped form of every document row so that
// cursor motion does not re-wrap the whole document each frame. Content
// edits bump the document version and invalidate it; width changes do
// the same through the key.
type layoutCache struct {
	valid bool
	key   layoutKey

	lines []string
	first []int
}

func NewTextArea(doc *document.Document) *TextArea {
	return &TextArea{doc: doc}
}

func (t *TextArea) Update(e terminal.Event, width int) (bool, error) {
	switch e.Kind {
	case terminal.KindInput:
		t.doc.Insert(e.Text)

	case terminal.KindUp:
		t.up(width)
	case terminal.KindDown:
		t.down(width)
	case terminal.KindLeft:
		t.doc.Left()
	case terminal.KindRight:
		t.doc.Right()

	case terminal.KindHome:
		t.doc.StartOfLine()
	case terminal.KindEnd:
		t.doc.EndOfLine()

	case terminal.KindTab:
		t.doc.Tab()
	case terminal.KindDelete:
		t.doc.DeleteNext()
	case terminal.KindBackspace:
		t.doc.DeletePrev()
	case terminal.KindEnter:
		t.doc.InsertLine()

	default:
		return false, nil
	}

	return true, nil
}

// up moves one visual line towards the top. Inside a wrapped row this is
// a plain column shift; crossing into the row above lands on its last
// visual line with the column preserved. From the first visual line of
// the first row the cursor moves to column zero.
func (t *TextArea) up(width int) {
	if width <= 0 {
		return
	}
	cur := t.doc.Cursor()
	switch {
	case cur.X >= width:
		t.doc.SetCursorX(cur.X - width)
	case cur.Y == 0:
		t.doc.SetCursorX(0)
	default:
		t.doc.Up()
		t.doc.SetCursorX(t.doc.Cursor().X + (t.doc.CurrentLineLen()/width)*width)
	}
}

func (t *TextArea) down(width int) {
	if width <= 0 || t.doc.RowCount() == 0 {
		return
	}
	cur := t.doc.Cursor()
	if cur.X+width < t.doc.CurrentLineLen() {
		t.doc.SetCursorX(cur.X + width)
	} else {
		t.doc.SetCursorX(cur.X % width)
		t.doc.Down()
	}
}

func (t *TextArea) Render(width, height int) Window {
	if width <= 0 || height <= 0 {
		return Window{}
	}

	layout := t.ensureLayout(width)

	var cx, cy int
	if cur := t.doc.Cursor(); cur.Y < len(layout.first) {
		dx := t.doc.CursorDisplayX()
		cx = dx % width
		cy = layout.first[cur.Y] + dx/width
	}
	if total := len(layout.lines); total > 0 && cy >= total {
		cy = total - 1
	}

	if cy < t.windowOffset {
		t.windowOffset = cy
	}
	if cy > t.windowOffset+height-1 {
		t.windowOffset = cy - height + 1
	}
	cy -= t.windowOffset

	last := minInt(t.windowOffset+height, len(layout.lines))
	lines := make([]string, 0, height)
	lines = append(lines, layout.lines[t.windowOffset:last]...)
	for len(lines) < height {
		lines = append(lines, "~"+terminal.ClearLine)
	}
	for i, l := range lines {
		lines[i] = contentStyle.Render(l)
	}

	return Window{Lines: lines, CursorX: cx, CursorY: cy}
}

func (t *TextArea) ensureLayout(width int) layoutCache {
	key := layoutKey{version: t.doc.Version(), width: width}
	if t.layout.valid && t.layout.key == key {
		return t.layout
	}

	cache := layoutCache{
		valid: true,
		key:   key,
		lines: make([]string, 0, t.doc.RowCount()),
		first: make([]int, t.doc.RowCount()),
	}
	for i := 0; i < t.doc.RowCount(); i++ {
		cache.first[i] = len(cache.lines)
		cache.lines = append(cache.lines, t.doc.Row(i).SoftWrap(width, terminal.ClearLine)...)
	}

	t.layout = cache
	return cache
}

func (t *TextArea) Document() *document.Document {
	return t.doc
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
