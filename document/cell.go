package document

import (
	"github.com/campaul/takkun/internal/grapheme"
	"github.com/campaul/takkun/style"
)

// tabWidth is the fixed display width of a TAB cell and the number of
// spaces the Tab operation inserts.
const tabWidth = 4

// defaultStyle paints document content: white on dark gray.
var defaultStyle = style.Style{Foreground: 7, Background: 234}

// Cell is one grapheme cluster with its display width and paint style.
// Cells never contain newlines; line structure lives in Document.
type Cell struct {
	Grapheme string
	Width    int
	Style    style.Style
}

// NewCell builds a cell for a single grapheme cluster. TAB occupies a fixed
// four columns; every other cluster gets its measured width, never less
// than one column.
func NewCell(g string) Cell {
	if g == "\t" {
		return Cell{Grapheme: g, Width: tabWidth, Style: defaultStyle}
	}
	w := grapheme.Width(g)
	if w < 1 {
		w = 1
	}
	return Cell{Grapheme: g, Width: w, Style: defaultStyle}
}
