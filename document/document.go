package document

import "strings"

// Cursor addresses a cell within a document: X is a cell index into row Y.
// Cursor coordinates are never display columns; those belong to the UI.
type Cursor struct {
	X int
	Y int
}

// Document is an ordered sequence of rows plus the cursor that edits act
// through. A blank document has no rows at all; the first insert creates
// row zero.
type Document struct {
	rows     []*Row
	cursor   Cursor
	filename string
	version  uint64
}

// Blank returns an empty, unnamed document.
func Blank() *Document {
	return &Document{}
}

// Cursor returns the current cursor position.
func (d *Document) Cursor() Cursor { return d.cursor }

// RowCount returns the number of rows. A blank document has zero.
func (d *Document) RowCount() int { return len(d.rows) }

// Row returns the row at index i.
func (d *Document) Row(i int) *Row { return d.rows[i] }

// Text reassembles the document, rows joined by newlines.
func (d *Document) Text() string {
	var sb strings.Builder
	for i, row := range d.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(row.String())
	}
	return sb.String()
}

// Version increases on every content mutation. Cursor motion does not
// count; renderers key caches on (Version, width).
func (d *Document) Version() uint64 { return d.version }

// CurrentLineLen returns the cell count of the cursor row.
func (d *Document) CurrentLineLen() int { return d.rowLen(d.cursor.Y) }

// CursorDisplayX returns the display column of the cursor: the summed
// width of the cells to its left.
func (d *Document) CursorDisplayX() int {
	if len(d.rows) == 0 {
		return 0
	}
	return d.rows[d.cursor.Y].WidthTo(d.cursor.X)
}

// SetCursorX places the cursor at cell index x on the current row, clamped
// into the row.
func (d *Document) SetCursorX(x int) {
	d.cursor.X = clampInt(x, 0, d.CurrentLineLen())
}

// Insert places a single grapheme cluster at the cursor and advances past
// it. The first insert into a blank document creates row zero.
func (d *Document) Insert(g string) {
	if len(d.rows) == 0 {
		d.rows = append(d.rows, NewRow(""))
	}
	d.rows[d.cursor.Y].InsertCellsAt(d.cursor.X, []Cell{NewCell(g)})
	d.cursor.X++
	d.version++
}

// InsertLine splits the current row at the cursor and moves to the start
// of the new row. No-op on a blank document.
func (d *Document) InsertLine() {
	if len(d.rows) == 0 {
		return
	}
	rest := d.rows[d.cursor.Y].SplitAt(d.cursor.X)
	d.rows = append(d.rows, nil)
	copy(d.rows[d.cursor.Y+2:], d.rows[d.cursor.Y+1:])
	d.rows[d.cursor.Y+1] = rest
	d.cursor.Y++
	d.cursor.X = 0
	d.version++
}

// DeletePrev removes the cell before the cursor. At the start of a row it
// joins the row onto the previous one, leaving the cursor at the seam.
func (d *Document) DeletePrev() {
	switch {
	case d.cursor.X > 0:
		d.rows[d.cursor.Y].RemoveAt(d.cursor.X - 1)
		d.cursor.X--
		d.version++
	case d.cursor.Y > 0:
		row := d.rows[d.cursor.Y]
		d.rows = append(d.rows[:d.cursor.Y], d.rows[d.cursor.Y+1:]...)
		d.cursor.Y--
		d.cursor.X = d.rows[d.cursor.Y].Len()
		d.rows[d.cursor.Y].Append(row)
		d.version++
	}
}

// DeleteNext removes the cell under the cursor by stepping right and
// deleting backward. No-op at the very end of the document.
func (d *Document) DeleteNext() {
	if len(d.rows) == 0 {
		return
	}
	if d.cursor.Y == len(d.rows)-1 && d.cursor.X == d.rows[d.cursor.Y].Len() {
		return
	}
	d.Right()
	d.DeletePrev()
}

// Tab inserts four spaces.
func (d *Document) Tab() {
	for i := 0; i < tabWidth; i++ {
		d.Insert(" ")
	}
}

// Left moves one cell left, wrapping to the end of the previous row.
func (d *Document) Left() {
	switch {
	case d.cursor.X > 0:
		d.cursor.X--
	case d.cursor.Y > 0:
		d.cursor.Y--
		d.cursor.X = d.rows[d.cursor.Y].Len()
	}
}

// Right moves one cell right, wrapping to the start of the next row.
func (d *Document) Right() {
	switch {
	case d.cursor.X < d.rowLen(d.cursor.Y):
		d.cursor.X++
	case d.cursor.Y < len(d.rows)-1:
		d.cursor.Y++
		d.cursor.X = 0
	}
}

// Up moves one row up, clamping the cursor into the shorter row. On the
// top row it moves to the start of the line instead.
func (d *Document) Up() {
	if d.cursor.Y == 0 {
		d.cursor.X = 0
		return
	}
	d.cursor.Y--
	d.cursor.X = minInt(d.cursor.X, d.rows[d.cursor.Y].Len())
}

// Down moves one row down, clamping the cursor into the shorter row. On
// the bottom row it moves to the end of the line instead.
func (d *Document) Down() {
	if d.cursor.Y >= len(d.rows)-1 {
		d.cursor.X = d.rowLen(d.cursor.Y)
		return
	}
	d.cursor.Y++
	d.cursor.X = minInt(d.cursor.X, d.rows[d.cursor.Y].Len())
}

// StartOfLine moves the cursor to cell zero.
func (d *Document) StartOfLine() { d.cursor.X = 0 }

// EndOfLine moves the cursor past the last cell of the row.
func (d *Document) EndOfLine() { d.cursor.X = d.rowLen(d.cursor.Y) }

func (d *Document) rowLen(y int) int {
	if y < 0 || y >= len(d.rows) {
		return 0
	}
	return d.rows[y].Len()
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
