package document

// FindNext moves the cursor to the next occurrence of text, scanning in
// row order from the position strictly after the cursor and wrapping to
// the top when nothing follows. The cursor stays put when the document has
// no match at all. Empty patterns match nothing.
func (d *Document) FindNext(text string) {
	if text == "" {
		return
	}

	type match struct{ x, y int }
	var matches []match
	for y, row := range d.rows {
		for _, x := range row.MatchIndices(text) {
			matches = append(matches, match{x: x, y: y})
		}
	}
	if len(matches) == 0 {
		return
	}

	for _, m := range matches {
		if m.y > d.cursor.Y || (m.y == d.cursor.Y && m.x > d.cursor.X) {
			d.cursor = Cursor{X: m.x, Y: m.y}
			return
		}
	}
	d.cursor = Cursor{X: matches[0].x, Y: matches[0].y}
}
