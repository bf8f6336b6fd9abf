package document

import (
	"strings"

	"github.com/campaul/takkun/internal/grapheme"
)

// Row is one line of text as a sequence of cells.
type Row struct {
	cells []Cell
}

// NewRow parses a text line into cells, one per grapheme cluster.
func NewRow(line string) *Row {
	clusters := grapheme.Split(line)
	cells := make([]Cell, 0, len(clusters))
	for _, c := range clusters {
		cells = append(cells, NewCell(c))
	}
	return &Row{cells: cells}
}

// Len returns the number of cells in the row.
func (r *Row) Len() int { return len(r.cells) }

// DisplayWidth returns the summed cell width of the whole row.
func (r *Row) DisplayWidth() int {
	return r.WidthTo(len(r.cells))
}

// WidthTo returns the summed width of the cells before index x.
func (r *Row) WidthTo(x int) int {
	x = clampInt(x, 0, len(r.cells))
	w := 0
	for _, c := range r.cells[:x] {
		w += c.Width
	}
	return w
}

// InsertCellsAt inserts cells before index i, clamped into range.
func (r *Row) InsertCellsAt(i int, cells []Cell) {
	i = clampInt(i, 0, len(r.cells))
	next := make([]Cell, 0, len(r.cells)+len(cells))
	next = append(next, r.cells[:i]...)
	next = append(next, cells...)
	next = append(next, r.cells[i:]...)
	r.cells = next
}

// RemoveAt deletes the cell at index i. Out-of-range indices are ignored.
func (r *Row) RemoveAt(i int) {
	if i < 0 || i >= len(r.cells) {
		return
	}
	r.cells = append(r.cells[:i], r.cells[i+1:]...)
}

// SplitAt divides the row before index i. The receiver keeps [0, i); the
// returned row holds the rest.
func (r *Row) SplitAt(i int) *Row {
	i = clampInt(i, 0, len(r.cells))
	rest := append([]Cell(nil), r.cells[i:]...)
	r.cells = r.cells[:i]
	return &Row{cells: rest}
}

// Append moves every cell of other onto the end of the receiver.
func (r *Row) Append(other *Row) {
	r.cells = append(r.cells, other.cells...)
}

// String reassembles the row's text without styling.
func (r *Row) String() string {
	var sb strings.Builder
	for _, c := range r.cells {
		sb.WriteString(c.Grapheme)
	}
	return sb.String()
}

// MatchIndices returns every cell index where pattern begins, including
// overlapping occurrences. Comparison is cluster by cluster, so a pattern
// never matches in the middle of a composed character.
func (r *Row) MatchIndices(pattern string) []int {
	want := grapheme.Split(pattern)
	if len(want) == 0 {
		return nil
	}
	var out []int
	for i := 0; i+len(want) <= len(r.cells); i++ {
		ok := true
		for j, g := range want {
			if r.cells[i+j].Grapheme != g {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// SoftWrap breaks the row into styled display lines. A line is sealed as
// soon as the next cell would reach maxCols, so lines stay narrower than
// maxCols unless a single cell is itself wider. Each line opens with a
// reset plus the style of its first cell; a style change inside a line
// re-emits the sequence. endPad is appended to the final line while its
// width is still short of maxCols. Even an empty row produces one line.
func (r *Row) SoftWrap(maxCols int, endPad string) []string {
	first := defaultStyle
	if len(r.cells) > 0 {
		first = r.cells[0].Style
	}

	var lines []string
	var sb strings.Builder
	sb.WriteString(first.Sequence())
	current := first
	width := 0

	for _, c := range r.cells {
		if width+c.Width >= maxCols {
			lines = append(lines, sb.String())
			sb.Reset()
			sb.WriteString(c.Style.Sequence())
			current = c.Style
			width = 0
		} else if !current.Equal(c.Style) {
			sb.WriteString(c.Style.Sequence())
			current = c.Style
		}
		sb.WriteString(c.Grapheme)
		width += c.Width
	}
	if width < maxCols {
		sb.WriteString(endPad)
	}
	return append(lines, sb.String())
}
