package document

import (
	"regexp"
	"testing"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func TestNewRow_CellWidths(t *testing.T) {
	cases := []struct {
		line  string
		cells int
		width int
	}{
		{line: "abc", cells: 3, width: 3},
		{line: "\t", cells: 1, width: 4},
		{line: "a\tb", cells: 3, width: 6},
		{line: "世界", cells: 2, width: 4},
		{line: "éx", cells: 2, width: 2},
		{line: "", cells: 0, width: 0},
	}

	for _, tc := range cases {
		r := NewRow(tc.line)
		if got := r.Len(); got != tc.cells {
			t.Fatalf("NewRow(%q) len=%d, want %d", tc.line, got, tc.cells)
		}
		if got := r.DisplayWidth(); got != tc.width {
			t.Fatalf("NewRow(%q) width=%d, want %d", tc.line, got, tc.width)
		}
	}
}

func TestRow_InsertRemove(t *testing.T) {
	r := NewRow("ac")
	r.InsertCellsAt(1, []Cell{NewCell("b")})
	if got, want := r.String(), "abc"; got != want {
		t.Fatalf("after insert: %q, want %q", got, want)
	}

	r.RemoveAt(0)
	if got, want := r.String(), "bc"; got != want {
		t.Fatalf("after remove: %q, want %q", got, want)
	}

	r.RemoveAt(5)
	if got, want := r.String(), "bc"; got != want {
		t.Fatalf("out-of-range remove changed row: %q, want %q", got, want)
	}
}

func TestRow_SplitAppendRoundTrip(t *testing.T) {
	r := NewRow("hello")
	rest := r.SplitAt(2)
	if got, want := r.String(), "he"; got != want {
		t.Fatalf("head=%q, want %q", got, want)
	}
	if got, want := rest.String(), "llo"; got != want {
		t.Fatalf("tail=%q, want %q", got, want)
	}

	r.Append(rest)
	if got, want := r.String(), "hello"; got != want {
		t.Fatalf("rejoined=%q, want %q", got, want)
	}
}

func TestRow_MatchIndices(t *testing.T) {
	cases := []struct {
		line    string
		pattern string
		want    []int
	}{
		{line: "barfoo", pattern: "foo", want: []int{3}},
		{line: "aaa", pattern: "aa", want: []int{0, 1}},
		{line: "abc", pattern: "x", want: nil},
		{line: "abc", pattern: "", want: nil},
		{line: "ée", pattern: "e", want: []int{1}},
	}

	for _, tc := range cases {
		got := NewRow(tc.line).MatchIndices(tc.pattern)
		if len(got) != len(tc.want) {
			t.Fatalf("MatchIndices(%q, %q)=%v, want %v", tc.line, tc.pattern, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("MatchIndices(%q, %q)=%v, want %v", tc.line, tc.pattern, got, tc.want)
			}
		}
	}
}

func TestRow_SoftWrap_TenCellsAtFourCols(t *testing.T) {
	r := NewRow("aaaaaaaaaa")

	lines := r.SoftWrap(4, "")
	want := []string{"aaa", "aaa", "aaa", "a"}
	if len(lines) != len(want) {
		t.Fatalf("lines=%d, want %d", len(lines), len(want))
	}
	for i := range want {
		if got := stripANSI(lines[i]); got != want[i] {
			t.Fatalf("line %d=%q, want %q", i, got, want[i])
		}
	}
}

func TestRow_SoftWrap_LinesStayUnderLimit(t *testing.T) {
	rows := []string{"", "a", "hello world", "aaaaaaaaaa", "wide 世界 mix", "tabs\tinside\there"}
	for _, line := range rows {
		r := NewRow(line)
		for cols := 5; cols <= 12; cols++ {
			for i, wrapped := range r.SoftWrap(cols, "") {
				if w := NewRow(stripANSI(wrapped)).DisplayWidth(); w >= cols {
					t.Fatalf("SoftWrap(%q, %d) line %d width=%d, want < %d", line, cols, i, w, cols)
				}
			}
		}
	}
}

func TestRow_SoftWrap_EmptyRowEmitsOnePaddedLine(t *testing.T) {
	lines := NewRow("").SoftWrap(10, "\x1b[K")
	if len(lines) != 1 {
		t.Fatalf("lines=%d, want 1", len(lines))
	}
	want := defaultStyle.Sequence() + "\x1b[K"
	if lines[0] != want {
		t.Fatalf("line=%q, want %q", lines[0], want)
	}
}

func TestRow_SoftWrap_EndPadOnlyWhileShort(t *testing.T) {
	// Width 3 line at cols 4 is short, so the pad lands on it.
	lines := NewRow("aaa").SoftWrap(4, "#")
	if got := stripANSI(lines[len(lines)-1]); got != "aaa#" {
		t.Fatalf("padded line=%q, want %q", got, "aaa#")
	}

	// A single cell as wide as cols fills its line; no pad.
	lines = NewRow("\t").SoftWrap(4, "#")
	if got := stripANSI(lines[len(lines)-1]); got != "\t" {
		t.Fatalf("full line=%q, want %q", got, "\t")
	}
}

func TestRow_SoftWrap_PrefixesEveryLineWithStyle(t *testing.T) {
	prefix := defaultStyle.Sequence()
	for _, line := range NewRow("aaaaaaaaaa").SoftWrap(4, "") {
		if len(line) < len(prefix) || line[:len(prefix)] != prefix {
			t.Fatalf("line %q lacks style prefix %q", line, prefix)
		}
	}
}
