// Package grapheme wraps uniseg segmentation and runewidth measurement for
// the rest of the editor. All cursor and wrap arithmetic is defined over
// grapheme clusters, never bytes or runes.
package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Width returns the terminal-cell width of a single grapheme cluster.
// runewidth decides; uniseg breaks ties for clusters runewidth measures as
// zero (some emoji sequences). Tab handling lives above this package.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// StringWidth returns the total cell width of text, cluster by cluster.
func StringWidth(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n += Width(g.Str())
	}
	return n
}
