// Package style renders text spans as 256-color SGR escape sequences.
//
// Every sequence begins with a full attribute reset, so emitting a styled
// span never depends on what the terminal was showing before it.
package style

import (
	"fmt"
	"strings"
)

// Decoration selects an SGR text attribute.
type Decoration uint8

const (
	Italic Decoration = iota
	Underline
)

// Style describes how a span of text is painted: 256-color palette indices
// for foreground and background plus zero or more decorations.
type Style struct {
	Foreground uint8
	Background uint8
	Decoration []Decoration
}

// Sequence returns the escape prefix that activates s: an attribute reset,
// the decorations in slice order, then foreground and background colors.
func (s Style) Sequence() string {
	var sb strings.Builder
	sb.WriteString("\x1b[0m")
	for _, d := range s.Decoration {
		switch d {
		case Italic:
			sb.WriteString("\x1b[3m")
		case Underline:
			sb.WriteString("\x1b[4m")
		}
	}
	fmt.Fprintf(&sb, "\x1b[38;5;%dm\x1b[48;5;%dm", s.Foreground, s.Background)
	return sb.String()
}

// Render returns text prefixed with the sequence for s.
func (s Style) Render(text string) string {
	return s.Sequence() + text
}

// Equal reports whether two styles paint identically.
func (s Style) Equal(o Style) bool {
	if s.Foreground != o.Foreground || s.Background != o.Background {
		return false
	}
	if len(s.Decoration) != len(o.Decoration) {
		return false
	}
	for i, d := range s.Decoration {
		if o.Decoration[i] != d {
			return false
		}
	}
	return true
}
