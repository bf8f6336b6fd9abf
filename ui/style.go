package ui

import "github.com/campaul/takkun/style"

// Chrome palette. Content lines keep the per-cell styles the document
// gives them; these cover the tab header, prompts, and the status bar.
var (
	contentStyle = style.Style{Foreground: 7, Background: 234}
	headerStyle  = style.Style{Foreground: 7, Background: 0, Decoration: []style.Decoration{style.Italic, style.Underline}}
	promptStyle  = style.Style{Foreground: 7, Background: 12}
	barStyle     = style.Style{Foreground: 0, Background: 7}
	alertStyle   = style.Style{Foreground: 7, Background: 9}
)
