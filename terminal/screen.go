package terminal

import "fmt"

// Escape sequences shared with the rendering layers.
const (
	ClearLine  = "\x1b[K"
	HideCursor = "\x1b[?25l"
	ShowCursor = "\x1b[?25h"
	CursorHome = "\x1b[H"
)

const (
	enterAltScreen = "\x1b[?1049h\x1b[2J\x1b[H"
	exitAltScreen  = "\x1b[2J\x1b[H\x1b[?1049l"
)

// MoveCursor returns the sequence that places the cursor at 0-based (x, y).
func MoveCursor(x, y int) string {
	return fmt.Sprintf("\x1b[%d;%dH", y+1, x+1)
}
