package terminal

// Kind discriminates terminal events.
type Kind uint8

const (
	KindNothing Kind = iota
	KindInput
	KindUp
	KindDown
	KindLeft
	KindRight
	KindPageUp
	KindPageDown
	KindHome
	KindEnd
	KindTab
	KindDelete
	KindBackspace
	KindEscape
	KindEnter
	KindNext
	KindPrev
	KindNew
	KindOpen
	KindClose
	KindPause
	KindResume
	KindExit
	KindFind
	KindSave
	KindResize
	KindError
)

var kindNames = [...]string{
	KindNothing:   "nothing",
	KindInput:     "input",
	KindUp:        "up",
	KindDown:      "down",
	KindLeft:      "left",
	KindRight:     "right",
	KindPageUp:    "page-up",
	KindPageDown:  "page-down",
	KindHome:      "home",
	KindEnd:       "end",
	KindTab:       "tab",
	KindDelete:    "delete",
	KindBackspace: "backspace",
	KindEscape:    "escape",
	KindEnter:     "enter",
	KindNext:      "next",
	KindPrev:      "prev",
	KindNew:       "new",
	KindOpen:      "open",
	KindClose:     "close",
	KindPause:     "pause",
	KindResume:    "resume",
	KindExit:      "exit",
	KindFind:      "find",
	KindSave:      "save",
	KindResize:    "resize",
	KindError:     "error",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Event is one unit of terminal input. Text carries the grapheme cluster
// for KindInput and the message for KindError; Width and Height are set for
// KindResize. The zero Event is KindNothing.
type Event struct {
	Kind   Kind
	Text   string
	Width  int
	Height int
}

// InputEvent wraps a single grapheme cluster.
func InputEvent(g string) Event {
	return Event{Kind: KindInput, Text: g}
}

// ResizeEvent carries new terminal dimensions.
func ResizeEvent(w, h int) Event {
	return Event{Kind: KindResize, Width: w, Height: h}
}

// ErrorEvent carries a failure for the UI to surface.
func ErrorEvent(msg string) Event {
	return Event{Kind: KindError, Text: msg}
}
