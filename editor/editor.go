package editor

import (
	"strings"

	"github.com/campaul/takkun/document"
	"github.com/campaul/takkun/internal/system"
	"github.com/campaul/takkun/terminal"
	"github.com/campaul/takkun/ui"
)

// Console is the terminal surface the editor drives. *terminal.Terminal
// implements it; tests substitute a fake.
type Console interface {
	Events() <-chan terminal.Event
	Write(frame []byte) error
	Pause() error
	Resume() error
	Restore() error
}

// Editor couples the UI stack to a console and tracks the frame state
// between events.
type Editor struct {
	console Console
	root    ui.Component

	width  int
	height int
	dirty  bool
	paused bool
}

func New(console Console) *Editor {
	root := ui.NewStatus(ui.NewFileChooser(ui.NewFind(ui.NewTabs(ui.NewTextArea(document.Blank())))))
	return &Editor{
		console: console,
		root:    root,
		dirty:   true,
	}
}

// Run drives the editor until an exit event arrives or the console's
// event stream closes. A non-empty file argument is loaded into the
// initial tab before the first frame; a failure there becomes an error
// banner rather than aborting startup.
func (e *Editor) Run(file string) error {
	defer e.console.Restore()

	if file != "" {
		if err := e.root.Document().Open(file); err != nil {
			system.Logger.Error("startup open failed", "file", file, "err", err)
			if _, perr := e.process(terminal.ErrorEvent(err.Error())); perr != nil {
				return perr
			}
		}
	}

	events := e.console.Events()
	for {
		if e.dirty && !e.paused && e.width > 0 && e.height > 0 {
			if err := e.console.Write(e.frame()); err != nil {
				return err
			}
			e.dirty = false
		}

		ev, ok := <-events
		if !ok {
			return nil
		}

		// Process the blocking event plus everything already queued so
		// a paste burst or signal flurry redraws once.
		batch := append([]terminal.Event{ev}, drain(events)...)
		for _, ev := range batch {
			exit, err := e.process(ev)
			if err != nil {
				return err
			}
			if exit {
				system.Logger.Debug("exit requested")
				return nil
			}
		}
	}
}

func (e *Editor) process(ev terminal.Event) (exit bool, err error) {
	switch ev.Kind {
	case terminal.KindResize:
		e.width, e.height = ev.Width, ev.Height
		e.dirty = true

	case terminal.KindPause:
		if err := e.console.Pause(); err != nil {
			return false, err
		}
		e.paused = true

	case terminal.KindResume:
		if err := e.console.Resume(); err != nil {
			return false, err
		}
		e.paused = false
		e.dirty = true

	case terminal.KindExit:
		return true, nil

	default:
		dirty, err := e.root.Update(ev, e.width)
		if err != nil {
			return false, err
		}
		if dirty {
			e.dirty = true
		}
	}

	return false, nil
}

func (e *Editor) frame() []byte {
	w := e.root.Render(e.width, e.height)

	var sb strings.Builder
	sb.WriteString(terminal.HideCursor)
	sb.WriteString(terminal.CursorHome)
	sb.WriteString(strings.Join(w.Lines, "\r\n"))
	sb.WriteString(terminal.MoveCursor(w.CursorX, w.CursorY))
	sb.WriteString(terminal.ShowCursor)
	return []byte(sb.String())
}

func drain(events <-chan terminal.Event) []terminal.Event {
	var out []terminal.Event
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return out
			}
			out = append(out, ev)
		default:
			return out
		}
	}
}
