package ui

import (
	"github.com/campaul/takkun/document"
	"github.com/campaul/takkun/terminal"
)

type chooserMode uint8

const (
	chooseNone chooserMode = iota
	chooseOpen
	chooseSave
)

// FileChooser wraps a child with the open and save-as filename prompts.
// Ctrl+S saves directly when the document already has a filename and
// prompts otherwise.
type FileChooser struct {
	child Component
	mode  chooserMode
	name  string
}

func NewFileChooser(child Component) *FileChooser {
	return &FileChooser{child: child}
}

func (f *FileChooser) Update(e terminal.Event, width int) (bool, error) {
	if f.mode != chooseNone {
		switch e.Kind {
		case terminal.KindInput:
			f.name += e.Text
		case terminal.KindEnter:
			if f.name != "" {
				if err := f.choose(width); err != nil {
					return true, err
				}
				f.mode = chooseNone
				f.name = ""
			}
		case terminal.KindEscape:
			f.mode = chooseNone
			f.name = ""
		default:
			return false, nil
		}
		return true, nil
	}

	switch e.Kind {
	case terminal.KindOpen:
		f.mode = chooseOpen
		f.name = ""
	case terminal.KindSave:
		if f.Document().Filename() != "" {
			if err := f.Document().Save(); err != nil {
				return true, err
			}
		} else {
			f.mode = chooseSave
			f.name = ""
		}
	default:
		return f.child.Update(e, width)
	}

	return true, nil
}

// choose commits the pending prompt. A failure leaves the prompt open so
// the partial name survives alongside the error banner.
func (f *FileChooser) choose(width int) error {
	switch f.mode {
	case chooseOpen:
		if _, err := f.child.Update(terminal.Event{Kind: terminal.KindNew}, width); err != nil {
			return err
		}
		return f.Document().Open(f.name)
	case chooseSave:
		f.Document().SetFilename(f.name)
		return f.Document().Save()
	}
	return nil
}

func (f *FileChooser) Render(width, height int) Window {
	if f.mode == chooseNone {
		return f.child.Render(width, height)
	}
	if height <= 0 {
		return Window{}
	}

	w := f.child.Render(width, height-1)
	prompt := " OPEN: " + f.name + " "
	if f.mode == chooseSave {
		prompt = " SAVE AS: " + f.name + " "
	}
	w.Lines = append(w.Lines, promptStyle.Render(prompt))
	return w
}

func (f *FileChooser) Document() *document.Document {
	return f.child.Document()
}
