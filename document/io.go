package document

import (
	"errors"
	"os"
	"strings"
)

// Open reads path into the document, replacing its contents and resetting
// the cursor. A path that does not exist yet opens as an empty document
// with the name recorded, so saving creates the file.
func (d *Document) Open(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		data = nil
	}

	var rows []*Row
	if text := string(data); text != "" {
		text = strings.TrimSuffix(text, "\n")
		for _, line := range strings.Split(text, "\n") {
			rows = append(rows, NewRow(line))
		}
	}

	d.rows = rows
	d.cursor = Cursor{}
	d.filename = path
	d.version++
	return nil
}

// Save writes the document to its filename, terminating every row with a
// newline. Bytes read by Open come back verbatim, except that a missing
// final newline is added.
func (d *Document) Save() error {
	if d.filename == "" {
		return errors.New("document has no filename")
	}

	var sb strings.Builder
	for _, row := range d.rows {
		sb.WriteString(row.String())
		sb.WriteByte('\n')
	}
	return os.WriteFile(d.filename, []byte(sb.String()), 0o644)
}

// SetFilename records where Save writes.
func (d *Document) SetFilename(name string) { d.filename = name }

// Filename returns the path the document was opened from or saved to;
// empty for an unnamed document.
func (d *Document) Filename() string { return d.filename }

// Name returns the filename, or a placeholder for unnamed documents.
func (d *Document) Name() string {
	if d.filename == "" {
		return "untitled"
	}
	return d.filename
}
