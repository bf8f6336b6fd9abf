package terminal

import (
	"unicode/utf8"

	"github.com/campaul/takkun/internal/grapheme"
)

// byteSource yields input bytes one at a time. ok=false reports that no
// byte arrived within the read window, which is how a lone ESC and the end
// of a burst are recognized.
type byteSource interface {
	ReadByte() (byte, bool)
}

// decoder turns raw tty bytes into events. It is a pure state machine over
// a byteSource so decoding is testable without a terminal.
type decoder struct {
	src byteSource
}

// next decodes one keypress worth of input. It returns no events when the
// read timed out before the first byte.
func (d *decoder) next() []Event {
	b, ok := d.src.ReadByte()
	if !ok {
		return nil
	}
	return d.decode(b)
}

func (d *decoder) decode(b byte) []Event {
	switch {
	case b == 0x1b:
		return []Event{d.escape()}
	case b >= 0x80:
		return d.cluster(b)
	}
	return []Event{keyEvent(b)}
}

func keyEvent(b byte) Event {
	switch b {
	case ctrl('q'):
		return Event{Kind: KindExit}
	case ctrl('s'):
		return Event{Kind: KindSave}
	case ctrl('f'):
		return Event{Kind: KindFind}
	case ctrl('z'):
		return Event{Kind: KindPause}
	case ctrl('n'):
		return Event{Kind: KindNext}
	case ctrl('p'):
		return Event{Kind: KindPrev}
	case ctrl('t'):
		return Event{Kind: KindNew}
	case ctrl('o'):
		return Event{Kind: KindOpen}
	case ctrl('w'):
		return Event{Kind: KindClose}
	case '\r':
		return Event{Kind: KindEnter}
	case 0x08, 0x7f:
		return Event{Kind: KindBackspace}
	case '\t':
		return Event{Kind: KindTab}
	}
	if b >= 0x20 && b <= 0x7e {
		return InputEvent(string(rune(b)))
	}
	return Event{Kind: KindNothing}
}

// escape resolves the byte salad after ESC. A timeout anywhere means the
// user pressed the key itself.
func (d *decoder) escape() Event {
	b, ok := d.src.ReadByte()
	if !ok {
		return Event{Kind: KindEscape}
	}
	switch b {
	case '[':
		return d.bracket()
	case 'O':
		return d.escO()
	}
	return Event{Kind: KindEscape}
}

func (d *decoder) bracket() Event {
	b, ok := d.src.ReadByte()
	if !ok {
		return Event{Kind: KindEscape}
	}
	switch b {
	case 'A':
		return Event{Kind: KindUp}
	case 'B':
		return Event{Kind: KindDown}
	case 'C':
		return Event{Kind: KindRight}
	case 'D':
		return Event{Kind: KindLeft}
	case 'H':
		return Event{Kind: KindHome}
	case 'F':
		return Event{Kind: KindEnd}
	case '1', '3', '4', '5', '6', '7', '8':
		if t, ok := d.src.ReadByte(); !ok || t != '~' {
			return Event{Kind: KindEscape}
		}
		switch b {
		case '1', '7':
			return Event{Kind: KindHome}
		case '4', '8':
			return Event{Kind: KindEnd}
		case '3':
			return Event{Kind: KindDelete}
		case '5':
			return Event{Kind: KindPageUp}
		case '6':
			return Event{Kind: KindPageDown}
		}
	}
	return Event{Kind: KindEscape}
}

func (d *decoder) escO() Event {
	b, ok := d.src.ReadByte()
	if !ok {
		return Event{Kind: KindEscape}
	}
	switch b {
	case 'H':
		return Event{Kind: KindHome}
	case 'F':
		return Event{Kind: KindEnd}
	}
	return Event{Kind: KindEscape}
}

// cluster accumulates UTF-8 input starting at lead byte b into whole
// grapheme clusters, one Input event per cluster. Accumulation stops at a
// timeout or at the next ASCII byte, which is decoded as its own keypress.
func (d *decoder) cluster(b byte) []Event {
	acc, ok := d.rune(b)
	if !ok {
		return []Event{{Kind: KindNothing}}
	}

	var out []Event
	for {
		nb, ok := d.src.ReadByte()
		if !ok {
			return append(out, InputEvent(acc))
		}
		if nb < 0x80 {
			out = append(out, InputEvent(acc))
			return append(out, d.decode(nb)...)
		}
		nr, ok := d.rune(nb)
		if !ok {
			return append(out, InputEvent(acc), Event{Kind: KindNothing})
		}
		if grapheme.Count(acc+nr) == 1 {
			acc += nr
			continue
		}
		out = append(out, InputEvent(acc))
		acc = nr
	}
}

// rune assembles one UTF-8 sequence from its lead byte. Truncated or
// malformed sequences are dropped.
func (d *decoder) rune(lead byte) (string, bool) {
	n := utf8SeqLen(lead)
	if n < 2 {
		return "", false
	}
	buf := make([]byte, 1, n)
	buf[0] = lead
	for len(buf) < n {
		b, ok := d.src.ReadByte()
		if !ok || b&0xc0 != 0x80 {
			return "", false
		}
		buf = append(buf, b)
	}
	if !utf8.Valid(buf) {
		return "", false
	}
	return string(buf), true
}

func utf8SeqLen(lead byte) int {
	switch {
	case lead&0xe0 == 0xc0:
		return 2
	case lead&0xf0 == 0xe0:
		return 3
	case lead&0xf8 == 0xf0:
		return 4
	}
	return 0
}

func ctrl(c byte) byte { return c & 0x1f }
