package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/campaul/takkun/internal/system"
)

// Terminal owns the tty for the lifetime of the editor. All mode switches
// happen on the caller's goroutine; the reader and signal goroutines only
// ever push events.
type Terminal struct {
	in     *os.File
	out    *os.File
	saved  unix.Termios
	events chan Event
	active bool
}

// Open verifies the tty, saves its termios, enters the alternate screen and
// raw mode, and starts the input and signal goroutines. The first event on
// the channel is a Resize carrying the initial dimensions. The caller must
// Restore before exiting; pairing Open with a deferred Restore also covers
// panic unwinding.
func Open(in, out *os.File) (*Terminal, error) {
	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return nil, errors.New("terminal: stdin and stdout must be a tty")
	}

	saved, err := unix.IoctlGetTermios(int(in.Fd()), ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("terminal: read termios: %w", err)
	}

	t := &Terminal{
		in:     in,
		out:    out,
		saved:  *saved,
		events: make(chan Event, 64),
	}
	if _, err := t.out.WriteString(enterAltScreen); err != nil {
		return nil, fmt.Errorf("terminal: enter alternate screen: %w", err)
	}
	if err := t.enterRaw(); err != nil {
		t.out.WriteString(exitAltScreen)
		return nil, err
	}
	t.active = true

	go t.readInput()
	go t.watchSignals()
	t.pushResize()

	system.Logger.Debug("terminal opened", "fd", in.Fd())
	return t, nil
}

// Events returns the serialized stream of keyboard and signal events.
func (t *Terminal) Events() <-chan Event { return t.events }

// Write sends one rendered frame to the tty.
func (t *Terminal) Write(frame []byte) error {
	_, err := t.out.Write(frame)
	return err
}

// Size reports the terminal dimensions in character cells.
func (t *Terminal) Size() (int, int, error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("terminal: window size: %w", err)
	}
	return w, h, nil
}

// Pause hands the tty back to the shell and stops the process with SIGTSTP.
// The signal bridge turns the eventual SIGCONT into Resize and Resume
// events, at which point the editor calls Resume.
func (t *Terminal) Pause() error {
	system.Logger.Debug("pausing")
	if err := t.leave(); err != nil {
		return err
	}
	return unix.Kill(os.Getpid(), unix.SIGTSTP)
}

// Resume re-enters the alternate screen and raw mode after a Pause.
func (t *Terminal) Resume() error {
	system.Logger.Debug("resuming")
	if _, err := t.out.WriteString(enterAltScreen); err != nil {
		return fmt.Errorf("terminal: enter alternate screen: %w", err)
	}
	if err := t.enterRaw(); err != nil {
		return err
	}
	t.active = true
	return nil
}

// Restore leaves raw mode and the alternate screen. Calling it on an
// already-restored terminal is a no-op.
func (t *Terminal) Restore() error {
	return t.leave()
}

func (t *Terminal) leave() error {
	if !t.active {
		return nil
	}
	t.active = false

	saved := t.saved
	err := unix.IoctlSetTermios(int(t.in.Fd()), ioctlWriteTermios, &saved)
	if _, werr := t.out.WriteString(exitAltScreen); err == nil && werr != nil {
		err = werr
	}
	if err != nil {
		return fmt.Errorf("terminal: restore: %w", err)
	}
	return nil
}

// enterRaw applies the raw-mode termios deltas. VMIN=0 with VTIME=1 makes
// every read return within a tenth of a second, which is what lets a lone
// ESC be told apart from an escape sequence.
func (t *Terminal) enterRaw() error {
	raw := t.saved
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(int(t.in.Fd()), ioctlWriteTermios, &raw); err != nil {
		return fmt.Errorf("terminal: set raw mode: %w", err)
	}
	return nil
}

func (t *Terminal) readInput() {
	src := &fdSource{f: t.in}
	d := &decoder{src: src}
	for {
		for _, e := range d.next() {
			t.events <- e
		}
		if err := src.takeErr(); err != nil {
			system.Logger.Error("input read failed", "err", err)
			t.events <- ErrorEvent(err.Error())
			time.Sleep(100 * time.Millisecond)
		}
	}
}

// watchSignals bridges job-control and resize signals into the event
// stream. signal.Notify is the runtime's async-signal-safe delivery path,
// so no handler code runs in signal context.
func (t *Terminal) watchSignals() {
	ch := make(chan os.Signal, 8)
	signal.Notify(ch, unix.SIGWINCH, unix.SIGCONT)
	for sig := range ch {
		switch sig {
		case unix.SIGWINCH:
			t.pushResize()
		case unix.SIGCONT:
			t.pushResize()
			t.events <- Event{Kind: KindResume}
		}
	}
}

func (t *Terminal) pushResize() {
	w, h, err := t.Size()
	if err != nil {
		t.events <- ErrorEvent(err.Error())
		return
	}
	t.events <- ResizeEvent(w, h)
}

// fdSource reads single bytes from the tty. With VMIN=0 the kernel returns
// empty reads after the VTIME window; Go's file layer reports those as
// io.EOF, which maps onto the decoder's timeout. Hard errors are parked for
// the read loop to surface.
type fdSource struct {
	f   *os.File
	err error
}

func (s *fdSource) ReadByte() (byte, bool) {
	var buf [1]byte
	n, err := s.f.Read(buf[:])
	if n == 1 {
		return buf[0], true
	}
	if err != nil && !errors.Is(err, io.EOF) {
		s.err = err
	}
	return 0, false
}

func (s *fdSource) takeErr() error {
	err := s.err
	s.err = nil
	return err
}
