package editor

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/campaul/takkun/terminal"
)

// fakeConsole scripts the event stream and records everything the
// editor writes back.
type fakeConsole struct {
	events  chan terminal.Event
	wrote   chan string
	pausedC chan struct{}

	mu       sync.Mutex
	frames   []string
	restores int
}

func newFakeConsole() *fakeConsole {
	return &fakeConsole{
		events:  make(chan terminal.Event),
		wrote:   make(chan string, 16),
		pausedC: make(chan struct{}, 16),
	}
}

func (c *fakeConsole) Events() <-chan terminal.Event { return c.events }

func (c *fakeConsole) Write(frame []byte) error {
	c.mu.Lock()
	c.frames = append(c.frames, string(frame))
	c.mu.Unlock()
	c.wrote <- string(frame)
	return nil
}

func (c *fakeConsole) Pause() error {
	c.pausedC <- struct{}{}
	return nil
}

func (c *fakeConsole) Resume() error { return nil }

func (c *fakeConsole) Restore() error {
	c.mu.Lock()
	c.restores++
	c.mu.Unlock()
	return nil
}

func (c *fakeConsole) frameCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.frames)
}

func (c *fakeConsole) waitFrame(t *testing.T) string {
	t.Helper()
	select {
	case f := <-c.wrote:
		return f
	case <-time.After(2 * time.Second):
		t.Fatalf("no frame written")
		return ""
	}
}

func (c *fakeConsole) waitPause(t *testing.T) {
	t.Helper()
	select {
	case <-c.pausedC:
	case <-time.After(2 * time.Second):
		t.Fatalf("pause never reached the console")
	}
}

func frameLines(frame string) []string {
	body := strings.TrimPrefix(frame, terminal.HideCursor+terminal.CursorHome)
	if i := strings.LastIndex(body, "\x1b["); i >= 0 {
		// Drop the trailing cursor positioning.
		if j := strings.LastIndex(body[:i], "\x1b["); j >= 0 {
			body = body[:j]
		}
	}
	return strings.Split(body, "\r\n")
}

func TestEditor_RendersAfterFirstResize(t *testing.T) {
	console := newFakeConsole()
	ed := New(console)

	done := make(chan error, 1)
	go func() { done <- ed.Run("") }()

	console.events <- terminal.ResizeEvent(80, 24)
	frame := console.waitFrame(t)

	if got, want := len(frameLines(frame)), 24; got != want {
		t.Fatalf("frame has %d lines, want %d", got, want)
	}
	if !strings.HasPrefix(frame, terminal.HideCursor) || !strings.HasSuffix(frame, terminal.ShowCursor) {
		t.Fatalf("frame missing cursor guards")
	}

	console.events <- terminal.Event{Kind: terminal.KindExit}
	if err := <-done; err != nil {
		t.Fatalf("run: %v", err)
	}
	if console.restores != 1 {
		t.Fatalf("restore called %d times, want 1", console.restores)
	}
}

func TestEditor_PauseSuppressesRenderUntilResume(t *testing.T) {
	console := newFakeConsole()
	ed := New(console)

	done := make(chan error, 1)
	go func() { done <- ed.Run("") }()

	console.events <- terminal.ResizeEvent(80, 24)
	console.waitFrame(t)

	console.events <- terminal.Event{Kind: terminal.KindPause}
	console.waitPause(t)

	// Edits while suspended must not produce frames.
	console.events <- terminal.InputEvent("a")
	console.events <- terminal.Event{Kind: terminal.KindResume}
	resumed := console.waitFrame(t)

	if got := console.frameCount(); got != 2 {
		t.Fatalf("wrote %d frames, want 2 (render suppressed while paused)", got)
	}
	if !strings.Contains(resumed, "a") {
		t.Fatalf("resume frame lost the pending edit")
	}

	console.events <- terminal.ResizeEvent(100, 30)
	resized := console.waitFrame(t)
	if got, want := len(frameLines(resized)), 30; got != want {
		t.Fatalf("resized frame has %d lines, want %d", got, want)
	}

	console.events <- terminal.Event{Kind: terminal.KindExit}
	if err := <-done; err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestEditor_CoalescesBurstIntoOneFrame(t *testing.T) {
	console := newFakeConsole()
	console.events = make(chan terminal.Event, 16)

	console.events <- terminal.ResizeEvent(40, 8)
	for _, r := range "burst" {
		console.events <- terminal.InputEvent(string(r))
	}

	ed := New(console)
	done := make(chan error, 1)
	go func() { done <- ed.Run("") }()

	frame := console.waitFrame(t)
	if !strings.Contains(frame, "burst") {
		t.Fatalf("frame missing the burst text")
	}

	console.events <- terminal.Event{Kind: terminal.KindExit}
	if err := <-done; err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := console.frameCount(); got != 1 {
		t.Fatalf("wrote %d frames for one burst, want 1", got)
	}
}

func TestEditor_CleanEventsSkipTheRedraw(t *testing.T) {
	console := newFakeConsole()
	ed := New(console)

	done := make(chan error, 1)
	go func() { done <- ed.Run("") }()

	console.events <- terminal.ResizeEvent(80, 24)
	console.waitFrame(t)

	console.events <- terminal.Event{Kind: terminal.KindNothing}
	console.events <- terminal.Event{Kind: terminal.KindExit}
	if err := <-done; err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := console.frameCount(); got != 1 {
		t.Fatalf("wrote %d frames, want 1 (nothing events stay clean)", got)
	}
}

func TestEditor_Run_LoadsStartupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boot.txt")
	if err := os.WriteFile(path, []byte("from disk\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	console := newFakeConsole()
	ed := New(console)

	done := make(chan error, 1)
	go func() { done <- ed.Run(path) }()

	console.events <- terminal.ResizeEvent(80, 24)
	frame := console.waitFrame(t)
	if !strings.Contains(frame, "from disk") {
		t.Fatalf("first frame does not show the startup file")
	}
	if !strings.Contains(frame, "boot.txt") {
		t.Fatalf("tab header does not name the startup file")
	}

	console.events <- terminal.Event{Kind: terminal.KindExit}
	if err := <-done; err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestEditor_Run_StartupOpenFailureBecomesBanner(t *testing.T) {
	console := newFakeConsole()
	ed := New(console)

	done := make(chan error, 1)
	// A directory cannot be read as a document.
	go func() { done <- ed.Run(t.TempDir()) }()

	console.events <- terminal.ResizeEvent(80, 24)
	frame := console.waitFrame(t)
	if !strings.Contains(frame, "ERROR: ") {
		t.Fatalf("first frame does not carry the open failure banner")
	}

	console.events <- terminal.Event{Kind: terminal.KindExit}
	if err := <-done; err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestEditor_Run_StopsWhenEventStreamCloses(t *testing.T) {
	console := newFakeConsole()
	ed := New(console)

	done := make(chan error, 1)
	go func() { done <- ed.Run("") }()

	close(console.events)
	if err := <-done; err != nil {
		t.Fatalf("run: %v", err)
	}
	if console.restores != 1 {
		t.Fatalf("restore called %d times, want 1", console.restores)
	}
}
