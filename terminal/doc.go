// Package terminal owns the tty: raw-mode and alternate-screen lifecycle,
// keyboard decoding, and the signal bridge for resize and job control.
//
// Keyboard bytes and signals are translated into Event values and pushed
// into a single channel, so the editor consumes one serialized stream and
// never touches terminal state from more than one goroutine.
package terminal
