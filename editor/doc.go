// Package editor owns the main loop: it pulls events from the console,
// feeds them through the UI stack, and writes rendered frames back.
package editor
