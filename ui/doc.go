// Package ui assembles editor frames from a chain of components wrapped
// around a TextArea leaf. Each wrapper owns one piece of modal state and
// draws at most one banner row; everything else is delegated inward.
package ui
