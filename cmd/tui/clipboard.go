package tui

import "github.com/atotto/clipboard"

// Clipboard reads the system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

// SystemClipboard returns the clipboard of the running desktop session.
func SystemClipboard() Clipboard {
	return systemClipboard{}
}
