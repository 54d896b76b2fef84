package sheet

import (
	"errors"

	"github.com/atotto/clipboard"
)

// Clipboard provides sheet-level clipboard integration.
//
// Errors must not crash the UI; they are reported through Model.Status.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// ErrClipboardUnsupported is returned by SystemClipboard when no clipboard
// utility is available (for example xclip/xsel on a bare Linux host).
var ErrClipboardUnsupported = errors.New("system clipboard is not available")

// SystemClipboard is the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnsupported
	}
	return clipboard.ReadAll()
}

func (SystemClipboard) WriteText(s string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(s)
}
