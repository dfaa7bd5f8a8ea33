package app

import (
	"github.com/atotto/clipboard"
)

// SystemClipboard is the OS clipboard the buffer clipboard is mirrored to.
type SystemClipboard interface {
	WriteAll(text string) error
}

// osClipboard writes through github.com/atotto/clipboard.
type osClipboard struct{}

// NewOSClipboard returns the platform clipboard, or ErrClipboardUnsupported
// when no clipboard utility is available.
func NewOSClipboard() (SystemClipboard, error) {
	if clipboard.Unsupported {
		return nil, ErrClipboardUnsupported
	}
	return osClipboard{}, nil
}

func (osClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// clipboardMirror copies buffer clipboard updates to the system clipboard.
// Failures are logged and never reach the buffer.
type clipboardMirror struct {
	sys    SystemClipboard
	logger *Logger
}

func (m *clipboardMirror) update(text string) {
	if err := m.sys.WriteAll(text); err != nil {
		m.logger.Warn("system clipboard write failed: %v", err)
		return
	}
	m.logger.Debug("mirrored %d bytes to system clipboard", len(text))
}
