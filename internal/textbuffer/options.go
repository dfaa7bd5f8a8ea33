package textbuffer

import "io/fs"

// DefaultFileMode is the permission used when SaveToFile creates a file.
const DefaultFileMode fs.FileMode = 0o644

// Option configures a Buffer during creation.
type Option func(*Buffer)

// WithContent sets the initial content. The history starts empty.
func WithContent(content string) Option {
	return func(b *Buffer) {
		b.content = content
	}
}

// WithFileMode sets the permission used when SaveToFile creates a file.
func WithFileMode(mode fs.FileMode) Option {
	return func(b *Buffer) {
		if mode != 0 {
			b.fileMode = mode
		}
	}
}

// WithClipboardHook registers fn to be called with the clipboard text after
// every successful cut or copy.
func WithClipboardHook(fn func(text string)) Option {
	return func(b *Buffer) {
		b.onClipboard = fn
	}
}

// WithChangeHook registers fn to be called with the operation name after
// every successful change to the content, including undo and redo.
func WithChangeHook(fn func(op string)) Option {
	return func(b *Buffer) {
		b.onChange = fn
	}
}
