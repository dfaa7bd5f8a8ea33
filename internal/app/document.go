package app

import (
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/Skp2331/Console-Text-Editor/internal/textbuffer"
)

// Document is the single buffer being edited plus its session metadata.
type Document struct {
	// ID identifies the editing session in logs.
	ID string

	// Buffer holds the content and history.
	Buffer *textbuffer.Buffer

	mu   sync.RWMutex
	name string
	path string

	modified atomic.Bool
}

// NewDocumentID returns a fresh session identifier.
func NewDocumentID() string {
	return uuid.NewString()
}

// NewDocument creates an empty document identified by id, or by a fresh ID
// when id is empty. onChange, if non-nil, is called after every content
// change.
func NewDocument(id string, onChange func(op string), opts ...textbuffer.Option) *Document {
	if id == "" {
		id = NewDocumentID()
	}
	d := &Document{
		ID:   id,
		name: "Untitled",
	}

	opts = append(opts, textbuffer.WithChangeHook(func(op string) {
		d.modified.Store(true)
		if onChange != nil {
			onChange(op)
		}
	}))
	d.Buffer = textbuffer.New(opts...)

	return d
}

// Name returns the display name: the base name of the last save path, or
// "Untitled".
func (d *Document) Name() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.name
}

// Path returns the last save path, or "" if never saved.
func (d *Document) Path() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.path
}

// IsModified returns true if the content changed since the last save.
func (d *Document) IsModified() bool {
	return d.modified.Load()
}

// MarkSaved records a successful save to path.
func (d *Document) MarkSaved(path string) {
	d.mu.Lock()
	d.path = path
	d.name = filepath.Base(path)
	d.mu.Unlock()

	d.modified.Store(false)
}
