package textbuffer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Operation names reported in errors and to the change hook.
const (
	OpAdd     = "add"
	OpCut     = "cut"
	OpCopy    = "copy"
	OpPaste   = "paste"
	OpUndo    = "undo"
	OpRedo    = "redo"
	OpReplace = "replace"
	OpSave    = "save"
)

// Buffer is a single in-memory document with a clipboard and one level of
// undo and redo.
type Buffer struct {
	content   string
	clipboard string

	undo slot
	redo slot

	fileMode    os.FileMode
	onClipboard func(text string)
	onChange    func(op string)
}

// New creates an empty buffer with the given options.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		fileMode: DefaultFileMode,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Display returns the current content. empty is true when the document has
// no content, in which case callers show an empty-document indicator.
func (b *Buffer) Display() (text string, empty bool) {
	return b.content, b.content == ""
}

// Text returns the current content.
func (b *Buffer) Text() string {
	return b.content
}

// Len returns the content length in runes. Each byte that is not part of a
// valid UTF-8 sequence counts as one rune.
func (b *Buffer) Len() int {
	return utf8.RuneCountInString(b.content)
}

// Clipboard returns the most recently cut or copied text.
func (b *Buffer) Clipboard() string {
	return b.clipboard
}

// CanUndo reports whether the undo slot holds a snapshot.
func (b *Buffer) CanUndo() bool {
	return b.undo.set
}

// CanRedo reports whether the redo slot holds a snapshot.
func (b *Buffer) CanRedo() bool {
	return b.redo.set
}

// AddText appends text to the end of the content. An empty text still
// counts as a mutation and replaces the undo snapshot.
func (b *Buffer) AddText(text string) error {
	b.undo.store(b.content)
	b.content += text
	b.changed(OpAdd)
	return nil
}

// CutText moves the range [start, end) into the clipboard.
func (b *Buffer) CutText(start, end int) error {
	length := b.Len()
	if !validRange(start, end, length) {
		return newError(OpCut, KindInvalidRange, rangeDetail(start, end, length))
	}

	from, to := b.byteOffset(start), b.byteOffset(end)
	b.undo.store(b.content)
	b.setClipboard(b.content[from:to])
	b.content = b.content[:from] + b.content[to:]
	b.changed(OpCut)
	return nil
}

// CopyText copies the range [start, end) into the clipboard. The content
// and both history slots are left unchanged.
func (b *Buffer) CopyText(start, end int) error {
	length := b.Len()
	if !validRange(start, end, length) {
		return newError(OpCopy, KindInvalidRange, rangeDetail(start, end, length))
	}

	b.setClipboard(b.content[b.byteOffset(start):b.byteOffset(end)])
	return nil
}

// PasteText inserts the clipboard at position. Pasting an empty clipboard
// is a valid mutation.
func (b *Buffer) PasteText(position int) error {
	length := b.Len()
	if position < 0 || position > length {
		return newError(OpPaste, KindInvalidPosition,
			fmt.Sprintf("%d for length %d", position, length))
	}

	at := b.byteOffset(position)
	b.undo.store(b.content)
	b.content = b.content[:at] + b.clipboard + b.content[at:]
	b.changed(OpPaste)
	return nil
}

// Undo restores the content saved by the last mutation. The current content
// moves into the redo slot and the undo slot is cleared.
func (b *Buffer) Undo() error {
	prev, ok := b.undo.take()
	if !ok {
		return newError(OpUndo, KindNothingToUndo, "")
	}

	b.redo.store(b.content)
	b.content = prev
	b.changed(OpUndo)
	return nil
}

// Redo restores the content saved by the last undo. The current content
// moves into the undo slot and the redo slot is cleared.
func (b *Buffer) Redo() error {
	next, ok := b.redo.take()
	if !ok {
		return newError(OpRedo, KindNothingToRedo, "")
	}

	b.undo.store(b.content)
	b.content = next
	b.changed(OpRedo)
	return nil
}

// FindAndReplace replaces every non-overlapping occurrence of find,
// scanning left to right. Scanning resumes after the end of each inserted
// replacement, so text produced by a replacement is never matched again.
func (b *Buffer) FindAndReplace(find, replace string) error {
	if find == "" || !strings.Contains(b.content, find) {
		return newError(OpReplace, KindNotFound, fmt.Sprintf("%q", find))
	}

	b.undo.store(b.content)
	b.content = strings.ReplaceAll(b.content, find, replace)
	b.changed(OpReplace)
	return nil
}

// Count returns the number of non-overlapping occurrences of find.
func (b *Buffer) Count(find string) int {
	if find == "" {
		return 0
	}
	return strings.Count(b.content, find)
}

// WriteTo writes the content verbatim to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.content)
	return int64(n), err
}

// SaveToFile writes the content verbatim to path, replacing any existing
// file. The buffer state is unchanged whatever the outcome.
func (b *Buffer) SaveToFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, b.fileMode)
	if err != nil {
		return &Error{Op: OpSave, Kind: KindIOFailure, Detail: path, Err: err}
	}

	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return &Error{Op: OpSave, Kind: KindIOFailure, Detail: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &Error{Op: OpSave, Kind: KindIOFailure, Detail: path, Err: err}
	}
	return nil
}

func (b *Buffer) setClipboard(text string) {
	b.clipboard = text
	if b.onClipboard != nil {
		b.onClipboard(text)
	}
}

func (b *Buffer) changed(op string) {
	if b.onChange != nil {
		b.onChange(op)
	}
}

// byteOffset converts a rune offset into a byte offset in the content. The
// content is sliced by bytes so invalid UTF-8 is never re-encoded.
func (b *Buffer) byteOffset(runes int) int {
	i := 0
	for ; runes > 0 && i < len(b.content); runes-- {
		_, size := utf8.DecodeRuneInString(b.content[i:])
		i += size
	}
	return i
}

func validRange(start, end, length int) bool {
	return start >= 0 && start < end && end <= length
}

func rangeDetail(start, end, length int) string {
	return fmt.Sprintf("[%d, %d) for length %d", start, end, length)
}
