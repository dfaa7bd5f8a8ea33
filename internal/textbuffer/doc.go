// Package textbuffer provides the in-memory document behind textedit.
//
// A Buffer owns the document content, a single clipboard slot and two
// single-snapshot history slots used for undo and redo. Every operation is
// one atomic transition: it validates its arguments first and either applies
// all of its effects or none of them.
//
// # Basic Usage
//
//	b := textbuffer.New()
//	_ = b.AddText("Hello")     // "Hello"
//	_ = b.CutText(0, 5)        // "", clipboard "Hello"
//	_ = b.PasteText(0)         // "Hello"
//	_ = b.Undo()               // ""
//	_ = b.Redo()               // "Hello"
//
// # History
//
// Undo and redo each hold exactly one snapshot. Mutating operations
// (AddText, CutText, PasteText, FindAndReplace) overwrite the undo slot with
// the content they started from and leave the redo slot alone. CopyText is
// not a mutation and touches neither slot.
//
//	b := textbuffer.New(textbuffer.WithContent("abc"))
//	_ = b.AddText("d")  // undo slot "abc"
//	_ = b.AddText("e")  // undo slot "abcd", "abc" is gone
//	_ = b.Undo()        // "abcd"
//	_ = b.Undo()        // ErrNothingToUndo
//
// # Offsets
//
// Offsets count runes, not bytes. A position is valid in 0..Len() inclusive
// and a range [start, end) is valid when 0 <= start < end <= Len().
//
// # Error Handling
//
// Failures are *Error values carrying the operation name and a Kind. They
// match the package sentinels with errors.Is:
//
//   - ErrInvalidRange: cut/copy range out of bounds, empty or reversed
//   - ErrInvalidPosition: paste position out of bounds
//   - ErrNothingToUndo: the undo slot is empty
//   - ErrNothingToRedo: the redo slot is empty
//   - ErrNotFound: the find string does not occur in the content
//   - ErrIOFailure: the document could not be written to a file
//
// A Buffer is not safe for concurrent use.
package textbuffer
