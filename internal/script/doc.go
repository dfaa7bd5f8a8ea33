// Package script runs Lua macros against a text buffer.
//
// Scripts run in a sandboxed gopher-lua state with only the base, table,
// string and math libraries. File loading functions are removed. A global
// table named buf exposes the buffer:
//
//	buf.add("Hello")
//	local ok, err, kind = buf.cut(5, 2)   -- nil, "cut: invalid range ...", "InvalidRange"
//	buf.replace("l", "L")
//	print(buf.text(), buf.len())
//
// Offsets are zero-based rune offsets, the same as in the menu. Mutating
// functions return true on success, or nil, a message and the failure kind.
// Buffer failures never raise Lua errors. An argument of the wrong type does.
//
// buf.save is only present when the runner was created with WithSave(true).
package script
