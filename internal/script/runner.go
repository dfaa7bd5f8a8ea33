package script

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/Skp2331/Console-Text-Editor/internal/textbuffer"
)

// DefaultTimeout bounds a single script run.
const DefaultTimeout = 5 * time.Second

// Editor is the buffer surface exposed to scripts.
type Editor interface {
	Text() string
	Len() int
	Clipboard() string
	CanUndo() bool
	CanRedo() bool
	AddText(text string) error
	CutText(start, end int) error
	CopyText(start, end int) error
	PasteText(position int) error
	Undo() error
	Redo() error
	FindAndReplace(find, replace string) error
	SaveToFile(path string) error
}

// Runner executes Lua scripts against one buffer.
type Runner struct {
	buf       Editor
	timeout   time.Duration
	allowSave bool
	output    io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout sets the deadline for each run.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithSave exposes buf.save to scripts.
func WithSave(allow bool) Option {
	return func(r *Runner) {
		r.allowSave = allow
	}
}

// WithOutput sets where print writes. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.output = w
		}
	}
}

// NewRunner creates a runner for buf.
func NewRunner(buf Editor, opts ...Option) *Runner {
	r := &Runner{
		buf:     buf,
		timeout: DefaultTimeout,
		output:  os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the Lua file at path.
func (r *Runner) Run(ctx context.Context, path string) error {
	code, err := os.ReadFile(path)
	if err != nil {
		return &Error{Script: path, Err: err}
	}
	return r.RunString(ctx, path, string(code))
}

// RunString executes code in a fresh state. name identifies the chunk in errors.
func (r *Runner) RunString(ctx context.Context, name, code string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	s := newState(r.output)
	defer s.close()

	s.L.SetGlobal("buf", r.module(s.L))

	if err := s.doString(ctx, code); err != nil {
		return &Error{Script: name, Err: err}
	}
	return nil
}

// module builds the buf table.
func (r *Runner) module(L *lua.LState) *lua.LTable {
	funcs := map[string]lua.LGFunction{
		"text":      r.text,
		"len":       r.bufLen,
		"clipboard": r.clipboard,
		"can_undo":  r.canUndo,
		"can_redo":  r.canRedo,
		"add":       r.add,
		"cut":       r.cut,
		"copy":      r.copy,
		"paste":     r.paste,
		"undo":      r.undo,
		"redo":      r.redo,
		"replace":   r.replace,
	}
	if r.allowSave {
		funcs["save"] = r.save
	}
	return L.SetFuncs(L.NewTable(), funcs)
}

// result pushes true, or nil, message and kind.
func result(L *lua.LState, err error) int {
	if err == nil {
		L.Push(lua.LTrue)
		return 1
	}
	L.Push(lua.LNil)
	L.Push(lua.LString(err.Error()))
	L.Push(lua.LString(textbuffer.KindOf(err).String()))
	return 3
}

// text() -> string
func (r *Runner) text(L *lua.LState) int {
	L.Push(lua.LString(r.buf.Text()))
	return 1
}

// len() -> number
// Returns the length in runes.
func (r *Runner) bufLen(L *lua.LState) int {
	L.Push(lua.LNumber(r.buf.Len()))
	return 1
}

// clipboard() -> string
func (r *Runner) clipboard(L *lua.LState) int {
	L.Push(lua.LString(r.buf.Clipboard()))
	return 1
}

func (r *Runner) canUndo(L *lua.LState) int {
	L.Push(lua.LBool(r.buf.CanUndo()))
	return 1
}

func (r *Runner) canRedo(L *lua.LState) int {
	L.Push(lua.LBool(r.buf.CanRedo()))
	return 1
}

// add(text) -> true
func (r *Runner) add(L *lua.LState) int {
	return result(L, r.buf.AddText(L.CheckString(1)))
}

// cut(start, end) -> true | nil, msg, kind
func (r *Runner) cut(L *lua.LState) int {
	return result(L, r.buf.CutText(L.CheckInt(1), L.CheckInt(2)))
}

// copy(start, end) -> true | nil, msg, kind
func (r *Runner) copy(L *lua.LState) int {
	return result(L, r.buf.CopyText(L.CheckInt(1), L.CheckInt(2)))
}

// paste(position) -> true | nil, msg, kind
func (r *Runner) paste(L *lua.LState) int {
	return result(L, r.buf.PasteText(L.CheckInt(1)))
}

func (r *Runner) undo(L *lua.LState) int {
	return result(L, r.buf.Undo())
}

func (r *Runner) redo(L *lua.LState) int {
	return result(L, r.buf.Redo())
}

// replace(find, replacement) -> true | nil, msg, kind
func (r *Runner) replace(L *lua.LState) int {
	return result(L, r.buf.FindAndReplace(L.CheckString(1), L.CheckString(2)))
}

// save(path) -> true | nil, msg, kind
func (r *Runner) save(L *lua.LState) int {
	path := L.CheckString(1)
	if path == "" {
		L.ArgError(1, "path must not be empty")
		return 0
	}
	return result(L, r.buf.SaveToFile(path))
}

// String describes the runner configuration.
func (r *Runner) String() string {
	return fmt.Sprintf("lua(timeout=%s, save=%t)", r.timeout, r.allowSave)
}
