package script

import (
	"context"
	"fmt"
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// state wraps a sandboxed gopher-lua state. It is not goroutine-safe.
type state struct {
	L      *lua.LState
	closed bool
}

// newState creates a Lua state with only safe standard libraries opened.
// print writes to out.
func newState(out io.Writer) *state {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})

	openSafeLibraries(L)
	installSandbox(L, out)

	return &state{L: L}
}

// openSafeLibraries opens base, table, string and math. io, os, debug and
// package are never opened.
func openSafeLibraries(L *lua.LState) {
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
}

// installSandbox removes functions that load code or modules and
// redirects print.
func installSandbox(L *lua.LState, out io.Writer) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		_, _ = fmt.Fprintln(out, strings.Join(parts, "\t"))
		return 0
	}))
}

// doString executes code under ctx with panic recovery.
func (s *state) doString(ctx context.Context, code string) (err error) {
	if s.closed {
		return ErrStateClosed
	}

	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()

	err = s.L.DoString(code)
	if err != nil && ctx.Err() == context.DeadlineExceeded {
		return ErrTimeout
	}
	return err
}

func (s *state) close() {
	if s.closed {
		return
	}
	s.L.Close()
	s.closed = true
}
