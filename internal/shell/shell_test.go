package shell

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Skp2331/Console-Text-Editor/internal/textbuffer"
)

// runSession feeds input lines to a prompt-less shell and returns its output.
func runSession(t *testing.T, buf *textbuffer.Buffer, input string, opts ...Option) string {
	t.Helper()
	out := &strings.Builder{}
	opts = append([]Option{
		WithInput(strings.NewReader(input)),
		WithOutput(out),
		WithPrompts(false),
	}, opts...)

	if err := New(buf, opts...).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestSessionScenario(t *testing.T) {
	buf := textbuffer.New()
	out := runSession(t, buf, strings.Join([]string{
		"2", "Hello",
		"1",
		"3", "0 5",
		"1",
		"5", "0",
		"1",
		"10",
	}, "\n"))

	want := []string{
		"Text added successfully.",
		"",
		"--- Current Content ---",
		"Hello",
		"Text cut successfully.",
		"",
		"--- Current Content ---",
		"[Empty Document]",
		"Text pasted successfully.",
		"",
		"--- Current Content ---",
		"Hello",
		"Exiting Text Editor. Goodbye!",
	}
	if got := lines(out); strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("output:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
	if buf.Clipboard() != "Hello" {
		t.Errorf("clipboard = %q, want Hello", buf.Clipboard())
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"reversed range", "3\n5 2\n", "Error: Invalid range! Please enter valid indices."},
		{"non-numeric range", "4\na b\n", "Error: Invalid indices! Please enter valid numbers."},
		{"one index", "3\n1\n", "Error: Invalid indices! Please enter valid numbers."},
		{"bad position", "5\n99\n", "Error: Invalid position! Please enter a valid position."},
		{"non-numeric position", "5\nx\n", "Error: Invalid position! Please enter a valid number."},
		{"nothing to undo", "6\n", "Error: Nothing to undo!"},
		{"nothing to redo", "7\n", "Error: Nothing to redo!"},
		{"not found", "8\nzzz\nq\n", "Error: Text to find not found in the document."},
		{"bad choice", "42\n", "Error: Invalid choice! Please enter a number between 1 and 10."},
		{"non-numeric choice", "menu\n", "Error: Invalid input! Please enter a number."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := textbuffer.New(textbuffer.WithContent("Hello"))
			out := runSession(t, buf, tt.input)
			if strings.TrimSpace(out) != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
			if buf.Text() != "Hello" {
				t.Errorf("failed command changed content to %q", buf.Text())
			}
		})
	}
}

func TestUndoRedoCommands(t *testing.T) {
	buf := textbuffer.New(textbuffer.WithContent("abc"))
	out := runSession(t, buf, "8\nb\nXX\n6\n7\n6\n6\n")

	want := []string{
		"Text replaced successfully (1 occurrence).",
		"Undo successful.",
		"Redo successful.",
		"Undo successful.",
		"Error: Nothing to undo!",
	}
	if got := lines(out); strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("output = %q", out)
	}
	if buf.Text() != "abc" {
		t.Errorf("expected %q, got %q", "abc", buf.Text())
	}
}

func TestCopyCommand(t *testing.T) {
	buf := textbuffer.New(textbuffer.WithContent("Hello World"))
	out := runSession(t, buf, "4\n6 11\n5\n0\n")

	if !strings.Contains(out, "Text copied to clipboard.") {
		t.Errorf("output = %q", out)
	}
	if buf.Text() != "WorldHello World" {
		t.Errorf("expected %q, got %q", "WorldHello World", buf.Text())
	}
}

func TestSaveCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	var saved string

	buf := textbuffer.New(textbuffer.WithContent("saved text"))
	out := runSession(t, buf, "9\n"+path+"\n", WithSaveHook(func(p string) { saved = p }))

	if !strings.Contains(out, "Content saved to file "+path+" successfully.") {
		t.Errorf("output = %q", out)
	}
	if saved != path {
		t.Errorf("save hook path = %q, want %q", saved, path)
	}
	got, err := os.ReadFile(path)
	if err != nil || string(got) != "saved text" {
		t.Errorf("file = %q, %v", got, err)
	}
}

func TestSaveCommandFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir.txt")
	buf := textbuffer.New(textbuffer.WithContent("x"))
	out := runSession(t, buf, "9\n"+path+"\n")

	if strings.TrimSpace(out) != "Error: Unable to save content to file." {
		t.Errorf("output = %q", out)
	}
}

func TestEOFEndsSession(t *testing.T) {
	buf := textbuffer.New()
	out := runSession(t, buf, "2\n")
	if out != "" {
		t.Errorf("expected no output at EOF mid-command, got %q", out)
	}
	if buf.CanUndo() {
		t.Error("buffer must not be called when the argument is missing")
	}
}

func TestLongInputLine(t *testing.T) {
	buf := textbuffer.New()
	long := strings.Repeat("x", 200*1024)
	out := runSession(t, buf, "2\n"+long+"\n10\n")

	if buf.Text() != long {
		t.Errorf("content length = %d, want %d", len(buf.Text()), len(long))
	}
	if !strings.HasSuffix(out, "Exiting Text Editor. Goodbye!\n") {
		t.Errorf("session did not reach Exit, output tail %q", out[max(0, len(out)-80):])
	}
}

func TestFinalLineWithoutNewline(t *testing.T) {
	buf := textbuffer.New()
	runSession(t, buf, "2\r\nHello\r\n2\n World")

	if buf.Text() != "Hello World" {
		t.Errorf("Text() = %q, want %q", buf.Text(), "Hello World")
	}
}

func TestEmptyIndicator(t *testing.T) {
	buf := textbuffer.New()
	out := runSession(t, buf, "1\n", WithEmptyIndicator("(nothing here)"))
	if !strings.Contains(out, "(nothing here)") {
		t.Errorf("output = %q", out)
	}
}

func TestPromptsAndMenu(t *testing.T) {
	out := &strings.Builder{}
	sh := New(textbuffer.New(),
		WithInput(strings.NewReader("10\n")),
		WithOutput(out),
	)
	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for _, want := range []string{
		"--- Text Editor Menu ---",
		"1. Display Content",
		"9. Save to File",
		"10. Exit",
		"Enter your choice: ",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
	if strings.Contains(out.String(), "Run Script") {
		t.Error("Run Script must only be listed with a script runner")
	}
}

type fakeRunner struct {
	paths []string
	err   error
}

func (f *fakeRunner) Run(_ context.Context, path string) error {
	f.paths = append(f.paths, path)
	return f.err
}

func TestRunScriptCommand(t *testing.T) {
	runner := &fakeRunner{}
	out := runSession(t, textbuffer.New(), "11\nmacro.lua\n", WithScriptRunner(runner))
	if strings.TrimSpace(out) != "Script executed successfully." {
		t.Errorf("output = %q", out)
	}
	if len(runner.paths) != 1 || runner.paths[0] != "macro.lua" {
		t.Errorf("runner paths = %v", runner.paths)
	}

	runner.err = errors.New("boom")
	out = runSession(t, textbuffer.New(), "11\nmacro.lua\n", WithScriptRunner(runner))
	if strings.TrimSpace(out) != "Error: Script failed: boom" {
		t.Errorf("output = %q", out)
	}
}

func TestRunHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sh := New(textbuffer.New(), WithInput(strings.NewReader("1\n")), WithOutput(&strings.Builder{}))
	if err := sh.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestParseInts(t *testing.T) {
	vals, err := parseInts("  3   7 ", 2, "two indices")
	if err != nil || vals[0] != 3 || vals[1] != 7 {
		t.Errorf("parseInts = %v, %v", vals, err)
	}

	for _, in := range []string{"", "1", "1 2 3", "1 x", "1.5 2"} {
		if _, err := parseInts(in, 2, "two indices"); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("parseInts(%q) error = %v, want ErrInvalidInput", in, err)
		}
	}
}
