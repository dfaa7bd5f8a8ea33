package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
)

// DefaultEmptyIndicator is shown by Display for an empty document.
const DefaultEmptyIndicator = "[Empty Document]"

// Editor is the buffer surface the shell drives.
type Editor interface {
	Display() (text string, empty bool)
	Clipboard() string
	Count(find string) int
	AddText(text string) error
	CutText(start, end int) error
	CopyText(start, end int) error
	PasteText(position int) error
	Undo() error
	Redo() error
	FindAndReplace(find, replace string) error
	SaveToFile(path string) error
}

// ScriptRunner runs a script file against the same buffer.
type ScriptRunner interface {
	Run(ctx context.Context, path string) error
}

// Logger receives diagnostics about failed commands.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}

// Shell is the interactive menu loop.
type Shell struct {
	buf Editor
	in    *bufio.Reader
	inErr error
	out   io.Writer

	prompts   bool
	indicator atomic.Pointer[string]

	scripts ScriptRunner
	logger  Logger
	onSave  func(path string)

	menu []command
}

// Option configures a Shell.
type Option func(*Shell)

// WithInput sets the command source. Defaults to os.Stdin.
func WithInput(r io.Reader) Option {
	return func(s *Shell) {
		s.in = bufio.NewReader(r)
	}
}

// WithOutput sets where menus and outcomes are written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Shell) {
		s.out = w
	}
}

// WithPrompts controls whether the menu and argument prompts are printed.
func WithPrompts(enabled bool) Option {
	return func(s *Shell) {
		s.prompts = enabled
	}
}

// WithEmptyIndicator sets the text shown for an empty document.
func WithEmptyIndicator(text string) Option {
	return func(s *Shell) {
		s.SetEmptyIndicator(text)
	}
}

// WithScriptRunner enables the Run Script menu entry.
func WithScriptRunner(r ScriptRunner) Option {
	return func(s *Shell) {
		s.scripts = r
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l Logger) Option {
	return func(s *Shell) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSaveHook registers fn to be called with the path after a successful save.
func WithSaveHook(fn func(path string)) Option {
	return func(s *Shell) {
		s.onSave = fn
	}
}

// New creates a shell over buf.
func New(buf Editor, opts ...Option) *Shell {
	s := &Shell{
		buf:     buf,
		in:      bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		prompts: true,
		logger:  nopLogger{},
	}
	s.SetEmptyIndicator(DefaultEmptyIndicator)

	for _, opt := range opts {
		opt(s)
	}

	s.menu = s.commands()
	return s
}

// SetEmptyIndicator changes the empty-document text. Safe to call from
// another goroutine while Run is active.
func (s *Shell) SetEmptyIndicator(text string) {
	s.indicator.Store(&text)
}

// emptyIndicator returns the current empty-document text.
func (s *Shell) emptyIndicator() string {
	return *s.indicator.Load()
}

// errExit ends the loop normally.
var errExit = errors.New("exit")

// Run reads and executes commands until Exit, the end of input, or ctx is
// done. It returns nil for Exit and end of input.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		line, ok := s.readLine("Enter your choice: ")
		if !ok {
			return s.inErr
		}

		choice, err := parseChoice(line)
		if err != nil {
			s.logger.Debug("rejected menu input %q", line)
			s.println("Error: Invalid input! Please enter a number.")
			continue
		}

		if choice < 1 || choice > len(s.menu) {
			s.printf("Error: Invalid choice! Please enter a number between 1 and %d.\n", len(s.menu))
			continue
		}

		cmd := s.menu[choice-1]
		if err := cmd.run(ctx); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			if errors.Is(err, io.EOF) {
				return s.inErr
			}
			s.logger.Info("%s failed: %v", cmd.name, err)
			s.println("Error: " + s.message(cmd.name, err))
		}
	}
}

func (s *Shell) printMenu() {
	if !s.prompts {
		return
	}
	s.println("\n--- Text Editor Menu ---")
	for i, cmd := range s.menu {
		s.printf("%d. %s\n", i+1, cmd.label)
	}
}

// readLine prints prompt (when prompts are on) and reads one line of any
// length. A final line without a newline is still returned.
func (s *Shell) readLine(prompt string) (string, bool) {
	if s.prompts {
		_, _ = io.WriteString(s.out, prompt)
	}
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.inErr = err
		}
		if line == "" {
			return "", false
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true
}

// readArg reads an argument line, returning io.EOF at end of input.
func (s *Shell) readArg(prompt string) (string, error) {
	line, ok := s.readLine(prompt)
	if !ok {
		return "", io.EOF
	}
	return line, nil
}

func (s *Shell) println(msg string) {
	_, _ = fmt.Fprintln(s.out, msg)
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
