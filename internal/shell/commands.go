package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/Skp2331/Console-Text-Editor/internal/textbuffer"
)

// command is one menu entry.
type command struct {
	name  string
	label string
	run   func(ctx context.Context) error
}

// commands returns the menu in display order. Exit stays at 10 so the
// numbering is stable whether or not scripting is enabled.
func (s *Shell) commands() []command {
	cmds := []command{
		{"display", "Display Content", s.display},
		{"add", "Add Text", s.add},
		{"cut", "Cut Text", s.cut},
		{"copy", "Copy Text", s.copy},
		{"paste", "Paste Text", s.paste},
		{"undo", "Undo", s.undo},
		{"redo", "Redo", s.redo},
		{"replace", "Find and Replace", s.replace},
		{"save", "Save to File", s.save},
		{"exit", "Exit", s.exit},
	}
	if s.scripts != nil {
		cmds = append(cmds, command{"script", "Run Script", s.runScript})
	}
	return cmds
}

func (s *Shell) display(context.Context) error {
	s.println("\n--- Current Content ---")
	text, empty := s.buf.Display()
	if empty {
		s.println(s.emptyIndicator())
		return nil
	}
	s.println(text)
	return nil
}

func (s *Shell) add(context.Context) error {
	text, err := s.readArg("Enter text to add: ")
	if err != nil {
		return err
	}
	if err := s.buf.AddText(text); err != nil {
		return err
	}
	s.println("Text added successfully.")
	return nil
}

func (s *Shell) cut(context.Context) error {
	start, end, err := s.readRange("Enter start and end index to cut (space-separated): ")
	if err != nil {
		return err
	}
	if err := s.buf.CutText(start, end); err != nil {
		return err
	}
	s.println("Text cut successfully.")
	return nil
}

func (s *Shell) copy(context.Context) error {
	start, end, err := s.readRange("Enter start and end index to copy (space-separated): ")
	if err != nil {
		return err
	}
	if err := s.buf.CopyText(start, end); err != nil {
		return err
	}
	s.println("Text copied to clipboard.")
	return nil
}

func (s *Shell) readRange(prompt string) (int, int, error) {
	line, err := s.readArg(prompt)
	if err != nil {
		return 0, 0, err
	}
	vals, err := parseInts(line, 2, "two indices")
	if err != nil {
		return 0, 0, err
	}
	return vals[0], vals[1], nil
}

func (s *Shell) paste(context.Context) error {
	line, err := s.readArg("Enter position to paste: ")
	if err != nil {
		return err
	}
	vals, err := parseInts(line, 1, "a position")
	if err != nil {
		return err
	}
	if err := s.buf.PasteText(vals[0]); err != nil {
		return err
	}
	s.println("Text pasted successfully.")
	return nil
}

func (s *Shell) undo(context.Context) error {
	if err := s.buf.Undo(); err != nil {
		return err
	}
	s.println("Undo successful.")
	return nil
}

func (s *Shell) redo(context.Context) error {
	if err := s.buf.Redo(); err != nil {
		return err
	}
	s.println("Redo successful.")
	return nil
}

func (s *Shell) replace(context.Context) error {
	find, err := s.readArg("Enter text to find: ")
	if err != nil {
		return err
	}
	repl, err := s.readArg("Enter text to replace: ")
	if err != nil {
		return err
	}

	n := s.buf.Count(find)
	if err := s.buf.FindAndReplace(find, repl); err != nil {
		return err
	}
	s.printf("Text replaced successfully (%d %s).\n", n, plural(n, "occurrence", "occurrences"))
	return nil
}

func (s *Shell) save(context.Context) error {
	path, err := s.readArg("Enter filename to save: ")
	if err != nil {
		return err
	}
	if err := s.buf.SaveToFile(path); err != nil {
		return err
	}
	if s.onSave != nil {
		s.onSave(path)
	}
	s.printf("Content saved to file %s successfully.\n", path)
	return nil
}

func (s *Shell) exit(context.Context) error {
	s.println("Exiting Text Editor. Goodbye!")
	return errExit
}

func (s *Shell) runScript(ctx context.Context) error {
	path, err := s.readArg("Enter script path: ")
	if err != nil {
		return err
	}
	if err := s.scripts.Run(ctx, path); err != nil {
		return fmt.Errorf("running script: %w", err)
	}
	s.println("Script executed successfully.")
	return nil
}

// message renders a command failure for the user.
func (s *Shell) message(name string, err error) string {
	if errors.Is(err, ErrInvalidInput) {
		switch name {
		case "cut", "copy":
			return "Invalid indices! Please enter valid numbers."
		case "paste":
			return "Invalid position! Please enter a valid number."
		default:
			return "Invalid input! Please enter a number."
		}
	}

	switch textbuffer.KindOf(err) {
	case textbuffer.KindInvalidRange:
		return "Invalid range! Please enter valid indices."
	case textbuffer.KindInvalidPosition:
		return "Invalid position! Please enter a valid position."
	case textbuffer.KindNothingToUndo:
		return "Nothing to undo!"
	case textbuffer.KindNothingToRedo:
		return "Nothing to redo!"
	case textbuffer.KindNotFound:
		return "Text to find not found in the document."
	case textbuffer.KindIOFailure:
		return "Unable to save content to file."
	}

	if name == "script" {
		return fmt.Sprintf("Script failed: %v", errors.Unwrap(err))
	}
	return fmt.Sprintf("Unable to %s: %v", name, err)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
