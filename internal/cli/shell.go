package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/term"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// handler runs one shell command. args holds the words typed after the
// command name; missing values are prompted for.
type handler func(args []string) error

// Shell is a line-oriented read-eval loop. Errors returned by a command are
// printed and the loop carries on; only exit or end of input stop it.
type Shell struct {
	scanner     *bufio.Scanner
	out         io.Writer
	interactive bool
	commands    map[string]handler
	names       []string
}

// NewShell creates a shell reading from in and writing to out. Prompts and
// the banner are printed only when in is a terminal.
func NewShell(in io.Reader, out io.Writer) *Shell {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return &Shell{
		scanner:     scanner,
		out:         out,
		interactive: isTerminal(in),
		commands:    make(map[string]handler),
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SetInteractive overrides terminal detection.
func (s *Shell) SetInteractive(interactive bool) {
	s.interactive = interactive
}

// Handle registers a command. Commands are listed in registration order.
func (s *Shell) Handle(name string, h handler) {
	if _, exists := s.commands[name]; !exists {
		s.names = append(s.names, name)
	}
	s.commands[name] = h
}

// Commands returns the registered command names plus exit.
func (s *Shell) Commands() []string {
	return append(slices.Clone(s.names), "exit")
}

// Prompt prints label (interactive mode only) and reads one trimmed line.
// It returns io.EOF once input is exhausted.
func (s *Shell) Prompt(label string) (string, error) {
	if s.interactive {
		fmt.Fprint(s.out, label)
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}

// arg returns args[i] when present, otherwise prompts for it.
func (s *Shell) arg(args []string, i int, label string) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	return s.Prompt(label)
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

// Run loops until exit or end of input. The first word of each line selects
// the command, case-insensitively.
func (s *Shell) Run(title string) error {
	if s.interactive {
		s.println(Bold(title))
		s.printf("Commands: %s\n\n", strings.Join(s.Commands(), ", "))
	}

	for {
		line, err := s.Prompt("Enter command: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		name := strings.ToLower(fields[0])

		if name == "exit" {
			s.println("Goodbye!")
			return nil
		}

		h, ok := s.commands[name]
		if !ok {
			s.printf("Unknown command. Available commands: %s\n", strings.Join(s.Commands(), ", "))
			continue
		}

		if err := h(fields[1:]); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.println(Red("Error:"), err)
		}
	}
}
