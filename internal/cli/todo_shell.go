package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/tiwariParth/go-records-cli/internal/app"
	"github.com/tiwariParth/go-records-cli/internal/models"
)

// NewTodoShell builds the interactive to-do list shell.
func NewTodoShell(a *app.TodoApp, in io.Reader, out io.Writer) *Shell {
	s := NewShell(in, out)

	s.Handle("add", func(args []string) error {
		text := strings.Join(args, " ")
		if text == "" {
			var err error
			if text, err = s.Prompt("Task text: "); err != nil {
				return err
			}
		}
		priority, err := s.Prompt("Priority (low/medium/high): ")
		if err != nil {
			return err
		}
		status, err := s.Prompt("Status (new/in_progress/completed) [new]: ")
		if err != nil {
			return err
		}

		if _, err := a.AddTask(text, strings.ToLower(priority), strings.ToLower(status)); err != nil {
			return err
		}
		s.println(Green("Task added."))
		return nil
	})

	s.Handle("list", func([]string) error {
		s.println(a.List.String())
		return nil
	})

	s.Handle("select", func(args []string) error {
		field, err := s.arg(args, 0, "Select by (status/priority): ")
		if err != nil {
			return err
		}
		field = strings.ToLower(field)

		var label string
		switch field {
		case "status":
			label = "Status (new/in_progress/completed): "
		case "priority":
			label = "Priority (low/medium/high): "
		default:
			return &models.ValidationError{Field: "filter", Value: field}
		}

		value, err := s.arg(args, 1, label)
		if err != nil {
			return err
		}
		selected, err := a.List.SelectBy(field, strings.ToLower(value))
		if err != nil {
			return err
		}
		writeSelection(s.out, selected)
		return nil
	})

	s.Handle("sort", func([]string) error {
		if err := a.SortTasks(); err != nil {
			return err
		}
		s.println(Green("Tasks sorted by priority."))
		s.println(a.List.String())
		return nil
	})

	s.Handle("load", func(args []string) error {
		path, err := filename(s, args)
		if err != nil {
			return err
		}
		if err := a.Load(path); err != nil {
			return err
		}
		s.println(Green("Data loaded from " + path))
		return nil
	})

	s.Handle("save", func(args []string) error {
		path, err := filename(s, args)
		if err != nil {
			return err
		}
		if err := a.Save(path); err != nil {
			return err
		}
		s.println(Green("Data saved to " + path))
		return nil
	})

	s.Handle("help", func([]string) error {
		s.printf("Commands: %s\n", strings.Join(s.Commands(), ", "))
		return nil
	})

	return s
}

// writeSelection prints a numbered task list, or a notice when empty.
func writeSelection(w io.Writer, tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, Yellow("No tasks found."))
		return
	}
	fmt.Fprintf(w, "Found tasks: %d\n", len(tasks))
	for i, t := range tasks {
		fmt.Fprintf(w, "%d. %s [%s, %s]\n", i+1, t.Text, t.Priority, t.Status)
	}
}

func filename(s *Shell, args []string) (string, error) {
	path := strings.Join(args, " ")
	if path != "" {
		return path, nil
	}
	path, err := s.Prompt("XML file name: ")
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", &models.ValidationError{Field: "file name"}
	}
	return path, nil
}
