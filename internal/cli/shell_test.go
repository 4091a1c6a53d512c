package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tiwariParth/go-records-cli/internal/app"
	"github.com/tiwariParth/go-records-cli/internal/models"
)

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestShell_UnknownAndBlankLines(t *testing.T) {
	var out bytes.Buffer
	s := NewShell(script("", "   ", "dance", "exit", "list"), &out)
	called := false
	s.Handle("list", func([]string) error { called = true; return nil })

	require.NoError(t, s.Run("test"))

	require.Contains(t, out.String(), "Unknown command. Available commands: list, exit")
	require.Contains(t, out.String(), "Goodbye!")
	require.False(t, called, "nothing runs after exit")
}

func TestShell_StopsAtEndOfInput(t *testing.T) {
	var out bytes.Buffer
	s := NewShell(strings.NewReader("ping\n"), &out)
	s.Handle("ping", func([]string) error {
		_, err := s.Prompt("value: ")
		return err
	})

	require.NoError(t, s.Run("test"))
	require.NotContains(t, out.String(), "Error")
}

func TestShell_InteractivePrompts(t *testing.T) {
	var out bytes.Buffer
	s := NewShell(script("EXIT"), &out)
	s.SetInteractive(true)

	require.NoError(t, s.Run("Title"))

	require.Contains(t, out.String(), "Title\nCommands: exit\n")
	require.Contains(t, out.String(), "Enter command: ")
}

func TestTodoShell_Session(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "tasks.xml")
	exported := filepath.Join(t.TempDir(), "export.xml")
	a := app.NewTodoApp(dataFile, nil)

	in := script(
		"add", "Docs", "low", "",
		"add Write report", "HIGH", "in progress",
		"add", "Broken", "urgent", "new",
		"select priority high",
		"select", "status", "new",
		"select", "text",
		"sort",
		"save "+exported,
		"exit",
	)
	var out bytes.Buffer

	require.NoError(t, NewTodoShell(a, in, &out).Run("To-do"))

	got := out.String()
	require.Equal(t, 2, strings.Count(got, "Task added."))
	require.Contains(t, got, "Error: invalid priority: urgent")
	require.Contains(t, got, "Found tasks: 1\n1. Write report [HIGH, in progress]\n")
	require.Contains(t, got, "Found tasks: 1\n1. Docs [LOW, new]\n")
	require.Contains(t, got, "Error: invalid filter: text")
	require.Contains(t, got, "Tasks sorted by priority.")
	require.Contains(t, got, "Data saved to "+exported)
	require.FileExists(t, exported)

	reopened := app.NewTodoApp(dataFile, nil)
	require.NoError(t, reopened.Open())
	require.Equal(t, []models.Task{
		{Text: "Write report", Priority: models.PriorityHigh, Status: models.StatusInProgress},
		{Text: "Docs", Priority: models.PriorityLow, Status: models.StatusNew},
	}, reopened.List.Tasks(), "add and sort persist to the data file")
}

func TestTodoShell_ListAndLoadErrors(t *testing.T) {
	a := app.NewTodoApp(filepath.Join(t.TempDir(), "tasks.xml"), nil)
	missing := filepath.Join(t.TempDir(), "missing.xml")

	var out bytes.Buffer
	in := script("list", "load", missing, "select", "status", "new", "exit")

	require.NoError(t, NewTodoShell(a, in, &out).Run("To-do"))

	got := out.String()
	require.Contains(t, got, "Task list is empty.")
	require.Contains(t, got, "Error: data file not found")
	require.Contains(t, got, "No tasks found.")
}

func TestStaffShell_Session(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "staff.xml")
	a := app.NewStaffApp(dataFile, nil)
	now := func() time.Time { return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC) }

	in := script(
		"add", "Petrov P.P.", "Engineer", "2010",
		"add Ivanov I.I.", "Manager", "2021",
		"add", "Nobody", "Clerk", "last year",
		"select", "10",
		"select 50",
		"list",
		"exit",
	)
	var out bytes.Buffer

	require.NoError(t, NewStaffShell(a, in, &out, now).Run("Staff"))

	got := out.String()
	require.Equal(t, 2, strings.Count(got, "Worker added."))
	require.Contains(t, got, "Error: invalid year: last year")
	require.Contains(t, got, "Workers with at least 10 years of service:\n   1: Petrov P.P. - Engineer (2010)\n")
	require.Contains(t, got, "No workers with the given seniority found.")
	require.Less(t, strings.Index(got, "| Ivanov I.I."), strings.Index(got, "| Petrov P.P."))

	reopened := app.NewStaffApp(dataFile, nil)
	require.NoError(t, reopened.Open())
	require.Equal(t, 2, reopened.Staff.Len())
}

func TestShell_LongLines(t *testing.T) {
	a := app.NewTodoApp(filepath.Join(t.TempDir(), "tasks.xml"), nil)
	long := strings.Repeat("x", 200*1024)

	var out bytes.Buffer
	in := script("add", long, "low", "", "list", "exit")

	require.NoError(t, NewTodoShell(a, in, &out).Run("To-do"))

	require.Contains(t, out.String(), "Task added.")
	require.Contains(t, out.String(), "Goodbye!")
	require.Equal(t, long, a.List.Tasks()[0].Text)
}
