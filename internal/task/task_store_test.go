package task

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tiwariParth/go-records-cli/internal/models"
	"github.com/tiwariParth/go-records-cli/internal/storage"
)

func newScenarioList(t *testing.T) *TodoList {
	t.Helper()

	l := NewTodoList(nil)
	for _, in := range [][3]string{
		{"Write report", "high", "new"},
		{"Review code", "high", "in_progress"},
		{"Test", "medium", "new"},
		{"Docs", "low", "new"},
	} {
		_, err := l.Add(in[0], in[1], in[2])
		require.NoError(t, err)
	}
	return l
}

func TestTodoList_Add(t *testing.T) {
	l := NewTodoList(nil)

	got, err := l.Add("Test task", "high", "new")
	require.NoError(t, err)
	require.Equal(t, models.Task{Text: "Test task", Priority: models.PriorityHigh, Status: models.StatusNew}, got)
	require.Equal(t, 1, l.Len())
}

func TestTodoList_Add_CaseInsensitive(t *testing.T) {
	l := NewTodoList(nil)

	_, err := l.Add("Task 1", "Low", "NEW")
	require.NoError(t, err)
	_, err = l.Add("Task 2", "MEDIUM", "in progress")
	require.NoError(t, err)

	tasks := l.Tasks()
	require.Equal(t, models.PriorityLow, tasks[0].Priority)
	require.Equal(t, models.PriorityMedium, tasks[1].Priority)
	require.Equal(t, models.StatusInProgress, tasks[1].Status)
}

func TestTodoList_Add_DefaultStatus(t *testing.T) {
	l := NewTodoList(nil)

	got, err := l.Add("Task", "low", "")
	require.NoError(t, err)
	require.Equal(t, models.StatusNew, got.Status)
}

func TestTodoList_Add_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		priority string
		status   string
		field    string
	}{
		{"bad priority", "Task", "urgent", "new", "priority"},
		{"bad status", "Task", "low", "archived", "status"},
		{"empty priority", "Task", "", "new", "priority"},
		{"empty text", "", "low", "new", "text"},
		{"control character", "a\x01b", "low", "new", "text"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := newScenarioList(t)
			before := l.Tasks()

			_, err := l.Add(tc.text, tc.priority, tc.status)

			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.field, verr.Field)
			require.Empty(t, cmp.Diff(before, l.Tasks()), "list must be unchanged")
		})
	}
}

func TestTodoList_AddThenSelect(t *testing.T) {
	for _, p := range []string{"low", "medium", "high"} {
		for _, s := range []string{"new", "in_progress", "completed"} {
			l := NewTodoList(nil)
			added, err := l.Add("only", p, s)
			require.NoError(t, err)

			byPriority, err := l.SelectBy("priority", p)
			require.NoError(t, err)
			require.Equal(t, []models.Task{added}, byPriority)

			byStatus, err := l.SelectBy("status", s)
			require.NoError(t, err)
			require.Equal(t, []models.Task{added}, byStatus)
		}
	}
}

func TestTodoList_Select_Empty(t *testing.T) {
	l := NewTodoList(nil)
	_, err := l.Add("Task", "low", "new")
	require.NoError(t, err)

	completed, err := l.SelectByStatus("completed")
	require.NoError(t, err)
	require.Empty(t, completed)

	high, err := l.SelectByPriority("high")
	require.NoError(t, err)
	require.Empty(t, high)
}

func TestTodoList_Select_Invalid(t *testing.T) {
	l := newScenarioList(t)
	before := l.Tasks()

	var verr *models.ValidationError

	_, err := l.SelectByStatus("invalid")
	require.ErrorAs(t, err, &verr)

	_, err = l.SelectByPriority("invalid")
	require.ErrorAs(t, err, &verr)

	_, err = l.SelectBy("text", "Docs")
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "filter", verr.Field)

	require.Equal(t, before, l.Tasks())
}

func TestTodoList_SortByPriority(t *testing.T) {
	l := NewTodoList(nil)
	for _, p := range []string{"low", "high", "medium", "low", "high"} {
		_, err := l.Add("task "+p, p, "new")
		require.NoError(t, err)
	}

	l.SortByPriority()

	tasks := l.Tasks()
	for i := 1; i < len(tasks); i++ {
		require.GreaterOrEqual(t, tasks[i-1].Priority.Rank(), tasks[i].Priority.Rank())
	}
}

func TestTodoList_SortByPriority_Stable(t *testing.T) {
	l := NewTodoList(nil)
	for _, text := range []string{"first", "second", "third"} {
		_, err := l.Add(text, "medium", "new")
		require.NoError(t, err)
	}
	_, err := l.Add("urgent", "high", "new")
	require.NoError(t, err)

	l.SortByPriority()

	var texts []string
	for _, task := range l.Tasks() {
		texts = append(texts, task.Text)
	}
	require.Equal(t, []string{"urgent", "first", "second", "third"}, texts)
}

func TestTodoList_Workflow(t *testing.T) {
	l := newScenarioList(t)

	high, err := l.SelectByPriority("high")
	require.NoError(t, err)
	require.Len(t, high, 2)

	fresh, err := l.SelectByStatus("new")
	require.NoError(t, err)
	require.Len(t, fresh, 3)

	l.SortByPriority()
	var got []models.Priority
	for _, task := range l.Tasks() {
		got = append(got, task.Priority)
	}
	require.Equal(t, []models.Priority{
		models.PriorityHigh, models.PriorityHigh, models.PriorityMedium, models.PriorityLow,
	}, got)

	path := filepath.Join(t.TempDir(), "tasks.xml")
	require.NoError(t, l.Save(path))

	loaded := NewTodoList(nil)
	require.NoError(t, loaded.Load(path))
	require.Equal(t, 4, loaded.Len())
}

func TestTodoList_Tasks_ReturnsCopy(t *testing.T) {
	l := newScenarioList(t)

	tasks := l.Tasks()
	tasks[0].Text = "changed"

	require.Equal(t, "Write report", l.Tasks()[0].Text)
}

func TestTodoList_String(t *testing.T) {
	l := NewTodoList(nil)
	_, err := l.Add("Test task", "high", "in_progress")
	require.NoError(t, err)

	out := l.String()
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 5)
	require.Equal(t, "+-----+------------------------------------------+------------+--------------+", lines[0])
	require.Equal(t, lines[0], lines[2])
	require.Equal(t, lines[0], lines[4])
	require.Equal(t, "|   1 | Test task                                | HIGH       | in progress  |", lines[3])
}

func TestTodoList_String_Empty(t *testing.T) {
	require.Equal(t, EmptyListMessage, NewTodoList(nil).String())
}

func TestTodoList_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.xml")

	l := newScenarioList(t)
	_, err := l.Add("  spaced <&> text  ", "low", "completed")
	require.NoError(t, err)
	require.NoError(t, l.Save(path))

	loaded := NewTodoList(nil)
	require.NoError(t, loaded.Load(path))

	if diff := cmp.Diff(l.Tasks(), loaded.Tasks()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestTodoList_Save_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.xml")

	l := NewTodoList(nil)
	_, err := l.Add("Docs", "low", "in progress")
	require.NoError(t, err)
	require.NoError(t, l.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	require.True(t, strings.HasPrefix(content, `<?xml version="1.0" encoding="UTF-8"?>`))
	require.Contains(t, content, "<tasks>")
	require.Contains(t, content, "<task>")
	require.Contains(t, content, "<text>Docs</text>")
	require.Contains(t, content, "<priority>LOW</priority>")
	require.Contains(t, content, "<status>IN_PROGRESS</status>", "enums are stored by canonical name")
}

func TestTodoList_Save_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.xml")

	l := newScenarioList(t)
	require.NoError(t, l.Save(path))

	empty := NewTodoList(nil)
	require.NoError(t, empty.Save(path))

	loaded := newScenarioList(t)
	require.NoError(t, loaded.Load(path))
	require.Equal(t, 0, loaded.Len())
}

func TestTodoList_Load_SkipsIncompleteRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.xml")
	content := `<?xml version="1.0" encoding="UTF-8"?>
<tasks>
  <task><text>kept</text><priority>HIGH</priority><status>NEW</status></task>
  <task><text>no status</text><priority>LOW</priority></task>
  <task><priority>LOW</priority><status>NEW</status></task>
  <task><text></text><priority>LOW</priority><status>NEW</status></task>
  <item><text>any tag</text><priority>low</priority><status>completed</status></item>
</tasks>`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	l := NewTodoList(nil)
	require.NoError(t, l.Load(path))

	require.Equal(t, []models.Task{
		{Text: "kept", Priority: models.PriorityHigh, Status: models.StatusNew},
		{Text: "any tag", Priority: models.PriorityLow, Status: models.StatusCompleted},
	}, l.Tasks())
}

func TestTodoList_Load_NotFound(t *testing.T) {
	l := newScenarioList(t)
	before := l.Tasks()

	err := l.Load(filepath.Join(t.TempDir(), "nonexistent.xml"))

	require.ErrorIs(t, err, storage.ErrNotFound)
	require.True(t, errors.Is(err, fs.ErrNotExist))
	require.Equal(t, before, l.Tasks())
}

func TestTodoList_Load_Malformed(t *testing.T) {
	tests := map[string]string{
		"broken markup": "<tasks><task><text>x</text>",
		"wrong root":    "<workers><worker><name>A</name></worker></workers>",
		"empty file":    "",
		"trailing junk": `<tasks><task><text>x</text><priority>LOW</priority><status>NEW</status></task></tasks><broken <<`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.xml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			l := newScenarioList(t)
			before := l.Tasks()

			err := l.Load(path)
			require.ErrorIs(t, err, storage.ErrParse)
			require.Equal(t, before, l.Tasks())
		})
	}
}

func TestTodoList_Load_UnknownVariant(t *testing.T) {
	tests := map[string]struct {
		record string
		field  string
	}{
		"unknown priority": {
			`<task><text>bad</text><priority>URGENT</priority><status>NEW</status></task>`, "priority",
		},
		"blank status": {
			`<task><text>bad</text><priority>LOW</priority><status> </status></task>`, "status",
		},
		"newline status": {
			"<task><text>bad</text><priority>LOW</priority><status>\n  </status></task>", "status",
		},
		"blank priority": {
			"<task><text>bad</text><priority>\t</priority><status>NEW</status></task>", "priority",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.xml")
			content := "<tasks>\n" +
				"  <task><text>ok</text><priority>LOW</priority><status>NEW</status></task>\n  " +
				tc.record + "\n</tasks>"
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			l := newScenarioList(t)
			before := l.Tasks()

			err := l.Load(path)

			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.field, verr.Field)
			require.Equal(t, before, l.Tasks())
		})
	}
}

func TestTodoList_SaveAndLoad_KeepsEveryAddedTask(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.xml")

	l := NewTodoList(nil)
	_, err := l.Add("", "low", "new")
	require.Error(t, err)
	for _, text := range []string{"kept", " padded ", "tab\tand\r\nbreaks"} {
		_, err := l.Add(text, "low", "new")
		require.NoError(t, err)
	}
	require.NoError(t, l.Save(path))

	loaded := NewTodoList(nil)
	require.NoError(t, loaded.Load(path))
	require.Equal(t, l.Tasks(), loaded.Tasks())
}
