package task

import (
	"cmp"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/tiwariParth/go-records-cli/internal/models"
	"github.com/tiwariParth/go-records-cli/internal/storage"
	"github.com/tiwariParth/go-records-cli/internal/storage/file"
	"github.com/tiwariParth/go-records-cli/internal/storage/memory"
	"github.com/tiwariParth/go-records-cli/internal/table"
)

// EmptyListMessage is what an empty TodoList renders as.
const EmptyListMessage = "Task list is empty."

var columns = []table.Column{
	{Title: "No", Width: 3, Align: table.AlignRight},
	{Title: "Text", Width: 40},
	{Title: "Priority", Width: 10},
	{Title: "Status", Width: 12},
}

var _ storage.RecordStore = (*TodoList)(nil)

// TodoList manages an ordered collection of tasks.
type TodoList struct {
	tasks  *memory.Store[models.Task]
	logger *slog.Logger
}

// NewTodoList initializes an empty TodoList. A nil logger means slog.Default.
func NewTodoList(logger *slog.Logger) *TodoList {
	if logger == nil {
		logger = slog.Default()
	}
	return &TodoList{
		tasks:  memory.NewStore[models.Task](),
		logger: logger,
	}
}

// Add validates priority and status and appends a new task. On a validation
// error the list is left unchanged. An empty status means "new".
func (l *TodoList) Add(text, priority, status string) (models.Task, error) {
	t, err := models.NewTask(text, priority, status)
	if err != nil {
		return models.Task{}, err
	}
	l.tasks.Append(t)
	return t, nil
}

// Len returns the number of tasks.
func (l *TodoList) Len() int {
	return l.tasks.Len()
}

// Tasks returns a copy of the tasks in their current order.
func (l *TodoList) Tasks() []models.Task {
	return l.tasks.All()
}

// SelectByStatus returns every task with the given status.
func (l *TodoList) SelectByStatus(status string) ([]models.Task, error) {
	st, err := models.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return l.tasks.Filter(func(t models.Task) bool { return t.Status == st }), nil
}

// SelectByPriority returns every task with the given priority.
func (l *TodoList) SelectByPriority(priority string) ([]models.Task, error) {
	p, err := models.ParsePriority(priority)
	if err != nil {
		return nil, err
	}
	return l.tasks.Filter(func(t models.Task) bool { return t.Priority == p }), nil
}

// SelectBy dispatches to SelectByStatus or SelectByPriority by field name.
func (l *TodoList) SelectBy(field, value string) ([]models.Task, error) {
	switch field {
	case "status":
		return l.SelectByStatus(value)
	case "priority":
		return l.SelectByPriority(value)
	default:
		return nil, &models.ValidationError{Field: "filter", Value: field}
	}
}

// SortByPriority orders tasks from highest to lowest priority. Tasks of equal
// priority keep their relative order.
func (l *TodoList) SortByPriority() {
	l.tasks.SortStable(func(a, b models.Task) int {
		return cmp.Compare(b.Priority.Rank(), a.Priority.Rank())
	})
}

// String renders the list as a table with 1-based row numbers.
func (l *TodoList) String() string {
	tasks := l.tasks.All()
	if len(tasks) == 0 {
		return EmptyListMessage
	}

	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		rows[i] = []string{strconv.Itoa(i + 1), t.Text, t.Priority.String(), t.Status.String()}
	}
	return table.Render(columns, rows)
}

// Save writes every task to path as XML, replacing the file.
func (l *TodoList) Save(path string) error {
	tasks := l.tasks.All()
	doc := taskDocument{Tasks: make([]taskElement, len(tasks))}
	for i, t := range tasks {
		doc.Tasks[i] = newTaskElement(t)
	}

	if err := file.Write(path, doc); err != nil {
		return err
	}
	l.logger.Debug("tasks saved", "path", path, "count", len(tasks))
	return nil
}

// Load replaces the list with the tasks stored in path. Records missing a
// required field are skipped. Any error leaves the list unchanged.
func (l *TodoList) Load(path string) error {
	var doc readDocument
	if err := file.Read(path, &doc); err != nil {
		return err
	}

	tasks := make([]models.Task, 0, len(doc.Tasks))
	skipped := 0
	for i, e := range doc.Tasks {
		if !e.complete() {
			skipped++
			continue
		}
		t, err := e.toTask()
		if err != nil {
			return fmt.Errorf("%s: record %d: %w", path, i+1, err)
		}
		tasks = append(tasks, t)
	}

	l.tasks.Replace(tasks)
	l.logger.Debug("tasks loaded", "path", path, "count", len(tasks), "skipped", skipped)
	return nil
}
