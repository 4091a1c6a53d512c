package app

import (
	"log/slog"

	"github.com/tiwariParth/go-records-cli/internal/models"
	"github.com/tiwariParth/go-records-cli/internal/task"
)

// TodoApp is a to-do list backed by a data file.
type TodoApp struct {
	List     *task.TodoList
	dataFile string
	logger   *slog.Logger
}

// NewTodoApp creates an app persisting to dataFile. A nil logger means
// slog.Default.
func NewTodoApp(dataFile string, logger *slog.Logger) *TodoApp {
	if logger == nil {
		logger = slog.Default()
	}
	return &TodoApp{
		List:     task.NewTodoList(logger),
		dataFile: dataFile,
		logger:   logger,
	}
}

// DataFile returns the path the app persists to.
func (a *TodoApp) DataFile() string {
	return a.dataFile
}

// Open loads the data file if it exists.
func (a *TodoApp) Open() error {
	return openIfExists(a.List, a.dataFile, a.logger)
}

// AddTask adds a task and persists the list. If saving fails the task stays
// in memory and the save error is returned.
func (a *TodoApp) AddTask(text, priority, status string) (models.Task, error) {
	t, err := a.List.Add(text, priority, status)
	if err != nil {
		return models.Task{}, err
	}
	a.logger.Debug("task added", "priority", t.Priority, "status", t.Status.Name())
	return t, persist(a.List, a.dataFile)
}

// SortTasks sorts by priority and persists the new order.
func (a *TodoApp) SortTasks() error {
	a.List.SortByPriority()
	return persist(a.List, a.dataFile)
}

// Load replaces the in-memory list with path. The data file is not touched.
func (a *TodoApp) Load(path string) error {
	return a.List.Load(path)
}

// Save exports the list to path.
func (a *TodoApp) Save(path string) error {
	return a.List.Save(path)
}

// Import loads path and makes it the new content of the data file.
func (a *TodoApp) Import(path string) error {
	return importFile(a.List, path, a.dataFile, a.logger)
}
