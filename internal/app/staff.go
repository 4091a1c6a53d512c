package app

import (
	"log/slog"

	"github.com/tiwariParth/go-records-cli/internal/models"
	"github.com/tiwariParth/go-records-cli/internal/staff"
)

// StaffApp is a worker roster backed by a data file.
type StaffApp struct {
	Staff    *staff.Staff
	dataFile string
	logger   *slog.Logger
}

// NewStaffApp creates an app persisting to dataFile. A nil logger means
// slog.Default.
func NewStaffApp(dataFile string, logger *slog.Logger) *StaffApp {
	if logger == nil {
		logger = slog.Default()
	}
	return &StaffApp{
		Staff:    staff.New(logger),
		dataFile: dataFile,
		logger:   logger,
	}
}

// DataFile returns the path the app persists to.
func (a *StaffApp) DataFile() string {
	return a.dataFile
}

// Open loads the data file if it exists.
func (a *StaffApp) Open() error {
	return openIfExists(a.Staff, a.dataFile, a.logger)
}

// AddWorker adds a worker and persists the roster.
func (a *StaffApp) AddWorker(name, post string, year int) (models.Worker, error) {
	w, err := a.Staff.Add(name, post, year)
	if err != nil {
		return models.Worker{}, err
	}
	a.logger.Debug("worker added", "year", w.Year)
	return w, persist(a.Staff, a.dataFile)
}

// Load replaces the in-memory roster with path. The data file is not touched.
func (a *StaffApp) Load(path string) error {
	return a.Staff.Load(path)
}

// Save exports the roster to path.
func (a *StaffApp) Save(path string) error {
	return a.Staff.Save(path)
}

// Import loads path and makes it the new content of the data file.
func (a *StaffApp) Import(path string) error {
	return importFile(a.Staff, path, a.dataFile, a.logger)
}
