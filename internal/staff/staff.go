// Package staff keeps a roster of workers ordered by name.
package staff

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/tiwariParth/go-records-cli/internal/models"
	"github.com/tiwariParth/go-records-cli/internal/storage"
	"github.com/tiwariParth/go-records-cli/internal/storage/file"
	"github.com/tiwariParth/go-records-cli/internal/storage/memory"
	"github.com/tiwariParth/go-records-cli/internal/table"
)

var columns = []table.Column{
	{Title: "No", Width: 4, Align: table.AlignRight},
	{Title: "Name", Width: 30},
	{Title: "Post", Width: 20},
	{Title: "Year", Width: 8, Align: table.AlignRight},
}

var _ storage.RecordStore = (*Staff)(nil)

// Staff is the worker roster.
type Staff struct {
	workers *memory.Store[models.Worker]
	logger  *slog.Logger
}

// New initializes an empty roster. A nil logger means slog.Default.
func New(logger *slog.Logger) *Staff {
	if logger == nil {
		logger = slog.Default()
	}
	return &Staff{
		workers: memory.NewStore[models.Worker](),
		logger:  logger,
	}
}

// Add appends a worker and re-sorts the roster by name.
func (s *Staff) Add(name, post string, year int) (models.Worker, error) {
	w, err := models.NewWorker(name, post, year)
	if err != nil {
		return models.Worker{}, err
	}
	s.workers.Append(w)
	s.SortByName()
	return w, nil
}

// Len returns the number of workers.
func (s *Staff) Len() int {
	return s.workers.Len()
}

// Workers returns a copy of the roster in its current order.
func (s *Staff) Workers() []models.Worker {
	return s.workers.All()
}

// SelectByPeriod returns workers hired at least period years before now.
func (s *Staff) SelectByPeriod(period int, now time.Time) []models.Worker {
	year := now.Year()
	return s.workers.Filter(func(w models.Worker) bool {
		return w.Seniority(year) >= period
	})
}

// SortByName orders the roster by name; equal names keep their order.
func (s *Staff) SortByName() {
	s.workers.SortStable(func(a, b models.Worker) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// String renders the roster as a table. An empty roster still renders the
// header.
func (s *Staff) String() string {
	workers := s.workers.All()
	rows := make([][]string, len(workers))
	for i, w := range workers {
		rows[i] = []string{strconv.Itoa(i + 1), w.Name, w.Post, strconv.Itoa(w.Year)}
	}
	return table.Render(columns, rows)
}

// Save writes the roster to path as XML, replacing the file.
func (s *Staff) Save(path string) error {
	workers := s.workers.All()
	doc := workerDocument{Workers: make([]workerElement, len(workers))}
	for i, w := range workers {
		doc.Workers[i] = newWorkerElement(w)
	}

	if err := file.Write(path, doc); err != nil {
		return err
	}
	s.logger.Debug("staff saved", "path", path, "count", len(workers))
	return nil
}

// Load replaces the roster with the workers stored in path, in file order.
// Records missing a field are skipped; a malformed year fails the whole load.
func (s *Staff) Load(path string) error {
	var doc readDocument
	if err := file.Read(path, &doc); err != nil {
		return err
	}

	workers := make([]models.Worker, 0, len(doc.Workers))
	skipped := 0
	for i, e := range doc.Workers {
		if !e.complete() {
			skipped++
			continue
		}
		w, err := e.toWorker()
		if err != nil {
			return fmt.Errorf("%s: record %d: %w", path, i+1, err)
		}
		workers = append(workers, w)
	}

	s.workers.Replace(workers)
	s.logger.Debug("staff loaded", "path", path, "count", len(workers), "skipped", skipped)
	return nil
}
