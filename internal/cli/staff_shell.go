package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tiwariParth/go-records-cli/internal/app"
	"github.com/tiwariParth/go-records-cli/internal/models"
)

// NewStaffShell builds the interactive staff roster shell. now supplies the
// current date for seniority queries.
func NewStaffShell(a *app.StaffApp, in io.Reader, out io.Writer, now func() time.Time) *Shell {
	s := NewShell(in, out)

	s.Handle("add", func(args []string) error {
		name := strings.Join(args, " ")
		if name == "" {
			var err error
			if name, err = s.Prompt("Full name: "); err != nil {
				return err
			}
		}
		post, err := s.Prompt("Post: ")
		if err != nil {
			return err
		}
		rawYear, err := s.Prompt("Year of hire: ")
		if err != nil {
			return err
		}
		year, err := parseInt("year", rawYear)
		if err != nil {
			return err
		}

		if _, err := a.AddWorker(name, post, year); err != nil {
			return err
		}
		s.println(Green("Worker added."))
		return nil
	})

	s.Handle("list", func([]string) error {
		s.println(a.Staff.String())
		return nil
	})

	s.Handle("select", func(args []string) error {
		raw, err := s.arg(args, 0, "Years of service: ")
		if err != nil {
			return err
		}
		period, err := parseInt("period", raw)
		if err != nil {
			return err
		}
		writeSeniority(s.out, a.Staff.SelectByPeriod(period, now()), period)
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

func writeSeniority(w io.Writer, workers []models.Worker, period int) {
	if len(workers) == 0 {
		fmt.Fprintln(w, Yellow("No workers with the given seniority found."))
		return
	}
	fmt.Fprintf(w, "Workers with at least %d years of service:\n", period)
	for i, wk := range workers {
		fmt.Fprintf(w, "%4d: %s - %s (%d)\n", i+1, wk.Name, wk.Post, wk.Year)
	}
}

func parseInt(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &models.ValidationError{Field: field, Value: raw}
	}
	return n, nil
}
