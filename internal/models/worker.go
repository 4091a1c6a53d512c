package models

// Worker is an immutable staff roster entry.
type Worker struct {
	Name string
	Post string
	Year int // year of hire
}

// NewWorker builds a Worker. Name and post must be non-empty text that an XML
// document can hold, since other records cannot be read back from disk.
func NewWorker(name, post string, year int) (Worker, error) {
	if err := checkText("name", name); err != nil {
		return Worker{}, err
	}
	if err := checkText("post", post); err != nil {
		return Worker{}, err
	}
	return Worker{Name: name, Post: post, Year: year}, nil
}

// Seniority returns the number of full calendar years since hire.
func (w Worker) Seniority(currentYear int) int {
	return currentYear - w.Year
}
