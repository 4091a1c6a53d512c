package task

import (
	"encoding/xml"
	"strings"

	"github.com/tiwariParth/go-records-cli/internal/models"
)

// taskDocument is the on-disk layout of a task list:
//
//	<tasks>
//	  <task><text>..</text><priority>HIGH</priority><status>NEW</status></task>
//	</tasks>
type taskDocument struct {
	XMLName xml.Name      `xml:"tasks"`
	Tasks   []taskElement `xml:"task"`
}

// taskElement holds the raw leaf values of one record. On decode every child
// of the root is accepted whatever its tag; leaves are matched by name.
type taskElement struct {
	XMLName  xml.Name
	Text     string `xml:"text"`
	Priority string `xml:"priority"`
	Status   string `xml:"status"`
}

// readDocument is the decode-side twin of taskDocument.
type readDocument struct {
	XMLName xml.Name      `xml:"tasks"`
	Tasks   []taskElement `xml:",any"`
}

func newTaskElement(t models.Task) taskElement {
	return taskElement{
		XMLName:  xml.Name{Local: "task"},
		Text:     t.Text,
		Priority: t.Priority.String(),
		Status:   t.Status.Name(),
	}
}

// complete reports whether every required leaf carried a value.
func (e taskElement) complete() bool {
	return e.Text != "" && e.Priority != "" && e.Status != ""
}

// toTask validates the stored names. A status that is blank after trimming
// is rejected rather than taking the add-time default.
func (e taskElement) toTask() (models.Task, error) {
	status := strings.TrimSpace(e.Status)
	if status == "" {
		return models.Task{}, &models.ValidationError{Field: "status", Value: e.Status}
	}
	return models.NewTask(e.Text, strings.TrimSpace(e.Priority), status)
}
