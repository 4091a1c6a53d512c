package staff

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/tiwariParth/go-records-cli/internal/models"
	"github.com/tiwariParth/go-records-cli/internal/storage"
)

// workerDocument is the on-disk layout of a roster:
//
//	<workers>
//	  <worker><name>..</name><post>..</post><year>2015</year></worker>
//	</workers>
type workerDocument struct {
	XMLName xml.Name        `xml:"workers"`
	Workers []workerElement `xml:"worker"`
}

type readDocument struct {
	XMLName xml.Name        `xml:"workers"`
	Workers []workerElement `xml:",any"`
}

type workerElement struct {
	XMLName xml.Name
	Name    string `xml:"name"`
	Post    string `xml:"post"`
	Year    string `xml:"year"`
}

func newWorkerElement(w models.Worker) workerElement {
	return workerElement{
		XMLName: xml.Name{Local: "worker"},
		Name:    w.Name,
		Post:    w.Post,
		Year:    strconv.Itoa(w.Year),
	}
}

func (e workerElement) complete() bool {
	return e.Name != "" && e.Post != "" && e.Year != ""
}

func (e workerElement) toWorker() (models.Worker, error) {
	year, err := strconv.Atoi(strings.TrimSpace(e.Year))
	if err != nil {
		return models.Worker{}, fmt.Errorf("%w: year %q is not a number", storage.ErrParse, e.Year)
	}
	return models.Worker{Name: e.Name, Post: e.Post, Year: year}, nil
}
