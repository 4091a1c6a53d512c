package cli

import (
	"strings"

	"github.com/fatih/color"

	"github.com/tiwariParth/go-records-cli/internal/config"
)

var (
	Bold   = color.New(color.Bold).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
)

// configureColor applies the configured color mode. "auto" keeps the
// library's own terminal detection.
func configureColor(mode string) {
	switch strings.ToLower(mode) {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
}
