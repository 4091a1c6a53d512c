// Package argdemo holds small command-line parsing demos: positional
// arguments, boolean and counted flags, sub-commands and getopt-style options.
package argdemo

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"
)

// NewCommand returns the argdemo root command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "argdemo",
		Usage: "Command-line argument parsing demos",
		Commands: []*cli.Command{
			newSquareCommand(),
			newPowerCommand(),
			newDirsCommand(),
			newGetoptCommand(),
		},
	}
}

// intArg parses the named positional argument as an integer.
func intArg(cmd *cli.Command, name string) (int, error) {
	raw := cmd.StringArg(name)
	if raw == "" {
		return 0, fmt.Errorf("missing argument %s", name)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("argument %s: invalid int value %q", name, raw)
	}
	return n, nil
}

// stringArg returns the named positional argument, which must be present.
func stringArg(cmd *cli.Command, name string) (string, error) {
	v := cmd.StringArg(name)
	if v == "" {
		return "", fmt.Errorf("missing argument %s", name)
	}
	return v, nil
}
