package argdemo

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"github.com/urfave/cli/v3"
)

// exitUsage is the exit status for malformed options.
const exitUsage = 2

func newGetoptCommand() *cli.Command {
	return &cli.Command{
		Name:            "getopt",
		Usage:           "getopt-style option parsing: -h, -o FILE, -v",
		ArgsUsage:       "[-h] [-o FILE] [-v] [ARGS...]",
		SkipFlagParsing: true,
		Action: func(_ context.Context, cmd *cli.Command) error {
			if err := Getopt(cmd.Root().Writer, cmd.Args().Slice()); err != nil {
				return cli.Exit(err.Error(), exitUsage)
			}
			return nil
		},
	}
}

// Getopt parses args the way getopt(3) does with "ho:v" and the long forms
// help, output= and verbose. Each option is reported in the order given;
// parsing stops at the first non-option argument.
func Getopt(w io.Writer, args []string) error {
	fs := pflag.NewFlagSet("getopt", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(false)
	fs.BoolP("help", "h", false, "display help")
	fs.StringP("output", "o", "", "output file")
	fs.BoolP("verbose", "v", false, "enable verbose mode")

	var report []string
	err := fs.ParseAll(args, func(flag *pflag.Flag, value string) error {
		switch flag.Name {
		case "help":
			report = append(report, "Displaying help")
		case "output":
			report = append(report, "Output set to: "+value)
		case "verbose":
			report = append(report, "Verbose mode enabled")
		}
		return fs.Set(flag.Name, value)
	})
	if err != nil {
		return err
	}

	for _, line := range report {
		fmt.Fprintln(w, line)
	}
	if rest := fs.Args(); len(rest) > 0 {
		fmt.Fprintf(w, "Remaining arguments: %q\n", rest)
	}
	return nil
}
