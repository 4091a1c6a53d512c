package argdemo

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func newSquareCommand() *cli.Command {
	return &cli.Command{
		Name:  "square",
		Usage: "Display the square of a given number",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "n", UsageText: "number to square"},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Increase output verbosity"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			n, err := intArg(cmd, "n")
			if err != nil {
				return err
			}
			w := cmd.Root().Writer
			if cmd.Bool("verbose") {
				fmt.Fprintf(w, "The square of %d is %d\n", n, n*n)
				return nil
			}
			fmt.Fprintln(w, n*n)
			return nil
		},
	}
}

// newPowerCommand is square with a counted verbosity flag: -v, -vv.
func newPowerCommand() *cli.Command {
	var verbosity int
	return &cli.Command{
		Name:                   "power",
		Usage:                  "Display the square of a given number with counted verbosity",
		UseShortOptionHandling: true,
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "n", UsageText: "number to square"},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbosity",
				Aliases: []string{"v"},
				Usage:   "Increase output verbosity (repeatable)",
				Config:  cli.BoolConfig{Count: &verbosity},
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			n, err := intArg(cmd, "n")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.Root().Writer, describeSquare(n, verbosity))
			return nil
		},
	}
}

func describeSquare(n, verbosity int) string {
	r := n * n
	switch {
	case verbosity >= 2:
		return fmt.Sprintf("the square of %d equals %d", n, r)
	case verbosity == 1:
		return fmt.Sprintf("%d^2 = %d", n, r)
	default:
		return fmt.Sprint(r)
	}
}
