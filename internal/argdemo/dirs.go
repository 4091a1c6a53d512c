package argdemo

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func newDirsCommand() *cli.Command {
	dirArg := func(usage string) []cli.Argument {
		return []cli.Argument{&cli.StringArg{Name: "dirname", UsageText: usage}}
	}

	return &cli.Command{
		Name:  "dirs",
		Usage: "Sub-command demo: list or create a directory",
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "List contents",
				Arguments: dirArg("Directory to list"),
				Action: func(_ context.Context, cmd *cli.Command) error {
					dir, err := stringArg(cmd, "dirname")
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.Root().Writer, "list: dirname=%s\n", dir)
					return nil
				},
			},
			{
				Name:      "create",
				Usage:     "Create a directory",
				Arguments: dirArg("New directory to create"),
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "read-only",
						Usage: "Set permissions to prevent writing to the directory",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					dir, err := stringArg(cmd, "dirname")
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.Root().Writer, "create: dirname=%s read_only=%t\n", dir, cmd.Bool("read-only"))
					return nil
				},
			},
		},
	}
}
