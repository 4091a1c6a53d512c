package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tiwariParth/go-records-cli/internal/app"
	"github.com/tiwariParth/go-records-cli/internal/config"
	"github.com/tiwariParth/go-records-cli/internal/ctxlog"
)

// NewStaffCommand returns the top-level staff roster command. Without a
// sub-command it starts the interactive shell.
func NewStaffCommand() *cli.Command {
	return &cli.Command{
		Name:  "staff",
		Usage: "Keep a staff roster stored in an XML file",
		Flags: commonFlags("Staff data file (overrides staff_file)"),
		Before: setup(func(cfg *config.Config, path string) {
			cfg.StaffFile = path
		}),
		Action: runStaffShell,
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a worker",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Full name", Required: true},
					&cli.StringFlag{Name: "post", Usage: "Post", Required: true},
					&cli.IntFlag{Name: "year", Usage: "Year of hire", Required: true},
				},
				Action: runStaffAdd,
			},
			{
				Name:   "list",
				Usage:  "Show all workers",
				Action: runStaffList,
			},
			{
				Name:  "select",
				Usage: "Show workers by years of service",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "period", Usage: "Minimum years of service", Required: true},
				},
				Action: runStaffSelect,
			},
			{
				Name:      "load",
				Usage:     "Import an XML file, overwriting the configured data file",
				ArgsUsage: "<file>",
				Action:    runStaffLoad,
			},
			{
				Name:      "save",
				Usage:     "Save the roster to an XML file",
				ArgsUsage: "<file>",
				Action:    runStaffSave,
			},
			{
				Name:   "shell",
				Usage:  "Start the interactive shell",
				Action: runStaffShell,
			},
		},
	}
}

func openStaffApp(ctx context.Context) (*app.StaffApp, error) {
	a := app.NewStaffApp(configFrom(ctx).StaffFile, ctxlog.FromContext(ctx))
	if err := a.Open(); err != nil {
		return nil, err
	}
	return a, nil
}

func runStaffShell(ctx context.Context, cmd *cli.Command) error {
	a, err := openStaffApp(ctx)
	if err != nil {
		return err
	}
	root := cmd.Root()
	return NewStaffShell(a, root.Reader, root.Writer, time.Now).Run("Staff roster")
}

func runStaffAdd(ctx context.Context, cmd *cli.Command) error {
	a, err := openStaffApp(ctx)
	if err != nil {
		return err
	}
	if _, err := a.AddWorker(cmd.String("name"), cmd.String("post"), int(cmd.Int("year"))); err != nil {
		return err
	}
	fmt.Fprintln(cmd.Root().Writer, Green("Worker added."))
	return nil
}

func runStaffList(ctx context.Context, cmd *cli.Command) error {
	a, err := openStaffApp(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.Root().Writer, a.Staff.String())
	return nil
}

func runStaffSelect(ctx context.Context, cmd *cli.Command) error {
	a, err := openStaffApp(ctx)
	if err != nil {
		return err
	}
	period := int(cmd.Int("period"))
	writeSeniority(cmd.Root().Writer, a.Staff.SelectByPeriod(period, time.Now()), period)
	return nil
}

func runStaffLoad(ctx context.Context, cmd *cli.Command) error {
	path, err := fileArg(cmd)
	if err != nil {
		return err
	}
	a := app.NewStaffApp(configFrom(ctx).StaffFile, ctxlog.FromContext(ctx))
	if err := a.Import(path); err != nil {
		return err
	}
	fmt.Fprintln(cmd.Root().Writer, Green("Data loaded from "+path))
	return nil
}

func runStaffSave(ctx context.Context, cmd *cli.Command) error {
	path, err := fileArg(cmd)
	if err != nil {
		return err
	}
	a, err := openStaffApp(ctx)
	if err != nil {
		return err
	}
	if err := a.Save(path); err != nil {
		return err
	}
	fmt.Fprintln(cmd.Root().Writer, Green("Data saved to "+path))
	return nil
}
