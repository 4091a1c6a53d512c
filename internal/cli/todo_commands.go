package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tiwariParth/go-records-cli/internal/app"
	"github.com/tiwariParth/go-records-cli/internal/config"
	"github.com/tiwariParth/go-records-cli/internal/ctxlog"
)

var (
	priorityChoices = []string{"low", "medium", "high"}
	statusChoices   = []string{"new", "in_progress", "completed"}
)

// NewTodoCommand returns the top-level to-do list command. Without a
// sub-command it starts the interactive shell.
func NewTodoCommand() *cli.Command {
	return &cli.Command{
		Name:  "todo",
		Usage: "Manage a to-do list stored in an XML file",
		Flags: commonFlags("Task data file (overrides tasks_file)"),
		Before: setup(func(cfg *config.Config, path string) {
			cfg.TasksFile = path
		}),
		Action: runTodoShell,
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a task",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "text", Usage: "Task text"},
					&cli.StringFlag{
						Name:      "priority",
						Usage:     "Priority (low, medium, high)",
						Validator: choice(priorityChoices...),
					},
					&cli.StringFlag{
						Name:      "status",
						Usage:     "Status (new, in_progress, completed)",
						Value:     "new",
						Validator: choice(statusChoices...),
					},
				},
				Action: runTodoAdd,
			},
			{
				Name:   "list",
				Usage:  "Show all tasks",
				Action: runTodoList,
			},
			{
				Name:  "select",
				Usage: "Show tasks with a given status or priority",
				MutuallyExclusiveFlags: []cli.MutuallyExclusiveFlags{
					{
						Required: true,
						Flags: [][]cli.Flag{
							{&cli.StringFlag{
								Name:      "status",
								Usage:     "Filter by status",
								Validator: choice(statusChoices...),
							}},
							{&cli.StringFlag{
								Name:      "priority",
								Usage:     "Filter by priority",
								Validator: choice(priorityChoices...),
							}},
						},
					},
				},
				Action: runTodoSelect,
			},
			{
				Name:   "sort",
				Usage:  "Sort tasks by priority",
				Action: runTodoSort,
			},
			{
				Name:      "load",
				Usage:     "Import an XML file, overwriting the configured data file",
				ArgsUsage: "<file>",
				Action:    runTodoLoad,
			},
			{
				Name:      "save",
				Usage:     "Save the task list to an XML file",
				ArgsUsage: "<file>",
				Action:    runTodoSave,
			},
			{
				Name:   "shell",
				Usage:  "Start the interactive shell",
				Action: runTodoShell,
			},
		},
	}
}

func openTodoApp(ctx context.Context) (*app.TodoApp, error) {
	a := app.NewTodoApp(configFrom(ctx).TasksFile, ctxlog.FromContext(ctx))
	if err := a.Open(); err != nil {
		return nil, err
	}
	return a, nil
}

func runTodoShell(ctx context.Context, cmd *cli.Command) error {
	a, err := openTodoApp(ctx)
	if err != nil {
		return err
	}
	root := cmd.Root()
	return NewTodoShell(a, root.Reader, root.Writer).Run("To-do list manager")
}

func runTodoAdd(ctx context.Context, cmd *cli.Command) error {
	root := cmd.Root()
	prompter := NewShell(root.Reader, root.Writer)
	prompter.SetInteractive(true)

	text, err := flagOrPrompt(cmd, prompter, "text", "Task text: ")
	if err != nil {
		return err
	}
	priority, err := flagOrPrompt(cmd, prompter, "priority", "Priority (low/medium/high): ")
	if err != nil {
		return err
	}
	priority = strings.ToLower(priority)
	if err := choice(priorityChoices...)(priority); err != nil {
		return err
	}

	a, err := openTodoApp(ctx)
	if err != nil {
		return err
	}
	if _, err := a.AddTask(text, priority, cmd.String("status")); err != nil {
		return err
	}
	fmt.Fprintln(root.Writer, Green("Task added."))
	return nil
}

func runTodoList(ctx context.Context, cmd *cli.Command) error {
	a, err := openTodoApp(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.Root().Writer, a.List.String())
	return nil
}

func runTodoSelect(ctx context.Context, cmd *cli.Command) error {
	a, err := openTodoApp(ctx)
	if err != nil {
		return err
	}

	field, value := "status", cmd.String("status")
	if value == "" {
		field, value = "priority", cmd.String("priority")
	}

	selected, err := a.List.SelectBy(field, value)
	if err != nil {
		return err
	}
	writeSelection(cmd.Root().Writer, selected)
	return nil
}

func runTodoSort(ctx context.Context, cmd *cli.Command) error {
	a, err := openTodoApp(ctx)
	if err != nil {
		return err
	}
	if err := a.SortTasks(); err != nil {
		return err
	}
	w := cmd.Root().Writer
	fmt.Fprintln(w, Green("Tasks sorted by priority."))
	fmt.Fprintln(w, a.List.String())
	return nil
}

func runTodoLoad(ctx context.Context, cmd *cli.Command) error {
	path, err := fileArg(cmd)
	if err != nil {
		return err
	}
	a := app.NewTodoApp(configFrom(ctx).TasksFile, ctxlog.FromContext(ctx))
	if err := a.Import(path); err != nil {
		return err
	}
	fmt.Fprintln(cmd.Root().Writer, Green("Data loaded from "+path))
	return nil
}

func runTodoSave(ctx context.Context, cmd *cli.Command) error {
	path, err := fileArg(cmd)
	if err != nil {
		return err
	}
	a, err := openTodoApp(ctx)
	if err != nil {
		return err
	}
	if err := a.Save(path); err != nil {
		return err
	}
	fmt.Fprintln(cmd.Root().Writer, Green("Data saved to "+path))
	return nil
}

// flagOrPrompt returns the flag value, prompting on the command's input
// when the flag was not given.
func flagOrPrompt(cmd *cli.Command, s *Shell, name, label string) (string, error) {
	if v := cmd.String(name); v != "" {
		return v, nil
	}
	v, err := s.Prompt(label)
	if err != nil || v == "" {
		return "", fmt.Errorf("missing --%s", name)
	}
	return v, nil
}

func fileArg(cmd *cli.Command) (string, error) {
	path := cmd.Args().First()
	if path == "" {
		return "", fmt.Errorf("usage: %s %s", cmd.FullName(), cmd.ArgsUsage)
	}
	return path, nil
}
