package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/tiwariParth/go-records-cli/internal/config"
	"github.com/tiwariParth/go-records-cli/internal/ctxlog"
)

type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFrom returns the config installed by setup, or the defaults.
func configFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

func commonFlags(dataFileUsage string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to config file",
			Value:   config.ConfigPath(),
		},
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   dataFileUsage,
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
}

// setup loads the config, applies the --file override through override and
// installs config and logger in the context.
func setup(override func(cfg *config.Config, path string)) cli.BeforeFunc {
	return func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		cfg, err := config.Load(cmd.String("config"))
		if err != nil {
			return ctx, err
		}
		if path := cmd.String("file"); path != "" {
			override(cfg, path)
		}

		level, err := cfg.Level()
		if err != nil {
			return ctx, err
		}
		if cmd.Bool("debug") {
			level = slog.LevelDebug
		}
		configureColor(cfg.Color)

		logger := slog.New(slog.NewTextHandler(cmd.Root().ErrWriter, &slog.HandlerOptions{Level: level}))
		logger.Debug("config loaded", "path", cmd.String("config"), "tasks_file", cfg.TasksFile, "staff_file", cfg.StaffFile)

		ctx = ctxlog.WithLogger(ctx, logger)
		return withConfig(ctx, cfg), nil
	}
}

// choice returns a flag validator accepting only the listed values.
func choice(values ...string) func(string) error {
	return func(v string) error {
		for _, allowed := range values {
			if v == allowed {
				return nil
			}
		}
		return fmt.Errorf("invalid choice %q (choose from %v)", v, values)
	}
}
