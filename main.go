package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tinystore/internal/app"
	"github.com/colonyops/tinystore/internal/commands"
	"github.com/colonyops/tinystore/internal/core/config"
	"github.com/colonyops/tinystore/internal/core/styles"
	"github.com/colonyops/tinystore/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// go install leaves the ldflags unset; fall back to the embedded build info.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		tinyApp   = &app.App{}
	)

	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "tinystore",
		Usage:     "Tiny predictable state containers with a todo list and a counter",
		UsageText: "tinystore [global options] command [command options]",
		Description: `tinystore keeps application state in a single store that only changes by
dispatching actions through a reducer. Listeners subscribed to the store are
notified after every dispatch.

Run 'tinystore' with no arguments to open the todo list.
Run 'tinystore replay' to apply a JSON action log and print the result.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TINYSTORE_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("TINYSTORE_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TINYSTORE_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			// Validation ensures the theme name is known.
			palette, _ := styles.GetPalette(cfg.TUI.Theme)
			styles.SetTheme(palette)

			// Commands already hold a pointer to the app.
			*tinyApp = *app.New(cfg)

			log.Debug().
				Str("config", flags.ConfigPath).
				Str("theme", cfg.TUI.Theme).
				Msg("tinystore started")
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	todosCmd := commands.NewTodosCmd(flags, tinyApp)

	root = todosCmd.Register(root)
	root = commands.NewCounterCmd(flags, tinyApp).Register(root)
	root = commands.NewReplayCmd(flags, tinyApp).Register(root)

	// The todo list is the default action when no subcommand is provided.
	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'tinystore --help' for usage", c.Args().First())
		}
		return todosCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := root.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
