package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mchmarny/gunghap/pkg/config"
	"github.com/mchmarny/gunghap/pkg/logging"
	"github.com/mchmarny/gunghap/pkg/match"
	"github.com/urfave/cli/v3"
)

const (
	appName = "gunghap"

	envPrefix = "GUNGHAP_"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	logLevel = &slog.LevelVar{}

	errArgs = errors.New("invalid arguments")
)

// Flag names. Flags are built per app instance since they hold parse state.
const (
	debugFlag     = "debug"
	configDirFlag = "config-dir"
	formatFlag    = "format"
	normalizeFlag = "normalize"
)

// Execute creates and runs the CLI application.
func Execute() {
	initLogging()

	app := newApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	Dir string
	*config.Config
}

type appConfigKey struct{}

// matchOptions returns the match options implied by the config.
func (c *appConfig) matchOptions(extra ...match.Option) []match.Option {
	opts := make([]match.Option, 0, len(extra)+1)
	if c.Normalize {
		opts = append(opts, match.WithNormalization())
	}
	return append(opts, extra...)
}

func getConfig(ctx context.Context) *appConfig {
	if cfg, ok := ctx.Value(appConfigKey{}).(*appConfig); ok {
		return cfg
	}
	return &appConfig{Config: config.Default()}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:                  appName,
		Version:               fmt.Sprintf("%s (%s - %s)", version, commit, date),
		EnableShellCompletion: true,
		HideHelpCommand:       true,
		Usage:                 "Name compatibility (궁합) score from the stroke counts of two Hangul names",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    debugFlag,
				Usage:   "Prints verbose logs (optional, default: false)",
				Sources: cli.EnvVars(envPrefix + "DEBUG"),
			},
			&cli.StringFlag{
				Name:    configDirFlag,
				Usage:   fmt.Sprintf("Path to the config directory (default: $HOME/.%s)", appName),
				Sources: cli.EnvVars(envPrefix + "CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    formatFlag,
				Aliases: []string{"f"},
				Usage:   "Output format [text, json, yaml] (default: from config)",
				Sources: cli.EnvVars(envPrefix + "FORMAT"),
			},
			&cli.BoolFlag{
				Name:  normalizeFlag,
				Usage: "Compose conjoining jamo into syllables (NFC) before scoring",
			},
		},
		Commands: []*cli.Command{
			newMatchCmd(),
			newStrokesCmd(),
			newBatchCmd(),
			newServerCmd(),
			newConfigCmd(),
		},
		Before: before,
	}
}

func before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool(debugFlag) {
		logLevel.Set(slog.LevelDebug)
	}

	dir := cmd.String(configDirFlag)
	if dir == "" {
		var err error
		if dir, err = config.HomeDir(appName); err != nil {
			return ctx, fmt.Errorf("resolving config dir: %w", err)
		}
	}

	c, err := config.ReadOrCreate(dir)
	if err != nil {
		return ctx, fmt.Errorf("reading config: %w", err)
	}

	if !cmd.Bool(debugFlag) {
		logLevel.Set(logging.ParseLogLevel(c.LogLevel))
	}

	if cmd.IsSet(formatFlag) {
		f := config.NormalizeFormat(cmd.String(formatFlag))
		if !config.IsFormat(f) {
			return ctx, fmt.Errorf("invalid format: %q", cmd.String(formatFlag))
		}
		c.Format = f
	}

	if cmd.IsSet(normalizeFlag) {
		c.Normalize = cmd.Bool(normalizeFlag)
	}

	slog.Debug("config loaded", "dir", dir, "format", c.Format, "normalize", c.Normalize)

	return context.WithValue(ctx, appConfigKey{}, &appConfig{Dir: dir, Config: c}), nil
}

func initLogging() {
	logLevel.Set(slog.LevelInfo)
	slog.SetDefault(slog.New(logging.NewCLIHandler(os.Stderr, logLevel)))
}
