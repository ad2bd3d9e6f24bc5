package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mchmarny/gunghap/pkg/config"
	"github.com/urfave/cli/v3"
)

func newConfigCmd() *cli.Command {
	return &cli.Command{
		Name:            "config",
		Usage:           "Show or save the effective configuration",
		HideHelpCommand: true,
		Action:          cmdConfigShow,
		Commands: []*cli.Command{
			{
				Name:   "save",
				Usage:  "Persist the effective configuration (flags included) to the config file",
				Action: cmdConfigSave,
			},
		},
	}
}

func cmdConfigShow(ctx context.Context, cmd *cli.Command) error {
	cfg := getConfig(ctx)
	if err := encode(ctx, cmd, cfg.Config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

func cmdConfigSave(ctx context.Context, cmd *cli.Command) error {
	cfg := getConfig(ctx)
	if err := config.Save(cfg.Dir, cfg.Config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	slog.Info("config saved", "dir", cfg.Dir)
	return nil
}
