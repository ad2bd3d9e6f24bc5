package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mchmarny/gunghap/pkg/match"
	"github.com/mchmarny/gunghap/pkg/net"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	stdinPath = "-"

	batchFileFlag   = "file"
	concurrencyFlag = "concurrency"
)

func newBatchCmd() *cli.Command {
	return &cli.Command{
		Name:    "batch",
		Aliases: []string{"b"},
		Usage:   "Score a list of name pairs",
		UsageText: `gunghap batch --file pairs.yaml
   cat pairs.json | gunghap --format json batch --file -`,
		HideHelpCommand: true,
		Action:          cmdBatch,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     batchFileFlag,
				Usage:    "YAML or JSON list of {a, b} name pairs: file path, http(s) URL, or - for stdin",
				Required: true,
			},
			&cli.IntFlag{
				Name:  concurrencyFlag,
				Usage: "Number of pairs scored in parallel (default: from config)",
			},
		},
	}
}

func cmdBatch(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	cfg := getConfig(ctx)

	path := cmd.String(batchFileFlag)
	pairs, err := readPairs(ctx, cmd.Root().Reader, path)
	if err != nil {
		return fmt.Errorf("failed to read pairs from %s: %w", path, err)
	}

	limit := cfg.Concurrency
	if cmd.IsSet(concurrencyFlag) {
		limit = cmd.Int(concurrencyFlag)
	}

	items, err := match.ComputeAll(ctx, pairs, limit, cfg.matchOptions()...)
	if err != nil {
		return fmt.Errorf("failed to score pairs: %w", err)
	}

	slog.Debug("batch scored", "pairs", len(items), "concurrency", limit, "duration", time.Since(start).String())

	if err := encode(ctx, cmd, items); err != nil {
		return fmt.Errorf("error encoding batch: %w", err)
	}

	return nil
}

func readPairs(ctx context.Context, stdin io.Reader, path string) ([]match.Pair, error) {
	var b []byte
	var err error

	switch {
	case path == stdinPath:
		if stdin == nil {
			stdin = os.Stdin
		}
		b, err = io.ReadAll(stdin)
	case net.IsURL(path):
		slog.Debug("fetching pairs", "url", path)
		b, err = net.Fetch(ctx, path)
	default:
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	var pairs []match.Pair
	if err := yaml.Unmarshal(b, &pairs); err != nil {
		return nil, fmt.Errorf("decoding pairs: %w", err)
	}

	return pairs, nil
}
