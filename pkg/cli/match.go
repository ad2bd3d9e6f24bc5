package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mchmarny/gunghap/pkg/match"
	"github.com/urfave/cli/v3"
)

const lettersFlag = "letters"

func newMatchCmd() *cli.Command {
	return &cli.Command{
		Name:      "match",
		Aliases:   []string{"m"},
		Usage:     "Score the compatibility of two names",
		ArgsUsage: "NAME_A NAME_B",
		UsageText: `gunghap match 장하은 김운학              # text output
   gunghap --format json match 가 나       # json output
   gunghap match --letters 홍길동 성춘향   # include stroke breakdown`,
		HideHelpCommand: true,
		Action:          cmdMatch,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    lettersFlag,
				Aliases: []string{"l"},
				Usage:   "Include the per-character stroke breakdown",
			},
		},
	}
}

func newStrokesCmd() *cli.Command {
	return &cli.Command{
		Name:            "strokes",
		Aliases:         []string{"s"},
		Usage:           "Show how each character of the text is decomposed and scored",
		ArgsUsage:       "TEXT...",
		HideHelpCommand: true,
		Action:          cmdStrokes,
	}
}

func cmdMatch(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return cli.ShowSubcommandHelp(cmd)
	}
	if cmd.NArg() != 2 {
		return fmt.Errorf("%w: expected 2 names, got %d", errArgs, cmd.NArg())
	}

	cfg := getConfig(ctx)
	a, b := cmd.Args().Get(0), cmd.Args().Get(1)

	var extra []match.Option
	if cmd.Bool(lettersFlag) {
		extra = append(extra, match.WithLetters())
	}

	res, err := match.Compute(a, b, cfg.matchOptions(extra...)...)
	if errors.Is(err, match.ErrInsufficientInput) {
		slog.Warn("cannot score names", "a", a, "b", b, "reason", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to compute score: %w", err)
	}

	slog.Debug("score computed", "merged", res.Merged, "steps", len(res.Trace), "score", res.Score)

	if err := encode(ctx, cmd, res); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}

	return nil
}

func cmdStrokes(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return cli.ShowSubcommandHelp(cmd)
	}

	list := make([]*match.Letter, 0)
	for _, arg := range cmd.Args().Slice() {
		text := arg
		if getConfig(ctx).Normalize {
			text = match.Normalize(text)
		}
		list = append(list, match.Letters(text)...)
	}

	if err := encode(ctx, cmd, list); err != nil {
		return fmt.Errorf("error encoding letters: %w", err)
	}

	return nil
}
