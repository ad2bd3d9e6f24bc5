package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mchmarny/gunghap/pkg/config"
	"github.com/mchmarny/gunghap/pkg/match"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	tabPadding = 2
	percent    = "%"
)

func encode(ctx context.Context, cmd *cli.Command, v any) error {
	w := cmd.Root().Writer
	switch getConfig(ctx).Format {
	case config.FormatJSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(v)
	case config.FormatYAML:
		return encodeYAML(w, v)
	default:
		return encodeText(w, v)
	}
}

func encodeYAML(w io.Writer, v any) error {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	if err := e.Encode(v); err != nil {
		return err
	}
	return e.Close()
}

func encodeText(w io.Writer, v any) error {
	switch t := v.(type) {
	case *match.Result:
		return writeResult(w, t)
	case []*match.Letter:
		return writeLetters(w, t)
	case []*match.BatchItem:
		return writeBatch(w, t)
	default:
		// no dedicated text layout
		return encodeYAML(w, v)
	}
}

func writeResult(w io.Writer, r *match.Result) error {
	chars := make([]string, 0, len(r.Strokes))
	for _, c := range r.Merged {
		chars = append(chars, string(c))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s + %s\n\n", r.A, r.B)
	fmt.Fprintf(&b, "%s\n", strings.Join(chars, "  "))
	fmt.Fprintf(&b, "%s\n\n", joinInts(r.Strokes, "  "))
	for i, row := range r.Trace {
		fmt.Fprintf(&b, "step %d: %s\n", i+1, joinInts(row, " "))
	}
	fmt.Fprintf(&b, "\nscore: %d%s\n", r.Score, percent)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	if len(r.Letters) > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		return writeLetters(w, r.Letters)
	}
	return nil
}

func writeLetters(w io.Writer, list []*match.Letter) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "CHAR\tINITIAL\tVOWEL\tFINAL\tSTROKES")
	for _, l := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n",
			l.Char, dash(l.Initial), dash(l.Vowel), dash(l.Final), l.Strokes)
	}
	return tw.Flush()
}

func writeBatch(w io.Writer, items []*match.BatchItem) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "A\tB\tMERGED\tSCORE")
	for _, it := range items {
		if it.Result == nil {
			fmt.Fprintf(tw, "%s\t%s\t-\t%s\n", dash(it.Pair.A), dash(it.Pair.B), it.Warning)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d%s\n", it.Result.A, it.Result.B, it.Result.Merged, it.Result.Score, percent)
	}
	return tw.Flush()
}

func joinInts(list []int, sep string) string {
	s := make([]string, len(list))
	for i, v := range list {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, sep)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
