package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// BatchLimitDefault is the number of pairs scored concurrently when no limit
// is given.
const BatchLimitDefault = 4

// Pair is a single batch query.
type Pair struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
}

// BatchItem is the outcome of one Pair. Exactly one of Result and Warning is set.
type BatchItem struct {
	Pair    Pair    `json:"pair" yaml:"pair"`
	Result  *Result `json:"result,omitempty" yaml:"result,omitempty"`
	Warning string  `json:"warning,omitempty" yaml:"warning,omitempty"`
}

// ComputeAll scores every pair with at most limit queries in flight. Items are
// returned in input order. Pairs with insufficient input carry a warning
// rather than failing the batch; only context cancellation aborts it.
func ComputeAll(ctx context.Context, pairs []Pair, limit int, opts ...Option) ([]*BatchItem, error) {
	if limit <= 0 {
		limit = BatchLimitDefault
	}

	items := make([]*BatchItem, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, p := range pairs {
		if err := ctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			item := &BatchItem{Pair: p}
			res, err := Compute(p.A, p.B, opts...)
			switch {
			case errors.Is(err, ErrInsufficientInput):
				slog.Debug("insufficient input", "index", i, "a", p.A, "b", p.B)
				item.Warning = err.Error()
			case err != nil:
				return fmt.Errorf("pair %d: %w", i, err)
			default:
				item.Result = res
			}
			items[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("computing batch: %w", err)
	}

	// the loop may have stopped early without any goroutine reporting it
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("computing batch: %w", err)
	}

	return items, nil
}
