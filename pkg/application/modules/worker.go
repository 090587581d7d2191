package modules

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Worker runs a background loop until ctx is done. A zero Enabled worker
// is skipped.
type Worker struct {
	Name    string
	Enabled bool
}

func (w Worker) Run(
	ctx context.Context,
	g *errgroup.Group,
	run func(context.Context) error,
) {
	if !w.Enabled {
		logger(ctx).Info("worker disabled", slog.String("worker", w.Name))
		return
	}

	g.Go(func() error {
		logger(ctx).Info("worker started", slog.String("worker", w.Name))

		if err := run(ctx); err != nil {
			return fmt.Errorf("%s.Run: %w", w.Name, err)
		}

		logger(ctx).Info("worker stopped", slog.String("worker", w.Name))

		return nil
	})
}
