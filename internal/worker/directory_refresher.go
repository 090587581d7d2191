package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"travel_console/internal/domain/entity"
	"travel_console/internal/domain/value"
	"travel_console/pkg/contextx"
	"travel_console/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

var ErrInvalidInterval = errors.New("refresh interval must be positive")

type hotelDirectory interface {
	Scopes() []value.ID
	Refresh(ctx context.Context, organizationID value.ID) ([]entity.Hotel, error)
}

// DirectoryRefresher periodically lists again every hotel scope the
// directory holds, so organization inference does not wait for a miss.
type DirectoryRefresher struct {
	directory hotelDirectory
	interval  time.Duration
}

func NewDirectoryRefresher(directory hotelDirectory, interval time.Duration) *DirectoryRefresher {
	return &DirectoryRefresher{
		directory: directory,
		interval:  interval,
	}
}

// Run blocks until ctx is done.
func (w *DirectoryRefresher) Run(ctx context.Context) error {
	if w.interval <= 0 {
		return ErrInvalidInterval
	}

	logger(ctx).Info("directory refresher started", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("directory refresher stopped")
			return nil
		case <-ticker.C:
			w.refreshAll(ctx)
		}
	}
}

func (w *DirectoryRefresher) refreshAll(ctx context.Context) {
	var refreshed int

	for _, scope := range w.directory.Scopes() {
		if ctx.Err() != nil {
			return
		}

		if _, err := w.directory.Refresh(ctx, scope); err != nil {
			logger(ctx).Warn("directory.Refresh",
				slog.String(logx.FieldOrganization, scope.String()),
				logx.Error(err),
			)

			continue
		}

		refreshed++
	}

	logger(ctx).Debug("hotel directory refreshed", slog.Int("scopes", refreshed))
}
