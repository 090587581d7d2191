package modules

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"travel_console/pkg/metrics"
)

type MetricServer struct {
	ListenAddress string
	// Gatherer defaults to the global prometheus registry.
	Gatherer prometheus.Gatherer
}

func (m MetricServer) Run(ctx context.Context, g *errgroup.Group) {
	var opts []metrics.Option

	if m.Gatherer != nil {
		opts = append(opts, metrics.WithGatherer(m.Gatherer))
	}

	prometheusServer := metrics.NewPrometheusServer(
		m.ListenAddress,
		opts...,
	)

	g.Go(func() error {
		if err := prometheusServer.Run(ctx); err != nil {
			return fmt.Errorf("prometheusServer.Run: %w", err)
		}

		return nil
	})
}
