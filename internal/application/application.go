package application

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"travel_console/internal/config"
	"travel_console/internal/domain/service/availability"
	"travel_console/internal/infrastructure/dataservice"
	"travel_console/internal/server"
	"travel_console/internal/worker"
	"travel_console/pkg/application/modules"
	"travel_console/pkg/logx"
	"travel_console/pkg/middlewarex"
)

// Run wires the console backend and blocks until ctx is done or one of
// the modules fails.
func Run(ctx context.Context, cfg config.Config) error {
	candidates, err := availability.ParseCandidates(cfg.Availability.Candidates)
	if err != nil {
		return fmt.Errorf("availability.ParseCandidates: %w", err)
	}

	client, err := dataservice.NewClient(dataservice.Config{
		BaseURL:        cfg.DataService.BaseURL,
		Token:          cfg.DataService.Token,
		Timeout:        cfg.DataService.Timeout,
		LogFieldMaxLen: cfg.DataService.LogFieldMaxLen,
	})
	if err != nil {
		return fmt.Errorf("dataservice.NewClient: %w", err)
	}

	directory := dataservice.NewDirectory(client, cfg.Directory.TTL)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	lookupMetrics := availability.NewMetrics(registry)

	contexts := availability.NewContexts(cfg.Availability.ContextTTL, func() *availability.Service {
		return availability.NewService(
			client,
			availability.WithCandidates(candidates),
			availability.WithMetrics(lookupMetrics),
		)
	})

	srv := server.NewServer(
		server.NewPricesServer(),
		server.NewHotelsServer(client, directory, contexts),
	)

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ListenAddress:   cfg.HTTP.ListenAddress,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, newRouter(srv, cfg.HTTP.LogFieldMaxLen))

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		ReadinessCheck: func(ctx context.Context) error {
			if _, err := directory.Hotels(ctx, ""); err != nil {
				return fmt.Errorf("directory.Hotels: %w", err)
			}

			return nil
		},
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	refresher := worker.NewDirectoryRefresher(directory, cfg.Directory.RefreshInterval)

	modules.Worker{
		Name:    "directoryRefresher",
		Enabled: cfg.Directory.RefreshInterval > 0,
	}.Run(ctx, g, refresher.Run)

	if err = g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func newRouter(srv server.Server, logFieldMaxLen int) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.ScreenID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)

	srv.RegisterRoutes(router)

	return router
}
