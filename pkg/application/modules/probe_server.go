package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"travel_console/pkg/probe"
)

type ProbeServer struct {
	Name          string
	Version       string
	ListenAddress string
	// ReadinessCheck is optional; without it the service is always ready.
	ReadinessCheck func(context.Context) error
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	var opts []probe.Option

	if p.ReadinessCheck != nil {
		opts = append(opts, probe.WithReadinessCheck(p.ReadinessCheck))
	}

	probeServer := probe.NewServer(
		p.ListenAddress,
		probe.Options{
			Name:    p.Name,
			Version: p.Version,
		},
		opts...,
	)

	g.Go(func() error {
		if err := probeServer.Run(ctx); err != nil {
			return fmt.Errorf("probeServer.Run: %w", err)
		}

		return nil
	})
}
