// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taibuivan/indiepub/internal/business"
	"github.com/taibuivan/indiepub/internal/catalog"
	"github.com/taibuivan/indiepub/internal/completion"
	"github.com/taibuivan/indiepub/internal/directory"
	"github.com/taibuivan/indiepub/internal/documents"
	"github.com/taibuivan/indiepub/internal/enrichment"
	"github.com/taibuivan/indiepub/internal/licensing"
	"github.com/taibuivan/indiepub/internal/optimizer"
	"github.com/taibuivan/indiepub/internal/platform/metrics"
	"github.com/taibuivan/indiepub/internal/setup"
)

// errNoCompletionKey is reported by /ready while no credential is configured.
var errNoCompletionKey = errors.New("completion API key not configured; canned answers are served")

// Completer is the completion client as the composition root sees it.
type Completer interface {
	completion.Completer
	Configured() bool
}

// Dependencies are the process-wide collaborators of every page.
type Dependencies struct {
	Logger       *slog.Logger
	Completer    Completer
	Registry     *prometheus.Registry
	StoreLatency time.Duration
	Now          time.Time
}

// BuildHandlers seeds the stores and constructs every page handler.
func BuildHandlers(deps Dependencies) (Handlers, error) {
	logger := deps.Logger

	recorder, err := metrics.NewEnrichmentMetrics(deps.Registry)
	if err != nil {
		return Handlers{}, fmt.Errorf("api: register enrichment metrics: %w", err)
	}
	if err := deps.Registry.Register(collectors.NewGoCollector()); err != nil {
		return Handlers{}, fmt.Errorf("api: register go collector: %w", err)
	}

	venues, err := directory.LoadVenues()
	if err != nil {
		return Handlers{}, err
	}
	venueDirectory := directory.New(venues)

	enricher := enrichment.NewService(deps.Completer, recorder, logger)

	songs := catalog.NewService(
		catalog.NewMemoryRepository(deps.StoreLatency, catalog.SeedSongs(deps.Now)...),
		enricher, logger)

	liveness, readiness := NewHealthHandlers([]HealthCheck{
		{
			Name: "completion",
			Check: func(context.Context) error {
				if !deps.Completer.Configured() {
					return errNoCompletionKey
				}
				return nil
			},
		},
		{
			Name:     "venues",
			Critical: true,
			Check: func(context.Context) error {
				if venueDirectory.Len() == 0 {
					return errors.New("venue dataset is empty")
				}
				return nil
			},
		},
	}, logger)

	return Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Metrics:   promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{Registry: deps.Registry}),

		Catalog: catalog.NewHandler(songs),
		Documents: documents.NewHandler(documents.NewService(
			documents.NewMemoryRepository(deps.StoreLatency, documents.SeedDocuments()...),
			enricher, logger)),
		Business: business.NewHandler(business.NewService(enricher, logger)),
		Setup: setup.NewHandler(setup.NewService(
			setup.NewMemoryRepository(deps.StoreLatency, setup.DefaultSeed()), logger)),
		Optimizer: optimizer.NewHandler(optimizer.NewService(
			optimizer.NewMemoryRepository(deps.StoreLatency, optimizer.SeedTasks()...), logger)),
		Licensing: licensing.NewHandler(licensing.NewService(songs)),
		Directory: directory.NewHandler(venueDirectory),
	}, nil
}
