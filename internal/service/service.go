// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package service ties location lookup, place search, ranking and presentation together.
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vorlif/spreak"

	"github.com/wneessen/foodfinder/internal/config"
	"github.com/wneessen/foodfinder/internal/geo"
	"github.com/wneessen/foodfinder/internal/http"
	"github.com/wneessen/foodfinder/internal/locate"
	"github.com/wneessen/foodfinder/internal/logger"
	"github.com/wneessen/foodfinder/internal/overpass"
	"github.com/wneessen/foodfinder/internal/presenter"
	"github.com/wneessen/foodfinder/internal/ranking"
)

// PlaceQuerier fetches the raw place elements around a center.
type PlaceQuerier interface {
	Query(ctx context.Context, center geo.Coordinate, radius float64) ([]overpass.Element, error)
}

type Service struct {
	config *config.Config
	logger *logger.Logger
	t      *spreak.Localizer
	http   *http.Client
	out    io.Writer

	locator  locate.Locator
	querier  PlaceQuerier
	pipeline *ranking.Pipeline
	sink     presenter.Sink
}

func New(conf *config.Config, log *logger.Logger, t *spreak.Localizer) (*Service, error) {
	pipeline, err := ranking.New(conf.SearchConfig(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ranking pipeline: %w", err)
	}

	service := &Service{
		config:   conf,
		logger:   log,
		t:        t,
		http:     http.New(log),
		out:      os.Stdout,
		pipeline: pipeline,
	}
	service.locator = service.selectLocator()
	service.querier = service.selectQuerier()
	if service.sink, err = service.selectSink(); err != nil {
		return nil, fmt.Errorf("failed to create presenter: %w", err)
	}

	return service, nil
}

// Run performs a single search: it resolves the location, queries the places around it, ranks
// them and hands the result to the configured presenter.
func (s *Service) Run(ctx context.Context) error {
	origin, err := s.locator.Resolve(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve location: %w", err)
	}
	s.logger.Debug("resolved location", slog.String("provider", s.locator.Name()),
		slog.String("coordinate", origin.String()), slog.String("place", origin.Place()))
	if err = presenter.PrintLocation(s.out, s.t, origin); err != nil {
		return fmt.Errorf("failed to present results: %w", err)
	}

	search := s.pipeline.Config()
	elements, err := s.querier.Query(ctx, origin.Coordinate, search.RadiusMeters)
	if err != nil {
		return fmt.Errorf("failed to query places: %w", err)
	}
	s.logger.Debug("received place elements", slog.Int("count", len(elements)))

	records := s.pipeline.Rank(elements, origin.Coordinate)
	if len(records) == 0 {
		if err = presenter.PrintNoResults(s.out, s.t, search.RadiusMeters); err != nil {
			return fmt.Errorf("failed to present results: %w", err)
		}
		return nil
	}

	if s.config.Output.Mode != config.OutputModeList {
		if _, err = fmt.Fprintf(s.out, s.t.Get("Found %d places, generating map...")+"\n", len(records)); err != nil {
			return fmt.Errorf("failed to present results: %w", err)
		}
	}
	if err = s.sink.Present(ctx, records, origin); err != nil {
		return fmt.Errorf("failed to present results: %w", err)
	}

	return nil
}
