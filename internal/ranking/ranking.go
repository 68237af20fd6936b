// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package ranking turns raw Overpass elements into a bounded list of named places ordered by
// their distance to an origin.
package ranking

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/wneessen/foodfinder/internal/geo"
	"github.com/wneessen/foodfinder/internal/logger"
	"github.com/wneessen/foodfinder/internal/overpass"
	"github.com/wneessen/foodfinder/internal/place"
)

const (
	DefaultRadiusMeters = 1000
	DefaultResultLimit  = 50
)

var (
	ErrInvalidRadius = errors.New("search radius must be greater than zero")
	ErrInvalidLimit  = errors.New("result limit must be greater than zero")
)

// Config holds the search parameters of a run.
type Config struct {
	RadiusMeters float64
	ResultLimit  int
	// EnforceRadius drops places farther than RadiusMeters from the origin after annotation.
	EnforceRadius bool
}

// DefaultConfig returns the Config with the default radius and limit.
func DefaultConfig() Config {
	return Config{
		RadiusMeters: DefaultRadiusMeters,
		ResultLimit:  DefaultResultLimit,
	}
}

// Validate checks that radius and limit are positive. The radius must also be finite.
func (c Config) Validate() error {
	if !(c.RadiusMeters > 0) || math.IsInf(c.RadiusMeters, 1) {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, c.RadiusMeters)
	}
	if c.ResultLimit <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, c.ResultLimit)
	}
	return nil
}

// Pipeline ranks raw elements using a fixed Config.
type Pipeline struct {
	config Config
	logger *logger.Logger
}

// New returns a Pipeline for the given Config.
func New(conf Config, log *logger.Logger) (*Pipeline, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{config: conf, logger: log}, nil
}

// Config returns the Config of the Pipeline.
func (p *Pipeline) Config() Config {
	return p.config
}

// Rank parses, annotates, sorts and truncates elements according to the Pipeline's Config. An
// empty result is not an error.
func (p *Pipeline) Rank(elements []overpass.Element, origin geo.Coordinate) []place.Record {
	records := Parse(elements)
	if skipped := len(elements) - len(records); skipped > 0 {
		p.logger.Debug("skipped unnamed or unlocated elements", slog.Int("skipped", skipped),
			slog.Int("kept", len(records)))
	}

	Annotate(records, origin)
	if p.config.EnforceRadius {
		before := len(records)
		records = slices.DeleteFunc(records, func(r place.Record) bool {
			return r.DistanceMeters() > p.config.RadiusMeters
		})
		if dropped := before - len(records); dropped > 0 {
			p.logger.Debug("dropped places outside of search radius", slog.Int("dropped", dropped))
		}
	}
	SortByDistance(records)

	return Truncate(records, p.config.ResultLimit)
}

// Rank runs the full ranking on elements for origin and keeps at most limit records.
func Rank(elements []overpass.Element, origin geo.Coordinate, limit int) []place.Record {
	records := Parse(elements)
	Annotate(records, origin)
	SortByDistance(records)
	return Truncate(records, limit)
}

// Parse converts elements into records in response order. Elements without a name or without a
// usable coordinate are skipped.
func Parse(elements []overpass.Element) []place.Record {
	records := make([]place.Record, 0, len(elements))
	for _, el := range elements {
		name := el.Tag("name")
		if name == "" {
			continue
		}
		coords, ok := el.Coordinate()
		if !ok {
			continue
		}
		record, err := place.NewRecord(el.ID, name, place.ParseCategory(el.Tag("amenity")), coords)
		if err != nil {
			continue
		}
		records = append(records, record)
	}
	return records
}

// Annotate sets the distance to origin on every record.
func Annotate(records []place.Record, origin geo.Coordinate) {
	for i := range records {
		records[i].Annotate(origin)
	}
}

// SortByDistance sorts records by ascending distance. Records at equal distance keep their
// relative order.
func SortByDistance(records []place.Record) {
	slices.SortStableFunc(records, func(a, b place.Record) int {
		switch da, db := a.DistanceMeters(), b.DistanceMeters(); {
		case da < db:
			return -1
		case da > db:
			return 1
		default:
			return 0
		}
	})
}

// Truncate returns the first limit records. A non-positive limit yields an empty slice.
func Truncate(records []place.Record, limit int) []place.Record {
	if limit <= 0 {
		return records[:0]
	}
	if len(records) > limit {
		return records[:limit]
	}
	return records
}
