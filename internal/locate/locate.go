// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package locate resolves the approximate position of the caller.
package locate

import (
	"context"
	"errors"
	"strings"

	"github.com/wneessen/foodfinder/internal/geo"
)

// ErrLocationUnavailable is returned when the geolocation service failed or did not return a
// usable coordinate.
var ErrLocationUnavailable = errors.New("location unavailable")

// Location is a resolved position with optional place details reported by the service.
type Location struct {
	geo.Coordinate

	City    string
	Region  string
	Country string
}

// Place returns a human-readable "City, Region, Country" description of the known parts.
func (l Location) Place() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.City, l.Region, l.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Locator resolves the caller's approximate coordinates.
type Locator interface {
	Name() string
	Resolve(ctx context.Context) (Location, error)
}
