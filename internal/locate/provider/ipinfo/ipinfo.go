// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package ipinfo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wneessen/foodfinder/internal/geo"
	"github.com/wneessen/foodfinder/internal/http"
	"github.com/wneessen/foodfinder/internal/locate"
)

const (
	APIEndpoint   = "https://ipinfo.io/json"
	LookupTimeout = time.Second * 5
	name          = "ipinfo"
)

var errNoLocation = errors.New("no location in API response")

type Provider struct {
	http     *http.Client
	endpoint string
}

type APIResult struct {
	IP       string    `json:"ip"`
	City     string    `json:"city,omitempty"`
	Region   string    `json:"region,omitempty"`
	Country  string    `json:"country,omitempty"`
	Loc      string    `json:"loc,omitempty"`
	Postal   string    `json:"postal,omitempty"`
	Timezone string    `json:"timezone,omitempty"`
	Bogon    bool      `json:"bogon,omitempty"`
	Error    *APIError `json:"error,omitempty"`
}

type APIError struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// New returns an ipinfo provider. An empty endpoint selects the public API.
func New(client *http.Client, endpoint string) *Provider {
	if endpoint == "" {
		endpoint = APIEndpoint
	}
	return &Provider{
		http:     client,
		endpoint: endpoint,
	}
}

func (p *Provider) Name() string {
	return name
}

// Resolve looks up the location of the caller's public IP address. Every failure is reported
// as locate.ErrLocationUnavailable.
func (p *Provider) Resolve(ctx context.Context) (locate.Location, error) {
	result := new(APIResult)
	if _, err := p.http.GetWithTimeout(ctx, p.endpoint, result, nil, nil, LookupTimeout); err != nil {
		return locate.Location{}, fmt.Errorf("%w: failed to get geolocation data from API: %w",
			locate.ErrLocationUnavailable, err)
	}
	if result.Error != nil {
		return locate.Location{}, fmt.Errorf("%w: API reported an error: %s: %s",
			locate.ErrLocationUnavailable, result.Error.Title, result.Error.Message)
	}
	if result.Bogon {
		return locate.Location{}, fmt.Errorf("%w: IP address %s is not publicly routable",
			locate.ErrLocationUnavailable, result.IP)
	}

	coords, err := parseLoc(result.Loc)
	if err != nil {
		return locate.Location{}, fmt.Errorf("%w: %w", locate.ErrLocationUnavailable, err)
	}

	return locate.Location{
		Coordinate: coords,
		City:       result.City,
		Region:     result.Region,
		Country:    result.Country,
	}, nil
}

// parseLoc parses the "lat,lon" location string of the API.
func parseLoc(loc string) (geo.Coordinate, error) {
	if loc == "" {
		return geo.Coordinate{}, errNoLocation
	}
	latStr, lonStr, ok := strings.Cut(loc, ",")
	if !ok {
		return geo.Coordinate{}, fmt.Errorf("malformed location %q", loc)
	}

	var coords geo.Coordinate
	var err error
	coords.Lat, err = strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("failed to parse latitude from API response: %w", err)
	}
	coords.Lon, err = strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("failed to parse longitude from API response: %w", err)
	}
	if !coords.Valid() {
		return geo.Coordinate{}, fmt.Errorf("location %q is out of range", loc)
	}

	return coords, nil
}
