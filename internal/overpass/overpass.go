// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package overpass queries the OpenStreetMap Overpass API for food amenities around a coordinate.
package overpass

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/wneessen/foodfinder/internal/geo"
	"github.com/wneessen/foodfinder/internal/http"
	"github.com/wneessen/foodfinder/internal/logger"
)

const (
	APIEndpoint = "https://overpass-api.de/api/interpreter"
	// QueryTimeout matches the [timeout:25] hint of the query itself.
	QueryTimeout = time.Second * 25
	// Amenities is the regular expression of amenity values the query selects.
	Amenities = "restaurant|cafe|fast_food|bar"
)

var (
	// ErrTransport is returned when the API could not be reached or answered with a non-success
	// status.
	ErrTransport = errors.New("overpass query transport error")
	// ErrParse is returned when the response body is not valid JSON or lacks the elements array.
	ErrParse = errors.New("overpass query parse error")
)

type Client struct {
	http     *http.Client
	logger   *logger.Logger
	endpoint string
}

type response struct {
	Version   float64   `json:"version"`
	Generator string    `json:"generator"`
	Remark    string    `json:"remark,omitempty"`
	Elements  []Element `json:"elements"`
}

// New returns an Overpass client. An empty endpoint selects the public overpass-api.de instance.
func New(client *http.Client, log *logger.Logger, endpoint string) *Client {
	if endpoint == "" {
		endpoint = APIEndpoint
	}
	return &Client{
		http:     client,
		logger:   log,
		endpoint: endpoint,
	}
}

// BuildQuery renders the Overpass QL query selecting all food amenity nodes within radius meters
// of center.
func BuildQuery(center geo.Coordinate, radius float64) string {
	var sb strings.Builder
	sb.WriteString("[out:json][timeout:")
	sb.WriteString(strconv.Itoa(int(QueryTimeout.Seconds())))
	sb.WriteString("];\n(\n")
	sb.WriteString(`  node["amenity"~"` + Amenities + `"](around:`)
	sb.WriteString(formatFloat(radius) + "," + formatFloat(center.Lat) + "," + formatFloat(center.Lon))
	sb.WriteString(");\n);\nout body;")
	return sb.String()
}

// Query issues a single request for the food amenities within radius meters of center and
// returns the raw elements in response order.
func (c *Client) Query(ctx context.Context, center geo.Coordinate, radius float64) ([]Element, error) {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, fmt.Errorf("search radius must be positive and finite, got %s", formatFloat(radius))
	}
	if !center.Valid() {
		return nil, fmt.Errorf("invalid search center: %s", center)
	}

	query := BuildQuery(center, radius)
	c.logger.Debug("querying Overpass API", slog.String("endpoint", c.endpoint), slog.String("query", query))

	form := url.Values{}
	form.Set("data", query)
	headers := map[string]string{"Content-Type": "application/x-www-form-urlencoded"}

	result := new(response)
	_, err := c.http.PostWithTimeout(ctx, c.endpoint, result, strings.NewReader(form.Encode()), headers,
		QueryTimeout)
	if err != nil {
		if errors.Is(err, http.ErrDecodeJSON) {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if result.Elements == nil {
		return nil, fmt.Errorf("%w: response has no elements array", ErrParse)
	}
	if result.Remark != "" {
		c.logger.Warn("Overpass API returned a remark, results might be incomplete",
			slog.String("remark", result.Remark))
	}
	c.logger.Debug("received Overpass elements", slog.Int("count", len(result.Elements)))

	return result.Elements, nil
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}
