// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kkyr/fig"

	"github.com/wneessen/foodfinder/internal/ranking"
)

const (
	configEnv = "FOODFINDER"

	OutputModeList = "list"
	OutputModeMap  = "map"
	OutputModeKML  = "kml"
)

// Config represents the application's configuration structure.
type Config struct {
	Locale   string     `fig:"locale"`
	LogLevel slog.Level `fig:"loglevel" default:"0"`

	Search struct {
		// Search radius in meters, must be greater than zero
		Radius float64 `fig:"radius"`
		// Maximum number of places shown, must be greater than zero
		Limit         int  `fig:"limit"`
		EnforceRadius bool `fig:"enforce_radius"`
	} `fig:"search"`

	Output struct {
		// Allowed values: list, map, kml
		Mode     string `fig:"mode" default:"list"`
		MapFile  string `fig:"map_file" default:"interactive_map.html"`
		KMLFile  string `fig:"kml_file" default:"food_places.kml"`
		NoViewer bool   `fig:"no_viewer"`
	} `fig:"output"`

	Endpoints struct {
		GeoIP    string `fig:"geoip" default:"https://ipinfo.io/json"`
		Overpass string `fig:"overpass" default:"https://overpass-api.de/api/interpreter"`
	} `fig:"endpoints"`
}

func NewFromFile(path, file string) (*Config, error) {
	conf := newWithSearchDefaults()
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read Config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func New() (*Config, error) {
	conf := newWithSearchDefaults()
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

// newWithSearchDefaults seeds the search settings before loading, so that an explicit zero from
// the file or the environment is kept and rejected by Validate.
func newWithSearchDefaults() *Config {
	conf := new(Config)
	conf.Search.Radius = ranking.DefaultRadiusMeters
	conf.Search.Limit = ranking.DefaultResultLimit
	return conf
}

func (c *Config) Validate() error {
	if c.Locale == "" {
		c.Locale = getLocale()
	}
	if err := c.SearchConfig().Validate(); err != nil {
		return fmt.Errorf("invalid search settings: %w", err)
	}
	switch c.Output.Mode {
	case OutputModeList, OutputModeMap, OutputModeKML:
	default:
		return fmt.Errorf("invalid output mode: %s", c.Output.Mode)
	}
	if c.Endpoints.GeoIP == "" || c.Endpoints.Overpass == "" {
		return fmt.Errorf("API endpoints must not be empty")
	}

	return nil
}

// SearchConfig returns the search settings as immutable ranking configuration.
func (c *Config) SearchConfig() ranking.Config {
	return ranking.Config{
		RadiusMeters:  c.Search.Radius,
		ResultLimit:   c.Search.Limit,
		EnforceRadius: c.Search.EnforceRadius,
	}
}

func getLocale() string {
	locale := os.Getenv("LC_MESSAGES")
	if idx := strings.Index(locale, "."); idx != -1 {
		lang := locale[:idx]
		return strings.ReplaceAll(lang, "_", "-")
	}
	return locale
}
