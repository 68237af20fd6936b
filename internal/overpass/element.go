// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package overpass

import (
	"encoding/json"
	"strconv"

	"github.com/wneessen/foodfinder/internal/geo"
)

// Element is a single raw element of the Overpass response. Lat and Lon are kept undecoded so
// that a missing or malformed coordinate only invalidates this element instead of the whole
// response.
type Element struct {
	Type string            `json:"type"`
	ID   int64             `json:"id"`
	Lat  json.RawMessage   `json:"lat,omitempty"`
	Lon  json.RawMessage   `json:"lon,omitempty"`
	Tags map[string]string `json:"tags,omitempty"`
}

// NewNode returns a node element with the given coordinate and tags.
func NewNode(id int64, lat, lon float64, tags map[string]string) Element {
	return Element{
		Type: "node",
		ID:   id,
		Lat:  json.RawMessage(formatFloat(lat)),
		Lon:  json.RawMessage(formatFloat(lon)),
		Tags: tags,
	}
}

// Tag returns the value of the given tag or an empty string.
func (e Element) Tag(key string) string {
	return e.Tags[key]
}

// Coordinate returns the coordinate of the element. The second return value is false if lat or
// lon is missing, not a number or out of range.
func (e Element) Coordinate() (geo.Coordinate, bool) {
	lat, ok := parseNumber(e.Lat)
	if !ok {
		return geo.Coordinate{}, false
	}
	lon, ok := parseNumber(e.Lon)
	if !ok {
		return geo.Coordinate{}, false
	}
	coords := geo.Coordinate{Lat: lat, Lon: lon}
	return coords, coords.Valid()
}

func parseNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}
	val, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return 0, false
	}
	return val, true
}
