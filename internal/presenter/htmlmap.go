// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"html/template"
	"io"
	"os"

	"github.com/vorlif/spreak"

	"github.com/wneessen/foodfinder/internal/locate"
	"github.com/wneessen/foodfinder/internal/place"
)

const (
	// DefaultMapFile is the file the interactive map is written to.
	DefaultMapFile = "interactive_map.html"
	mapZoom        = 15
)

const mapTpl = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<link rel="stylesheet" href="https://unpkg.com/leaflet.markercluster@1.5.3/dist/MarkerCluster.css">
<link rel="stylesheet" href="https://unpkg.com/leaflet.markercluster@1.5.3/dist/MarkerCluster.Default.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<script src="https://unpkg.com/leaflet.markercluster@1.5.3/dist/leaflet.markercluster.js"></script>
<style>html, body, #map { height: 100%; width: 100%; margin: 0; padding: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
var origin = {{.Origin}};
var places = {{.Places}};
var map = L.map('map').setView([origin.lat, origin.lon], {{.Zoom}});
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
  maxZoom: 19,
  attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
L.circleMarker([origin.lat, origin.lon], {radius: 6, color: 'blue', fill: true, fillOpacity: 0.7})
  .bindPopup(origin.popup).addTo(map);
var cluster = L.markerClusterGroup();
places.forEach(function (p) {
  L.marker([p.lat, p.lon]).bindPopup(p.popup, {maxWidth: 250}).addTo(cluster);
});
map.addLayer(cluster);
</script>
</body>
</html>
`

// MapMarker is a single marker of the interactive map. Popup holds escaped HTML.
type MapMarker struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Popup string  `json:"popup"`
}

// MapData is the template context of the interactive map document.
type MapData struct {
	Title  string
	Zoom   int
	Origin MapMarker
	Places []MapMarker
}

// Map writes the ranked places into an interactive HTML map and opens it.
type Map struct {
	artifact
	tpl *template.Template
}

// NewMap returns a Map sink writing to path. A nil opener only writes the document.
func NewMap(path string, out io.Writer, loc *spreak.Localizer, opener Opener) (*Map, error) {
	tpl, err := template.New("map").Parse(mapTpl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map template: %w", err)
	}
	if path == "" {
		path = DefaultMapFile
	}
	return &Map{
		artifact: artifact{path: path, out: out, localizer: loc, opener: opener},
		tpl:      tpl,
	}, nil
}

func (m *Map) Present(_ context.Context, records []place.Record, origin locate.Location) error {
	buf := bytes.NewBuffer(nil)
	if err := m.tpl.Execute(buf, m.mapData(records, origin)); err != nil {
		return fmt.Errorf("failed to render map template: %w", err)
	}
	if err := os.WriteFile(m.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write map file: %w", err)
	}
	return m.publish("Interactive map saved to %s")
}

func (m *Map) mapData(records []place.Record, origin locate.Location) MapData {
	data := MapData{
		Title: m.localizer.Get("Food places nearby"),
		Zoom:  mapZoom,
		Origin: MapMarker{
			Lat:   origin.Lat,
			Lon:   origin.Lon,
			Popup: html.EscapeString(m.localizer.Get("You are here")),
		},
		Places: make([]MapMarker, 0, len(records)),
	}
	for _, r := range records {
		data.Places = append(data.Places, MapMarker{
			Lat:   r.Location.Lat,
			Lon:   r.Location.Lon,
			Popup: m.popup(r),
		})
	}
	return data
}

func (m *Map) popup(r place.Record) string {
	return fmt.Sprintf("<b>%s</b><br>%s: %s<br>%s: %s m",
		html.EscapeString(r.Name),
		html.EscapeString(m.localizer.Get("Type")), html.EscapeString(r.Category.String()),
		html.EscapeString(m.localizer.Get("Distance")), floatFormat(r.DistanceMeters(), 1))
}
