// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/twpayne/go-kml"
	"github.com/vorlif/spreak"

	"github.com/wneessen/foodfinder/internal/locate"
	"github.com/wneessen/foodfinder/internal/place"
)

// DefaultKMLFile is the file the KML document is written to.
const DefaultKMLFile = "food_places.kml"

// KML writes the ranked places into a KML document, one folder per category, and opens it.
type KML struct {
	artifact
}

// NewKML returns a KML sink writing to path. A nil opener only writes the document.
func NewKML(path string, out io.Writer, loc *spreak.Localizer, opener Opener) *KML {
	if path == "" {
		path = DefaultKMLFile
	}
	return &KML{artifact{path: path, out: out, localizer: loc, opener: opener}}
}

func (k *KML) Present(_ context.Context, records []place.Record, origin locate.Location) error {
	file, err := os.Create(k.path)
	if err != nil {
		return fmt.Errorf("failed to create KML file: %w", err)
	}
	if err = k.Document(records, origin).WriteIndent(file, "", "  "); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write KML document: %w", err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close KML file: %w", err)
	}
	return k.publish("KML document saved to %s")
}

// Document builds the KML document for the ranked records. Placemarks keep the ranking order
// within their category folder.
func (k *KML) Document(records []place.Record, origin locate.Location) *kml.CompoundElement {
	doc := kml.Document(
		kml.Name(k.localizer.Get("Food places nearby")),
		kml.Placemark(
			kml.Name(k.localizer.Get("You are here")),
			kml.Point(kml.Coordinates(kml.Coordinate{Lon: origin.Lon, Lat: origin.Lat})),
		),
	)

	folders := make(map[place.Category]*kml.CompoundElement)
	for i, r := range records {
		folder, ok := folders[r.Category]
		if !ok {
			folder = kml.Folder(kml.Name(r.Category.String()))
			folders[r.Category] = folder
		}
		folder.Add(kml.Placemark(
			kml.Name(fmt.Sprintf("%d. %s", i+1, r.Name)),
			kml.Description(fmt.Sprintf("%s: %s, %s: %s m", k.localizer.Get("Type"), r.Category,
				k.localizer.Get("Distance"), floatFormat(r.DistanceMeters(), 1))),
			kml.Point(kml.Coordinates(kml.Coordinate{Lon: r.Location.Lon, Lat: r.Location.Lat})),
		))
	}
	for _, c := range place.Categories {
		if folder, ok := folders[c]; ok {
			doc.Add(folder)
		}
	}

	return kml.KML(doc)
}
