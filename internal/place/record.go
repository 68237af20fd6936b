// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package place holds the point of interest record produced by the ranking pipeline.
package place

import (
	"errors"
	"fmt"

	"github.com/wneessen/foodfinder/internal/geo"
	"github.com/wneessen/foodfinder/internal/vartype"
)

var (
	ErrEmptyName       = errors.New("place name must not be empty")
	ErrInvalidLocation = errors.New("place location is invalid")
)

// Record is a named, geolocated food place. The distance is unset until Annotate is called.
type Record struct {
	ID       int64
	Name     string
	Category Category
	Location geo.Coordinate

	distance vartype.VarFloat64
}

// NewRecord returns a Record for the given values. It fails if the name is empty or the
// location is invalid.
func NewRecord(id int64, name string, category Category, location geo.Coordinate) (Record, error) {
	if name == "" {
		return Record{}, ErrEmptyName
	}
	if !location.Valid() {
		return Record{}, fmt.Errorf("%w: %s", ErrInvalidLocation, location)
	}
	return Record{
		ID:       id,
		Name:     name,
		Category: category,
		Location: location,
	}, nil
}

// Annotate computes the great-circle distance from origin to the record. The distance is only
// computed once, later calls keep the first value.
func (r *Record) Annotate(origin geo.Coordinate) {
	if r.distance.IsSet() {
		return
	}
	r.distance.SetOnce(geo.HaversineMeters(origin, r.Location))
}

// Distance returns the annotated distance in meters and whether it has been set.
func (r Record) Distance() (float64, bool) {
	return r.distance.Value(), r.distance.IsSet()
}

// DistanceMeters returns the annotated distance in meters or 0 if it has not been set.
func (r Record) DistanceMeters() float64 {
	return r.distance.Value()
}

func (r Record) String() string {
	return fmt.Sprintf("%s (%s) at %s, distance: %s m", r.Name, r.Category, r.Location, r.distance)
}
