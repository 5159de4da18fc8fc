package models

import (
	"errors"
	"fmt"
)

// Destination type tags. A destination is either a place the user marked on
// the visited map or a waypoint inside a route plan.
const (
	DestinationVisited = "visited"
	DestinationRoute   = "route"
)

// Destination is a tagged union over the visited/route variants, embedded in
// the user document. Visited is only present for the "visited" variant.
type Destination struct {
	ID      string  `bson:"id,omitempty" json:"id,omitempty"`
	Lat     float64 `bson:"lat" json:"lat"`
	Lon     float64 `bson:"lon" json:"lon"`
	Address string  `bson:"address" json:"address"`
	Country string  `bson:"country" json:"country"`
	Type    string  `bson:"type" json:"type"`
	Visited *bool   `bson:"visited,omitempty" json:"visited,omitempty"`
}

// Validate checks the shared base fields and dispatches on the type tag.
func (d *Destination) Validate() error {
	if d.Lat < 0 || d.Lon < 0 {
		return errors.New("lat and lon must be non-negative")
	}
	if d.Address == "" {
		return errors.New("address is required")
	}
	if d.Country == "" {
		return errors.New("country is required")
	}
	switch d.Type {
	case DestinationVisited:
		if d.Visited == nil {
			return errors.New("visited flag is required for visited destinations")
		}
		return nil
	case DestinationRoute:
		return nil
	default:
		return fmt.Errorf("type must be %q or %q", DestinationVisited, DestinationRoute)
	}
}
