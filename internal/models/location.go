package models

import (
	"encoding/json"
	"fmt"
)

// Place is the structured form of a task location.
type Place struct {
	Name    *string  `json:"name"`
	Address *string  `json:"address"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
}

var placeKeys = map[string]struct{}{
	"name":    {},
	"address": {},
	"lat":     {},
	"lon":     {},
}

// Location is either a Place or an opaque record kept as-is, so that
// clients can store location shapes this service does not know about.
// Exactly one of Place and Raw is non-nil.
type Location struct {
	Place *Place
	Raw   map[string]any
}

func NewPlaceLocation(p Place) *Location {
	return &Location{Place: &p}
}

func NewRawLocation(raw map[string]any) *Location {
	return &Location{Raw: raw}
}

// LocationFromMap classifies a decoded record. Records whose keys are all
// Place fields with values of the right type become a Place.
func LocationFromMap(m map[string]any) *Location {
	if place, ok := placeFromMap(m); ok {
		return &Location{Place: place}
	}
	return &Location{Raw: m}
}

// Map flattens the location into a plain record. A Place always yields
// all four keys, with nil for the missing ones.
func (l *Location) Map() map[string]any {
	if l == nil {
		return nil
	}
	if l.Place == nil {
		return l.Raw
	}

	m := make(map[string]any, len(placeKeys))
	m["name"] = derefAny(l.Place.Name)
	m["address"] = derefAny(l.Place.Address)
	m["lat"] = derefAny(l.Place.Lat)
	m["lon"] = derefAny(l.Place.Lon)
	return m
}

func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Map())
}

func (l *Location) UnmarshalJSON(data []byte) error {
	var m map[string]any
	err := json.Unmarshal(data, &m)
	if err != nil {
		return fmt.Errorf("location must be an object: %w", err)
	}
	*l = *LocationFromMap(m)
	return nil
}

func placeFromMap(m map[string]any) (*Place, bool) {
	if len(m) == 0 {
		return nil, false
	}

	place := new(Place)
	for key, value := range m {
		if _, ok := placeKeys[key]; !ok {
			return nil, false
		}
		if value == nil {
			continue
		}

		switch key {
		case "name", "address":
			s, ok := value.(string)
			if !ok {
				return nil, false
			}
			if key == "name" {
				place.Name = &s
			} else {
				place.Address = &s
			}
		case "lat", "lon":
			f, ok := toFloat(value)
			if !ok {
				return nil, false
			}
			if key == "lat" {
				place.Lat = &f
			} else {
				place.Lon = &f
			}
		}
	}
	return place, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func derefAny[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
