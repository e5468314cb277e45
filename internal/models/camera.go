package models

import (
	"fmt"
	"sort"
)

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Camera is a single mobile speed-measurement site as published on the
// police page. Coordinates is nil when the site's inline map data could
// not be parsed for this entry.
type Camera struct {
	Name        string       `json:"name"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// MapURL returns a Google Maps search link for the camera. When the
// camera has no coordinates the given fallback URL is returned instead.
func (c Camera) MapURL(fallback string) string {
	if c.Coordinates == nil {
		return fallback
	}
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%v%%2C%v",
		c.Coordinates.Lat, c.Coordinates.Lon)
}

// Snapshot is one observation of the published camera set, keyed by
// camera name. Names are unique by construction.
type Snapshot map[string]Camera

// Names returns the camera names in sorted order, for deterministic
// message formatting.
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Diff holds the cameras added and removed between two snapshots.
type Diff struct {
	Added   []Camera
	Removed []Camera
}

// Empty reports whether the diff contains no changes.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}
