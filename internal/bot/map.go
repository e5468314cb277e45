package bot

import (
	"fmt"
	"strings"

	"velox/internal/models"
)

// The /show_map view is centered on Lucerne.
const (
	mapCenterLat = 47.0512228
	mapCenterLon = 8.3010048
)

// RouteURL builds a single Google Maps directions URL visiting every
// camera in snap, in name order. Cameras without coordinates cannot be
// placed on the route and are omitted. Returns "" when no camera has
// coordinates.
func RouteURL(snap models.Snapshot) string {
	var b strings.Builder
	b.WriteString("https://www.google.com/maps/dir")

	stops := 0
	for _, name := range snap.Names() {
		cam := snap[name]
		if cam.Coordinates == nil {
			continue
		}
		fmt.Fprintf(&b, "/%v,%v", cam.Coordinates.Lat, cam.Coordinates.Lon)
		stops++
	}
	if stops == 0 {
		return ""
	}
	fmt.Fprintf(&b, "/@%v,%v,12z", mapCenterLat, mapCenterLon)
	return b.String()
}
