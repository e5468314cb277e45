package bot

import (
	"strings"
	"testing"

	"velox/internal/models"
)

func TestRouteURL(t *testing.T) {
	tests := []struct {
		name string
		snap models.Snapshot
		want string
	}{
		{
			name: "stops in name order, centered on the reference point",
			snap: models.Snapshot{
				"Rue B": {Name: "Rue B", Coordinates: &models.Coordinates{Lat: 47.02, Lon: 8.31}},
				"Rue A": {Name: "Rue A", Coordinates: &models.Coordinates{Lat: 47.05, Lon: 8.3}},
			},
			want: "https://www.google.com/maps/dir/47.05,8.3/47.02,8.31/@47.0512228,8.3010048,12z",
		},
		{
			name: "cameras without coordinates are omitted from the route",
			snap: models.Snapshot{
				"Rue A": {Name: "Rue A", Coordinates: &models.Coordinates{Lat: 47.05, Lon: 8.3}},
				"Rue C": {Name: "Rue C"},
			},
			want: "https://www.google.com/maps/dir/47.05,8.3/@47.0512228,8.3010048,12z",
		},
		{
			name: "no coordinates at all yields no URL",
			snap: models.Snapshot{"Rue C": {Name: "Rue C"}},
			want: "",
		},
		{
			name: "empty snapshot yields no URL",
			snap: models.Snapshot{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RouteURL(tt.snap)
			if got != tt.want {
				t.Errorf("RouteURL = %q, want %q", got, tt.want)
			}
			if strings.Contains(got, "//,") || strings.Contains(got, "/,") {
				t.Errorf("malformed URL segment in %q", got)
			}
		})
	}
}
