package diff

import (
	"reflect"
	"testing"

	"velox/internal/models"
)

func names(cams []models.Camera) []string {
	var out []string
	for _, c := range cams {
		out = append(out, c.Name)
	}
	return out
}

func TestCompute(t *testing.T) {
	rueA := models.Camera{Name: "Rue A", Coordinates: &models.Coordinates{Lat: 47.05, Lon: 8.30}}
	rueB := models.Camera{Name: "Rue B", Coordinates: &models.Coordinates{Lat: 47.02, Lon: 8.31}}

	tests := []struct {
		name        string
		prev        models.Snapshot
		cur         models.Snapshot
		wantAdded   []string
		wantRemoved []string
	}{
		{
			name:        "identical snapshots yield no changes",
			prev:        models.Snapshot{"Rue A": rueA, "Rue B": rueB},
			cur:         models.Snapshot{"Rue A": rueA, "Rue B": rueB},
			wantAdded:   nil,
			wantRemoved: nil,
		},
		{
			name:        "empty previous reports everything as added",
			prev:        models.Snapshot{},
			cur:         models.Snapshot{"Rue A": rueA},
			wantAdded:   []string{"Rue A"},
			wantRemoved: nil,
		},
		{
			name:        "empty current reports everything as removed",
			prev:        models.Snapshot{"Rue A": rueA},
			cur:         models.Snapshot{},
			wantAdded:   nil,
			wantRemoved: []string{"Rue A"},
		},
		{
			name:        "coordinate drift is not a change",
			prev:        models.Snapshot{"Rue A": rueA},
			cur:         models.Snapshot{"Rue A": {Name: "Rue A", Coordinates: &models.Coordinates{Lat: 47.06, Lon: 8.29}}},
			wantAdded:   nil,
			wantRemoved: nil,
		},
		{
			name:        "mixed additions and removals, sorted by name",
			prev:        models.Snapshot{"Rue A": rueA, "Rue C": {Name: "Rue C"}},
			cur:         models.Snapshot{"Rue A": rueA, "Rue D": {Name: "Rue D"}, "Rue B": rueB},
			wantAdded:   []string{"Rue B", "Rue D"},
			wantRemoved: []string{"Rue C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Compute(tt.prev, tt.cur)
			if got := names(d.Added); !reflect.DeepEqual(got, tt.wantAdded) {
				t.Errorf("Added = %v, want %v", got, tt.wantAdded)
			}
			if got := names(d.Removed); !reflect.DeepEqual(got, tt.wantRemoved) {
				t.Errorf("Removed = %v, want %v", got, tt.wantRemoved)
			}
		})
	}
}

func TestComputeSelfIsEmpty(t *testing.T) {
	snaps := []models.Snapshot{
		{},
		{"Rue A": {Name: "Rue A"}},
		{"Rue A": {Name: "Rue A"}, "Rue B": {Name: "Rue B", Coordinates: &models.Coordinates{Lat: 1, Lon: 2}}},
	}
	for _, snap := range snaps {
		if d := Compute(snap, snap); !d.Empty() {
			t.Errorf("Compute(s, s) = %+v, want empty diff", d)
		}
	}
}
