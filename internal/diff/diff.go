// Package diff compares two camera snapshots by name.
package diff

import (
	"sort"

	"velox/internal/models"
)

// Compute returns the cameras present in cur but missing from prev
// (Added) and present in prev but missing from cur (Removed). The
// comparison key is the camera name; coordinate drift between two
// observations of the same name is not a change. Both result slices
// are sorted by name.
func Compute(prev, cur models.Snapshot) models.Diff {
	var d models.Diff
	for name, cam := range cur {
		if _, ok := prev[name]; !ok {
			d.Added = append(d.Added, cam)
		}
	}
	for name, cam := range prev {
		if _, ok := cur[name]; !ok {
			d.Removed = append(d.Removed, cam)
		}
	}
	sort.Slice(d.Added, func(i, j int) bool { return d.Added[i].Name < d.Added[j].Name })
	sort.Slice(d.Removed, func(i, j int) bool { return d.Removed[i].Name < d.Removed[j].Name })
	return d
}
