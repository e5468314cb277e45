package keys

import "time"

// Snapshot returns the canonical object key for a camera snapshot
// observed at t.
func Snapshot(t time.Time) string {
	return t.UTC().Format("snapshots/2006/01/02/150405.json")
}
