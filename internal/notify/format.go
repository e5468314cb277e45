package notify

import (
	"fmt"
	"html"
	"strings"

	"velox/internal/models"
	"velox/internal/radar"
)

// FetchFailureMessage is broadcast when the source page could not be
// fetched. It bypasses the no-change preference: a failed fetch is an
// error outcome, not a quiet one.
const FetchFailureMessage = "Failed to fetch updates."

// Cameras without coordinates link back to the source page instead of a
// map lookup.
func cameraLine(cam models.Camera) string {
	return fmt.Sprintf("- <a href='%s'>%s</a>\n", cam.MapURL(radar.ListURL), html.EscapeString(cam.Name))
}

// FormatDiff renders the outcome of an update check as an HTML message:
// a header, then an Added and/or Removed section with one map link per
// camera, or a single no-changes line when the diff is empty. noChange
// reports the latter case so the broadcast can honor preferences.
func FormatDiff(d models.Diff) (msg string, noChange bool) {
	var b strings.Builder
	b.WriteString("Checking for updates\n\n")
	if len(d.Added) > 0 {
		b.WriteString("Added:\n")
		for _, cam := range d.Added {
			b.WriteString(cameraLine(cam))
		}
	}
	if len(d.Removed) > 0 {
		b.WriteString("Removed:\n")
		for _, cam := range d.Removed {
			b.WriteString(cameraLine(cam))
		}
	}
	if d.Empty() {
		b.WriteString("No changes detected.")
		return b.String(), true
	}
	return b.String(), false
}

// FormatList renders the full current camera list, one map link per
// camera in name order.
func FormatList(snap models.Snapshot) string {
	var b strings.Builder
	b.WriteString("Current List\n\n")
	for _, name := range snap.Names() {
		b.WriteString(cameraLine(snap[name]))
	}
	return b.String()
}
