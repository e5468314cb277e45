package radar

import (
	"errors"
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"velox/internal/models"

	"github.com/PuerkitoBio/goquery"
)

// The page centers its map on a clicked entry through an inline
// onclick handler of the form "map.flyTo([47.05, 8.30], ...)".
var flyToRe = regexp.MustCompile(`map\.flyTo\(\[(.*?),(.*?)\]`)

// Parse extracts the camera set from the page markup. The list lives in
// div#radarList as one anchor per list item; the last item is a
// trailing non-data entry on the source page and is skipped. An entry
// whose onclick handler does not match the flyTo pattern is kept
// without coordinates rather than failing the whole parse.
func Parse(r io.Reader) (models.Snapshot, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse camera page: %v", err)
	}

	list := doc.Find("div#radarList")
	if list.Length() == 0 {
		return nil, errors.New("parse camera page: no element with id radarList")
	}

	items := list.Find("li")
	last := items.Length() - 1

	snap := make(models.Snapshot)
	items.Each(func(i int, li *goquery.Selection) {
		if i == last {
			return
		}
		a := li.Find("a").First()
		if a.Length() == 0 {
			return
		}
		name := strings.TrimSpace(a.Text())
		if name == "" {
			return
		}

		cam := models.Camera{Name: name}
		if onclick, ok := a.Attr("onclick"); ok {
			cam.Coordinates = parseFlyTo(onclick)
		}
		if cam.Coordinates == nil {
			log.Printf("Couldn't retrieve coordinates for %q, keeping entry without them", name)
		}
		snap[name] = cam
	})
	return snap, nil
}

func parseFlyTo(onclick string) *models.Coordinates {
	m := flyToRe.FindStringSubmatch(onclick)
	if m == nil {
		return nil
	}
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(m[1]), 64)
	lon, errLon := strconv.ParseFloat(strings.TrimSpace(m[2]), 64)
	if errLat != nil || errLon != nil {
		return nil
	}
	return &models.Coordinates{Lat: lat, Lon: lon}
}
