// Package radar fetches and parses the police page listing the current
// mobile speed-measurement sites.
package radar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"velox/internal/models"
)

// ListURL is the page publishing the current mobile speed measurements
// for the canton of Lucerne.
const ListURL = "https://polizei.lu.ch/organisation/sicherheit_verkehrspolizei/verkehrspolizei/spezialversorgung/verkehrssicherheit/Aktuelle_Tempomessungen"

type Client struct {
	httpClient *http.Client
	url        string
	userAgent  string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		url:        ListURL,
		userAgent:  "velox-watch/1.0",
	}
}

// NewClientFor returns a client that fetches from url using hc. Used by
// tests to point the client at a stub server.
func NewClientFor(url string, hc *http.Client) *Client {
	c := NewClient()
	c.url = url
	if hc != nil {
		c.httpClient = hc
	}
	return c
}

// Fetch retrieves and parses the current camera list. A transport
// error, a non-200 response or a page without the expected container
// all yield an error; callers treat that as "no result this tick"
// rather than a fatal condition.
func (c *Client) Fetch(ctx context.Context) (models.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %v", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch camera list: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch camera list: unexpected status %s", resp.Status)
	}
	return Parse(resp.Body)
}
