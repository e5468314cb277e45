package radar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientFetch(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr bool
		wantLen int
	}{
		{
			name: "successful fetch and parse",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(samplePage))
			},
			wantLen: 3,
		},
		{
			name: "non-200 status is a fetch failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "maintenance", http.StatusServiceUnavailable)
			},
			wantErr: true,
		},
		{
			name: "200 without the container is a fetch failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html><body>nothing here</body></html>"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewClientFor(srv.URL, srv.Client())
			snap, err := c.Fetch(context.Background())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch: %v", err)
			}
			if len(snap) != tt.wantLen {
				t.Errorf("got %d cameras, want %d", len(snap), tt.wantLen)
			}
		})
	}
}
