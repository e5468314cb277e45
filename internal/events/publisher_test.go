package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"velox/internal/models"

	"github.com/segmentio/kafka-go"
)

// mockWriter records published messages for unit testing.
type mockWriter struct {
	messages []kafka.Message
	writeErr error
	closed   bool
}

func (m *mockWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.messages = append(m.messages, msgs...)
	return nil
}

func (m *mockWriter) Close() error {
	m.closed = true
	return nil
}

func TestPublishChange(t *testing.T) {
	writer := &mockWriter{}
	p := &Publisher{writer: writer}

	d := models.Diff{
		Added:   []models.Camera{{Name: "Rue B", Coordinates: &models.Coordinates{Lat: 47.02, Lon: 8.31}}},
		Removed: []models.Camera{{Name: "Rue C"}},
	}
	if err := p.PublishChange(context.Background(), d); err != nil {
		t.Fatalf("PublishChange: %v", err)
	}

	if len(writer.messages) != 1 {
		t.Fatalf("wrote %d messages, want 1", len(writer.messages))
	}
	var event ChangeEvent
	if err := json.Unmarshal(writer.messages[0].Value, &event); err != nil {
		t.Fatalf("event payload is not valid JSON: %v", err)
	}
	if len(event.Added) != 1 || event.Added[0].Name != "Rue B" {
		t.Errorf("event Added = %+v, want Rue B", event.Added)
	}
	if len(event.Removed) != 1 || event.Removed[0].Name != "Rue C" {
		t.Errorf("event Removed = %+v, want Rue C", event.Removed)
	}
	if event.At.IsZero() {
		t.Error("event timestamp is zero")
	}
}

func TestPublishChangeWriteError(t *testing.T) {
	p := &Publisher{writer: &mockWriter{writeErr: errors.New("broker down")}}
	if err := p.PublishChange(context.Background(), models.Diff{}); err == nil {
		t.Fatal("expected the write error to propagate")
	}
}

func TestClose(t *testing.T) {
	writer := &mockWriter{}
	p := &Publisher{writer: writer}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !writer.closed {
		t.Error("underlying writer was not closed")
	}
}
