package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// ErrUnknownSubscriber is returned when a preference operation names an
// id that was never subscribed. Callers must subscribe an id before
// touching its preferences.
var ErrUnknownSubscriber = errors.New("unknown subscriber")

// Subscriber holds the per-recipient notification preferences. The
// JSON field name matches the registry files written by earlier
// deployments.
type Subscriber struct {
	NotifyNoChange bool `json:"notify_for_no_updates"`
}

// Registry maps an opaque recipient id to its subscriber record.
type Registry map[string]Subscriber

// SubscriberStore persists the notification recipients. The registry is
// rewritten as a whole on every mutation.
type SubscriberStore struct {
	mu   sync.Mutex
	path string
}

func NewSubscriberStore(dir string) *SubscriberStore {
	return &SubscriberStore{path: filepath.Join(dir, "chat_ids.json")}
}

// Load returns the stored registry. A missing or corrupt file yields an
// empty registry, never an error.
func (s *SubscriberStore) Load() Registry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *SubscriberStore) load() Registry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error reading registry file %s: %v, starting empty", s.path, err)
		}
		return Registry{}
	}
	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		log.Printf("Registry file %s is corrupt, starting empty", s.path)
		return Registry{}
	}
	return reg
}

func (s *SubscriberStore) save(reg Registry) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal registry: %v", err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("write registry file: %v", err)
	}
	return nil
}

// Add registers id with default preferences. It reports whether the id
// was newly added; re-adding an existing id is a no-op.
func (s *SubscriberStore) Add(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg := s.load()
	if _, ok := reg[id]; ok {
		return false, nil
	}
	log.Printf("New subscriber %s", id)
	reg[id] = Subscriber{}
	if err := s.save(reg); err != nil {
		return false, err
	}
	return true, nil
}

// Preference reports whether id opted in to no-change notifications.
// Unknown ids report false.
func (s *SubscriberStore) Preference(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()[id].NotifyNoChange
}

// TogglePreference flips the no-change preference for id, persists the
// registry and returns the new value. Toggling an id that was never
// subscribed returns ErrUnknownSubscriber.
func (s *SubscriberStore) TogglePreference(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg := s.load()
	sub, ok := reg[id]
	if !ok {
		return false, fmt.Errorf("toggle preference for %s: %w", id, ErrUnknownSubscriber)
	}
	sub.NotifyNoChange = !sub.NotifyNoChange
	reg[id] = sub
	if err := s.save(reg); err != nil {
		return false, err
	}
	return sub.NotifyNoChange, nil
}
