package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"velox/internal/models"
)

const snapshotVersion = 1

// snapshotFile is the on-disk envelope for the last observed camera
// set. Earlier deployments stored a bare JSON array of camera names;
// Load still accepts that form and upgrades it to coordinate-less
// entries.
type snapshotFile struct {
	Version int             `json:"version"`
	Cameras models.Snapshot `json:"cameras"`
}

// SnapshotStore persists the most recently observed snapshot. The
// persisted copy is the sole input to the next comparison.
type SnapshotStore struct {
	mu   sync.Mutex
	path string
}

func NewSnapshotStore(dir string) *SnapshotStore {
	return &SnapshotStore{path: filepath.Join(dir, "previous_list.json")}
}

// Load returns the stored snapshot. A missing, unreadable or corrupt
// file is equivalent to a first run and yields an empty snapshot, never
// an error.
func (s *SnapshotStore) Load() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error reading snapshot file %s: %v, starting empty", s.path, err)
		}
		return models.Snapshot{}
	}

	var file snapshotFile
	if err := json.Unmarshal(data, &file); err == nil && file.Cameras != nil {
		return file.Cameras
	}

	// Legacy format: a plain list of camera names.
	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		snap := make(models.Snapshot, len(names))
		for _, name := range names {
			snap[name] = models.Camera{Name: name}
		}
		return snap
	}

	log.Printf("Snapshot file %s is corrupt, starting empty", s.path)
	return models.Snapshot{}
}

// Save overwrites the stored snapshot with snap.
func (s *SnapshotStore) Save(snap models.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(snapshotFile{Version: snapshotVersion, Cameras: snap}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %v", err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("write snapshot file: %v", err)
	}
	return nil
}
