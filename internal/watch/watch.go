// Package watch runs the fetch -> diff -> notify pipeline over the
// published camera list.
package watch

import (
	"context"
	"log"
	"sync"

	"velox/internal/diff"
	"velox/internal/models"
	"velox/internal/notify"
)

// Fetcher retrieves the current camera set from the source page.
type Fetcher interface {
	Fetch(ctx context.Context) (models.Snapshot, error)
}

// SnapshotStore persists the last observed camera set between runs.
type SnapshotStore interface {
	Load() models.Snapshot
	Save(models.Snapshot) error
}

// Broadcaster delivers one message to the subscribers.
type Broadcaster interface {
	Broadcast(msg string, noChange, forced bool)
}

// Archiver keeps a copy of each observed snapshot, e.g. in an object
// store.
type Archiver interface {
	ArchiveSnapshot(ctx context.Context, snap models.Snapshot) error
}

// EventPublisher emits an event after a run that found changes.
type EventPublisher interface {
	PublishChange(ctx context.Context, d models.Diff) error
}

// Options control a single pipeline run. Persistence and notification
// are independent policies: a run may notify without saving (headless
// check) or save without having found anything to report.
type Options struct {
	// Persist saves the fetched snapshot as the input for the next
	// comparison.
	Persist bool
	// Forced marks an on-demand run: a no-change outcome is delivered
	// to every subscriber regardless of preference.
	Forced bool
}

// Option configures optional Watcher collaborators.
type Option func(*Watcher)

// WithArchive stores every successfully fetched snapshot in a.
func WithArchive(a Archiver) Option {
	return func(w *Watcher) { w.archive = a }
}

// WithEvents publishes a change event to p whenever a run finds
// differences.
func WithEvents(p EventPublisher) Option {
	return func(w *Watcher) { w.events = p }
}

// Watcher coordinates one update check end to end. Runs are serialized:
// a scheduled tick and a concurrent manual update never interleave
// their read-diff-save sequence.
type Watcher struct {
	mu        sync.Mutex
	fetcher   Fetcher
	snapshots SnapshotStore
	notifier  Broadcaster
	archive   Archiver
	events    EventPublisher
}

func New(fetcher Fetcher, snapshots SnapshotStore, notifier Broadcaster, opts ...Option) *Watcher {
	w := &Watcher{fetcher: fetcher, snapshots: snapshots, notifier: notifier}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run executes one pipeline pass: fetch, diff against the stored
// snapshot, broadcast the outcome, then persist per opts. A fetch
// failure is broadcast to every subscriber and leaves the stored
// snapshot untouched; the next scheduled run is the retry mechanism.
// The broadcast message is returned so headless callers can print it.
func (w *Watcher) Run(ctx context.Context, opts Options) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	current, err := w.fetcher.Fetch(ctx)
	if err != nil {
		log.Printf("Update check failed: %v", err)
		w.notifier.Broadcast(notify.FetchFailureMessage, false, opts.Forced)
		return notify.FetchFailureMessage, err
	}

	previous := w.snapshots.Load()
	d := diff.Compute(previous, current)
	msg, noChange := notify.FormatDiff(d)
	w.notifier.Broadcast(msg, noChange, opts.Forced)

	if !d.Empty() && w.events != nil {
		if err := w.events.PublishChange(ctx, d); err != nil {
			log.Printf("Error publishing change event: %v", err)
		}
	}
	if w.archive != nil {
		if err := w.archive.ArchiveSnapshot(ctx, current); err != nil {
			log.Printf("Error archiving snapshot: %v", err)
		}
	}
	if opts.Persist {
		if err := w.snapshots.Save(current); err != nil {
			log.Printf("Error saving snapshot: %v", err)
			return msg, err
		}
	}
	return msg, nil
}
