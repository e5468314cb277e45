// veloxcheck runs one update check without the bot. The outcome is
// printed to standard output instead of being broadcast, which makes it
// suitable for cron jobs and manual inspection.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"velox/internal/config"
	"velox/internal/radar"
	"velox/internal/store"
	"velox/internal/watch"
	"velox/pkg/graceful"
)

type printBroadcaster struct{}

func (printBroadcaster) Broadcast(msg string, noChange, forced bool) {
	fmt.Println(msg)
}

func main() {
	saveList := flag.Bool("save-list", false, "save the fetched list for the next comparison")
	printList := flag.Bool("print-list", false, "print the current list after the check")
	flag.Parse()

	config.LoadEnv()

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	fetcher := radar.NewClient()
	snapshots := store.NewSnapshotStore(config.DataDir())
	watcher := watch.New(fetcher, snapshots, printBroadcaster{})

	if _, err := watcher.Run(ctx, watch.Options{Persist: *saveList}); err != nil {
		log.Fatalf("Update check failed: %v", err)
	}

	if *printList {
		snap, err := fetcher.Fetch(ctx)
		if err != nil {
			log.Fatalf("Error fetching current list: %v", err)
		}
		fmt.Println("\nCurrent list:")
		for _, name := range snap.Names() {
			fmt.Printf("%s: %s\n", name, snap[name].MapURL(radar.ListURL))
		}
	}
}
