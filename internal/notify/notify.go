// Package notify formats update-check outcomes and broadcasts them to
// the subscriber registry.
package notify

import (
	"log"

	"velox/internal/store"
)

// Sender delivers one text message to one recipient over the messaging
// transport. Implementations render HTML links and disable link
// previews.
type Sender interface {
	Send(id, text string) error
}

// RegistrySource yields the current subscriber registry.
type RegistrySource interface {
	Load() store.Registry
}

// Notifier broadcasts messages to every registered subscriber.
type Notifier struct {
	sender Sender
	subs   RegistrySource
}

func New(sender Sender, subs RegistrySource) *Notifier {
	return &Notifier{sender: sender, subs: subs}
}

// Broadcast delivers msg to all subscribers. When noChange is true and
// forced is false, recipients that did not opt in to no-change
// notifications are skipped. Each recipient is independent: a delivery
// failure is logged and does not stop the remaining deliveries.
func (n *Notifier) Broadcast(msg string, noChange, forced bool) {
	reg := n.subs.Load()
	if len(reg) == 0 {
		return
	}
	for id, sub := range reg {
		if noChange && !forced && !sub.NotifyNoChange {
			continue
		}
		if err := n.sender.Send(id, msg); err != nil {
			log.Printf("Error sending message to %s: %v", id, err)
		}
	}
}
