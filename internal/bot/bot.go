// Package bot wires the interactive Telegram commands to the watch
// pipeline and the subscriber registry.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"velox/internal/notify"
	"velox/internal/store"
	"velox/internal/watch"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot consumes Telegram updates and dispatches the bot commands.
type Bot struct {
	api     *tgbotapi.BotAPI
	fetcher watch.Fetcher
	subs    *store.SubscriberStore
	watcher *watch.Watcher
}

func New(api *tgbotapi.BotAPI, fetcher watch.Fetcher, subs *store.SubscriberStore, watcher *watch.Watcher) *Bot {
	return &Bot{api: api, fetcher: fetcher, subs: subs, watcher: watcher}
}

// NewSender returns a notify.Sender that delivers over the bot API
// with HTML rendering and link previews disabled.
func NewSender(api *tgbotapi.BotAPI) notify.Sender {
	return sender{api: api}
}

type sender struct {
	api *tgbotapi.BotAPI
}

func (s sender) Send(id, text string) error {
	chatID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return fmt.Errorf("bad chat id %q: %v", id, err)
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	_, err = s.api.Send(msg)
	return err
}

// Run consumes updates until ctx is canceled.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			b.handleCommand(ctx, update.Message)
		}
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		b.handleStart(chatID)

	case "current_list":
		b.handleCurrentList(ctx, chatID)

	case "manual_update":
		// Forced: the outcome is reported even when nothing changed.
		if _, err := b.watcher.Run(ctx, watch.Options{Persist: true, Forced: true}); err != nil {
			log.Printf("Manual update failed: %v", err)
		}

	case "notify_no_updates":
		b.handleTogglePreference(chatID)

	case "show_map":
		b.handleShowMap(ctx, chatID)
	}
}

func (b *Bot) handleStart(chatID int64) {
	added, err := b.subs.Add(strconv.FormatInt(chatID, 10))
	if err != nil {
		log.Printf("Error subscribing %d: %v", chatID, err)
		b.reply(chatID, "Something went wrong, please try again.")
		return
	}
	if added {
		b.reply(chatID, "You're subscribed to updates.")
	} else {
		b.reply(chatID, "Already subscribed.")
	}
}

func (b *Bot) handleCurrentList(ctx context.Context, chatID int64) {
	snap, err := b.fetcher.Fetch(ctx)
	if err != nil {
		log.Printf("Error fetching current list: %v", err)
		b.reply(chatID, "Failed to fetch the current list.")
		return
	}
	b.replyHTML(chatID, notify.FormatList(snap))
}

func (b *Bot) handleTogglePreference(chatID int64) {
	val, err := b.subs.TogglePreference(strconv.FormatInt(chatID, 10))
	if errors.Is(err, store.ErrUnknownSubscriber) {
		b.reply(chatID, "You're not subscribed yet. Send /start first.")
		return
	}
	if err != nil {
		log.Printf("Error toggling preference for %d: %v", chatID, err)
		b.reply(chatID, "Something went wrong, please try again.")
		return
	}
	if val {
		b.reply(chatID, "Enabled - get status updates even if no changes are detected")
	} else {
		b.reply(chatID, "Disabled - no status updates if no changes are detected")
	}
}

func (b *Bot) handleShowMap(ctx context.Context, chatID int64) {
	snap, err := b.fetcher.Fetch(ctx)
	if err != nil {
		log.Printf("Error fetching current list: %v", err)
		b.reply(chatID, "Failed to fetch the current list.")
		return
	}
	url := RouteURL(snap)
	if url == "" {
		b.reply(chatID, "No camera coordinates available right now.")
		return
	}
	b.reply(chatID, url)
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("Error replying to %d: %v", chatID, err)
	}
}

func (b *Bot) replyHTML(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error replying to %d: %v", chatID, err)
	}
}
