// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package listener

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/slack-go/slack"

	"github.com/danielhkuo/lunchbot/composer"
)

const (
	// PollInterval is the pause after a read that returned nothing
	PollInterval = time.Second

	EventTypeMessage = "message"

	unknownReply = "don't know what to say about that..."
)

// Event is one record read from the workspace feed
type Event struct {
	Type    string
	Text    string
	Channel string
	User    string
}

type Feed interface {
	Read(ctx context.Context) ([]Event, error)
}

type Sender interface {
	PostText(ctx context.Context, channelID, text string) error
	PostBlocks(ctx context.Context, channelID string, blocks []slack.Block) error
}

// Kind is what an addressed message asks for
type Kind int

const (
	KindUnknown Kind = iota
	KindPoll
	KindSuggestion
)

func (k Kind) String() string {
	switch k {
	case KindPoll:
		return "poll"
	case KindSuggestion:
		return "suggestion"
	default:
		return "unknown"
	}
}

var suggestionKeywords = []string{"lunch", "eat", "hungry"}

// Classify maps message text to a Kind. "lunch poll" wins over the
// suggestion keywords. Matching is case-sensitive.
func Classify(text string) Kind {
	if strings.Contains(text, "lunch poll") {
		return KindPoll
	}
	for _, kw := range suggestionKeywords {
		if strings.Contains(text, kw) {
			return KindSuggestion
		}
	}
	return KindUnknown
}

// Listener reads the feed and answers messages that mention the bot
type Listener struct {
	feed     Feed
	sender   Sender
	menu     composer.Menu
	mention  string
	interval time.Duration
	pick     func(n int) int
}

func New(feed Feed, sender Sender, menu composer.Menu, botUserID string) *Listener {
	return &Listener{
		feed:     feed,
		sender:   sender,
		menu:     menu,
		mention:  "<@" + botUserID + ">",
		interval: PollInterval,
		pick:     rand.IntN,
	}
}

// Addressed reports whether the event is a message mentioning the bot
func (l *Listener) Addressed(ev Event) bool {
	return ev.Type == EventTypeMessage && ev.Text != "" && strings.Contains(ev.Text, l.mention)
}

// Run polls the feed until ctx is cancelled or the feed fails. Failures to
// answer a single message are logged and skipped.
func (l *Listener) Run(ctx context.Context) error {
	slog.Info("Listener started", "mention", l.mention, "interval", l.interval)

	for {
		events, err := l.feed.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to read feed: %w", err)
		}

		for _, ev := range events {
			if !l.Addressed(ev) {
				continue
			}
			if err := l.Handle(ctx, ev); err != nil {
				slog.Error("Failed to answer message", "channel", ev.Channel, "user", ev.User, "error", err)
			}
		}

		if len(events) > 0 {
			continue
		}

		select {
		case <-ctx.Done():
			slog.Info("Listener stopped")
			return nil
		case <-time.After(l.interval):
		}
	}
}

// Handle answers one addressed message
func (l *Listener) Handle(ctx context.Context, ev Event) error {
	kind := Classify(ev.Text)
	slog.Debug("Answering message", "channel", ev.Channel, "user", ev.User, "kind", kind)

	switch kind {
	case KindPoll:
		blocks, err := composer.BuildPoll(l.menu)
		if err != nil {
			return fmt.Errorf("failed to build poll: %w", err)
		}
		return l.sender.PostBlocks(ctx, ev.Channel, blocks)
	case KindSuggestion:
		return l.sender.PostText(ctx, ev.Channel, l.suggest())
	default:
		return l.sender.PostText(ctx, ev.Channel, unknownReply)
	}
}

func (l *Listener) suggest() string {
	if len(l.menu.Suggestions) == 0 {
		return unknownReply
	}
	return l.menu.Suggestions[l.pick(len(l.menu.Suggestions))]
}
