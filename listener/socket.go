// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package listener

import (
	"context"
	"log/slog"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
	"golang.org/x/sync/errgroup"
)

const (
	EventTypeAppMention = "app_mention"

	defaultBufferSize = 64
)

// SocketFeed turns a Socket Mode connection into a Feed. Run keeps the
// connection open and buffers converted events; Read drains the buffer
// without blocking.
type SocketFeed struct {
	client *socketmode.Client
	ack    func(socketmode.Request)
	events chan Event
}

func NewSocketFeed(api *slack.Client, debug bool) *SocketFeed {
	client := socketmode.New(api, socketmode.OptionDebug(debug))
	f := newSocketFeed(defaultBufferSize, func(req socketmode.Request) {
		client.Ack(req)
	})
	f.client = client
	return f
}

func newSocketFeed(size int, ack func(socketmode.Request)) *SocketFeed {
	return &SocketFeed{
		ack:    ack,
		events: make(chan Event, size),
	}
}

// Run connects and pumps events until ctx is cancelled
func (f *SocketFeed) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return f.client.RunContext(ctx)
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case evt, ok := <-f.client.Events:
				if !ok {
					return nil
				}
				f.dispatch(ctx, evt)
			}
		}
	})

	return g.Wait()
}

func (f *SocketFeed) Read(ctx context.Context) ([]Event, error) {
	var out []Event
	for {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		case ev := <-f.events:
			out = append(out, ev)
		default:
			return out, nil
		}
	}
}

func (f *SocketFeed) dispatch(ctx context.Context, evt socketmode.Event) {
	switch evt.Type {
	case socketmode.EventTypeConnecting:
		slog.Info("Connecting to Socket Mode")
	case socketmode.EventTypeConnected:
		slog.Info("Connected to Socket Mode")
	case socketmode.EventTypeConnectionError:
		slog.Warn("Socket Mode connection error", "data", evt.Data)
	case socketmode.EventTypeEventsAPI:
		if evt.Request != nil {
			f.ack(*evt.Request)
		}
		apiEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
		if !ok {
			return
		}
		ev, ok := convert(apiEvent)
		if !ok {
			return
		}
		select {
		case f.events <- ev:
		case <-ctx.Done():
		}
	default:
		if evt.Request != nil {
			f.ack(*evt.Request)
		}
	}
}

// convert keeps plain user messages and app mentions. Edits, bot posts and
// other subtypes are dropped so the bot never answers itself.
func convert(apiEvent slackevents.EventsAPIEvent) (Event, bool) {
	if apiEvent.Type != slackevents.CallbackEvent {
		return Event{}, false
	}

	switch ev := apiEvent.InnerEvent.Data.(type) {
	case *slackevents.MessageEvent:
		if ev.SubType != "" || ev.BotID != "" {
			return Event{}, false
		}
		return Event{Type: EventTypeMessage, Text: ev.Text, Channel: ev.Channel, User: ev.User}, true
	case *slackevents.AppMentionEvent:
		return Event{Type: EventTypeAppMention, Text: ev.Text, Channel: ev.Channel, User: ev.User}, true
	}
	return Event{}, false
}
