// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package slackapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/slack-go/slack"
)

// ErrPlatform wraps every failed or non-ok Slack Web API call
var ErrPlatform = errors.New("slack api call failed")

// Client is the bot's view of the Slack Web API
type Client struct {
	api *slack.Client
}

// New creates a client for the given bot token
func New(token string, options ...slack.Option) *Client {
	return &Client{api: slack.New(token, options...)}
}

// API exposes the underlying slack-go client (Socket Mode needs it)
func (c *Client) API() *slack.Client {
	return c.api
}

// BotUserID returns the user id of the token's bot user (auth.test)
func (c *Client) BotUserID(ctx context.Context) (string, error) {
	resp, err := c.api.AuthTestContext(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: auth.test: %w", ErrPlatform, err)
	}
	return resp.UserID, nil
}

// UserInfo fetches a user with profile (users.info)
func (c *Client) UserInfo(ctx context.Context, userID string) (*slack.User, error) {
	user, err := c.api.GetUserInfoContext(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: users.info %s: %w", ErrPlatform, userID, err)
	}
	return user, nil
}

// PostText posts a plain message (chat.postMessage)
func (c *Client) PostText(ctx context.Context, channelID, text string) error {
	_, _, err := c.api.PostMessageContext(ctx, channelID, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("%w: chat.postMessage: %w", ErrPlatform, err)
	}
	return nil
}

// PostBlocks posts a block message (chat.postMessage)
func (c *Client) PostBlocks(ctx context.Context, channelID string, blocks []slack.Block) error {
	_, _, err := c.api.PostMessageContext(ctx, channelID, slack.MsgOptionBlocks(blocks...))
	if err != nil {
		return fmt.Errorf("%w: chat.postMessage: %w", ErrPlatform, err)
	}
	return nil
}

// UpdateBlocks replaces the blocks of the message at (channelID, ts) (chat.update)
func (c *Client) UpdateBlocks(ctx context.Context, channelID, ts string, blocks []slack.Block) error {
	_, _, _, err := c.api.UpdateMessageContext(ctx, channelID, ts, slack.MsgOptionBlocks(blocks...))
	if err != nil {
		return fmt.Errorf("%w: chat.update: %w", ErrPlatform, err)
	}
	return nil
}
