// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/slack-go/slack"

	"github.com/danielhkuo/lunchbot/blockkit"
	"github.com/danielhkuo/lunchbot/cliparse"
)

// TestChannel and TestMessageTS identify the poll message used by payloads
const (
	TestChannel   = "C0LUNCH"
	TestMessageTS = "1700000000.000100"
)

// PostedText is one chat.postMessage call with plain text
type PostedText struct {
	Channel string
	Text    string
}

// PostedBlocks is one chat.postMessage call with blocks
type PostedBlocks struct {
	Channel string
	Blocks  []slack.Block
}

// Update is one chat.update call
type Update struct {
	Channel string
	TS      string
	Blocks  []slack.Block
}

// FakePlatform records every outbound Slack call.
// Error fields, when set, are returned by the matching method.
type FakePlatform struct {
	mu sync.Mutex

	Users map[string]*slack.User

	UserInfoErr   error
	PostTextErr   error
	PostBlocksErr error
	UpdateErr     error

	Texts       []PostedText
	BlockPosts  []PostedBlocks
	Updates     []Update
	LookupCount int
}

func NewFakePlatform() *FakePlatform {
	return &FakePlatform{Users: make(map[string]*slack.User)}
}

// AddUser registers a user whose profile real name and avatar are derived from id
func (f *FakePlatform) AddUser(id string) *slack.User {
	f.mu.Lock()
	defer f.mu.Unlock()

	u := &slack.User{ID: id, Name: strings.ToLower(id)}
	u.Profile.RealName = "Real " + id
	u.Profile.Image48 = ImageURL(id)
	f.Users[id] = u
	return u
}

func (f *FakePlatform) UserInfo(_ context.Context, userID string) (*slack.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.LookupCount++
	if f.UserInfoErr != nil {
		return nil, f.UserInfoErr
	}
	u, ok := f.Users[userID]
	if !ok {
		return nil, fmt.Errorf("user_not_found: %s", userID)
	}
	return u, nil
}

func (f *FakePlatform) PostText(_ context.Context, channelID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Texts = append(f.Texts, PostedText{Channel: channelID, Text: text})
	return f.PostTextErr
}

func (f *FakePlatform) PostBlocks(_ context.Context, channelID string, blocks []slack.Block) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.BlockPosts = append(f.BlockPosts, PostedBlocks{Channel: channelID, Blocks: blocks})
	return f.PostBlocksErr
}

func (f *FakePlatform) UpdateBlocks(_ context.Context, channelID, ts string, blocks []slack.Block) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Updates = append(f.Updates, Update{Channel: channelID, TS: ts, Blocks: blocks})
	return f.UpdateErr
}

// LastUpdate returns the most recent chat.update call
func (f *FakePlatform) LastUpdate(t *testing.T) Update {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.Updates) == 0 {
		t.Fatal("Expected a chat.update call, got none")
	}
	return f.Updates[len(f.Updates)-1]
}

// UpdateCount returns the number of chat.update calls
func (f *FakePlatform) UpdateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Updates)
}

// TextCount returns the number of plain text posts
func (f *FakePlatform) TextCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Texts)
}

// ImageURL is the avatar URL AddUser assigns to id
func ImageURL(id string) string {
	return "https://avatars.example.com/" + id + "_48.png"
}

// PollBlocks returns the two-option poll body
// [Section(A), Context("No votes"), Section(B), Context("No votes")]
func PollBlocks() []slack.Block {
	return []slack.Block{
		slack.NewSectionBlock(blockkit.Markdown(":hamburger: Texas Longhorn"), nil, nil, slack.SectionBlockOptionBlockID("A")),
		slack.NewContextBlock("", blockkit.Markdown("No votes")),
		slack.NewSectionBlock(blockkit.Markdown(":sushi: Sushi Sun"), nil, nil, slack.SectionBlockOptionBlockID("B")),
		slack.NewContextBlock("", blockkit.Markdown("No votes")),
	}
}

// CallbackPayload builds the JSON of a block_actions callback
func CallbackPayload(t *testing.T, userID, blockID string, blocks []slack.Block) []byte {
	t.Helper()

	payload := map[string]any{
		"type": "block_actions",
		"user": map[string]any{"id": userID, "name": strings.ToLower(userID)},
		"actions": []map[string]any{
			{"action_id": "vote", "block_id": blockID, "value": "click_me_123"},
		},
		"container": map[string]any{
			"type":       "message",
			"message_ts": TestMessageTS,
			"channel_id": TestChannel,
		},
		"channel": map[string]any{"id": TestChannel, "name": "lunch"},
		"message": map[string]any{"ts": TestMessageTS, "blocks": blocks},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal payload: %v", err)
	}
	return raw
}

// WithClickMetadata adds the extra fields Slack injects into the message of a
// callback payload: image metadata on every image element and an unknown
// field on every block.
func WithClickMetadata(t *testing.T, payload []byte) []byte {
	t.Helper()

	var generic map[string]any
	if err := json.Unmarshal(payload, &generic); err != nil {
		t.Fatal(err)
	}
	message, _ := generic["message"].(map[string]any)
	blocks, _ := message["blocks"].([]any)
	for _, b := range blocks {
		block := b.(map[string]any)
		block["custom_field"] = "injected"
		elements, _ := block["elements"].([]any)
		for _, e := range elements {
			el := e.(map[string]any)
			if el["type"] == string(slack.METImage) {
				el["fallback"] = "48x48px image"
				el["image_width"] = 48
				el["image_height"] = 48
				el["image_bytes"] = 2048
			}
		}
	}

	raw, err := json.Marshal(generic)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3000,
		SlackToken:    "xoxb-test",
		AppToken:      "xapp-test",
		Mode:          cliparse.ModeWebhook,
		LedgerBackend: cliparse.LedgerMemory,
	}
}

// MakeCallbackRequest creates a form-encoded interactive callback request
func MakeCallbackRequest(path string, payload []byte) *http.Request {
	form := url.Values{}
	if payload != nil {
		form.Set("payload", string(payload))
	}
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
