// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/slack-go/slack"

	"github.com/danielhkuo/lunchbot/blockkit"
	"github.com/danielhkuo/lunchbot/composer"
	"github.com/danielhkuo/lunchbot/testutil"
)

// countText returns the text of the trailing count element of a context block
func countText(elements []slack.MixedElement) string {
	if len(elements) == 0 {
		return ""
	}
	label, ok := elements[len(elements)-1].(*slack.TextBlockObject)
	if !ok {
		return ""
	}
	return label.Text
}

// imageURL returns the URL of an image element, or "" for anything else
func imageURL(el slack.MixedElement) string {
	img, ok := el.(*slack.ImageBlockElement)
	if !ok {
		return ""
	}
	return img.ImageURL
}

// TestFullPollWorkflow walks a poll through its life:
// 1. Compose the poll
// 2. First vote on an option
// 3. Second voter on the same option, clicking the updated message
// 4. Repeat click is rejected
// 5. Third voter on another option
// 6. Verify the final message
func TestFullPollWorkflow(t *testing.T) {
	handler, fake, _ := setupCallbackHandler(t)
	fake.AddUser("U3")

	// Step 1: Compose the poll the listener would post
	menu := composer.DefaultMenu()
	current, err := composer.BuildPoll(menu)
	if err != nil {
		t.Fatal(err)
	}
	first, second := menu.Options[0].ID, menu.Options[1].ID

	click := func(userID, blockID string) int {
		t.Helper()
		payload := testutil.WithClickMetadata(t, testutil.CallbackPayload(t, userID, blockID, current))
		w := httptest.NewRecorder()
		handler.HandleCallback(w, testutil.MakeCallbackRequest("/slackbot", payload))
		if w.Code == http.StatusOK {
			current = fake.LastUpdate(t).Blocks
		}
		return w.Code
	}

	elementsAfter := func(blockID string) []slack.MixedElement {
		t.Helper()
		idx, ok := blockkit.Next(current, blockID)
		if !ok {
			t.Fatalf("No context block after %s", blockID)
		}
		ctx, ok := current[idx].(*slack.ContextBlock)
		if !ok {
			t.Fatalf("Block after %s is %T", blockID, current[idx])
		}
		return ctx.ContextElements.Elements
	}

	// Step 2
	if code := click("U1", first); code != http.StatusOK {
		t.Fatalf("Step 2 - first vote failed: %d", code)
	}
	if got := elementsAfter(first); len(got) != 2 || countText(got) != "1 vote" {
		t.Fatalf("Step 2 - unexpected context %+v", got)
	}

	// Step 3
	if code := click("U2", first); code != http.StatusOK {
		t.Fatalf("Step 3 - second vote failed: %d", code)
	}
	got := elementsAfter(first)
	if len(got) != 3 || countText(got) != "2 votes" {
		t.Fatalf("Step 3 - unexpected context %+v", got)
	}
	if imageURL(got[0]) != testutil.ImageURL("U2") || imageURL(got[1]) != testutil.ImageURL("U1") {
		t.Errorf("Step 3 - expected newest voter first, got %+v", got)
	}

	// Step 4
	if code := click("U1", second); code != http.StatusForbidden {
		t.Fatalf("Step 4 - expected 403 for repeat voter, got %d", code)
	}

	// Step 5
	if code := click("U3", second); code != http.StatusOK {
		t.Fatalf("Step 5 - third vote failed: %d", code)
	}

	// Step 6: injected fields never reach chat.update
	raw, err := json.Marshal(current)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"custom_field", "fallback", "image_width", "image_height", "image_bytes"} {
		if strings.Contains(string(raw), `"`+key+`"`) {
			t.Errorf("Step 6 - update kept injected field %q", key)
		}
	}
	if got := elementsAfter(first); countText(got) != "2 votes" {
		t.Errorf("Step 6 - first option lost votes: %+v", got)
	}
	if got := elementsAfter(second); len(got) != 2 || countText(got) != "1 vote" {
		t.Errorf("Step 6 - unexpected second option %+v", got)
	}
	if third := elementsAfter(menu.Options[2].ID); len(third) != 1 || countText(third) != composer.NoVotesText {
		t.Errorf("Step 6 - untouched option changed: %+v", third)
	}
	if fake.UpdateCount() != 3 {
		t.Errorf("Expected 3 chat.update calls, got %d", fake.UpdateCount())
	}
}
