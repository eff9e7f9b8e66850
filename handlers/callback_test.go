// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/slack-go/slack"

	"github.com/danielhkuo/lunchbot/blockkit"
	"github.com/danielhkuo/lunchbot/ledger"
	"github.com/danielhkuo/lunchbot/testutil"
	"github.com/danielhkuo/lunchbot/voting"
)

func setupCallbackHandler(t *testing.T) (*CallbackHandler, *testutil.FakePlatform, *ledger.Memory) {
	t.Helper()

	fake := testutil.NewFakePlatform()
	fake.AddUser("U1")
	fake.AddUser("U2")
	votes := ledger.NewMemory()

	return NewCallbackHandler(voting.NewCoordinator(votes, fake)), fake, votes
}

func TestHandleCallback_FirstVote(t *testing.T) {
	handler, fake, _ := setupCallbackHandler(t)

	payload := testutil.CallbackPayload(t, "U1", "A", testutil.PollBlocks())
	req := testutil.MakeCallbackRequest("/slackbot", payload)
	w := httptest.NewRecorder()

	handler.HandleCallback(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}

	update := fake.LastUpdate(t)
	if update.Channel != testutil.TestChannel || update.TS != testutil.TestMessageTS {
		t.Errorf("Unexpected update target %s/%s", update.Channel, update.TS)
	}
	ctx, ok := update.Blocks[1].(*slack.ContextBlock)
	if !ok {
		t.Fatalf("Expected context block, got %T", update.Blocks[1])
	}
	elements := ctx.ContextElements.Elements
	if len(elements) != 2 || countText(elements) != blockkit.VoteLabel(1) {
		t.Errorf("Expected one voter and '1 vote', got %+v", elements)
	}
}

func TestHandleCallback_Duplicate(t *testing.T) {
	handler, fake, _ := setupCallbackHandler(t)
	payload := testutil.CallbackPayload(t, "U1", "A", testutil.PollBlocks())

	w := httptest.NewRecorder()
	handler.HandleCallback(w, testutil.MakeCallbackRequest("/slackbot", payload))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	handler.HandleCallback(w, testutil.MakeCallbackRequest("/slackbot", payload))
	testutil.AssertStatus(t, w, http.StatusForbidden)
	if w.Body.String() != "Forbidden" {
		t.Errorf("Expected body 'Forbidden', got '%s'", w.Body.String())
	}

	if fake.UpdateCount() != 1 {
		t.Errorf("Expected one chat.update, got %d", fake.UpdateCount())
	}
	if fake.TextCount() != 1 || !strings.Contains(fake.Texts[0].Text, "<@U1>") {
		t.Errorf("Expected a duplicate notice naming U1, got %+v", fake.Texts)
	}
}

func TestHandleCallback_BadRequests(t *testing.T) {
	testCases := []struct {
		name string
		req  func() *http.Request
	}{
		{
			name: "missing payload field",
			req:  func() *http.Request { return testutil.MakeCallbackRequest("/slackbot", nil) },
		},
		{
			name: "payload is not JSON",
			req:  func() *http.Request { return testutil.MakeCallbackRequest("/slackbot", []byte("{not json")) },
		},
		{
			name: "payload without actions",
			req: func() *http.Request {
				return testutil.MakeCallbackRequest("/slackbot", []byte(`{"type":"block_actions","user":{"id":"U1"}}`))
			},
		},
		{
			name: "payload in query string only",
			req: func() *http.Request {
				req := httptest.NewRequest("POST", "/slackbot?payload=%7B%7D", nil)
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return req
			},
		},
		{
			name: "oversized body",
			req: func() *http.Request {
				body := "payload=" + strings.Repeat("x", maxPayloadBytes+1)
				req := httptest.NewRequest("POST", "/slackbot", strings.NewReader(body))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return req
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, fake, _ := setupCallbackHandler(t)
			w := httptest.NewRecorder()

			handler.HandleCallback(w, tc.req())

			testutil.AssertStatus(t, w, http.StatusBadRequest)
			if w.Body.String() != "Bad request" {
				t.Errorf("Expected body 'Bad request', got '%s'", w.Body.String())
			}
			if fake.UpdateCount() != 0 {
				t.Error("Expected no chat.update for a bad request")
			}
		})
	}
}

func TestHandleCallback_UnknownBlock(t *testing.T) {
	handler, fake, votes := setupCallbackHandler(t)

	payload := testutil.CallbackPayload(t, "U1", "Z", testutil.PollBlocks())
	w := httptest.NewRecorder()
	handler.HandleCallback(w, testutil.MakeCallbackRequest("/slackbot", payload))

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	if fake.UpdateCount() != 0 {
		t.Error("Expected no chat.update")
	}

	// the claim was released so a valid click still counts
	voted, err := votes.HasVoted(context.Background(), testutil.TestMessageTS, "U1")
	if err != nil {
		t.Fatal(err)
	}
	if voted {
		t.Error("Expected no ledger entry after an unknown block")
	}
}

func TestHandleCallback_UpstreamFailure(t *testing.T) {
	handler, fake, _ := setupCallbackHandler(t)
	fake.UpdateErr = errors.New("msg_too_long")

	payload := testutil.CallbackPayload(t, "U1", "A", testutil.PollBlocks())
	w := httptest.NewRecorder()
	handler.HandleCallback(w, testutil.MakeCallbackRequest("/slackbot", payload))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	if w.Body.String() != "Internal error" {
		t.Errorf("Expected body 'Internal error', got '%s'", w.Body.String())
	}
}

type recordingVotes struct {
	ctx     context.Context
	payload string
}

func (r *recordingVotes) HandleVoteCallback(ctx context.Context, payload []byte) (int, string) {
	r.ctx = ctx
	r.payload = string(payload)
	return http.StatusOK, "OK"
}

func TestHandleCallback_PassesPayloadAndContext(t *testing.T) {
	votes := &recordingVotes{}
	handler := NewCallbackHandler(votes)

	type ctxKey struct{}
	req := testutil.MakeCallbackRequest("/slackbot", []byte(`{"type":"block_actions"}`))
	req = req.WithContext(context.WithValue(req.Context(), ctxKey{}, "marker"))
	w := httptest.NewRecorder()

	handler.HandleCallback(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if votes.payload != `{"type":"block_actions"}` {
		t.Errorf("Unexpected payload %q", votes.payload)
	}
	if votes.ctx == nil || votes.ctx.Value(ctxKey{}) != "marker" {
		t.Error("Expected request context to reach the coordinator")
	}
}
