// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/lunchbot/middleware"
)

// maxPayloadBytes bounds the form body of one interaction callback
const maxPayloadBytes = 1 << 20

// VoteCallbacks applies one interaction payload and reports status and body
type VoteCallbacks interface {
	HandleVoteCallback(ctx context.Context, payload []byte) (int, string)
}

type CallbackHandler struct {
	votes VoteCallbacks
}

func NewCallbackHandler(votes VoteCallbacks) *CallbackHandler {
	return &CallbackHandler{votes: votes}
}

// HandleCallback handles POST /slackbot
func (h *CallbackHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPayloadBytes)
	if err := r.ParseForm(); err != nil {
		slog.Warn("failed to parse callback form", "error", err)
		middleware.TextResponse(w, http.StatusBadRequest, "Bad request")
		return
	}

	payload := r.PostForm.Get("payload")
	if payload == "" {
		middleware.TextResponse(w, http.StatusBadRequest, "Bad request")
		return
	}

	status, body := h.votes.HandleVoteCallback(r.Context(), []byte(payload))
	middleware.TextResponse(w, status, body)
}
