// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/lunchbot/ledger"
	"github.com/danielhkuo/lunchbot/middleware"
	"github.com/danielhkuo/lunchbot/models"
)

type StatsSource interface {
	Stats(ctx context.Context) (ledger.Stats, error)
}

type StatsHandler struct {
	ledger    StatsSource
	startedAt time.Time
	now       func() time.Time
}

func NewStatsHandler(source StatsSource, startedAt time.Time) *StatsHandler {
	return &StatsHandler{ledger: source, startedAt: startedAt, now: time.Now}
}

// GetStats handles GET /stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.ledger.Stats(r.Context())
	if err != nil {
		slog.Error("failed to read ledger stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read ledger")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatsResponse{
		Messages:  st.Messages,
		Votes:     st.Votes,
		StartedAt: h.startedAt.UTC(),
		Uptime:    strings.TrimSpace(humanize.RelTime(h.startedAt, h.now(), "", "")),
	})
}
