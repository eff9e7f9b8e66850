// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"time"

	"github.com/danielhkuo/lunchbot/handlers"
	"github.com/danielhkuo/lunchbot/middleware"
)

// Banner is served at the root path
const Banner = "lunchbot webhook v1"

func NewRouter(votes handlers.VoteCallbacks, stats handlers.StatsSource, startedAt time.Time) *http.ServeMux {
	mux := http.NewServeMux()

	callbackHandler := handlers.NewCallbackHandler(votes)
	statsHandler := handlers.NewStatsHandler(stats, startedAt)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Slack interactivity request URL
	mux.HandleFunc("POST /slackbot", middleware.WithLogging(middleware.WithRecover(callbackHandler.HandleCallback)))

	mux.HandleFunc("GET /stats", middleware.WithLogging(statsHandler.GetStats))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Banner))
	})

	return mux
}
