// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /slackbot", middleware.WithLogging(handler))

Logs request start (request_id, method, path, client) and completion
(status, duration_ms). The request id is taken from X-Request-ID or
generated, and always echoed back in the response header.

# Panic Recovery

	middleware.WithLogging(middleware.WithRecover(handler))

A panicking handler answers 500 "Internal error".

# Response Helpers

	middleware.TextResponse(w, http.StatusForbidden, "Forbidden")
	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Slack reads the callback response as plain text, so the webhook uses
TextResponse. JSON is for the stats endpoint and routing errors.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
