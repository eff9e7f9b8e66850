// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the lunch bot webhook.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(coordinator, votes, time.Now())

# Endpoints

	GET  /health   - Liveness, plain "OK"
	POST /slackbot - Slack interaction callbacks (vote clicks)
	GET  /stats    - Ledger counts and uptime
	GET  /         - Banner

Only /slackbot and /stats are wrapped with request logging; /slackbot also
recovers from handler panics.
*/
package router
