// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the lunch bot webhook.

# Handler Types

  - CallbackHandler: Slack interaction callbacks (vote button clicks)
  - StatsHandler: Vote ledger counts and process uptime

Handlers are created via constructor functions that take their collaborators
as interfaces:

	callbacks := handlers.NewCallbackHandler(voting.NewCoordinator(votes, slackClient))
	stats := handlers.NewStatsHandler(votes, time.Now())

# Vote Callbacks

Slack posts interactions as application/x-www-form-urlencoded with the JSON
in a single "payload" field:

	POST /slackbot → HandleCallback

The body is plain text and mirrors the status:

	200 OK            vote applied
	400 Bad request   malformed payload or unknown option
	403 Forbidden     user already voted on this message
	500 Internal error Slack rejected the lookup or update

# Stats

	GET /stats → GetStats

	{"messages": 2, "votes": 7, "started_at": "...", "uptime": "3 hours"}
*/
package handlers
