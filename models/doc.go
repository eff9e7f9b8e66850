// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the bot's own HTTP responses.

Inbound interaction callbacks decode straight into slack.InteractionCallback
from slack-go; nothing here mirrors them.

# Response Types

  - StatsResponse: ledger counts and uptime
  - ErrorResponse: error, message
*/
package models
