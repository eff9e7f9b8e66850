// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the lunch bot.

The bot posts a lunch poll to Slack when asked and counts votes as people
click the poll's buttons. Each option shows the avatars of its voters and a
running "N votes" label; a user gets one vote per poll message.

# Starting the Bot

	SLACK_API_TOKEN=xoxb-... go run .

Or with flags, running the webhook and the Socket Mode listener together:

	go run . -mode all -token xoxb-... -app-token xapp-... -menu menu.yaml

# Configuration

Required settings:

  - SLACK_API_TOKEN (-token): Bot token
  - SLACK_APP_TOKEN (-app-token): App-level token, listener modes only

Optional settings:

  - PORT (-p): Webhook port (default: 3000)
  - BOT_MODE (-mode): webhook, listener or all (default: webhook)
  - LUNCH_MENU (-menu): Menu YAML (default: built-in menu)
  - LEDGER_BACKEND (-ledger): memory or sqlite (default: memory)
  - SLACK_DEBUG (-debug): Debug logging and Slack API traffic

Variables may also come from a dotenv file (-env, default .env).

# Architecture

  - voting: Vote coordinator, the callback-to-chat.update pipeline
  - ledger: Who voted on which message (sharded map or SQLite)
  - blockkit: Vote operations on slack-go blocks
  - composer: Menu loading and poll message layout
  - listener: Mention-driven replies over Socket Mode
  - slackapi: Slack Web API calls
  - handlers, router, middleware: Webhook HTTP surface
  - models: HTTP response types
  - db: SQLite schema
  - cliparse: Configuration parsing

Votes live only as long as the process. Nothing verifies that callbacks come
from Slack; run the webhook behind something that does.
*/
package main
