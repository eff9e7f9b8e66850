// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Webhook listen port (default: 3000)
  - SlackToken: Bot token, xoxb-... (required)
  - AppToken: App-level token for Socket Mode, xapp-... (required when the listener runs)
  - Mode: webhook, listener or all (default: webhook)
  - MenuFile: Lunch menu YAML (default: built-in menu)
  - LedgerBackend: memory or sqlite (default: memory)
  - Debug: Log Slack API traffic

# CLI Flags

	-p          Webhook port
	-mode       Run mode
	-menu       Lunch menu file
	-ledger     Vote ledger backend
	-debug      Slack debug logging
	-env        Dotenv file (default: .env)
	-token      Slack bot token
	-app-token  Slack app-level token

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	BOT_MODE        → -mode
	LUNCH_MENU      → -menu
	LEDGER_BACKEND  → -ledger
	SLACK_DEBUG     → -debug
	SLACK_API_TOKEN → -token
	SLACK_APP_TOKEN → -app-token

CLI flags take precedence over environment variables. The dotenv file is
loaded first and never overrides variables already set in the environment.
A missing dotenv file is not an error.

# Validation

ParseFlags returns an error if:

  - SLACK_API_TOKEN is missing
  - SLACK_APP_TOKEN is missing and the mode runs the listener
  - mode or ledger backend is not one of the known values
*/
package cliparse
