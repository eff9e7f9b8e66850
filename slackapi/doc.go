// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package slackapi wraps the slack-go Web API client with the handful of calls
the bot makes:

	auth.test         → BotUserID
	users.info        → UserInfo
	chat.postMessage  → PostText, PostBlocks
	chat.update       → UpdateBlocks

Every error, including a response with "ok": false, is wrapped with
ErrPlatform so callers can classify it with errors.Is.
*/
package slackapi
