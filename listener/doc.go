// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package listener answers chat messages that mention the bot.

The Listener reads a Feed, keeps messages whose text contains the bot's
mention token (<@BOTID>) and replies according to Classify:

	"lunch poll"             post the lunch poll
	"lunch", "eat", "hungry" post a random suggestion from the menu
	anything else            "don't know what to say about that..."

After an empty read the listener waits PollInterval before reading again.

SocketFeed adapts a Slack Socket Mode connection into a Feed. App mentions
are passed through with their own type; Slack also delivers them as plain
messages, which is what the Listener answers.
*/
package listener
