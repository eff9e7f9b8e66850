// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package blockkit holds the vote operations on a poll message's blocks.

Blocks are slack-go's own types. A message body read from an interaction
payload decodes into slack.Blocks, and the same values go back out through
chat.update:

	var cb slack.InteractionCallback
	json.Unmarshal(payload, &cb)
	blocks := cb.Message.Blocks.BlockSet

Fields slack-go does not model are dropped on decode.

# Vote Layout

A poll option is a section block followed by a context block. The context
block lists voter avatars, most recent first, and ends with a count element:

	[image(U2), image(U1), mrkdwn("2 votes")]

Next finds the context block for a clicked section, AddVoter inserts the
avatar and rewrites the count.

# Normalization

Slack adds metadata to image elements (image_width, image_bytes, fallback, ...)
that chat.update rejects. Normalize rebuilds every image element from its
image_url and alt_text alone. Running it twice is the same as running it once.
*/
package blockkit
