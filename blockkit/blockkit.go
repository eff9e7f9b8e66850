// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package blockkit

import (
	"strconv"

	"github.com/slack-go/slack"
)

// BlockID returns the block_id of b. Blocks slack-go does not know decode as
// *slack.UnknownBlock and still carry their id.
func BlockID(b slack.Block) string {
	switch v := b.(type) {
	case *slack.SectionBlock:
		return v.BlockID
	case *slack.ContextBlock:
		return v.BlockID
	case *slack.ActionBlock:
		return v.BlockID
	case *slack.DividerBlock:
		return v.BlockID
	case *slack.HeaderBlock:
		return v.BlockID
	case *slack.ImageBlock:
		return v.BlockID
	case *slack.InputBlock:
		return v.BlockID
	case *slack.RichTextBlock:
		return v.BlockID
	case *slack.FileBlock:
		return v.BlockID
	case *slack.VideoBlock:
		return v.BlockID
	case *slack.CallBlock:
		return v.BlockID
	case *slack.UnknownBlock:
		return v.BlockID
	}
	return ""
}

// Markdown returns a mrkdwn text object
func Markdown(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
}

// VoteLabel renders a vote count: "1 vote", otherwise "N votes"
func VoteLabel(count int) string {
	if count == 1 {
		return "1 vote"
	}
	return strconv.Itoa(count) + " votes"
}
