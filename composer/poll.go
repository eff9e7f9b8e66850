// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package composer

import (
	"errors"
	"fmt"

	"github.com/slack-go/slack"
)

// NoVotesText is the placeholder count element of a fresh option
const NoVotesText = "No votes"

var (
	ErrNoOptions       = errors.New("menu has no options")
	ErrEmptyOptionID   = errors.New("option id is required")
	ErrEmptyTitle      = errors.New("option title is required")
	ErrDuplicateOption = errors.New("duplicate option id")
)

// Validate checks that every option can be rendered and voted on
func (m Menu) Validate() error {
	if len(m.Options) == 0 {
		return ErrNoOptions
	}

	seen := make(map[string]bool, len(m.Options))
	for i, opt := range m.Options {
		if opt.ID == "" {
			return fmt.Errorf("option %d: %w", i, ErrEmptyOptionID)
		}
		if opt.Title == "" {
			return fmt.Errorf("option %s: %w", opt.ID, ErrEmptyTitle)
		}
		if seen[opt.ID] {
			return fmt.Errorf("option %s: %w", opt.ID, ErrDuplicateOption)
		}
		seen[opt.ID] = true
	}
	return nil
}

// BuildPoll renders the menu as a poll: a title section and a divider, then
// for every option a section with a vote button (block_id = option id)
// followed by its context block.
func BuildPoll(m Menu) ([]slack.Block, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	blocks := []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, m.Title, false, false),
			nil, nil),
		slack.NewDividerBlock(),
	}

	for _, opt := range m.Options {
		text := opt.Title
		if opt.Description != "" {
			text += "\n" + opt.Description
		}

		blocks = append(blocks,
			slack.NewSectionBlock(
				slack.NewTextBlockObject(slack.MarkdownType, text, false, false),
				nil,
				slack.NewAccessory(
					slack.NewButtonBlockElement(
						"vote_"+opt.ID,
						opt.ID,
						slack.NewTextBlockObject(slack.PlainTextType, "Vote", true, false))),
				slack.SectionBlockOptionBlockID(opt.ID)),
			slack.NewContextBlock("",
				slack.NewTextBlockObject(slack.MarkdownType, NoVotesText, false, false)),
		)
	}

	return blocks, nil
}
