// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/slack-go/slack"

	"github.com/danielhkuo/lunchbot/blockkit"
)

// Ledger tracks which users voted on which messages. Claim must check and
// record a (messageTS, userID) pair atomically.
type Ledger interface {
	Claim(ctx context.Context, messageTS, userID string) (bool, error)
	Release(ctx context.Context, messageTS, userID string) error
}

// Platform is the subset of the Slack Web API the coordinator calls
type Platform interface {
	UserInfo(ctx context.Context, userID string) (*slack.User, error)
	PostText(ctx context.Context, channelID, text string) error
	UpdateBlocks(ctx context.Context, channelID, ts string, blocks []slack.Block) error
}

// Coordinator applies one vote click to a poll message
type Coordinator struct {
	ledger   Ledger
	platform Platform
}

func NewCoordinator(ledger Ledger, platform Platform) *Coordinator {
	return &Coordinator{ledger: ledger, platform: platform}
}

// HandleVoteCallback runs Apply and maps the outcome to a status and body
func (c *Coordinator) HandleVoteCallback(ctx context.Context, payload []byte) (int, string) {
	return Status(c.Apply(ctx, payload))
}

// Apply records the vote carried by payload and writes the updated message
// back to Slack.
//
// The ledger claim is taken before any mutation and released if the vote
// cannot be applied. Once the message body is built the claim is final: a
// failed chat.update does not give the user another vote.
//
// Two different users voting on the same message at the same time can lose
// one vote. Each callback carries its own snapshot of the message, and the
// later chat.update overwrites the earlier one.
func (c *Coordinator) Apply(ctx context.Context, payload []byte) error {
	cb, err := ParseCallback(payload)
	if err != nil {
		return err
	}

	log := slog.With(
		"message_ts", cb.MessageTS,
		"channel", cb.ChannelID,
		"user", cb.UserID,
		"block_id", cb.ClickedBlockID,
	)

	claimed, err := c.ledger.Claim(ctx, cb.MessageTS, cb.UserID)
	if err != nil {
		log.Error("failed to claim vote", "error", err)
		return fmt.Errorf("ledger: %w", err)
	}
	if !claimed {
		log.Info("duplicate vote rejected")
		c.notifyDuplicate(ctx, cb)
		return ErrDuplicateVote
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		// Context may already be canceled; the release must still happen.
		if relErr := c.ledger.Release(context.WithoutCancel(ctx), cb.MessageTS, cb.UserID); relErr != nil {
			log.Error("failed to release vote claim", "error", relErr)
		}
	}()

	user, err := c.platform.UserInfo(ctx, cb.UserID)
	if err != nil {
		log.Error("failed to look up voter", "error", err)
		return fmt.Errorf("%w: %w", ErrUpstreamUpdateFailed, err)
	}

	voter, ok := VoterImage(user)
	if !ok {
		log.Error("voter has no avatar")
		return fmt.Errorf("%w: user %s has no avatar", ErrUpstreamUpdateFailed, cb.UserID)
	}

	blocks, count, err := applyVote(cb, voter)
	if err != nil {
		log.Warn("vote does not match message layout", "error", err)
		return err
	}

	committed = true

	if err := c.platform.UpdateBlocks(ctx, cb.ChannelID, cb.MessageTS, blocks); err != nil {
		log.Error("failed to update poll message", "error", err)
		return fmt.Errorf("%w: %w", ErrUpstreamUpdateFailed, err)
	}

	log.Info("vote recorded", "count", count)
	return nil
}

// applyVote adds voter to the callback's blocks. The blocks were decoded for
// this callback alone, so they are changed in place.
func applyVote(cb Callback, voter *slack.ImageBlockElement) ([]slack.Block, int, error) {
	idx, ok := blockkit.Next(cb.Blocks, cb.ClickedBlockID)
	if !ok {
		return nil, 0, fmt.Errorf("%w: block %q", ErrTargetBlockNotFound, cb.ClickedBlockID)
	}

	count, err := blockkit.AddVoter(cb.Blocks[idx], voter)
	if errors.Is(err, blockkit.ErrNoCountElement) {
		return nil, 0, fmt.Errorf("%w: %w", ErrTargetBlockNotFound, err)
	}
	if err != nil {
		return nil, 0, err
	}

	return blockkit.Normalize(cb.Blocks), count, nil
}

// notifyDuplicate tells the channel about a repeat voter. Failures are only
// logged; they never change the response.
func (c *Coordinator) notifyDuplicate(ctx context.Context, cb Callback) {
	text := fmt.Sprintf("Hey all! <@%s> is cheating and tried to vote more than once!", cb.UserID)
	if err := c.platform.PostText(ctx, cb.ChannelID, text); err != nil {
		slog.Warn("failed to post duplicate vote notice",
			"channel", cb.ChannelID,
			"user", cb.UserID,
			"error", err,
		)
	}
}
