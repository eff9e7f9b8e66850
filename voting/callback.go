// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"encoding/json"
	"fmt"

	"github.com/slack-go/slack"
)

// Callback is a validated vote click
type Callback struct {
	UserID         string
	ClickedBlockID string
	MessageTS      string
	ChannelID      string
	Blocks         []slack.Block
}

// ParseCallback decodes the JSON of the "payload" form field. Every field the
// vote flow needs must be present; otherwise the error wraps ErrMalformedRequest.
// An action without a string block_id does not count as a block action.
func ParseCallback(payload []byte) (Callback, error) {
	var ic slack.InteractionCallback
	if err := json.Unmarshal(payload, &ic); err != nil {
		return Callback{}, fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}

	actions := ic.ActionCallback.BlockActions
	switch {
	case ic.User.ID == "":
		return Callback{}, fmt.Errorf("%w: user.id is required", ErrMalformedRequest)
	case len(actions) == 0 || actions[0] == nil:
		return Callback{}, fmt.Errorf("%w: no block action", ErrMalformedRequest)
	case actions[0].BlockID == "":
		return Callback{}, fmt.Errorf("%w: actions[0].block_id is required", ErrMalformedRequest)
	case ic.Container.MessageTs == "":
		return Callback{}, fmt.Errorf("%w: container.message_ts is required", ErrMalformedRequest)
	case ic.Channel.ID == "":
		return Callback{}, fmt.Errorf("%w: channel.id is required", ErrMalformedRequest)
	case len(ic.Message.Blocks.BlockSet) == 0:
		return Callback{}, fmt.Errorf("%w: message.blocks is required", ErrMalformedRequest)
	}

	return Callback{
		UserID:         ic.User.ID,
		ClickedBlockID: actions[0].BlockID,
		MessageTS:      ic.Container.MessageTs,
		ChannelID:      ic.Channel.ID,
		Blocks:         ic.Message.Blocks.BlockSet,
	}, nil
}
