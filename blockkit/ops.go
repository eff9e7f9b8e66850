// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package blockkit

import (
	"errors"

	"github.com/slack-go/slack"
)

var ErrNoCountElement = errors.New("block has no count element")

// Next returns the index of the block immediately following the block whose
// block_id equals blockID. ok is false when no block matches or the match is
// the last block. An empty blockID matches nothing.
func Next(blocks []slack.Block, blockID string) (index int, ok bool) {
	if blockID == "" {
		return 0, false
	}
	for i, b := range blocks {
		if BlockID(b) != blockID {
			continue
		}
		if i+1 >= len(blocks) {
			return 0, false
		}
		return i + 1, true
	}
	return 0, false
}

// Normalize rebuilds every image element of every context block with only
// type, image_url and alt_text set. Blocks are modified in place and returned
// for convenience.
func Normalize(blocks []slack.Block) []slack.Block {
	for _, b := range blocks {
		ctx, ok := b.(*slack.ContextBlock)
		if !ok || ctx == nil {
			continue
		}
		for i, e := range ctx.ContextElements.Elements {
			if img, ok := e.(*slack.ImageBlockElement); ok && img != nil {
				ctx.ContextElements.Elements[i] = slack.NewImageBlockElement(img.ImageURL, img.AltText)
			}
		}
	}
	return blocks
}

// AddVoter puts voter at the front of a context block and rewrites the
// trailing count element. The count excludes the trailing element itself.
// b is left untouched when it is not a context block ending in text.
func AddVoter(b slack.Block, voter *slack.ImageBlockElement) (int, error) {
	ctx, ok := b.(*slack.ContextBlock)
	if !ok || ctx == nil {
		return 0, ErrNoCountElement
	}

	elements := ctx.ContextElements.Elements
	if len(elements) == 0 {
		return 0, ErrNoCountElement
	}
	label, ok := elements[len(elements)-1].(*slack.TextBlockObject)
	if !ok || label == nil {
		return 0, ErrNoCountElement
	}

	elements = append([]slack.MixedElement{voter}, elements...)
	count := len(elements) - 1

	relabeled := *label
	relabeled.Text = VoteLabel(count)
	elements[count] = &relabeled

	ctx.ContextElements.Elements = elements
	return count, nil
}
