// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "github.com/slack-go/slack"

const unknownVoter = "Unknown"

// DisplayName picks the first non-empty of the profile's real, display and
// first names, then the account's real name and handle.
func DisplayName(user *slack.User) string {
	if user == nil {
		return unknownVoter
	}

	candidates := []string{
		user.Profile.RealName,
		user.Profile.DisplayName,
		user.Profile.FirstName,
		user.RealName,
		user.Name,
	}
	for _, name := range candidates {
		if name != "" {
			return name
		}
	}
	return unknownVoter
}

// VoterImage is the avatar element added to a context block for one vote.
// The 48px avatar is preferred, then the nearest other size. ok is false when
// the profile has no avatar at all.
func VoterImage(user *slack.User) (img *slack.ImageBlockElement, ok bool) {
	if user == nil {
		return nil, false
	}

	p := user.Profile
	for _, imageURL := range []string{p.Image48, p.Image72, p.Image32, p.Image24, p.Image192, p.Image512, p.ImageOriginal} {
		if imageURL != "" {
			return slack.NewImageBlockElement(imageURL, DisplayName(user)), true
		}
	}
	return nil, false
}
