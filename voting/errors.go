// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"errors"
	"net/http"
)

var (
	ErrMalformedRequest     = errors.New("malformed request")
	ErrDuplicateVote        = errors.New("user already voted on this message")
	ErrTargetBlockNotFound  = errors.New("no context block follows the clicked block")
	ErrUpstreamUpdateFailed = errors.New("slack rejected the call")
)

// Status maps the result of Apply to an HTTP status and a short text reason.
// Slack shows a warning sign to the clicking user for any non-2xx status.
func Status(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusOK, "OK"
	case errors.Is(err, ErrMalformedRequest), errors.Is(err, ErrTargetBlockNotFound):
		return http.StatusBadRequest, "Bad request"
	case errors.Is(err, ErrDuplicateVote):
		return http.StatusForbidden, "Forbidden"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}
