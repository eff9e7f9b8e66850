// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting applies interactive vote clicks to poll messages.

# Flow

Each button click on a poll arrives as one callback. Coordinator.Apply:

 1. parses and validates the payload (ParseCallback)
 2. claims (message_ts, user) in the ledger; a refused claim is a duplicate
 3. looks up the voter's name and avatar (users.info); a profile without
    any avatar size is refused like a failed lookup
 4. finds the context block right after the clicked section
 5. puts the voter avatar first and rewrites the count ("1 vote", "2 votes")
 6. normalizes every image element so chat.update accepts the body
 7. writes the message back (chat.update)

# Errors

	ErrMalformedRequest     → 400
	ErrTargetBlockNotFound  → 400
	ErrDuplicateVote        → 403 (plus a notice in the channel)
	ErrUpstreamUpdateFailed → 500

Status maps an Apply error to the status and text body.

# Ledger Semantics

A claim taken in step 2 is released if steps 3-5 fail. After that it stays,
even if chat.update fails.

# Known Limitation

Two different users voting on the same message concurrently may lose one
vote on Slack: each callback rewrites the body it was delivered with.
*/
package voting
