// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger records which users voted on which poll messages.

Two implementations share the same method set:

  - Memory: sharded maps guarded by one mutex per shard (default)
  - SQL: the vote table from package db, normally an in-memory SQLite database

Both live only for the process lifetime and never evict entries.

# Claims

Claim is the atomic form of HasVoted followed by Record, and the only check
the vote coordinator makes:

	ok, err := l.Claim(ctx, messageTS, userID)
	if !ok {
		// already voted
	}

Release undoes a claim when the vote could not be applied. The coordinator
calls nothing but Claim and Release. HasVoted and Record read and write the
same entries without the atomicity.
*/
package ledger
