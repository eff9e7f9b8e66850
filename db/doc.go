// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles the SQL schema for the SQLite-backed vote ledger.

# Opening

OpenMemory returns a ready-to-use in-memory database:

	conn, err := db.OpenMemory()
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

The database lives only as long as the process. Nothing is written to disk.

# Schema Creation

CreateSchema is safe to call multiple times - uses IF NOT EXISTS for all
tables and indexes.

# Tables

  - vote: (message_ts, user_id) primary key, voted_at timestamp

The primary key is what makes a claim atomic: a second insert of the same
pair is ignored by INSERT ... ON CONFLICT DO NOTHING.
*/
package db
