// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQL is a ledger backed by the vote table from package db.
type SQL struct {
	db *sql.DB
}

func NewSQL(db *sql.DB) *SQL {
	return &SQL{db: db}
}

func (l *SQL) HasVoted(ctx context.Context, messageTS, userID string) (bool, error) {
	var exists bool
	err := l.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM vote
			WHERE message_ts = ? AND user_id = ?
		)
	`, messageTS, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to query vote: %w", err)
	}
	return exists, nil
}

func (l *SQL) Record(ctx context.Context, messageTS, userID string) error {
	_, err := l.Claim(ctx, messageTS, userID)
	return err
}

// Claim inserts the vote and reports whether the row is new
func (l *SQL) Claim(ctx context.Context, messageTS, userID string) (bool, error) {
	res, err := l.db.ExecContext(ctx, `
		INSERT INTO vote (message_ts, user_id, voted_at)
		VALUES (?, ?, ?)
		ON CONFLICT (message_ts, user_id) DO NOTHING
	`, messageTS, userID, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to insert vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n == 1, nil
}

func (l *SQL) Release(ctx context.Context, messageTS, userID string) error {
	_, err := l.db.ExecContext(ctx, `
		DELETE FROM vote WHERE message_ts = ? AND user_id = ?
	`, messageTS, userID)
	if err != nil {
		return fmt.Errorf("failed to delete vote: %w", err)
	}
	return nil
}

func (l *SQL) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := l.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT message_ts), COUNT(*) FROM vote
	`).Scan(&st.Messages, &st.Votes)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to count votes: %w", err)
	}
	return st, nil
}
