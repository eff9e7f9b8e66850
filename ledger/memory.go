// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"sync"

	"github.com/cespare/xxhash/v2"
)

const shardCount = 32

// Stats summarizes ledger contents
type Stats struct {
	Messages int `json:"messages"`
	Votes    int `json:"votes"`
}

type shard struct {
	mu     sync.Mutex
	voters map[string]map[string]struct{} // message_ts -> user ids
}

// Memory is a process-local ledger. Every message_ts maps to one shard, so
// all operations on a message serialize on the same lock.
// Entries are never evicted.
type Memory struct {
	shards [shardCount]shard
}

func NewMemory() *Memory {
	m := &Memory{}
	for i := range m.shards {
		m.shards[i].voters = make(map[string]map[string]struct{})
	}
	return m
}

func (m *Memory) shardFor(messageTS string) *shard {
	return &m.shards[xxhash.Sum64String(messageTS)%shardCount]
}

// HasVoted reports whether userID already voted on messageTS
func (m *Memory) HasVoted(_ context.Context, messageTS, userID string) (bool, error) {
	s := m.shardFor(messageTS)
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.voters[messageTS][userID]
	return ok, nil
}

// Record marks userID as having voted on messageTS
func (m *Memory) Record(_ context.Context, messageTS, userID string) error {
	s := m.shardFor(messageTS)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.add(messageTS, userID)
	return nil
}

// Claim records the vote only if it is not already present.
// Returns false when the user had already voted.
func (m *Memory) Claim(_ context.Context, messageTS, userID string) (bool, error) {
	s := m.shardFor(messageTS)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.voters[messageTS][userID]; ok {
		return false, nil
	}
	s.add(messageTS, userID)
	return true, nil
}

// Release removes a claim that was never committed
func (m *Memory) Release(_ context.Context, messageTS, userID string) error {
	s := m.shardFor(messageTS)
	s.mu.Lock()
	defer s.mu.Unlock()

	users, ok := s.voters[messageTS]
	if !ok {
		return nil
	}
	delete(users, userID)
	if len(users) == 0 {
		delete(s.voters, messageTS)
	}
	return nil
}

func (m *Memory) Stats(_ context.Context) (Stats, error) {
	var st Stats
	for i := range m.shards {
		s := &m.shards[i]
		s.mu.Lock()
		st.Messages += len(s.voters)
		for _, users := range s.voters {
			st.Votes += len(users)
		}
		s.mu.Unlock()
	}
	return st, nil
}

func (s *shard) add(messageTS, userID string) {
	users, ok := s.voters[messageTS]
	if !ok {
		users = make(map[string]struct{})
		s.voters[messageTS] = users
	}
	users[userID] = struct{}{}
}
