package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type memoryRecord struct {
	data      []byte
	expiresAt time.Time
}

// memorySession keeps encoded snapshots so callers never share a stored history.
type memorySession struct {
	mu      sync.Mutex
	records map[string]memoryRecord
	ttl     time.Duration
	now     func() time.Time
}

func NewMemorySessionRepository(ttl time.Duration) SessionRepository {
	return &memorySession{
		records: make(map[string]memoryRecord),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (that *memorySession) CreateOrUpdate(_ context.Context, id string, game *tictactoe.GameHistory) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	record := memoryRecord{data: gameJSON}
	if that.ttl > 0 {
		record.expiresAt = that.now().Add(that.ttl)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.records[id] = record

	return nil
}

func (that *memorySession) GetByID(_ context.Context, id string) (*tictactoe.GameHistory, error) {
	that.mu.Lock()
	record, ok := that.lookup(id)
	that.mu.Unlock()

	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	game := &tictactoe.GameHistory{}
	if err := json.Unmarshal(record.data, game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return game, nil
}

func (that *memorySession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.lookup(id); !ok {
		return apperror.ErrSessionNotFound
	}

	delete(that.records, id)

	return nil
}

// lookup - must be called with mu held. Expired records are dropped on access.
func (that *memorySession) lookup(id string) (memoryRecord, bool) {
	record, ok := that.records[id]
	if !ok {
		return memoryRecord{}, false
	}

	if !record.expiresAt.IsZero() && !that.now().Before(record.expiresAt) {
		delete(that.records, id)
		return memoryRecord{}, false
	}

	return record, true
}
