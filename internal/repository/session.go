package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type SessionRepository interface {
	CreateOrUpdate(ctx context.Context, id string, game *tictactoe.GameHistory) error
	GetByID(ctx context.Context, id string) (*tictactoe.GameHistory, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbSession struct {
	client    *redis.Client
	namespace string
	ttl       time.Duration
}

// NewSessionRepository - stores sessions in redis under keys scoped to namespace.
// A zero ttl keeps keys until they are deleted.
func NewSessionRepository(client *redis.Client, namespace string, ttl time.Duration) SessionRepository {
	return &dbSession{
		client:    client,
		namespace: namespace,
		ttl:       ttl,
	}
}

func (that *dbSession) key(id string) string {
	return "session:" + that.namespace + ":" + id
}

func (that *dbSession) CreateOrUpdate(ctx context.Context, id string, game *tictactoe.GameHistory) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	if err = that.client.Set(ctx, that.key(id), gameJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

func (that *dbSession) GetByID(ctx context.Context, id string) (*tictactoe.GameHistory, error) {
	response, err := that.client.Get(ctx, that.key(id)).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	game := &tictactoe.GameHistory{}
	if err = json.Unmarshal(response, game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return game, nil
}

func (that *dbSession) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, that.key(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrSessionNotFound
	}

	return nil
}
