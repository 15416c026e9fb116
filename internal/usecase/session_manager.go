package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, id string, game *tictactoe.GameHistory) error
	GetByID(ctx context.Context, id string) (*tictactoe.GameHistory, error)
	DeleteByID(ctx context.Context, id string) error
}

// Session - a game history as handed to the transport layer.
type Session struct {
	ID   string
	Game *tictactoe.GameHistory
}

// SessionManager - loads a session, runs one history operation on it and saves it back.
// Mutations are serialized so two requests never interleave on the same history.
type SessionManager struct {
	logger  *slog.Logger
	repo    sessionRepo
	metrics *metrics.Metrics

	mu    sync.Mutex
	newID func() string
}

func NewSessionManager(logger *slog.Logger, repo sessionRepo, appMetrics *metrics.Metrics) *SessionManager {
	return &SessionManager{
		logger:  logger.With("component", "session_manager"),
		repo:    repo,
		metrics: appMetrics,
		newID:   uuid.NewString,
	}
}

func (that *SessionManager) NewSession(ctx context.Context) (*Session, error) {
	session := &Session{
		ID:   that.newID(),
		Game: tictactoe.NewGame(),
	}

	if err := that.repo.CreateOrUpdate(ctx, session.ID, session.Game); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.metrics.SessionsCreated.Inc()
	that.logger.Info("session created", "sessionID", session.ID)

	return session, nil
}

func (that *SessionManager) GetSession(ctx context.Context, id string) (*Session, error) {
	game, err := that.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed get session by id: %w", err)
	}

	return &Session{ID: id, Game: game}, nil
}

// MakeMove - applies a move at cell. A rejected move is not an error: accepted is false
// and the session comes back unchanged.
func (that *SessionManager) MakeMove(ctx context.Context, id string, cell int) (*Session, bool, error) {
	log := that.logger.With("method", "MakeMove", "sessionID", id, "cell", cell)

	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.GetSession(ctx, id)
	if err != nil {
		return nil, false, err
	}

	if reason := session.Game.CheckMove(cell); reason != nil {
		that.metrics.MovesRejected.WithLabelValues(metrics.RejectReason(reason)).Inc()
		log.Debug("move rejected", "reason", reason)

		return session, false, nil
	}

	session.Game.ApplyMove(cell)

	if err = that.repo.CreateOrUpdate(ctx, id, session.Game); err != nil {
		return nil, false, fmt.Errorf("failed update session: %w", err)
	}

	that.metrics.MovesAccepted.Inc()
	log.Debug("move applied", "moveIndex", session.Game.CurrentIndex(), "phase", session.Game.Phase())

	return session, true, nil
}

// JumpTo - moves the session's cursor to index. Out-of-range indexes are rejected without saving.
func (that *SessionManager) JumpTo(ctx context.Context, id string, index int) (*Session, bool, error) {
	log := that.logger.With("method", "JumpTo", "sessionID", id, "index", index)

	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.GetSession(ctx, id)
	if err != nil {
		return nil, false, err
	}

	accepted := session.Game.JumpTo(index)
	that.metrics.Jumps.WithLabelValues(metrics.JumpOutcome(accepted)).Inc()

	if !accepted {
		log.Debug("jump rejected", "historyLength", session.Game.Len())
		return session, false, nil
	}

	if err = that.repo.CreateOrUpdate(ctx, id, session.Game); err != nil {
		return nil, false, fmt.Errorf("failed update session: %w", err)
	}

	return session, true, nil
}

func (that *SessionManager) EndSession(ctx context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed delete session: %w", err)
	}

	that.logger.Info("session ended", "sessionID", id)

	return nil
}
