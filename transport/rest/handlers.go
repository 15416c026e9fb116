package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const (
	orderAscending  = "asc"
	orderDescending = "desc"
)

type sessionUseCase interface {
	NewSession(ctx context.Context) (*usecase.Session, error)
	GetSession(ctx context.Context, id string) (*usecase.Session, error)
	MakeMove(ctx context.Context, id string, cell int) (*usecase.Session, bool, error)
	JumpTo(ctx context.Context, id string, index int) (*usecase.Session, bool, error)
	EndSession(ctx context.Context, id string) error
}

type moveRequest struct {
	Cell *int `json:"cell"`
}

type jumpRequest struct {
	Index *int `json:"index"`
}

type sessionResponse struct {
	ID         string               `json:"id"`
	Accepted   *bool                `json:"accepted,omitempty"`
	Grid       entity.Grid          `json:"grid"`
	Status     string               `json:"status"`
	Phase      entity.Phase         `json:"phase"`
	Winner     *entity.WinResult    `json:"winner,omitempty"`
	NextPlayer entity.Cell          `json:"next_player"`
	Current    int                  `json:"current"`
	Moves      []tictactoe.MoveView `json:"moves"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger   *slog.Logger
	sessions sessionUseCase
}

func newHandlers(logger *slog.Logger, sessions sessionUseCase) *handlers {
	return &handlers{
		logger:   logger.With("component", "rest"),
		sessions: sessions,
	}
}

func (that *handlers) createSession(w http.ResponseWriter, r *http.Request) {
	session, err := that.sessions.NewSession(r.Context())
	if err != nil {
		that.writeError(w, "createSession", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, newSessionResponse(session, true, nil))
}

func (that *handlers) getSession(w http.ResponseWriter, r *http.Request) {
	ascending, ok := parseOrder(r)
	if !ok {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "order must be asc or desc"})
		return
	}

	session, err := that.sessions.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "getSession", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newSessionResponse(session, ascending, nil))
}

func (that *handlers) makeMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "cell is required"})
		return
	}

	ascending, ok := parseOrder(r)
	if !ok {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "order must be asc or desc"})
		return
	}

	session, accepted, err := that.sessions.MakeMove(r.Context(), chi.URLParam(r, "id"), *req.Cell)
	if err != nil {
		that.writeError(w, "makeMove", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newSessionResponse(session, ascending, &accepted))
}

func (that *handlers) jumpTo(w http.ResponseWriter, r *http.Request) {
	var req jumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Index == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "index is required"})
		return
	}

	ascending, ok := parseOrder(r)
	if !ok {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "order must be asc or desc"})
		return
	}

	session, accepted, err := that.sessions.JumpTo(r.Context(), chi.URLParam(r, "id"), *req.Index)
	if err != nil {
		that.writeError(w, "jumpTo", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newSessionResponse(session, ascending, &accepted))
}

func (that *handlers) endSession(w http.ResponseWriter, r *http.Request) {
	if err := that.sessions.EndSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, "endSession", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func newSessionResponse(session *usecase.Session, ascending bool, accepted *bool) sessionResponse {
	game := session.Game

	resp := sessionResponse{
		ID:         session.ID,
		Accepted:   accepted,
		Grid:       game.CurrentGrid(),
		Status:     game.Status(),
		Phase:      game.Phase(),
		NextPlayer: game.NextPlayer(),
		Current:    game.CurrentIndex(),
		Moves:      game.MovesView(ascending),
	}

	if result, ok := entity.Evaluate(resp.Grid); ok {
		resp.Winner = &result
		resp.NextPlayer = entity.EmptyCell
	} else if resp.Phase == entity.PhaseDrawn {
		resp.NextPlayer = entity.EmptyCell
	}

	return resp
}

// parseOrder - reads ?order=asc|desc, ascending when absent.
func parseOrder(r *http.Request) (bool, bool) {
	switch r.URL.Query().Get("order") {
	case "", orderAscending:
		return true, true
	case orderDescending:
		return false, true
	default:
		return false, false
	}
}

func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	if errors.Is(err, apperror.ErrSessionNotFound) {
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: apperror.ErrSessionNotFound.Error()})
		return
	}

	that.logger.Error("request failed", "method", method, "error", err)
	that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
