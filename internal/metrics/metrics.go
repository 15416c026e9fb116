package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const namespace = "tictactoe"

type Metrics struct {
	SessionsCreated prometheus.Counter
	MovesAccepted   prometheus.Counter
	MovesRejected   *prometheus.CounterVec
	Jumps           *prometheus.CounterVec
}

// New - creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      "Number of game sessions started.",
		}),
		MovesAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_accepted_total",
			Help:      "Number of moves applied to a game history.",
		}),
		MovesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_rejected_total",
			Help:      "Number of rejected moves by reason.",
		}, []string{"reason"}),
		Jumps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jumps_total",
			Help:      "Number of history jumps by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.SessionsCreated, m.MovesAccepted, m.MovesRejected, m.Jumps)

	return m
}

// RejectReason - the label value for a move rejection error.
func RejectReason(err error) string {
	switch {
	case errors.Is(err, apperror.ErrInvalidCell):
		return "invalid_cell"
	case errors.Is(err, apperror.ErrCellOccupied):
		return "cell_occupied"
	case errors.Is(err, apperror.ErrGameFinished):
		return "game_finished"
	default:
		return "unknown"
	}
}

func JumpOutcome(accepted bool) string {
	if accepted {
		return "accepted"
	}
	return "rejected"
}
