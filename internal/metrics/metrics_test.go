package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
)

func TestRejectReason(t *testing.T) {
	assert.Equal(t, "invalid_cell", RejectReason(apperror.ErrInvalidCell))
	assert.Equal(t, "cell_occupied", RejectReason(fmt.Errorf("wrapped: %w", apperror.ErrCellOccupied)))
	assert.Equal(t, "game_finished", RejectReason(apperror.ErrGameFinished))
	assert.Equal(t, "unknown", RejectReason(errors.New("other")))
}

func TestNew(t *testing.T) {
	// Given: metrics on a private registry
	reg := prometheus.NewRegistry()
	m := New(reg)

	// When: counters are incremented
	m.MovesAccepted.Inc()
	m.MovesRejected.WithLabelValues(RejectReason(apperror.ErrCellOccupied)).Inc()
	m.Jumps.WithLabelValues(JumpOutcome(false)).Inc()

	// Then: the registry reports them
	assert.InDelta(t, 1, testutil.ToFloat64(m.MovesAccepted), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.MovesRejected.WithLabelValues("cell_occupied")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Jumps.WithLabelValues("rejected")), 0)
	assert.Equal(t, 4, testutil.CollectAndCount(m.SessionsCreated)+testutil.CollectAndCount(m.MovesAccepted)+
		testutil.CollectAndCount(m.MovesRejected)+testutil.CollectAndCount(m.Jumps))
}
