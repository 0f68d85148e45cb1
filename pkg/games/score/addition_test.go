package score

import (
	"testing"

	"github.com/fredrikw/dartkeeper/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestAdditionLedgerAccumulates(t *testing.T) {
	ledger := NewAdditionLedger()

	assert.NoError(t, ledger.ApplyTurn(45))
	assert.NoError(t, ledger.ApplyTurn(0))
	assert.NoError(t, ledger.ApplyTurn(100))

	assert.Equal(t, 145, ledger.Total())
	assert.Equal(t, 3, ledger.Turns())
	assert.Equal(t, []int{45, 0, 100}, ledger.Scores())
	assert.Equal(t, 100, ledger.MaxScore())
	assert.InDelta(t, 145.0/3.0, ledger.Average(), 0.0001)
}

func TestAdditionLedgerValidatesScoreRange(t *testing.T) {
	ledger := NewAdditionLedger()

	for _, scored := range []int{-1, 181} {
		err := ledger.ApplyTurn(scored)
		assert.Error(t, err, "score %d should be rejected", scored)
		assert.True(t, types.IsGameError(err, types.ErrInvalidScore))
	}
	assert.Zero(t, ledger.Turns())
}

func TestAdditionLedgerReplay(t *testing.T) {
	live := NewAdditionLedger()
	for _, scored := range []int{60, 26, 41, 100} {
		assert.NoError(t, live.ApplyTurn(scored))
	}

	replayed := NewAdditionLedger()
	assert.NoError(t, replayed.ApplyScores(live.Scores()))

	assert.Equal(t, live.Total(), replayed.Total())
	assert.Equal(t, live.Turns(), replayed.Turns())
	assert.Equal(t, live.MaxScore(), replayed.MaxScore())
	assert.Equal(t, live.Average(), replayed.Average())
}

func TestAdditionLedgerEmptyAverage(t *testing.T) {
	assert.Zero(t, NewAdditionLedger().Average())
}
