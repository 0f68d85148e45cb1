package score

import (
	"testing"

	"github.com/fredrikw/dartkeeper/internal/types"
	"github.com/stretchr/testify/suite"
)

type X01LedgerSuite struct {
	suite.Suite
}

func TestX01LedgerSuite(t *testing.T) {
	suite.Run(t, new(X01LedgerSuite))
}

func (s *X01LedgerSuite) TestNewX01Ledger() {
	ledger, err := NewX01Ledger(5, false)
	s.NoError(err)
	s.Equal(501, ledger.Remaining())
	s.Zero(ledger.Turns())
	s.False(ledger.CheckedOut())

	ledger, err = NewX01Ledger(3, true)
	s.NoError(err)
	s.Equal(301, ledger.Remaining())
	s.True(ledger.DoubleOut())
}

func (s *X01LedgerSuite) TestNewX01LedgerRejectsUnknownFamily() {
	for _, family := range []int{0, 1, 2, 4, 7} {
		_, err := NewX01Ledger(family, false)
		s.Error(err, "family %d should be rejected", family)
		s.True(types.IsGameError(err, types.ErrInvalidArgument))
	}
}

func (s *X01LedgerSuite) TestApplyTurnValidatesScoreRange() {
	ledger, _ := NewX01Ledger(5, false)

	for _, scored := range []int{-1, 181, 500} {
		err := ledger.ApplyTurn(scored, false)
		s.Error(err, "score %d should be rejected", scored)
		s.True(types.IsGameError(err, types.ErrInvalidScore))
	}

	// Nothing was recorded
	s.Equal(501, ledger.Remaining())
	s.Zero(ledger.Turns())
}

func (s *X01LedgerSuite) TestApplyTurnSubtracts() {
	ledger, _ := NewX01Ledger(5, false)

	s.NoError(ledger.ApplyTurn(140, false))
	s.Equal(361, ledger.Remaining())
	s.Equal(1, ledger.Turns())
	s.Equal(140, ledger.MaxScore())

	s.NoError(ledger.ApplyTurn(60, false))
	s.Equal(301, ledger.Remaining())
	s.Equal(2, ledger.Turns())
	s.Equal(140, ledger.MaxScore())
}

func (s *X01LedgerSuite) TestBustProperties() {
	testCases := []struct {
		name      string
		remaining int
		scored    int
	}{
		{name: "Overshoot", remaining: 32, scored: 60},
		{name: "Remainder of one", remaining: 41, scored: 40},
		{name: "Large overshoot", remaining: 2, scored: 180},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			ledger, _ := NewX01Ledger(3, false)
			s.NoError(ledger.ApplyTurn(301-tc.remaining, false))
			turnsBefore := ledger.Turns()

			s.NoError(ledger.ApplyTurn(tc.scored, false))

			s.Equal(tc.remaining, ledger.Remaining(), "bust should not change remaining")
			s.Equal(turnsBefore+1, ledger.Turns(), "bust should still count the turn")
			s.False(ledger.CheckedOut())

			history := ledger.History()
			s.True(history[len(history)-1].Bust, "last turn should carry a bust marker")
		})
	}
}

func (s *X01LedgerSuite) TestDoubleOutBust() {
	ledger, _ := NewX01Ledger(3, true)
	s.NoError(ledger.ApplyTurn(261, true))
	s.Equal(40, ledger.Remaining())

	// Reaching zero without the finishing double busts
	s.NoError(ledger.ApplyTurn(40, false))
	s.Equal(40, ledger.Remaining(), "remaining should be unchanged after a double-out bust")
	s.Equal(2, ledger.Turns())
	s.False(ledger.CheckedOut())

	// The same score with the double flag checks out
	s.NoError(ledger.ApplyTurn(40, true))
	s.Zero(ledger.Remaining())
	s.True(ledger.CheckedOut())
	s.Equal(40, ledger.Checkout())
}

func (s *X01LedgerSuite) TestCheckoutWithoutDoubleOut() {
	ledger, _ := NewX01Ledger(3, false)
	s.NoError(ledger.ApplyTurn(180, false))
	s.NoError(ledger.ApplyTurn(121, false))

	s.True(ledger.CheckedOut())
	s.Zero(ledger.Remaining())
	s.Equal(121, ledger.Checkout())
	s.Equal(2, ledger.Turns())
}

func (s *X01LedgerSuite) TestApplyTurnAfterCheckout() {
	ledger, _ := NewX01Ledger(3, false)
	s.NoError(ledger.ApplyTurn(180, false))
	s.NoError(ledger.ApplyTurn(121, false))

	err := ledger.ApplyTurn(20, false)
	s.Error(err)
	s.True(types.IsGameError(err, types.ErrMatchFinished))
	s.Equal(2, ledger.Turns(), "rejected turn should not be recorded")
}

func (s *X01LedgerSuite) TestFiveHundredOneCheckoutScenario() {
	// 501 double-out: [140, 100, 100, 95, 66] finishes on turn 5
	ledger, err := NewX01Ledger(5, true)
	s.NoError(err)

	for _, scored := range []int{140, 100, 100, 95} {
		s.NoError(ledger.ApplyTurn(scored, false))
	}
	s.Equal(66, ledger.Remaining())

	s.NoError(ledger.ApplyTurn(66, true))
	s.True(ledger.CheckedOut())
	s.Equal(66, ledger.Checkout())
	s.Equal(5, ledger.Turns())
	s.Equal(140, ledger.MaxScore())
	s.InDelta(100.2, ledger.Average(), 0.0001)
}

func (s *X01LedgerSuite) TestAverageCountsBustTurns() {
	ledger, _ := NewX01Ledger(3, false)
	s.NoError(ledger.ApplyTurn(100, false))
	s.NoError(ledger.ApplyTurn(180, false))
	s.Equal(21, ledger.Remaining())
	s.NoError(ledger.ApplyTurn(60, false)) // bust
	s.Equal(21, ledger.Remaining())

	// 280 points over 3 turns
	s.InDelta(280.0/3.0, ledger.Average(), 0.0001)
}

func (s *X01LedgerSuite) TestApplyScoresReplaysLivePlay() {
	// Live play with a double-out bust in the middle
	live, _ := NewX01Ledger(3, true)
	s.NoError(live.ApplyTurn(180, false))
	s.NoError(live.ApplyTurn(81, false))
	s.NoError(live.ApplyTurn(40, false)) // reaches zero without a double: bust
	s.NoError(live.ApplyTurn(40, true))
	s.True(live.CheckedOut())

	// Replaying the stored sequence re-derives the same state
	replayed, _ := NewX01Ledger(3, true)
	s.NoError(replayed.ApplyScores(live.Scores(), true))

	s.Equal(live.Remaining(), replayed.Remaining())
	s.Equal(live.Turns(), replayed.Turns())
	s.Equal(live.MaxScore(), replayed.MaxScore())
	s.Equal(live.Checkout(), replayed.Checkout())
	s.Equal(live.Average(), replayed.Average())
	s.Equal(live.History(), replayed.History())
}

func (s *X01LedgerSuite) TestApplyScoresRejectsScoresAfterCheckout() {
	ledger, _ := NewX01Ledger(3, false)
	err := ledger.ApplyScores([]int{180, 121, 20}, true)
	s.Error(err)
	s.True(types.IsGameError(err, types.ErrMatchFinished))
}

func (s *X01LedgerSuite) TestApplyScoresReplaysLoserFinalBust() {
	// A losing sequence that ends on a double-out bust at exactly zero:
	// 301 - 100 - 161 leaves 40, then 40 without a double busts.
	replayed, _ := NewX01Ledger(3, true)
	s.NoError(replayed.ApplyScores([]int{100, 161, 40}, false))

	s.False(replayed.CheckedOut(), "a loser's final zero-reach is a bust, not a checkout")
	s.Equal(40, replayed.Remaining())
	s.Equal(3, replayed.Turns())
	s.Zero(replayed.Checkout())
	s.InDelta(87.0, replayed.Average(), 0.0001)

	history := replayed.History()
	s.True(history[len(history)-1].Bust)

	// The same sequence replayed as the winner's checks out
	won, _ := NewX01Ledger(3, true)
	s.NoError(won.ApplyScores([]int{100, 161, 40}, true))
	s.True(won.CheckedOut())
	s.Equal(40, won.Checkout())
}
