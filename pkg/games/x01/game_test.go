package x01

import (
	"testing"

	"github.com/fredrikw/dartkeeper/internal/types"
	"github.com/fredrikw/dartkeeper/pkg/entities"
	"github.com/stretchr/testify/suite"
)

type GameSuite struct {
	suite.Suite
	game *Game
}

func (s *GameSuite) SetupTest() {
	game, err := NewGame([]string{"Ann", "Ben"}, 3, false)
	s.Require().NoError(err)
	s.game = game
}

func TestGameSuite(t *testing.T) {
	suite.Run(t, new(GameSuite))
}

func (s *GameSuite) TestNewGame() {
	s.NotEmpty(s.game.ID)
	s.Equal(StateCreated, s.game.State())
	s.Equal("Ann", s.game.CurrentPlayer())
	s.False(s.game.IsFinished())
}

func (s *GameSuite) TestNewGameValidation() {
	_, err := NewGame(nil, 3, false)
	s.True(types.IsGameError(err, types.ErrNotEnoughPlayers))

	_, err = NewGame([]string{"Ann", "Ann"}, 3, false)
	s.True(types.IsGameError(err, types.ErrDuplicatePlayer))

	_, err = NewGame([]string{"Ann", ""}, 3, false)
	s.True(types.IsGameError(err, types.ErrInvalidArgument))

	_, err = NewGame([]string{"Ann"}, 4, false)
	s.True(types.IsGameError(err, types.ErrInvalidArgument))
}

func (s *GameSuite) TestFirstTurnStartsTheMatch() {
	s.NoError(s.game.ApplyTurn(60, false))
	s.Equal(StatePlaying, s.game.State())
}

func (s *GameSuite) TestTurnOrderRotates() {
	s.Equal("Ann", s.game.CurrentPlayer())
	s.NoError(s.game.ApplyTurn(60, false))
	s.Equal("Ben", s.game.CurrentPlayer())
	s.NoError(s.game.ApplyTurn(45, false))
	s.Equal("Ann", s.game.CurrentPlayer())
}

func (s *GameSuite) TestBustRotatesToo() {
	s.NoError(s.game.ApplyTurn(180, false)) // Ann at 121
	s.NoError(s.game.ApplyTurn(60, false))  // Ben at 241
	s.NoError(s.game.ApplyTurn(180, false)) // Ann busts (121-180)
	s.Equal("Ben", s.game.CurrentPlayer())
}

func (s *GameSuite) TestCheckoutFinishesImmediately() {
	s.NoError(s.game.ApplyTurn(180, false)) // Ann at 121
	s.NoError(s.game.ApplyTurn(60, false))  // Ben at 241
	s.NoError(s.game.ApplyTurn(121, false)) // Ann checks out

	s.True(s.game.IsFinished())
	s.Equal(StateFinished, s.game.State())

	err := s.game.ApplyTurn(20, false)
	s.True(types.IsGameError(err, types.ErrMatchFinished))
}

func (s *GameSuite) TestInvalidScoreDoesNotAdvanceTurn() {
	err := s.game.ApplyTurn(200, false)
	s.True(types.IsGameError(err, types.ErrInvalidScore))
	s.Equal("Ann", s.game.CurrentPlayer())
	s.Equal(StateCreated, s.game.State())
}

func (s *GameSuite) TestAbandon() {
	s.NoError(s.game.ApplyTurn(60, false))
	s.NoError(s.game.Abandon())
	s.Equal(StateAbandoned, s.game.State())

	err := s.game.ApplyTurn(60, false)
	s.True(types.IsGameError(err, types.ErrMatchAbandoned))

	_, err = s.game.Result()
	s.Error(err)
}

func (s *GameSuite) TestAbandonAfterFinishRejected() {
	s.NoError(s.game.ApplyTurn(180, false))
	s.NoError(s.game.ApplyTurn(60, false))
	s.NoError(s.game.ApplyTurn(121, false))

	err := s.game.Abandon()
	s.True(types.IsGameError(err, types.ErrMatchFinished))
}

func (s *GameSuite) TestResultOnlyWhenFinished() {
	_, err := s.game.Result()
	s.Error(err)

	s.NoError(s.game.ApplyTurn(60, false))
	_, err = s.game.Result()
	s.Error(err)
}

func (s *GameSuite) TestResult() {
	s.NoError(s.game.ApplyTurn(180, false)) // Ann
	s.NoError(s.game.ApplyTurn(60, false))  // Ben
	s.NoError(s.game.ApplyTurn(121, false)) // Ann checks out

	record, err := s.game.Result()
	s.Require().NoError(err)

	s.Equal(entities.GameTypeX01, record.Type)
	s.Equal("Ann", record.Winner)
	s.Require().NotNil(record.X01)
	s.Equal(3, record.X01.TargetFamily)
	s.False(record.X01.DoubleOut)
	s.Nil(record.Random)
	s.False(record.Date.IsZero())

	s.Require().Len(record.Players, 2)
	ann := record.Players[0]
	s.Equal("Ann", ann.Name)
	s.Equal([]int{180, 121}, ann.Scores)
	s.Equal(2, ann.Turns)
	s.Zero(ann.Remaining)
	s.True(ann.CheckedOut)
	s.Equal(121, ann.Checkout)
	s.Equal(180, ann.MaxScore)
	s.InDelta(150.5, ann.Average, 0.0001)

	ben := record.Players[1]
	s.Equal("Ben", ben.Name)
	s.Equal([]int{60}, ben.Scores)
	s.Equal(241, ben.Remaining)
	s.False(ben.CheckedOut)
}

func (s *GameSuite) TestDoubleOutGame() {
	game, err := NewGame([]string{"Ann"}, 5, true)
	s.Require().NoError(err)

	for _, scored := range []int{140, 100, 100, 95} {
		s.NoError(game.ApplyTurn(scored, false))
	}

	// Reaching zero without the double busts and the game continues
	s.NoError(game.ApplyTurn(66, false))
	s.False(game.IsFinished())

	s.NoError(game.ApplyTurn(66, true))
	s.True(game.IsFinished())

	record, err := game.Result()
	s.Require().NoError(err)
	winner := record.WinnerSnapshot()
	s.Require().NotNil(winner)
	s.Equal(66, winner.Checkout)
	s.Equal(6, winner.Turns)
}

func (s *GameSuite) TestThreePlayers() {
	game, err := NewGame([]string{"Ann", "Ben", "Cleo"}, 3, false)
	s.Require().NoError(err)

	s.NoError(game.ApplyTurn(100, false))
	s.NoError(game.ApplyTurn(100, false))
	s.NoError(game.ApplyTurn(100, false))
	s.Equal("Ann", game.CurrentPlayer())
}
