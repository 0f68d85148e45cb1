package statistics

import (
	"context"
	"fmt"

	"github.com/fredrikw/dartkeeper/internal/types"
	"github.com/fredrikw/dartkeeper/pkg/entities"
	"github.com/fredrikw/dartkeeper/pkg/repositories/match"
)

// Service maintains each player's best-ever records: highest checkout,
// fewest turns to win a 301 and fewest turns to win a 501. The records are
// pointers into match history; metrics are always re-derived by replaying
// the pointed-to match, never read from cached numbers.
type Service struct {
	repository match.Repository
}

// NewService creates a new statistics service
func NewService(repository match.Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// AddX01Match commits a finished X01 match and folds it into the winner's
// best records. The returned id identifies the committed match.
func (s *Service) AddX01Match(ctx context.Context, record *entities.MatchRecord) (int64, error) {
	matchID, err := s.repository.AddX01Match(ctx, record)
	if err != nil {
		return 0, err
	}

	committed := *record
	committed.ID = matchID
	if err := s.OnMatchCommitted(ctx, &committed); err != nil {
		return matchID, err
	}
	return matchID, nil
}

// AddRandomMatch commits a finished random match. Random matches carry no
// best records, so only the commit happens.
func (s *Service) AddRandomMatch(ctx context.Context, record *entities.MatchRecord) (int64, error) {
	return s.repository.AddRandomMatch(ctx, record)
}

// OnMatchCommitted compares a freshly committed match against the winner's
// stored bests and moves the pointers that are strictly beaten. Ties keep
// the earlier-recorded match.
func (s *Service) OnMatchCommitted(ctx context.Context, record *entities.MatchRecord) error {
	switch record.Type {
	case entities.GameTypeRandom:
		return nil
	case entities.GameTypeX01:
	default:
		return types.NewGameError(types.ErrInternalError,
			fmt.Sprintf("unhandled game type %v", record.Type))
	}

	if record.ID == 0 {
		return types.NewGameError(types.ErrInvalidArgument, "record has not been committed")
	}
	winner := record.WinnerSnapshot()
	if winner == nil || !winner.CheckedOut {
		return types.NewGameError(types.ErrMatchCorrupt,
			fmt.Sprintf("match %d winner %q has no checkout", record.ID, record.Winner))
	}

	playerID, err := s.repository.GetOrCreatePlayer(ctx, record.Winner)
	if err != nil {
		return err
	}
	stats, err := s.repository.GetStatistics(ctx, playerID)
	if err != nil {
		return err
	}

	changed := false

	// Highest checkout
	better, err := s.beatsCheckout(ctx, stats.HighestCheckoutMatchID, winner.Checkout)
	if err != nil {
		return err
	}
	if better {
		id := record.ID
		stats.HighestCheckoutMatchID = &id
		changed = true
	}

	// Fewest turns for the match's target family
	family := record.X01.TargetFamily
	better, err = s.beatsTurns(ctx, stats.FewestTurnsMatchID(family), winner.Turns)
	if err != nil {
		return err
	}
	if better {
		id := record.ID
		stats.SetFewestTurnsMatchID(family, &id)
		changed = true
	}

	if !changed {
		return nil
	}
	return s.repository.SaveStatistics(ctx, stats)
}

// beatsCheckout reports whether a checkout strictly beats the pointed-to
// best. The stored best is re-derived by replay before comparing.
func (s *Service) beatsCheckout(ctx context.Context, bestMatchID *int64, checkout int) (bool, error) {
	if bestMatchID == nil {
		return true, nil
	}
	best, err := s.repository.GetMatch(ctx, *bestMatchID)
	if err != nil {
		return false, err
	}
	winner := best.WinnerSnapshot()
	if winner == nil || !winner.CheckedOut {
		return false, types.NewGameError(types.ErrMatchCorrupt,
			fmt.Sprintf("best-record match %d has no checkout", *bestMatchID))
	}
	return checkout > winner.Checkout, nil
}

// beatsTurns reports whether a turn count strictly beats the pointed-to best
func (s *Service) beatsTurns(ctx context.Context, bestMatchID *int64, turns int) (bool, error) {
	if bestMatchID == nil {
		return true, nil
	}
	best, err := s.repository.GetMatch(ctx, *bestMatchID)
	if err != nil {
		return false, err
	}
	winner := best.WinnerSnapshot()
	if winner == nil || !winner.CheckedOut {
		return false, types.NewGameError(types.ErrMatchCorrupt,
			fmt.Sprintf("best-record match %d has no checkout", *bestMatchID))
	}
	return turns < winner.Turns, nil
}

// Refresh rescans a player's entire match history and recomputes all three
// best pointers from scratch. Running it twice in a row yields identical
// pointers. Unknown players are a no-op.
func (s *Service) Refresh(ctx context.Context, name string) error {
	exists, err := s.repository.PlayerExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	playerID, err := s.repository.GetOrCreatePlayer(ctx, name)
	if err != nil {
		return err
	}
	wins, err := s.repository.GetPlayerX01Wins(ctx, playerID)
	if err != nil {
		return err
	}

	stats := &entities.PlayerStatistics{PlayerID: playerID}
	var bestCheckout, bestTurns301, bestTurns501 int
	for _, win := range wins {
		winner := win.WinnerSnapshot()
		if winner == nil || !winner.CheckedOut {
			return types.NewGameError(types.ErrMatchCorrupt,
				fmt.Sprintf("match %d winner %q has no checkout", win.ID, win.Winner))
		}

		if stats.HighestCheckoutMatchID == nil || winner.Checkout > bestCheckout {
			id := win.ID
			stats.HighestCheckoutMatchID = &id
			bestCheckout = winner.Checkout
		}

		family := win.X01.TargetFamily
		switch family {
		case 3:
			if stats.FewestTurns301MatchID == nil || winner.Turns < bestTurns301 {
				id := win.ID
				stats.FewestTurns301MatchID = &id
				bestTurns301 = winner.Turns
			}
		case 5:
			if stats.FewestTurns501MatchID == nil || winner.Turns < bestTurns501 {
				id := win.ID
				stats.FewestTurns501MatchID = &id
				bestTurns501 = winner.Turns
			}
		}
	}

	return s.repository.SaveStatistics(ctx, stats)
}

// GetHighestCheckoutGame returns the match holding a player's highest
// checkout, reconstructed by replay. Players without a record (or unknown
// players) get a nil record, not an error.
func (s *Service) GetHighestCheckoutGame(ctx context.Context, name string) (*entities.MatchRecord, error) {
	stats, err := s.playerStatistics(ctx, name)
	if err != nil || stats == nil {
		return nil, err
	}
	if stats.HighestCheckoutMatchID == nil {
		return nil, nil
	}
	return s.repository.GetMatch(ctx, *stats.HighestCheckoutMatchID)
}

// GetFewestTurnsGame returns the match holding a player's fewest-turns win
// for a target family (3 for 301, 5 for 501).
func (s *Service) GetFewestTurnsGame(ctx context.Context, name string, family int) (*entities.MatchRecord, error) {
	if family != 3 && family != 5 {
		return nil, types.NewGameError(types.ErrInvalidArgument,
			fmt.Sprintf("target family must be 3 or 5, got %d", family))
	}

	stats, err := s.playerStatistics(ctx, name)
	if err != nil || stats == nil {
		return nil, err
	}
	matchID := stats.FewestTurnsMatchID(family)
	if matchID == nil {
		return nil, nil
	}
	return s.repository.GetMatch(ctx, *matchID)
}

// playerStatistics loads a known player's statistics row, or nil for an
// unknown player.
func (s *Service) playerStatistics(ctx context.Context, name string) (*entities.PlayerStatistics, error) {
	exists, err := s.repository.PlayerExists(ctx, name)
	if err != nil || !exists {
		return nil, err
	}
	playerID, err := s.repository.GetOrCreatePlayer(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.repository.GetStatistics(ctx, playerID)
}
