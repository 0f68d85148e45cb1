package match

import (
	"fmt"
	"time"

	"github.com/fredrikw/dartkeeper/internal/types"
	"github.com/fredrikw/dartkeeper/pkg/entities"
	"github.com/fredrikw/dartkeeper/pkg/games/score"
)

// playerScores is one player's stored score sequence in turn order
type playerScores struct {
	name   string
	scores []int
}

// buildX01Record reconstructs a match record by replaying stored scores
// through the X01 ledger. Remaining, average, max score and checkout are
// re-derived on every read, never loaded as cached scalars. Replay failures
// and a winner that does not check out both mean the stored rows are corrupt.
func buildX01Record(id int64, date time.Time, winner string, players []playerScores, detail *entities.X01Detail) (*entities.MatchRecord, error) {
	if len(players) == 0 {
		return nil, types.NewGameError(types.ErrMatchCorrupt,
			fmt.Sprintf("match %d has no score entries", id))
	}

	snapshots := make([]*entities.PlayerSnapshot, 0, len(players))
	for _, p := range players {
		ledger, err := score.NewX01Ledger(detail.TargetFamily, detail.DoubleOut)
		if err != nil {
			return nil, types.WrapError(types.ErrMatchCorrupt,
				fmt.Sprintf("match %d has an invalid target family", id), err)
		}
		// Only the winner's sequence ends in a finish; a loser whose last
		// stored turn reached zero under double-out busted it.
		if err := ledger.ApplyScores(p.scores, p.name == winner); err != nil {
			return nil, types.WrapError(types.ErrMatchCorrupt,
				fmt.Sprintf("match %d has an unplayable score sequence for %s", id, p.name), err)
		}
		snapshots = append(snapshots, &entities.PlayerSnapshot{
			Name:       p.name,
			Scores:     p.scores,
			Turns:      ledger.Turns(),
			Remaining:  ledger.Remaining(),
			Average:    ledger.Average(),
			MaxScore:   ledger.MaxScore(),
			CheckedOut: ledger.CheckedOut(),
			Checkout:   ledger.Checkout(),
		})
	}

	record := &entities.MatchRecord{
		ID:      id,
		Date:    date,
		Type:    entities.GameTypeX01,
		Winner:  winner,
		Players: snapshots,
		X01:     detail,
	}

	ws := record.WinnerSnapshot()
	if ws == nil || !ws.CheckedOut {
		return nil, types.NewGameError(types.ErrMatchCorrupt,
			fmt.Sprintf("match %d winner %q has no checkout in its score entries", id, winner))
	}

	return record, nil
}

// buildRandomRecord reconstructs a random match record by replaying stored
// scores through the addition ledger.
func buildRandomRecord(id int64, date time.Time, winner string, players []playerScores, detail *entities.RandomDetail) (*entities.MatchRecord, error) {
	if len(players) == 0 {
		return nil, types.NewGameError(types.ErrMatchCorrupt,
			fmt.Sprintf("match %d has no score entries", id))
	}

	snapshots := make([]*entities.PlayerSnapshot, 0, len(players))
	for _, p := range players {
		ledger := score.NewAdditionLedger()
		if err := ledger.ApplyScores(p.scores); err != nil {
			return nil, types.WrapError(types.ErrMatchCorrupt,
				fmt.Sprintf("match %d has an unplayable score sequence for %s", id, p.name), err)
		}
		snapshots = append(snapshots, &entities.PlayerSnapshot{
			Name:     p.name,
			Scores:   p.scores,
			Turns:    ledger.Turns(),
			Total:    ledger.Total(),
			Average:  ledger.Average(),
			MaxScore: ledger.MaxScore(),
		})
	}

	record := &entities.MatchRecord{
		ID:      id,
		Date:    date,
		Type:    entities.GameTypeRandom,
		Winner:  winner,
		Players: snapshots,
		Random:  detail,
	}

	if record.WinnerSnapshot() == nil {
		return nil, types.NewGameError(types.ErrMatchCorrupt,
			fmt.Sprintf("match %d winner %q has no score entries", id, winner))
	}

	return record, nil
}

// interleaveScores flattens per-player score sequences into global turn
// order: turn by turn, players in play order. Players who finished the match
// with fewer turns simply stop contributing.
func interleaveScores(players []*entities.PlayerSnapshot) []scoreTurn {
	maxTurns := 0
	for _, p := range players {
		if len(p.Scores) > maxTurns {
			maxTurns = len(p.Scores)
		}
	}

	var ordered []scoreTurn
	for t := 0; t < maxTurns; t++ {
		for _, p := range players {
			if t < len(p.Scores) {
				ordered = append(ordered, scoreTurn{name: p.Name, score: p.Scores[t]})
			}
		}
	}
	return ordered
}

// scoreTurn is one globally ordered turn pending insertion
type scoreTurn struct {
	name  string
	score int
}
