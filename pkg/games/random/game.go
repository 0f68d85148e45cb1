package random

import (
	"fmt"
	"sync"
	"time"

	"github.com/fredrikw/dartkeeper/internal/types"
	"github.com/fredrikw/dartkeeper/pkg/entities"
	"github.com/fredrikw/dartkeeper/pkg/games/score"
	"github.com/google/uuid"
)

type GameState string

const (
	StateCreated   GameState = "created"
	StatePlaying   GameState = "playing"
	StateFinished  GameState = "finished"
	StateAbandoned GameState = "abandoned"
)

type player struct {
	name   string
	ledger *score.AdditionLedger
}

// Game runs a random-target practice match: players accumulate points for a
// fixed number of turns each, and the highest total wins. Ties keep the
// earlier player in turn order.
type Game struct {
	ID        string
	state     GameState
	turnLimit int
	players   []*player
	current   int
	mu        sync.RWMutex
}

// NewGame creates a random game where every player takes turnLimit turns
func NewGame(playerNames []string, turnLimit int) (*Game, error) {
	if len(playerNames) < 1 {
		return nil, types.NewGameError(types.ErrNotEnoughPlayers, "need at least 1 player")
	}
	if turnLimit < 1 {
		return nil, types.NewGameError(types.ErrInvalidArgument,
			fmt.Sprintf("turn limit must be at least 1, got %d", turnLimit))
	}

	seen := make(map[string]bool, len(playerNames))
	players := make([]*player, 0, len(playerNames))
	for _, name := range playerNames {
		if name == "" {
			return nil, types.NewGameError(types.ErrInvalidArgument, "player name must not be empty")
		}
		if seen[name] {
			return nil, types.NewGameError(types.ErrDuplicatePlayer,
				fmt.Sprintf("player %q appears more than once", name))
		}
		seen[name] = true
		players = append(players, &player{name: name, ledger: score.NewAdditionLedger()})
	}

	return &Game{
		ID:        uuid.New().String(),
		state:     StateCreated,
		turnLimit: turnLimit,
		players:   players,
	}, nil
}

// CurrentPlayer returns the name of the player whose turn it is
func (g *Game) CurrentPlayer() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.players[g.current].name
}

// ApplyTurn submits the current player's turn score and advances the turn
// order. The match finishes once every player has taken the configured
// number of turns.
func (g *Game) ApplyTurn(scored int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state {
	case StateCreated:
		g.state = StatePlaying
	case StatePlaying:
	case StateFinished:
		return types.NewGameError(types.ErrMatchFinished, "the match is already over")
	case StateAbandoned:
		return types.NewGameError(types.ErrMatchAbandoned, "the match was abandoned")
	}

	if err := g.players[g.current].ledger.ApplyTurn(scored); err != nil {
		return err
	}

	last := len(g.players) - 1
	if g.current == last && g.players[last].ledger.Turns() == g.turnLimit {
		g.state = StateFinished
		return nil
	}

	g.current = (g.current + 1) % len(g.players)
	return nil
}

// Abandon discards the game. Abandoned games never produce a match record.
func (g *Game) Abandon() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateFinished {
		return types.NewGameError(types.ErrMatchFinished, "a finished match cannot be abandoned")
	}
	g.state = StateAbandoned
	return nil
}

// State returns the current game state
func (g *Game) State() GameState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// IsFinished checks if the game is over
func (g *Game) IsFinished() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state == StateFinished
}

// Result emits the immutable record of a finished match, dated at the time
// of the call.
func (g *Game) Result() (*entities.MatchRecord, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.state != StateFinished {
		return nil, types.NewGameError(types.ErrMatchNotStarted,
			fmt.Sprintf("no result in state %q", g.state))
	}

	snapshots := make([]*entities.PlayerSnapshot, 0, len(g.players))
	winner := 0
	for i, p := range g.players {
		if p.ledger.Total() > g.players[winner].ledger.Total() {
			winner = i
		}
		snapshots = append(snapshots, &entities.PlayerSnapshot{
			Name:     p.name,
			Scores:   p.ledger.Scores(),
			Turns:    p.ledger.Turns(),
			Total:    p.ledger.Total(),
			Average:  p.ledger.Average(),
			MaxScore: p.ledger.MaxScore(),
		})
	}

	return &entities.MatchRecord{
		Date:    time.Now(),
		Type:    entities.GameTypeRandom,
		Winner:  g.players[winner].name,
		Players: snapshots,
		Random:  &entities.RandomDetail{Turns: g.turnLimit},
	}, nil
}
