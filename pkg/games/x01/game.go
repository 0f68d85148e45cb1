package x01

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
	ledger *score.X01Ledger
}

// Game runs a single X01 match for one or more players. Turns rotate through
// the players in the order they were passed in; the first checkout wins and
// ends the match immediately.
type Game struct {
	ID      string
	state   GameState
	family  int
	players []*player
	current int
	winner  int
	mu      sync.RWMutex
}

// NewGame creates an X01 game for the given players. family selects the
// starting score (3 for 301, 5 for 501) and doubleOut the finishing rule.
// Player names must be non-empty and unique within the game.
func NewGame(playerNames []string, family int, doubleOut bool) (*Game, error) {
	if len(playerNames) < 1 {
		return nil, types.NewGameError(types.ErrNotEnoughPlayers, "need at least 1 player")
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

		ledger, err := score.NewX01Ledger(family, doubleOut)
		if err != nil {
			return nil, err
		}
		players = append(players, &player{name: name, ledger: ledger})
	}

	return &Game{
		ID:      uuid.New().String(),
		state:   StateCreated,
		family:  family,
		players: players,
		winner:  -1,
	}, nil
}

// CurrentPlayer returns the name of the player whose turn it is
func (g *Game) CurrentPlayer() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.players[g.current].name
}

// ApplyTurn submits the current player's turn score and advances the turn
// order. finishingDouble reports whether the final dart landed in a double
// segment. A checkout finishes the match with the current player as winner.
func (g *Game) ApplyTurn(scored int, finishingDouble bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state {
	case StateCreated:
		g.state = StatePlaying
	case StatePlaying:
	case StateFinished:
		return types.NewGameError(types.ErrMatchFinished, "the match is already won")
	case StateAbandoned:
		return types.NewGameError(types.ErrMatchAbandoned, "the match was abandoned")
	}

	p := g.players[g.current]
	if err := p.ledger.ApplyTurn(scored, finishingDouble); err != nil {
		return err
	}

	if p.ledger.CheckedOut() {
		g.state = StateFinished
		g.winner = g.current
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
		return types.NewGameError(types.ErrMatchFinished, "a won match cannot be abandoned")
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

	// Every ledger shares the game's finishing rule
	doubleOut := g.players[0].ledger.DoubleOut()

	snapshots := make([]*entities.PlayerSnapshot, 0, len(g.players))
	for _, p := range g.players {
		snapshots = append(snapshots, &entities.PlayerSnapshot{
			Name:       p.name,
			Scores:     p.ledger.Scores(),
			Turns:      p.ledger.Turns(),
			Remaining:  p.ledger.Remaining(),
			Average:    p.ledger.Average(),
			MaxScore:   p.ledger.MaxScore(),
			CheckedOut: p.ledger.CheckedOut(),
			Checkout:   p.ledger.Checkout(),
		})
	}

	return &entities.MatchRecord{
		Date:    time.Now(),
		Type:    entities.GameTypeX01,
		Winner:  g.players[g.winner].name,
		Players: snapshots,
		X01: &entities.X01Detail{
			TargetFamily: g.family,
			DoubleOut:    doubleOut,
		},
	}, nil
}
