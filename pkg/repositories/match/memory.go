package match

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fredrikw/dartkeeper/internal/types"
	"github.com/fredrikw/dartkeeper/pkg/entities"
)

// storedMatch keeps only the raw rows of a committed match; derived values
// are replayed on read just like the SQLite implementation does.
type storedMatch struct {
	id      int64
	date    time.Time
	kind    entities.GameType
	winner  string
	players []playerScores
	x01     *entities.X01Detail
	random  *entities.RandomDetail
}

// MemoryRepository implements the Repository interface with in-memory maps.
// Data is lost when Reopen is called or the process exits.
type MemoryRepository struct {
	mu          sync.RWMutex
	playersByID map[int64]string
	playerIDs   map[string]int64
	playerOrder []string
	matches     map[int64]*storedMatch
	matchOrder  []int64
	statistics  map[int64]*entities.PlayerStatistics
	nextPlayer  int64
	nextMatch   int64
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	r := &MemoryRepository{}
	r.reset()
	return r
}

func (r *MemoryRepository) reset() {
	r.playersByID = make(map[int64]string)
	r.playerIDs = make(map[string]int64)
	r.playerOrder = nil
	r.matches = make(map[int64]*storedMatch)
	r.matchOrder = nil
	r.statistics = make(map[int64]*entities.PlayerStatistics)
	r.nextPlayer = 0
	r.nextMatch = 0
}

// GetOrCreatePlayer looks a player up by name, creating one if unseen
func (r *MemoryRepository) GetOrCreatePlayer(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, types.NewGameError(types.ErrInvalidArgument, "player name must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getOrCreatePlayerLocked(name), nil
}

func (r *MemoryRepository) getOrCreatePlayerLocked(name string) int64 {
	if id, ok := r.playerIDs[name]; ok {
		return id
	}
	r.nextPlayer++
	r.playerIDs[name] = r.nextPlayer
	r.playersByID[r.nextPlayer] = name
	r.playerOrder = append(r.playerOrder, name)
	return r.nextPlayer
}

// GetPlayers returns the names of all known players
func (r *MemoryRepository) GetPlayers(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.playerOrder))
	copy(names, r.playerOrder)
	return names, nil
}

// PlayerExists reports whether a player with the given name is known
func (r *MemoryRepository) PlayerExists(ctx context.Context, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.playerIDs[name]
	return ok, nil
}

// AddX01Match commits a finished X01 match
func (r *MemoryRepository) AddX01Match(ctx context.Context, record *entities.MatchRecord) (int64, error) {
	if record.Type != entities.GameTypeX01 || record.X01 == nil {
		return 0, types.NewGameError(types.ErrInvalidArgument, "record is not an X01 match")
	}
	detail := *record.X01
	return r.addMatch(record, &detail, nil)
}

// AddRandomMatch commits a finished random match
func (r *MemoryRepository) AddRandomMatch(ctx context.Context, record *entities.MatchRecord) (int64, error) {
	if record.Type != entities.GameTypeRandom || record.Random == nil {
		return 0, types.NewGameError(types.ErrInvalidArgument, "record is not a random match")
	}
	detail := *record.Random
	return r.addMatch(record, nil, &detail)
}

func (r *MemoryRepository) addMatch(record *entities.MatchRecord, x01 *entities.X01Detail, random *entities.RandomDetail) (int64, error) {
	if record.WinnerSnapshot() == nil {
		return 0, types.NewGameError(types.ErrInvalidArgument,
			fmt.Sprintf("winner %q is not among the match players", record.Winner))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	players := make([]playerScores, 0, len(record.Players))
	for _, p := range record.Players {
		r.getOrCreatePlayerLocked(p.Name)
		scores := make([]int, len(p.Scores))
		copy(scores, p.Scores)
		players = append(players, playerScores{name: p.Name, scores: scores})
	}

	r.nextMatch++
	r.matches[r.nextMatch] = &storedMatch{
		id:      r.nextMatch,
		date:    record.Date,
		kind:    record.Type,
		winner:  record.Winner,
		players: players,
		x01:     x01,
		random:  random,
	}
	r.matchOrder = append(r.matchOrder, r.nextMatch)
	return r.nextMatch, nil
}

// GetMatch reconstructs a match record by replaying its stored scores
func (r *MemoryRepository) GetMatch(ctx context.Context, matchID int64) (*entities.MatchRecord, error) {
	r.mu.RLock()
	stored, ok := r.matches[matchID]
	r.mu.RUnlock()
	if !ok {
		return nil, types.NewGameError(types.ErrMatchNotFound,
			fmt.Sprintf("no match with id %d", matchID))
	}

	switch stored.kind {
	case entities.GameTypeX01:
		if stored.x01 == nil {
			return nil, types.NewGameError(types.ErrMatchCorrupt,
				fmt.Sprintf("match %d has no x01 detail", matchID))
		}
		return buildX01Record(stored.id, stored.date, stored.winner, stored.players, stored.x01)
	case entities.GameTypeRandom:
		if stored.random == nil {
			return nil, types.NewGameError(types.ErrMatchCorrupt,
				fmt.Sprintf("match %d has no random detail", matchID))
		}
		return buildRandomRecord(stored.id, stored.date, stored.winner, stored.players, stored.random)
	default:
		return nil, types.NewGameError(types.ErrInternalError,
			fmt.Sprintf("unhandled game type %v", stored.kind))
	}
}

// GetPlayerMatchData pages a player's match history newest-first
func (r *MemoryRepository) GetPlayerMatchData(ctx context.Context, name string, startMatchID int64, pageSize int) ([]*entities.MatchRecord, error) {
	r.mu.RLock()
	var matchIDs []int64
	for i := len(r.matchOrder) - 1; i >= 0; i-- {
		id := r.matchOrder[i]
		if startMatchID > 0 && id >= startMatchID {
			continue
		}
		if !r.matchHasPlayerLocked(id, name) {
			continue
		}
		matchIDs = append(matchIDs, id)
		if pageSize > 0 && len(matchIDs) == pageSize {
			break
		}
	}
	r.mu.RUnlock()

	records := make([]*entities.MatchRecord, 0, len(matchIDs))
	for _, id := range matchIDs {
		record, err := r.GetMatch(ctx, id)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *MemoryRepository) matchHasPlayerLocked(matchID int64, name string) bool {
	for _, p := range r.matches[matchID].players {
		if p.name == name {
			return true
		}
	}
	return false
}

// GetNumberOfGamesPlayed counts the matches a player took part in
func (r *MemoryRepository) GetNumberOfGamesPlayed(ctx context.Context, name string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, id := range r.matchOrder {
		if r.matchHasPlayerLocked(id, name) {
			count++
		}
	}
	return count, nil
}

// GetNumberOfGamesWon counts the matches a player has won
func (r *MemoryRepository) GetNumberOfGamesWon(ctx context.Context, name string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, stored := range r.matches {
		if stored.winner == name {
			count++
		}
	}
	return count, nil
}

// GetStatistics retrieves a player's best-record pointers
func (r *MemoryRepository) GetStatistics(ctx context.Context, playerID int64) (*entities.PlayerStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats, ok := r.statistics[playerID]
	if !ok {
		return &entities.PlayerStatistics{PlayerID: playerID}, nil
	}
	clone := *stats
	return &clone, nil
}

// SaveStatistics writes a player's best-record pointers
func (r *MemoryRepository) SaveStatistics(ctx context.Context, stats *entities.PlayerStatistics) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *stats
	r.statistics[stats.PlayerID] = &clone
	return nil
}

// GetPlayerX01Wins returns every X01 match the player has won, oldest first
func (r *MemoryRepository) GetPlayerX01Wins(ctx context.Context, playerID int64) ([]*entities.MatchRecord, error) {
	r.mu.RLock()
	name := r.playersByID[playerID]
	var matchIDs []int64
	for _, id := range r.matchOrder {
		stored := r.matches[id]
		if stored.kind == entities.GameTypeX01 && stored.winner == name {
			matchIDs = append(matchIDs, id)
		}
	}
	r.mu.RUnlock()

	records := make([]*entities.MatchRecord, 0, len(matchIDs))
	for _, id := range matchIDs {
		record, err := r.GetMatch(ctx, id)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Reopen discards all stored data, matching the file-swap semantics of the
// SQLite implementation as closely as an in-memory store can.
func (r *MemoryRepository) Reopen(dbPath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reset()
	return nil
}

// Close is a no-op for the memory repository
func (r *MemoryRepository) Close() error {
	return nil
}
