package match

import (
	"context"

	"github.com/fredrikw/dartkeeper/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_match

// Repository defines storage operations for players, match history and
// per-player best records. Implementations assume a single logical writer;
// readers may run concurrently with each other but are not isolated from an
// in-flight write.
type Repository interface {
	// Player operations
	GetOrCreatePlayer(ctx context.Context, name string) (int64, error)
	GetPlayers(ctx context.Context) ([]string, error)
	PlayerExists(ctx context.Context, name string) (bool, error)

	// Match history
	AddX01Match(ctx context.Context, record *entities.MatchRecord) (int64, error)
	AddRandomMatch(ctx context.Context, record *entities.MatchRecord) (int64, error)
	GetMatch(ctx context.Context, matchID int64) (*entities.MatchRecord, error)
	// GetPlayerMatchData pages a player's history newest-first. A
	// startMatchID of 0 starts from the most recent match; a pageSize of 0
	// returns everything. Unknown players get an empty page.
	GetPlayerMatchData(ctx context.Context, name string, startMatchID int64, pageSize int) ([]*entities.MatchRecord, error)
	GetNumberOfGamesPlayed(ctx context.Context, name string) (int, error)
	GetNumberOfGamesWon(ctx context.Context, name string) (int, error)

	// Best records
	GetStatistics(ctx context.Context, playerID int64) (*entities.PlayerStatistics, error)
	SaveStatistics(ctx context.Context, stats *entities.PlayerStatistics) error
	GetPlayerX01Wins(ctx context.Context, playerID int64) ([]*entities.MatchRecord, error)

	// Reopen swaps the active store file: the current handle is closed and
	// the repository reopens against the given path.
	Reopen(dbPath string) error

	// Close closes any resources used by the repository
	Close() error
}
