package entities

import "fmt"

// GameType identifies the rule set a match was played under. It is a closed
// set: every switch over a GameType must handle all constants below.
type GameType int

const (
	GameTypeX01 GameType = iota
	GameTypeRandom
)

// Tags used in the game_type column.
const (
	gameTypeTagX01    = "x01"
	gameTypeTagRandom = "random"
)

// String returns the storage tag for the game type
func (t GameType) String() string {
	switch t {
	case GameTypeX01:
		return gameTypeTagX01
	case GameTypeRandom:
		return gameTypeTagRandom
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// ParseGameType converts a storage tag back into a GameType
func ParseGameType(tag string) (GameType, error) {
	switch tag {
	case gameTypeTagX01:
		return GameTypeX01, nil
	case gameTypeTagRandom:
		return GameTypeRandom, nil
	default:
		return 0, fmt.Errorf("unknown game type %q", tag)
	}
}
