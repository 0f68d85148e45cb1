package entities

// PlayerStatistics holds a player's best-ever match pointers. Each pointer is
// the id of a committed match, or nil when no qualifying match exists yet.
// The pointed-to metrics are always re-derived from the match scores on read,
// so only the ids are stored.
type PlayerStatistics struct {
	PlayerID               int64
	HighestCheckoutMatchID *int64
	FewestTurns301MatchID  *int64
	FewestTurns501MatchID  *int64
}

// FewestTurnsMatchID returns the fewest-turns pointer for a target family
// (3 for 301, 5 for 501), or nil for any other family.
func (s *PlayerStatistics) FewestTurnsMatchID(family int) *int64 {
	switch family {
	case 3:
		return s.FewestTurns301MatchID
	case 5:
		return s.FewestTurns501MatchID
	default:
		return nil
	}
}

// SetFewestTurnsMatchID sets the fewest-turns pointer for a target family.
// Families other than 3 and 5 are ignored.
func (s *PlayerStatistics) SetFewestTurnsMatchID(family int, matchID *int64) {
	switch family {
	case 3:
		s.FewestTurns301MatchID = matchID
	case 5:
		s.FewestTurns501MatchID = matchID
	}
}

// IsEmpty returns true when no best-ever pointer is set
func (s *PlayerStatistics) IsEmpty() bool {
	return s.HighestCheckoutMatchID == nil &&
		s.FewestTurns301MatchID == nil &&
		s.FewestTurns501MatchID == nil
}
