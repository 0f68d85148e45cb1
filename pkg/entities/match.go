package entities

import "time"

// X01Detail holds the X01-specific metadata of a match. TargetFamily is the
// hundreds digit of the starting score, so 3 means 301 and 5 means 501.
type X01Detail struct {
	TargetFamily int
	DoubleOut    bool
}

// Target returns the starting score for the family (301, 501, ...)
func (d *X01Detail) Target() int {
	return d.TargetFamily*100 + 1
}

// RandomDetail holds the metadata of a random-target practice match
type RandomDetail struct {
	Turns int
}

// PlayerSnapshot captures one player's side of a finished match. The score
// sequence holds every submitted score in turn order, busts included; the
// derived fields (Remaining, Total, Average, MaxScore, Checkout) come from
// replaying that sequence through the score ledger, never from stored scalars.
type PlayerSnapshot struct {
	Name       string
	Scores     []int
	Turns      int
	Remaining  int // X01 only; 0 for the winner
	Total      int // Random only; cumulative score
	Average    float64
	MaxScore   int
	CheckedOut bool
	Checkout   int // final applied score, set when CheckedOut
}

// MatchRecord is the immutable result of a finished match. ID is zero until
// the record has been committed to a store. Exactly one of X01 and Random is
// set, matching Type.
type MatchRecord struct {
	ID      int64
	Date    time.Time
	Type    GameType
	Winner  string
	Players []*PlayerSnapshot // in play order
	X01     *X01Detail
	Random  *RandomDetail
}

// WinnerSnapshot returns the snapshot of the winning player, or nil if the
// winner is not among the players (which indicates corrupt data).
func (m *MatchRecord) WinnerSnapshot() *PlayerSnapshot {
	for _, p := range m.Players {
		if p.Name == m.Winner {
			return p
		}
	}
	return nil
}

// PlayerNames returns the names of all participants in play order
func (m *MatchRecord) PlayerNames() []string {
	names := make([]string, 0, len(m.Players))
	for _, p := range m.Players {
		names = append(names, p.Name)
	}
	return names
}
