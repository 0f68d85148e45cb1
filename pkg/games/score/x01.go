package score

import (
	"fmt"

	"github.com/fredrikw/dartkeeper/internal/types"
)

// MaxTurnScore is the highest score three darts can produce
const MaxTurnScore = 180

// Turn is one entry in a ledger's history. Bust turns record the submitted
// score but apply no reduction.
type Turn struct {
	Score int
	Bust  bool
}

// X01Ledger applies the X01 scoring rules for a single player: start at
// 301 or 501 and subtract each turn's score until exactly zero is reached.
type X01Ledger struct {
	family    int
	doubleOut bool
	remaining int
	turns     []Turn
	maxScore  int
	finished  bool
}

// NewX01Ledger creates a ledger for the given target family (3 for 301,
// 5 for 501) and double-out rule.
func NewX01Ledger(family int, doubleOut bool) (*X01Ledger, error) {
	if family != 3 && family != 5 {
		return nil, types.NewGameError(types.ErrInvalidArgument,
			fmt.Sprintf("target family must be 3 or 5, got %d", family))
	}
	return &X01Ledger{
		family:    family,
		doubleOut: doubleOut,
		remaining: family*100 + 1,
	}, nil
}

// ApplyTurn applies a single turn's score. finishingDouble reports whether
// the last dart of the turn landed in a double segment; it is only consulted
// when the turn would reach exactly zero under the double-out rule.
func (l *X01Ledger) ApplyTurn(scored int, finishingDouble bool) error {
	if err := validateScore(scored); err != nil {
		return err
	}
	if l.finished {
		return types.NewGameError(types.ErrMatchFinished, "the match is already won")
	}

	if l.isBust(scored, finishingDouble) {
		l.turns = append(l.turns, Turn{Score: scored, Bust: true})
		return nil
	}

	l.remaining -= scored
	l.turns = append(l.turns, Turn{Score: scored})
	if scored > l.maxScore {
		l.maxScore = scored
	}
	if l.remaining == 0 {
		l.finished = true
	}
	return nil
}

// isBust reports whether a turn busts. A remainder of one is always a bust
// and a remainder of zero busts when double-out demands a finishing double.
func (l *X01Ledger) isBust(scored int, finishingDouble bool) bool {
	switch l.remaining - scored {
	case 0:
		return l.doubleOut && !finishingDouble
	case 1:
		return true
	default:
		return scored > l.remaining
	}
}

// ApplyScores replays a stored score sequence. checkedOut reports whether the
// sequence is known to end in a legal finish; only then does the final entry
// count as a finishing double. A zero-reach under double-out anywhere else is
// re-derived as the bust it was, since the match demonstrably continued.
// Scores recorded after a checkout mean the sequence is corrupt.
func (l *X01Ledger) ApplyScores(scores []int, checkedOut bool) error {
	for i, scored := range scores {
		finishing := checkedOut && i == len(scores)-1
		if err := l.ApplyTurn(scored, finishing); err != nil {
			return err
		}
	}
	return nil
}

// CheckedOut returns true once the remaining score has reached exactly zero
func (l *X01Ledger) CheckedOut() bool {
	return l.finished
}

// Remaining returns the player's current remaining score
func (l *X01Ledger) Remaining() int {
	return l.remaining
}

// Turns returns the number of turns taken, busts included
func (l *X01Ledger) Turns() int {
	return len(l.turns)
}

// Scores returns the submitted score of every turn, busts included
func (l *X01Ledger) Scores() []int {
	scores := make([]int, len(l.turns))
	for i, t := range l.turns {
		scores[i] = t.Score
	}
	return scores
}

// History returns the full turn history including bust markers
func (l *X01Ledger) History() []Turn {
	history := make([]Turn, len(l.turns))
	copy(history, l.turns)
	return history
}

// MaxScore returns the highest applied (non-bust) single-turn score
func (l *X01Ledger) MaxScore() int {
	return l.maxScore
}

// Checkout returns the score of the finishing turn, or 0 before a checkout
func (l *X01Ledger) Checkout() int {
	if !l.finished {
		return 0
	}
	return l.turns[len(l.turns)-1].Score
}

// Average returns the mean points scored per turn. Bust turns contribute
// zero points but still count as turns.
func (l *X01Ledger) Average() float64 {
	if len(l.turns) == 0 {
		return 0
	}
	target := l.family*100 + 1
	return float64(target-l.remaining) / float64(len(l.turns))
}

// TargetFamily returns the ledger's target family (3 or 5)
func (l *X01Ledger) TargetFamily() int {
	return l.family
}

// DoubleOut returns whether the double-out finishing rule is active
func (l *X01Ledger) DoubleOut() bool {
	return l.doubleOut
}

func validateScore(scored int) error {
	if scored < 0 || scored > MaxTurnScore {
		return types.NewGameError(types.ErrInvalidScore,
			fmt.Sprintf("score must be between 0 and %d, got %d", MaxTurnScore, scored))
	}
	return nil
}
