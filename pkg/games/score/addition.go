package score

// AdditionLedger accumulates turn scores for the random-target practice
// variant. There is no target, no bust and no checkout; it shares the turn
// history shape of the X01 ledger so both flow through the same persistence
// path.
type AdditionLedger struct {
	total    int
	turns    []Turn
	maxScore int
}

// NewAdditionLedger creates an empty accumulation ledger
func NewAdditionLedger() *AdditionLedger {
	return &AdditionLedger{}
}

// ApplyTurn adds a single turn's score to the running total
func (l *AdditionLedger) ApplyTurn(scored int) error {
	if err := validateScore(scored); err != nil {
		return err
	}
	l.total += scored
	l.turns = append(l.turns, Turn{Score: scored})
	if scored > l.maxScore {
		l.maxScore = scored
	}
	return nil
}

// ApplyScores replays a stored score sequence
func (l *AdditionLedger) ApplyScores(scores []int) error {
	for _, scored := range scores {
		if err := l.ApplyTurn(scored); err != nil {
			return err
		}
	}
	return nil
}

// Total returns the cumulative score
func (l *AdditionLedger) Total() int {
	return l.total
}

// Turns returns the number of turns taken
func (l *AdditionLedger) Turns() int {
	return len(l.turns)
}

// Scores returns the submitted score of every turn
func (l *AdditionLedger) Scores() []int {
	scores := make([]int, len(l.turns))
	for i, t := range l.turns {
		scores[i] = t.Score
	}
	return scores
}

// MaxScore returns the highest single-turn score
func (l *AdditionLedger) MaxScore() int {
	return l.maxScore
}

// Average returns the mean score per turn
func (l *AdditionLedger) Average() float64 {
	if len(l.turns) == 0 {
		return 0
	}
	return float64(l.total) / float64(len(l.turns))
}
