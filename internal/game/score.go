package game

const (
	pelletPoints    = 10
	energizerPoints = 50
	extraLifeScore  = 10000
)

// pursuerEatValues is the strictly sequential award ladder for pursuers
// eaten during one evasion window. The chain index stops at the last entry.
var pursuerEatValues = [...]int{200, 400, 800, 1600}

// ScoreState is the match's accumulator state. All point awards route
// through Add so the extra-life grant can never double-fire.
type ScoreState struct {
	Score     int
	HighScore int

	// PelletsEaten counts collectibles consumed this life. It gates den
	// releases and feeds the siren intensity derivation.
	PelletsEaten int

	// EatChain indexes pursuerEatValues for the next eaten pursuer. Reset
	// whenever an energizer is consumed or evasion ends.
	EatChain int

	// ExtraLifeAwarded is monotonic: once true it never resets within a
	// match, which is the guard against double grants.
	ExtraLifeAwarded bool
}

// Add awards points and reports whether this award crossed the extra-life
// threshold for the first time in the match.
func (s *ScoreState) Add(pts int) (extraLife bool) {
	s.Score += pts
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
	if !s.ExtraLifeAwarded && s.Score >= extraLifeScore {
		s.ExtraLifeAwarded = true
		return true
	}
	return false
}

// NextPursuerValue returns the award for the next eaten pursuer and
// advances the chain, never walking past the ladder's end.
func (s *ScoreState) NextPursuerValue() int {
	idx := s.EatChain
	if idx >= len(pursuerEatValues) {
		idx = len(pursuerEatValues) - 1
	} else {
		s.EatChain++
	}
	return pursuerEatValues[idx]
}

// ResetChain rewinds the eaten-pursuer ladder to its base index.
func (s *ScoreState) ResetChain() {
	s.EatChain = 0
}

// ResetMatch clears everything except the externally persisted high score.
func (s *ScoreState) ResetMatch() {
	s.Score = 0
	s.PelletsEaten = 0
	s.EatChain = 0
	s.ExtraLifeAwarded = false
}
