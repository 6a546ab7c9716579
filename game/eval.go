package game

// EvaluatePathDifference is the shaped reward used by the searcher: the
// opponent's remaining steps minus the perspective player's. It is a dense
// proxy for winning chances, not a probability. States where either path is
// missing evaluate to 0.
func EvaluatePathDifference(s State, perspective Player) float64 {
	own, err := s.ShortestPath(perspective)
	if err != nil {
		return 0
	}
	other, err := s.ShortestPath(perspective.Opponent())
	if err != nil {
		return 0
	}
	return float64(len(other) - len(own))
}

// EvaluateScore defers to the state's own scoring, which for Board saturates
// finished games to +/-WinScore.
func EvaluateScore(s State, perspective Player) float64 {
	return s.Score(perspective)
}
