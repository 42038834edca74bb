package simulation

import "fmt"

// Summary is the end-of-run report, read once from final engine state at the
// tick that enters the terminal state. The two shapes are mutually
// exclusive: either every tile was cleaned before the budget ran out, or the
// budget ran out first.
type Summary struct {
	// AllCleaned selects the report branch.
	AllCleaned bool `json:"allCleaned"`
	// Step is the 1-based tick at which the last tile was cleaned when
	// AllCleaned, otherwise the step count at which the budget was hit.
	Step         int `json:"step"`
	MaxSteps     int `json:"maxSteps"`
	TilesCleaned int `json:"tilesCleaned"`
	TotalMoves   int `json:"totalMoves"`
}

// String renders the human-readable report.
func (s *Summary) String() string {
	if s.AllCleaned {
		return fmt.Sprintf("All dirty tiles cleaned at step %d.\nTotal tiles cleaned: %d\nTotal agent moves: %d",
			s.Step, s.TilesCleaned, s.TotalMoves)
	}
	return fmt.Sprintf("Max steps (%d) reached at step %d.\nTotal tiles cleaned: %d\nTotal agent moves: %d",
		s.MaxSteps, s.Step, s.TilesCleaned, s.TotalMoves)
}
