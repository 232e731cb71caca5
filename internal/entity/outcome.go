package entity

const (
	OutcomeOngoing = "ongoing"
	OutcomeWin     = "win"
	OutcomeDraw    = "draw"
)

// Outcome is derived from a board on demand and never stored.
type Outcome struct {
	Status string `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func (that Outcome) IsTerminal() bool {
	return that.Status != OutcomeOngoing
}

func (that Outcome) IsDraw() bool {
	return that.Status == OutcomeDraw
}

// Evaluate checks wins for both marks before falling back to the draw test.
func (that *Board) Evaluate(first, second Mark) Outcome {
	switch {
	case that.IsWinning(first):
		return Outcome{Status: OutcomeWin, Winner: first}
	case that.IsWinning(second):
		return Outcome{Status: OutcomeWin, Winner: second}
	case that.IsDraw():
		return Outcome{Status: OutcomeDraw}
	default:
		return Outcome{Status: OutcomeOngoing}
	}
}
