package entity

type OutcomeKind string

const (
	MoveAccepted OutcomeKind = "move_accepted"
	RoundWon     OutcomeKind = "round_won"
	RoundDraw    OutcomeKind = "round_draw"
)

// Outcome describes what a single accepted move did to the round.
type Outcome struct {
	Kind        OutcomeKind `json:"kind"`
	Participant Participant `json:"participant"`
	Row         int         `json:"row"`
	Column      int         `json:"column"`
}

func (that Outcome) IsRoundOver() bool {
	return that.Kind == RoundWon || that.Kind == RoundDraw
}
