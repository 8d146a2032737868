package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

// Scores counts round wins per participant for the lifetime of a session.
type Scores struct {
	Red    int `json:"red"`
	Yellow int `json:"yellow"`
	Bot    int `json:"bot"`
}

func (that *Scores) Increment(p Participant) error {
	counter, err := that.slot(p)
	if err != nil {
		return err
	}

	*counter++

	return nil
}

func (that Scores) Of(p Participant) int {
	counter, err := that.slot(p)
	if err != nil {
		return 0
	}

	return *counter
}

func (that *Scores) Reset() {
	*that = Scores{}
}

func (that *Scores) slot(p Participant) (*int, error) {
	switch p {
	case Red:
		return &that.Red, nil
	case Yellow:
		return &that.Yellow, nil
	case Bot:
		return &that.Bot, nil
	default:
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownParticipant, p)
	}
}
