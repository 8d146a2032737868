package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

// Participant identifies who occupies a cell or whose turn it is.
type Participant string

const (
	Empty  Participant = ""
	Red    Participant = "red"
	Yellow Participant = "yellow"
	Bot    Participant = "bot"
)

// Participants lists every identity that can take a turn.
var Participants = []Participant{Red, Yellow, Bot}

func (that Participant) IsPlaying() bool {
	switch that {
	case Red, Yellow, Bot:
		return true
	default:
		return false
	}
}

func (that Participant) IsBot() bool {
	return that == Bot
}

func (that Participant) String() string {
	if that == Empty {
		return "empty"
	}
	return string(that)
}

// Lineup holds the two seats that currently alternate turns. First starts every round.
type Lineup struct {
	First  Participant
	Second Participant
}

func NewLineup(first, second Participant) (Lineup, error) {
	if !first.IsPlaying() || !second.IsPlaying() {
		return Lineup{}, fmt.Errorf("%w: %s/%s", apperror.ErrUnknownParticipant, first, second)
	}

	if first == second {
		return Lineup{}, fmt.Errorf("%w: both seats are %s", apperror.ErrInvalidLineup, first)
	}

	return Lineup{First: first, Second: second}, nil
}

// Next returns the participant that moves after p.
func (that Lineup) Next(p Participant) Participant {
	if p == that.First {
		return that.Second
	}
	return that.First
}

func (that Lineup) Has(p Participant) bool {
	return p == that.First || p == that.Second
}
