package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/internal/service"
)

type Option func(controller *GameController)

// WithLineup sets the two alternating seats; the first seat starts every round.
func WithLineup(lineup entity.Lineup) Option {
	return func(c *GameController) {
		c.lineup = lineup
	}
}

func WithBotService(bot service.BotService) Option {
	return func(c *GameController) {
		c.bot = bot
	}
}

// GameController owns the board, the turn and the score record of one session.
// It is not safe for concurrent use.
type GameController struct {
	board   entity.Board
	current entity.Participant
	lineup  entity.Lineup
	scores  entity.Scores
	bot     service.BotService
}

// NewGameController builds a controller from options. It fails when the configured lineup is not
// two distinct playing participants.
func NewGameController(options ...Option) (*GameController, error) {
	c := &GameController{
		lineup: entity.Lineup{First: entity.Red, Second: entity.Yellow},
	}

	for _, option := range options {
		option(c)
	}

	lineup, err := entity.NewLineup(c.lineup.First, c.lineup.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to set lineup: %w", err)
	}

	if c.bot == nil {
		c.bot = service.NewBotService(nil)
	}

	c.lineup = lineup
	c.current = lineup.First

	return c, nil
}

// AttemptMove drops the current participant's piece into col and advances the round.
// A rejected move leaves every piece of state untouched.
func (that *GameController) AttemptMove(col int) (entity.Outcome, error) {
	mover := that.current

	row, err := that.board.Drop(col, mover)
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("invalid move: %w", err)
	}

	outcome := entity.Outcome{
		Kind:        entity.MoveAccepted,
		Participant: mover,
		Row:         row,
		Column:      col,
	}

	// a board-filling winning move is a win, never a draw
	switch {
	case that.board.CheckWin(row, col):
		if err = that.scores.Increment(mover); err != nil {
			that.board[row][col] = entity.Empty
			return entity.Outcome{}, fmt.Errorf("failed to record win: %w", err)
		}
		outcome.Kind = entity.RoundWon
		that.ResetBoard()
	case that.board.IsFull():
		outcome.Kind = entity.RoundDraw
		that.ResetBoard()
	default:
		that.current = that.lineup.Next(mover)
	}

	return outcome, nil
}

// SelectAutomatedMove picks a random open column for the bot.
func (that *GameController) SelectAutomatedMove() (int, error) {
	col, err := that.bot.ChooseColumn(&that.board)
	if err != nil {
		return -1, fmt.Errorf("bot failed to choose column: %w", err)
	}

	return col, nil
}

func (that *GameController) IsBoardFull() bool {
	return that.board.IsFull()
}

// ResetBoard empties the board and hands the turn to the session-start participant.
func (that *GameController) ResetBoard() {
	that.board.Clear()
	that.current = that.lineup.First
}

func (that *GameController) ResetScores() {
	that.scores.Reset()
}

// SetLineup replaces the active seats. If the old second seat is on turn, the new second seat
// takes it over. An invalid lineup is rejected and the old one stays.
func (that *GameController) SetLineup(lineup entity.Lineup) error {
	next, err := entity.NewLineup(lineup.First, lineup.Second)
	if err != nil {
		return fmt.Errorf("failed to set lineup: %w", err)
	}

	if that.current == that.lineup.Second {
		that.current = next.Second
	} else if !next.Has(that.current) {
		that.current = next.First
	}

	that.lineup = next

	return nil
}

func (that *GameController) Lineup() entity.Lineup {
	return that.lineup
}

func (that *GameController) CurrentParticipant() entity.Participant {
	return that.current
}

func (that *GameController) Scores() entity.Scores {
	return that.scores
}

func (that *GameController) Board() entity.Board {
	return that.board
}
