package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const helpText = `Commands:
  0-6      drop a piece into that column
  b, bot   toggle the AI opponent
  r, reset reset the scores
  n, new   start a new round
  h, help  show this help
  q, quit  leave the game
`

// Output renders the game as plain text.
type Output struct {
	w       io.Writer
	display Display
}

func NewOutput(w io.Writer, display Display) *Output {
	return &Output{
		w:       w,
		display: display,
	}
}

func (that *Output) RenderBoard(board entity.Board) error {
	var sb strings.Builder

	for row := 0; row < entity.Rows; row++ {
		for col := 0; col < entity.Columns; col++ {
			sb.WriteString(that.display.Glyph(board[row][col]))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	for col := 0; col < entity.Columns; col++ {
		sb.WriteString(strconv.Itoa(col))
		sb.WriteString(" ")
	}
	sb.WriteString("\n")

	return that.write(sb.String())
}

func (that *Output) RenderScores(scores entity.Scores) error {
	parts := make([]string, 0, len(entity.Participants))
	for _, p := range entity.Participants {
		parts = append(parts, fmt.Sprintf("%s Wins: %d", that.display.Name(p), scores.Of(p)))
	}

	return that.write(strings.Join(parts, " | ") + "\n")
}

// RenderOutcome announces the end of a round; accepted moves print nothing.
func (that *Output) RenderOutcome(outcome entity.Outcome) error {
	switch outcome.Kind {
	case entity.RoundWon:
		return that.write(fmt.Sprintf("%s wins!\n", that.display.Name(outcome.Participant)))
	case entity.RoundDraw:
		return that.write("It's a draw!\n")
	default:
		return nil
	}
}

// RenderMoveError explains a rejected move to the user.
func (that *Output) RenderMoveError(err error) error {
	switch {
	case errors.Is(err, apperror.ErrInvalidColumn):
		return that.write(fmt.Sprintf("Invalid column. Choose between 0 and %d.\n", entity.Columns-1))
	case errors.Is(err, apperror.ErrColumnFull):
		return that.write("Column is full. Choose another column.\n")
	default:
		return that.write(fmt.Sprintf("Move rejected: %v\n", err))
	}
}

func (that *Output) RenderBotMove(col int) error {
	return that.write(fmt.Sprintf("%s chooses column: %d\n", that.display.Name(entity.Bot), col))
}

func (that *Output) RenderOpponent(opponent entity.Participant) error {
	return that.write(fmt.Sprintf("Now playing against %s.\n", that.display.Name(opponent)))
}

func (that *Output) RenderHelp() error {
	return that.write(helpText)
}

func (that *Output) Message(text string) error {
	return that.write(text + "\n")
}

func (that *Output) write(text string) error {
	if _, err := io.WriteString(that.w, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
