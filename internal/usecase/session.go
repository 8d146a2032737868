package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

type gameController interface {
	AttemptMove(col int) (entity.Outcome, error)
	SelectAutomatedMove() (int, error)

	ResetBoard()
	ResetScores()
	SetLineup(lineup entity.Lineup) error

	CurrentParticipant() entity.Participant
	Scores() entity.Scores
	Board() entity.Board
}

type inputSource interface {
	NextCommand(ctx context.Context, p entity.Participant) (entity.Command, error)
}

type outputSink interface {
	RenderBoard(board entity.Board) error
	RenderScores(scores entity.Scores) error
	RenderOutcome(outcome entity.Outcome) error
	RenderMoveError(err error) error
	RenderBotMove(col int) error
	RenderOpponent(opponent entity.Participant) error
	RenderHelp() error
	Message(text string) error
}

// Session drives one console game: it decides who sits in the second seat and feeds commands
// from the input into the game controller.
type Session struct {
	logger *slog.Logger

	game   gameController
	input  inputSource
	output outputSink

	playAgainstBot bool
}

func NewSession(logger *slog.Logger, game gameController, input inputSource, output outputSink, playAgainstBot bool) (*Session, error) {
	that := &Session{
		logger: logger.With("component", "session"),

		game:   game,
		input:  input,
		output: output,

		playAgainstBot: playAgainstBot,
	}

	if err := that.game.SetLineup(LineupFor(playAgainstBot)); err != nil {
		return nil, fmt.Errorf("failed to seat players: %w", err)
	}

	return that, nil
}

// LineupFor returns Red against the bot, or Red against Yellow.
func LineupFor(playAgainstBot bool) entity.Lineup {
	if playAgainstBot {
		return entity.Lineup{First: entity.Red, Second: entity.Bot}
	}
	return entity.Lineup{First: entity.Red, Second: entity.Yellow}
}

func (that *Session) PlayAgainstBot() bool {
	return that.playAgainstBot
}

// Run plays until the user quits, the input closes or ctx is cancelled.
func (that *Session) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")
	log.Info("session started", "play_against_bot", that.playAgainstBot)

	for {
		if err := that.render(); err != nil {
			return err
		}

		command, err := that.nextCommand(ctx)
		switch {
		case errors.Is(err, apperror.ErrInputClosed):
			log.Info("input closed, ending session", "scores", that.game.Scores())
			return nil
		case errors.Is(err, context.Canceled):
			log.Info("session cancelled", "scores", that.game.Scores())
			return nil
		case err != nil:
			return fmt.Errorf("failed to get next command: %w", err)
		}

		quit, err := that.Handle(command)
		if err != nil {
			return fmt.Errorf("failed to handle %s command: %w", command.Kind, err)
		}

		if quit {
			log.Info("player quit", "scores", that.game.Scores())
			return nil
		}
	}
}

// Handle applies a single command. It returns true when the session should end.
func (that *Session) Handle(command entity.Command) (bool, error) {
	switch command.Kind {
	case entity.CommandMove:
		return false, that.makeMove(command.Column)
	case entity.CommandToggleBot:
		return false, that.toggleBot()
	case entity.CommandResetScores:
		that.game.ResetScores()
		that.logger.Info("scores reset")
		return false, that.output.Message("Scores reset.")
	case entity.CommandNewRound:
		that.game.ResetBoard()
		that.logger.Info("round restarted")
		return false, that.output.Message("New round.")
	case entity.CommandHelp:
		return false, that.output.RenderHelp()
	case entity.CommandQuit:
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q", command.Kind)
	}
}

func (that *Session) nextCommand(ctx context.Context) (entity.Command, error) {
	if err := ctx.Err(); err != nil {
		return entity.Command{}, err
	}

	current := that.game.CurrentParticipant()
	if !current.IsBot() {
		return that.input.NextCommand(ctx, current)
	}

	col, err := that.game.SelectAutomatedMove()
	if err != nil {
		return entity.Command{}, err
	}

	if err = that.output.RenderBotMove(col); err != nil {
		return entity.Command{}, err
	}

	return entity.MoveCommand(col), nil
}

func (that *Session) makeMove(col int) error {
	log := that.logger.With("method", "makeMove", "participant", that.game.CurrentParticipant(), "column", col)

	outcome, err := that.game.AttemptMove(col)
	if errors.Is(err, apperror.ErrInvalidColumn) || errors.Is(err, apperror.ErrColumnFull) {
		log.Debug("move rejected", "error", err)
		return that.output.RenderMoveError(err)
	}

	if err != nil {
		return fmt.Errorf("failed to make move: %w", err)
	}

	log.Debug("move accepted", "row", outcome.Row, "outcome", outcome.Kind)

	if outcome.IsRoundOver() {
		log.Info("round finished", "outcome", outcome.Kind, "last_mover", outcome.Participant, "scores", that.game.Scores())
	}

	return that.output.RenderOutcome(outcome)
}

func (that *Session) toggleBot() error {
	lineup := LineupFor(!that.playAgainstBot)
	if err := that.game.SetLineup(lineup); err != nil {
		return fmt.Errorf("failed to switch opponent: %w", err)
	}

	that.playAgainstBot = !that.playAgainstBot

	that.logger.Info("opponent changed", "opponent", lineup.Second)

	return that.output.RenderOpponent(lineup.Second)
}

func (that *Session) render() error {
	if err := that.output.RenderBoard(that.game.Board()); err != nil {
		return err
	}

	return that.output.RenderScores(that.game.Scores())
}
