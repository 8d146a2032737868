package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

var ErrMalformedInput = errors.New("malformed input")

var commands = map[string]entity.CommandKind{
	"q":     entity.CommandQuit,
	"quit":  entity.CommandQuit,
	"exit":  entity.CommandQuit,
	"b":     entity.CommandToggleBot,
	"bot":   entity.CommandToggleBot,
	"r":     entity.CommandResetScores,
	"reset": entity.CommandResetScores,
	"n":     entity.CommandNewRound,
	"new":   entity.CommandNewRound,
	"h":     entity.CommandHelp,
	"help":  entity.CommandHelp,
	"?":     entity.CommandHelp,
}

type line struct {
	text string
	err  error
}

// Input reads commands line by line. Lines that are neither a number nor a known command are
// reported back to the user and skipped.
type Input struct {
	lines   chan line
	done    chan struct{}
	once    sync.Once
	out     io.Writer
	display Display
}

func NewInput(r io.Reader, out io.Writer, display Display) *Input {
	that := &Input{
		lines:   make(chan line),
		done:    make(chan struct{}),
		out:     out,
		display: display,
	}

	go that.readLines(r)

	return that
}

// Close stops the reader goroutine at its next line. A Read already blocked on r is not interrupted.
func (that *Input) Close() {
	that.once.Do(func() {
		close(that.done)
	})
}

func (that *Input) readLines(r io.Reader) {
	defer close(that.lines)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if !that.send(line{text: scanner.Text()}) {
			return
		}
	}

	if err := scanner.Err(); err != nil {
		that.send(line{err: err})
	}
}

func (that *Input) send(l line) bool {
	select {
	case that.lines <- l:
		return true
	case <-that.done:
		return false
	}
}

// NextCommand prompts p until a well-formed command arrives.
func (that *Input) NextCommand(ctx context.Context, p entity.Participant) (entity.Command, error) {
	for {
		select {
		case <-that.done:
			return entity.Command{}, apperror.ErrInputClosed
		default:
		}

		if _, err := fmt.Fprintf(that.out, "Player %s, choose a column (0-%d): ", that.display.Name(p), entity.Columns-1); err != nil {
			return entity.Command{}, fmt.Errorf("failed to write prompt: %w", err)
		}

		select {
		case <-ctx.Done():
			return entity.Command{}, ctx.Err()
		case l, ok := <-that.lines:
			if !ok {
				return entity.Command{}, apperror.ErrInputClosed
			}

			if l.err != nil {
				return entity.Command{}, fmt.Errorf("failed to read input: %w", l.err)
			}

			command, err := ParseCommand(l.text)
			if err == nil {
				return command, nil
			}

			if _, err = fmt.Fprintf(that.out, "Please enter a column number between 0 and %d, or h for help.\n", entity.Columns-1); err != nil {
				return entity.Command{}, fmt.Errorf("failed to write feedback: %w", err)
			}
		}
	}
}

// ParseCommand turns one console line into a command. Any integer is a move; range checks
// belong to the engine.
func ParseCommand(text string) (entity.Command, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return entity.Command{}, fmt.Errorf("%w: empty line", ErrMalformedInput)
	}

	if kind, ok := commands[text]; ok {
		return entity.Command{Kind: kind}, nil
	}

	col, err := strconv.Atoi(text)
	if err != nil {
		return entity.Command{}, fmt.Errorf("%w: %q", ErrMalformedInput, text)
	}

	return entity.MoveCommand(col), nil
}
