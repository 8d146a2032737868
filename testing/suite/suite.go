package suite

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/connectfour/internal/connectfour"
	"github.com/rocketscienceinc/connectfour/internal/service"
	"github.com/rocketscienceinc/connectfour/internal/transport/console"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Screen collects everything written by the console input and output.
	Screen *bytes.Buffer
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewTextHandler(testWriter{t: t}, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Screen: &bytes.Buffer{},
	}
}

// Console returns an input that replays script line by line and an output sharing the same screen.
func (that *Suite) Console(script ...string) (*console.Input, *console.Output) {
	display := console.DefaultDisplay()

	reader := strings.NewReader(strings.Join(script, "\n") + "\n")

	input := console.NewInput(reader, that.Screen, display)
	that.Cleanup(input.Close)

	return input, console.NewOutput(that.Screen, display)
}

// GameController returns a controller whose bot draws its choices from values, in a loop.
func (that *Suite) GameController(values ...int) *connectfour.GameController {
	that.Helper()

	if len(values) == 0 {
		values = []int{0}
	}

	controller, err := connectfour.NewGameController(connectfour.WithBotService(service.NewBotService(&ScriptedRand{Values: values})))
	if err != nil {
		that.Fatalf("failed to create game controller: %v", err)
	}

	return controller
}

// ScriptedRand replays Values in order, wrapping around, reduced modulo n.
type ScriptedRand struct {
	Values []int
	next   int
}

func (that *ScriptedRand) Intn(n int) int {
	v := that.Values[that.next%len(that.Values)]
	that.next++
	return v % n
}

type testWriter struct {
	t *testing.T
}

func (that testWriter) Write(p []byte) (int, error) {
	that.t.Helper()
	that.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
