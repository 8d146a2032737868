package service

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// RandSource is the only randomness the bot depends on.
type RandSource interface {
	Intn(n int) int
}

type BotService interface {
	ChooseColumn(board *entity.Board) (int, error)
}

type botService struct {
	rnd RandSource
}

// NewBotService returns a bot that picks uniformly among the open columns.
// A nil source falls back to a clock-seeded generator.
func NewBotService(rnd RandSource) BotService {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	return &botService{
		rnd: rnd,
	}
}

func (that *botService) ChooseColumn(board *entity.Board) (int, error) {
	availableColumns := board.AvailableColumns()
	if len(availableColumns) == 0 {
		return -1, apperror.ErrNoAvailableMoves
	}

	return availableColumns[that.rnd.Intn(len(availableColumns))], nil
}
