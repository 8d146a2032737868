package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

const (
	Rows          = 6
	Columns       = 7
	ConnectLength = 4
)

// axes are checked in this order: horizontal, vertical, diagonal down-right, diagonal down-left.
var axes = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// Board is indexed [row][column]; row 0 is the top, row Rows-1 the bottom.
type Board [Rows][Columns]Participant

func (that *Board) IsValidColumn(col int) bool {
	return col >= 0 && col < Columns
}

func (that *Board) IsColumnFull(col int) bool {
	return that[0][col] != Empty
}

func (that *Board) IsFull() bool {
	for col := 0; col < Columns; col++ {
		if !that.IsColumnFull(col) {
			return false
		}
	}

	return true
}

// AvailableColumns returns the non-full columns in ascending order.
func (that *Board) AvailableColumns() []int {
	columns := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if !that.IsColumnFull(col) {
			columns = append(columns, col)
		}
	}

	return columns
}

// Drop places p in the lowest empty cell of col and returns the row it landed on.
func (that *Board) Drop(col int, p Participant) (int, error) {
	if !that.IsValidColumn(col) {
		return -1, fmt.Errorf("%w: %d", apperror.ErrInvalidColumn, col)
	}

	if that.IsColumnFull(col) {
		return -1, fmt.Errorf("%w: %d", apperror.ErrColumnFull, col)
	}

	if !p.IsPlaying() {
		return -1, fmt.Errorf("%w: %s", apperror.ErrUnknownParticipant, p)
	}

	for row := Rows - 1; row >= 0; row-- {
		if that[row][col] == Empty {
			that[row][col] = p
			return row, nil
		}
	}

	return -1, fmt.Errorf("%w: %d", apperror.ErrColumnFull, col)
}

// CheckWin reports whether the piece at (row, col) completes a line of ConnectLength.
func (that *Board) CheckWin(row, col int) bool {
	if !that.inBounds(row, col) || that[row][col] == Empty {
		return false
	}

	for _, axis := range axes {
		if that.ConnectedCount(row, col, axis[0], axis[1]) >= ConnectLength {
			return true
		}
	}

	return false
}

// ConnectedCount counts the run of same-participant cells through (row, col) along the given axis.
// A cell outside the board counts 0.
func (that *Board) ConnectedCount(row, col, dRow, dCol int) int {
	if !that.inBounds(row, col) {
		return 0
	}

	player := that[row][col]
	count := 1

	for r, c := row+dRow, col+dCol; that.inBounds(r, c) && that[r][c] == player; r, c = r+dRow, c+dCol {
		count++
	}

	for r, c := row-dRow, col-dCol; that.inBounds(r, c) && that[r][c] == player; r, c = r-dRow, c-dCol {
		count++
	}

	return count
}

func (that *Board) Clear() {
	*that = Board{}
}

func (that *Board) inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}
