package apperror

import "errors"

var (
	ErrInvalidColumn      = errors.New("invalid column")
	ErrColumnFull         = errors.New("column is full")
	ErrNoAvailableMoves   = errors.New("no available moves")
	ErrUnknownParticipant = errors.New("unknown participant")
	ErrInvalidLineup      = errors.New("invalid lineup")
	ErrInputClosed        = errors.New("input closed")
)
