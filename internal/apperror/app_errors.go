package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrInvalidBoardSize = errors.New("board size must be at least 3")
	ErrBoardTooLarge    = errors.New("board is too large for the computer player")
	ErrUnknownGameMode  = errors.New("unknown game mode")
	ErrGameNotFound     = errors.New("game not found")
)
