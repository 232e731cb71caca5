package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	ModePvP = "pvp"
	ModePvC = "pvc"
)

// StartingMark moves first in every match, human or not.
const StartingMark = PlayerO

type Game struct {
	ID       string `json:"id"`
	Board    *Board `json:"board"`
	Turn     Mark   `json:"turn"`
	Mode     string `json:"mode"`
	Human    Mark   `json:"human"`
	Computer Mark   `json:"computer"`
}

func NewGame(id string, size int, mode string) *Game {
	return &Game{
		ID:       id,
		Board:    NewBoard(size),
		Turn:     StartingMark,
		Mode:     mode,
		Human:    PlayerO,
		Computer: PlayerX,
	}
}

func IsValidMode(mode string) bool {
	return mode == ModePvP || mode == ModePvC
}

func (that *Game) IsWithComputer() bool {
	return that.Mode == ModePvC
}

func (that *Game) IsComputerTurn() bool {
	return that.IsWithComputer() && that.Turn == that.Computer
}

func (that *Game) Outcome() Outcome {
	return that.Board.Evaluate(PlayerX, PlayerO)
}

func (that *Game) IsFinished() bool {
	return that.Outcome().IsTerminal()
}

// MakeTurn applies a move for mark. The turn only passes on success; after a
// terminal move Turn keeps the mark that ended the match.
func (that *Game) MakeTurn(mark Mark, position int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if position < 1 || position > that.Board.Len() {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, position)
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if !that.Board.ApplyMove(mark, position) {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, position)
	}

	if !that.IsFinished() {
		that.Turn = SwitchPlayer(mark)
	}

	return nil
}

// Reset returns the match to its initial state, keeping ID, size, mode and seats.
func (that *Game) Reset() {
	that.Board.Reset()
	that.Turn = StartingMark
}

func (that *Game) Clone() *Game {
	clone := *that
	clone.Board = that.Board.Clone()

	return &clone
}
