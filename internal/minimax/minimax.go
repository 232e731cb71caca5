// Package minimax picks the computer's move by exhaustive game-tree search.
//
// There is no pruning, no transposition cache and no depth cutoff: every call walks
// the full tree below the current position, so the cost grows with the factorial of
// the number of empty cells. A 3x3 board is cheap; 4x4 and up are not tractable and
// callers are expected to bound the board size before searching.
package minimax

import (
	"errors"
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Reward is the score of an immediate computer win. Each ply of delay costs one point.
const Reward = 10

var ErrNoAvailableMoves = errors.New("no available moves")

type MoveScore struct {
	Position int `json:"position"`
	Score    int `json:"score"`
}

// Result describes the chosen move and what it cost to find it.
type Result struct {
	Position int
	Score    int
	Nodes    int
	Scores   []MoveScore
}

type searcher struct {
	board    *entity.Board
	computer entity.Mark
	human    entity.Mark
	nodes    int
}

// ChooseMove scores every empty cell for computer, applies the best one to board and
// returns it. Ties go to the lowest position. Probes reuse board and are undone, so on
// return only the chosen move has been added.
func ChooseMove(board *entity.Board, computer, human entity.Mark) (Result, error) {
	result, err := Analyze(board, computer, human)
	if err != nil {
		return Result{}, err
	}

	board.ApplyMove(computer, result.Position)

	return result, nil
}

// Analyze does the same search as ChooseMove but leaves board untouched.
func Analyze(board *entity.Board, computer, human entity.Mark) (Result, error) {
	search := &searcher{
		board:    board,
		computer: computer,
		human:    human,
	}

	result := Result{Score: math.MinInt}

	for position := 1; position <= board.Len(); position++ {
		if !board.ApplyMove(computer, position) {
			continue
		}

		score := search.minimax(1, false)
		board.Undo(position)

		result.Scores = append(result.Scores, MoveScore{Position: position, Score: score})
		if score > result.Score {
			result.Score = score
			result.Position = position
		}
	}

	if result.Position == 0 {
		return Result{}, ErrNoAvailableMoves
	}

	result.Nodes = search.nodes

	return result, nil
}

func (that *searcher) minimax(depth int, maximizing bool) int {
	that.nodes++

	if that.board.IsWinning(that.computer) {
		return Reward - depth
	}

	if that.board.IsWinning(that.human) {
		return -Reward + depth
	}

	if that.board.IsDraw() {
		return 0
	}

	mark, best := that.human, math.MaxInt
	if maximizing {
		mark, best = that.computer, math.MinInt
	}

	for position := 1; position <= that.board.Len(); position++ {
		if !that.board.ApplyMove(mark, position) {
			continue
		}

		score := that.minimax(depth+1, !maximizing)
		that.board.Undo(position)

		if maximizing && score > best || !maximizing && score < best {
			best = score
		}
	}

	return best
}
