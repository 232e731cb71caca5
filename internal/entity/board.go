package entity

// Mark is the content of a single board cell.
type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

const MinBoardSize = 3

// SwitchPlayer returns the opposite mark.
func SwitchPlayer(current Mark) Mark {
	if current == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Board is an N×N grid addressed by positions 1..N², row-major.
type Board struct {
	Size  int    `json:"size"`
	Cells []Mark `json:"cells"`
}

// NewBoard returns an all-empty board. Sizes are validated by the caller.
func NewBoard(size int) *Board {
	return &Board{
		Size:  size,
		Cells: make([]Mark, size*size),
	}
}

// Reset empties every cell, keeping the size.
func (that *Board) Reset() {
	that.Cells = make([]Mark, that.Size*that.Size)
}

func (that *Board) Len() int {
	return len(that.Cells)
}

func (that *Board) inRange(position int) bool {
	return position >= 1 && position <= len(that.Cells)
}

// Cell returns the mark at position, or EmptyCell when out of range.
func (that *Board) Cell(position int) Mark {
	if !that.inRange(position) {
		return EmptyCell
	}
	return that.Cells[position-1]
}

// CellMap returns a position → mark snapshot holding exactly the keys 1..N².
func (that *Board) CellMap() map[int]Mark {
	cells := make(map[int]Mark, len(that.Cells))
	for i, mark := range that.Cells {
		cells[i+1] = mark
	}
	return cells
}

func (that *Board) IsCellFree(position int) bool {
	return that.inRange(position) && that.Cells[position-1] == EmptyCell
}

// ApplyMove places mark at position if the cell is free.
// It is the only legality gate: a false return means nothing changed.
func (that *Board) ApplyMove(mark Mark, position int) bool {
	if !that.IsCellFree(position) {
		return false
	}

	that.Cells[position-1] = mark

	return true
}

// Undo empties position again. It exists for search probes that placed a mark
// through ApplyMove and must restore the exact prior occupancy.
func (that *Board) Undo(position int) {
	if that.inRange(position) {
		that.Cells[position-1] = EmptyCell
	}
}

// EmptyPositions lists free positions in ascending order.
func (that *Board) EmptyPositions() []int {
	positions := make([]int, 0, len(that.Cells))
	for i, mark := range that.Cells {
		if mark == EmptyCell {
			positions = append(positions, i+1)
		}
	}
	return positions
}

// IsWinning reports whether mark fills a row, a column or one of the two main diagonals.
// Only those two diagonals are checked, whatever the size.
func (that *Board) IsWinning(mark Mark) bool {
	if mark == EmptyCell {
		return false
	}

	n := that.Size

	for i := 0; i < n; i++ {
		row, column := true, true
		for j := 0; j < n; j++ {
			if that.Cell(i*n+j+1) != mark {
				row = false
			}
			if that.Cell(j*n+i+1) != mark {
				column = false
			}
		}
		if row || column {
			return true
		}
	}

	mainDiagonal, antiDiagonal := true, true
	for i := 0; i < n; i++ {
		if that.Cell(i*n+i+1) != mark {
			mainDiagonal = false
		}
		if that.Cell(i*n+(n-i)) != mark {
			antiDiagonal = false
		}
	}

	return mainDiagonal || antiDiagonal
}

// IsDraw reports a full board. Wins must be checked first.
func (that *Board) IsDraw() bool {
	for _, mark := range that.Cells {
		if mark == EmptyCell {
			return false
		}
	}
	return true
}

func (that *Board) Clone() *Board {
	cells := make([]Mark, len(that.Cells))
	copy(cells, that.Cells)

	return &Board{Size: that.Size, Cells: cells}
}
