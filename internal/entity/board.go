package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

const (
	BoardSize   = 9
	CenterCell  = 4
	boardColumn = 3
)

// CornerCells lists the corners in row-major order.
var CornerCells = [4]int{0, 2, 6, 8}

// Board is a 3x3 grid stored row-major; index 0 is the top-left cell.
type Board [BoardSize]Mark

// ApplyMove places mark on cell. The board is left untouched when the cell is
// outside the grid, already taken, or the position is already decided.
func (that *Board) ApplyMove(cell int, mark Mark) error {
	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidMove, apperror.ErrCellOutOfRange, cell)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: unknown mark %d", apperror.ErrInvalidMove, mark)
	}

	if Evaluate(*that).IsTerminal() {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrGameFinished)
	}

	if that[cell] != EmptyCell {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidMove, apperror.ErrCellOccupied, cell)
	}

	that[cell] = mark

	return nil
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// CellsOwnedBy returns the indices holding mark in ascending order.
func (that *Board) CellsOwnedBy(mark Mark) []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == mark {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that *Board) EmptyCells() []int {
	return that.CellsOwnedBy(EmptyCell)
}

func (that *Board) Cell(cell int) Mark {
	if cell < 0 || cell >= BoardSize {
		return EmptyCell
	}

	return that[cell]
}

func (that *Board) String() string {
	out := make([]byte, 0, BoardSize+boardColumn)
	for i, cell := range that {
		switch cell {
		case EmptyCell:
			out = append(out, '.')
		default:
			out = append(out, cell.String()...)
		}

		if i%boardColumn == boardColumn-1 && i != BoardSize-1 {
			out = append(out, '/')
		}
	}

	return string(out)
}
