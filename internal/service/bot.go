package service

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// openingMove is the global move number of the bot's first move.
const openingMove = 2

type BotService interface {
	// ChooseMove picks a free cell for the bot. moveNumber is the 1-indexed
	// global number of the move being chosen.
	ChooseMove(board entity.Board, moveNumber int) (int, error)
}

type botService struct {
	mark entity.Mark

	mu     sync.Mutex
	random *rand.Rand
}

// NewBotService returns a bot playing mark. The random source is shared
// between callers and guarded internally.
func NewBotService(mark entity.Mark, random *rand.Rand) BotService {
	return &botService{
		mark:   mark,
		random: random,
	}
}

func (that *botService) ChooseMove(board entity.Board, moveNumber int) (int, error) {
	if board.IsFull() {
		return 0, apperror.ErrNoMoveAvailable
	}

	if moveNumber == openingMove {
		return that.openingCell(board), nil
	}

	if cell, ok := completingCell(board, that.mark); ok {
		return cell, nil
	}

	if cell, ok := completingCell(board, that.mark.Opponent()); ok {
		return cell, nil
	}

	cell, err := that.pick(board.EmptyCells())
	if err != nil {
		return 0, fmt.Errorf("failed to pick random cell: %w", err)
	}

	return cell, nil
}

// openingCell takes the center when it is free, otherwise a free corner.
func (that *botService) openingCell(board entity.Board) int {
	if board[entity.CenterCell] == entity.EmptyCell {
		return entity.CenterCell
	}

	corners := make([]int, 0, len(entity.CornerCells))
	for _, cell := range entity.CornerCells {
		if board[cell] == entity.EmptyCell {
			corners = append(corners, cell)
		}
	}

	cell, err := that.pick(corners)
	if err != nil {
		// corners are all taken only on boards no real game reaches at move 2
		cell, _ = that.pick(board.EmptyCells())
	}

	return cell
}

func (that *botService) pick(cells []int) (int, error) {
	if len(cells) == 0 {
		return 0, apperror.ErrNoMoveAvailable
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return cells[that.random.Intn(len(cells))], nil
}

// completingCell returns the free cell of the first line on which mark holds
// the other two cells.
func completingCell(board entity.Board, mark entity.Mark) (int, bool) {
	for _, line := range entity.WinLines {
		count, free := entity.CountOnLine(board, line, mark)
		if count == len(line)-1 && free >= 0 {
			return free, true
		}
	}

	return 0, false
}
