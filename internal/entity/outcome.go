package entity

// WinLine is a triple of cell indices that wins the game when one mark holds all three.
type WinLine [3]int

// WinLines are checked in this order; the first complete line decides the winner.
var WinLines = [8]WinLine{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type OutcomeStatus uint8

const (
	InProgress OutcomeStatus = iota
	Win
	Tie
)

func (that OutcomeStatus) String() string {
	switch that {
	case Win:
		return "win"
	case Tie:
		return "tie"
	default:
		return "in_progress"
	}
}

// Outcome is derived from a board; Winner and Line are set only for Win.
type Outcome struct {
	Status OutcomeStatus
	Winner Mark
	Line   WinLine
}

func (that Outcome) IsTerminal() bool {
	return that.Status != InProgress
}

// Evaluate reports whether board is won, tied or still in progress.
func Evaluate(board Board) Outcome {
	for _, line := range WinLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != EmptyCell && a == b && b == c {
			return Outcome{Status: Win, Winner: a, Line: line}
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return Outcome{Status: InProgress}
	}

	return Outcome{Status: Tie}
}

// CountOnLine returns how many cells of line hold mark and the index of the
// last empty cell on it, or -1 when the line has no empty cell.
func CountOnLine(board Board, line WinLine, mark Mark) (int, int) {
	count, free := 0, -1
	for _, cell := range line {
		switch board[cell] {
		case mark:
			count++
		case EmptyCell:
			free = cell
		}
	}

	return count, free
}
