package tictactoe

import "github.com/rocketscienceinc/tictactoe-solo/internal/entity"

// Presentation renders what happens in a game. The controller calls it while
// holding its own lock, so implementations must not call back into the
// controller.
type Presentation interface {
	ShowMark(cell int, mark entity.Mark)
	DrawWinLine(line entity.WinLine)
	// AnnounceOutcome is called exactly once per finished game.
	AnnounceOutcome(outcome entity.Outcome)
	Reset()
}
