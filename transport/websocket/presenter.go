package websocket

import "github.com/rocketscienceinc/tictactoe-solo/internal/entity"

// presenter forwards game events to the browser, which does the drawing.
type presenter struct {
	client *client
}

func (that *presenter) ShowMark(cell int, mark entity.Mark) {
	that.client.enqueue(ActionCellMark, Payload{Cell: &cell, Mark: mark.String()})
}

func (that *presenter) DrawWinLine(line entity.WinLine) {
	that.client.enqueue(ActionGameLine, Payload{Line: line[:]})
}

func (that *presenter) AnnounceOutcome(outcome entity.Outcome) {
	view := newOutcomeView(outcome)
	that.client.enqueue(ActionGameOutcome, Payload{Outcome: &view})
}

func (that *presenter) Reset() {
	that.client.enqueue(ActionGameReset, Payload{})
}
