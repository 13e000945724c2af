package suite

import (
	"sync"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	EventShowMark        = "show_mark"
	EventDrawWinLine     = "draw_win_line"
	EventAnnounceOutcome = "announce_outcome"
	EventReset           = "reset"
)

type Event struct {
	Kind    string
	Cell    int
	Mark    entity.Mark
	Line    entity.WinLine
	Outcome entity.Outcome
}

// Presentation records every call made to it.
type Presentation struct {
	mu     sync.Mutex
	events []Event
}

func NewPresentation() *Presentation {
	return &Presentation{}
}

func (that *Presentation) ShowMark(cell int, mark entity.Mark) {
	that.record(Event{Kind: EventShowMark, Cell: cell, Mark: mark})
}

func (that *Presentation) DrawWinLine(line entity.WinLine) {
	that.record(Event{Kind: EventDrawWinLine, Line: line})
}

func (that *Presentation) AnnounceOutcome(outcome entity.Outcome) {
	that.record(Event{Kind: EventAnnounceOutcome, Outcome: outcome})
}

func (that *Presentation) Reset() {
	that.record(Event{Kind: EventReset})
}

func (that *Presentation) Events() []Event {
	that.mu.Lock()
	defer that.mu.Unlock()

	events := make([]Event, len(that.events))
	copy(events, that.events)

	return events
}

func (that *Presentation) Count(kind string) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	count := 0
	for _, event := range that.events {
		if event.Kind == kind {
			count++
		}
	}

	return count
}

func (that *Presentation) Clear() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.events = nil
}

func (that *Presentation) record(event Event) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.events = append(that.events, event)
}
