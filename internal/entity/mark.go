package entity

// Mark is the state of a single cell: empty or owned by one of the two players.
type Mark uint8

const (
	EmptyCell Mark = iota
	PlayerX
	PlayerO
)

const (
	// HumanMark always moves first.
	HumanMark = PlayerX
	BotMark   = PlayerO
)

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other player's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}
