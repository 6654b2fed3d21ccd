package interact

import "clickchess/src/chesslib/base"

type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseOriginSelected
	PhaseAwaitingPromotion
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseOriginSelected:
		return "origin-selected"
	case PhaseAwaitingPromotion:
		return "awaiting-promotion"
	default:
		return "unknown"
	}
}

// State is one of Idle, OriginSelected or AwaitingPromotion.
type State interface {
	Phase() Phase
	isState()
}

// nothing selected
type Idle struct{}

// a piece is picked up, Targets are its legal destinations
type OriginSelected struct {
	From    base.Square
	Targets []base.Square
}

// a pawn move to the last rank waits for the piece choice
type AwaitingPromotion struct {
	From base.Square
	To   base.Square
}

func (Idle) Phase() Phase              { return PhaseIdle }
func (OriginSelected) Phase() Phase    { return PhaseOriginSelected }
func (AwaitingPromotion) Phase() Phase { return PhaseAwaitingPromotion }

func (Idle) isState()              {}
func (OriginSelected) isState()    {}
func (AwaitingPromotion) isState() {}

func (s OriginSelected) IsTarget(sq base.Square) bool {
	for _, t := range s.Targets {
		if t == sq {
			return true
		}
	}
	return false
}
