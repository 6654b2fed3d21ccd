package interact

import (
	"clickchess/src/chesslib/base"
	"clickchess/src/chesslib/rules"
)

type Effect uint8

const (
	EffectSelected        Effect = iota + 1 // a new origin was picked
	EffectCleared                           // the selection was dropped
	EffectPromotionPrompt                   // the promotion dialog must be shown
	EffectMoved                             // the position changed
	EffectRejected                          // the rules engine refused the move
	EffectCancelled                         // the promotion dialog was dismissed
	EffectMarked                            // an annotation was toggled
)

func (e Effect) String() string {
	switch e {
	case EffectSelected:
		return "selected"
	case EffectCleared:
		return "cleared"
	case EffectPromotionPrompt:
		return "promotion-prompt"
	case EffectMoved:
		return "moved"
	case EffectRejected:
		return "rejected"
	case EffectCancelled:
		return "cancelled"
	case EffectMarked:
		return "marked"
	default:
		return "none"
	}
}

// Snapshot is everything the interaction layer knows at one instant.
// Transitions never modify a Snapshot in place.
type Snapshot struct {
	Position rules.Position
	State    State
	Options  Overlay // highlighted legal moves of the selection
	Marks    Overlay // right-click annotations
}

func NewSnapshot(pos rules.Position) Snapshot {
	return Snapshot{Position: pos, State: Idle{}}
}

// Result of one transition. Move is set when Effects contains EffectMoved,
// Err when it contains EffectRejected.
type Result struct {
	Snapshot
	Effects []Effect
	Move    base.Move
	Err     error
}

func (r Result) Has(e Effect) bool {
	for _, x := range r.Effects {
		if x == e {
			return true
		}
	}
	return false
}

func (r Result) Applied() bool {
	return r.Has(EffectMoved)
}

// MoveOptions highlights the legal moves of the piece on sq. It reports false
// (and an empty overlay) if there are none.
func MoveOptions(pos rules.Position, sq base.Square) (Overlay, []base.Square, bool) {
	moves := pos.MovesFrom(sq)
	if len(moves) == 0 {
		return nil, nil, false
	}

	mover, _ := pos.PieceAt(sq)
	overlay := make(Overlay, len(moves)+1)
	targets := make([]base.Square, 0, len(moves))
	for _, m := range moves {
		if overlay.Has(m.To) {
			// promotions list one move per piece
			continue
		}
		targets = append(targets, m.To)
		if p, ok := pos.PieceAt(m.To); ok && p.Color() != mover.Color() {
			overlay[m.To] = CaptureStyle
		} else {
			overlay[m.To] = QuietStyle
		}
	}
	overlay[sq] = SelectedStyle
	return overlay, targets, true
}

// pick sq as the origin if it has moves, otherwise drop any selection
func reselect(s Snapshot, sq base.Square) (Snapshot, Effect) {
	overlay, targets, ok := MoveOptions(s.Position, sq)
	if !ok {
		s.State = Idle{}
		s.Options = nil
		return s, EffectCleared
	}
	s.State = OriginSelected{From: sq, Targets: targets}
	s.Options = overlay
	return s, EffectSelected
}

func isPromotion(pos rules.Position, from, to base.Square) bool {
	p, ok := pos.PieceAt(from)
	if !ok || p.Kind() != base.Pawn {
		return false
	}
	return to.Rank()+1 == pos.Turn().PromotionRank()
}

// Click handles a left click on sq.
func Click(s Snapshot, sq base.Square) Result {
	s.Marks = nil

	switch st := s.State.(type) {
	case Idle:
		next, eff := reselect(s, sq)
		if eff == EffectCleared {
			return Result{Snapshot: next}
		}
		return Result{Snapshot: next, Effects: []Effect{eff}}

	case OriginSelected:
		if !st.IsTarget(sq) {
			next, eff := reselect(s, sq)
			return Result{Snapshot: next, Effects: []Effect{eff}}
		}

		if isPromotion(s.Position, st.From, sq) {
			s.State = AwaitingPromotion{From: st.From, To: sq}
			return Result{Snapshot: s, Effects: []Effect{EffectPromotionPrompt}}
		}

		pos, mv, err := s.Position.Apply(base.MoveRequest{From: st.From, To: sq})
		if err != nil {
			next, eff := reselect(s, sq)
			return Result{Snapshot: next, Effects: []Effect{EffectRejected, eff}, Err: err}
		}
		s.Position = pos
		s.State = Idle{}
		s.Options = nil
		return Result{Snapshot: s, Effects: []Effect{EffectMoved}, Move: mv}

	default:
		// the promotion dialog owns the input
		return Result{Snapshot: s}
	}
}

// SelectPromotion resolves a pending promotion. base.NoKind cancels it.
// A rejected piece also returns to Idle so the dialog never stays open.
func SelectPromotion(s Snapshot, kind base.PieceKind) Result {
	st, ok := s.State.(AwaitingPromotion)
	if kind == base.NoKind || !ok {
		s.State = Idle{}
		s.Options = nil
		return Result{Snapshot: s, Effects: []Effect{EffectCancelled}}
	}

	pos, mv, err := s.Position.Apply(base.MoveRequest{From: st.From, To: st.To, Promotion: kind})
	s.State = Idle{}
	s.Options = nil
	if err != nil {
		return Result{Snapshot: s, Effects: []Effect{EffectRejected}, Err: err}
	}
	s.Position = pos
	return Result{Snapshot: s, Effects: []Effect{EffectMoved}, Move: mv}
}

// RightClick toggles an annotation on sq.
func RightClick(s Snapshot, sq base.Square) Result {
	if !sq.IsValid() {
		return Result{Snapshot: s}
	}
	marks := s.Marks.Clone()
	if marks.Has(sq) {
		delete(marks, sq)
	} else {
		if marks == nil {
			marks = make(Overlay, 1)
		}
		marks[sq] = MarkStyle
	}
	if len(marks) == 0 {
		marks = nil
	}
	s.Marks = marks
	return Result{Snapshot: s, Effects: []Effect{EffectMarked}}
}
