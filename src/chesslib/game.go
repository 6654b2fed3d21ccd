package chesslib

import (
	"clickchess/src/chesslib/base"
	"clickchess/src/chesslib/interact"
	"clickchess/src/chesslib/logic/convert/convfen"
	"clickchess/src/chesslib/rules"
	"clickchess/src/logx"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrNoGame = errors.New("game is not created")

// at first use Create* methods
type GameBuilder struct {
	ctrl     *interact.Controller
	lastMove *base.Move
	id       string

	root   logx.Logger
	logger logx.Logger // root scoped to the current game
}

func NewBuilderBoard(logger logx.Logger) *GameBuilder {
	if logger == nil {
		logger = logx.NewNop()
	}
	return &GameBuilder{root: logger, logger: logger}
}

func (gb *GameBuilder) CreateFromFEN(fen string) error {
	gb.logger.Debugf("create game by FEN: %v", fen)
	pos, err := rules.NewFromFEN(fen)
	if err != nil {
		gb.logger.Warnf("rejected FEN %q: %v", fen, err)
		return fmt.Errorf("error parse FEN: %w", err)
	}
	gb.reset(pos)
	return nil
}

func (gb *GameBuilder) CreateClassic() {
	gb.logger.Debug("create classic game")
	gb.reset(rules.NewClassic())
}

func (gb *GameBuilder) reset(pos rules.Position) {
	gb.lastMove = nil
	gb.id = uuid.NewString()
	gb.logger = gb.root.With("game", gb.id)
	gb.logger.Infof("new game %v", pos.FEN())
	if gb.ctrl == nil {
		gb.ctrl = interact.NewController(pos)
		return
	}
	gb.ctrl.Reset(pos)
}

func (gb *GameBuilder) Created() bool {
	return gb.ctrl != nil
}

// ID names the current game in the log, empty before the first Create*.
func (gb *GameBuilder) ID() string {
	return gb.id
}

// Click is a left click on sq.
func (gb *GameBuilder) Click(sq base.Square) (interact.Result, error) {
	if gb.ctrl == nil {
		return interact.Result{}, ErrNoGame
	}
	gb.logger.Debugf("click %v in %v", sq, gb.ctrl.State().Phase())
	return gb.track(gb.ctrl.OnSquareClick(sq)), nil
}

func (gb *GameBuilder) RightClick(sq base.Square) (interact.Result, error) {
	if gb.ctrl == nil {
		return interact.Result{}, ErrNoGame
	}
	gb.logger.Debugf("right click %v", sq)
	return gb.ctrl.OnSquareRightClick(sq), nil
}

// Promote answers the promotion dialog; base.NoKind cancels it.
func (gb *GameBuilder) Promote(kind base.PieceKind) (interact.Result, error) {
	if gb.ctrl == nil {
		return interact.Result{}, ErrNoGame
	}
	gb.logger.Debugf("promotion choice: %v", kind)
	return gb.track(gb.ctrl.OnPromotionPieceSelect(kind)), nil
}

// MoveOptions only highlights the moves of the piece on sq.
func (gb *GameBuilder) MoveOptions(sq base.Square) bool {
	if gb.ctrl == nil {
		return false
	}
	return gb.ctrl.ComputeMoveOptions(sq)
}

func (gb *GameBuilder) track(r interact.Result) interact.Result {
	switch {
	case r.Applied():
		mv := r.Move
		gb.lastMove = &mv
		gb.logger.Infof("move %v", mv)
	case r.Err != nil:
		gb.logger.Warnf("move rejected: %v", r.Err)
	case r.Has(interact.EffectPromotionPrompt):
		gb.logger.Debug("waiting for promotion piece")
	}
	return r
}

func (gb *GameBuilder) View() interact.View {
	if gb.ctrl == nil {
		return interact.View{PromotionTargetSquare: base.NoSquare}
	}
	return gb.ctrl.View()
}

func (gb *GameBuilder) Phase() interact.Phase {
	if gb.ctrl == nil {
		return interact.PhaseIdle
	}
	return gb.ctrl.State().Phase()
}

// return FEN of this game
func (gb *GameBuilder) FEN() string {
	if gb.ctrl == nil {
		return ""
	}
	return gb.ctrl.Position().FEN()
}

func (gb *GameBuilder) Turn() base.Color {
	if gb.ctrl == nil {
		return base.NoColor
	}
	return gb.ctrl.Position().Turn()
}

// CurrentBoard decodes the placement of the current position.
func (gb *GameBuilder) CurrentBoard() base.Mailbox {
	if gb.ctrl == nil {
		return base.EmptyMailbox()
	}
	b, err := convfen.ConvertFENToBoard(gb.FEN())
	if err != nil {
		gb.logger.Errorf("engine produced bad FEN: %v", err)
		return base.EmptyMailbox()
	}
	return b.Mailbox
}

// LastMove is nil before the first move of a game.
func (gb *GameBuilder) LastMove() *base.Move {
	return gb.lastMove
}
