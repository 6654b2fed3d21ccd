package interact

import (
	"clickchess/src/chesslib/base"
	"clickchess/src/chesslib/rules"
)

// View is what a board renderer needs to paint one frame.
type View struct {
	FEN                   string
	Turn                  base.Color
	SquareStyles          Overlay
	PromotionTargetSquare base.Square // NoSquare unless a promotion is pending
	ShowPromotionDialog   bool
}

func (s Snapshot) View() View {
	v := View{
		FEN:                   s.Position.FEN(),
		Turn:                  s.Position.Turn(),
		SquareStyles:          s.Options.Merge(s.Marks),
		PromotionTargetSquare: base.NoSquare,
	}
	if st, ok := s.State.(AwaitingPromotion); ok {
		v.PromotionTargetSquare = st.To
		v.ShowPromotionDialog = true
	}
	return v
}

// Controller keeps the current Snapshot for a renderer that works with
// callbacks instead of passing state around.
type Controller struct {
	snap Snapshot
}

func NewController(pos rules.Position) *Controller {
	return &Controller{snap: NewSnapshot(pos)}
}

func (c *Controller) Snapshot() Snapshot       { return c.snap }
func (c *Controller) State() State             { return c.snap.State }
func (c *Controller) Position() rules.Position { return c.snap.Position }
func (c *Controller) View() View               { return c.snap.View() }
func (c *Controller) Reset(pos rules.Position) { c.snap = NewSnapshot(pos) }

func (c *Controller) apply(r Result) Result {
	c.snap = r.Snapshot
	return r
}

func (c *Controller) OnSquareClick(sq base.Square) Result {
	return c.apply(Click(c.snap, sq))
}

// ComputeMoveOptions replaces the highlight overlay with the legal moves of
// the piece on sq. The selection itself is left alone.
func (c *Controller) ComputeMoveOptions(sq base.Square) bool {
	overlay, _, ok := MoveOptions(c.snap.Position, sq)
	c.snap.Options = overlay
	return ok
}

func (c *Controller) OnPromotionPieceSelect(kind base.PieceKind) Result {
	return c.apply(SelectPromotion(c.snap, kind))
}

func (c *Controller) OnSquareRightClick(sq base.Square) Result {
	return c.apply(RightClick(c.snap, sq))
}
