package interact

import (
	"clickchess/src/chesslib/base"
	"clickchess/src/chesslib/rules"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const promotionFEN = "7k/4P3/8/8/8/8/8/4K3 w - - 0 1"

func sq(t *testing.T, s string) base.Square {
	t.Helper()
	out, err := base.ParseSquare(s)
	require.NoError(t, err)
	return out
}

func fromFEN(t *testing.T, fen string) rules.Position {
	t.Helper()
	pos, err := rules.NewFromFEN(fen)
	require.NoError(t, err)
	return pos
}

// stubborn accepts queries but refuses every move
type stubborn struct {
	rules.Position
}

func (s stubborn) Apply(req base.MoveRequest) (rules.Position, base.Move, error) {
	return s, base.Move{}, rules.ErrIllegalMove
}

func assertIdle(t *testing.T, c *Controller) {
	t.Helper()
	assert.Equal(t, PhaseIdle, c.State().Phase())
	v := c.View()
	assert.Empty(t, v.SquareStyles)
	assert.False(t, v.ShowPromotionDialog)
	assert.Equal(t, base.NoSquare, v.PromotionTargetSquare)
}

func TestMoveOptionsStyles(t *testing.T) {
	// white pawn e4 can take d5 or push to e5
	pos := fromFEN(t, "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")

	overlay, targets, ok := MoveOptions(pos, sq(t, "e4"))
	require.True(t, ok)
	assert.ElementsMatch(t, []base.Square{sq(t, "d5"), sq(t, "e5")}, targets)
	assert.Equal(t, SelectedStyle, overlay[sq(t, "e4")])
	assert.Equal(t, CaptureStyle, overlay[sq(t, "d5")])
	assert.Equal(t, QuietStyle, overlay[sq(t, "e5")])
	assert.Len(t, overlay, 3)

	overlay, targets, ok = MoveOptions(pos, sq(t, "a1"))
	assert.False(t, ok)
	assert.Empty(t, overlay)
	assert.Empty(t, targets)
}

func TestMoveOptionsPromotionTargetsOnce(t *testing.T) {
	_, targets, ok := MoveOptions(fromFEN(t, promotionFEN), sq(t, "e7"))
	require.True(t, ok)
	assert.Equal(t, []base.Square{sq(t, "e8")}, targets)
}

func TestClickWithoutMovesIsNoop(t *testing.T) {
	c := NewController(rules.NewClassic())
	for _, s := range []string{"a1", "e4", "e7", "h8", "d1"} {
		r := c.OnSquareClick(sq(t, s))
		assert.Empty(t, r.Effects, s)
		assertIdle(t, c)
		assert.Equal(t, base.FEN_START_GAME, c.Position().FEN())
	}
}

func TestClickSelectsOrigin(t *testing.T) {
	c := NewController(rules.NewClassic())

	r := c.OnSquareClick(sq(t, "g1"))
	assert.True(t, r.Has(EffectSelected))
	st, ok := c.State().(OriginSelected)
	require.True(t, ok)
	assert.Equal(t, sq(t, "g1"), st.From)
	assert.ElementsMatch(t, []base.Square{sq(t, "f3"), sq(t, "h3")}, st.Targets)

	styles := c.View().SquareStyles
	assert.Len(t, styles, 3)
	assert.Equal(t, StyleSelected, styles[sq(t, "g1")].Kind)
}

func TestQuietMoveEndToEnd(t *testing.T) {
	c := NewController(rules.NewClassic())

	c.OnSquareClick(sq(t, "e2"))
	r := c.OnSquareClick(sq(t, "e4"))

	require.True(t, r.Applied())
	require.NoError(t, r.Err)
	assert.Equal(t, base.WPawn, r.Move.Piece)
	assertIdle(t, c)

	v := c.View()
	assert.True(t, strings.HasPrefix(v.FEN, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b "), v.FEN)
	assert.Equal(t, base.Black, v.Turn)
}

func TestEveryLegalMoveFromStart(t *testing.T) {
	start := rules.NewClassic()
	for i := 0; i < 64; i++ {
		from := base.Square(i)
		for _, m := range start.MovesFrom(from) {
			c := NewController(start)
			c.OnSquareClick(m.From)
			r := c.OnSquareClick(m.To)
			require.True(t, r.Applied(), m.String())
			assertIdle(t, c)

			p, ok := c.Position().PieceAt(m.To)
			require.True(t, ok)
			assert.Equal(t, m.Piece, p)
			_, ok = c.Position().PieceAt(m.From)
			assert.False(t, ok)
			assert.Equal(t, base.Black, c.Position().Turn())
		}
	}
}

func TestReselectOwnPiece(t *testing.T) {
	c := NewController(rules.NewClassic())

	c.OnSquareClick(sq(t, "e2"))
	r := c.OnSquareClick(sq(t, "d2"))
	assert.Equal(t, []Effect{EffectSelected}, r.Effects)
	st, ok := c.State().(OriginSelected)
	require.True(t, ok)
	assert.Equal(t, sq(t, "d2"), st.From)
	assert.Equal(t, StyleSelected, c.View().SquareStyles[sq(t, "d2")].Kind)
	assert.False(t, c.View().SquareStyles.Has(sq(t, "e2")))
}

func TestReselectWithoutMovesReturnsIdle(t *testing.T) {
	c := NewController(rules.NewClassic())

	c.OnSquareClick(sq(t, "e2"))
	// own rook, boxed in
	r := c.OnSquareClick(sq(t, "a1"))
	assert.Equal(t, []Effect{EffectCleared}, r.Effects)
	assertIdle(t, c)

	c.OnSquareClick(sq(t, "e2"))
	c.OnSquareClick(sq(t, "e6"))
	assertIdle(t, c)
	assert.Equal(t, base.FEN_START_GAME, c.Position().FEN())
}

func TestRejectedMoveFallsBackToSelection(t *testing.T) {
	c := NewController(stubborn{rules.NewClassic()})

	c.OnSquareClick(sq(t, "e2"))
	r := c.OnSquareClick(sq(t, "e4"))
	assert.Equal(t, []Effect{EffectRejected, EffectCleared}, r.Effects)
	assert.ErrorIs(t, r.Err, rules.ErrIllegalMove)
	assertIdle(t, c)

	// capture target with moves of its own becomes the new origin
	pos := stubborn{fromFEN(t, "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")}
	c = NewController(pos)
	c.OnSquareClick(sq(t, "e4"))
	r = c.OnSquareClick(sq(t, "d5"))
	assert.True(t, r.Has(EffectRejected))
	assert.Equal(t, PhaseIdle, c.State().Phase(), "black pawn cannot move on white's turn")
}

func TestPromotionEndToEnd(t *testing.T) {
	c := NewController(fromFEN(t, promotionFEN))

	c.OnSquareClick(sq(t, "e7"))
	r := c.OnSquareClick(sq(t, "e8"))
	assert.Equal(t, []Effect{EffectPromotionPrompt}, r.Effects)
	assert.False(t, r.Applied())

	v := c.View()
	assert.True(t, v.ShowPromotionDialog)
	assert.Equal(t, sq(t, "e8"), v.PromotionTargetSquare)
	assert.Equal(t, promotionFEN, v.FEN, "no move before a piece is chosen")

	// board clicks are ignored while the dialog is open
	r = c.OnSquareClick(sq(t, "e1"))
	assert.Empty(t, r.Effects)
	assert.Equal(t, PhaseAwaitingPromotion, c.State().Phase())

	r = c.OnPromotionPieceSelect(base.Queen)
	require.True(t, r.Applied())
	assertIdle(t, c)
	p, ok := c.Position().PieceAt(sq(t, "e8"))
	require.True(t, ok)
	assert.Equal(t, base.WQueen, p)
}

func TestBlackPromotion(t *testing.T) {
	c := NewController(fromFEN(t, "4k3/8/8/8/8/8/3p4/K7 b - - 0 1"))

	c.OnSquareClick(sq(t, "d2"))
	c.OnSquareClick(sq(t, "d1"))
	require.True(t, c.View().ShowPromotionDialog)

	r := c.OnPromotionPieceSelect(base.Rook)
	require.True(t, r.Applied())
	p, _ := c.Position().PieceAt(sq(t, "d1"))
	assert.Equal(t, base.BRook, p)
}

func TestPawnMoveOffLastRankIsNotPromotion(t *testing.T) {
	// white pawn reaching rank 7 only
	c := NewController(fromFEN(t, "7k/8/4P3/8/8/8/8/4K3 w - - 0 1"))
	c.OnSquareClick(sq(t, "e6"))
	r := c.OnSquareClick(sq(t, "e7"))
	assert.True(t, r.Applied())
	assert.False(t, c.View().ShowPromotionDialog)
}

func TestCancelPromotion(t *testing.T) {
	c := NewController(fromFEN(t, promotionFEN))
	c.OnSquareClick(sq(t, "e7"))
	c.OnSquareClick(sq(t, "e8"))

	r := c.OnPromotionPieceSelect(base.NoKind)
	assert.Equal(t, []Effect{EffectCancelled}, r.Effects)
	assert.False(t, r.Applied())
	assertIdle(t, c)
	assert.Equal(t, promotionFEN, c.Position().FEN())
}

func TestPromotionSelectWithoutPending(t *testing.T) {
	c := NewController(rules.NewClassic())
	c.OnSquareClick(sq(t, "e2"))

	r := c.OnPromotionPieceSelect(base.Queen)
	assert.False(t, r.Applied())
	assert.True(t, r.Has(EffectCancelled))
	assertIdle(t, c)
}

func TestRejectedPromotionResetsToIdle(t *testing.T) {
	c := NewController(fromFEN(t, promotionFEN))
	c.OnSquareClick(sq(t, "e7"))
	c.OnSquareClick(sq(t, "e8"))

	r := c.OnPromotionPieceSelect(base.King)
	assert.False(t, r.Applied())
	assert.ErrorIs(t, r.Err, rules.ErrIllegalMove)
	assertIdle(t, c)
	assert.Equal(t, promotionFEN, c.Position().FEN())
}

func TestRightClickMarks(t *testing.T) {
	c := NewController(rules.NewClassic())

	c.OnSquareRightClick(sq(t, "e5"))
	c.OnSquareRightClick(sq(t, "d5"))
	styles := c.View().SquareStyles
	assert.Equal(t, MarkStyle, styles[sq(t, "e5")])
	assert.Equal(t, MarkStyle, styles[sq(t, "d5")])

	// toggle off
	c.OnSquareRightClick(sq(t, "d5"))
	assert.False(t, c.View().SquareStyles.Has(sq(t, "d5")))
	assert.Equal(t, PhaseIdle, c.State().Phase())

	// a left click wipes annotations
	c.OnSquareClick(sq(t, "e2"))
	assert.False(t, c.View().SquareStyles.Has(sq(t, "e5")))
}

func TestMarksPaintOverOptions(t *testing.T) {
	c := NewController(rules.NewClassic())
	c.OnSquareClick(sq(t, "e2"))
	c.OnSquareRightClick(sq(t, "e4"))

	assert.Equal(t, MarkStyle, c.View().SquareStyles[sq(t, "e4")])
	assert.Equal(t, PhaseOriginSelected, c.State().Phase())
}

func TestTransitionsDoNotAlias(t *testing.T) {
	s0 := NewSnapshot(rules.NewClassic())
	r1 := Click(s0, sq(t, "e2"))
	r2 := RightClick(r1.Snapshot, sq(t, "a6"))
	_ = Click(r1.Snapshot, sq(t, "e4"))

	assert.Equal(t, PhaseIdle, s0.State.Phase())
	assert.Empty(t, s0.Options)
	assert.Equal(t, PhaseOriginSelected, r1.State.Phase())
	assert.Equal(t, base.FEN_START_GAME, r1.Position.FEN())
	assert.False(t, r1.Marks.Has(sq(t, "a6")))
	assert.True(t, r2.Marks.Has(sq(t, "a6")))
}

func TestComputeMoveOptionsKeepsSelection(t *testing.T) {
	c := NewController(rules.NewClassic())
	assert.True(t, c.ComputeMoveOptions(sq(t, "b1")))
	assert.Len(t, c.View().SquareStyles, 3)
	assert.Equal(t, PhaseIdle, c.State().Phase())

	assert.False(t, c.ComputeMoveOptions(sq(t, "c1")))
	assert.Empty(t, c.View().SquareStyles)
}
