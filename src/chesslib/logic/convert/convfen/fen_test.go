package convfen

import (
	"clickchess/src/chesslib/base"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertFENToBoardStart(t *testing.T) {
	b, err := ConvertFENToBoard(base.FEN_START_GAME)
	require.NoError(t, err)

	assert.Equal(t, base.White, b.Turn)
	assert.Equal(t, base.WRook, b.Mailbox[base.NewSquare(0, 0)])
	assert.Equal(t, base.WKing, b.Mailbox[base.NewSquare(4, 0)])
	assert.Equal(t, base.BQueen, b.Mailbox[base.NewSquare(3, 7)])
	assert.Equal(t, base.BPawn, b.Mailbox[base.NewSquare(7, 6)])
	assert.Equal(t, base.EmptyPiece, b.Mailbox[base.NewSquare(4, 3)])

	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", ConvertBoardToPlacement(b.Mailbox))
}

func TestConvertFENToBoardBlackToMove(t *testing.T) {
	b, err := ConvertFENToBoard("4k3/8/8/8/8/8/3p4/K7 b - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, base.Black, b.Turn)
	assert.Equal(t, base.BPawn, b.Mailbox.At(base.NewSquare(3, 1)))
	assert.Equal(t, "4k3/8/8/8/8/8/3p4/K7", ConvertBoardToPlacement(b.Mailbox))
}

func TestConvertFENToBoardErrors(t *testing.T) {
	for _, fen := range []string{
		"",
		"8/8/8/8/8/8/8 w",
		"9/8/8/8/8/8/8/8 w",
		"ppppppppp/8/8/8/8/8/8/8 w",
		"7/8/8/8/8/8/8/8 w",
		"x7/8/8/8/8/8/8/8 w",
		"8/8/8/8/8/8/8/8 white",
	} {
		_, err := ConvertFENToBoard(fen)
		assert.ErrorIs(t, err, ErrFEN, fen)
	}
}
