// Package convfen decodes the placement and side-to-move fields of a FEN for
// renderers that only need to draw the board.
package convfen

import (
	"clickchess/src/chesslib/base"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrFEN = errors.New("malformed FEN")

// Board is the drawable part of a FEN.
type Board struct {
	Mailbox base.Mailbox
	Turn    base.Color
}

func ConvertFENToBoard(fen string) (Board, error) {
	board := Board{Mailbox: base.EmptyMailbox()}

	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return board, fmt.Errorf("%w: need at least 2 fields, got %d", ErrFEN, len(parts))
	}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return board, fmt.Errorf("%w: need 8 ranks, got %d", ErrFEN, len(ranks))
	}

	for r, row := range ranks {
		rank := 7 - r
		file := 0
		for _, ch := range row {
			if file >= 8 {
				return board, fmt.Errorf("%w: rank %d overflows", ErrFEN, rank+1)
			}
			if ch >= '1' && ch <= '8' {
				empty, _ := strconv.Atoi(string(ch))
				if file+empty > 8 {
					return board, fmt.Errorf("%w: rank %d overflows", ErrFEN, rank+1)
				}
				file += empty
				continue
			}
			pc := base.ConvertPieceFromRune(ch)
			if pc == base.InvalidPiece {
				return board, fmt.Errorf("%w: bad piece %q", ErrFEN, ch)
			}
			board.Mailbox[base.NewSquare(file, rank)] = pc
			file++
		}
		if file != 8 {
			return board, fmt.Errorf("%w: rank %d has %d files", ErrFEN, rank+1, file)
		}
	}

	switch parts[1] {
	case "w":
		board.Turn = base.White
	case "b":
		board.Turn = base.Black
	default:
		return board, fmt.Errorf("%w: side to move %q", ErrFEN, parts[1])
	}

	return board, nil
}

// ConvertBoardToPlacement writes the first FEN field back.
func ConvertBoardToPlacement(mb base.Mailbox) string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := mb[rank*8+file]
			if pc == base.EmptyPiece || pc == base.InvalidPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteRune(base.ConvertRuneFromPiece(pc))
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}
	return b.String()
}
