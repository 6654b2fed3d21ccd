// Package glayout maps between window pixels and board squares.
package glayout

import (
	"clickchess/src/chesslib/base"
	"clickchess/ui/gui/gbase"
)

// Board is the on-screen placement of the 8x8 grid.
type Board struct {
	X, Y    int // top-left pixel
	Size    int // Square*8
	Square  int
	Flipped bool // black at the bottom
}

// NewBoard fits the largest board into the window next to the side panel.
func NewBoard(windowW, windowH int, flipped bool) Board {
	size := windowW - 2*gbase.SidePanel
	if size > windowH-4*gbase.Margin {
		size = windowH - 4*gbase.Margin
	}
	if size < gbase.MinBoard {
		size = gbase.MinBoard
	}
	sq := size / 8
	size = sq * 8
	return Board{
		X:       gbase.SidePanel + (windowW-2*gbase.SidePanel-size)/2,
		Y:       (windowH - size) / 2,
		Size:    size,
		Square:  sq,
		Flipped: flipped,
	}
}

func (b Board) Contains(px, py int) bool {
	return px >= b.X && py >= b.Y && px < b.X+b.Size && py < b.Y+b.Size
}

// SquareAt returns NoSquare outside the board.
func (b Board) SquareAt(px, py int) base.Square {
	if !b.Contains(px, py) || b.Square <= 0 {
		return base.NoSquare
	}
	col := (px - b.X) / b.Square
	row := (py - b.Y) / b.Square

	if !b.Flipped {
		// row 0 is the top of the screen, rank 8
		return base.NewSquare(col, 7-row)
	}
	return base.NewSquare(7-col, row)
}

// Origin is the top-left pixel of sq.
func (b Board) Origin(sq base.Square) (int, int) {
	col, row := sq.File(), 7-sq.Rank()
	if b.Flipped {
		col, row = 7-col, 7-row
	}
	return b.X + col*b.Square, b.Y + row*b.Square
}

func (b Board) IsLight(sq base.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}
