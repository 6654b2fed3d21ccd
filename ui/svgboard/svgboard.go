// Package svgboard writes a position and its highlights as an SVG image.
package svgboard

import (
	"clickchess/src/chesslib/base"
	"clickchess/src/chesslib/interact"
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"
)

const (
	SquareSize = 45
	Border     = 20
	Size       = 8*SquareSize + 2*Border
)

var (
	LightSquare = color.RGBA{0xf0, 0xd9, 0xb5, 0xff}
	DarkSquare  = color.RGBA{0xb5, 0x88, 0x63, 0xff}
)

func fill(c color.RGBA) string {
	return fmt.Sprintf("fill:rgb(%d,%d,%d);fill-opacity:%.3f", c.R, c.G, c.B, float64(c.A)/255)
}

// origin of sq in image coordinates
func origin(sq base.Square, flipped bool) (int, int) {
	col, row := sq.File(), 7-sq.Rank()
	if flipped {
		col, row = 7-col, 7-row
	}
	return Border + col*SquareSize, Border + row*SquareSize
}

func drawStyle(canvas *svg.SVG, x, y int, st interact.Style) {
	if st.Spot <= 0 {
		canvas.Rect(x, y, SquareSize, SquareSize, fill(st.Background))
		return
	}
	r := int(st.Spot * SquareSize / 2)
	cx, cy := x+SquareSize/2, y+SquareSize/2
	if st.BorderRadius >= 0.5 {
		canvas.Circle(cx, cy, r, fill(st.Background))
		return
	}
	corner := int(st.BorderRadius * 2 * float64(r))
	canvas.Roundrect(cx-r, cy-r, 2*r, 2*r, corner, corner, fill(st.Background))
}

// Render paints the same layers as the window: squares, full-square
// highlights, pieces, then move dots.
func Render(w io.Writer, mb base.Mailbox, v interact.View, flipped bool) {
	canvas := svg.New(w)
	canvas.Start(Size, Size)
	canvas.Rect(0, 0, Size, Size, "fill:#302e2b")

	for i := 0; i < 64; i++ {
		sq := base.Square(i)
		x, y := origin(sq, flipped)
		bg := DarkSquare
		if (sq.File()+sq.Rank())%2 == 1 {
			bg = LightSquare
		}
		canvas.Rect(x, y, SquareSize, SquareSize, fill(bg))

		st, styled := v.SquareStyles[sq]
		if styled && st.Spot == 0 {
			drawStyle(canvas, x, y, st)
		}
		if p := mb.At(sq); p != base.EmptyPiece {
			canvas.Text(x+SquareSize/2, y+SquareSize*4/5, base.ConvertGlyphFromPiece(p),
				"text-anchor:middle;font-size:38px;fill:#000")
		}
		if styled && st.Spot > 0 {
			drawStyle(canvas, x, y, st)
		}
	}

	label := "font-size:12px;fill:#d0d0d0;text-anchor:middle"
	for i := 0; i < 8; i++ {
		fx, _ := origin(base.NewSquare(i, 0), flipped)
		_, ry := origin(base.NewSquare(0, i), flipped)
		canvas.Text(fx+SquareSize/2, Size-Border/2+4, string(rune('a'+i)), label)
		canvas.Text(Border/2, ry+SquareSize/2+4, fmt.Sprint(i+1), label)
	}
	canvas.End()
}
