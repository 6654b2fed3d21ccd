package interact

import (
	"clickchess/src/chesslib/base"
	"image/color"
)

type StyleKind uint8

const (
	StyleSelected StyleKind = iota + 1 // origin of the pending move
	StyleQuiet                         // legal destination, empty square
	StyleCapture                       // legal destination, opposing piece
	StyleMark                          // right-click annotation
)

// Style tells a renderer how to paint one square on top of the board.
type Style struct {
	Kind       StyleKind
	Background color.RGBA
	// radius of a centered spot as a fraction of half the square; 0 fills the square
	Spot float64
	// corner radius as a fraction of the square side, 0.5 == circle
	BorderRadius float64
}

var (
	SelectedStyle = Style{Kind: StyleSelected, Background: color.RGBA{0xff, 0xff, 0x00, 0x66}}
	QuietStyle    = Style{Kind: StyleQuiet, Background: color.RGBA{0x00, 0x00, 0x00, 0x1a}, Spot: 0.25, BorderRadius: 0.5}
	CaptureStyle  = Style{Kind: StyleCapture, Background: color.RGBA{0x00, 0x00, 0x00, 0x1a}, Spot: 0.85, BorderRadius: 0.5}
	MarkStyle     = Style{Kind: StyleMark, Background: color.RGBA{0x00, 0x00, 0xff, 0x66}}
)

// Overlay maps squares to the style painted over them. A nil Overlay is empty.
type Overlay map[base.Square]Style

func (o Overlay) Has(sq base.Square) bool {
	_, ok := o[sq]
	return ok
}

func (o Overlay) Clone() Overlay {
	if len(o) == 0 {
		return nil
	}
	out := make(Overlay, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Merge returns a new overlay with the entries of top painted over o.
func (o Overlay) Merge(top Overlay) Overlay {
	if len(o) == 0 && len(top) == 0 {
		return nil
	}
	out := make(Overlay, len(o)+len(top))
	for k, v := range o {
		out[k] = v
	}
	for k, v := range top {
		out[k] = v
	}
	return out
}
