package gimages

import (
	"clickchess/src/chesslib/base"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

const SpriteSize = 64

var AllPieces = []base.Piece{
	base.WKing, base.WQueen, base.WRook, base.WBishop, base.WKnight, base.WPawn,
	base.BKing, base.BQueen, base.BRook, base.BBishop, base.BKnight, base.BPawn,
}

// RenderPiece draws a token: a disc in the piece colour with its letter.
func RenderPiece(p base.Piece, size int, face font.Face) image.Image {
	dc := gg.NewContext(size, size)
	c := float64(size) / 2
	r := c * 0.78

	fill, ink := "#f8f8f8", "#222222"
	if p.Color() == base.Black {
		fill, ink = "#262626", "#f0f0f0"
	}

	// shadow
	dc.DrawCircle(c+1.5, c+2.5, r)
	dc.SetRGBA255(0, 0, 0, 70)
	dc.Fill()

	dc.DrawCircle(c, c, r)
	dc.SetHexColor(fill)
	dc.FillPreserve()
	dc.SetHexColor("#7a7a7a")
	dc.SetLineWidth(float64(size) / 24)
	dc.Stroke()

	if p.Kind() == base.King {
		dc.DrawCircle(c, c, r*0.82)
		dc.SetHexColor(ink)
		dc.SetLineWidth(float64(size) / 40)
		dc.Stroke()
	}

	if face != nil {
		dc.SetFontFace(face)
	}
	dc.SetHexColor(ink)
	letter := string(base.ConvertRuneFromPiece(base.MakePiece(p.Kind(), base.White)))
	dc.DrawStringAnchored(letter, c, c, 0.5, 0.38)
	return dc.Image()
}

func LoadPieceAssets(face font.Face) map[base.Piece]image.Image {
	images := make(map[base.Piece]image.Image, len(AllPieces))
	for _, p := range AllPieces {
		images[p] = RenderPiece(p, SpriteSize, face)
	}
	return images
}

// LoadIconAssets renders the window icon (a white king) once and scales it
// down to the sizes window managers ask for.
func LoadIconAssets(face font.Face) map[int]image.Image {
	src := RenderPiece(base.WKing, SpriteSize, face)
	icons := map[int]image.Image{SpriteSize: src}
	for _, s := range []int{16, 32, 48} {
		dst := image.NewRGBA(image.Rect(0, 0, s, s))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
		icons[s] = dst
	}
	return icons
}
