package ghelper

import (
	"clickchess/src/chesslib/interact"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func RenderRoundedRect(w, h, radius int, fill color.RGBA, stroke color.RGBA, strokeW float64) *ebiten.Image {
	// gg gives anti-aliased corners
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.DrawRoundedRectangle(strokeW/2, strokeW/2, float64(w)-strokeW, float64(h)-strokeW, float64(radius))
	dc.FillPreserve()
	dc.SetRGBA255(int(stroke.R), int(stroke.G), int(stroke.B), int(stroke.A))
	dc.SetLineWidth(strokeW)
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}

func PointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px < rx+rw && py >= ry && py < ry+rh
}

func DrawRectStroke(screen *ebiten.Image, x, y, w, h, thickness float64, col color.Color) {
	if screen == nil || w <= 0 || h <= 0 || thickness <= 0 {
		return
	}
	thickness = math.Min(thickness, math.Min(w, h)/2.0)
	vector.StrokeRect(screen, float32(x+thickness/2), float32(y+thickness/2),
		float32(w-thickness), float32(h-thickness), float32(thickness), col, false)
}

// DrawSquareStyle paints one overlay entry on the square at (x, y).
func DrawSquareStyle(screen *ebiten.Image, x, y, size float64, st interact.Style) {
	if st.Spot <= 0 {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(size), float32(size), st.Background, false)
		return
	}
	r := st.Spot * size / 2
	cx, cy := x+size/2, y+size/2
	if st.BorderRadius >= 0.5 {
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), st.Background, true)
		return
	}
	corner := st.BorderRadius * 2 * r
	img := RenderRoundedRect(int(2*r), int(2*r), int(corner), st.Background, st.Background, 0)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx-r, cy-r)
	screen.DrawImage(img, op)
}
