package ghelper

import (
	"clickchess/ui/gui/gbase"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// ---- UI ELEMENTS ----

// ---- Button ----

type Button struct {
	Label      string
	X, Y, W, H int
	Image      *ebiten.Image // pre-rendered rounded rect with stroke

	// animation state
	Hover   bool
	Pressed bool // mouse went down on this button and is still held
	// animation variables
	Scale         float64
	TargetScale   float64
	OffsetY       float64 // pressed effect
	TargetOffsetY float64
	AnimSpeed     float64 // per second
}

func NewButton(label string, x, y, w, h int, theme gbase.Palette) *Button {
	return &Button{
		Label: label,
		X:     x, Y: y, W: w, H: h,
		Image: RenderRoundedRect(w, h, 12, theme.ButtonFill, theme.ButtonStroke, 3),
		Scale: 1.0, TargetScale: 1.0, AnimSpeed: 10.0,
	}
}

func (b *Button) Contains(px, py int) bool {
	return PointInRect(px, py, b.X, b.Y, b.W, b.H)
}

// Call every Update: pass mouse info, returns true if click finished on this button
func (b *Button) HandleInput(px, py int, justClicked, justReleased bool) bool {
	inside := b.Contains(px, py)
	b.Hover = inside

	if justClicked && inside {
		b.Pressed = true
		b.TargetScale = 0.96
		b.TargetOffsetY = 3.0
	}
	if justReleased {
		clicked := b.Pressed && inside
		b.Pressed = false
		b.TargetOffsetY = 0
		if clicked {
			b.TargetScale = 1.03 // bounce
			return true
		}
		b.TargetScale = 1.0
	}
	if !b.Pressed {
		b.TargetOffsetY = 0
		if inside {
			b.TargetScale = 1.02
		} else {
			b.TargetScale = 1.0
		}
	}
	return false
}

// Call every Update with dt seconds to approach the target values
func (b *Button) UpdateAnim(dt float64) {
	if b.AnimSpeed <= 0 {
		b.AnimSpeed = 8.0
	}
	approach := func(cur *float64, target float64) {
		t := 1.0 - math.Exp(-b.AnimSpeed*dt)
		*cur = *cur*(1.0-t) + target*t
	}
	approach(&b.Scale, b.TargetScale)
	approach(&b.OffsetY, b.TargetOffsetY)

	if !b.Pressed && math.Abs(b.Scale-1.03) < 0.005 {
		b.TargetScale = 1.0
	}
}

func (b *Button) DrawAnimated(screen *ebiten.Image, face font.Face, theme gbase.Palette) {
	if b.Image == nil {
		return
	}
	cx := float64(b.X + b.W/2)
	cy := float64(b.Y+b.H/2) + b.OffsetY

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Image.Bounds().Dx())/2, -float64(b.Image.Bounds().Dy())/2)
	op.GeoM.Scale(b.Scale, b.Scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(b.Image, op)

	bounds := text.BoundString(face, b.Label)
	text.Draw(screen, b.Label, face, int(cx)-bounds.Dx()/2, int(cy)+bounds.Dy()/2, theme.ButtonText)
}

// ---- MessageBox ----

type MessageChoice struct {
	Label string
	Image *ebiten.Image
	Value interface{}
}

type rect struct{ X, Y, W, H int }

func (r rect) contains(px, py int) bool {
	return PointInRect(px, py, r.X, r.Y, r.W, r.H)
}

const (
	choiceSize = 64
	choiceGap  = 14
	okW, okH   = 120, 44
)

type MessageBox struct {
	Label string

	// state
	Open      bool
	Animating bool
	Scale     float64 // 0..1
	Opening   bool
	OnClose   func()

	// choices
	Choices    []MessageChoice
	HoverIndex int
	OnSelect   func(idx int, v interface{})
	// a release outside the box while choices are shown
	OnCancel func()
}

func NewMessageBox() *MessageBox {
	return &MessageBox{HoverIndex: -1}
}

func (mb *MessageBox) AnimateMessage() {
	const dt = 1.0 / 60.0
	const speed = 6.0
	if !mb.Animating {
		return
	}
	if mb.Opening {
		mb.Scale += speed * dt
		if mb.Scale >= 1.0 {
			mb.Scale = 1.0
			mb.Animating = false
		}
		return
	}
	mb.Scale -= speed * dt
	if mb.Scale <= 0.0 {
		mb.Scale = 0.0
		mb.Animating = false
		mb.Open = false
		if mb.OnClose != nil {
			mb.OnClose()
		}
	}
}

func (mb *MessageBox) open(msg string, choices []MessageChoice) {
	mb.Label = msg
	mb.Choices = choices
	mb.HoverIndex = -1
	mb.Open = true
	mb.Opening = true
	mb.Animating = true
	mb.Scale = 0.0
}

func (mb *MessageBox) ShowMessage(msg string, onClose func()) {
	mb.open(msg, nil)
	mb.OnSelect = nil
	mb.OnCancel = nil
	mb.OnClose = onClose
}

func (mb *MessageBox) ShowMessageWithChoices(msg string, choices []MessageChoice, onSelect func(idx int, v interface{}), onCancel func()) {
	mb.open(msg, choices)
	mb.OnSelect = onSelect
	mb.OnCancel = onCancel
	mb.OnClose = nil
}

// box geometry for the current scale
func (mb *MessageBox) layout(ctx *GUIGameContext) (box rect, textX, textY int) {
	bounds := text.BoundString(ctx.AssetsWorker.Fonts().Normal, mb.Label)
	textW, textH := bounds.Dx(), bounds.Dy()
	if textW < 200 {
		textW = 200
	}
	const paddingX, paddingY = 64, 40

	mw := textW + paddingX
	mh := textH + paddingY
	if n := len(mb.Choices); n > 0 {
		if total := n*choiceSize + (n-1)*choiceGap; total+paddingX > mw {
			mw = total + paddingX
		}
		mh += choiceSize + 24
	} else {
		mh += okH + 20
	}

	scale := math.Max(0, math.Min(1, mb.Scale))
	w := int(math.Max(6, float64(mw)*scale))
	h := int(math.Max(6, float64(mh)*scale))
	box = rect{X: (ctx.Config.WindowW - w) / 2, Y: (ctx.Config.WindowH - h) / 2, W: w, H: h}
	return box, box.X + 32, box.Y + 20 + textH
}

func (mb *MessageBox) choiceRects(box rect, textY int) []rect {
	n := len(mb.Choices)
	total := n*choiceSize + (n-1)*choiceGap
	startX := box.X + (box.W-total)/2
	out := make([]rect, n)
	for i := range out {
		out[i] = rect{X: startX + i*(choiceSize+choiceGap), Y: textY + 12, W: choiceSize, H: choiceSize}
	}
	return out
}

func (mb *MessageBox) okRect(box rect) rect {
	return rect{X: box.X + (box.W-okW)/2, Y: box.Y + box.H - okH - 20, W: okW, H: okH}
}

func (mb *MessageBox) Update(ctx *GUIGameContext, mx, my int, justReleased bool) {
	if !mb.Open || (mb.Animating && !mb.Opening) {
		return
	}

	box, _, textY := mb.layout(ctx)
	mb.HoverIndex = -1
	if len(mb.Choices) == 0 {
		if justReleased && mb.okRect(box).contains(mx, my) {
			mb.CollapseMessage()
		}
		return
	}

	for i, r := range mb.choiceRects(box, textY) {
		if r.contains(mx, my) {
			mb.HoverIndex = i
		}
	}
	if !justReleased {
		return
	}
	switch {
	case mb.HoverIndex >= 0:
		if mb.OnSelect != nil {
			mb.OnSelect(mb.HoverIndex, mb.Choices[mb.HoverIndex].Value)
		}
		mb.CollapseMessage()
	case !box.contains(mx, my):
		mb.Cancel()
	}
}

// Cancel closes the box and reports it as dismissed.
func (mb *MessageBox) Cancel() {
	if !mb.Open || !mb.Opening {
		return
	}
	if mb.OnCancel != nil {
		mb.OnCancel()
	}
	mb.CollapseMessage()
}

func (mb *MessageBox) IsOverlayed() bool {
	return mb.Open || mb.Animating
}

func (mb *MessageBox) Draw(ctx *GUIGameContext, screen *ebiten.Image) {
	if !mb.IsOverlayed() {
		return
	}
	fonts := ctx.AssetsWorker.Fonts()

	// dim background
	sb := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(sb.Dx()), float32(sb.Dy()), ctx.Theme.ModalBg, false)

	box, textX, textY := mb.layout(ctx)
	modalImg := RenderRoundedRect(box.W, box.H, 16, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(box.X), float64(box.Y))
	screen.DrawImage(modalImg, op)
	if mb.Scale <= 0.85 {
		return
	}

	text.Draw(screen, mb.Label, fonts.Normal, textX, textY, ctx.Theme.MenuText)

	if len(mb.Choices) == 0 {
		ok := mb.okRect(box)
		okImg := RenderRoundedRect(ok.W, ok.H, 12, ctx.Theme.Accent, ctx.Theme.ButtonStroke, 3)
		op2 := &ebiten.DrawImageOptions{}
		op2.GeoM.Translate(float64(ok.X), float64(ok.Y))
		screen.DrawImage(okImg, op2)
		label := ctx.AssetsWorker.Lang().T("button.ok")
		b := text.BoundString(fonts.Normal, label)
		text.Draw(screen, label, fonts.Normal, ok.X+(ok.W-b.Dx())/2, ok.Y+(ok.H+b.Dy())/2, color.White)
		return
	}

	for i, r := range mb.choiceRects(box, textY) {
		ch := mb.Choices[i]
		bg := RenderRoundedRect(r.W, r.H, 13, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
		opc := &ebiten.DrawImageOptions{}
		opc.GeoM.Translate(float64(r.X), float64(r.Y))
		screen.DrawImage(bg, opc)

		if ch.Image != nil {
			iw, ih := ch.Image.Bounds().Dx(), ch.Image.Bounds().Dy()
			s := math.Min(float64(r.W)/float64(iw), float64(r.H)/float64(ih)) * 0.9
			opImg := &ebiten.DrawImageOptions{}
			opImg.GeoM.Scale(s, s)
			opImg.GeoM.Translate(float64(r.X)+(float64(r.W)-float64(iw)*s)/2, float64(r.Y)+(float64(r.H)-float64(ih)*s)/2)
			opImg.Filter = ebiten.FilterLinear
			screen.DrawImage(ch.Image, opImg)
		} else if ch.Label != "" {
			text.Draw(screen, ch.Label, fonts.Bold, r.X+8, r.Y+40, ctx.Theme.MenuText)
		}

		if i == mb.HoverIndex {
			DrawRectStroke(screen, float64(r.X)+2, float64(r.Y)+2, float64(r.W)-4, float64(r.H)-4, 3, ctx.Theme.Accent)
		}
	}
}

func (mb *MessageBox) CollapseMessage() {
	mb.Opening = false
	mb.Animating = true
}
