package gdraw

import (
	"clickchess/src/chesslib/base"
	"clickchess/src/chesslib/interact"
	"clickchess/ui/gui/gbase"
	"clickchess/ui/gui/gbase/glayout"
	"clickchess/ui/gui/ghelper"
	"clickchess/ui/gui/ghelper/gclipboard"
	"clickchess/ui/gui/ghelper/gdialog"
	"fmt"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type buttonAction int

const (
	actNewGame buttonAction = iota
	actFlip
	actCopyFEN
	actPasteFEN
	actLoadFEN
	actQuit
)

// GUIBoardDrawer is the only scene: the board, its side panel and dialogs.
type GUIBoardDrawer struct {
	board glayout.Board

	buttons []*ghelper.Button
	actions []buttonAction

	msg *ghelper.MessageBox

	prevMouseDown bool
	lastTick      time.Time

	// file dialogs block, their result is picked up by Update
	loaded chan loadResult
}

type loadResult struct {
	fen string
	err error
}

func NewGUIBoardDrawer(ctx *ghelper.GUIGameContext) *GUIBoardDrawer {
	if !ctx.Builder.Created() {
		ctx.Builder.CreateClassic()
	}
	bd := &GUIBoardDrawer{
		msg:      ghelper.NewMessageBox(),
		lastTick: time.Now(),
		loaded:   make(chan loadResult, 1),
	}
	bd.recalcLayout(ctx)
	bd.makeLayoutButtons(ctx)
	return bd
}

func (bd *GUIBoardDrawer) recalcLayout(ctx *ghelper.GUIGameContext) {
	bd.board = glayout.NewBoard(ctx.Config.WindowW, ctx.Config.WindowH, ctx.Config.Flipped)
}

func (bd *GUIBoardDrawer) makeLayoutButtons(ctx *ghelper.GUIGameContext) {
	bd.buttons = bd.buttons[:0]
	bd.actions = bd.actions[:0]

	lang := ctx.AssetsWorker.Lang()
	x := bd.board.X - gbase.SidePanel + gbase.Margin
	if x < gbase.Margin {
		x = gbase.Margin
	}
	y := bd.board.Y
	w, h := gbase.SidePanel-2*gbase.Margin, 44

	add := func(key string, a buttonAction) {
		bd.buttons = append(bd.buttons, ghelper.NewButton(lang.T(key), x, y, w, h, ctx.Theme))
		bd.actions = append(bd.actions, a)
		y += h + 14
	}
	add("play.newgame", actNewGame)
	add("play.flip", actFlip)
	add("play.copy_fen", actCopyFEN)
	add("play.paste_fen", actPasteFEN)
	add("play.load_fen", actLoadFEN)
	add("play.quit", actQuit)
}

// Update
func (bd *GUIBoardDrawer) Update(ctx *ghelper.GUIGameContext) error {
	now := time.Now()
	dt := now.Sub(bd.lastTick).Seconds()
	bd.lastTick = now

	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := mouseDown && !bd.prevMouseDown
	justReleased := !mouseDown && bd.prevMouseDown
	bd.prevMouseDown = mouseDown

	select {
	case r := <-bd.loaded:
		bd.applyLoaded(ctx, r)
	default:
	}

	if bd.msg.IsOverlayed() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			bd.msg.Cancel()
		}
		bd.msg.Update(ctx, mx, my, justReleased)
		bd.msg.AnimateMessage()
		return nil
	}

	for i, b := range bd.buttons {
		clicked := b.HandleInput(mx, my, justPressed, justReleased)
		b.UpdateAnim(dt)
		if clicked {
			if err := bd.runAction(ctx, bd.actions[i]); err != nil {
				return err
			}
		}
	}

	if !bd.board.Contains(mx, my) {
		return nil
	}
	sq := bd.board.SquareAt(mx, my)

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		if _, err := ctx.Builder.RightClick(sq); err != nil {
			ctx.Logx.Errorf("right click: %v", err)
		}
	}
	if justReleased {
		r, err := ctx.Builder.Click(sq)
		if err != nil {
			ctx.Logx.Errorf("click: %v", err)
			return nil
		}
		if r.Has(interact.EffectPromotionPrompt) {
			bd.showPromotion(ctx)
		}
	}
	return nil
}

func (bd *GUIBoardDrawer) showPromotion(ctx *ghelper.GUIGameContext) {
	side := ctx.Builder.Turn()
	choices := make([]ghelper.MessageChoice, 0, len(base.PromotionKinds))
	for _, k := range base.PromotionKinds {
		choices = append(choices, ghelper.MessageChoice{
			Label: k.String(),
			Image: ctx.AssetsWorker.Piece(base.MakePiece(k, side)),
			Value: k,
		})
	}
	bd.msg.ShowMessageWithChoices(ctx.AssetsWorker.Lang().T("play.promote"), choices,
		func(_ int, v interface{}) {
			kind, _ := v.(base.PieceKind)
			bd.promote(ctx, kind)
		},
		func() {
			bd.promote(ctx, base.NoKind)
		},
	)
}

func (bd *GUIBoardDrawer) promote(ctx *ghelper.GUIGameContext, kind base.PieceKind) {
	r, err := ctx.Builder.Promote(kind)
	if err == nil {
		err = r.Err
	}
	if err != nil {
		// the box is still collapsing, reuse it once it is closed
		bd.msg.OnClose = func() {
			bd.msg.ShowMessage(fmt.Sprintf("%s: %v", ctx.AssetsWorker.Lang().T("play.bad_promotion"), err), nil)
		}
	}
}

func (bd *GUIBoardDrawer) runAction(ctx *ghelper.GUIGameContext, a buttonAction) error {
	lang := ctx.AssetsWorker.Lang()
	switch a {
	case actNewGame:
		ctx.Builder.CreateClassic()
	case actFlip:
		ctx.Config.Flipped = !ctx.Config.Flipped
		bd.recalcLayout(ctx)
		if err := ctx.Config.Save(); err != nil {
			ctx.Logx.Warnf("error save config: %v", err)
		}
	case actCopyFEN:
		if err := gclipboard.WriteAll(ctx.Builder.FEN()); err != nil {
			ctx.Logx.Errorf("error write clipboard: %v", err)
			bd.msg.ShowMessage(lang.T("play.clipboard_error"), nil)
			return nil
		}
		bd.msg.ShowMessage(lang.T("play.copied"), nil)
	case actPasteFEN:
		fen, err := gclipboard.ReadAll()
		bd.applyLoaded(ctx, loadResult{fen: fen, err: err})
	case actLoadFEN:
		// native dialogs block, keep the game loop running
		go func() {
			res, err := gdialog.OpenFile(lang.T("dialog.load_title"))
			if gdialog.IsCancelled(err) {
				return
			}
			bd.loaded <- loadResult{fen: firstLine(res.Data), err: err}
		}()
	case actQuit:
		return gbase.ErrExit
	}
	return nil
}

func (bd *GUIBoardDrawer) applyLoaded(ctx *ghelper.GUIGameContext, r loadResult) {
	err := r.err
	if err == nil {
		err = ctx.Builder.CreateFromFEN(strings.TrimSpace(r.fen))
	}
	if err != nil {
		ctx.Logx.Warnf("load FEN: %v", err)
		bd.msg.ShowMessage(fmt.Sprintf("%s: %v", ctx.AssetsWorker.Lang().T("play.bad_fen"), err), nil)
	}
}

func firstLine(data []byte) string {
	line, _, _ := strings.Cut(string(data), "\n")
	return line
}

// Draw
func (bd *GUIBoardDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	view := ctx.Builder.View()
	fonts := ctx.AssetsWorker.Fonts()
	b := bd.board
	sqf := float64(b.Square)

	border := ghelper.RenderRoundedRect(b.Size+8, b.Size+8, 6, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(b.X-4), float64(b.Y-4))
	screen.DrawImage(border, op)

	mailbox := ctx.Builder.CurrentBoard()
	for i := 0; i < 64; i++ {
		sq := base.Square(i)
		x, y := b.Origin(sq)
		col := ctx.Theme.DarkSquare
		if b.IsLight(sq) {
			col = ctx.Theme.LightSquare
		}
		ghelper.DrawSquareStyle(screen, float64(x), float64(y), sqf, interact.Style{Background: col})

		// selection and marks go under the piece, move dots above it
		st, styled := view.SquareStyles[sq]
		if styled && st.Spot == 0 {
			ghelper.DrawSquareStyle(screen, float64(x), float64(y), sqf, st)
		}
		if img := ctx.AssetsWorker.Piece(mailbox[sq]); img != nil {
			iw := img.Bounds().Dx()
			scale := sqf / float64(iw)
			op3 := &ebiten.DrawImageOptions{}
			op3.GeoM.Scale(scale, scale)
			op3.GeoM.Translate(float64(x), float64(y))
			op3.Filter = ebiten.FilterLinear
			screen.DrawImage(img, op3)
		}
		if styled && st.Spot > 0 {
			ghelper.DrawSquareStyle(screen, float64(x), float64(y), sqf, st)
		}
	}

	// coordinates
	for i := 0; i < 8; i++ {
		fx, _ := b.Origin(base.NewSquare(i, 0))
		_, ry := b.Origin(base.NewSquare(0, i))
		text.Draw(screen, string(rune('a'+i)), fonts.Small, fx+b.Square/2-3, b.Y+b.Size+18, ctx.Theme.MenuText)
		text.Draw(screen, fmt.Sprint(i+1), fonts.Small, b.X-16, ry+b.Square/2+4, ctx.Theme.MenuText)
	}

	turn := ctx.AssetsWorker.Lang().T("play.turn_white")
	if view.Turn == base.Black {
		turn = ctx.AssetsWorker.Lang().T("play.turn_black")
	}
	text.Draw(screen, turn, fonts.Bold, b.X, b.Y-14, ctx.Theme.MenuText)
	text.Draw(screen, view.FEN, fonts.Small, b.X, b.Y+b.Size+40, ctx.Theme.MenuText)

	for _, btn := range bd.buttons {
		btn.DrawAnimated(screen, fonts.Normal, ctx.Theme)
	}

	bd.msg.Draw(ctx, screen)

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f  phase: %v", ebiten.ActualTPS(), ctx.Builder.Phase()))
	}
}
