package gui

import (
	"clickchess/src/chesslib"
	"clickchess/src/logx"
	"clickchess/ui/gui/gbase/gconf"
	"clickchess/ui/gui/gdraw"
	"clickchess/ui/gui/ghelper"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	scene *gdraw.GUIBoardDrawer
	ctx   *ghelper.GUIGameContext
}

// NewGUI loads the config at cfgPath (defaults if absent). A builder without a
// game starts from the configured FEN or the classic position.
func NewGUI(b *chesslib.GameBuilder, cfgPath string, logger logx.Logger) (*GUIProcessing, error) {
	cfg, err := gconf.NewGUIConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	as, err := ghelper.NewGUIAssetsWorker(cfg)
	if err != nil {
		return nil, err
	}
	if !b.Created() && cfg.StartFEN != "" {
		if err := b.CreateFromFEN(cfg.StartFEN); err != nil {
			return nil, fmt.Errorf("config start_fen: %w", err)
		}
	}
	ctx := ghelper.NewGUIGameContext(b, as, cfg, logger)
	return &GUIProcessing{scene: gdraw.NewGUIBoardDrawer(ctx), ctx: ctx}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowIcon(gp.ctx.AssetsWorker.Icons())
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle(gp.ctx.AssetsWorker.Lang().T("window.title"))
	gp.ctx.Logx.Debugf("run GUI %dx%d, config %s", gp.ctx.Config.WindowW, gp.ctx.Config.WindowH, gp.ctx.Config.Path())
	return ebiten.RunGame(gp)
}

func (gp *GUIProcessing) Update() error {
	return gp.scene.Update(gp.ctx)
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.scene.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Config.WindowW, gp.ctx.Config.WindowH
}
