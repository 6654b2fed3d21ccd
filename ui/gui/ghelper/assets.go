package ghelper

import (
	"clickchess/src/chesslib/base"
	"clickchess/ui/gui/gbase/gconf"
	"clickchess/ui/gui/ghelper/gfont"
	"clickchess/ui/gui/ghelper/gimages"
	"clickchess/ui/gui/ghelper/glang"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIAssetsWorker struct {
	fonts       *gfont.Fonts
	pieceImages map[base.Piece]*ebiten.Image
	icons       map[int]image.Image
	lang        *glang.GUILangWorker
}

func NewGUIAssetsWorker(cfg *gconf.Config) (*GUIAssetsWorker, error) {
	f, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}
	l, err := glang.NewGUILangWorker("assets/lang", cfg.Lang)
	if err != nil {
		return nil, err
	}

	pieceImages := make(map[base.Piece]*ebiten.Image)
	for p, img := range gimages.LoadPieceAssets(f.Piece) {
		pieceImages[p] = ebiten.NewImageFromImage(img)
	}
	return &GUIAssetsWorker{
		fonts:       f,
		pieceImages: pieceImages,
		icons:       gimages.LoadIconAssets(f.Bold),
		lang:        l,
	}, nil
}

// Piece is nil for EmptyPiece
func (aw *GUIAssetsWorker) Piece(p base.Piece) *ebiten.Image {
	return aw.pieceImages[p]
}

func (aw *GUIAssetsWorker) Lang() *glang.GUILangWorker {
	return aw.lang
}

func (aw *GUIAssetsWorker) Icons() []image.Image {
	return []image.Image{aw.icons[16], aw.icons[32], aw.icons[48], aw.icons[64]}
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}
