package ghelper

import (
	"ecschess/src/logx"
	"ecschess/ui/gui/gbase/gconf"
	"ecschess/ui/gui/ghelper/gfont"
	"ecschess/ui/gui/ghelper/gimages"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

type GUIAssetsWorker struct {
	pieceImages map[string]*ebiten.Image
	missing     []string
	fonts       *gfont.Fonts
}

// NewGUIAssetsWorker loads the piece textures from cfg.AssetsDir. A piece
// that cannot be read gets a drawn placeholder instead.
func NewGUIAssetsWorker(cfg *gconf.Config, logger logx.Logger) (*GUIAssetsWorker, error) {
	fonts, err := gfont.LoadFonts(cfg.FontPath, 14)
	if err != nil {
		return nil, err
	}

	aw := &GUIAssetsWorker{pieceImages: make(map[string]*ebiten.Image), fonts: fonts}
	for _, a := range gimages.PieceAssets() {
		img, _, err := ebitenutil.NewImageFromFile(filepath.Join(cfg.AssetsDir, a.Path))
		if err != nil {
			logger.Debugf("error load %s: %v", a.Path, err)
			aw.missing = append(aw.missing, a.Path)
			img = ebiten.NewImageFromImage(gimages.PlaceholderPiece(a.Team, a.Type, int(cfg.SquareLength)))
		}
		aw.pieceImages[a.Path] = img
	}
	if len(aw.missing) > 0 {
		logger.Warnf("%d piece images missing under %s, using placeholders", len(aw.missing), cfg.AssetsDir)
	}
	return aw, nil
}

// Image returns the texture for an asset path like pieces/white_king.png.
func (aw *GUIAssetsWorker) Image(path string) *ebiten.Image {
	return aw.pieceImages[path]
}

func (aw *GUIAssetsWorker) Missing() []string {
	return aw.missing
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}
