package gdraw

import (
	"ecschess/src/base"
	"ecschess/src/board"
	"ecschess/src/render"
	"ecschess/ui/gui/gbase"
	"ecschess/ui/gui/ghelper"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// BoardDrawer renders the world sprites plus board frame and labels.
type BoardDrawer struct {
	border     *ebiten.Image
	borderSide int
}

func NewBoardDrawer() *BoardDrawer {
	return &BoardDrawer{}
}

func (bd *BoardDrawer) borderImage(ctx *ghelper.GUIGameContext, side int) *ebiten.Image {
	if bd.border == nil || bd.borderSide != side {
		bd.border = ghelper.RenderRoundedRect(side, side, gbase.BorderRadius, ctx.Theme.BorderFill, ctx.Theme.BorderStroke, 2)
		bd.borderSide = side
	}
	return bd.border
}

func screenSize(screen *ebiten.Image) (float32, float32) {
	b := screen.Bounds()
	return float32(b.Dx()), float32(b.Dy())
}

// DrawFrame clears the screen and draws the border under the squares.
func (bd *BoardDrawer) DrawFrame(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	width, height := screenSize(screen)
	sqLen := ctx.Builder.Settings().SquareLength
	corner := board.Corner(width, height, sqLen)
	side := sqLen * base.BoardSide

	frame := int(side) + 2*gbase.BorderW
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(corner.X())-gbase.BorderW, float64(corner.Y()-side)-gbase.BorderW)
	screen.DrawImage(bd.borderImage(ctx, frame), op)
}

// DrawLayer draws the sprites of one layer.
func (bd *BoardDrawer) DrawLayer(ctx *ghelper.GUIGameContext, screen *ebiten.Image, layer int) {
	width, height := screenSize(screen)
	for _, it := range render.Layer(render.Collect(ctx.Builder.World(), width, height), layer) {
		x, y, w, h := float64(it.X), float64(it.Y), float64(it.W), float64(it.H)
		if it.Image == "" {
			ghelper.DrawRect(screen, x, y, w, h, it.Color)
			continue
		}
		if img := ctx.AssetsWorker.Image(it.Image); img != nil {
			ghelper.DrawImageFit(screen, img, x, y, w, h)
		}
	}
}

// DrawOverlay draws the labels and, in debug mode, the status line.
func (bd *BoardDrawer) DrawOverlay(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	width, height := screenSize(screen)
	bd.drawLabels(ctx, screen, width, height, ctx.Builder.Settings().SquareLength)

	if ctx.Config.DebugMode() {
		line := fmt.Sprintf("TPS: %0.2f  missing images: %d", ebiten.ActualTPS(), len(ctx.AssetsWorker.Missing()))
		face := ctx.AssetsWorker.Fonts().Debug
		text.Draw(screen, line, face, 4, face.Metrics().Ascent.Ceil()+2, ctx.Theme.DebugText)
	}
}

// file letters under the board, rank numbers left of it
func (bd *BoardDrawer) drawLabels(ctx *ghelper.GUIGameContext, screen *ebiten.Image, width, height, sqLen float32) {
	face := ctx.AssetsWorker.Fonts().Label
	corner := board.Corner(width, height, sqLen)
	for i := 1; i <= base.BoardSide; i++ {
		center := board.ScreenCenter(base.Square{File: uint8(i), Rank: uint8(i)}, width, height, sqLen)

		file := string(rune('a' + i - 1))
		fb := text.BoundString(face, file)
		text.Draw(screen, file, face, int(center.X())-fb.Dx()/2, int(corner.Y())+gbase.BorderW+gbase.LabelGap, ctx.Theme.LabelText)

		rank := fmt.Sprintf("%d", i)
		rb := text.BoundString(face, rank)
		text.Draw(screen, rank, face, int(corner.X())-gbase.BorderW-gbase.LabelGap, int(center.Y())+rb.Dy()/2, ctx.Theme.LabelText)
	}
}
