package gui

import (
	"ecschess/src"
	"ecschess/src/board"
	"ecschess/src/input"
	"ecschess/src/logx"
	"ecschess/ui/gui/gbase/gconf"
	"ecschess/ui/gui/gdraw"
	"ecschess/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	decs "github.com/yohamta/donburi/ecs"
)

// polled in this order every tick
var mouseButtons = []struct {
	eb  ebiten.MouseButton
	btn input.MouseButton
}{
	{ebiten.MouseButtonLeft, input.MouseLeft},
	{ebiten.MouseButtonRight, input.MouseRight},
	{ebiten.MouseButtonMiddle, input.MouseMiddle},
}

// draw layers of the host
const (
	layerBoard decs.LayerID = iota
	layerPieces
	layerOverlay
)

type GUIProcessing struct {
	ctx    *ghelper.GUIGameContext
	drawer *gdraw.BoardDrawer
	host   *decs.ECS
	err    error
	w, h   int
}

func NewGUI(b *src.GameBuilder, cfg *gconf.Config, logx logx.Logger) (*GUIProcessing, error) {
	as, err := ghelper.NewGUIAssetsWorker(cfg, logx)
	if err != nil {
		return nil, err
	}
	if err := b.Start(); err != nil {
		return nil, err
	}
	gp := &GUIProcessing{
		ctx:    ghelper.NewGUIGameContext(b, as, cfg, logx),
		drawer: gdraw.NewBoardDrawer(),
		w:      cfg.WindowW,
		h:      cfg.WindowH,
	}
	gp.host = decs.NewECS(b.World()).
		AddSystem(gp.step).
		AddRenderer(layerBoard, gp.drawLayer(board.LayerBoard)).
		AddRenderer(layerPieces, gp.drawLayer(board.LayerPiece)).
		AddRenderer(layerOverlay, func(_ *decs.ECS, screen *ebiten.Image) {
			gp.drawer.DrawOverlay(gp.ctx, screen)
		})
	return gp, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle("ECS Chess")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	gp.ctx.Logx.Infof("gui started %dx%d", gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	return ebiten.RunGame(gp)
}

// poll snapshots the ebiten window and mouse for this tick.
func (gp *GUIProcessing) poll() input.Frame {
	x, y := ebiten.CursorPosition()
	f := input.Frame{HasWindow: gp.w > 0 && gp.h > 0, Width: gp.w, Height: gp.h, CursorX: x, CursorY: y}
	for _, m := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(m.eb) {
			f.Transitions = append(f.Transitions, input.MouseButtonInput{Button: m.btn, State: input.Pressed})
		}
		if inpututil.IsMouseButtonJustReleased(m.eb) {
			f.Transitions = append(f.Transitions, input.MouseButtonInput{Button: m.btn, State: input.Released})
		}
	}
	return f
}

// step is the only host system: feed input, run one board frame.
func (gp *GUIProcessing) step(e *decs.ECS) {
	input.Apply(e.World, gp.poll())
	gp.err = gp.ctx.Builder.Update()
}

func (gp *GUIProcessing) drawLayer(layer int) decs.Renderer {
	return func(e *decs.ECS, screen *ebiten.Image) {
		gp.drawer.DrawLayer(gp.ctx, screen, layer)
	}
}

func (gp *GUIProcessing) Update() error {
	gp.host.Update()
	return gp.err
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.drawer.DrawFrame(gp.ctx, screen)
	gp.host.DrawLayer(layerBoard, screen)
	gp.host.DrawLayer(layerPieces, screen)
	gp.host.DrawLayer(layerOverlay, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	gp.w, gp.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
