package selection

import (
	"ecschess/src/base"
	"ecschess/src/board"
	"ecschess/src/ecs"
	"ecschess/src/input"
	"ecschess/src/logx"
	"fmt"
	"io"

	"github.com/yohamta/donburi"
)

// PlayerTeam is the only side whose pieces may be selected.
type PlayerTeam struct {
	Team base.Team
}

var PlayerTeamComponent = donburi.NewComponentType[PlayerTeam]()

// Reporter prints a selection to the console and the log.
type Reporter struct {
	out    io.Writer
	logger logx.Logger
}

func NewReporter(out io.Writer, logger logx.Logger) *Reporter {
	return &Reporter{out: out, logger: logger}
}

func (r *Reporter) Report(p base.Piece) {
	if r.out != nil {
		fmt.Fprintf(r.out, "selected %s\n", p)
	}
	r.logger.Infow("piece selected", "team", p.Team.Name(), "type", p.Type.Name(), "square", p.Square.String())
}

type Handler struct {
	reporter *Reporter
	logger   logx.Logger
}

func NewHandler(reporter *Reporter, logger logx.Logger) *Handler {
	return &Handler{reporter: reporter, logger: logger}
}

// Setup is a startup system subscribing the handler to mouse input.
func (h *Handler) Setup(w ecs.World) error {
	input.MouseButtonEvents.Subscribe(w, h.onMouseButton)
	return nil
}

// System delivers the mouse events published this frame.
func (h *Handler) System(w ecs.World) error {
	input.MouseButtonEvents.ProcessEvents(w)
	return nil
}

func (h *Handler) onMouseButton(w donburi.World, ev input.MouseButtonInput) {
	if ev.Button != input.MouseLeft || ev.State != input.Released {
		return
	}
	window, ok := ecs.Resource(w, input.PrimaryWindowComponent)
	if !ok {
		return
	}
	h.click(w, window)
}

func (h *Handler) click(w ecs.World, window *input.PrimaryWindow) {
	cursor, ok := ecs.Resource(w, input.CursorComponent)
	if !ok || !window.Contains(cursor.Position) {
		return
	}

	squareLen := board.DefaultSquareLength
	if s, ok := ecs.Resource(w, board.SettingsComponent); ok {
		squareLen = s.SquareLength
	}

	sq, ok := board.SquareAt(cursor.Position, window.Width, window.Height, squareLen)
	if !ok {
		h.logger.Debugf("click at %v outside the board", cursor.Position)
		return
	}

	_, piece, ok := board.PieceAt(w, sq)
	if !ok {
		h.logger.Debugf("click on empty square %s", sq)
		return
	}

	player := base.White
	if t, ok := ecs.Resource(w, PlayerTeamComponent); ok {
		player = t.Team
	}
	if piece.Team != player {
		h.logger.Debugf("click on %s ignored, player is %s", piece, player)
		return
	}
	h.reporter.Report(piece)
}
