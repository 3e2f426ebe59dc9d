package src

import (
	"ecschess/src/base"
	"ecschess/src/board"
	"ecschess/src/ecs"
	"ecschess/src/input"
	"ecschess/src/logx"
	"ecschess/src/selection"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

type Options struct {
	Board      board.Settings
	PlayerTeam base.Team
	Console    io.Writer // selection output, stdout when nil
}

func DefaultOptions() Options {
	return Options{Board: board.DefaultSettings(), PlayerTeam: base.White}
}

// GameBuilder assembles the world and its systems.
type GameBuilder struct {
	app    *ecs.App
	opts   Options
	logger logx.Logger
}

func NewBuilderBoard(logger logx.Logger, opts Options) *GameBuilder {
	if opts.Console == nil {
		opts.Console = os.Stdout
	}
	if !board.ValidSquareLength(opts.Board.SquareLength) {
		opts.Board.SquareLength = board.DefaultSquareLength
	}

	app := ecs.NewApp(logger)
	ecs.SetResource(app.World(), board.SettingsComponent, opts.Board)
	ecs.SetResource(app.World(), selection.PlayerTeamComponent, selection.PlayerTeam{Team: opts.PlayerTeam})

	h := selection.NewHandler(selection.NewReporter(opts.Console, logger), logger)
	app.AddStartupSystem("spawn_board", board.SpawnBoard).
		AddStartupSystem("spawn_pieces", board.SpawnPieces).
		AddStartupSystem("subscribe_selection", h.Setup).
		AddSystem("select_piece", h.System)

	logger.Debugf("board builder: orientation %s, player %s, square %.0fpx",
		opts.Board.Orientation, opts.PlayerTeam, opts.Board.SquareLength)
	return &GameBuilder{app: app, opts: opts, logger: logger}
}

func (gb *GameBuilder) World() ecs.World {
	return gb.app.World()
}

func (gb *GameBuilder) Settings() board.Settings {
	return gb.opts.Board
}

func (gb *GameBuilder) PlayerTeam() base.Team {
	return gb.opts.PlayerTeam
}

func (gb *GameBuilder) Start() error {
	return gb.app.Startup()
}

func (gb *GameBuilder) Update() error {
	return gb.app.Update()
}

// Pieces lists the spawned pieces in spawn order.
func (gb *GameBuilder) Pieces() []base.Piece {
	var out []base.Piece
	board.PieceQuery.Each(gb.app.World(), func(e *donburi.Entry) {
		out = append(out, board.PieceOf(e))
	})
	return out
}

// PieceAt returns the piece standing on sq.
func (gb *GameBuilder) PieceAt(sq base.Square) (base.Piece, bool) {
	_, p, ok := board.PieceAt(gb.app.World(), sq)
	return p, ok
}

// Click runs one frame with a left button release at (x, y) inside a
// virtual window of the given size.
func (gb *GameBuilder) Click(x, y, width, height float32) error {
	w := gb.app.World()
	ecs.SetResource(w, input.PrimaryWindowComponent, input.PrimaryWindow{Width: width, Height: height})
	ecs.SetResource(w, input.CursorComponent, input.Cursor{Position: mgl32.Vec2{x, y}})
	input.MouseButtonEvents.Publish(w, input.MouseButtonInput{Button: input.MouseLeft, State: input.Pressed})
	input.MouseButtonEvents.Publish(w, input.MouseButtonInput{Button: input.MouseLeft, State: input.Released})
	return gb.app.Update()
}
