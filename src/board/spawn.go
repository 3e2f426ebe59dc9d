package board

import (
	"ecschess/src/base"
	"ecschess/src/ecs"
	"errors"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	LightColor = color.RGBA{0xff, 0xce, 0x9e, 0xff}
	DarkColor  = color.RGBA{0xd1, 0x89, 0x47, 0xff}
)

const (
	LayerBoard = 0
	LayerPiece = 1
)

var ErrNoSettings = errors.New("board settings resource is missing")

// ---- Components ----

// Sprite is drawn centered on the entity Transform. Image is an asset path;
// when empty the sprite is a solid Color rectangle.
type Sprite struct {
	Color color.RGBA
	Image string
	Size  mgl32.Vec2
	Layer int
}

type Transform struct {
	Translation mgl32.Vec3
}

// Tile marks a board square entity.
type Tile struct {
	Square base.Square
}

var (
	TileComponent      = donburi.NewComponentType[Tile]()
	SpriteComponent    = donburi.NewComponentType[Sprite]()
	TransformComponent = donburi.NewComponentType[Transform]()

	TeamComponent      = donburi.NewComponentType[base.Team]()
	PieceTypeComponent = donburi.NewComponentType[base.PieceType]()
	SquareComponent    = donburi.NewComponentType[base.Square]()

	SettingsComponent = donburi.NewComponentType[Settings]()
)

var (
	TileQuery   = donburi.NewQuery(filter.Contains(TileComponent, SpriteComponent))
	PieceQuery  = donburi.NewQuery(filter.Contains(TeamComponent, PieceTypeComponent, SquareComponent))
	SpriteQuery = donburi.NewQuery(filter.Contains(SpriteComponent, TransformComponent))
)

// ---- Resources ----

type Settings struct {
	Layout       Layout
	Orientation  Orientation
	SquareLength float32
}

func DefaultSettings() Settings {
	return Settings{Layout: Classic, Orientation: WhiteBottom, SquareLength: DefaultSquareLength}
}

func settingsOf(w ecs.World) (*Settings, error) {
	s, ok := ecs.Resource(w, SettingsComponent)
	if !ok {
		return nil, ErrNoSettings
	}
	return s, nil
}

func transformAt(sq base.Square, squareLen float32) Transform {
	pos := WorldPosition(sq, squareLen)
	return Transform{Translation: pos.Vec3(0)}
}

// ---- Startup systems ----

// SpawnBoard spawns the 64 square tiles rank by rank.
func SpawnBoard(w ecs.World) error {
	s, err := settingsOf(w)
	if err != nil {
		return err
	}
	size := mgl32.Vec2{s.SquareLength, s.SquareLength}
	for rank := 1; rank <= base.BoardSide; rank++ {
		for file := 1; file <= base.BoardSide; file++ {
			sq := base.Square{File: uint8(file), Rank: uint8(rank)}
			col := LightColor
			if sq.IsDark() {
				col = DarkColor
			}
			e := ecs.Spawn(w, TileComponent, SpriteComponent, TransformComponent)
			TileComponent.SetValue(e, Tile{Square: sq})
			SpriteComponent.SetValue(e, Sprite{Color: col, Size: size, Layer: LayerBoard})
			TransformComponent.SetValue(e, transformAt(sq, s.SquareLength))
		}
	}
	return nil
}

// SpawnPieces spawns one entity per piece of the layout.
func SpawnPieces(w ecs.World) error {
	s, err := settingsOf(w)
	if err != nil {
		return err
	}
	size := mgl32.Vec2{s.SquareLength, s.SquareLength}
	for _, p := range Expand(s.Layout, s.Orientation) {
		e := ecs.Spawn(w, TeamComponent, PieceTypeComponent, SquareComponent, SpriteComponent, TransformComponent)
		TeamComponent.SetValue(e, p.Team)
		PieceTypeComponent.SetValue(e, p.Type)
		SquareComponent.SetValue(e, p.Square)
		SpriteComponent.SetValue(e, Sprite{Image: base.ImagePath(p.Team, p.Type), Size: size, Layer: LayerPiece})
		TransformComponent.SetValue(e, transformAt(p.Square, s.SquareLength))
	}
	return nil
}

// PieceOf reads the piece components of e.
func PieceOf(e *donburi.Entry) base.Piece {
	return base.Piece{
		Team:   *TeamComponent.Get(e),
		Type:   *PieceTypeComponent.Get(e),
		Square: *SquareComponent.Get(e),
	}
}

// PieceAt scans the piece entities for one standing on sq.
func PieceAt(w ecs.World, sq base.Square) (*donburi.Entry, base.Piece, bool) {
	var found *donburi.Entry
	PieceQuery.Each(w, func(e *donburi.Entry) {
		if found == nil && *SquareComponent.Get(e) == sq {
			found = e
		}
	})
	if found == nil {
		return nil, base.Piece{}, false
	}
	return found, PieceOf(found), true
}
