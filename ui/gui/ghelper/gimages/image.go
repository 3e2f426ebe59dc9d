package gimages

import (
	"ecschess/src/base"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

var (
	teams = []base.Team{base.White, base.Black}
	types = []base.PieceType{base.Rook, base.Knight, base.Bishop, base.Queen, base.King, base.Pawn}
)

// PieceAsset is one of the twelve piece textures.
type PieceAsset struct {
	Team base.Team
	Type base.PieceType
	Path string // relative, pieces/{team}_{type}.png
}

func PieceAssets() []PieceAsset {
	out := make([]PieceAsset, 0, len(teams)*len(types))
	for _, team := range teams {
		for _, pt := range types {
			out = append(out, PieceAsset{Team: team, Type: pt, Path: base.ImagePath(team, pt)})
		}
	}
	return out
}

// PlaceholderPiece draws a disc in the team color with the piece letter.
func PlaceholderPiece(team base.Team, pt base.PieceType, size int) image.Image {
	s := float64(size)
	dc := gg.NewContext(size, size)

	fill, ink := [3]int{0xf5, 0xf5, 0xf5}, [3]int{0x20, 0x20, 0x20}
	if team == base.Black {
		fill, ink = ink, fill
	}

	dc.DrawCircle(s/2, s/2, s*0.38)
	dc.SetRGBA255(fill[0], fill[1], fill[2], 0xff)
	dc.FillPreserve()
	dc.SetRGBA255(ink[0], ink[1], ink[2], 0xff)
	dc.SetLineWidth(2)
	dc.Stroke()

	dc.SetFontFace(basicfont.Face7x13)
	dc.DrawStringAnchored(string(pt.Letter()), s/2, s/2, 0.5, 0.35)
	return dc.Image()
}
