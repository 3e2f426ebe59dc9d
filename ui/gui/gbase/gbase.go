package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	WindowW int = 1280
	WindowH int = 720

	BorderW      = 8
	BorderRadius = 6
	LabelGap     = 14
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg           color.RGBA
	BorderFill   color.RGBA
	BorderStroke color.RGBA
	LabelText    color.RGBA
	DebugText    color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:           color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	BorderFill:   color.RGBA{0x8b, 0x5a, 0x2b, 0xff},
	BorderStroke: color.RGBA{0x5c, 0x3a, 0x1a, 0xff},
	LabelText:    color.RGBA{0x22, 0x22, 0x22, 0xff},
	DebugText:    color.RGBA{0x22, 0x88, 0xcc, 0xff},
}

var DarkPalette = Palette{
	Bg:           color.RGBA{0x12, 0x12, 0x12, 0xff},
	BorderFill:   color.RGBA{0x3a, 0x2a, 0x1c, 0xff},
	BorderStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	LabelText:    color.RGBA{0xee, 0xee, 0xee, 0xff},
	DebugText:    color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
}
