package gfont

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Label font.Face
	Debug font.Face
}

// LoadFonts parses the ttf/otf at path for board labels. An empty path
// uses the builtin 7x13 face.
func LoadFonts(path string, size float64) (*Fonts, error) {
	fonts := &Fonts{Label: basicfont.Face7x13, Debug: basicfont.Face7x13}
	if path == "" {
		return fonts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error parse font %s: %w", path, err)
	}
	fonts.Label, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	return fonts, nil
}
