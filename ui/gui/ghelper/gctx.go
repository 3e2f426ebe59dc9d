package ghelper

import (
	"ecschess/src"
	"ecschess/src/logx"
	"ecschess/ui/gui/gbase"
	"ecschess/ui/gui/gbase/gconf"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Builder      *src.GameBuilder
	AssetsWorker *GUIAssetsWorker
	Config       *gconf.Config
	Theme        gbase.Palette
	Logx         logx.Logger
}

func NewGUIGameContext(b *src.GameBuilder, a *GUIAssetsWorker, c *gconf.Config, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Builder:      b,
		AssetsWorker: a,
		Config:       c,
		Theme:        gbase.PaletteFromString(c.Theme),
		Logx:         l,
	}
}
