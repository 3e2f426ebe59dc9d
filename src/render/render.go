package render

import (
	"ecschess/src/board"
	"ecschess/src/ecs"
	"image/color"
	"sort"

	"github.com/yohamta/donburi"
)

// Item is one sprite in screen space, X/Y being its top-left corner.
type Item struct {
	X, Y, W, H float32
	Color      color.RGBA
	Image      string
	Layer      int
}

// Collect lists every entity with Sprite and Transform in draw order:
// by layer, then query order.
func Collect(w ecs.World, width, height float32) []Item {
	var items []Item
	board.SpriteQuery.Each(w, func(e *donburi.Entry) {
		s, tr := board.SpriteComponent.Get(e), board.TransformComponent.Get(e)
		center := board.WorldToScreen(tr.Translation.Vec2(), width, height)
		items = append(items, Item{
			X:     center.X() - s.Size.X()/2,
			Y:     center.Y() - s.Size.Y()/2,
			W:     s.Size.X(),
			H:     s.Size.Y(),
			Color: s.Color,
			Image: s.Image,
			Layer: s.Layer,
		})
	})
	sort.SliceStable(items, func(i, j int) bool { return items[i].Layer < items[j].Layer })
	return items
}

// Layer keeps the items of one layer.
func Layer(items []Item, layer int) []Item {
	var out []Item
	for _, it := range items {
		if it.Layer == layer {
			out = append(out, it)
		}
	}
	return out
}
