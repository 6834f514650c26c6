// Package gallery turns an ordered media list into renderable tiles and
// dispatches open requests for image tiles.
package gallery

import (
	"github.com/studiocedro/site/internal/layout"
	"github.com/studiocedro/site/internal/media"
)

// Trigger names the user action that activated a tile.
type Trigger string

const (
	Click Trigger = "click"
	Enter Trigger = "Enter"
	Space Trigger = " "
)

// Tile is the view model for one gallery entry.
type Tile struct {
	Index       int
	Item        media.Item
	Variant     int
	Interactive bool
}

// IsVideo reports whether the tile renders a video element.
func (t Tile) IsVideo() bool { return t.Item.Type == media.TypeVideo }

// Position is the 1-based tile number used in labels.
func (t Tile) Position() int { return t.Index + 1 }

// Gallery renders a list of media items. Open callbacks receive the index
// within this gallery's own item list, not the catalog position.
type Gallery struct {
	items   []media.Item
	pattern layout.Pattern
	onOpen  func(int)
	tone    string
	compact bool
}

// Option customises a Gallery.
type Option func(*Gallery)

// WithTone sets the tone class suffix.
func WithTone(tone string) Option {
	return func(g *Gallery) {
		if tone != "" {
			g.tone = tone
		}
	}
}

// WithOffset decorates the items with the pattern tail starting at offset,
// for galleries that show a later slice of the catalog.
func WithOffset(offset int) Option {
	return func(g *Gallery) {
		g.pattern = g.pattern.From(offset)
	}
}

// Compact renders the denser grid.
func Compact() Option {
	return func(g *Gallery) { g.compact = true }
}

// New builds a gallery. A nil onOpen makes every activation a no-op.
func New(items []media.Item, pattern layout.Pattern, onOpen func(int), opts ...Option) *Gallery {
	g := &Gallery{
		items:   items,
		pattern: pattern,
		onOpen:  onOpen,
		tone:    "default",
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Len returns the number of tiles.
func (g *Gallery) Len() int { return len(g.items) }

// Empty reports whether the gallery renders nothing.
func (g *Gallery) Empty() bool { return len(g.items) == 0 }

// Tone returns the tone class suffix.
func (g *Gallery) Tone() string { return g.tone }

// IsCompact reports whether the dense grid is used.
func (g *Gallery) IsCompact() bool { return g.compact }

// Item returns the item shown at index.
func (g *Gallery) Item(index int) (media.Item, bool) {
	if index < 0 || index >= len(g.items) {
		return media.Item{}, false
	}
	return g.items[index], true
}

// Tiles returns one tile per item with its visual variant.
func (g *Gallery) Tiles() []Tile {
	tiles := make([]Tile, 0, len(g.items))
	for i, it := range g.items {
		tiles = append(tiles, Tile{
			Index:       i,
			Item:        it,
			Variant:     layout.Variant(g.pattern, i),
			Interactive: it.IsImage(),
		})
	}
	return tiles
}

// Activate handles a click or key press on the tile at index. Image tiles
// fire the open callback once for Click, Enter, or Space; everything else is
// ignored. It reports whether the callback fired.
func (g *Gallery) Activate(index int, trigger Trigger) bool {
	it, ok := g.Item(index)
	if !ok || !it.IsImage() || g.onOpen == nil {
		return false
	}
	switch trigger {
	case Click, Enter, Space:
		g.onOpen(index)
		return true
	default:
		return false
	}
}
