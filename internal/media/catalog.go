package media

import (
	"path"
	"slices"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Type distinguishes renderable media kinds.
type Type string

const (
	TypeImage Type = "image"
	TypeVideo Type = "video"
)

// Identifier prefixes and the shared group tag for portfolio media.
const (
	ImagePrefix  = "project"
	VideoPrefix  = "project-video"
	GroupProject = "projects"
)

// Item is a single portfolio media entry. Items are immutable once built.
type Item struct {
	ID    string `json:"id"`
	Src   string `json:"src"`
	Type  Type   `json:"type"`
	Name  string `json:"name"`
	Group string `json:"group"`
}

// IsImage reports whether the item can be opened in the lightbox.
func (i Item) IsImage() bool { return i.Type == TypeImage }

// Catalog is the ordered set of portfolio media: every image, then every video.
type Catalog struct {
	items []Item
}

// Build sorts each input mapping by key (pt-BR, numeric-aware, case and
// accent insensitive) and assigns positional ids. Keys are file-path-like
// strings, values are the public resource references.
func Build(images, videos map[string]string) *Catalog {
	items := make([]Item, 0, len(images)+len(videos))
	items = append(items, mapGroup(images, TypeImage, ImagePrefix)...)
	items = append(items, mapGroup(videos, TypeVideo, VideoPrefix)...)
	return &Catalog{items: items}
}

func mapGroup(entries map[string]string, kind Type, prefix string) []Item {
	if len(entries) == 0 {
		return nil
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	SortKeys(keys)

	out := make([]Item, 0, len(keys))
	for i, key := range keys {
		name := path.Base(strings.ReplaceAll(key, "\\", "/"))
		if name == "." || name == "/" || name == "" {
			name = prefix + "-" + strconv.Itoa(i+1)
		}
		out = append(out, Item{
			ID:    prefix + "-" + strconv.Itoa(i),
			Src:   entries[key],
			Type:  kind,
			Name:  name,
			Group: GroupProject,
		})
	}
	return out
}

// SortKeys orders keys so that "img2" sorts before "img10". Keys the collator
// considers equal fall back to byte order to keep the result total.
func SortKeys(keys []string) {
	c := collate.New(language.BrazilianPortuguese, collate.Numeric, collate.Loose)
	sort.SliceStable(keys, func(i, j int) bool {
		if r := c.CompareString(keys[i], keys[j]); r != 0 {
			return r < 0
		}
		return keys[i] < keys[j]
	})
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Items returns every item in catalog order.
func (c *Catalog) Items() []Item {
	if c == nil {
		return nil
	}
	return slices.Clone(c.items)
}

// Images returns the image-only view in catalog order.
func (c *Catalog) Images() []Item { return c.filter(TypeImage) }

// Videos returns the video-only view in catalog order.
func (c *Catalog) Videos() []Item { return c.filter(TypeVideo) }

func (c *Catalog) filter(kind Type) []Item {
	if c == nil {
		return nil
	}
	out := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		if it.Type == kind {
			out = append(out, it)
		}
	}
	return out
}

// Slice returns items in [from, to) clamped to the catalog bounds.
func (c *Catalog) Slice(from, to int) []Item {
	n := c.Len()
	if from < 0 {
		from = 0
	}
	if to > n || to < 0 {
		to = n
	}
	if from >= to {
		return []Item{}
	}
	return slices.Clone(c.items[from:to])
}

// ByID looks up an item by identifier.
func (c *Catalog) ByID(id string) (Item, bool) {
	if c == nil {
		return Item{}, false
	}
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// IndexOfImage returns the position of id within Images(), or -1.
func (c *Catalog) IndexOfImage(id string) int {
	return IndexOf(c.Images(), id)
}

// IndexOf returns the position of id within items, or -1.
func IndexOf(items []Item, id string) int {
	if id == "" {
		return -1
	}
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
