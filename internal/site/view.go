// Package site assembles the one-page portfolio: page copy, outbound links,
// and the top-level View that owns the lightbox and both project galleries.
package site

import (
	"github.com/studiocedro/site/internal/gallery"
	"github.com/studiocedro/site/internal/layout"
	"github.com/studiocedro/site/internal/lightbox"
	"github.com/studiocedro/site/internal/media"
	"github.com/studiocedro/site/internal/motion"
)

const (
	// DefaultPreviewLimit is how many catalog items the portfolio shows
	// before the full gallery is expanded.
	DefaultPreviewLimit = 8
	// InstagramPreviewSize is the number of images in the Instagram strip.
	InstagramPreviewSize = 6

	projectsTone = "projects"
)

// Gallery names accepted by ActivateTile.
const (
	GalleryPreview = "preview"
	GalleryExtra   = "extra"
)

// View is the top-level page state. It is the only owner of the lightbox
// state; galleries and the Instagram strip ask it to open the lightbox.
type View struct {
	catalog  *media.Catalog
	images   []media.Item
	videos   []media.Item
	pattern  layout.Pattern
	seed     int
	limit    int
	showFull bool
	reduced  bool

	keys   lightbox.KeySource
	state  lightbox.State
	viewer *lightbox.Viewer

	preview *gallery.Gallery
	extra   *gallery.Gallery
}

// Option customises a View.
type Option func(*View)

// WithPreviewLimit overrides DefaultPreviewLimit. Non-positive values are ignored.
func WithPreviewLimit(n int) Option {
	return func(v *View) {
		if n > 0 {
			v.limit = n
		}
	}
}

// WithFullGallery expands the complementary gallery.
func WithFullGallery(show bool) Option {
	return func(v *View) { v.showFull = show }
}

// WithMotion resolves the reduced-motion preference from o.
func WithMotion(o motion.Observer) Option {
	return func(v *View) { v.reduced = motion.Reduced(o) }
}

// WithKeys sets the key source the lightbox listens to while open.
func WithKeys(keys lightbox.KeySource) Option {
	return func(v *View) { v.keys = keys }
}

// NewView builds the page over catalog with the layout derived from seed.
func NewView(catalog *media.Catalog, seed int, opts ...Option) *View {
	v := &View{
		catalog: catalog,
		images:  catalog.Images(),
		videos:  catalog.Videos(),
		seed:    seed,
		limit:   DefaultPreviewLimit,
	}
	for _, opt := range opts {
		opt(v)
	}

	n := catalog.Len()
	v.pattern = layout.Generate(max(n, 1), seed)

	previewItems := catalog.Slice(0, v.limit)
	extraItems := catalog.Slice(v.limit, n)
	v.preview = gallery.New(previewItems, v.pattern, func(i int) {
		if it, ok := v.preview.Item(i); ok {
			v.OpenByItemID(it.ID)
		}
	}, gallery.WithTone(projectsTone))
	v.extra = gallery.New(extraItems, v.pattern, func(i int) {
		if it, ok := v.extra.Item(i); ok {
			v.OpenByItemID(it.ID)
		}
	}, gallery.WithTone(projectsTone), gallery.WithOffset(v.limit))
	return v
}

// Seed returns the layout seed the view was built with.
func (v *View) Seed() int { return v.seed }

// Preview is the gallery shown in the portfolio section.
func (v *View) Preview() *gallery.Gallery { return v.preview }

// Extra is the complementary gallery holding items past the preview limit.
func (v *View) Extra() *gallery.Gallery { return v.extra }

// HasExtra reports whether there is anything past the preview.
func (v *View) HasExtra() bool { return !v.extra.Empty() }

// ShowFull reports whether the complementary gallery is expanded.
func (v *View) ShowFull() bool { return v.showFull && v.HasExtra() }

// VideoCount is the number of project videos.
func (v *View) VideoCount() int { return len(v.videos) }

// Instagram returns the first images of the catalog for the social strip.
func (v *View) Instagram() []media.Item {
	n := min(len(v.images), InstagramPreviewSize)
	return v.images[:n]
}

// Accent is the service card accent class index for position i.
func (v *View) Accent(i int) int { return layout.Accent(v.seed, i) }

// Tone is the review card tone class index for position i.
func (v *View) Tone(i int) int { return layout.Tone(v.seed, i) }

// ReducedMotion reports whether animation should be suppressed.
func (v *View) ReducedMotion() bool { return v.reduced }

// TiltLimits returns the card rotation at the top-right corner, the largest
// the pointer can produce. Both are zero under reduced motion.
func (v *View) TiltLimits() motion.Rotation {
	return motion.Tilt(1, 0, v.reduced)
}

// OpenImages opens the lightbox over every project image at start.
func (v *View) OpenImages(start int) {
	v.open(v.images, start)
}

// OpenByItemID opens the lightbox over the image list at the position of id.
// Unknown ids and videos leave the lightbox untouched.
func (v *View) OpenByItemID(id string) bool {
	idx := media.IndexOf(v.images, id)
	if idx < 0 {
		return false
	}
	v.open(v.images, idx)
	return true
}

// OpenInstagram opens the lightbox from the i-th Instagram tile.
func (v *View) OpenInstagram(i int) bool {
	if i < 0 || i >= len(v.Instagram()) {
		return false
	}
	v.open(v.images, i)
	return true
}

// ActivateTile forwards a tile activation to the named gallery.
func (v *View) ActivateTile(name string, index int, trigger gallery.Trigger) bool {
	switch name {
	case GalleryPreview:
		return v.preview.Activate(index, trigger)
	case GalleryExtra:
		if !v.ShowFull() {
			return false
		}
		return v.extra.Activate(index, trigger)
	default:
		return false
	}
}

func (v *View) open(items []media.Item, start int) {
	if v.viewer != nil {
		v.viewer.Unmount()
		v.viewer = nil
	}
	v.state.Open(items, start)
	if v.state.IsOpen() {
		v.viewer = lightbox.Mount(&v.state, v.keys, v.Close)
	}
}

// Close resets the lightbox and detaches its key listener.
func (v *View) Close() {
	if v.viewer != nil {
		v.viewer.Unmount()
		v.viewer = nil
	}
	v.state.Close()
}

// Lightbox returns the mounted viewer, or nil when closed.
func (v *View) Lightbox() *lightbox.Viewer {
	if !v.state.IsOpen() {
		return nil
	}
	return v.viewer
}

// LightboxOpen reports whether the lightbox is showing.
func (v *View) LightboxOpen() bool { return v.state.IsOpen() }

// LightboxIndex returns the current image position.
func (v *View) LightboxIndex() int { return v.state.Index() }
