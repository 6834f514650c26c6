package site

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiocedro/site/internal/gallery"
	"github.com/studiocedro/site/internal/layout"
	"github.com/studiocedro/site/internal/lightbox"
	"github.com/studiocedro/site/internal/media"
	"github.com/studiocedro/site/internal/motion"
)

func catalogOf(images, videos int) *media.Catalog {
	im := map[string]string{}
	for i := 0; i < images; i++ {
		im[fmt.Sprintf("projetos/img%d.jpg", i+1)] = fmt.Sprintf("/media/img%d.jpg", i+1)
	}
	vm := map[string]string{}
	for i := 0; i < videos; i++ {
		vm[fmt.Sprintf("projetos/clip%d.mp4", i+1)] = fmt.Sprintf("/media/clip%d.mp4", i+1)
	}
	return media.Build(im, vm)
}

func TestNewViewSplitsPreviewAndExtra(t *testing.T) {
	v := NewView(catalogOf(10, 2), 37)

	assert.Equal(t, 8, v.Preview().Len())
	assert.Equal(t, 4, v.Extra().Len())
	assert.True(t, v.HasExtra())
	assert.False(t, v.ShowFull())
	assert.Equal(t, 2, v.VideoCount())
	assert.Len(t, v.Instagram(), InstagramPreviewSize)

	full := NewView(catalogOf(10, 2), 37, WithFullGallery(true))
	assert.True(t, full.ShowFull())
}

func TestExtraGalleryContinuesThePattern(t *testing.T) {
	v := NewView(catalogOf(10, 0), 37, WithFullGallery(true))
	pattern := layout.Generate(10, 37)

	for _, tile := range v.Extra().Tiles() {
		assert.Equal(t, pattern[8+tile.Index]%layout.VariantCount, tile.Variant)
	}
}

func TestEmptyCatalogRendersNothing(t *testing.T) {
	v := NewView(media.Build(nil, nil), 37)

	assert.True(t, v.Preview().Empty())
	assert.False(t, v.HasExtra())
	assert.Empty(t, v.Instagram())
	assert.False(t, v.OpenByItemID("project-0"))
	assert.False(t, v.LightboxOpen())
	assert.Nil(t, v.Lightbox())
}

func TestPreviewTileOpensImageListAtItsID(t *testing.T) {
	keys := lightbox.NewDispatcher()
	v := NewView(catalogOf(3, 2), 37, WithPreviewLimit(2), WithFullGallery(true), WithKeys(keys))

	// extra = [img3, clip1, clip2]; the first extra tile is the third image
	require.True(t, v.ActivateTile(GalleryExtra, 0, gallery.Click))
	require.True(t, v.LightboxOpen())
	assert.Equal(t, 2, v.LightboxIndex())
	assert.Equal(t, 1, keys.Len())

	cur, ok := v.Lightbox().Current()
	require.True(t, ok)
	assert.Equal(t, "img3.jpg", cur.Name)
}

func TestVideoTilesDoNotOpen(t *testing.T) {
	v := NewView(catalogOf(1, 2), 37, WithKeys(lightbox.NewDispatcher()))

	assert.False(t, v.ActivateTile(GalleryPreview, 1, gallery.Click))
	assert.False(t, v.ActivateTile(GalleryPreview, 2, gallery.Enter))
	assert.False(t, v.ActivateTile(GalleryPreview, 0, gallery.Trigger("Tab")))
	assert.False(t, v.LightboxOpen())
	assert.False(t, v.ActivateTile("bogus", 0, gallery.Click))
}

func TestCollapsedExtraGalleryIgnoresActivation(t *testing.T) {
	v := NewView(catalogOf(10, 0), 37)
	assert.False(t, v.ActivateTile(GalleryExtra, 0, gallery.Click))
}

func TestKeyboardDrivesLightboxAndEscapeDetaches(t *testing.T) {
	keys := lightbox.NewDispatcher()
	v := NewView(catalogOf(5, 0), 37, WithKeys(keys))

	v.OpenImages(0)
	keys.Dispatch(lightbox.KeyArrowLeft)
	assert.Equal(t, 4, v.LightboxIndex())
	keys.Dispatch(lightbox.KeyArrowRight)
	assert.Equal(t, 0, v.LightboxIndex())

	keys.Dispatch(lightbox.KeyEscape)
	assert.False(t, v.LightboxOpen())
	assert.Zero(t, keys.Len())

	// stale presses after close are ignored
	keys.Dispatch(lightbox.KeyArrowRight)
	assert.False(t, v.LightboxOpen())
}

func TestReopenResetsAndKeepsOneListener(t *testing.T) {
	keys := lightbox.NewDispatcher()
	v := NewView(catalogOf(5, 0), 37, WithKeys(keys))

	v.OpenImages(3)
	keys.Dispatch(lightbox.KeyArrowRight)
	require.Equal(t, 4, v.LightboxIndex())

	require.True(t, v.OpenInstagram(1))
	assert.Equal(t, 1, v.LightboxIndex())
	assert.Equal(t, 1, keys.Len())

	v.Close()
	v.Close()
	assert.Zero(t, keys.Len())
	assert.False(t, v.OpenInstagram(9))
}

func TestBackdropClosesImageClickDoesNot(t *testing.T) {
	v := NewView(catalogOf(2, 0), 37)
	v.OpenImages(0)

	v.Lightbox().ClickImage()
	assert.True(t, v.LightboxOpen())
	v.Lightbox().ClickBackdrop()
	assert.False(t, v.LightboxOpen())
}

func TestAccentToneAndTilt(t *testing.T) {
	v := NewView(catalogOf(1, 0), 37)
	assert.Equal(t, layout.Accent(37, 2), v.Accent(2))
	assert.Equal(t, layout.Tone(37, 2), v.Tone(2))
	assert.Equal(t, motion.Rotation{X: 4, Y: 5}, v.TiltLimits())

	still := NewView(catalogOf(1, 0), 37, WithMotion(motion.Static(true)))
	assert.True(t, still.ReducedMotion())
	assert.Equal(t, motion.Rotation{}, still.TiltLimits())
}
