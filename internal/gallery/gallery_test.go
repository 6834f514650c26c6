package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiocedro/site/internal/layout"
	"github.com/studiocedro/site/internal/media"
)

func sampleItems() []media.Item {
	cat := media.Build(
		map[string]string{"a.jpg": "/a", "b.jpg": "/b"},
		map[string]string{"c.mp4": "/c"},
	)
	// image, video, image
	all := cat.Items()
	return []media.Item{all[0], all[2], all[1]}
}

func TestTilesCarryVariantAndInteractivity(t *testing.T) {
	t.Parallel()

	items := sampleItems()
	pattern := layout.Generate(len(items), 37)
	g := New(items, pattern, nil, WithTone("projects"))

	tiles := g.Tiles()
	require.Len(t, tiles, 3)
	for i, tile := range tiles {
		assert.Equal(t, i, tile.Index)
		assert.Equal(t, pattern[i]%layout.VariantCount, tile.Variant)
		assert.Equal(t, i+1, tile.Position())
	}
	assert.True(t, tiles[0].Interactive)
	assert.False(t, tiles[1].Interactive)
	assert.True(t, tiles[1].IsVideo())
	assert.True(t, tiles[2].Interactive)
	assert.Equal(t, "projects", g.Tone())
}

func TestActivateImageFiresOncePerActivation(t *testing.T) {
	t.Parallel()

	var calls []int
	g := New(sampleItems(), layout.Generate(3, 1), func(i int) { calls = append(calls, i) })

	require.True(t, g.Activate(0, Click))
	require.True(t, g.Activate(2, Enter))
	require.True(t, g.Activate(2, Space))
	require.False(t, g.Activate(0, Trigger("Tab")))

	assert.Equal(t, []int{0, 2, 2}, calls)
}

func TestActivateVideoIsNoop(t *testing.T) {
	t.Parallel()

	fired := false
	g := New(sampleItems(), layout.Generate(3, 1), func(int) { fired = true })

	for _, trig := range []Trigger{Click, Enter, Space} {
		assert.False(t, g.Activate(1, trig))
	}
	assert.False(t, fired)
}

func TestActivateOutOfRange(t *testing.T) {
	t.Parallel()

	fired := false
	g := New(sampleItems(), nil, func(int) { fired = true })
	assert.False(t, g.Activate(-1, Click))
	assert.False(t, g.Activate(3, Click))
	assert.False(t, fired)
}

func TestOffsetUsesPatternTail(t *testing.T) {
	t.Parallel()

	pattern := layout.Generate(12, 37)
	items := sampleItems()
	g := New(items, pattern, nil, WithOffset(8))
	for i, tile := range g.Tiles() {
		assert.Equal(t, pattern[8+i]%layout.VariantCount, tile.Variant)
	}
}

func TestShortPatternFallsBackToVariantZero(t *testing.T) {
	t.Parallel()

	g := New(sampleItems(), layout.Pattern{}, nil)
	for _, tile := range g.Tiles() {
		assert.Equal(t, 0, tile.Variant)
	}
}

func TestEmptyGallery(t *testing.T) {
	t.Parallel()

	g := New(nil, layout.Generate(1, 1), func(int) { t.Fatal("must not fire") })
	assert.True(t, g.Empty())
	assert.Empty(t, g.Tiles())
	assert.False(t, g.Activate(0, Click))
	assert.Equal(t, "default", g.Tone())
	assert.False(t, g.IsCompact())
}
