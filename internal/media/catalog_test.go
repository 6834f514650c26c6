package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func names(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestBuildSortsNumericAware(t *testing.T) {
	t.Parallel()

	cat := Build(map[string]string{
		"b2.jpg":  "/media/b2.jpg",
		"b10.jpg": "/media/b10.jpg",
		"a1.jpg":  "/media/a1.jpg",
	}, nil)

	require.Equal(t, []string{"a1.jpg", "b2.jpg", "b10.jpg"}, names(cat.Items()))
	require.Equal(t, []string{"project-0", "project-1", "project-2"}, ids(cat.Items()))
	require.Equal(t, "/media/b10.jpg", cat.Items()[2].Src)
}

func TestBuildIgnoresCaseAndAccents(t *testing.T) {
	t.Parallel()

	keys := []string{"Sala3.jpg", "cozinha.jpg", "Área1.jpg", "sala12.jpg"}
	SortKeys(keys)
	assert.Equal(t, []string{"Área1.jpg", "cozinha.jpg", "Sala3.jpg", "sala12.jpg"}, keys)
}

func TestBuildDerivesNameAndGroup(t *testing.T) {
	t.Parallel()

	cat := Build(
		map[string]string{"../projetos/img1.jpg": "a"},
		map[string]string{"../projetos/clip.mp4": "b"},
	)
	items := cat.Items()
	require.Len(t, items, 2)

	assert.Equal(t, Item{ID: "project-0", Src: "a", Type: TypeImage, Name: "img1.jpg", Group: GroupProject}, items[0])
	assert.Equal(t, Item{ID: "project-video-0", Src: "b", Type: TypeVideo, Name: "clip.mp4", Group: GroupProject}, items[1])
}

func TestBuildFallbackName(t *testing.T) {
	t.Parallel()

	cat := Build(map[string]string{"": "x"}, nil)
	require.Equal(t, "project-1", cat.Items()[0].Name)
}

func TestBuildIDsUniqueAndStable(t *testing.T) {
	t.Parallel()

	images := map[string]string{}
	videos := map[string]string{}
	for _, k := range []string{"img1.jpg", "img2.jpg", "img10.jpg", "img3.png", "IMG4.webp"} {
		images[k] = "/media/" + k
	}
	for _, k := range []string{"v1.mp4", "v2.mov"} {
		videos[k] = "/media/" + k
	}

	first := Build(images, videos)
	second := Build(images, videos)
	require.Equal(t, first.Items(), second.Items())

	seen := map[string]bool{}
	for _, it := range first.Items() {
		require.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true
	}
	require.Len(t, seen, 7)
}

func TestViewsPreserveOrder(t *testing.T) {
	t.Parallel()

	cat := Build(
		map[string]string{"a.jpg": "1", "b.jpg": "2"},
		map[string]string{"c.mp4": "3"},
	)
	assert.Equal(t, []string{"project-0", "project-1"}, ids(cat.Images()))
	assert.Equal(t, []string{"project-video-0"}, ids(cat.Videos()))
	assert.Equal(t, 1, cat.IndexOfImage("project-1"))
	assert.Equal(t, -1, cat.IndexOfImage("project-video-0"))
	assert.Equal(t, -1, cat.IndexOfImage(""))

	it, ok := cat.ByID("project-video-0")
	require.True(t, ok)
	assert.False(t, it.IsImage())
}

func TestEmptyCatalog(t *testing.T) {
	t.Parallel()

	cat := Build(nil, map[string]string{})
	assert.Equal(t, 0, cat.Len())
	assert.Empty(t, cat.Items())
	assert.Empty(t, cat.Images())
	assert.Empty(t, cat.Videos())
	assert.Empty(t, cat.Slice(0, 8))

	var nilCat *Catalog
	assert.Equal(t, 0, nilCat.Len())
	assert.Empty(t, nilCat.Images())
}

func TestSliceClamps(t *testing.T) {
	t.Parallel()

	cat := Build(map[string]string{"a.jpg": "1", "b.jpg": "2", "c.jpg": "3"}, nil)
	assert.Equal(t, []string{"project-0", "project-1"}, ids(cat.Slice(0, 2)))
	assert.Equal(t, []string{"project-2"}, ids(cat.Slice(2, 99)))
	assert.Equal(t, []string{"project-0", "project-1", "project-2"}, ids(cat.Slice(-1, -1)))
	assert.Empty(t, cat.Slice(5, 8))
}

func TestItemsReturnsCopy(t *testing.T) {
	t.Parallel()

	cat := Build(map[string]string{"a.jpg": "1"}, nil)
	items := cat.Items()
	items[0].ID = "mutated"
	assert.Equal(t, "project-0", cat.Items()[0].ID)
}
