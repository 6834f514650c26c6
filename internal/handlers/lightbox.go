package handlers

import (
	"github.com/studiocedro/site/internal/media"
	"github.com/studiocedro/site/internal/site"
)

// LightboxData is the view model for the lightbox fragment.
type LightboxData struct {
	Open    bool
	Item    media.Item
	Index   int
	Current int
	Total   int
	Next    int
	Prev    int
	// Full is set when the page behind the lightbox shows the full gallery,
	// so the fragment's links keep it expanded.
	Full    bool
}

// BuildLightbox snapshots the view's lightbox. A closed lightbox yields the zero value.
func BuildLightbox(v *site.View) LightboxData {
	if v == nil {
		return LightboxData{}
	}
	viewer := v.Lightbox()
	if viewer == nil {
		return LightboxData{}
	}
	item, ok := viewer.Current()
	if !ok {
		return LightboxData{}
	}
	current, total := viewer.Position()
	return LightboxData{
		Open:    true,
		Item:    item,
		Index:   v.LightboxIndex(),
		Current: current,
		Total:   total,
		Next:    viewer.NextIndex(),
		Prev:    viewer.PrevIndex(),
		Full:    v.ShowFull(),
	}
}
