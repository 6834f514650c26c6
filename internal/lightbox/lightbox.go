// Package lightbox implements the modal image viewer: an owner-held State and
// a Viewer component that navigates it and listens for global key presses
// while mounted.
package lightbox

import (
	"github.com/studiocedro/site/internal/media"
)

// State is the lightbox data owned by the top-level view.
type State struct {
	open  bool
	items []media.Item
	index int
}

// Open shows items starting at start. Reopening always resets navigation.
// An empty list leaves the lightbox closed.
func (s *State) Open(items []media.Item, start int) {
	if len(items) == 0 {
		s.Close()
		return
	}
	if start < 0 || start >= len(items) {
		start = 0
	}
	s.open = true
	s.items = items
	s.index = start
}

// Close resets the state to closed and empty.
func (s *State) Close() {
	s.open = false
	s.items = nil
	s.index = 0
}

// IsOpen reports whether the lightbox is visible.
func (s *State) IsOpen() bool { return s != nil && s.open && len(s.items) > 0 }

// Items returns the image list being viewed.
func (s *State) Items() []media.Item { return s.items }

// Index returns the current 0-based position.
func (s *State) Index() int { return s.index }

func (s *State) step(delta int) {
	n := len(s.items)
	if !s.IsOpen() || n == 0 {
		return
	}
	s.index = ((s.index+delta)%n + n) % n
}

// Viewer is the mounted lightbox component. It can only request closure;
// the owner decides when the state is actually reset.
type Viewer struct {
	state   *State
	onClose func()
	cancel  func()
}

// Mount attaches a viewer to state and subscribes to keys. Nothing is
// subscribed when the state is closed or has no items.
func Mount(state *State, keys KeySource, onClose func()) *Viewer {
	v := &Viewer{state: state, onClose: onClose}
	if state.IsOpen() && keys != nil {
		v.cancel = keys.Subscribe(v.HandleKey)
	}
	return v
}

// Unmount detaches the key listener. Safe to call repeatedly.
func (v *Viewer) Unmount() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

// Mounted reports whether the key listener is attached.
func (v *Viewer) Mounted() bool { return v.cancel != nil }

// Next advances one image with wraparound.
func (v *Viewer) Next() { v.state.step(1) }

// Prev goes back one image with wraparound.
func (v *Viewer) Prev() { v.state.step(-1) }

// RequestClose asks the owner to close the lightbox.
func (v *Viewer) RequestClose() {
	if v.onClose != nil && v.state.IsOpen() {
		v.onClose()
	}
}

// ClickBackdrop handles a click outside the image.
func (v *Viewer) ClickBackdrop() { v.RequestClose() }

// ClickImage handles a click on the displayed image. It never reaches the
// backdrop handler.
func (v *Viewer) ClickImage() {}

// HandleKey maps Escape, ArrowRight, and ArrowLeft onto close, next, and prev.
func (v *Viewer) HandleKey(k Key) {
	if !v.state.IsOpen() {
		return
	}
	switch k {
	case KeyEscape:
		v.RequestClose()
	case KeyArrowRight:
		v.Next()
	case KeyArrowLeft:
		v.Prev()
	}
}

// Current returns the image being displayed.
func (v *Viewer) Current() (media.Item, bool) {
	if !v.state.IsOpen() {
		return media.Item{}, false
	}
	return v.state.items[v.state.index], true
}

// Position returns the 1-based index and the total count.
func (v *Viewer) Position() (current, total int) {
	if !v.state.IsOpen() {
		return 0, 0
	}
	return v.state.index + 1, len(v.state.items)
}

// NextIndex returns the position Next would move to.
func (v *Viewer) NextIndex() int { return v.neighbour(1) }

// PrevIndex returns the position Prev would move to.
func (v *Viewer) PrevIndex() int { return v.neighbour(-1) }

func (v *Viewer) neighbour(delta int) int {
	n := len(v.state.items)
	if n == 0 {
		return 0
	}
	return ((v.state.index+delta)%n + n) % n
}
