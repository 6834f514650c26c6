// Package sections tracks which page section is currently in the focus band.
package sections

import (
	"sync"
)

// DefaultIDs lists the page sections in document order.
var DefaultIDs = []string{"inicio", "servicos", "projetos", "sobre", "avaliacoes", "contato"}

// Options describes the observation focus band.
type Options struct {
	RootMargin string    `json:"rootMargin"`
	Thresholds []float64 `json:"thresholds"`
}

// FocusBand keeps roughly the band between 35% and 55% of the viewport height.
var FocusBand = Options{
	RootMargin: "-35% 0px -45% 0px",
	Thresholds: []float64{0.15, 0.35, 0.55},
}

// Entry is one intersection observation.
type Entry struct {
	ID           string  `json:"id"`
	Intersecting bool    `json:"intersecting"`
	Ratio        float64 `json:"ratio"`
}

// Observer delivers intersection batches for the given section ids until the
// returned cancel func is called.
type Observer interface {
	Observe(ids []string, opts Options, deliver func([]Entry)) (cancel func())
}

// Tracker exposes the id of the most visible section.
type Tracker struct {
	observer Observer
	ids      []string
	known    map[string]struct{}
	opts     Options

	// lifecycle serializes Start and Stop. It is never taken by Apply, so an
	// observer may deliver synchronously from Observe.
	lifecycle sync.Mutex

	mu     sync.Mutex
	active string
	cancel func()
}

// NewTracker returns a tracker over ids starting at initial. A nil ids list
// uses DefaultIDs.
func NewTracker(observer Observer, ids []string, initial string) *Tracker {
	if ids == nil {
		ids = DefaultIDs
	}
	known := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}
	return &Tracker{
		observer: observer,
		ids:      ids,
		known:    known,
		opts:     FocusBand,
		active:   initial,
	}
}

// Start begins observation. Calling Start on a running tracker is a no-op.
func (t *Tracker) Start() {
	t.lifecycle.Lock()
	defer t.lifecycle.Unlock()

	t.mu.Lock()
	running := t.cancel != nil
	t.mu.Unlock()
	if running || t.observer == nil {
		return
	}

	cancel := t.observer.Observe(t.ids, t.opts, t.Apply)

	t.mu.Lock()
	t.cancel = cancel
	t.mu.Unlock()
}

// Stop tears down observation.
func (t *Tracker) Stop() {
	t.lifecycle.Lock()
	defer t.lifecycle.Unlock()

	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Active returns the current section id.
func (t *Tracker) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Apply folds one observation batch into the active id.
func (t *Tracker) Apply(entries []Entry) {
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if _, ok := t.known[e.ID]; ok {
			filtered = append(filtered, e)
		}
	}
	t.mu.Lock()
	t.active = Select(t.active, filtered)
	t.mu.Unlock()
}

// Select picks the intersecting entry with the highest ratio. Ties keep
// current when it is among the tied entries, otherwise the first tied entry
// in observation order wins. With no intersecting entry current is kept.
func Select(current string, entries []Entry) string {
	best := -1.0
	var tied []string
	for _, e := range entries {
		if !e.Intersecting {
			continue
		}
		switch {
		case e.Ratio > best:
			best = e.Ratio
			tied = append(tied[:0], e.ID)
		case e.Ratio == best:
			tied = append(tied, e.ID)
		}
	}
	if len(tied) == 0 {
		return current
	}
	for _, id := range tied {
		if id == current {
			return current
		}
	}
	return tied[0]
}
