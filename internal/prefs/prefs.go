// Package prefs persists the visitor's theme and gallery layout seed.
package prefs

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

// Storage keys.
const (
	ThemeKey = "studio-cedro-theme"
	SeedKey  = "studio-cedro-layout-seed"
)

// Theme is a named colour scheme.
type Theme string

const (
	ThemeEmerald   Theme = "emerald"
	ThemeWoodlight Theme = "woodlight"

	DefaultTheme = ThemeEmerald
	DefaultSeed  = 37

	maxSeed = 100000
)

// IsLight reports whether the theme uses the light palette.
func (t Theme) IsLight() bool { return t == ThemeWoodlight }

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool { return t == ThemeEmerald || t == ThemeWoodlight }

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t.IsLight() {
		return ThemeEmerald
	}
	return ThemeWoodlight
}

// ParseTheme normalises a stored theme name, reporting whether it is known.
func ParseTheme(s string) (Theme, bool) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return DefaultTheme, false
	}
	return t, true
}

// KV is the durable key/value collaborator.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Preferences is a snapshot of the stored values.
type Preferences struct {
	Theme      Theme
	LayoutSeed int
}

// SeedSource returns a candidate seed; values outside [1, 100000] are clamped.
type SeedSource func() int

func randomSeed() int { return rand.IntN(maxSeed) + 1 }

// Store is the single writer of the preference keys.
type Store struct {
	kv    KV
	prefs Preferences
	seeds SeedSource
}

// Option customises Load.
type Option func(*Store)

// WithSeedSource overrides the random seed generator.
func WithSeedSource(src SeedSource) Option {
	return func(s *Store) {
		if src != nil {
			s.seeds = src
		}
	}
}

// Load reads the stored preferences, falling back to defaults for absent
// or malformed values.
func Load(kv KV, opts ...Option) *Store {
	s := &Store{
		kv:    kv,
		prefs: Preferences{Theme: DefaultTheme, LayoutSeed: DefaultSeed},
		seeds: randomSeed,
	}
	for _, opt := range opts {
		opt(s)
	}
	if raw, ok := kv.Get(ThemeKey); ok {
		if t, valid := ParseTheme(raw); valid {
			s.prefs.Theme = t
		}
	}
	if raw, ok := kv.Get(SeedKey); ok {
		if seed, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && seed > 0 {
			s.prefs.LayoutSeed = seed
		}
	}
	return s
}

// Get returns the current preferences.
func (s *Store) Get() Preferences { return s.prefs }

// Theme returns the current theme.
func (s *Store) Theme() Theme { return s.prefs.Theme }

// LayoutSeed returns the current gallery seed.
func (s *Store) LayoutSeed() int { return s.prefs.LayoutSeed }

// SetTheme changes the theme and regenerates the layout seed. Both values
// are written immediately. Unknown themes fall back to the default.
func (s *Store) SetTheme(t Theme) {
	if !t.Valid() {
		t = DefaultTheme
	}
	s.prefs.Theme = t
	s.prefs.LayoutSeed = s.nextSeed()
	s.save()
}

// Toggle switches between the light and dark themes.
func (s *Store) Toggle() { s.SetTheme(s.prefs.Theme.Toggled()) }

func (s *Store) nextSeed() int {
	prev := s.prefs.LayoutSeed
	seed := clampSeed(s.seeds())
	for i := 0; seed == prev && i < 8; i++ {
		seed = clampSeed(s.seeds())
	}
	if seed == prev {
		seed = prev%maxSeed + 1
	}
	return seed
}

func clampSeed(v int) int {
	switch {
	case v < 1:
		return 1
	case v > maxSeed:
		return maxSeed
	}
	return v
}

func (s *Store) save() {
	s.kv.Set(ThemeKey, string(s.prefs.Theme))
	s.kv.Set(SeedKey, strconv.Itoa(s.prefs.LayoutSeed))
}
