package layout

import (
	"strconv"
	"strings"
)

// Linear-congruential constants used to derive tile variants.
const (
	multiplier = 9301
	increment  = 49297
	modulus    = 233280

	// DefaultSeed replaces zero, negative, or unparsable seeds.
	DefaultSeed = 1

	// VariantCount is the number of gallery tile styles.
	VariantCount = 7

	accentCount = 5
	toneCount   = 3
)

// Pattern is a deterministic sequence of non-negative tokens.
type Pattern []int

// Generate returns n tokens derived from seed. Identical arguments always
// produce identical sequences. The seed is reduced modulo the generator's
// modulus first so large seeds cannot overflow the recurrence.
func Generate(n, seed int) Pattern {
	if n <= 0 {
		return Pattern{}
	}
	value := seed % modulus
	if value <= 0 {
		value = DefaultSeed
	}
	out := make(Pattern, 0, n)
	for i := 0; i < n; i++ {
		value = (value*multiplier + increment) % modulus
		out = append(out, value)
	}
	return out
}

// ParseSeed converts a textual seed, substituting DefaultSeed for anything
// that is not a positive integer.
func ParseSeed(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return DefaultSeed
	}
	return v
}

// Token returns the token at i, or 0 when the pattern is too short.
func (p Pattern) Token(i int) int {
	if i < 0 || i >= len(p) {
		return 0
	}
	return p[i]
}

// From returns the pattern tail starting at offset.
func (p Pattern) From(offset int) Pattern {
	if offset <= 0 {
		return p
	}
	if offset >= len(p) {
		return Pattern{}
	}
	return p[offset:]
}

// Variant maps the token at i onto one of VariantCount tile styles.
func Variant(p Pattern, i int) int {
	return p.Token(i) % VariantCount
}

// Accent picks the service card accent for position i.
func Accent(seed, i int) int {
	return mod(seed+i, accentCount)
}

// Tone picks the review card tone for position i.
func Tone(seed, i int) int {
	return mod(seed+i, toneCount)
}

func mod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}
