// Package motion holds the pointer-follow tilt effect and the reduced-motion
// preference it honours.
package motion

import (
	"net/http"
	"strings"
)

// Maximum tilt in degrees at the card edges.
const (
	MaxRotateX = 8.0
	MaxRotateY = 10.0
)

// ClientHintHeader carries the visitor's reduced-motion preference.
const ClientHintHeader = "Sec-CH-Prefers-Reduced-Motion"

// Rotation is a pair of CSS rotations in degrees.
type Rotation struct {
	X float64
	Y float64
}

// Tilt maps a pointer offset, expressed as fractions of the card width (x)
// and height (y), onto a rotation. Reduced motion yields no rotation.
func Tilt(x, y float64, reduced bool) Rotation {
	if reduced {
		return Rotation{}
	}
	return Rotation{
		X: (0.5 - y) * MaxRotateX,
		Y: (x - 0.5) * MaxRotateY,
	}
}

// Observer reports reduced-motion changes until cancelled. Implementations
// deliver the current value synchronously on subscription.
type Observer interface {
	ObserveReducedMotion(func(reduced bool)) (cancel func())
}

// Static is an Observer with a fixed value.
type Static bool

// ObserveReducedMotion implements Observer.
func (s Static) ObserveReducedMotion(fn func(bool)) func() {
	fn(bool(s))
	return func() {}
}

// FromRequest reads the reduced-motion client hint.
func FromRequest(r *http.Request) Static {
	return Static(strings.EqualFold(strings.TrimSpace(r.Header.Get(ClientHintHeader)), "reduce"))
}

// Reduced resolves an observer's current value.
func Reduced(o Observer) bool {
	if o == nil {
		return false
	}
	var reduced bool
	cancel := o.ObserveReducedMotion(func(v bool) { reduced = v })
	cancel()
	return reduced
}
