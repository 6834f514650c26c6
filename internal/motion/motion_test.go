package motion

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTiltCentreIsNeutral(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Rotation{}, Tilt(0.5, 0.5, false))
}

func TestTiltEdges(t *testing.T) {
	t.Parallel()

	r := Tilt(1, 0, false)
	assert.InDelta(t, 4.0, r.X, 1e-9)
	assert.InDelta(t, 5.0, r.Y, 1e-9)

	r = Tilt(0, 1, false)
	assert.InDelta(t, -4.0, r.X, 1e-9)
	assert.InDelta(t, -5.0, r.Y, 1e-9)
}

func TestTiltReducedMotion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Rotation{}, Tilt(1, 0, true))
}

func TestFromRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, Reduced(FromRequest(req)))

	req.Header.Set(ClientHintHeader, "reduce")
	assert.True(t, Reduced(FromRequest(req)))

	req.Header.Set(ClientHintHeader, "no-preference")
	assert.False(t, Reduced(FromRequest(req)))
	assert.False(t, Reduced(nil))
}
