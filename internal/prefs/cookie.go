package prefs

import (
	"net/http"
	"net/url"
	"time"
)

const cookieMaxAge = 365 * 24 * time.Hour

// CookieKV stores preferences in browser cookies for the current request.
// Reads come from the request; writes become Set-Cookie headers and are
// visible to later reads in the same request.
type CookieKV struct {
	r       *http.Request
	w       http.ResponseWriter
	secure  bool
	written map[string]string
}

// NewCookieKV binds the KV to one request/response pair.
func NewCookieKV(w http.ResponseWriter, r *http.Request, secure bool) *CookieKV {
	return &CookieKV{r: r, w: w, secure: secure, written: map[string]string{}}
}

// Get implements KV.
func (c *CookieKV) Get(key string) (string, bool) {
	if v, ok := c.written[key]; ok {
		return v, true
	}
	ck, err := c.r.Cookie(key)
	if err != nil {
		return "", false
	}
	v, err := url.QueryUnescape(ck.Value)
	if err != nil {
		return "", false
	}
	return v, true
}

// Set implements KV.
func (c *CookieKV) Set(key, value string) {
	c.written[key] = value
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    url.QueryEscape(value),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		Expires:  time.Now().Add(cookieMaxAge),
		Secure:   c.secure,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}
