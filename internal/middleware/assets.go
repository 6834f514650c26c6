package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// StaticOption customises Static.
type StaticOption func(*staticHandler)

// WithMaxAge overrides the Cache-Control max-age.
func WithMaxAge(d time.Duration) StaticOption {
	return func(h *staticHandler) { h.maxAge = d }
}

type staticHandler struct {
	dir    string
	prefix string
	maxAge time.Duration
	fs     http.Handler

	mu    sync.Mutex
	etags map[string]etagEntry
}

type etagEntry struct {
	modTime time.Time
	size    int64
	tag     string
}

// Static serves files under dir at prefix with Cache-Control, Vary, and ETag
// handling. ETags are computed on first request and recomputed when a file's
// size or modification time changes, so a reloaded media directory stays
// correct.
func Static(dir, prefix string, opts ...StaticOption) http.Handler {
	h := &staticHandler{
		dir:    dir,
		prefix: strings.TrimRight(prefix, "/"),
		maxAge: 7 * 24 * time.Hour,
		etags:  map[string]etagEntry{},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.fs = http.StripPrefix(h.prefix, http.FileServer(http.Dir(dir)))
	return h
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(r.URL.Path, h.prefix)
	if rel == "" || strings.HasSuffix(rel, "/") {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Vary", "Accept-Encoding")
	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(h.maxAge.Seconds()))+", stale-while-revalidate=86400")
	if et := h.etag(rel); et != "" {
		w.Header().Set("ETag", et)
		if inm := r.Header.Get("If-None-Match"); inm != "" && inm == et {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	h.fs.ServeHTTP(w, r)
}

func (h *staticHandler) etag(rel string) string {
	full := filepath.Join(h.dir, filepath.FromSlash(filepath.Clean("/"+rel)))
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return ""
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if e, ok := h.etags[rel]; ok && e.size == info.Size() && e.modTime.Equal(info.ModTime()) {
		return e.tag
	}
	tag, err := fileETag(full)
	if err != nil {
		return ""
	}
	h.etags[rel] = etagEntry{modTime: info.ModTime(), size: info.Size(), tag: tag}
	return tag
}

func fileETag(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return `W/"` + hex.EncodeToString(h.Sum(nil)[:16]) + `"`, nil
}
