package main

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/studiocedro/site/internal/i18n"
	"github.com/studiocedro/site/internal/observability"
	"github.com/studiocedro/site/internal/seo"
)

// renderer parses *.tmpl files once, or on every request in dev mode.
type renderer struct {
	dir    string
	dev    bool
	bundle *i18n.Bundle

	mu    sync.Mutex
	cache *template.Template
}

func newRenderer(dir string, dev bool, bundle *i18n.Bundle) (*renderer, error) {
	r := &renderer{dir: dir, dev: dev, bundle: bundle}
	t, err := r.parse()
	if err != nil {
		return nil, err
	}
	r.cache = t
	return r, nil
}

func (r *renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"now":   time.Now,
		"t":     r.bundle.T,
		"tn":    r.bundle.Tn,
		"count": r.bundle.Count,
		"add":   func(a, b int) int { return a + b },
		"deg":   func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"safeJS": func(s string) template.JS {
			return template.JS(s)
		},
		"json": seo.JSON,
		"dict": dict,
	}
}

// dict builds a map from alternating keys and values for sub-template calls.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		k, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[k] = pairs[i+1]
	}
	return m, nil
}

func (r *renderer) parse() (*template.Template, error) {
	// ParseGlob doesn't support **, so walk the tree.
	var files []string
	if err := filepath.WalkDir(r.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("walk templates: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", r.dir)
	}
	return template.New("_root").Funcs(r.funcs()).ParseFiles(files...)
}

func (r *renderer) templates() (*template.Template, error) {
	if !r.dev {
		return r.cache, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	t, err := r.parse()
	if err != nil {
		return nil, err
	}
	r.cache = t
	return t, nil
}

// render executes the named template. Output is buffered so a failing
// template never leaves a half-written page behind.
func (r *renderer) render(w http.ResponseWriter, req *http.Request, name string, data any) {
	logger := observability.FromContext(req.Context())
	t, err := r.templates()
	if err != nil {
		logger.Error("template parse failed", zap.Error(err))
		http.Error(w, "template parse error", http.StatusInternalServerError)
		return
	}
	var buf strings.Builder
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		logger.Error("template exec failed", zap.String("template", name), zap.Error(err))
		http.Error(w, "template exec error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(buf.String()))
}
