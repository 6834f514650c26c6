package main

import (
	"encoding/json"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/studiocedro/site/internal/gallery"
	"github.com/studiocedro/site/internal/handlers"
	"github.com/studiocedro/site/internal/httpx"
	"github.com/studiocedro/site/internal/lightbox"
	mw "github.com/studiocedro/site/internal/middleware"
	"github.com/studiocedro/site/internal/motion"
	"github.com/studiocedro/site/internal/nav"
	"github.com/studiocedro/site/internal/observability"
	"github.com/studiocedro/site/internal/prefs"
	"github.com/studiocedro/site/internal/sections"
	"github.com/studiocedro/site/internal/site"
)

const (
	fullGalleryParam = "galeria"
	fullGalleryValue = "completa"
	maxSectionsBody  = 16 << 10
)

// pageState is the per-request page: preferences plus the view built from them.
type pageState struct {
	prefs *prefs.Store
	view  *site.View
}

func (a *app) loadPage(w http.ResponseWriter, r *http.Request, keys lightbox.KeySource) pageState {
	store := prefs.Load(prefs.NewCookieKV(w, r, a.cfg.Server.CookieSecure))
	q := r.URL.Query()
	view := site.NewView(a.library.Catalog(), store.LayoutSeed(),
		site.WithPreviewLimit(a.cfg.Media.PreviewLimit),
		site.WithFullGallery(q.Get(fullGalleryParam) == fullGalleryValue),
		site.WithMotion(motion.FromRequest(r)),
		site.WithKeys(keys),
	)
	openFromQuery(view, q)
	return pageState{prefs: store, view: view}
}

// openFromQuery replays the trigger encoded in the URL: a tile activation,
// an item id, or a direct position in the image list.
func openFromQuery(v *site.View, q url.Values) {
	switch {
	case q.Get("tile") != "":
		t, err := strconv.Atoi(q.Get("t"))
		if err != nil {
			return
		}
		trigger := gallery.Trigger(q.Get("via"))
		if trigger == "" {
			trigger = gallery.Click
		}
		v.ActivateTile(q.Get("tile"), t, trigger)
	case q.Get("item") != "":
		v.OpenByItemID(q.Get("item"))
	case q.Get("lightbox") == "images":
		i, _ := strconv.Atoi(q.Get("i"))
		v.OpenImages(i)
	case q.Get("lightbox") == "instagram":
		i, _ := strconv.Atoi(q.Get("i"))
		v.OpenInstagram(i)
	}
}

func (a *app) pageData(r *http.Request, p pageState) handlers.PageData {
	return handlers.BuildPageData(handlers.PageInput{
		Lang:      mw.Lang(r),
		BaseURL:   a.cfg.Site.BaseURL,
		Prefs:     p.prefs.Get(),
		Content:   a.siteContent(),
		View:      p.view,
		CSRFToken: mw.CSRFToken(r.Context()),
		Analytics: a.analytics,
		Dev:       a.cfg.Site.Dev,
	})
}

// homeHandler renders the full page.
func (a *app) homeHandler(w http.ResponseWriter, r *http.Request) {
	p := a.loadPage(w, r, lightbox.NewDispatcher())
	a.renderer.render(w, r, "base", a.pageData(r, p))
}

// lightboxHandler applies a key press or button action to the lightbox and
// answers with the fragment for htmx, or the full page otherwise.
func (a *app) lightboxHandler(w http.ResponseWriter, r *http.Request) {
	keys := lightbox.NewDispatcher()
	p := a.loadPage(w, r, keys)
	q := r.URL.Query()

	if k := q.Get("key"); k != "" {
		keys.Dispatch(lightbox.Key(k))
	}
	if viewer := p.view.Lightbox(); viewer != nil {
		switch q.Get("action") {
		case "next":
			viewer.Next()
		case "prev":
			viewer.Prev()
		case "close":
			viewer.RequestClose()
		case "backdrop":
			viewer.ClickBackdrop()
		}
	}

	if mw.IsHTMX(r.Context()) {
		a.renderer.render(w, r, "lightbox", a.pageData(r, p))
		return
	}
	if !p.view.LightboxOpen() {
		target := "/#projetos"
		if q.Get(fullGalleryParam) == fullGalleryValue {
			target = "/?" + fullGalleryParam + "=" + fullGalleryValue + "#projetos"
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}
	a.renderer.render(w, r, "base", a.pageData(r, p))
}

// themeHandler sets or toggles the theme. Every theme change reshuffles the layout.
func (a *app) themeHandler(w http.ResponseWriter, r *http.Request) {
	store := prefs.Load(prefs.NewCookieKV(w, r, a.cfg.Server.CookieSecure))
	raw := strings.TrimSpace(r.PostFormValue("theme"))
	if raw == "" {
		store.Toggle()
	} else {
		theme, ok := prefs.ParseTheme(raw)
		if !ok {
			httpx.WriteError(r.Context(), w, httpx.NewError("invalid_theme", "unknown theme", http.StatusBadRequest).For("theme", raw))
			return
		}
		store.SetTheme(theme)
	}
	observability.FromContext(r.Context()).Debug("theme changed",
		zap.String("theme", string(store.Theme())),
		zap.Int("layout_seed", store.LayoutSeed()),
	)

	target := refererPath(r)
	if mw.IsHTMX(r.Context()) {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

type sectionsRequest struct {
	Current string           `json:"current"`
	Entries []sections.Entry `json:"entries"`
}

type sectionsResponse struct {
	Active string `json:"active"`
}

// sectionsHandler feeds one intersection batch through a tracker and
// returns the resulting active section.
func (a *app) sectionsHandler(w http.ResponseWriter, r *http.Request) {
	var req sectionsRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSectionsBody))
	if err := dec.Decode(&req); err != nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("invalid_request", "malformed intersection batch", http.StatusBadRequest))
		return
	}

	ids := nav.Sections()
	current := ids[0]
	if slices.Contains(ids, req.Current) {
		current = req.Current
	}

	obs := sections.NewPushObserver()
	tracker := sections.NewTracker(obs, ids, current)
	tracker.Start()
	obs.Deliver(req.Entries)
	active := tracker.Active()
	tracker.Stop()

	httpx.WriteJSON(w, http.StatusOK, sectionsResponse{Active: active})
}

// refererPath returns the same-origin path to go back to, or "/".
func refererPath(r *http.Request) string {
	ref := r.Referer()
	if ref == "" {
		return "/"
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Host != "" && u.Host != r.Host) {
		return "/"
	}
	path := u.EscapedPath()
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return path
}
