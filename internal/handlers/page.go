package handlers

import (
	"github.com/studiocedro/site/internal/nav"
	"github.com/studiocedro/site/internal/prefs"
	"github.com/studiocedro/site/internal/sections"
	"github.com/studiocedro/site/internal/seo"
	"github.com/studiocedro/site/internal/site"
)

// PageData is the view model for the one-page layout and its fragments.
type PageData struct {
	Lang      string
	Theme     prefs.Theme
	SEO       seo.Meta
	Analytics Analytics
	CSRFToken string
	Dev       bool

	Nav     []nav.RenderedItem
	Active  string
	Focus   sections.Options
	Content *site.Content
	View    *site.View

	Lightbox LightboxData
}

// PageInput gathers the request-scoped pieces BuildPageData needs.
type PageInput struct {
	Lang      string
	BaseURL   string
	Prefs     prefs.Preferences
	Content   *site.Content
	View      *site.View
	Active    string
	CSRFToken string
	Analytics Analytics
	Dev       bool
}

// BuildPageData assembles the page view model.
func BuildPageData(in PageInput) PageData {
	active := in.Active
	if active == "" {
		active = nav.Main[0].Section
	}
	return PageData{
		Lang:      in.Lang,
		Theme:     in.Prefs.Theme,
		SEO:       BuildSEO(in.Content, in.View, in.BaseURL, in.Lang),
		Analytics: in.Analytics,
		CSRFToken: in.CSRFToken,
		Dev:       in.Dev,
		Nav:       nav.Build(active),
		Active:    active,
		Focus:     sections.FocusBand,
		Content:   in.Content,
		View:      in.View,
		Lightbox:  BuildLightbox(in.View),
	}
}

// BuildSEO derives head metadata and JSON-LD from the page copy.
func BuildSEO(c *site.Content, v *site.View, baseURL, lang string) seo.Meta {
	if c == nil {
		return seo.Meta{}
	}
	b := c.Business
	title := b.Name
	if c.Hero.Eyebrow != "" {
		title = b.Name + " | " + c.Hero.Eyebrow
	}
	canonical := baseURL + "/"
	logo := ""
	if b.Logo != "" {
		logo = baseURL + b.Logo
	}

	meta := seo.Meta{
		Title:       title,
		Description: b.Description,
		Canonical:   canonical,
		OG: seo.OpenGraph{
			Title:       title,
			Description: b.Description,
			Image:       logo,
			Type:        "website",
			URL:         canonical,
			SiteName:    b.Name,
			Locale:      seo.OGLocale(lang),
		},
		Alternates: []seo.Alternate{
			{Href: canonical + "?hl=pt", Hreflang: "pt-BR"},
			{Href: canonical + "?hl=en", Hreflang: "en"},
		},
	}

	var sameAs []string
	if c.Contact.InstagramURL != "" {
		sameAs = append(sameAs, c.Contact.InstagramURL)
	}
	meta.JSONLD = append(meta.JSONLD,
		seo.JSON(seo.FurnitureStore(seo.Business{
			Name:        b.Name,
			Description: b.Description,
			URL:         canonical,
			Logo:        logo,
			Telephone:   c.Contact.WhatsAppDisplay,
			City:        b.City,
			Region:      b.Region,
			Country:     b.Country,
			SameAs:      sameAs,
		})),
		seo.JSON(seo.WebSite(b.Name, canonical, lang)),
	)
	if v != nil {
		if imgs := v.Instagram(); len(imgs) > 0 {
			srcs := make([]string, 0, len(imgs))
			for _, it := range imgs {
				srcs = append(srcs, baseURL+it.Src)
			}
			meta.JSONLD = append(meta.JSONLD, seo.JSON(seo.ImageGallery(c.Header("projetos").Title, srcs)))
		}
	}
	return meta
}
