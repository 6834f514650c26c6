package seo

// OpenGraph holds og:* meta values.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
	Locale      string
}

// Meta is the head metadata for a rendered page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
	Alternates  []Alternate
	JSONLD      []string
}

// Alternate links a translation of the page.
type Alternate struct {
	Href     string
	Hreflang string
}

// OGLocale maps a site language onto an OpenGraph locale.
func OGLocale(lang string) string {
	switch lang {
	case "en":
		return "en_US"
	default:
		return "pt_BR"
	}
}
