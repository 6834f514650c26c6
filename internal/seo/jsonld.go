package seo

import (
	"encoding/json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Business describes a local business for structured data.
type Business struct {
	Name        string
	Description string
	URL         string
	Logo        string
	Telephone   string
	City        string
	Region      string
	Country     string
	SameAs      []string
}

// FurnitureStore returns a schema.org FurnitureStore (a LocalBusiness) payload.
func FurnitureStore(b Business) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "FurnitureStore",
		"name":     b.Name,
	}
	if b.Description != "" {
		m["description"] = b.Description
	}
	if b.URL != "" {
		m["url"] = b.URL
	}
	if b.Logo != "" {
		m["logo"] = b.Logo
		m["image"] = b.Logo
	}
	if b.Telephone != "" {
		m["telephone"] = b.Telephone
	}
	if b.City != "" || b.Region != "" || b.Country != "" {
		addr := map[string]any{"@type": "PostalAddress"}
		if b.City != "" {
			addr["addressLocality"] = b.City
		}
		if b.Region != "" {
			addr["addressRegion"] = b.Region
		}
		if b.Country != "" {
			addr["addressCountry"] = b.Country
		}
		m["address"] = addr
	}
	if b.City != "" {
		m["areaServed"] = map[string]any{"@type": "City", "name": b.City}
	}
	if len(b.SameAs) > 0 {
		m["sameAs"] = b.SameAs
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url, lang string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if lang != "" {
		m["inLanguage"] = lang
	}
	return m
}

// ImageGallery lists portfolio image URLs.
func ImageGallery(name string, images []string) map[string]any {
	objs := make([]map[string]any, 0, len(images))
	for _, src := range images {
		objs = append(objs, map[string]any{"@type": "ImageObject", "contentUrl": src})
	}
	return map[string]any{
		"@context": "https://schema.org",
		"@type":    "ImageGallery",
		"name":     name,
		"image":    objs,
	}
}
