package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// Content is the page copy loaded from content/site.yaml.
type Content struct {
	Business  Business       `yaml:"business"`
	Contact   Contact        `yaml:"contact"`
	Hero      Hero           `yaml:"hero"`
	Sections  map[string]Hdr `yaml:"sections"`
	Services  []Card         `yaml:"services"`
	Reviews   []Card         `yaml:"reviews"`
	About     About          `yaml:"about"`
	Instagram InstagramPanel `yaml:"instagram"`
}

// Business describes the company for headers, footers, and structured data.
type Business struct {
	Name        string `yaml:"name"`
	ShortName   string `yaml:"short_name"`
	Trade       string `yaml:"trade"`
	Description string `yaml:"description"`
	Region      string `yaml:"region"`
	City        string `yaml:"city"`
	Country     string `yaml:"country"`
	Logo        string `yaml:"logo"`
}

// Contact holds the outbound channels.
type Contact struct {
	WhatsAppNumber  string `yaml:"whatsapp_number"`
	WhatsAppDisplay string `yaml:"whatsapp_display"`
	Greeting        string `yaml:"greeting"`
	InstagramURL    string `yaml:"instagram_url"`
	InstagramHandle string `yaml:"instagram_handle"`
}

// Hero is the opening section.
type Hero struct {
	Eyebrow string   `yaml:"eyebrow"`
	Title   string   `yaml:"title"`
	Text    string   `yaml:"text"`
	Metrics []Metric `yaml:"metrics"`
}

// Metric is a highlighted figure in the hero.
type Metric struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Hdr is a section header.
type Hdr struct {
	Eyebrow string `yaml:"eyebrow"`
	Title   string `yaml:"title"`
	Text    string `yaml:"text"`
}

// Card is a service or review entry.
type Card struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// About carries the Markdown body and its sanitized rendering.
type About struct {
	Body string        `yaml:"body"`
	HTML template.HTML `yaml:"-"`
}

// InstagramPanel is the social proof block next to the reviews.
type InstagramPanel struct {
	Text string `yaml:"text"`
}

// Header returns the header for a section id, or an empty one.
func (c *Content) Header(id string) Hdr {
	if c == nil {
		return Hdr{}
	}
	return c.Sections[id]
}

// WhatsAppURL is the deep link carrying the greeting.
func (c *Content) WhatsAppURL() string {
	return WhatsAppURL(c.Contact.WhatsAppNumber, c.Contact.Greeting)
}

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.Typographer))
	policy   = bluemonday.UGCPolicy()
)

// LoadContent reads and parses the content file.
func LoadContent(path string) (*Content, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("site: read content %s: %w", path, err)
	}
	return ParseContent(raw)
}

// ParseContent decodes YAML copy and renders the about Markdown to sanitized HTML.
func ParseContent(raw []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("site: decode content: %w", err)
	}
	html, err := RenderMarkdown(c.About.Body)
	if err != nil {
		return nil, err
	}
	c.About.HTML = html
	if c.Sections == nil {
		c.Sections = map[string]Hdr{}
	}
	return &c, nil
}

// RenderMarkdown converts Markdown to HTML and strips anything outside the UGC policy.
func RenderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("site: render markdown: %w", err)
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes())), nil
}
