package nav

// Item represents a top-level navigation entry pointing at a page section.
type Item struct {
	Section  string // section id, e.g. "projetos"
	LabelKey string // i18n key, e.g. "nav.projetos"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	Section  string
	LabelKey string
	Active   bool
}

// Main is the primary navigation definition, in document order.
var Main = []Item{
	{Section: "inicio", LabelKey: "nav.inicio"},
	{Section: "servicos", LabelKey: "nav.servicos"},
	{Section: "projetos", LabelKey: "nav.projetos"},
	{Section: "sobre", LabelKey: "nav.sobre"},
	{Section: "avaliacoes", LabelKey: "nav.avaliacoes"},
	{Section: "contato", LabelKey: "nav.contato"},
}

// Sections returns the section ids of Main in order.
func Sections() []string {
	out := make([]string, len(Main))
	for i, it := range Main {
		out[i] = it.Section
	}
	return out
}

// Build renders navigation items, marking the one matching the active section.
func Build(active string) []RenderedItem {
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:     "#" + it.Section,
			Section:  it.Section,
			LabelKey: it.LabelKey,
			Active:   active != "" && it.Section == active,
		})
	}
	return items
}
