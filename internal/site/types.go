// Package site holds the data model shared by the template registry, the
// processor, the variant registry and the studio.
package site

// SiteTemplate is an industry preset: default pages, sections, theme
// selectors and placeholder values. Templates are immutable once registered.
type SiteTemplate struct {
	ID           string            `yaml:"id" json:"id" validate:"required,slug"`
	Name         string            `yaml:"name" json:"name" validate:"required,max=100"`
	Category     string            `yaml:"category" json:"category" validate:"required,slug"`
	Description  string            `yaml:"description,omitempty" json:"description,omitempty"`
	IndustryTags []string          `yaml:"industry_tags,omitempty" json:"industryTags,omitempty"`
	Theme        ThemeSelectors    `yaml:"theme" json:"theme"`
	Pages        []PageTemplate    `yaml:"pages" json:"pages" validate:"required,min=1,dive"`
	Placeholders map[string]string `yaml:"placeholders,omitempty" json:"placeholders,omitempty"`
}

// ThemeSelectors are the enum choices a template makes; the processor maps
// them to literal values.
type ThemeSelectors struct {
	ColorScheme  string `yaml:"color_scheme,omitempty" json:"colorScheme,omitempty"`
	Typography   string `yaml:"typography,omitempty" json:"typography,omitempty"`
	Spacing      string `yaml:"spacing,omitempty" json:"spacing,omitempty"`
	BorderRadius string `yaml:"border_radius,omitempty" json:"borderRadius,omitempty"`
}

// PageTemplate is one page of a template. Pages keep definition order.
type PageTemplate struct {
	ID       string              `yaml:"id" json:"id" validate:"required,slug"`
	Title    string              `yaml:"title" json:"title" validate:"required"`
	Path     string              `yaml:"path" json:"path" validate:"required,startswith=/"`
	Sections []SectionDescriptor `yaml:"sections" json:"sections" validate:"dive"`
}

// SectionDescriptor is a section inside a template page. Content values may
// embed {placeholder} tokens at any depth.
type SectionDescriptor struct {
	Type    string         `yaml:"type" json:"type" validate:"required,slug"`
	Variant string         `yaml:"variant,omitempty" json:"variant,omitempty"`
	Anchor  string         `yaml:"anchor,omitempty" json:"anchor,omitempty"`
	Content map[string]any `yaml:"content,omitempty" json:"content,omitempty"`
}

// BusinessInfo holds user-supplied business fields keyed by placeholder name.
type BusinessInfo map[string]string

// Well-known business keys.
const (
	KeyBusinessName = "businessName"
	KeyTagline      = "tagline"
	KeyDescription  = "description"
	KeyPhone        = "phone"
	KeyEmail        = "email"
	KeyAddress      = "address"
	KeyHours        = "hours"
)

// BusinessKeys lists the keys the processor seeds SiteConfig.Business from.
var BusinessKeys = []string{KeyBusinessName, KeyTagline, KeyDescription, KeyPhone, KeyEmail, KeyAddress, KeyHours}

// SiteConfig is the fully resolved output of processing a template.
type SiteConfig struct {
	TemplateID string        `yaml:"template_id" json:"templateId"`
	Metadata   Metadata      `yaml:"metadata" json:"metadata"`
	Business   Business      `yaml:"business" json:"business"`
	Theme      ResolvedTheme `yaml:"theme" json:"theme"`
	Navigation []NavLink     `yaml:"navigation" json:"navigation"`
	Pages      []PageConfig  `yaml:"pages" json:"pages"`
}

// Metadata is the document-level metadata of a site.
type Metadata struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Keywords    []string `yaml:"keywords,omitempty" json:"keywords,omitempty"`
}

// Business is the resolved business identity.
type Business struct {
	Name        string `yaml:"name" json:"name"`
	Tagline     string `yaml:"tagline,omitempty" json:"tagline,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Phone       string `yaml:"phone,omitempty" json:"phone,omitempty"`
	Email       string `yaml:"email,omitempty" json:"email,omitempty"`
	Address     string `yaml:"address,omitempty" json:"address,omitempty"`
	Hours       string `yaml:"hours,omitempty" json:"hours,omitempty"`
}

// ResolvedTheme carries literal design values.
type ResolvedTheme struct {
	Colors       ThemeColors `yaml:"colors" json:"colors"`
	Fonts        ThemeFonts  `yaml:"fonts" json:"fonts"`
	Spacing      string      `yaml:"spacing" json:"spacing"`
	BorderRadius string      `yaml:"border_radius" json:"borderRadius"`
}

// ThemeColors is the primary/secondary/accent triad plus surface colors.
type ThemeColors struct {
	Primary    string `yaml:"primary" json:"primary"`
	Secondary  string `yaml:"secondary" json:"secondary"`
	Accent     string `yaml:"accent" json:"accent"`
	Background string `yaml:"background" json:"background"`
	Text       string `yaml:"text" json:"text"`
}

// ThemeFonts is the heading/body font family pair.
type ThemeFonts struct {
	Heading string `yaml:"heading" json:"heading"`
	Body    string `yaml:"body" json:"body"`
}

// NavLink is one navigation entry.
type NavLink struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}

// PageConfig is a resolved page.
type PageConfig struct {
	ID       string          `yaml:"id" json:"id"`
	Title    string          `yaml:"title" json:"title"`
	Path     string          `yaml:"path" json:"path"`
	Sections []SectionConfig `yaml:"sections" json:"sections"`
}

// SectionConfig is a resolved section ready for rendering.
type SectionConfig struct {
	ID      string         `yaml:"id" json:"id"`
	Type    string         `yaml:"type" json:"type"`
	Variant string         `yaml:"variant,omitempty" json:"variant,omitempty"`
	Anchor  string         `yaml:"anchor,omitempty" json:"anchor,omitempty"`
	Content map[string]any `yaml:"content,omitempty" json:"content,omitempty"`
}

// Page returns the page with the given id.
func (c SiteConfig) Page(id string) (PageConfig, bool) {
	for _, page := range c.Pages {
		if page.ID == id {
			return page, true
		}
	}
	return PageConfig{}, false
}

// Page returns the template page with the given id.
func (t SiteTemplate) Page(id string) (PageTemplate, bool) {
	for _, page := range t.Pages {
		if page.ID == id {
			return page, true
		}
	}
	return PageTemplate{}, false
}

// String returns the content value under key when it is a string.
func (s SectionConfig) String(key string) string {
	if s.Content == nil {
		return ""
	}
	value, _ := s.Content[key].(string)
	return value
}

// Items returns the content value under key as a list of maps, skipping
// entries of any other shape.
func (s SectionConfig) Items(key string) []map[string]any {
	if s.Content == nil {
		return nil
	}
	raw, ok := s.Content[key].([]any)
	if !ok {
		return nil
	}
	items := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}
