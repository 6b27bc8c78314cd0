// Package blocks provides the built-in section families and their HTML
// renderers.
package blocks

import (
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/sitestudio/internal/site"
	"github.com/alexisbeaulieu97/sitestudio/internal/variant"
)

// Section types.
const (
	TypeHero         = "hero"
	TypeFeatures     = "features"
	TypeTestimonials = "testimonials"
	TypeAccordion    = "accordion"
	TypeTabs         = "tabs"
	TypeCards        = "cards"
)

type view struct {
	ID      string
	Variant string
	Anchor  string
	S       map[string]any
	Items   []map[string]any
}

type templateRenderer struct {
	family  string
	variant string
}

func (r templateRenderer) Render(w io.Writer, section site.SectionConfig) error {
	data := view{
		ID:      section.ID,
		Variant: r.variant,
		Anchor:  section.Anchor,
		S:       section.Content,
		Items:   section.Items("items"),
	}
	if data.S == nil {
		data.S = map[string]any{}
	}
	if err := sectionTemplates.ExecuteTemplate(w, r.family, data); err != nil {
		return fmt.Errorf("render %s/%s: %w", r.family, r.variant, err)
	}
	return nil
}

// Family bundles a component's metadata with its renderers.
type Family struct {
	Metadata variant.ComponentMetadata
	Variants map[string]variant.Renderer
}

func newFamily(meta variant.ComponentMetadata) Family {
	variants := make(map[string]variant.Renderer, len(meta.Variants))
	for _, v := range meta.Variants {
		variants[v.ID] = templateRenderer{family: meta.Name, variant: v.ID}
	}
	return Family{Metadata: meta, Variants: variants}
}

// Families returns the built-in section families.
func Families() []Family {
	return []Family{
		newFamily(heroMetadata),
		newFamily(featuresMetadata),
		newFamily(testimonialsMetadata),
		newFamily(accordionMetadata),
		newFamily(tabsMetadata),
		newFamily(cardsMetadata),
	}
}

// RegisterAll registers every built-in family, stopping at the first failure.
func RegisterAll(reg *variant.Registry) error {
	for _, family := range Families() {
		if err := reg.Register(family.Metadata, family.Variants); err != nil {
			return err
		}
	}
	return nil
}
