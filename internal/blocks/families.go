package blocks

import "github.com/alexisbeaulieu97/sitestudio/internal/variant"

// Accordion variant ids.
const (
	AccordionSimple   = "simple"
	AccordionBordered = "bordered"
	AccordionCard     = "card"
	AccordionFAQ      = "faq"
	AccordionNumbered = "numbered"
	AccordionIcon     = "icon"
	AccordionMinimal  = "minimal"
)

var heroMetadata = variant.ComponentMetadata{
	Name:           TypeHero,
	DisplayName:    "Hero",
	Description:    "Top-of-page banner with headline and call to action",
	Category:       "section",
	Tags:           []string{"header", "cta"},
	DefaultVariant: "centered",
	Variants: []variant.Metadata{
		{ID: "centered", Name: "Centered", Description: "Headline and CTA centered over a plain background"},
		{ID: "split", Name: "Split", Description: "Copy on the left, image on the right", Tags: []string{"image"}},
		{ID: "image-background", Name: "Image Background", Description: "Full-bleed background image", Tags: []string{"image"}},
		{ID: "minimal", Name: "Minimal", Description: "Headline only"},
	},
}

var featuresMetadata = variant.ComponentMetadata{
	Name:           TypeFeatures,
	DisplayName:    "Features",
	Description:    "Highlights of the business offering",
	Category:       "section",
	Tags:           []string{"content"},
	DefaultVariant: "grid",
	Variants: []variant.Metadata{
		{ID: "grid", Name: "Grid", Description: "Three-column grid"},
		{ID: "list", Name: "List", Description: "Stacked list"},
		{ID: "alternating", Name: "Alternating", Description: "Rows alternate left and right"},
		{ID: "icons", Name: "Icons", Description: "Icon-led compact tiles", Tags: []string{"icon"}},
	},
}

var testimonialsMetadata = variant.ComponentMetadata{
	Name:           TypeTestimonials,
	DisplayName:    "Testimonials",
	Description:    "Customer quotes",
	Category:       "section",
	Tags:           []string{"social-proof"},
	DefaultVariant: "grid",
	Variants: []variant.Metadata{
		{ID: "grid", Name: "Grid", Description: "All quotes in a grid"},
		{ID: "carousel", Name: "Carousel", Description: "One quote at a time with navigation"},
		{ID: "single", Name: "Single", Description: "Only the first quote, large"},
		{ID: "masonry", Name: "Masonry", Description: "Staggered columns"},
	},
}

var accordionMetadata = variant.ComponentMetadata{
	Name:           TypeAccordion,
	DisplayName:    "Accordion",
	Description:    "Collapsible question and answer list",
	Category:       "block",
	Tags:           []string{"faq", "interactive"},
	DefaultVariant: AccordionSimple,
	Variants: []variant.Metadata{
		{ID: AccordionSimple, Name: "Simple", Description: "Plain collapsible rows"},
		{ID: AccordionBordered, Name: "Bordered", Description: "Rows separated by borders"},
		{ID: AccordionCard, Name: "Card", Description: "Each row in its own card"},
		{ID: AccordionFAQ, Name: "FAQ", Description: "Question and answer styling", Tags: []string{"faq"}},
		{ID: AccordionNumbered, Name: "Numbered", Description: "Rows prefixed with their index"},
		{ID: AccordionIcon, Name: "Icon", Description: "Expand icon before each row"},
		{ID: AccordionMinimal, Name: "Minimal", Description: "All rows collapsed, no chrome"},
	},
}

var tabsMetadata = variant.ComponentMetadata{
	Name:           TypeTabs,
	DisplayName:    "Tabs",
	Description:    "Tabbed content panels",
	Category:       "block",
	Tags:           []string{"interactive"},
	DefaultVariant: "underline",
	Variants: []variant.Metadata{
		{ID: "underline", Name: "Underline", Description: "Underlined active tab"},
		{ID: "pills", Name: "Pills", Description: "Rounded pill buttons"},
		{ID: "vertical", Name: "Vertical", Description: "Tab list on the side"},
		{ID: "boxed", Name: "Boxed", Description: "Tabs inside a bordered box"},
	},
}

var cardsMetadata = variant.ComponentMetadata{
	Name:           TypeCards,
	DisplayName:    "Cards",
	Description:    "Grid of cards for products, people or posts",
	Category:       "block",
	Tags:           []string{"content"},
	DefaultVariant: "feature",
	Variants: []variant.Metadata{
		{ID: "feature", Name: "Feature", Description: "Title and description"},
		{ID: "product", Name: "Product", Description: "Image, title and price", Tags: []string{"commerce"}},
		{ID: "profile", Name: "Profile", Description: "Person with role"},
		{ID: "pricing", Name: "Pricing", Description: "Plan with price and link", Tags: []string{"commerce"}},
		{ID: "blog", Name: "Blog", Description: "Post teaser with link"},
	},
}
