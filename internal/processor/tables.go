package processor

import "github.com/alexisbeaulieu97/sitestudio/internal/site"

// Fallback theme values used when a template selector is missing or unknown.
var defaultTheme = site.ResolvedTheme{
	Colors: site.ThemeColors{
		Primary:    "#3B82F6",
		Secondary:  "#64748B",
		Accent:     "#F59E0B",
		Background: "#FFFFFF",
		Text:       "#0F172A",
	},
	Fonts: site.ThemeFonts{
		Heading: "Inter, sans-serif",
		Body:    "Inter, sans-serif",
	},
	Spacing:      "1rem",
	BorderRadius: "0.5rem",
}

type palette struct {
	primary, secondary, accent string
}

var colorSchemes = map[string]palette{
	"warm":    {primary: "#E11D48", secondary: "#F97316", accent: "#FBBF24"},
	"cool":    {primary: "#2563EB", secondary: "#0891B2", accent: "#7C3AED"},
	"neutral": {primary: "#171717", secondary: "#525252", accent: "#A3A3A3"},
}

var typographies = map[string]site.ThemeFonts{
	"serif":  {Heading: "Playfair Display, serif", Body: "Lora, serif"},
	"sans":   {Heading: "Inter, sans-serif", Body: "Inter, sans-serif"},
	"modern": {Heading: "Poppins, sans-serif", Body: "DM Sans, sans-serif"},
}

var spacings = map[string]string{
	"compact":     "0.75rem",
	"comfortable": "1rem",
	"spacious":    "1.5rem",
}

var radii = map[string]string{
	"none":   "0",
	"small":  "0.25rem",
	"medium": "0.5rem",
	"large":  "1rem",
	"full":   "9999px",
}

func resolveTheme(selectors site.ThemeSelectors) site.ResolvedTheme {
	theme := defaultTheme

	if p, ok := colorSchemes[selectors.ColorScheme]; ok {
		theme.Colors.Primary = p.primary
		theme.Colors.Secondary = p.secondary
		theme.Colors.Accent = p.accent
	}
	if fonts, ok := typographies[selectors.Typography]; ok {
		theme.Fonts = fonts
	}
	if spacing, ok := spacings[selectors.Spacing]; ok {
		theme.Spacing = spacing
	}
	if radius, ok := radii[selectors.BorderRadius]; ok {
		theme.BorderRadius = radius
	}

	return theme
}

// KnownSelector reports whether value is a recognised choice for the named
// theme selector ("color_scheme", "typography", "spacing", "border_radius").
func KnownSelector(selector, value string) bool {
	var ok bool
	switch selector {
	case "color_scheme":
		_, ok = colorSchemes[value]
	case "typography":
		_, ok = typographies[value]
	case "spacing":
		_, ok = spacings[value]
	case "border_radius":
		_, ok = radii[value]
	}
	return ok
}
