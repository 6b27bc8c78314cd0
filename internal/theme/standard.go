package theme

var defaultFontSizes = map[string]string{
	"xs":   "0.75rem",
	"sm":   "0.875rem",
	"base": "1rem",
	"lg":   "1.125rem",
	"xl":   "1.25rem",
	"2xl":  "1.5rem",
	"3xl":  "1.875rem",
}

var defaultSpacing = map[string]string{
	"xs": "0.25rem",
	"sm": "0.5rem",
	"md": "1rem",
	"lg": "1.5rem",
	"xl": "2rem",
}

var defaultShadows = map[string]string{
	"sm": "0 1px 2px 0 rgb(0 0 0 / 0.05)",
	"md": "0 4px 6px -1px rgb(0 0 0 / 0.1)",
	"lg": "0 10px 15px -3px rgb(0 0 0 / 0.1)",
}

func radiusScale(sm, md, lg string) map[string]string {
	return map[string]string{"sm": sm, "md": md, "lg": lg, "full": "9999px"}
}

// standardPresets are read-only and always available.
var standardPresets = []Preset{
	{
		ID:          "modern-blue",
		Name:        "Modern Blue",
		Category:    CategoryModern,
		Description: "Crisp blues with a geometric sans",
		Colors: ColorModes{
			Light: Palette{Primary: "#2563EB", Secondary: "#64748B", Accent: "#0EA5E9", Background: "#FFFFFF", Foreground: "#0F172A", Muted: "#F1F5F9", Border: "#E2E8F0"},
			Dark:  Palette{Primary: "#3B82F6", Secondary: "#94A3B8", Accent: "#38BDF8", Background: "#0F172A", Foreground: "#F8FAFC", Muted: "#1E293B", Border: "#334155"},
		},
		Typography: Typography{Heading: "Inter, sans-serif", Body: "Inter, sans-serif", Mono: "JetBrains Mono, monospace", FontSize: defaultFontSizes},
		Spacing:    defaultSpacing,
		Borders:    Borders{Radius: radiusScale("0.25rem", "0.5rem", "0.75rem")},
		Shadows:    defaultShadows,
	},
	{
		ID:          "classic-serif",
		Name:        "Classic Serif",
		Category:    CategoryClassic,
		Description: "Editorial serif pairing on warm paper",
		Colors: ColorModes{
			Light: Palette{Primary: "#7C2D12", Secondary: "#A16207", Accent: "#B45309", Background: "#FFFBEB", Foreground: "#1C1917", Muted: "#FEF3C7", Border: "#E7E5E4"},
			Dark:  Palette{Primary: "#FDBA74", Secondary: "#FACC15", Accent: "#F59E0B", Background: "#1C1917", Foreground: "#FAFAF9", Muted: "#292524", Border: "#44403C"},
		},
		Typography: Typography{Heading: "Playfair Display, serif", Body: "Lora, serif", FontSize: defaultFontSizes},
		Spacing:    defaultSpacing,
		Borders:    Borders{Radius: radiusScale("0.125rem", "0.25rem", "0.375rem")},
		Shadows:    defaultShadows,
		CustomProperties: map[string]string{
			"hero-overlay": "rgb(28 25 23 / 0.45)",
		},
	},
	{
		ID:          "minimal-mono",
		Name:        "Minimal Mono",
		Category:    CategoryMinimal,
		Description: "Black, white and one accent",
		Colors: ColorModes{
			Light: Palette{Primary: "#111111", Secondary: "#555555", Accent: "#FF3D00", Background: "#FFFFFF", Foreground: "#111111"},
			Dark:  Palette{Primary: "#FAFAFA", Secondary: "#A3A3A3", Accent: "#FF6E40", Background: "#0A0A0A", Foreground: "#FAFAFA"},
		},
		Typography: Typography{Heading: "Space Grotesk, sans-serif", Body: "Inter, sans-serif", Mono: "IBM Plex Mono, monospace", FontSize: defaultFontSizes},
		Spacing:    defaultSpacing,
		Borders:    Borders{Radius: radiusScale("0", "0", "0")},
	},
	{
		ID:          "bold-sunset",
		Name:        "Bold Sunset",
		Category:    CategoryBold,
		Description: "Saturated gradients and big type",
		Colors: ColorModes{
			Light: Palette{Primary: "#E11D48", Secondary: "#F97316", Accent: "#FBBF24", Background: "#FFF7ED", Foreground: "#431407", Muted: "#FFEDD5", Border: "#FED7AA"},
			Dark:  Palette{Primary: "#FB7185", Secondary: "#FB923C", Accent: "#FCD34D", Background: "#1F0A05", Foreground: "#FFF7ED", Muted: "#431407", Border: "#7C2D12"},
		},
		Typography: Typography{Heading: "Poppins, sans-serif", Body: "DM Sans, sans-serif", FontSize: map[string]string{
			"sm": "0.95rem", "base": "1.05rem", "lg": "1.25rem", "xl": "1.5rem", "2xl": "2rem", "3xl": "2.75rem",
		}},
		Spacing: defaultSpacing,
		Borders: Borders{Radius: radiusScale("0.5rem", "1rem", "1.5rem")},
		Shadows: defaultShadows,
		CustomProperties: map[string]string{
			"gradient-hero": "linear-gradient(135deg, #E11D48, #F97316)",
		},
	},
}

// Standard returns copies of the built-in presets.
func Standard() []Preset {
	out := make([]Preset, len(standardPresets))
	for i, p := range standardPresets {
		out[i] = p.Clone()
	}
	return out
}
