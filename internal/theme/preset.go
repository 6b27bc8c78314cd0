// Package theme manages design-token presets and turns them into CSS custom
// properties.
package theme

// Categories of presets.
const (
	CategoryModern  = "modern"
	CategoryClassic = "classic"
	CategoryMinimal = "minimal"
	CategoryBold    = "bold"
	CategoryCustom  = "custom"
)

// Mode selects which color set applies.
type Mode string

// Supported modes. System defers to a resolver.
const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeLight || m == ModeDark || m == ModeSystem
}

// Preset is a named bundle of design tokens.
type Preset struct {
	ID               string            `json:"id" validate:"required,slug"`
	Name             string            `json:"name" validate:"required,max=100"`
	Category         string            `json:"category" validate:"required,oneof=modern classic minimal bold custom"`
	Description      string            `json:"description,omitempty"`
	Colors           ColorModes        `json:"colors"`
	Typography       Typography        `json:"typography"`
	Spacing          map[string]string `json:"spacing,omitempty" validate:"omitempty,dive,css_value"`
	Borders          Borders           `json:"borders"`
	Shadows          map[string]string `json:"shadows,omitempty" validate:"omitempty,dive,css_value"`
	CustomProperties map[string]string `json:"customProperties,omitempty" validate:"omitempty,dive,css_value"`
}

// ColorModes holds one palette per mode.
type ColorModes struct {
	Light Palette `json:"light"`
	Dark  Palette `json:"dark"`
}

// Palette is the set of semantic color tokens for one mode.
type Palette struct {
	Primary    string `json:"primary" validate:"required,iscolor"`
	Secondary  string `json:"secondary" validate:"required,iscolor"`
	Accent     string `json:"accent" validate:"required,iscolor"`
	Background string `json:"background" validate:"required,iscolor"`
	Foreground string `json:"foreground" validate:"required,iscolor"`
	Muted      string `json:"muted,omitempty" validate:"omitempty,iscolor"`
	Border     string `json:"border,omitempty" validate:"omitempty,iscolor"`
}

// Typography holds font families and the size scale.
type Typography struct {
	Heading  string            `json:"heading" validate:"required,css_value"`
	Body     string            `json:"body" validate:"required,css_value"`
	Mono     string            `json:"mono,omitempty" validate:"css_value"`
	FontSize map[string]string `json:"fontSize,omitempty" validate:"omitempty,dive,css_value"`
}

// Borders holds the radius scale.
type Borders struct {
	Radius map[string]string `json:"radius,omitempty" validate:"omitempty,dive,css_value"`
}

// Palette returns the palette for mode. System resolves to light; callers
// that know the viewer preference resolve it first.
func (p Preset) Palette(mode Mode) Palette {
	if mode == ModeDark {
		return p.Colors.Dark
	}
	return p.Colors.Light
}

// Clone returns a deep copy of the preset.
func (p Preset) Clone() Preset {
	out := p
	out.Typography.FontSize = cloneMap(p.Typography.FontSize)
	out.Spacing = cloneMap(p.Spacing)
	out.Borders.Radius = cloneMap(p.Borders.Radius)
	out.Shadows = cloneMap(p.Shadows)
	out.CustomProperties = cloneMap(p.CustomProperties)
	return out
}

func cloneMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
