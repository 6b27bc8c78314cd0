package theme

import (
	"sort"
	"strings"
	"sync"
)

// Property is a single CSS custom property.
type Property struct {
	Name  string
	Value string
}

// Variables flattens the preset's token tree for mode into custom
// properties. Names take the form --[prefix-]group-key. Empty tokens are
// skipped. The order is stable: group order, then key.
func Variables(p Preset, mode Mode, prefix string) []Property {
	b := propertyBuilder{prefix: prefix}

	palette := p.Palette(mode)
	b.add("color-primary", palette.Primary)
	b.add("color-secondary", palette.Secondary)
	b.add("color-accent", palette.Accent)
	b.add("color-background", palette.Background)
	b.add("color-foreground", palette.Foreground)
	b.add("color-muted", palette.Muted)
	b.add("color-border", palette.Border)

	b.add("font-heading", p.Typography.Heading)
	b.add("font-body", p.Typography.Body)
	b.add("font-mono", p.Typography.Mono)
	b.addScale("font-size", p.Typography.FontSize)

	b.addScale("spacing", p.Spacing)
	b.addScale("radius", p.Borders.Radius)
	b.addScale("shadow", p.Shadows)
	b.addScale("custom", p.CustomProperties)

	return b.props
}

type propertyBuilder struct {
	prefix string
	props  []Property
}

func (b *propertyBuilder) add(name, value string) {
	if value == "" {
		return
	}
	full := "--" + name
	if b.prefix != "" {
		full = "--" + b.prefix + "-" + name
	}
	b.props = append(b.props, Property{Name: full, Value: value})
}

func (b *propertyBuilder) addScale(group string, scale map[string]string) {
	keys := make([]string, 0, len(scale))
	for key := range scale {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		b.add(group+"-"+key, scale[key])
	}
}

// Root is an in-memory stand-in for a document root's inline style.
type Root struct {
	mu    sync.RWMutex
	props map[string]string
}

// NewRoot returns an empty Root.
func NewRoot() *Root {
	return &Root{props: make(map[string]string)}
}

// SetProperty sets a custom property.
func (r *Root) SetProperty(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.props[name] = value
}

// RemoveProperty deletes a custom property.
func (r *Root) RemoveProperty(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.props, name)
}

// Property returns the value of name.
func (r *Root) Property(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.props[name]
	return value, ok
}

// Len returns the number of properties set.
func (r *Root) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.props)
}

// CSS renders the properties as a :root rule sorted by name.
func (r *Root) CSS() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.props))
	for name := range r.props {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, name := range names {
		sb.WriteString("  ")
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(r.props[name])
		sb.WriteString(";\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

// ApplyResult summarises one Apply call.
type ApplyResult struct {
	Mode    Mode
	Set     int
	Removed []string
}

// Applier writes preset variables to a Root and clears properties left over
// from the previous preset.
type Applier struct {
	root   *Root
	prefix string

	mu      sync.Mutex
	system  func() Mode
	applied map[string]struct{}
}

// NewApplier returns an Applier writing to root.
func NewApplier(root *Root, prefix string) *Applier {
	return &Applier{root: root, prefix: prefix, applied: map[string]struct{}{}}
}

// SetSystem installs the resolver for ModeSystem; nil means light.
func (a *Applier) SetSystem(resolve func() Mode) {
	a.mu.Lock()
	a.system = resolve
	a.mu.Unlock()
}

// Apply writes every variable of p for mode and removes properties set by
// the previous Apply that p no longer defines.
func (a *Applier) Apply(p Preset, mode Mode) ApplyResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	if mode == ModeSystem || !mode.Valid() {
		mode = ModeLight
		if a.system != nil && a.system() == ModeDark {
			mode = ModeDark
		}
	}

	props := Variables(p, mode, a.prefix)
	next := make(map[string]struct{}, len(props))

	for _, prop := range props {
		a.root.SetProperty(prop.Name, prop.Value)
		next[prop.Name] = struct{}{}
	}

	var removed []string
	for name := range a.applied {
		if _, keep := next[name]; !keep {
			a.root.RemoveProperty(name)
			removed = append(removed, name)
		}
	}
	sort.Strings(removed)
	a.applied = next

	return ApplyResult{Mode: mode, Set: len(props), Removed: removed}
}
