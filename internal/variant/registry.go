// Package variant maps (section type, variant id) pairs to renderers.
package variant

import (
	"io"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/sitestudio/internal/logger"
	"github.com/alexisbeaulieu97/sitestudio/internal/site"
	studioerrors "github.com/alexisbeaulieu97/sitestudio/pkg/errors"
)

// Renderer draws one section in a specific visual variant.
type Renderer interface {
	Render(w io.Writer, section site.SectionConfig) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(w io.Writer, section site.SectionConfig) error

// Render implements Renderer.
func (f RendererFunc) Render(w io.Writer, section site.SectionConfig) error {
	return f(w, section)
}

// Resolved is the outcome of a successful section lookup.
type Resolved struct {
	Component ComponentMetadata
	VariantID string
	Renderer  Renderer
	// Fallback is set when the requested variant was missing and the default was used.
	Fallback bool
}

type entry struct {
	metadata ComponentMetadata
	variants map[string]Renderer
}

// Registry stores component families keyed by name.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
	logger  *logger.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		entries: make(map[string]entry),
		logger:  log.Component("variant"),
	}
}

// Register validates and stores a component family. The stored variant map
// gains a DefaultKey entry pointing at the default renderer. Registering the
// same name again replaces the earlier family.
func (r *Registry) Register(metadata ComponentMetadata, variants map[string]Renderer) error {
	if err := metadata.Validate(variants); err != nil {
		return studioerrors.NewRegistrationError(metadata.Name, err)
	}

	stored := make(map[string]Renderer, len(variants)+1)
	for id, renderer := range variants {
		stored[id] = renderer
	}
	stored[DefaultKey] = variants[metadata.DefaultVariant]

	metadata.Tags = append([]string(nil), metadata.Tags...)
	metadata.Variants = append([]Metadata(nil), metadata.Variants...)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[metadata.Name]; exists {
		r.logger.WithFields(map[string]any{"type": metadata.Name}).Debug("replacing registered component")
	}
	r.entries[metadata.Name] = entry{metadata: metadata, variants: stored}
	return nil
}

// ForSection resolves the renderer for a section. A missing or unknown
// variant falls back to the family default; an unknown type returns false.
func (r *Registry) ForSection(section site.SectionConfig) (Resolved, bool) {
	r.mu.RLock()
	e, ok := r.entries[section.Type]
	r.mu.RUnlock()

	if !ok {
		r.logger.Warnw("no component registered for section type", map[string]any{"type": section.Type, "section": section.ID})
		return Resolved{}, false
	}

	if section.Variant != "" {
		if renderer, found := e.variants[section.Variant]; found {
			return Resolved{Component: e.metadata, VariantID: section.Variant, Renderer: renderer}, true
		}
		r.logger.Warnw("variant not registered, using default", map[string]any{
			"type":     section.Type,
			"variant":  section.Variant,
			"fallback": e.metadata.DefaultVariant,
		})
		return Resolved{
			Component: e.metadata,
			VariantID: e.metadata.DefaultVariant,
			Renderer:  e.variants[DefaultKey],
			Fallback:  true,
		}, true
	}

	return Resolved{Component: e.metadata, VariantID: e.metadata.DefaultVariant, Renderer: e.variants[DefaultKey]}, true
}

// Metadata returns the metadata registered under name.
func (r *Registry) Metadata(name string) (ComponentMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	return e.metadata, ok
}

// Has reports whether type name has the variant id registered.
func (r *Registry) Has(name, variantID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return false
	}
	_, found := e.variants[variantID]
	return found
}

// Variants returns the registered variant ids for name, sorted, including DefaultKey.
func (r *Registry) Variants(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(e.variants))
	for id := range e.variants {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// List returns every registered family's metadata sorted by name.
func (r *Registry) List() []ComponentMetadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ComponentMetadata, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.metadata)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
