// Package catalog stores the industry templates a site can start from.
package catalog

import (
	"embed"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/sitestudio/internal/logger"
	"github.com/alexisbeaulieu97/sitestudio/internal/site"
)

//go:embed templates/*.yaml
var builtinFS embed.FS

// Builtin returns the templates shipped with the binary.
func Builtin() ([]site.SiteTemplate, error) {
	return LoadDir(builtinFS, "templates")
}

// Registry holds templates keyed by id. Values are copied on the way in and
// out so registered templates cannot be modified.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]site.SiteTemplate
	logger    *logger.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		templates: make(map[string]site.SiteTemplate),
		logger:    log.Component("catalog"),
	}
}

// Register validates and stores tpl. A template with the same id is replaced.
func (r *Registry) Register(tpl site.SiteTemplate) error {
	if err := ValidateTemplate(tpl); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.templates[tpl.ID]; exists {
		r.logger.WithFields(map[string]any{"template": tpl.ID}).Debug("replacing registered template")
	}
	r.templates[tpl.ID] = tpl.Clone()
	return nil
}

// RegisterAll registers each template, stopping at the first failure.
func (r *Registry) RegisterAll(templates []site.SiteTemplate) error {
	for _, tpl := range templates {
		if err := r.Register(tpl); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the template with id.
func (r *Registry) Get(id string) (site.SiteTemplate, bool) {
	r.mu.RLock()
	tpl, ok := r.templates[id]
	r.mu.RUnlock()

	if !ok {
		r.logger.Warnw("template not found", map[string]any{"template": id})
		return site.SiteTemplate{}, false
	}
	return tpl.Clone(), true
}

// List returns all templates sorted by id.
func (r *Registry) List() []site.SiteTemplate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]site.SiteTemplate, 0, len(r.templates))
	for _, tpl := range r.templates {
		out = append(out, tpl.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ByCategory returns templates in category sorted by id; never nil.
func (r *Registry) ByCategory(category string) []site.SiteTemplate {
	out := []site.SiteTemplate{}
	for _, tpl := range r.List() {
		if tpl.Category == category {
			out = append(out, tpl)
		}
	}
	return out
}

// Categories returns the distinct categories in use, sorted.
func (r *Registry) Categories() []string {
	seen := map[string]struct{}{}
	for _, tpl := range r.List() {
		seen[tpl.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for category := range seen {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}
