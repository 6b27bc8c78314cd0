// Package studio holds the editing state of one site and coordinates the
// template catalog, the processor, the variant registry and theme presets.
package studio

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/alexisbeaulieu97/sitestudio/internal/catalog"
	"github.com/alexisbeaulieu97/sitestudio/internal/events"
	"github.com/alexisbeaulieu97/sitestudio/internal/logger"
	"github.com/alexisbeaulieu97/sitestudio/internal/preview"
	"github.com/alexisbeaulieu97/sitestudio/internal/processor"
	"github.com/alexisbeaulieu97/sitestudio/internal/site"
	"github.com/alexisbeaulieu97/sitestudio/internal/theme"
	"github.com/alexisbeaulieu97/sitestudio/internal/variant"
	studioerrors "github.com/alexisbeaulieu97/sitestudio/pkg/errors"
)

// Deps are the long-lived services a Studio works with.
type Deps struct {
	Templates *catalog.Registry
	Variants  *variant.Registry
	Presets   *theme.Manager
	Bus       *events.Bus
	Logger    *logger.Logger
	CSSPrefix string
}

// Studio is the state container behind the builder: the chosen template,
// business fields, per-section variant overrides and the active preset.
type Studio struct {
	deps    Deps
	logger  *logger.Logger
	root    *theme.Root
	applier *theme.Applier

	mu        sync.RWMutex
	template  *site.SiteTemplate
	business  site.BusinessInfo
	overrides map[string]string
	presetID  string
	mode      theme.Mode
}

// New creates a Studio and applies the persisted preset and mode.
func New(deps Deps) *Studio {
	root := theme.NewRoot()
	s := &Studio{
		deps:      deps,
		logger:    deps.Logger.Component("studio"),
		root:      root,
		applier:   theme.NewApplier(root, deps.CSSPrefix),
		business:  site.BusinessInfo{},
		overrides: map[string]string{},
		presetID:  deps.Presets.CurrentPresetID(),
		mode:      deps.Presets.Mode(),
	}
	s.applyTheme(context.Background())
	return s
}

// SelectTemplate switches to the template with id. Business fields are kept;
// variant overrides are cleared since section ids belong to the old template.
func (s *Studio) SelectTemplate(ctx context.Context, id string) error {
	tpl, ok := s.deps.Templates.Get(id)
	if !ok {
		return studioerrors.NewValidationError("template", fmt.Sprintf("unknown template %q", id), nil)
	}

	s.mu.Lock()
	s.template = &tpl
	s.overrides = map[string]string{}
	s.mu.Unlock()

	s.deps.Bus.Publish(ctx, events.TemplateSelected{TemplateID: id})
	return nil
}

// Template returns the selected template.
func (s *Studio) Template() (site.SiteTemplate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.template == nil {
		return site.SiteTemplate{}, false
	}
	return s.template.Clone(), true
}

// SetBusinessField records one business field. An empty value clears it so
// the template default shows again.
func (s *Studio) SetBusinessField(ctx context.Context, key, value string) {
	s.mu.Lock()
	if value == "" {
		delete(s.business, key)
	} else {
		s.business[key] = value
	}
	s.mu.Unlock()

	s.deps.Bus.Publish(ctx, events.BusinessUpdated{Key: key, Value: value})
}

// Business returns a copy of the business fields.
func (s *Studio) Business() site.BusinessInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(site.BusinessInfo, len(s.business))
	for k, v := range s.business {
		out[k] = v
	}
	return out
}

// Config processes the selected template with the current business fields
// and applies variant overrides.
func (s *Studio) Config() (site.SiteConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.template == nil {
		return site.SiteConfig{}, studioerrors.NewValidationError("template", "no template selected", nil)
	}

	cfg := processor.Process(*s.template, s.business)
	for i := range cfg.Pages {
		for j := range cfg.Pages[i].Sections {
			section := &cfg.Pages[i].Sections[j]
			if override, ok := s.overrides[section.ID]; ok {
				section.Variant = override
			}
		}
	}
	return cfg, nil
}

// Lint reports unresolved placeholders for the current template and fields.
func (s *Studio) Lint() ([]processor.Issue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.template == nil {
		return nil, studioerrors.NewValidationError("template", "no template selected", nil)
	}
	return processor.Lint(*s.template, s.business), nil
}

func (s *Studio) section(pageID, sectionID string) (site.SectionConfig, error) {
	cfg, err := s.Config()
	if err != nil {
		return site.SectionConfig{}, err
	}
	page, ok := cfg.Page(pageID)
	if !ok {
		return site.SectionConfig{}, studioerrors.NewValidationError("page", fmt.Sprintf("unknown page %q", pageID), nil)
	}
	for _, section := range page.Sections {
		if section.ID == sectionID {
			return section, nil
		}
	}
	return site.SectionConfig{}, studioerrors.NewValidationError("section", fmt.Sprintf("unknown section %q on page %q", sectionID, pageID), nil)
}

// SetVariant overrides the variant of one section. The variant must be
// registered for the section's type.
func (s *Studio) SetVariant(ctx context.Context, pageID, sectionID, variantID string) error {
	section, err := s.section(pageID, sectionID)
	if err != nil {
		return err
	}
	if !s.deps.Variants.Has(section.Type, variantID) {
		return studioerrors.NewValidationError("variant", fmt.Sprintf("%q is not a registered %s variant", variantID, section.Type), nil)
	}

	s.mu.Lock()
	s.overrides[sectionID] = variantID
	s.mu.Unlock()

	s.deps.Bus.Publish(ctx, events.VariantChanged{PageID: pageID, SectionID: sectionID, Previous: section.Variant, Variant: variantID})
	return nil
}

// OpenVariantPicker announces that the variant picker should open for a
// section by publishing an open-variant-popup event.
func (s *Studio) OpenVariantPicker(ctx context.Context, pageID, sectionID string) error {
	section, err := s.section(pageID, sectionID)
	if err != nil {
		return err
	}

	s.deps.Bus.Publish(ctx, events.OpenVariantPopup{
		SectionType:    section.Type,
		CurrentVariant: section.Variant,
		SectionID:      section.ID,
		PageID:         pageID,
	})
	return nil
}

// VariantOptions lists the declared variants for a section type.
func (s *Studio) VariantOptions(sectionType string) []variant.Metadata {
	meta, ok := s.deps.Variants.Metadata(sectionType)
	if !ok {
		return nil
	}
	return append([]variant.Metadata(nil), meta.Variants...)
}

// SelectPreset persists and applies the preset with id.
func (s *Studio) SelectPreset(ctx context.Context, id string) error {
	if err := s.deps.Presets.SetCurrentPreset(id); err != nil {
		return err
	}
	s.mu.Lock()
	s.presetID = id
	s.mu.Unlock()

	s.applyTheme(ctx)
	return nil
}

// PreviewPreset applies the preset with id to this session only. The stored
// choice is left unchanged.
func (s *Studio) PreviewPreset(ctx context.Context, id string) error {
	if _, ok := s.deps.Presets.ByID(id); !ok {
		return studioerrors.NewValidationError("preset", fmt.Sprintf("unknown preset %q", id), nil)
	}
	s.mu.Lock()
	s.presetID = id
	s.mu.Unlock()

	s.applyTheme(ctx)
	return nil
}

// SetMode persists and applies the color mode.
func (s *Studio) SetMode(ctx context.Context, mode theme.Mode) error {
	if err := s.deps.Presets.SetMode(mode); err != nil {
		return err
	}
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()

	s.applyTheme(ctx)
	return nil
}

// Preset returns the active preset id and mode.
func (s *Studio) Preset() (string, theme.Mode) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.presetID, s.mode
}

// SetSystemMode installs the resolver used when the mode is system.
func (s *Studio) SetSystemMode(resolve func() theme.Mode) {
	s.applier.SetSystem(resolve)
	s.applyTheme(context.Background())
}

// CSS returns the current :root custom properties.
func (s *Studio) CSS() string {
	return s.root.CSS()
}

// Preview renders one page of the current site as HTML.
func (s *Studio) Preview(w io.Writer, pageID string) error {
	cfg, err := s.Config()
	if err != nil {
		return err
	}
	return preview.Page(w, cfg, pageID, s.deps.Variants, s.CSS())
}

func (s *Studio) applyTheme(ctx context.Context) {
	s.mu.RLock()
	id, mode := s.presetID, s.mode
	s.mu.RUnlock()

	preset, ok := s.deps.Presets.ByID(id)
	if !ok {
		s.logger.Warnw("current preset missing, using default", map[string]any{"preset": id})
		preset, _ = s.deps.Presets.ByID(theme.DefaultPresetID)
	}

	result := s.applier.Apply(preset, mode)
	s.deps.Bus.Publish(ctx, events.PresetApplied{PresetID: preset.ID, Mode: string(result.Mode), Removed: result.Removed})
}
