package variant

import (
	"fmt"
	"strings"
)

// DefaultKey is the variant id injected at registration that always maps to
// the family's default renderer.
const DefaultKey = "default"

// ComponentMetadata describes a component family such as "hero" or "accordion".
// Name doubles as the section type the family renders.
type ComponentMetadata struct {
	Name           string
	DisplayName    string
	Description    string
	Category       string
	Tags           []string
	DefaultVariant string
	Variants       []Metadata
}

// Metadata describes one visual variant of a component family.
type Metadata struct {
	ID          string
	Name        string
	Description string
	Tags        []string
}

// Validate checks the metadata against the supplied variant map. Every
// declared variant id except DefaultKey must have a renderer.
func (m ComponentMetadata) Validate(variants map[string]Renderer) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("component metadata requires a non-empty Name")
	}
	if strings.TrimSpace(m.DefaultVariant) == "" {
		return fmt.Errorf("component '%s' metadata requires DefaultVariant", m.Name)
	}
	if len(variants) == 0 {
		return fmt.Errorf("component '%s' must supply at least one variant", m.Name)
	}
	if variants[m.DefaultVariant] == nil {
		return fmt.Errorf("component '%s' default variant '%s' has no renderer", m.Name, m.DefaultVariant)
	}

	seen := make(map[string]struct{}, len(m.Variants))
	for _, declared := range m.Variants {
		if declared.ID == DefaultKey {
			continue
		}
		if strings.TrimSpace(declared.ID) == "" {
			return fmt.Errorf("component '%s' declares a variant with empty id", m.Name)
		}
		if _, dup := seen[declared.ID]; dup {
			return fmt.Errorf("component '%s' declares variant '%s' more than once", m.Name, declared.ID)
		}
		seen[declared.ID] = struct{}{}
		if variants[declared.ID] == nil {
			return fmt.Errorf("component '%s' declares variant '%s' without an implementation", m.Name, declared.ID)
		}
	}

	return nil
}

// Variant returns the declared metadata for id.
func (m ComponentMetadata) Variant(id string) (Metadata, bool) {
	for _, declared := range m.Variants {
		if declared.ID == id {
			return declared, true
		}
	}
	return Metadata{}, false
}
