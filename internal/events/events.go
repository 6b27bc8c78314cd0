// Package events is a synchronous in-process publish/subscribe bus used to
// decouple studio steps, e.g. the page structure step from the variant picker.
package events

import "context"

// Event types.
const (
	TypeOpenVariantPopup = "open-variant-popup"
	TypeTemplateSelected = "template.selected"
	TypeBusinessUpdated  = "business.updated"
	TypeVariantChanged   = "variant.changed"
	TypePresetApplied    = "preset.applied"
)

// Event is anything that can be published.
type Event interface {
	EventType() string
	Payload() map[string]any
}

// Handler processes one event. Errors are logged and do not stop delivery to
// other handlers.
type Handler func(context.Context, Event) error

// Subscription is returned by Subscribe; Unsubscribe stops delivery.
type Subscription interface {
	Unsubscribe()
}

// OpenVariantPopup asks the variant picker to open for a section.
type OpenVariantPopup struct {
	SectionType    string
	CurrentVariant string
	SectionID      string
	PageID         string
}

// EventType implements Event.
func (OpenVariantPopup) EventType() string { return TypeOpenVariantPopup }

// Payload implements Event.
func (e OpenVariantPopup) Payload() map[string]any {
	return map[string]any{
		"sectionType":    e.SectionType,
		"currentVariant": e.CurrentVariant,
		"sectionId":      e.SectionID,
		"pageId":         e.PageID,
	}
}

// TemplateSelected reports a new template choice.
type TemplateSelected struct {
	TemplateID string
}

// EventType implements Event.
func (TemplateSelected) EventType() string { return TypeTemplateSelected }

// Payload implements Event.
func (e TemplateSelected) Payload() map[string]any {
	return map[string]any{"templateId": e.TemplateID}
}

// BusinessUpdated reports an edited business field.
type BusinessUpdated struct {
	Key   string
	Value string
}

// EventType implements Event.
func (BusinessUpdated) EventType() string { return TypeBusinessUpdated }

// Payload implements Event.
func (e BusinessUpdated) Payload() map[string]any {
	return map[string]any{"key": e.Key, "value": e.Value}
}

// VariantChanged reports a variant override on a section.
type VariantChanged struct {
	PageID    string
	SectionID string
	Previous  string
	Variant   string
}

// EventType implements Event.
func (VariantChanged) EventType() string { return TypeVariantChanged }

// Payload implements Event.
func (e VariantChanged) Payload() map[string]any {
	return map[string]any{"pageId": e.PageID, "sectionId": e.SectionID, "previous": e.Previous, "variant": e.Variant}
}

// PresetApplied reports a preset or mode change.
type PresetApplied struct {
	PresetID string
	Mode     string
	Removed  []string
}

// EventType implements Event.
func (PresetApplied) EventType() string { return TypePresetApplied }

// Payload implements Event.
func (e PresetApplied) Payload() map[string]any {
	return map[string]any{"presetId": e.PresetID, "mode": e.Mode, "removed": e.Removed}
}
