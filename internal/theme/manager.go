package theme

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/sitestudio/internal/config"
	"github.com/alexisbeaulieu97/sitestudio/internal/logger"
	studioerrors "github.com/alexisbeaulieu97/sitestudio/pkg/errors"
)

// DefaultPresetID is used when no preset has been chosen yet.
const DefaultPresetID = "modern-blue"

// Manager exposes the standard presets plus user presets kept in a Store.
type Manager struct {
	store  Store
	logger *logger.Logger
}

// NewManager returns a Manager backed by store.
func NewManager(store Store, log *logger.Logger) *Manager {
	return &Manager{store: store, logger: log.Component("theme")}
}

// All returns the standard presets followed by the custom ones.
func (m *Manager) All() []Preset {
	return append(Standard(), m.CustomPresets()...)
}

// ByID returns the preset with id from either set.
func (m *Manager) ByID(id string) (Preset, bool) {
	for _, p := range m.All() {
		if p.ID == id {
			return p, true
		}
	}
	m.logger.Warnw("preset not found", map[string]any{"preset": id})
	return Preset{}, false
}

// ByCategory returns presets in category; unknown categories yield an empty slice.
func (m *Manager) ByCategory(category string) []Preset {
	out := []Preset{}
	for _, p := range m.All() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// CustomPresets returns the stored custom presets. Unreadable or corrupt
// storage is logged and treated as empty; stored presets that no longer
// validate are skipped.
func (m *Manager) CustomPresets() []Preset {
	presets, err := m.loadCustom()
	if err != nil {
		m.logger.Error(err, "failed to load custom presets")
		return []Preset{}
	}

	valid := presets[:0]
	for _, p := range presets {
		if err := ValidatePreset(p); err != nil {
			m.logger.Warnw("skipping invalid stored preset", map[string]any{"preset": p.ID, "error": err.Error()})
			continue
		}
		valid = append(valid, p)
	}
	return valid
}

// SaveCustomPreset validates p and upserts it by id into the custom preset
// list. Presets without an id get a generated one. The stored list is not
// touched when it cannot be read.
func (m *Manager) SaveCustomPreset(p Preset) (Preset, error) {
	if p.Category != CategoryCustom {
		return Preset{}, studioerrors.NewValidationError("category", fmt.Sprintf("custom presets must use category %q, got %q", CategoryCustom, p.Category), nil)
	}
	if p.ID == "" {
		p.ID = "custom-" + uuid.NewString()
	}
	if err := ValidatePreset(p); err != nil {
		return Preset{}, err
	}
	for _, standard := range standardPresets {
		if standard.ID == p.ID {
			return Preset{}, studioerrors.NewValidationError("id", fmt.Sprintf("%q is a standard preset id", p.ID), nil)
		}
	}

	presets, err := m.loadCustom()
	if err != nil {
		m.logger.Error(err, "failed to read custom presets before save")
		return Preset{}, err
	}

	replaced := false
	for i := range presets {
		if presets[i].ID == p.ID {
			presets[i] = p.Clone()
			replaced = true
			break
		}
	}
	if !replaced {
		presets = append(presets, p.Clone())
	}

	if err := m.storeCustom(presets); err != nil {
		m.logger.Error(err, "failed to save custom preset")
		return Preset{}, err
	}

	m.logger.WithFields(map[string]any{"preset": p.ID, "replaced": replaced}).Debug("custom preset saved")
	return p, nil
}

// DeleteCustomPreset removes a custom preset and reports whether it existed.
// Deleting the current preset resets the selection to the default.
func (m *Manager) DeleteCustomPreset(id string) (bool, error) {
	presets, err := m.loadCustom()
	if err != nil {
		return false, err
	}

	kept := presets[:0]
	found := false
	for _, p := range presets {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return false, nil
	}

	if err := m.storeCustom(kept); err != nil {
		return false, err
	}
	if m.CurrentPresetID() == id {
		if err := m.store.Remove(KeyCurrentPreset); err != nil {
			return true, err
		}
	}
	return true, nil
}

// CurrentPresetID returns the persisted preset choice or DefaultPresetID.
func (m *Manager) CurrentPresetID() string {
	id, ok, err := m.store.Get(KeyCurrentPreset)
	if err != nil {
		m.logger.Error(err, "failed to read current preset")
		return DefaultPresetID
	}
	if !ok || id == "" {
		return DefaultPresetID
	}
	return id
}

// Current returns the current preset, falling back to the default when the
// stored id no longer resolves.
func (m *Manager) Current() Preset {
	if p, ok := m.ByID(m.CurrentPresetID()); ok {
		return p
	}
	p, _ := m.ByID(DefaultPresetID)
	return p
}

// SetCurrentPreset persists id as the current preset. Unknown ids are rejected.
func (m *Manager) SetCurrentPreset(id string) error {
	if _, ok := m.ByID(id); !ok {
		return studioerrors.NewValidationError("id", fmt.Sprintf("unknown preset %q", id), nil)
	}
	return m.store.Set(KeyCurrentPreset, id)
}

// Mode returns the persisted color mode, defaulting to system.
func (m *Manager) Mode() Mode {
	value, ok, err := m.store.Get(KeyMode)
	if err != nil {
		m.logger.Error(err, "failed to read theme mode")
		return ModeSystem
	}
	mode := Mode(value)
	if !ok || !mode.Valid() {
		return ModeSystem
	}
	return mode
}

// SetMode persists the color mode.
func (m *Manager) SetMode(mode Mode) error {
	if !mode.Valid() {
		return studioerrors.NewValidationError("mode", fmt.Sprintf("unknown mode %q", mode), nil)
	}
	return m.store.Set(KeyMode, string(mode))
}

// ValidatePreset checks a preset's structure, its token values and its
// custom property names.
func ValidatePreset(p Preset) error {
	if err := config.ValidateStruct(p); err != nil {
		return err
	}
	for key := range p.CustomProperties {
		if !config.ValidCSSIdent(key) {
			return studioerrors.NewValidationError("customproperties", fmt.Sprintf("%q is not a valid property name", key), nil)
		}
	}
	return nil
}

func (m *Manager) loadCustom() ([]Preset, error) {
	raw, ok, err := m.store.Get(KeyCustomPresets)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []Preset{}, nil
	}

	var presets []Preset
	if err := json.Unmarshal([]byte(raw), &presets); err != nil {
		return nil, studioerrors.NewParseError(KeyCustomPresets, 0, err)
	}
	if presets == nil {
		presets = []Preset{}
	}
	return presets, nil
}

func (m *Manager) storeCustom(presets []Preset) error {
	data, err := json.Marshal(presets)
	if err != nil {
		return studioerrors.NewPersistenceError(KeyCustomPresets, "encode", err)
	}
	return m.store.Set(KeyCustomPresets, string(data))
}
