package theme

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/sitestudio/internal/logger"
	studioerrors "github.com/alexisbeaulieu97/sitestudio/pkg/errors"
)

func customPreset(id, primary string) Preset {
	p := Standard()[0]
	p.ID = id
	p.Name = "Brand " + id
	p.Category = CategoryCustom
	p.Colors.Light.Primary = primary
	return p
}

func TestManagerStandardLookups(t *testing.T) {
	t.Parallel()

	m := NewManager(NewMemoryStore(), logger.Nop())
	require.Len(t, m.All(), len(standardPresets))

	p, ok := m.ByID("classic-serif")
	require.True(t, ok)
	require.Equal(t, CategoryClassic, p.Category)

	_, ok = m.ByID("missing")
	require.False(t, ok)

	require.Len(t, m.ByCategory(CategoryBold), 1)
	require.NotNil(t, m.ByCategory("unknown"))
	require.Empty(t, m.ByCategory("unknown"))
}

func TestStandardPresetsAreValid(t *testing.T) {
	t.Parallel()

	for _, p := range Standard() {
		require.NoError(t, ValidatePreset(p), p.ID)
	}
}

func TestSaveCustomPresetRequiresCustomCategory(t *testing.T) {
	t.Parallel()

	m := NewManager(NewMemoryStore(), logger.Nop())
	p := customPreset("brand", "#112233")
	p.Category = CategoryModern

	_, err := m.SaveCustomPreset(p)
	var validationErr *studioerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "category", validationErr.Field)
	require.Empty(t, m.CustomPresets())
}

func TestSaveCustomPresetUpsertsByID(t *testing.T) {
	t.Parallel()

	m := NewManager(NewMemoryStore(), logger.Nop())

	_, err := m.SaveCustomPreset(customPreset("brand", "#112233"))
	require.NoError(t, err)
	_, err = m.SaveCustomPreset(customPreset("brand", "#445566"))
	require.NoError(t, err)
	_, err = m.SaveCustomPreset(customPreset("other", "#778899"))
	require.NoError(t, err)

	custom := m.CustomPresets()
	require.Len(t, custom, 2)
	require.Equal(t, "brand", custom[0].ID)
	require.Equal(t, "#445566", custom[0].Colors.Light.Primary)
	require.Equal(t, "other", custom[1].ID)

	require.Len(t, m.ByCategory(CategoryCustom), 2)
}

func TestSaveCustomPresetGeneratesID(t *testing.T) {
	t.Parallel()

	m := NewManager(NewMemoryStore(), logger.Nop())
	saved, err := m.SaveCustomPreset(customPreset("", "#112233"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(saved.ID, "custom-"))

	_, ok := m.ByID(saved.ID)
	require.True(t, ok)
}

func TestSaveCustomPresetRejectsInvalid(t *testing.T) {
	t.Parallel()

	m := NewManager(NewMemoryStore(), logger.Nop())

	bad := customPreset("brand", "not-a-color")
	_, err := m.SaveCustomPreset(bad)
	require.ErrorContains(t, err, "iscolor")

	shadow := customPreset(DefaultPresetID, "#112233")
	_, err = m.SaveCustomPreset(shadow)
	require.ErrorContains(t, err, "standard preset id")

	badKey := customPreset("brand", "#112233")
	badKey.CustomProperties = map[string]string{"has space": "1"}
	_, err = m.SaveCustomPreset(badKey)
	require.ErrorContains(t, err, "not a valid property name")
}

func TestSaveCustomPresetRejectsUnsafeTokenValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(p *Preset)
		field  string
	}{
		{
			name: "custom property closes style element",
			mutate: func(p *Preset) {
				p.CustomProperties = map[string]string{"x": "red}</style><script>alert(1)</script><style>"}
			},
			field: "customproperties[x]",
		},
		{
			name:   "font family ends declaration",
			mutate: func(p *Preset) { p.Typography.Heading = "Inter; color: red" },
			field:  "typography.heading",
		},
		{
			name:   "spacing opens a block",
			mutate: func(p *Preset) { p.Spacing = map[string]string{"md": "1rem {"} },
			field:  "spacing[md]",
		},
		{
			name:   "radius with newline",
			mutate: func(p *Preset) { p.Borders.Radius = map[string]string{"sm": "2px\n--x: 1"} },
			field:  "borders.radius[sm]",
		},
		{
			name:   "shadow with escape",
			mutate: func(p *Preset) { p.Shadows = map[string]string{"md": "0 0 \\3c"} },
			field:  "shadows[md]",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := NewMemoryStore()
			m := NewManager(store, logger.Nop())
			p := customPreset("brand", "#112233")
			tt.mutate(&p)

			_, err := m.SaveCustomPreset(p)
			var validationErr *studioerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
			require.ErrorContains(t, err, "css_value")

			_, ok, _ := store.Get(KeyCustomPresets)
			require.False(t, ok)
		})
	}
}

func TestCustomPresetsSkipsInvalidStoredEntries(t *testing.T) {
	t.Parallel()

	good := customPreset("good", "#112233")
	bad := customPreset("bad", "#112233")
	bad.CustomProperties = map[string]string{"x": "red}</style><script>alert(1)</script>"}
	raw, err := json.Marshal([]Preset{good, bad})
	require.NoError(t, err)

	store := NewMemoryStore()
	require.NoError(t, store.Set(KeyCustomPresets, string(raw)))
	m := NewManager(store, logger.Nop())

	custom := m.CustomPresets()
	require.Len(t, custom, 1)
	require.Equal(t, "good", custom[0].ID)

	_, ok := m.ByID("bad")
	require.False(t, ok)
	require.Error(t, m.SetCurrentPreset("bad"))
}

func TestCorruptStorageDegrades(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	require.NoError(t, store.Set(KeyCustomPresets, "{not json"))
	m := NewManager(store, logger.Nop())

	require.Empty(t, m.CustomPresets())
	require.Len(t, m.All(), len(standardPresets))

	_, err := m.SaveCustomPreset(customPreset("brand", "#112233"))
	var parseErr *studioerrors.ParseError
	require.ErrorAs(t, err, &parseErr)

	raw, _, _ := store.Get(KeyCustomPresets)
	require.Equal(t, "{not json", raw)
}

func TestDeleteCustomPreset(t *testing.T) {
	t.Parallel()

	m := NewManager(NewMemoryStore(), logger.Nop())
	_, err := m.SaveCustomPreset(customPreset("brand", "#112233"))
	require.NoError(t, err)
	require.NoError(t, m.SetCurrentPreset("brand"))

	removed, err := m.DeleteCustomPreset("brand")
	require.NoError(t, err)
	require.True(t, removed)
	require.Empty(t, m.CustomPresets())
	require.Equal(t, DefaultPresetID, m.CurrentPresetID())

	removed, err = m.DeleteCustomPreset("brand")
	require.NoError(t, err)
	require.False(t, removed)
}

func TestCurrentPresetAndMode(t *testing.T) {
	t.Parallel()

	m := NewManager(NewMemoryStore(), logger.Nop())
	require.Equal(t, DefaultPresetID, m.CurrentPresetID())
	require.Equal(t, DefaultPresetID, m.Current().ID)
	require.Equal(t, ModeSystem, m.Mode())

	require.NoError(t, m.SetCurrentPreset("minimal-mono"))
	require.Equal(t, "minimal-mono", m.Current().ID)
	require.Error(t, m.SetCurrentPreset("missing"))

	require.NoError(t, m.SetMode(ModeDark))
	require.Equal(t, ModeDark, m.Mode())
	require.Error(t, m.SetMode(Mode("sepia")))
}

func TestFileStorePersistsAcrossManagers(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "storage.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	first := NewManager(store, logger.Nop())
	_, err = first.SaveCustomPreset(customPreset("brand", "#112233"))
	require.NoError(t, err)
	require.NoError(t, first.SetCurrentPreset("brand"))
	require.NoError(t, first.SetMode(ModeLight))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	second := NewManager(reopened, logger.Nop())
	require.Equal(t, "brand", second.CurrentPresetID())
	require.Equal(t, ModeLight, second.Mode())
	require.Len(t, second.CustomPresets(), 1)

	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestFileStoreReportsCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte("[]x"), 0o644))
	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, _, err = store.Get(KeyMode)
	var persistErr *studioerrors.PersistenceError
	require.ErrorAs(t, err, &persistErr)
	require.Equal(t, "read", persistErr.Op)

	m := NewManager(store, logger.Nop())
	require.Equal(t, ModeSystem, m.Mode())
	require.Equal(t, DefaultPresetID, m.CurrentPresetID())
}

func TestFileStoreRemove(t *testing.T) {
	t.Parallel()

	store, err := NewFileStore(filepath.Join(t.TempDir(), "storage.json"))
	require.NoError(t, err)
	require.NoError(t, store.Remove(KeyMode))
	require.NoError(t, store.Set(KeyMode, "dark"))
	require.NoError(t, store.Remove(KeyMode))

	_, ok, err := store.Get(KeyMode)
	require.NoError(t, err)
	require.False(t, ok)
}
