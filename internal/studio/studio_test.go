package studio

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/sitestudio/internal/blocks"
	"github.com/alexisbeaulieu97/sitestudio/internal/catalog"
	"github.com/alexisbeaulieu97/sitestudio/internal/events"
	"github.com/alexisbeaulieu97/sitestudio/internal/logger"
	"github.com/alexisbeaulieu97/sitestudio/internal/theme"
	"github.com/alexisbeaulieu97/sitestudio/internal/variant"
	studioerrors "github.com/alexisbeaulieu97/sitestudio/pkg/errors"
)

type fixture struct {
	studio *Studio
	bus    *events.Bus
	store  *theme.MemoryStore
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	log := logger.Nop()
	templates := catalog.NewRegistry(log)
	builtin, err := catalog.Builtin()
	require.NoError(t, err)
	require.NoError(t, templates.RegisterAll(builtin))

	variants := variant.NewRegistry(log)
	require.NoError(t, blocks.RegisterAll(variants))

	store := theme.NewMemoryStore()
	bus := events.NewBus(log)
	s := New(Deps{
		Templates: templates,
		Variants:  variants,
		Presets:   theme.NewManager(store, log),
		Bus:       bus,
		Logger:    log,
	})
	return fixture{studio: s, bus: bus, store: store}
}

func TestConfigRequiresTemplate(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, err := f.studio.Config()
	var validationErr *studioerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	require.Error(t, f.studio.SelectTemplate(context.Background(), "bakery"))
}

func TestBusinessEditsFlowIntoConfig(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.studio.SelectTemplate(ctx, "restaurant"))

	cfg, err := f.studio.Config()
	require.NoError(t, err)
	require.Equal(t, "Gourmet Bistro", cfg.Metadata.Title)

	f.studio.SetBusinessField(ctx, "businessName", "Chez Nous")
	cfg, err = f.studio.Config()
	require.NoError(t, err)
	require.Equal(t, "Chez Nous", cfg.Metadata.Title)
	require.Equal(t, "Welcome to Chez Nous", cfg.Pages[0].Sections[0].Content["title"])

	f.studio.SetBusinessField(ctx, "businessName", "")
	require.Empty(t, f.studio.Business())
	cfg, err = f.studio.Config()
	require.NoError(t, err)
	require.Equal(t, "Gourmet Bistro", cfg.Business.Name)
}

func TestOpenVariantPickerPublishesEvent(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.studio.SelectTemplate(ctx, "restaurant"))

	var got events.OpenVariantPopup
	f.bus.Subscribe(events.TypeOpenVariantPopup, func(_ context.Context, e events.Event) error {
		got = e.(events.OpenVariantPopup)
		return nil
	})

	require.NoError(t, f.studio.OpenVariantPicker(ctx, "home", "home-highlights"))
	require.Equal(t, events.OpenVariantPopup{SectionType: "features", CurrentVariant: "grid", SectionID: "home-highlights", PageID: "home"}, got)

	require.Error(t, f.studio.OpenVariantPicker(ctx, "home", "nope"))
	require.Error(t, f.studio.OpenVariantPicker(ctx, "blog", "home-highlights"))
}

func TestSetVariantOverridesSection(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.studio.SelectTemplate(ctx, "restaurant"))

	var changed events.VariantChanged
	f.bus.Subscribe(events.TypeVariantChanged, func(_ context.Context, e events.Event) error {
		changed = e.(events.VariantChanged)
		return nil
	})

	require.NoError(t, f.studio.SetVariant(ctx, "home", "home-testimonials-2", "masonry"))
	require.Equal(t, "carousel", changed.Previous)

	cfg, err := f.studio.Config()
	require.NoError(t, err)
	require.Equal(t, "masonry", cfg.Pages[0].Sections[2].Variant)

	err = f.studio.SetVariant(ctx, "home", "home-testimonials-2", "spiral")
	require.ErrorContains(t, err, "not a registered testimonials variant")

	require.NoError(t, f.studio.SelectTemplate(ctx, "restaurant"))
	cfg, err = f.studio.Config()
	require.NoError(t, err)
	require.Equal(t, "carousel", cfg.Pages[0].Sections[2].Variant)
}

func TestVariantOptions(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.Len(t, f.studio.VariantOptions("accordion"), 7)
	require.Nil(t, f.studio.VariantOptions("pricing"))
}

func TestPresetSelectionAppliesCSS(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	id, mode := f.studio.Preset()
	require.Equal(t, theme.DefaultPresetID, id)
	require.Equal(t, theme.ModeSystem, mode)
	require.Contains(t, f.studio.CSS(), "--color-primary: #2563EB;")

	var applied events.PresetApplied
	f.bus.Subscribe(events.TypePresetApplied, func(_ context.Context, e events.Event) error {
		applied = e.(events.PresetApplied)
		return nil
	})

	require.NoError(t, f.studio.SelectPreset(ctx, "classic-serif"))
	require.Contains(t, f.studio.CSS(), "--custom-hero-overlay")

	require.NoError(t, f.studio.SelectPreset(ctx, "minimal-mono"))
	require.NotContains(t, f.studio.CSS(), "--custom-hero-overlay")
	require.Contains(t, applied.Removed, "--custom-hero-overlay")

	require.NoError(t, f.studio.SetMode(ctx, theme.ModeDark))
	require.Contains(t, f.studio.CSS(), "--color-background: #0A0A0A;")
	require.Equal(t, "dark", applied.Mode)

	stored, _, _ := f.store.Get(theme.KeyCurrentPreset)
	require.Equal(t, "minimal-mono", stored)

	require.Error(t, f.studio.SelectPreset(ctx, "missing"))
	require.Error(t, f.studio.SetMode(ctx, theme.Mode("sepia")))
}

func TestSystemModeResolver(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.studio.SetSystemMode(func() theme.Mode { return theme.ModeDark })
	require.Contains(t, f.studio.CSS(), "--color-background: #0F172A;")
}

func TestSystemModeResolverConcurrentWithSelection(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			resolved := theme.ModeLight
			if i%2 == 0 {
				resolved = theme.ModeDark
			}
			f.studio.SetSystemMode(func() theme.Mode { return resolved })
		}(i)
		go func() {
			defer wg.Done()
			_ = f.studio.SelectPreset(ctx, "classic-serif")
		}()
	}
	wg.Wait()

	f.studio.SetSystemMode(func() theme.Mode { return theme.ModeDark })
	id, mode := f.studio.Preset()
	require.Equal(t, "classic-serif", id)
	require.Equal(t, theme.ModeSystem, mode)
	require.Contains(t, f.studio.CSS(), "--custom-hero-overlay")
}

func TestPreviewRendersPage(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.studio.SelectTemplate(ctx, "restaurant"))
	f.studio.SetBusinessField(ctx, "businessName", "Chez Nous")

	buf := &bytes.Buffer{}
	require.NoError(t, f.studio.Preview(buf, "contact"))

	out := buf.String()
	require.Contains(t, out, "<title>Contact | Chez Nous</title>")
	require.Contains(t, out, "accordion--faq")
	require.Contains(t, out, "Visiting Chez Nous")
	require.Contains(t, out, "--color-primary")
	require.Contains(t, out, `aria-current="page"`)

	require.Error(t, f.studio.Preview(buf, "missing"))
}

func TestPreviewPresetDoesNotPersist(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.studio.PreviewPreset(context.Background(), "bold-sunset"))
	require.Contains(t, f.studio.CSS(), "--custom-gradient-hero")

	_, ok, _ := f.store.Get(theme.KeyCurrentPreset)
	require.False(t, ok)

	require.Error(t, f.studio.PreviewPreset(context.Background(), "missing"))
}

func TestPreviewCannotCarryScriptFromCustomPreset(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.studio.SelectTemplate(ctx, "restaurant"))

	manager := theme.NewManager(f.store, logger.Nop())
	p := theme.Standard()[0]
	p.ID = "hostile"
	p.Category = theme.CategoryCustom
	p.CustomProperties = map[string]string{"x": "red}</style><script>alert(1)</script><style>"}
	_, err := manager.SaveCustomPreset(p)
	require.Error(t, err)

	require.Error(t, f.studio.PreviewPreset(ctx, "hostile"))

	buf := &bytes.Buffer{}
	require.NoError(t, f.studio.Preview(buf, "home"))
	require.NotContains(t, buf.String(), "<script>")
}
