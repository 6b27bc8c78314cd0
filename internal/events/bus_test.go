package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/sitestudio/internal/logger"
)

func TestBusDeliversOpenVariantPopup(t *testing.T) {
	t.Parallel()

	bus := NewBus(logger.Nop())

	var received OpenVariantPopup
	bus.Subscribe(TypeOpenVariantPopup, func(_ context.Context, event Event) error {
		received = event.(OpenVariantPopup)
		return nil
	})

	bus.Publish(context.Background(), OpenVariantPopup{SectionType: "hero", CurrentVariant: "split", SectionID: "home-hero-0", PageID: "home"})
	require.Equal(t, "home-hero-0", received.SectionID)
	require.Equal(t, "split", received.CurrentVariant)
}

func TestBusLogsEventsAndHandlerFailures(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)
	bus := NewBus(log)

	calls := 0
	bus.Subscribe(TypeTemplateSelected, func(context.Context, Event) error {
		calls++
		return errors.New("boom")
	})
	bus.Subscribe(TypeTemplateSelected, func(context.Context, Event) error {
		calls++
		return nil
	})

	bus.Publish(context.Background(), TemplateSelected{TemplateID: "restaurant"})
	require.Equal(t, 2, calls)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var published map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &published))
	require.Equal(t, "event published", published["message"])
	require.Equal(t, TypeTemplateSelected, published["event_type"])
	require.Equal(t, "restaurant", published["templateId"])

	var failed map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &failed))
	require.Equal(t, "boom", failed["error"])
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	bus := NewBus(logger.Nop())
	calls := 0
	sub := bus.Subscribe(TypeVariantChanged, func(context.Context, Event) error {
		calls++
		return nil
	})

	bus.Publish(context.Background(), VariantChanged{Variant: "grid"})
	sub.Unsubscribe()
	bus.Publish(context.Background(), VariantChanged{Variant: "list"})
	require.Equal(t, 1, calls)
}

func TestNilBusAndHandlerAreSafe(t *testing.T) {
	t.Parallel()

	var bus *Bus
	require.NotPanics(t, func() {
		bus.Publish(context.Background(), TemplateSelected{})
		bus.Subscribe(TypeTemplateSelected, func(context.Context, Event) error { return nil }).Unsubscribe()
	})

	require.NotPanics(t, func() {
		NewBus(logger.Nop()).Subscribe(TypeTemplateSelected, nil).Unsubscribe()
	})
}
