package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o0x0o/pigment/pkg/themes"
)

type pingAction struct{ n int }

type echoAction struct{ s string }

type countingWindow struct{ refreshes int }

func (w *countingWindow) Refresh() { w.refreshes++ }

func TestNewStartsOnLightDefault(t *testing.T) {
	t.Parallel()

	a := New(themes.NewRegistry())

	th := a.Theme()
	assert.Equal(t, themes.DefaultLightName, th.Name)
	assert.Equal(t, themes.ModeLight, th.Mode)
	assert.Nil(t, th.ScrollbarShow)
	assert.Equal(t, themes.ScrollbarScrolling, th.Scrollbar())
}

func TestApplyThemeConfigNotifiesObservers(t *testing.T) {
	t.Parallel()

	registry := themes.NewRegistry()
	a := New(registry)

	var seen []Theme
	a.ObserveTheme(func(th Theme) { seen = append(seen, th) })

	a.ApplyThemeConfig(registry.DefaultForMode(themes.ModeDark))

	require.Len(t, seen, 1)
	assert.Equal(t, themes.DefaultDarkName, seen[0].Name)
	assert.Equal(t, themes.ModeDark, seen[0].Mode)
	assert.Equal(t, seen[0], a.Theme())
}

func TestApplyThemeConfigKeepsScrollbarWhenUnset(t *testing.T) {
	t.Parallel()

	registry := themes.NewRegistry()
	a := New(registry)

	a.SetScrollbarShow(themes.ScrollbarHover)
	a.ApplyThemeConfig(registry.DefaultForMode(themes.ModeDark))

	th := a.Theme()
	require.NotNil(t, th.ScrollbarShow)
	assert.Equal(t, themes.ScrollbarHover, *th.ScrollbarShow)

	cfg, ok := registry.Lookup(themes.DefaultLightName)
	require.True(t, ok)
	override := *cfg
	override.ScrollbarShow = themes.ScrollbarNever
	a.ApplyThemeConfig(&override)

	th = a.Theme()
	require.NotNil(t, th.ScrollbarShow)
	assert.Equal(t, themes.ScrollbarNever, *th.ScrollbarShow)
}

func TestApplyThemeConfigIgnoresNil(t *testing.T) {
	t.Parallel()

	a := New(themes.NewRegistry())

	calls := 0
	a.ObserveTheme(func(Theme) { calls++ })
	a.ApplyThemeConfig(nil)

	assert.Zero(t, calls)
	assert.Equal(t, themes.DefaultLightName, a.Theme().Name)
}

func TestSetModeAppliesModeDefault(t *testing.T) {
	t.Parallel()

	a := New(themes.NewRegistry())

	a.SetMode(themes.ModeDark)
	assert.Equal(t, themes.DefaultDarkName, a.Theme().Name)
	assert.Equal(t, themes.ModeDark, a.Theme().Mode)

	a.SetMode(themes.ModeLight)
	assert.Equal(t, themes.DefaultLightName, a.Theme().Name)
	assert.Equal(t, themes.ModeLight, a.Theme().Mode)
}

func TestObserversMayCallBackIntoApp(t *testing.T) {
	t.Parallel()

	a := New(themes.NewRegistry())

	var nameSeenInside string
	a.ObserveTheme(func(Theme) { nameSeenInside = a.Theme().Name })

	a.SetMode(themes.ModeDark)

	assert.Equal(t, themes.DefaultDarkName, nameSeenInside)
}

func TestSnapshotsSurviveLaterMutations(t *testing.T) {
	t.Parallel()

	a := New(themes.NewRegistry())

	a.SetScrollbarShow(themes.ScrollbarAlways)
	first := a.Theme()

	a.SetScrollbarShow(themes.ScrollbarNever)

	require.NotNil(t, first.ScrollbarShow)
	assert.Equal(t, themes.ScrollbarAlways, *first.ScrollbarShow)
	assert.Equal(t, themes.ScrollbarNever, *a.Theme().ScrollbarShow)
}

func TestDispatchRoutesByType(t *testing.T) {
	t.Parallel()

	a := New(themes.NewRegistry())

	var pings []int
	var echoes []string
	OnAction(a, func(p pingAction) { pings = append(pings, p.n) })
	OnAction(a, func(e echoAction) { echoes = append(echoes, e.s) })

	Dispatch(a, pingAction{n: 1})
	Dispatch(a, echoAction{s: "hi"})
	Dispatch(a, pingAction{n: 2})

	assert.Equal(t, []int{1, 2}, pings)
	assert.Equal(t, []string{"hi"}, echoes)
}

func TestDispatchRunsHandlersInRegistrationOrder(t *testing.T) {
	t.Parallel()

	a := New(themes.NewRegistry())

	var order []string
	OnAction(a, func(pingAction) { order = append(order, "first") })
	OnAction(a, func(pingAction) { order = append(order, "second") })

	Dispatch(a, pingAction{})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestDispatchDropsUnhandledActions(t *testing.T) {
	t.Parallel()

	a := New(themes.NewRegistry())

	assert.NotPanics(t, func() {
		Dispatch(a, echoAction{s: "nobody listens"})
	})
}

func TestRefreshWindows(t *testing.T) {
	t.Parallel()

	a := New(themes.NewRegistry())

	one := &countingWindow{}
	two := &countingWindow{}
	idOne := a.OpenWindow(one)
	idTwo := a.OpenWindow(two)
	assert.NotEqual(t, idOne, idTwo)

	a.RefreshWindows()
	assert.Equal(t, 1, one.refreshes)
	assert.Equal(t, 1, two.refreshes)

	a.CloseWindow(idTwo)
	a.RefreshWindows()
	assert.Equal(t, 2, one.refreshes)
	assert.Equal(t, 1, two.refreshes)
}

func TestSendNeverBlocks(t *testing.T) {
	t.Parallel()

	a := New(themes.NewRegistry())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 500 {
			a.Send("overflow")
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Send blocked on a full event queue")
	}
}
