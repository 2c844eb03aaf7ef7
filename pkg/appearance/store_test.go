package appearance

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o0x0o/pigment/pkg/themes"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Parallel()

	state := NewStore(t.TempDir()).Load()

	assert.Equal(t, themes.DefaultLightName, state.Theme)
	assert.Nil(t, state.ScrollbarShow)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	hover := themes.ScrollbarHover
	in := State{Theme: "Ocean", ScrollbarShow: &hover}
	require.NoError(t, store.Save(in))

	assert.Equal(t, in, store.Load())
}

func TestSaveWritesPrettyJSON(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	require.NoError(t, store.Save(DefaultState()))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"theme\": \"Default Light\",\n  \"scrollbar_show\": null\n}\n", string(data))
}

func TestLoadToleratesGarbage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, stateFile), []byte("not json"), 0o644))

	assert.Equal(t, DefaultState(), NewStore(dir).Load())
}

func TestLoadIgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	payload := `{"theme":"X","scrollbar_show":null,"extra":true}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, stateFile), []byte(payload), 0o644))

	state := NewStore(dir).Load()
	assert.Equal(t, "X", state.Theme)
	assert.Nil(t, state.ScrollbarShow)
}

func TestLoadFillsMissingFields(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, stateFile), []byte(`{"scrollbar_show":"never"}`), 0o644))

	state := NewStore(dir).Load()
	assert.Equal(t, themes.DefaultLightName, state.Theme)
	require.NotNil(t, state.ScrollbarShow)
	assert.Equal(t, themes.ScrollbarNever, *state.ScrollbarShow)
}

func TestLoadRejectsUnknownScrollbarValue(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	payload := `{"theme":"Ocean","scrollbar_show":"sometimes"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, stateFile), []byte(payload), 0o644))

	assert.Equal(t, DefaultState(), NewStore(dir).Load())
}

func TestSaveFailsWithoutConfigDir(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "missing"))

	assert.Error(t, store.Save(DefaultState()))
}

func TestSaveReplacesPreviousContent(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	hover := themes.ScrollbarHover
	require.NoError(t, store.Save(State{Theme: "a name long enough to leave a trace", ScrollbarShow: &hover}))
	require.NoError(t, store.Save(State{Theme: "B"}))

	assert.Equal(t, State{Theme: "B"}, store.Load())

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "long enough")
}
