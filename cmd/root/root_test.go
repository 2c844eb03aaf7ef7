package root

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o0x0o/pigment/pkg/paths"
)

// TestMain points the path resolver at a scratch directory before any test
// touches it. The resolver caches its answer for the process lifetime, so
// this has to happen once, up front.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "pigment-cli-test")
	if err != nil {
		panic(err)
	}
	os.Setenv(paths.EnvConfigDir, filepath.Join(dir, "config"))
	os.Setenv(paths.EnvDataDir, filepath.Join(dir, "data"))

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errBuf bytes.Buffer
	err = Execute(context.Background(), &out, &errBuf, args...)
	return out.String(), errBuf.String(), err
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "pigment version")
	assert.Contains(t, stdout, "Commit:")
}

func TestPathsCommand(t *testing.T) {
	stdout, _, err := execute(t, "paths")

	require.NoError(t, err)
	assert.Contains(t, stdout, "config\t"+paths.ConfigDir())
	assert.Contains(t, stdout, "data\t"+paths.DataDir())
	assert.Contains(t, stdout, "themes\t"+paths.ThemesDir())

	// Printing paths never creates them
	_, statErr := os.Stat(paths.ThemesDir())
	assert.True(t, os.IsNotExist(statErr))
}

func TestPathsCreate(t *testing.T) {
	_, _, err := execute(t, "paths", "--create")
	require.NoError(t, err)

	for _, dir := range []string{paths.ConfigDir(), paths.DataDir(), paths.ThemesDir()} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestThemesList(t *testing.T) {
	stdout, _, err := execute(t, "themes", "list")

	require.NoError(t, err)
	assert.Contains(t, stdout, "NAME")
	assert.Contains(t, stdout, "Default Dark")
	assert.Contains(t, stdout, "Default Light")
	assert.Contains(t, stdout, "builtin")
}

func TestThemesListJSON(t *testing.T) {
	stdout, _, err := execute(t, "themes", "list", "--json")
	require.NoError(t, err)

	var rows []struct {
		Name   string `json:"name"`
		Mode   string `json:"mode"`
		Source string `json:"source"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &rows))

	byName := map[string]string{}
	for _, row := range rows {
		byName[row.Name] = row.Mode
		assert.Equal(t, "builtin", row.Source)
	}
	assert.Equal(t, "dark", byName["Default Dark"])
	assert.Equal(t, "light", byName["Default Light"])
}

func TestThemesListIncludesFileThemes(t *testing.T) {
	themesDir := paths.ThemesDir()
	require.NoError(t, os.MkdirAll(themesDir, 0o755))

	custom := map[string]any{
		"name": "Test Ocean",
		"mode": "dark",
		"colors": map[string]string{
			"background": "#001122",
			"foreground": "#ddeeff",
		},
	}
	data, err := yaml.Marshal(custom)
	require.NoError(t, err)

	path := filepath.Join(themesDir, "ocean.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Cleanup(func() { os.Remove(path) })

	stdout, _, err := execute(t, "themes", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Test Ocean")
	assert.Contains(t, stdout, "ocean.yaml")
}

func TestThemesShow(t *testing.T) {
	stdout, _, err := execute(t, "themes", "show", "Default Dark")

	require.NoError(t, err)
	assert.Contains(t, stdout, "name: Default Dark")
	assert.Contains(t, stdout, "mode: dark")
	assert.Contains(t, stdout, "palette")
	assert.Contains(t, stdout, "background")
}

func TestThemesShowUnknown(t *testing.T) {
	_, stderr, err := execute(t, "themes", "show", "no-such-theme")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown theme "no-such-theme"`)
	assert.Contains(t, stderr, "no-such-theme")
}

func TestThemesDiff(t *testing.T) {
	stdout, _, err := execute(t, "themes", "diff", "Default Dark", "Default Light")

	require.NoError(t, err)
	assert.Contains(t, stdout, "--- Default Dark")
	assert.Contains(t, stdout, "+++ Default Light")
	assert.Contains(t, stdout, "-name: Default Dark")
	assert.Contains(t, stdout, "+name: Default Light")
}

func TestThemesDiffIdentical(t *testing.T) {
	stdout, _, err := execute(t, "themes", "diff", "Default Dark", "Default Dark")

	require.NoError(t, err)
	assert.Contains(t, stdout, "identical configurations")
}

func TestThemesDiffUnknown(t *testing.T) {
	_, _, err := execute(t, "themes", "diff", "Default Dark", "nope")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown theme "nope"`)
}

func TestUnknownCommandFails(t *testing.T) {
	_, _, err := execute(t, "frobnicate")
	require.Error(t, err)
}
