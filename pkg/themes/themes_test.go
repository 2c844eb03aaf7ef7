package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig([]byte(`
name: Ocean
mode: dark
scrollbar_show: hover
colors:
  background: "#0b1e2d"
  primary: "#3aa0ff"
`))
	require.NoError(t, err)

	assert.Equal(t, "Ocean", cfg.Name)
	assert.Equal(t, ModeDark, cfg.Mode)
	assert.Equal(t, ScrollbarHover, cfg.ScrollbarShow)
	assert.Equal(t, "#0b1e2d", cfg.Colors.Background)
	assert.Equal(t, "#3aa0ff", cfg.Colors.Primary)
}

func TestParseConfigDefaultsToDark(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig([]byte(`name: Plain`))
	require.NoError(t, err)

	assert.Equal(t, ModeDark, cfg.Mode)
	assert.Empty(t, cfg.ScrollbarShow)
}

func TestParseConfigRejectsBadInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"no name", `mode: dark`},
		{"unknown mode", "name: X\nmode: sepia"},
		{"unknown scrollbar", "name: X\nscrollbar_show: sometimes"},
		{"not yaml", `{{{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseConfig([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestMergeConfigFillsUnsetColors(t *testing.T) {
	t.Parallel()

	base := &Config{
		Name: "Base",
		Mode: ModeDark,
		Colors: Colors{
			Background: "#000000",
			Foreground: "#ffffff",
			Error:      "#ff0000",
		},
	}
	override := &Config{
		Name:   "Custom",
		Mode:   ModeDark,
		Colors: Colors{Background: "#101010"},
	}

	merged := mergeConfig(base, override)

	assert.Equal(t, "Custom", merged.Name)
	assert.Equal(t, "#101010", merged.Colors.Background)
	assert.Equal(t, "#ffffff", merged.Colors.Foreground)
	assert.Equal(t, "#ff0000", merged.Colors.Error)
	// Inputs stay untouched.
	assert.Equal(t, "#000000", base.Colors.Background)
	assert.Empty(t, override.Colors.Foreground)
}

func TestModeToggle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ModeDark, ModeLight.Toggle())
	assert.Equal(t, ModeLight, ModeDark.Toggle())
}

func TestScrollbarShowNextCycles(t *testing.T) {
	t.Parallel()

	seen := map[ScrollbarShow]bool{}
	s := ScrollbarAlways
	for range 4 {
		seen[s] = true
		s = s.Next()
	}

	assert.Equal(t, ScrollbarAlways, s, "cycle should wrap around")
	assert.Len(t, seen, 4)
}

func TestScrollbarShowValid(t *testing.T) {
	t.Parallel()

	assert.True(t, ScrollbarHover.Valid())
	assert.False(t, ScrollbarShow("sometimes").Valid())
	assert.False(t, ScrollbarShow("").Valid())
}
