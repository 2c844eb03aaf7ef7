package root

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aymanbagabas/go-udiff"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/o0x0o/pigment/pkg/cli"
	"github.com/o0x0o/pigment/pkg/paths"
	"github.com/o0x0o/pigment/pkg/themes"
)

func newThemesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "themes",
		Short:   "List, inspect and compare themes",
		GroupID: "core",
	}

	cmd.AddCommand(newThemesListCmd())
	cmd.AddCommand(newThemesShowCmd())
	cmd.AddCommand(newThemesDiffCmd())

	return cmd
}

// loadRegistry builds a registry over the builtins plus whatever the themes
// directory currently holds. A missing directory is the normal first-run
// case, not an error.
func loadRegistry() *themes.Registry {
	registry := themes.NewRegistry()
	if err := registry.LoadDir(paths.ThemesDir()); err != nil {
		slog.Debug("Theme directory not loaded", "dir", paths.ThemesDir(), "error", err)
	}
	return registry
}

func themeSource(cfg *themes.Config) string {
	if cfg.Path == "" {
		return "builtin"
	}
	return filepath.Base(cfg.Path)
}

func newThemesListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every known theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configs := loadRegistry().Sorted()

			if asJSON {
				type row struct {
					Name   string      `json:"name"`
					Mode   themes.Mode `json:"mode"`
					Source string      `json:"source"`
				}
				rows := make([]row, 0, len(configs))
				for _, cfg := range configs {
					rows = append(rows, row{Name: cfg.Name, Mode: cfg.Mode, Source: themeSource(cfg)})
				}
				data, err := json.MarshalIndent(rows, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(data))
				return nil
			}

			rows := make([][]string, 0, len(configs))
			for _, cfg := range configs {
				rows = append(rows, []string{cfg.Name, string(cfg.Mode), themeSource(cfg)})
			}
			cli.NewPrinter(cmd.OutOrStdout()).PrintTable([]string{"NAME", "MODE", "SOURCE"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newThemesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print a theme's resolved configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, ok := loadRegistry().Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown theme %q", args[0])
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encode theme: %w", err)
			}

			p := cli.NewPrinter(cmd.OutOrStdout())
			p.Println(string(data))

			p.Println(p.Bold("palette"))
			for _, s := range paletteSwatches(cfg.Colors) {
				p.Printf("  %-11s %s\n", s.name, p.Swatch(s.hex))
			}
			return nil
		},
	}
}

type swatch struct {
	name string
	hex  string
}

func paletteSwatches(c themes.Colors) []swatch {
	return []swatch{
		{"background", c.Background},
		{"foreground", c.Foreground},
		{"surface", c.Surface},
		{"border", c.Border},
		{"primary", c.Primary},
		{"secondary", c.Secondary},
		{"accent", c.Accent},
		{"selection", c.Selection},
		{"cursor", c.Cursor},
		{"muted", c.Muted},
		{"error", c.Error},
		{"warning", c.Warning},
		{"success", c.Success},
		{"info", c.Info},
	}
}

func newThemesDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff A B",
		Short: "Show a unified diff of two themes' configurations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := loadRegistry()

			var docs [2]string
			for i, name := range args {
				cfg, ok := registry.Lookup(name)
				if !ok {
					return fmt.Errorf("unknown theme %q", name)
				}
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("encode theme %q: %w", name, err)
				}
				docs[i] = string(data)
			}

			diff := udiff.Unified(args[0], args[1], docs[0], docs[1])
			if diff == "" {
				cmd.Printf("themes %q and %q have identical configurations\n", args[0], args[1])
				return nil
			}
			cmd.Print(diff)
			return nil
		},
	}
}
