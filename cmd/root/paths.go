package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/o0x0o/pigment/pkg/cli"
	"github.com/o0x0o/pigment/pkg/paths"
)

// newPathsCmd reports where pigment reads and writes. The resolver itself
// never creates directories; --create is the one explicit way to make them.
func newPathsCmd() *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:     "paths",
		Short:   "Print the resolved config, data and themes directories",
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dirs := [][2]string{
				{"config", paths.ConfigDir()},
				{"data", paths.DataDir()},
				{"themes", paths.ThemesDir()},
			}

			if create {
				for _, d := range dirs {
					if err := os.MkdirAll(d[1], 0o755); err != nil {
						return fmt.Errorf("create %s dir: %w", d[0], err)
					}
				}
			}

			p := cli.NewPrinter(cmd.OutOrStdout())
			for _, d := range dirs {
				p.Printf("%s\t%s\n", d[0], d[1])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&create, "create", false, "Create the directories if missing")
	return cmd
}
